package pgsql

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/AbdulmosenAlmuzaini/malek/internal/core/ports/repositories"
)

type backupRepository struct {
	BaseRepository
}

// NewBackupRepository creates a new pgsql-backed backup exporter.
func NewBackupRepository(db *pgxpool.Pool) portsrepo.BackupRepository {
	return &backupRepository{BaseRepository: BaseRepository{Pool: db}}
}

// backupTables are exported in this order. Password hashes ride along:
// the snapshot is a full database backup, mailed to the owner only.
var backupTables = []string{"users", "settings", "operations", "transfers", "platforms", "services"}

func (r *backupRepository) ExportAll(ctx context.Context) ([]byte, error) {
	snapshot := struct {
		ExportedAt time.Time                    `json:"exported_at"`
		Tables     map[string][]map[string]any `json:"tables"`
	}{
		ExportedAt: time.Now().UTC(),
		Tables:     make(map[string][]map[string]any, len(backupTables)),
	}

	for _, table := range backupTables {
		rows, err := r.Pool.Query(ctx, fmt.Sprintf("SELECT * FROM %s;", table))
		if err != nil {
			return nil, fmt.Errorf("error exporting table %s: %w", table, err)
		}

		descs := rows.FieldDescriptions()
		records := []map[string]any{}
		for rows.Next() {
			values, err := rows.Values()
			if err != nil {
				rows.Close()
				return nil, fmt.Errorf("error reading row from table %s: %w", table, err)
			}
			record := make(map[string]any, len(descs))
			for i, desc := range descs {
				record[string(desc.Name)] = values[i]
			}
			records = append(records, record)
		}
		rowsErr := rows.Err()
		rows.Close()
		if rowsErr != nil {
			return nil, fmt.Errorf("error iterating table %s: %w", table, rowsErr)
		}
		snapshot.Tables[table] = records
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("error encoding backup snapshot: %w", err)
	}
	return data, nil
}
