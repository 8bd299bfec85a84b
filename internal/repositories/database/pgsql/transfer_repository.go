package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/AbdulmosenAlmuzaini/malek/internal/core/domain"
	portsrepo "github.com/AbdulmosenAlmuzaini/malek/internal/core/ports/repositories"
)

type transferRepository struct {
	BaseRepository
}

// NewTransferRepository creates a new pgsql-backed transfer
// repository.
func NewTransferRepository(db *pgxpool.Pool) portsrepo.TransferRepository {
	return &transferRepository{BaseRepository: BaseRepository{Pool: db}}
}

func (r *transferRepository) SaveTransfer(ctx context.Context, transfer *domain.Transfer) error {
	query := `
        INSERT INTO transfers (date, person_name, amount, attachment_path, created_by)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING transfer_id, created_at;
    `
	err := r.Pool.QueryRow(ctx, query,
		transfer.Date,
		transfer.PersonName,
		transfer.Amount,
		transfer.AttachmentPath,
		transfer.CreatedBy,
	).Scan(&transfer.TransferID, &transfer.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save transfer: %w", err)
	}
	return nil
}

func (r *transferRepository) FindTransfers(ctx context.Context, personName string) ([]domain.Transfer, error) {
	query := `
        SELECT t.transfer_id, t.date, t.person_name, t.amount, t.attachment_path, t.created_by, u.name, t.created_at
        FROM transfers t
        LEFT JOIN users u ON u.user_id = t.created_by
    `
	args := []any{}
	if personName != "" {
		query += " WHERE t.person_name = $1"
		args = append(args, personName)
	}
	query += " ORDER BY t.date DESC;"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transfers: %w", err)
	}
	defer rows.Close()

	transfers := []domain.Transfer{}
	for rows.Next() {
		var t domain.Transfer
		if err := rows.Scan(
			&t.TransferID,
			&t.Date,
			&t.PersonName,
			&t.Amount,
			&t.AttachmentPath,
			&t.CreatedBy,
			&t.CreatedByName,
			&t.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan transfer row: %w", err)
		}
		transfers = append(transfers, t)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating transfer rows: %w", rows.Err())
	}
	return transfers, nil
}

func (r *transferRepository) DeleteTransfer(ctx context.Context, transferID int64) error {
	_, err := r.Pool.Exec(ctx, `DELETE FROM transfers WHERE transfer_id = $1;`, transferID)
	if err != nil {
		return fmt.Errorf("failed to delete transfer: %w", err)
	}
	return nil
}
