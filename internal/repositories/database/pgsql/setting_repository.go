package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/AbdulmosenAlmuzaini/malek/internal/apperrors"
	"github.com/AbdulmosenAlmuzaini/malek/internal/core/domain"
	portsrepo "github.com/AbdulmosenAlmuzaini/malek/internal/core/ports/repositories"
)

type settingRepository struct {
	BaseRepository
}

// NewSettingRepository creates a new pgsql-backed lookup repository.
func NewSettingRepository(db *pgxpool.Pool) portsrepo.SettingRepository {
	return &settingRepository{BaseRepository: BaseRepository{Pool: db}}
}

func (r *settingRepository) SaveSetting(ctx context.Context, setting *domain.Setting) error {
	query := `
        INSERT INTO settings (name, kind)
        VALUES ($1, $2)
        RETURNING setting_id;
    `
	err := r.Pool.QueryRow(ctx, query, setting.Name, setting.Kind).Scan(&setting.SettingID)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save setting: %w", err)
	}
	return nil
}

func (r *settingRepository) FindSettings(ctx context.Context) ([]domain.Setting, error) {
	rows, err := r.Pool.Query(ctx, `SELECT setting_id, name, kind FROM settings ORDER BY setting_id;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query settings: %w", err)
	}
	defer rows.Close()

	settings := []domain.Setting{}
	for rows.Next() {
		var s domain.Setting
		if err := rows.Scan(&s.SettingID, &s.Name, &s.Kind); err != nil {
			return nil, fmt.Errorf("failed to scan setting row: %w", err)
		}
		settings = append(settings, s)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating setting rows: %w", rows.Err())
	}
	return settings, nil
}

func (r *settingRepository) DeleteSetting(ctx context.Context, settingID int64) error {
	_, err := r.Pool.Exec(ctx, `DELETE FROM settings WHERE setting_id = $1;`, settingID)
	if err != nil {
		return fmt.Errorf("failed to delete setting: %w", err)
	}
	return nil
}
