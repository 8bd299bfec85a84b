package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/AbdulmosenAlmuzaini/malek/internal/apperrors"
	"github.com/AbdulmosenAlmuzaini/malek/internal/core/domain"
	portsrepo "github.com/AbdulmosenAlmuzaini/malek/internal/core/ports/repositories"
)

type platformRepository struct {
	BaseRepository
}

// NewPlatformRepository creates a new pgsql-backed platform
// repository.
func NewPlatformRepository(db *pgxpool.Pool) portsrepo.PlatformRepository {
	return &platformRepository{BaseRepository: BaseRepository{Pool: db}}
}

func (r *platformRepository) SavePlatform(ctx context.Context, platform *domain.Platform) error {
	query := `
        INSERT INTO platforms (name, category, created_by)
        VALUES ($1, $2, $3)
        RETURNING platform_id, created_at;
    `
	err := r.Pool.QueryRow(ctx, query,
		platform.Name,
		platform.Category,
		platform.CreatedBy,
	).Scan(&platform.PlatformID, &platform.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save platform: %w", err)
	}
	return nil
}

func (r *platformRepository) FindPlatforms(ctx context.Context) ([]domain.Platform, error) {
	query := `
        SELECT p.platform_id, p.name, p.category, p.created_by, u.name, p.created_at
        FROM platforms p
        LEFT JOIN users u ON u.user_id = p.created_by
        ORDER BY p.platform_id DESC;
    `
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query platforms: %w", err)
	}
	defer rows.Close()

	platforms := []domain.Platform{}
	for rows.Next() {
		var p domain.Platform
		if err := rows.Scan(
			&p.PlatformID,
			&p.Name,
			&p.Category,
			&p.CreatedBy,
			&p.CreatedByName,
			&p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan platform row: %w", err)
		}
		p.Services = []domain.Service{}
		platforms = append(platforms, p)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating platform rows: %w", rows.Err())
	}

	if len(platforms) == 0 {
		return platforms, nil
	}

	// One query for all services, grouped in memory, instead of one
	// query per platform.
	serviceRows, err := r.Pool.Query(ctx, `
        SELECT service_id, platform_id, name, start_date, end_date, attachment_path, created_by, created_at
        FROM services
        ORDER BY service_id DESC;
    `)
	if err != nil {
		return nil, fmt.Errorf("failed to query services: %w", err)
	}
	defer serviceRows.Close()

	byPlatform := make(map[int64][]domain.Service)
	for serviceRows.Next() {
		var s domain.Service
		if err := serviceRows.Scan(
			&s.ServiceID,
			&s.PlatformID,
			&s.Name,
			&s.StartDate,
			&s.EndDate,
			&s.AttachmentPath,
			&s.CreatedBy,
			&s.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan service row: %w", err)
		}
		byPlatform[s.PlatformID] = append(byPlatform[s.PlatformID], s)
	}
	if serviceRows.Err() != nil {
		return nil, fmt.Errorf("error iterating service rows: %w", serviceRows.Err())
	}

	for i := range platforms {
		if services, ok := byPlatform[platforms[i].PlatformID]; ok {
			platforms[i].Services = services
		}
	}
	return platforms, nil
}

func (r *platformRepository) DeletePlatform(ctx context.Context, platformID int64) error {
	// Services go with the platform via ON DELETE CASCADE.
	_, err := r.Pool.Exec(ctx, `DELETE FROM platforms WHERE platform_id = $1;`, platformID)
	if err != nil {
		return fmt.Errorf("failed to delete platform: %w", err)
	}
	return nil
}

func (r *platformRepository) SaveService(ctx context.Context, service *domain.Service) error {
	query := `
        INSERT INTO services (platform_id, name, start_date, end_date, attachment_path, created_by)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING service_id, created_at;
    `
	err := r.Pool.QueryRow(ctx, query,
		service.PlatformID,
		service.Name,
		service.StartDate,
		service.EndDate,
		service.AttachmentPath,
		service.CreatedBy,
	).Scan(&service.ServiceID, &service.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return apperrors.ErrValidation
		}
		return fmt.Errorf("failed to save service: %w", err)
	}
	return nil
}

func (r *platformRepository) DeleteService(ctx context.Context, serviceID int64) error {
	_, err := r.Pool.Exec(ctx, `DELETE FROM services WHERE service_id = $1;`, serviceID)
	if err != nil {
		return fmt.Errorf("failed to delete service: %w", err)
	}
	return nil
}
