package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/AbdulmosenAlmuzaini/malek/internal/apperrors"
	"github.com/AbdulmosenAlmuzaini/malek/internal/core/domain"
	portsrepo "github.com/AbdulmosenAlmuzaini/malek/internal/core/ports/repositories"
)

type operationRepository struct {
	BaseRepository
}

// NewOperationRepository creates a new pgsql-backed operation
// repository.
func NewOperationRepository(db *pgxpool.Pool) portsrepo.OperationRepository {
	return &operationRepository{BaseRepository: BaseRepository{Pool: db}}
}

func (r *operationRepository) SaveOperation(ctx context.Context, op *domain.Operation) error {
	query := `
        INSERT INTO operations (date, property_type, reference_number, amount, category, description, attachment_path, direction, created_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING operation_id, created_at;
    `
	err := r.Pool.QueryRow(ctx, query,
		op.Date,
		op.PropertyType,
		op.ReferenceNumber,
		op.Amount,
		op.Category,
		op.Description,
		op.AttachmentPath,
		op.Direction,
		op.CreatedBy,
	).Scan(&op.OperationID, &op.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save operation: %w", err)
	}
	return nil
}

func (r *operationRepository) FindOperationByID(ctx context.Context, operationID int64) (*domain.Operation, error) {
	query := `
        SELECT operation_id, date, property_type, reference_number, amount, category, description, attachment_path, direction, created_by, created_at
        FROM operations
        WHERE operation_id = $1;
    `
	var op domain.Operation
	err := r.Pool.QueryRow(ctx, query, operationID).Scan(
		&op.OperationID,
		&op.Date,
		&op.PropertyType,
		&op.ReferenceNumber,
		&op.Amount,
		&op.Category,
		&op.Description,
		&op.AttachmentPath,
		&op.Direction,
		&op.CreatedBy,
		&op.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find operation by ID: %w", err)
	}
	return &op, nil
}

func (r *operationRepository) FindOperations(ctx context.Context, filter portsrepo.OperationFilter) ([]domain.Operation, error) {
	// Text search matches reference number or description; category and
	// property type filter exactly when present.
	query := `
        SELECT o.operation_id, o.date, o.property_type, o.reference_number, o.amount, o.category, o.description, o.attachment_path, o.direction, o.created_by, u.name, o.created_at
        FROM operations o
        LEFT JOIN users u ON u.user_id = o.created_by
        WHERE (COALESCE(o.reference_number, '') ILIKE $1 OR COALESCE(o.description, '') ILIKE $1)
    `
	args := []any{"%" + filter.Query + "%"}

	if filter.Category != "" {
		args = append(args, filter.Category)
		query += fmt.Sprintf(" AND o.category = $%d", len(args))
	}
	if filter.PropertyType != "" {
		args = append(args, filter.PropertyType)
		query += fmt.Sprintf(" AND o.property_type = $%d", len(args))
	}
	query += " ORDER BY o.date DESC;"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query operations: %w", err)
	}
	defer rows.Close()

	ops := []domain.Operation{}
	for rows.Next() {
		var op domain.Operation
		if err := rows.Scan(
			&op.OperationID,
			&op.Date,
			&op.PropertyType,
			&op.ReferenceNumber,
			&op.Amount,
			&op.Category,
			&op.Description,
			&op.AttachmentPath,
			&op.Direction,
			&op.CreatedBy,
			&op.CreatedByName,
			&op.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan operation row: %w", err)
		}
		ops = append(ops, op)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating operation rows: %w", rows.Err())
	}
	return ops, nil
}

func (r *operationRepository) UpdateOperation(ctx context.Context, op *domain.Operation) error {
	query := `
        UPDATE operations
        SET date = $1, property_type = $2, reference_number = $3, amount = $4, category = $5, description = $6, attachment_path = $7, direction = $8
        WHERE operation_id = $9;
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		op.Date,
		op.PropertyType,
		op.ReferenceNumber,
		op.Amount,
		op.Category,
		op.Description,
		op.AttachmentPath,
		op.Direction,
		op.OperationID,
	)
	if err != nil {
		return fmt.Errorf("failed to update operation: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		// The row can disappear between the service's existence check
		// and this update.
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *operationRepository) DeleteOperation(ctx context.Context, operationID int64) error {
	_, err := r.Pool.Exec(ctx, `DELETE FROM operations WHERE operation_id = $1;`, operationID)
	if err != nil {
		return fmt.Errorf("failed to delete operation: %w", err)
	}
	return nil
}
