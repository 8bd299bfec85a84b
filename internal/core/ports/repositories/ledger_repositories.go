package repositories

import (
	"context"

	"github.com/AbdulmosenAlmuzaini/malek/internal/core/domain"
)

// OperationFilter narrows an operation listing. Query matches
// reference number or description as a substring; the other two are
// exact matches.
type OperationFilter struct {
	Query        string
	Category     string
	PropertyType string
}

// OperationRepository defines persistence operations for cash
// operations.
type OperationRepository interface {
	SaveOperation(ctx context.Context, op *domain.Operation) error
	// FindOperationByID returns nil without error when no row exists.
	FindOperationByID(ctx context.Context, operationID int64) (*domain.Operation, error)
	// FindOperations lists operations sorted by business date
	// descending, with the creator's display name joined in.
	FindOperations(ctx context.Context, filter OperationFilter) ([]domain.Operation, error)
	UpdateOperation(ctx context.Context, op *domain.Operation) error
	DeleteOperation(ctx context.Context, operationID int64) error
}

// TransferRepository defines persistence operations for transfers.
type TransferRepository interface {
	SaveTransfer(ctx context.Context, transfer *domain.Transfer) error
	// FindTransfers lists transfers sorted by business date descending,
	// optionally filtered to one person.
	FindTransfers(ctx context.Context, personName string) ([]domain.Transfer, error)
	DeleteTransfer(ctx context.Context, transferID int64) error
}
