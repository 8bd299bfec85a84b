package services

import (
	"context"

	"github.com/AbdulmosenAlmuzaini/malek/internal/core/domain"
	portsrepo "github.com/AbdulmosenAlmuzaini/malek/internal/core/ports/repositories"
	"github.com/AbdulmosenAlmuzaini/malek/internal/dto"
)

// OperationSvcFacade defines operations over recorded cash movements.
type OperationSvcFacade interface {
	CreateOperation(ctx context.Context, req dto.CreateOperationRequest, creatorUserID int64) (*domain.Operation, error)
	ListOperations(ctx context.Context, filter portsrepo.OperationFilter) ([]domain.Operation, error)
	// UpdateOperation is a full-row replace by id. Returns
	// apperrors.ErrNotFound when the operation does not exist.
	UpdateOperation(ctx context.Context, operationID int64, req dto.UpdateOperationRequest) (*domain.Operation, error)
	DeleteOperation(ctx context.Context, operationID int64) error
}

// TransferSvcFacade defines operations over person transfers.
type TransferSvcFacade interface {
	CreateTransfer(ctx context.Context, req dto.CreateTransferRequest, creatorUserID int64) (*domain.Transfer, error)
	ListTransfers(ctx context.Context, personName string) ([]domain.Transfer, error)
	DeleteTransfer(ctx context.Context, transferID int64) error
}
