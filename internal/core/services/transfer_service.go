package services

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/AbdulmosenAlmuzaini/malek/internal/apperrors"
	"github.com/AbdulmosenAlmuzaini/malek/internal/core/domain"
	portsrepo "github.com/AbdulmosenAlmuzaini/malek/internal/core/ports/repositories"
	"github.com/AbdulmosenAlmuzaini/malek/internal/dto"
)

// TransferService implements person transfer management.
type TransferService struct {
	transferRepo portsrepo.TransferRepository
}

// NewTransferService creates a new TransferService.
func NewTransferService(transferRepo portsrepo.TransferRepository) *TransferService {
	return &TransferService{transferRepo: transferRepo}
}

func (s *TransferService) CreateTransfer(ctx context.Context, req dto.CreateTransferRequest, creatorUserID int64) (*domain.Transfer, error) {
	// Unlike operations, the transfer amount is required and must
	// parse; there is no empty-to-zero coercion.
	if req.Date == "" || req.PersonName == "" || req.Amount == "" {
		return nil, fmt.Errorf("%w: date, person name and amount are required", apperrors.ErrValidation)
	}
	if !validDate(req.Date) {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", apperrors.ErrValidation)
	}
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return nil, fmt.Errorf("%w: amount must be a number", apperrors.ErrValidation)
	}
	if amount.IsNegative() {
		return nil, fmt.Errorf("%w: amount must not be negative", apperrors.ErrValidation)
	}

	transfer := &domain.Transfer{
		Date:           req.Date,
		PersonName:     req.PersonName,
		Amount:         amount,
		AttachmentPath: nilIfEmpty(req.AttachmentPath),
		CreatedBy:      creatorUserID,
	}
	if err := s.transferRepo.SaveTransfer(ctx, transfer); err != nil {
		return nil, err
	}
	return transfer, nil
}

func (s *TransferService) ListTransfers(ctx context.Context, personName string) ([]domain.Transfer, error) {
	transfers, err := s.transferRepo.FindTransfers(ctx, personName)
	if err != nil {
		return nil, fmt.Errorf("failed to list transfers: %w", err)
	}
	return transfers, nil
}

func (s *TransferService) DeleteTransfer(ctx context.Context, transferID int64) error {
	return s.transferRepo.DeleteTransfer(ctx, transferID)
}
