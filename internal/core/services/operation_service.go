package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/AbdulmosenAlmuzaini/malek/internal/apperrors"
	"github.com/AbdulmosenAlmuzaini/malek/internal/core/domain"
	portsrepo "github.com/AbdulmosenAlmuzaini/malek/internal/core/ports/repositories"
	"github.com/AbdulmosenAlmuzaini/malek/internal/dto"
)

const dateLayout = "2006-01-02"

// OperationService implements cash operation management.
type OperationService struct {
	operationRepo portsrepo.OperationRepository
}

// NewOperationService creates a new OperationService.
func NewOperationService(operationRepo portsrepo.OperationRepository) *OperationService {
	return &OperationService{operationRepo: operationRepo}
}

// parseOperationAmount applies the amount coercion rule: an empty
// value stores as 0, a non-numeric or negative one is a hard
// validation error.
func parseOperationAmount(raw string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Zero, nil
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: amount must be a number", apperrors.ErrValidation)
	}
	if amount.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: amount must not be negative", apperrors.ErrValidation)
	}
	return amount, nil
}

// nilIfEmpty maps an empty form field to a null column.
func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func validDate(date string) bool {
	_, err := time.Parse(dateLayout, date)
	return err == nil
}

func (s *OperationService) CreateOperation(ctx context.Context, req dto.CreateOperationRequest, creatorUserID int64) (*domain.Operation, error) {
	if req.Date == "" || req.Direction == "" {
		return nil, fmt.Errorf("%w: date and direction are required", apperrors.ErrValidation)
	}
	if !validDate(req.Date) {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", apperrors.ErrValidation)
	}
	direction := domain.Direction(req.Direction)
	if !direction.IsValid() {
		return nil, fmt.Errorf("%w: direction must be 'in' or 'out'", apperrors.ErrValidation)
	}

	amount, err := parseOperationAmount(req.Amount)
	if err != nil {
		return nil, err
	}

	op := &domain.Operation{
		Date:            req.Date,
		PropertyType:    nilIfEmpty(req.PropertyType),
		ReferenceNumber: nilIfEmpty(req.ReferenceNumber),
		Amount:          amount,
		Category:        nilIfEmpty(req.Category),
		Description:     nilIfEmpty(req.Description),
		AttachmentPath:  nilIfEmpty(req.AttachmentPath),
		Direction:       direction,
		CreatedBy:       creatorUserID,
	}
	if err := s.operationRepo.SaveOperation(ctx, op); err != nil {
		return nil, err
	}
	return op, nil
}

func (s *OperationService) ListOperations(ctx context.Context, filter portsrepo.OperationFilter) ([]domain.Operation, error) {
	ops, err := s.operationRepo.FindOperations(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list operations: %w", err)
	}
	return ops, nil
}

// UpdateOperation is a full-row replace. Date and direction keep the
// stored values when the request omits them; the attachment is kept
// unless a new one was uploaded.
func (s *OperationService) UpdateOperation(ctx context.Context, operationID int64, req dto.UpdateOperationRequest) (*domain.Operation, error) {
	existing, err := s.operationRepo.FindOperationByID(ctx, operationID)
	if err != nil {
		return nil, fmt.Errorf("failed to load operation for update: %w", err)
	}
	if existing == nil {
		return nil, apperrors.ErrNotFound
	}

	amount, err := parseOperationAmount(req.Amount)
	if err != nil {
		return nil, err
	}

	date := req.Date
	if date == "" {
		date = existing.Date
	} else if !validDate(date) {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", apperrors.ErrValidation)
	}

	direction := existing.Direction
	if req.Direction != "" {
		direction = domain.Direction(req.Direction)
		if !direction.IsValid() {
			return nil, fmt.Errorf("%w: direction must be 'in' or 'out'", apperrors.ErrValidation)
		}
	}

	attachment := existing.AttachmentPath
	if req.AttachmentPath != "" {
		attachment = &req.AttachmentPath
	}

	op := &domain.Operation{
		OperationID:     operationID,
		Date:            date,
		PropertyType:    nilIfEmpty(req.PropertyType),
		ReferenceNumber: nilIfEmpty(req.ReferenceNumber),
		Amount:          amount,
		Category:        nilIfEmpty(req.Category),
		Description:     nilIfEmpty(req.Description),
		AttachmentPath:  attachment,
		Direction:       direction,
		CreatedBy:       existing.CreatedBy,
		CreatedAt:       existing.CreatedAt,
	}
	if err := s.operationRepo.UpdateOperation(ctx, op); err != nil {
		return nil, err
	}
	return op, nil
}

func (s *OperationService) DeleteOperation(ctx context.Context, operationID int64) error {
	return s.operationRepo.DeleteOperation(ctx, operationID)
}
