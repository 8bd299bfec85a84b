package services

import (
	"context"
	"fmt"

	"github.com/AbdulmosenAlmuzaini/malek/internal/apperrors"
	"github.com/AbdulmosenAlmuzaini/malek/internal/core/domain"
	portsrepo "github.com/AbdulmosenAlmuzaini/malek/internal/core/ports/repositories"
	"github.com/AbdulmosenAlmuzaini/malek/internal/dto"
)

// PlatformService implements subscription platform management.
type PlatformService struct {
	platformRepo portsrepo.PlatformRepository
}

// NewPlatformService creates a new PlatformService.
func NewPlatformService(platformRepo portsrepo.PlatformRepository) *PlatformService {
	return &PlatformService{platformRepo: platformRepo}
}

func (s *PlatformService) CreatePlatform(ctx context.Context, req dto.CreatePlatformRequest, creatorUserID int64) (*domain.Platform, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: name is required", apperrors.ErrValidation)
	}

	platform := &domain.Platform{
		Name:      req.Name,
		Category:  nilIfEmpty(req.Category),
		CreatedBy: creatorUserID,
		Services:  []domain.Service{},
	}
	if err := s.platformRepo.SavePlatform(ctx, platform); err != nil {
		return nil, err
	}
	return platform, nil
}

func (s *PlatformService) ListPlatforms(ctx context.Context) ([]domain.Platform, error) {
	platforms, err := s.platformRepo.FindPlatforms(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list platforms: %w", err)
	}
	return platforms, nil
}

func (s *PlatformService) DeletePlatform(ctx context.Context, platformID int64) error {
	return s.platformRepo.DeletePlatform(ctx, platformID)
}

func (s *PlatformService) CreateService(ctx context.Context, req dto.CreateServiceRequest, creatorUserID int64) (*domain.Service, error) {
	if req.PlatformID == 0 || req.Name == "" {
		return nil, fmt.Errorf("%w: platform id and name are required", apperrors.ErrValidation)
	}
	if req.StartDate != "" && !validDate(req.StartDate) {
		return nil, fmt.Errorf("%w: start date must be YYYY-MM-DD", apperrors.ErrValidation)
	}
	if req.EndDate != "" && !validDate(req.EndDate) {
		return nil, fmt.Errorf("%w: end date must be YYYY-MM-DD", apperrors.ErrValidation)
	}

	service := &domain.Service{
		PlatformID:     req.PlatformID,
		Name:           req.Name,
		StartDate:      nilIfEmpty(req.StartDate),
		EndDate:        nilIfEmpty(req.EndDate),
		AttachmentPath: nilIfEmpty(req.AttachmentPath),
		CreatedBy:      creatorUserID,
	}
	if err := s.platformRepo.SaveService(ctx, service); err != nil {
		return nil, err
	}
	return service, nil
}

func (s *PlatformService) DeleteService(ctx context.Context, serviceID int64) error {
	return s.platformRepo.DeleteService(ctx, serviceID)
}
