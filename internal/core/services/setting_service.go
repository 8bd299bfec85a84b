package services

import (
	"context"
	"fmt"

	"github.com/AbdulmosenAlmuzaini/malek/internal/apperrors"
	"github.com/AbdulmosenAlmuzaini/malek/internal/core/domain"
	portsrepo "github.com/AbdulmosenAlmuzaini/malek/internal/core/ports/repositories"
	"github.com/AbdulmosenAlmuzaini/malek/internal/dto"
)

// SettingService implements lookup registry management.
type SettingService struct {
	settingRepo portsrepo.SettingRepository
}

// NewSettingService creates a new SettingService.
func NewSettingService(settingRepo portsrepo.SettingRepository) *SettingService {
	return &SettingService{settingRepo: settingRepo}
}

func (s *SettingService) CreateSetting(ctx context.Context, req dto.CreateSettingRequest) (*domain.Setting, error) {
	kind := domain.SettingKind(req.Kind)
	if req.Name == "" || !kind.IsValid() {
		return nil, fmt.Errorf("%w: name and a valid kind are required", apperrors.ErrValidation)
	}

	setting := &domain.Setting{Name: req.Name, Kind: kind}
	if err := s.settingRepo.SaveSetting(ctx, setting); err != nil {
		return nil, err
	}
	return setting, nil
}

func (s *SettingService) ListSettings(ctx context.Context) ([]domain.Setting, error) {
	settings, err := s.settingRepo.FindSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list settings: %w", err)
	}
	return settings, nil
}

func (s *SettingService) DeleteSetting(ctx context.Context, settingID int64) error {
	return s.settingRepo.DeleteSetting(ctx, settingID)
}
