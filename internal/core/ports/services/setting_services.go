package services

import (
	"context"

	"github.com/AbdulmosenAlmuzaini/malek/internal/core/domain"
	"github.com/AbdulmosenAlmuzaini/malek/internal/dto"
)

// SettingSvcFacade defines operations over the lookup registry.
type SettingSvcFacade interface {
	// CreateSetting returns apperrors.ErrDuplicate when the
	// (name, kind) pair already exists.
	CreateSetting(ctx context.Context, req dto.CreateSettingRequest) (*domain.Setting, error)
	ListSettings(ctx context.Context) ([]domain.Setting, error)
	DeleteSetting(ctx context.Context, settingID int64) error
}
