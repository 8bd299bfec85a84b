package repositories

import (
	"context"

	"github.com/AbdulmosenAlmuzaini/malek/internal/core/domain"
)

// SettingRepository defines persistence operations for lookup entries.
type SettingRepository interface {
	// SaveSetting inserts a lookup entry. Returns
	// apperrors.ErrDuplicate when (name, kind) already exists.
	SaveSetting(ctx context.Context, setting *domain.Setting) error
	FindSettings(ctx context.Context) ([]domain.Setting, error)
	DeleteSetting(ctx context.Context, settingID int64) error
}
