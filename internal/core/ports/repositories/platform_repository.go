package repositories

import (
	"context"

	"github.com/AbdulmosenAlmuzaini/malek/internal/core/domain"
)

// PlatformRepository defines persistence operations for platforms and
// their owned services.
type PlatformRepository interface {
	SavePlatform(ctx context.Context, platform *domain.Platform) error
	// FindPlatforms lists platforms newest first with their services
	// embedded, and the creator's display name joined in.
	FindPlatforms(ctx context.Context) ([]domain.Platform, error)
	// DeletePlatform removes the platform; its services go with it via
	// the cascade constraint.
	DeletePlatform(ctx context.Context, platformID int64) error

	// SaveService inserts a service owned by an existing platform.
	// Returns apperrors.ErrValidation when the platform is missing.
	SaveService(ctx context.Context, service *domain.Service) error
	DeleteService(ctx context.Context, serviceID int64) error
}
