package services

import (
	"context"

	"github.com/AbdulmosenAlmuzaini/malek/internal/core/domain"
	"github.com/AbdulmosenAlmuzaini/malek/internal/dto"
)

// PlatformSvcFacade defines operations over subscription platforms and
// their services.
type PlatformSvcFacade interface {
	CreatePlatform(ctx context.Context, req dto.CreatePlatformRequest, creatorUserID int64) (*domain.Platform, error)
	// ListPlatforms embeds each platform's services.
	ListPlatforms(ctx context.Context) ([]domain.Platform, error)
	// DeletePlatform cascades to the platform's services.
	DeletePlatform(ctx context.Context, platformID int64) error

	CreateService(ctx context.Context, req dto.CreateServiceRequest, creatorUserID int64) (*domain.Service, error)
	DeleteService(ctx context.Context, serviceID int64) error
}
