package services

import (
	"context"

	"github.com/AbdulmosenAlmuzaini/malek/internal/core/domain"
	"github.com/AbdulmosenAlmuzaini/malek/internal/dto"
)

// UserSvcFacade defines the user management and credential-check
// operations exposed to the handler layer.
type UserSvcFacade interface {
	// Authenticate verifies a username/password pair. Returns
	// apperrors.ErrUnauthorized for unknown users and bad passwords
	// alike.
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)
	CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	DeleteUser(ctx context.Context, userID int64) error
}
