package repositories

import (
	"context"

	"github.com/AbdulmosenAlmuzaini/malek/internal/core/domain"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	// SaveUser inserts a new user and fills in its generated id.
	// Returns apperrors.ErrDuplicate on a username/email collision.
	SaveUser(ctx context.Context, user *domain.User) error
	// FindUserByUsername returns nil without error when no user exists.
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
	FindUsers(ctx context.Context) ([]domain.User, error)
	DeleteUser(ctx context.Context, userID int64) error
	CountUsers(ctx context.Context) (int64, error)
}
