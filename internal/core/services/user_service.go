package services

import (
	"context"
	"fmt"

	"github.com/AbdulmosenAlmuzaini/malek/internal/apperrors"
	"github.com/AbdulmosenAlmuzaini/malek/internal/core/domain"
	portsrepo "github.com/AbdulmosenAlmuzaini/malek/internal/core/ports/repositories"
	"github.com/AbdulmosenAlmuzaini/malek/internal/dto"
	"github.com/AbdulmosenAlmuzaini/malek/internal/utils"
)

// UserService implements user management and credential checks.
type UserService struct {
	userRepo portsrepo.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo portsrepo.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// Authenticate verifies a username/password pair. Unknown user and
// wrong password both return ErrUnauthorized so callers cannot
// distinguish them.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user for login: %w", err)
	}
	if user == nil || !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperrors.ErrUnauthorized
	}
	return user, nil
}

func (s *UserService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	role := domain.Role(req.Role)
	if !role.IsValid() {
		return nil, fmt.Errorf("%w: invalid role", apperrors.ErrValidation)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Username:     req.Username,
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         role,
	}
	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.userRepo.FindUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (s *UserService) DeleteUser(ctx context.Context, userID int64) error {
	return s.userRepo.DeleteUser(ctx, userID)
}
