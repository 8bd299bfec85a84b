package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/AbdulmosenAlmuzaini/malek/internal/apperrors"
	"github.com/AbdulmosenAlmuzaini/malek/internal/core/domain"
	portsrepo "github.com/AbdulmosenAlmuzaini/malek/internal/core/ports/repositories"
)

type userRepository struct {
	BaseRepository
}

// NewUserRepository creates a new pgsql-backed user repository.
func NewUserRepository(db *pgxpool.Pool) portsrepo.UserRepository {
	return &userRepository{BaseRepository: BaseRepository{Pool: db}}
}

func (r *userRepository) SaveUser(ctx context.Context, user *domain.User) error {
	query := `
        INSERT INTO users (username, name, email, password_hash, role)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING user_id, created_at;
    `
	err := r.Pool.QueryRow(ctx, query,
		user.Username,
		user.Name,
		user.Email,
		user.PasswordHash,
		user.Role,
	).Scan(&user.UserID, &user.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `
        SELECT user_id, username, name, email, password_hash, role, created_at
        FROM users
        WHERE username = $1;
    `
	var user domain.User
	err := r.Pool.QueryRow(ctx, query, username).Scan(
		&user.UserID,
		&user.Username,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
		&user.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user by username: %w", err)
	}
	return &user, nil
}

func (r *userRepository) FindUsers(ctx context.Context) ([]domain.User, error) {
	query := `
        SELECT user_id, username, name, email, role, created_at
        FROM users
        ORDER BY user_id DESC;
    `
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	users := []domain.User{}
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(
			&user.UserID,
			&user.Username,
			&user.Name,
			&user.Email,
			&user.Role,
			&user.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, user)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", rows.Err())
	}
	return users, nil
}

func (r *userRepository) DeleteUser(ctx context.Context, userID int64) error {
	// Deleting a missing id succeeds as a no-op, same as concurrent
	// double deletes.
	_, err := r.Pool.Exec(ctx, `DELETE FROM users WHERE user_id = $1;`, userID)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

func (r *userRepository) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM users;`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}
