package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/AbdulmosenAlmuzaini/malek/internal/core/domain"
	portsrepo "github.com/AbdulmosenAlmuzaini/malek/internal/core/ports/repositories"
	"github.com/AbdulmosenAlmuzaini/malek/internal/platform/config"
	"github.com/AbdulmosenAlmuzaini/malek/internal/utils"
)

// Default lookup rows seeded on a fresh database.
var (
	defaultPropertyTypes = []string{"سكني", "تجاري", "صناعي"}
	defaultCategories    = []string{"صيانة", "إيجار", "فواتير", "أخرى"}
)

// Seed creates the admin user and the default lookup entries, but only
// when the database holds no users yet. Reruns on a populated database
// are no-ops.
func Seed(ctx context.Context, repos *portsrepo.RepositoryProvider, cfg *config.Config, logger *slog.Logger) error {
	count, err := repos.User.CountUsers(ctx)
	if err != nil {
		return fmt.Errorf("failed to check for existing users: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := utils.HashPassword(cfg.AdminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}
	admin := &domain.User{
		Username:     cfg.AdminUsername,
		Name:         cfg.AdminName,
		Email:        cfg.AdminEmail,
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
	}
	if err := repos.User.SaveUser(ctx, admin); err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	for _, name := range defaultPropertyTypes {
		if err := repos.Setting.SaveSetting(ctx, &domain.Setting{Name: name, Kind: domain.SettingPropertyType}); err != nil {
			return fmt.Errorf("failed to seed property type %q: %w", name, err)
		}
	}
	for _, name := range defaultCategories {
		if err := repos.Setting.SaveSetting(ctx, &domain.Setting{Name: name, Kind: domain.SettingCategory}); err != nil {
			return fmt.Errorf("failed to seed category %q: %w", name, err)
		}
	}

	logger.Info("Seeded admin user and default lookup entries", slog.String("username", cfg.AdminUsername))
	return nil
}
