package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/AbdulmosenAlmuzaini/malek/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every pgsql repository onto one shared
// pool.
func NewRepositoryProvider(db *pgxpool.Pool) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		User:      NewUserRepository(db),
		Operation: NewOperationRepository(db),
		Transfer:  NewTransferRepository(db),
		Setting:   NewSettingRepository(db),
		Platform:  NewPlatformRepository(db),
		Reporting: NewReportingRepository(db),
		Backup:    NewBackupRepository(db),
	}
}
