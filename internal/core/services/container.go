package services

import (
	portsrepo "github.com/AbdulmosenAlmuzaini/malek/internal/core/ports/repositories"
	portssvc "github.com/AbdulmosenAlmuzaini/malek/internal/core/ports/services"
	"github.com/AbdulmosenAlmuzaini/malek/internal/platform/config"
)

// NewServiceContainer wires every service onto the repository
// provider.
func NewServiceContainer(repos *portsrepo.RepositoryProvider, sender BackupSender, cfg *config.Config) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		User:      NewUserService(repos.User),
		Operation: NewOperationService(repos.Operation),
		Transfer:  NewTransferService(repos.Transfer),
		Setting:   NewSettingService(repos.Setting),
		Platform:  NewPlatformService(repos.Platform),
		Reporting: NewReportingService(repos.Reporting),
		Backup:    NewBackupService(repos.Backup, sender, cfg),
	}
}
