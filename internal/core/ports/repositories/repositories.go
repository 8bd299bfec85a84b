package repositories

// RepositoryProvider bundles all repository implementations for
// injection into the service container.
type RepositoryProvider struct {
	User      UserRepository
	Operation OperationRepository
	Transfer  TransferRepository
	Setting   SettingRepository
	Platform  PlatformRepository
	Reporting ReportingRepository
	Backup    BackupRepository
}
