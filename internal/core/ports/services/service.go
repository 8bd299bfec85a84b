package services

// ServiceContainer bundles every service facade for injection into the
// handler layer.
type ServiceContainer struct {
	User      UserSvcFacade
	Operation OperationSvcFacade
	Transfer  TransferSvcFacade
	Setting   SettingSvcFacade
	Platform  PlatformSvcFacade
	Reporting ReportingSvcFacade
	Backup    BackupSvcFacade
}
