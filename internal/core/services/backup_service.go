package services

import (
	"context"
	"fmt"
	"time"

	portsrepo "github.com/AbdulmosenAlmuzaini/malek/internal/core/ports/repositories"
	"github.com/AbdulmosenAlmuzaini/malek/internal/platform/config"
)

// BackupSender transmits a backup snapshot to a recipient. Implemented
// by the SMTP mailer.
type BackupSender interface {
	SendBackup(to, subject, body, filename string, attachment []byte) error
}

// BackupService exports the persisted store and mails the snapshot.
type BackupService struct {
	backupRepo portsrepo.BackupRepository
	sender     BackupSender
	cfg        *config.Config
}

// NewBackupService creates a new BackupService.
func NewBackupService(backupRepo portsrepo.BackupRepository, sender BackupSender, cfg *config.Config) *BackupService {
	return &BackupService{backupRepo: backupRepo, sender: sender, cfg: cfg}
}

// RunBackup exports every table and sends the snapshot to the
// configured recipient. Single attempt, no retries; the caller decides
// whether to surface or swallow the error.
func (s *BackupService) RunBackup(ctx context.Context) error {
	if s.cfg.SMTPUser == "" || s.cfg.SMTPPass == "" {
		return fmt.Errorf("SMTP credentials missing, backup skipped")
	}
	recipient := s.cfg.BackupEmail
	if recipient == "" {
		recipient = s.cfg.SMTPUser
	}

	snapshot, err := s.backupRepo.ExportAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to export database: %w", err)
	}

	day := time.Now().Format("2006-01-02")
	err = s.sender.SendBackup(
		recipient,
		fmt.Sprintf("Daily Backup - %s", day),
		"Attached is the daily database backup.",
		fmt.Sprintf("backup-%s.json", day),
		snapshot,
	)
	if err != nil {
		return fmt.Errorf("failed to send backup email: %w", err)
	}
	return nil
}
