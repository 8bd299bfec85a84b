package services

import (
	"context"

	"github.com/AbdulmosenAlmuzaini/malek/internal/core/domain"
)

// ReportingSvcFacade computes the dashboard view. Always a fresh read;
// no caching or precomputation.
type ReportingSvcFacade interface {
	GetStats(ctx context.Context) (*domain.Stats, error)
}

// BackupSvcFacade exports the store and mails the snapshot.
type BackupSvcFacade interface {
	// RunBackup exports all tables and sends them to the configured
	// recipient. Returns an error when SMTP is unconfigured or the
	// send fails; the caller decides whether to surface or swallow it.
	RunBackup(ctx context.Context) error
}
