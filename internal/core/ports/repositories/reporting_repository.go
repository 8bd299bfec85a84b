package repositories

import (
	"context"

	"github.com/AbdulmosenAlmuzaini/malek/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReportingRepository defines the read-only aggregation queries the
// stats service is built on. Each call is an independent point-in-time
// read; no snapshot isolation is required across them.
type ReportingRepository interface {
	// OperationTotals returns the summed "in" and "out" amounts, zero
	// when no rows exist.
	OperationTotals(ctx context.Context) (in decimal.Decimal, out decimal.Decimal, err error)
	// TransferTotal returns the summed transfer amount, zero when no
	// rows exist.
	TransferTotal(ctx context.Context) (decimal.Decimal, error)
	// CategoryTotals groups out-direction operations by category,
	// descending by sum. Null categories form their own group.
	CategoryTotals(ctx context.Context) ([]domain.GroupTotal, error)
	// PersonTotals groups transfers by person name, descending by sum.
	PersonTotals(ctx context.Context) ([]domain.GroupTotal, error)
	// PropertyTotals groups operations of both directions by property
	// type, descending by sum. Null groups are included here; the
	// service drops them.
	PropertyTotals(ctx context.Context) ([]domain.GroupTotal, error)
	// RecentOperations returns the limit most recently created
	// operations (by creation time, not business date).
	RecentOperations(ctx context.Context, limit int) ([]domain.RecentEntry, error)
	// RecentTransfers returns the limit most recently created
	// transfers, direction already forced to "out".
	RecentTransfers(ctx context.Context, limit int) ([]domain.RecentEntry, error)
}

// BackupRepository exports the persisted store for the backup mailer.
type BackupRepository interface {
	// ExportAll serializes every table into a single JSON snapshot.
	ExportAll(ctx context.Context) ([]byte, error)
}
