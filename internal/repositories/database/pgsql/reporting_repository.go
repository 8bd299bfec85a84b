package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/AbdulmosenAlmuzaini/malek/internal/core/domain"
	portsrepo "github.com/AbdulmosenAlmuzaini/malek/internal/core/ports/repositories"
)

type reportingRepository struct {
	BaseRepository
}

// NewReportingRepository creates a new pgsql-backed reporting
// repository.
func NewReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{BaseRepository: BaseRepository{Pool: db}}
}

func (r *reportingRepository) OperationTotals(ctx context.Context) (decimal.Decimal, decimal.Decimal, error) {
	query := `
		SELECT
			COALESCE(SUM(CASE WHEN direction = 'in' THEN amount ELSE 0 END), 0) AS total_in,
			COALESCE(SUM(CASE WHEN direction = 'out' THEN amount ELSE 0 END), 0) AS total_out
		FROM operations;
	`
	var totalIn, totalOut decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query).Scan(&totalIn, &totalOut); err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("error querying operation totals: %w", err)
	}
	return totalIn, totalOut, nil
}

func (r *reportingRepository) TransferTotal(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.Pool.QueryRow(ctx, `SELECT COALESCE(SUM(amount), 0) FROM transfers;`).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("error querying transfer total: %w", err)
	}
	return total, nil
}

func (r *reportingRepository) CategoryTotals(ctx context.Context) ([]domain.GroupTotal, error) {
	// Null categories form their own group; they are kept here and in
	// the response.
	query := `
		SELECT category, SUM(amount) AS total
		FROM operations
		WHERE direction = 'out'
		GROUP BY category
		ORDER BY total DESC;
	`
	return r.queryGroupTotals(ctx, query)
}

func (r *reportingRepository) PersonTotals(ctx context.Context) ([]domain.GroupTotal, error) {
	query := `
		SELECT person_name, SUM(amount) AS total
		FROM transfers
		GROUP BY person_name
		ORDER BY total DESC;
	`
	return r.queryGroupTotals(ctx, query)
}

func (r *reportingRepository) PropertyTotals(ctx context.Context) ([]domain.GroupTotal, error) {
	// Both directions count here. Null groups are returned; the
	// service filters them out, unlike categories/persons.
	query := `
		SELECT property_type, SUM(amount) AS total
		FROM operations
		GROUP BY property_type
		ORDER BY total DESC;
	`
	return r.queryGroupTotals(ctx, query)
}

func (r *reportingRepository) queryGroupTotals(ctx context.Context, query string) ([]domain.GroupTotal, error) {
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying group totals: %w", err)
	}
	defer rows.Close()

	result := []domain.GroupTotal{}
	for rows.Next() {
		var row domain.GroupTotal
		if err := rows.Scan(&row.Key, &row.Total); err != nil {
			return nil, fmt.Errorf("error scanning group total row: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating group total rows: %w", err)
	}
	return result, nil
}

func (r *reportingRepository) RecentOperations(ctx context.Context, limit int) ([]domain.RecentEntry, error) {
	// Ordered by creation time, not business date; the service
	// re-sorts the merged feed by business date.
	query := `
		SELECT operation_id, date, amount, direction, category
		FROM operations
		ORDER BY created_at DESC
		LIMIT $1;
	`
	rows, err := r.Pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("error querying recent operations: %w", err)
	}
	defer rows.Close()

	result := []domain.RecentEntry{}
	for rows.Next() {
		var entry domain.RecentEntry
		if err := rows.Scan(&entry.EntryID, &entry.Date, &entry.Amount, &entry.Direction, &entry.Details); err != nil {
			return nil, fmt.Errorf("error scanning recent operation row: %w", err)
		}
		entry.Origin = domain.OriginOperation
		result = append(result, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating recent operation rows: %w", err)
	}
	return result, nil
}

func (r *reportingRepository) RecentTransfers(ctx context.Context, limit int) ([]domain.RecentEntry, error) {
	query := `
		SELECT transfer_id, date, amount, person_name
		FROM transfers
		ORDER BY created_at DESC
		LIMIT $1;
	`
	rows, err := r.Pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("error querying recent transfers: %w", err)
	}
	defer rows.Close()

	result := []domain.RecentEntry{}
	for rows.Next() {
		var entry domain.RecentEntry
		if err := rows.Scan(&entry.EntryID, &entry.Date, &entry.Amount, &entry.Details); err != nil {
			return nil, fmt.Errorf("error scanning recent transfer row: %w", err)
		}
		// Transfers are always outflows in the feed.
		entry.Direction = domain.DirectionOut
		entry.Origin = domain.OriginTransfer
		result = append(result, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating recent transfer rows: %w", err)
	}
	return result, nil
}
