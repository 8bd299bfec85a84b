package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/AbdulmosenAlmuzaini/malek/internal/core/domain"
	portsrepo "github.com/AbdulmosenAlmuzaini/malek/internal/core/ports/repositories"
)

const (
	recentPerSource = 5
	recentFeedMax   = 8
)

// ReportingService computes the dashboard stats. Every call reads the
// store fresh; the sub-queries are independent point-in-time reads and
// a write landing between them is tolerated.
type ReportingService struct {
	reportingRepo portsrepo.ReportingRepository
}

// NewReportingService creates a new ReportingService.
func NewReportingService(reportingRepo portsrepo.ReportingRepository) *ReportingService {
	return &ReportingService{reportingRepo: reportingRepo}
}

// GetStats assembles the dashboard view: totals, the balance, the
// three breakdowns and the merged recent-activity feed. An empty
// ledger yields zero totals and empty lists, never an error.
func (s *ReportingService) GetStats(ctx context.Context) (*domain.Stats, error) {
	totalIn, totalOut, err := s.reportingRepo.OperationTotals(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compute operation totals: %w", err)
	}
	totalTransfers, err := s.reportingRepo.TransferTotal(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compute transfer total: %w", err)
	}

	categories, err := s.reportingRepo.CategoryTotals(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compute category breakdown: %w", err)
	}
	persons, err := s.reportingRepo.PersonTotals(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compute person breakdown: %w", err)
	}
	properties, err := s.reportingRepo.PropertyTotals(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compute property breakdown: %w", err)
	}

	recentOps, err := s.reportingRepo.RecentOperations(ctx, recentPerSource)
	if err != nil {
		return nil, fmt.Errorf("failed to read recent operations: %w", err)
	}
	recentTransfers, err := s.reportingRepo.RecentTransfers(ctx, recentPerSource)
	if err != nil {
		return nil, fmt.Errorf("failed to read recent transfers: %w", err)
	}

	return &domain.Stats{
		TotalIn:        totalIn,
		TotalOut:       totalOut,
		TotalTransfers: totalTransfers,
		// Incomes minus expenses and transfers; negative when the
		// organization overspent.
		Balance:    totalIn.Sub(totalOut.Add(totalTransfers)),
		Categories: categories,
		Persons:    persons,
		Properties: dropEmptyKeys(properties),
		Recent:     mergeRecent(recentOps, recentTransfers),
	}, nil
}

// dropEmptyKeys removes groups with a null or empty key. Applied to
// the property breakdown only; categories and persons keep their null
// groups.
func dropEmptyKeys(groups []domain.GroupTotal) []domain.GroupTotal {
	out := []domain.GroupTotal{}
	for _, g := range groups {
		if g.Key != nil && *g.Key != "" {
			out = append(out, g)
		}
	}
	return out
}

// mergeRecent combines the two per-source feeds (each already limited
// by creation time) into one list sorted descending by business date
// and truncated to the feed maximum. Equal dates order by origin
// (operations before transfers), then id descending, so the feed is
// deterministic.
func mergeRecent(ops, transfers []domain.RecentEntry) []domain.RecentEntry {
	merged := make([]domain.RecentEntry, 0, len(ops)+len(transfers))
	merged = append(merged, ops...)
	merged = append(merged, transfers...)

	sort.Slice(merged, func(i, j int) bool {
		// Dates are YYYY-MM-DD strings; lexical order is
		// chronological order.
		if merged[i].Date != merged[j].Date {
			return merged[i].Date > merged[j].Date
		}
		if merged[i].Origin != merged[j].Origin {
			return merged[i].Origin == domain.OriginOperation
		}
		return merged[i].EntryID > merged[j].EntryID
	})

	if len(merged) > recentFeedMax {
		merged = merged[:recentFeedMax]
	}
	return merged
}
