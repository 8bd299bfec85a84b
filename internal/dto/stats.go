package dto

import (
	"github.com/AbdulmosenAlmuzaini/malek/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CategoryTotal is one category breakdown row. A nil category is the
// group of operations recorded without one.
type CategoryTotal struct {
	Category *string         `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// PersonTotal is one person breakdown row.
type PersonTotal struct {
	PersonName *string         `json:"person_name"`
	Total      decimal.Decimal `json:"total"`
}

// PropertyTotal is one property-type breakdown row. Null/empty
// property groups never appear here.
type PropertyTotal struct {
	PropertyType *string         `json:"property_type"`
	Total        decimal.Decimal `json:"total"`
}

// RecentEntryResponse is one row of the merged recent-activity feed.
type RecentEntryResponse struct {
	Date      string          `json:"date"`
	Amount    decimal.Decimal `json:"amount"`
	Direction string          `json:"type"`
	Details   *string         `json:"details"`
	Origin    string          `json:"origin"`
}

// StatsResponse is the full dashboard payload.
type StatsResponse struct {
	TotalIn        decimal.Decimal       `json:"total_in"`
	TotalOut       decimal.Decimal       `json:"total_out"`
	TotalTransfers decimal.Decimal       `json:"total_transfers"`
	Balance        decimal.Decimal       `json:"balance"`
	Categories     []CategoryTotal       `json:"categories"`
	Persons        []PersonTotal         `json:"persons"`
	Properties     []PropertyTotal       `json:"properties"`
	Recent         []RecentEntryResponse `json:"recent"`
}

// ToStatsResponse converts the domain stats.
func ToStatsResponse(s *domain.Stats) StatsResponse {
	resp := StatsResponse{
		TotalIn:        s.TotalIn,
		TotalOut:       s.TotalOut,
		TotalTransfers: s.TotalTransfers,
		Balance:        s.Balance,
		Categories:     make([]CategoryTotal, len(s.Categories)),
		Persons:        make([]PersonTotal, len(s.Persons)),
		Properties:     make([]PropertyTotal, len(s.Properties)),
		Recent:         make([]RecentEntryResponse, len(s.Recent)),
	}
	for i, c := range s.Categories {
		resp.Categories[i] = CategoryTotal{Category: c.Key, Total: c.Total}
	}
	for i, p := range s.Persons {
		resp.Persons[i] = PersonTotal{PersonName: p.Key, Total: p.Total}
	}
	for i, p := range s.Properties {
		resp.Properties[i] = PropertyTotal{PropertyType: p.Key, Total: p.Total}
	}
	for i, r := range s.Recent {
		resp.Recent[i] = RecentEntryResponse{
			Date:      r.Date,
			Amount:    r.Amount,
			Direction: string(r.Direction),
			Details:   r.Details,
			Origin:    string(r.Origin),
		}
	}
	return resp
}
