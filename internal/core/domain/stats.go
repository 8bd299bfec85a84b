package domain

import "github.com/shopspring/decimal"

// RecentOrigin tags a recent-activity entry with the table it came
// from.
type RecentOrigin string

const (
	OriginOperation RecentOrigin = "op"
	OriginTransfer  RecentOrigin = "tra"
)

// GroupTotal is one row of a breakdown: a grouping key (nil when the
// source rows carry no value) and the summed amount.
type GroupTotal struct {
	Key   *string
	Total decimal.Decimal
}

// RecentEntry is one row of the merged recent-activity feed. For
// transfers the direction is forced to "out" and Details carries the
// person name; for operations Details carries the category.
type RecentEntry struct {
	EntryID   int64
	Date      string
	Amount    decimal.Decimal
	Direction Direction
	Details   *string
	Origin    RecentOrigin
}

// Stats is the full dashboard view computed from the ledger.
type Stats struct {
	TotalIn        decimal.Decimal
	TotalOut       decimal.Decimal
	TotalTransfers decimal.Decimal
	Balance        decimal.Decimal
	Categories     []GroupTotal
	Persons        []GroupTotal
	Properties     []GroupTotal
	Recent         []RecentEntry
}
