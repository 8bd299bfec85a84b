package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Direction marks an operation as a cash inflow or outflow.
type Direction string

const (
	DirectionIn  Direction = "in"
	DirectionOut Direction = "out"
)

// IsValid reports whether the direction is "in" or "out".
func (d Direction) IsValid() bool {
	return d == DirectionIn || d == DirectionOut
}

// Operation is a single recorded cash movement. Dates are calendar
// date strings (YYYY-MM-DD); lexical order equals chronological order.
// Property type and category reference the lookup registry by
// convention only, not by foreign key.
type Operation struct {
	OperationID     int64           `json:"id"`
	Date            string          `json:"date"`
	PropertyType    *string         `json:"propertyType"`
	ReferenceNumber *string         `json:"referenceNumber"`
	Amount          decimal.Decimal `json:"amount"`
	Category        *string         `json:"category"`
	Description     *string         `json:"description"`
	AttachmentPath  *string         `json:"attachmentPath"`
	Direction       Direction       `json:"direction"`
	CreatedBy       int64           `json:"createdBy"`
	CreatedByName   *string         `json:"createdByName,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
}
