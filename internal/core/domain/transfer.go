package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transfer is an outgoing payment to a named person. Transfers carry
// no direction field; they always count against the balance.
type Transfer struct {
	TransferID     int64           `json:"id"`
	Date           string          `json:"date"`
	PersonName     string          `json:"personName"`
	Amount         decimal.Decimal `json:"amount"`
	AttachmentPath *string         `json:"attachmentPath"`
	CreatedBy      int64           `json:"createdBy"`
	CreatedByName  *string         `json:"createdByName,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
}
