package dto

import (
	"time"

	"github.com/AbdulmosenAlmuzaini/malek/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransferRequest carries the multipart form fields of a new
// transfer. Date, person name and a parseable amount are all required.
type CreateTransferRequest struct {
	Date           string `form:"date"`
	PersonName     string `form:"person_name"`
	Amount         string `form:"amount"`
	AttachmentPath string `form:"-"`
}

// TransferResponse is the JSON shape of a single transfer.
type TransferResponse struct {
	ID             int64           `json:"id"`
	Date           string          `json:"date"`
	PersonName     string          `json:"person_name"`
	Amount         decimal.Decimal `json:"amount"`
	AttachmentPath *string         `json:"attachment_path"`
	CreatedBy      int64           `json:"created_by"`
	CreatedByName  *string         `json:"created_by_name"`
	CreatedAt      time.Time       `json:"created_at"`
}

// ToTransferResponse converts a domain transfer.
func ToTransferResponse(t *domain.Transfer) TransferResponse {
	return TransferResponse{
		ID:             t.TransferID,
		Date:           t.Date,
		PersonName:     t.PersonName,
		Amount:         t.Amount,
		AttachmentPath: t.AttachmentPath,
		CreatedBy:      t.CreatedBy,
		CreatedByName:  t.CreatedByName,
		CreatedAt:      t.CreatedAt,
	}
}

// ToListTransfersResponse converts a slice of domain transfers.
func ToListTransfersResponse(transfers []domain.Transfer) []TransferResponse {
	out := make([]TransferResponse, len(transfers))
	for i := range transfers {
		out[i] = ToTransferResponse(&transfers[i])
	}
	return out
}
