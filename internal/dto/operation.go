package dto

import (
	"time"

	"github.com/AbdulmosenAlmuzaini/malek/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateOperationRequest carries the multipart form fields of a new
// operation. Amount stays a string here: an empty value coerces to 0,
// a non-numeric one is a validation error, both decided in the
// service.
type CreateOperationRequest struct {
	Date            string `form:"date"`
	PropertyType    string `form:"property_type"`
	ReferenceNumber string `form:"reference_number"`
	Amount          string `form:"amount"`
	Category        string `form:"category"`
	Description     string `form:"description"`
	Direction       string `form:"direction"`
	AttachmentPath  string `form:"-"`
}

// UpdateOperationRequest is the full-row replace payload. Date and
// direction fall back to the stored row when omitted; a missing
// attachment keeps the existing one.
type UpdateOperationRequest struct {
	Date            string `form:"date"`
	PropertyType    string `form:"property_type"`
	ReferenceNumber string `form:"reference_number"`
	Amount          string `form:"amount"`
	Category        string `form:"category"`
	Description     string `form:"description"`
	Direction       string `form:"direction"`
	AttachmentPath  string `form:"-"`
}

// OperationResponse is the JSON shape of a single operation.
type OperationResponse struct {
	ID              int64           `json:"id"`
	Date            string          `json:"date"`
	PropertyType    *string         `json:"property_type"`
	ReferenceNumber *string         `json:"reference_number"`
	Amount          decimal.Decimal `json:"amount"`
	Category        *string         `json:"category"`
	Description     *string         `json:"description"`
	AttachmentPath  *string         `json:"attachment_path"`
	Direction       string          `json:"type"`
	CreatedBy       int64           `json:"created_by"`
	CreatedByName   *string         `json:"created_by_name"`
	CreatedAt       time.Time       `json:"created_at"`
}

// ToOperationResponse converts a domain operation.
func ToOperationResponse(op *domain.Operation) OperationResponse {
	return OperationResponse{
		ID:              op.OperationID,
		Date:            op.Date,
		PropertyType:    op.PropertyType,
		ReferenceNumber: op.ReferenceNumber,
		Amount:          op.Amount,
		Category:        op.Category,
		Description:     op.Description,
		AttachmentPath:  op.AttachmentPath,
		Direction:       string(op.Direction),
		CreatedBy:       op.CreatedBy,
		CreatedByName:   op.CreatedByName,
		CreatedAt:       op.CreatedAt,
	}
}

// ToListOperationsResponse converts a slice of domain operations.
func ToListOperationsResponse(ops []domain.Operation) []OperationResponse {
	out := make([]OperationResponse, len(ops))
	for i := range ops {
		out[i] = ToOperationResponse(&ops[i])
	}
	return out
}
