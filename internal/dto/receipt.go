package dto

import (
	"time"

	"github.com/finbooks/finbooks_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateReceiptRequest defines the data needed to create a new receipt.
// InvoiceID, when present and non-empty, must reference an invoice of the
// same owner.
type CreateReceiptRequest struct {
	ReceiptID     *string          `json:"receiptID" binding:"omitempty,uuid"`
	InvoiceID     *string          `json:"invoiceID"`
	ReceiptNumber string           `json:"receiptNumber" binding:"required"`
	PaymentDate   *time.Time       `json:"paymentDate"`
	AmountPaid    *decimal.Decimal `json:"amountPaid" binding:"required"`
	Currency      string           `json:"currency" binding:"omitempty,currencycode"`
	PaymentMethod string           `json:"paymentMethod"`
	Notes         string           `json:"notes"`
}

// UpdateReceiptRequest defines the data allowed for updating a receipt.
// A nil field is left untouched; a pointer to the empty string for InvoiceID
// detaches the reference without any integrity check.
type UpdateReceiptRequest struct {
	InvoiceID     *string          `json:"invoiceID"`
	ReceiptNumber *string          `json:"receiptNumber"`
	PaymentDate   *time.Time       `json:"paymentDate"`
	AmountPaid    *decimal.Decimal `json:"amountPaid"`
	Currency      *string          `json:"currency" binding:"omitempty,currencycode"`
	PaymentMethod *string          `json:"paymentMethod"`
	Notes         *string          `json:"notes"`
}

// ReceiptResponse defines the data returned for a receipt.
type ReceiptResponse struct {
	ReceiptID     string          `json:"receiptID"`
	OwnerID       string          `json:"ownerID"`
	InvoiceID     string          `json:"invoiceID"`
	ReceiptNumber string          `json:"receiptNumber"`
	PaymentDate   *time.Time      `json:"paymentDate"`
	AmountPaid    decimal.Decimal `json:"amountPaid"`
	Currency      string          `json:"currency"`
	PaymentMethod string          `json:"paymentMethod"`
	Notes         string          `json:"notes"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// ToReceiptResponse converts a domain.Receipt to ReceiptResponse.
func ToReceiptResponse(r *domain.Receipt) ReceiptResponse {
	return ReceiptResponse{
		ReceiptID:     r.ReceiptID,
		OwnerID:       r.OwnerID,
		InvoiceID:     r.InvoiceID,
		ReceiptNumber: r.ReceiptNumber,
		PaymentDate:   r.PaymentDate,
		AmountPaid:    r.AmountPaid,
		Currency:      r.Currency,
		PaymentMethod: r.PaymentMethod,
		Notes:         r.Notes,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

// ListReceiptsResponse wraps the list of receipts.
type ListReceiptsResponse struct {
	Receipts []ReceiptResponse `json:"receipts"`
}

// ToListReceiptsResponse converts a slice of domain.Receipt to the list wrapper.
func ToListReceiptsResponse(receipts []domain.Receipt) ListReceiptsResponse {
	res := make([]ReceiptResponse, len(receipts))
	for i := range receipts {
		res[i] = ToReceiptResponse(&receipts[i])
	}
	return ListReceiptsResponse{Receipts: res}
}
