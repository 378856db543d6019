package dto

import (
	"time"

	"github.com/finbooks/finbooks_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateInvoiceRequest defines the data needed to create a new invoice.
// ClientID, when present and non-empty, must reference a client of the same
// owner. Amounts are persisted exactly as supplied.
type CreateInvoiceRequest struct {
	InvoiceID      *string          `json:"invoiceID" binding:"omitempty,uuid"`
	ClientID       *string          `json:"clientID"`
	InvoiceNumber  string           `json:"invoiceNumber" binding:"required"`
	IssueDate      *time.Time       `json:"issueDate"`
	DueDate        *time.Time       `json:"dueDate"`
	Currency       string           `json:"currency" binding:"omitempty,currencycode"`
	SubTotal       *decimal.Decimal `json:"subTotal"`
	TaxAmount      *decimal.Decimal `json:"taxAmount"`
	DiscountAmount *decimal.Decimal `json:"discountAmount"`
	TotalAmount    *decimal.Decimal `json:"totalAmount"`
	Status         *string          `json:"status" binding:"omitempty,oneof=DRAFT SENT PAID OVERDUE CANCELLED"`
	Notes          string           `json:"notes"`
	Terms          string           `json:"terms"`
}

// UpdateInvoiceRequest defines the data allowed for updating an invoice.
// A nil field is left untouched; a non-nil field overwrites, including
// a pointer to the empty string for ClientID which detaches the reference
// without any integrity check.
type UpdateInvoiceRequest struct {
	ClientID       *string          `json:"clientID"`
	InvoiceNumber  *string          `json:"invoiceNumber"`
	IssueDate      *time.Time       `json:"issueDate"`
	DueDate        *time.Time       `json:"dueDate"`
	Currency       *string          `json:"currency" binding:"omitempty,currencycode"`
	SubTotal       *decimal.Decimal `json:"subTotal"`
	TaxAmount      *decimal.Decimal `json:"taxAmount"`
	DiscountAmount *decimal.Decimal `json:"discountAmount"`
	TotalAmount    *decimal.Decimal `json:"totalAmount"`
	Status         *string          `json:"status" binding:"omitempty,oneof=DRAFT SENT PAID OVERDUE CANCELLED"`
	Notes          *string          `json:"notes"`
	Terms          *string          `json:"terms"`
}

// InvoiceResponse defines the data returned for an invoice.
type InvoiceResponse struct {
	InvoiceID      string               `json:"invoiceID"`
	OwnerID        string               `json:"ownerID"`
	ClientID       string               `json:"clientID"`
	InvoiceNumber  string               `json:"invoiceNumber"`
	IssueDate      *time.Time           `json:"issueDate"`
	DueDate        *time.Time           `json:"dueDate"`
	Currency       string               `json:"currency"`
	SubTotal       decimal.Decimal      `json:"subTotal"`
	TaxAmount      decimal.Decimal      `json:"taxAmount"`
	DiscountAmount decimal.Decimal      `json:"discountAmount"`
	TotalAmount    decimal.Decimal      `json:"totalAmount"`
	Status         domain.InvoiceStatus `json:"status"`
	Notes          string               `json:"notes"`
	Terms          string               `json:"terms"`
	CreatedAt      time.Time            `json:"createdAt"`
	UpdatedAt      time.Time            `json:"updatedAt"`
}

// ToInvoiceResponse converts a domain.Invoice to InvoiceResponse.
func ToInvoiceResponse(inv *domain.Invoice) InvoiceResponse {
	return InvoiceResponse{
		InvoiceID:      inv.InvoiceID,
		OwnerID:        inv.OwnerID,
		ClientID:       inv.ClientID,
		InvoiceNumber:  inv.InvoiceNumber,
		IssueDate:      inv.IssueDate,
		DueDate:        inv.DueDate,
		Currency:       inv.Currency,
		SubTotal:       inv.SubTotal,
		TaxAmount:      inv.TaxAmount,
		DiscountAmount: inv.DiscountAmount,
		TotalAmount:    inv.TotalAmount,
		Status:         inv.Status,
		Notes:          inv.Notes,
		Terms:          inv.Terms,
		CreatedAt:      inv.CreatedAt,
		UpdatedAt:      inv.UpdatedAt,
	}
}

// ListInvoicesResponse wraps the list of invoices.
type ListInvoicesResponse struct {
	Invoices []InvoiceResponse `json:"invoices"`
}

// ToListInvoicesResponse converts a slice of domain.Invoice to the list wrapper.
func ToListInvoicesResponse(invoices []domain.Invoice) ListInvoicesResponse {
	res := make([]InvoiceResponse, len(invoices))
	for i := range invoices {
		res[i] = ToInvoiceResponse(&invoices[i])
	}
	return ListInvoicesResponse{Invoices: res}
}
