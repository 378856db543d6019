package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus enumerates the lifecycle states of an invoice.
type InvoiceStatus string

const (
	StatusDraft     InvoiceStatus = "DRAFT"
	StatusSent      InvoiceStatus = "SENT"
	StatusPaid      InvoiceStatus = "PAID"
	StatusOverdue   InvoiceStatus = "OVERDUE"
	StatusCancelled InvoiceStatus = "CANCELLED"
)

// Invoice is an owner-scoped invoice. ClientID is optional; when set it must
// reference a Client belonging to the same owner. Monetary amounts are stored
// exactly as supplied by the caller and never recomputed.
type Invoice struct {
	InvoiceID      string          `json:"invoiceID"`
	OwnerID        string          `json:"ownerID"`
	ClientID       string          `json:"clientID"` // empty = detached
	InvoiceNumber  string          `json:"invoiceNumber"`
	IssueDate      *time.Time      `json:"issueDate"`
	DueDate        *time.Time      `json:"dueDate"`
	Currency       string          `json:"currency"`
	SubTotal       decimal.Decimal `json:"subTotal"`
	TaxAmount      decimal.Decimal `json:"taxAmount"`
	DiscountAmount decimal.Decimal `json:"discountAmount"`
	TotalAmount    decimal.Decimal `json:"totalAmount"`
	Status         InvoiceStatus   `json:"status"`
	Notes          string          `json:"notes"`
	Terms          string          `json:"terms"`
	AuditFields
}
