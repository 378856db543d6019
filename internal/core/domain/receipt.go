package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Receipt records a payment, optionally linked to an invoice of the same owner.
type Receipt struct {
	ReceiptID     string          `json:"receiptID"`
	OwnerID       string          `json:"ownerID"`
	InvoiceID     string          `json:"invoiceID"` // empty = detached
	ReceiptNumber string          `json:"receiptNumber"`
	PaymentDate   *time.Time      `json:"paymentDate"`
	AmountPaid    decimal.Decimal `json:"amountPaid"`
	Currency      string          `json:"currency"`
	PaymentMethod string          `json:"paymentMethod"`
	Notes         string          `json:"notes"`
	AuditFields
}
