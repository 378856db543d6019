package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Receipt is the DB representation of a receipt row.
// InvoiceID is the empty string when the reference is detached (NULL in DB).
type Receipt struct {
	ReceiptID     string
	OwnerID       string
	InvoiceID     string
	ReceiptNumber string
	PaymentDate   *time.Time
	AmountPaid    decimal.Decimal
	Currency      string
	PaymentMethod string
	Notes         string
	AuditFields
}
