package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice is the DB representation of an invoice row.
// ClientID is the empty string when the reference is detached (NULL in DB).
type Invoice struct {
	InvoiceID      string
	OwnerID        string
	ClientID       string
	InvoiceNumber  string
	IssueDate      *time.Time
	DueDate        *time.Time
	Currency       string
	SubTotal       decimal.Decimal
	TaxAmount      decimal.Decimal
	DiscountAmount decimal.Decimal
	TotalAmount    decimal.Decimal
	Status         string
	Notes          string
	Terms          string
	AuditFields
}
