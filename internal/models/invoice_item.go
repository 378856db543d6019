package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceItem is the DB representation of an invoice line row.
type InvoiceItem struct {
	ItemID      string
	InvoiceID   string
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	LineTotal   decimal.Decimal
	CreatedAt   time.Time
}
