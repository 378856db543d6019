package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceItem is a line on an invoice. It carries no owner column of its own:
// access control is derived from the parent invoice's owner on every
// operation. InvoiceID never changes after creation.
type InvoiceItem struct {
	ItemID      string          `json:"itemID"`
	InvoiceID   string          `json:"invoiceID"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	LineTotal   decimal.Decimal `json:"lineTotal"`
	CreatedAt   time.Time       `json:"createdAt"`
}
