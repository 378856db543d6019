package dto

import (
	"time"

	"github.com/finbooks/finbooks_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SaveInvoiceItemRequest defines the upsert payload for an invoice line item.
// When ItemID is absent a new item is inserted; when present the existing
// item's description, quantity, unit price and line total are fully replaced.
// LineTotal is stored as supplied, never recomputed from quantity and price.
type SaveInvoiceItemRequest struct {
	ItemID      *string          `json:"itemID" binding:"omitempty,uuid"`
	Description string           `json:"description" binding:"required"`
	Quantity    *decimal.Decimal `json:"quantity"`
	UnitPrice   *decimal.Decimal `json:"unitPrice"`
	LineTotal   *decimal.Decimal `json:"lineTotal"`
}

// InvoiceItemResponse defines the data returned for an invoice line item.
type InvoiceItemResponse struct {
	ItemID      string          `json:"itemID"`
	InvoiceID   string          `json:"invoiceID"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	LineTotal   decimal.Decimal `json:"lineTotal"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// ToInvoiceItemResponse converts a domain.InvoiceItem to InvoiceItemResponse.
func ToInvoiceItemResponse(item *domain.InvoiceItem) InvoiceItemResponse {
	return InvoiceItemResponse{
		ItemID:      item.ItemID,
		InvoiceID:   item.InvoiceID,
		Description: item.Description,
		Quantity:    item.Quantity,
		UnitPrice:   item.UnitPrice,
		LineTotal:   item.LineTotal,
		CreatedAt:   item.CreatedAt,
	}
}

// ListInvoiceItemsResponse wraps the items of one invoice.
type ListInvoiceItemsResponse struct {
	Items []InvoiceItemResponse `json:"items"`
}

// ToListInvoiceItemsResponse converts a slice of domain.InvoiceItem to the list wrapper.
func ToListInvoiceItemsResponse(items []domain.InvoiceItem) ListInvoiceItemsResponse {
	res := make([]InvoiceItemResponse, len(items))
	for i := range items {
		res[i] = ToInvoiceItemResponse(&items[i])
	}
	return ListInvoiceItemsResponse{Items: res}
}
