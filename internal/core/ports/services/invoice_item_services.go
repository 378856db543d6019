package services

import (
	"context"

	"github.com/finbooks/finbooks_backend/internal/core/domain"
	"github.com/finbooks/finbooks_backend/internal/dto"
)

// InvoiceItemSvcFacade defines the invoice line item operation family.
// Ownership of items is resolved through the parent invoice on every call;
// an item is never reachable except via an invoice the acting owner holds.
type InvoiceItemSvcFacade interface {
	// SaveInvoiceItem inserts a new item when req.ItemID is absent, otherwise
	// fully replaces the mutable fields of the existing item.
	SaveInvoiceItem(ctx context.Context, invoiceID string, req dto.SaveInvoiceItemRequest, ownerID string) (*domain.InvoiceItem, error)
	ListInvoiceItems(ctx context.Context, invoiceID, ownerID string) ([]domain.InvoiceItem, error)
	// DeleteInvoiceItem removes the item and returns the deleted record.
	DeleteInvoiceItem(ctx context.Context, itemID, invoiceID, ownerID string) (*domain.InvoiceItem, error)
}
