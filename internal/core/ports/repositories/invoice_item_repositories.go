package repositories

import (
	"context"

	"github.com/finbooks/finbooks_backend/internal/core/domain"
)

// InvoiceItemReader defines read operations for invoice line items.
// Items carry no owner column; callers must have already resolved the parent
// invoice for the acting owner, and every lookup here is additionally scoped
// by the parent invoice id.
type InvoiceItemReader interface {
	// FindItemByID retrieves an item by id, scoped to its parent invoice.
	FindItemByID(ctx context.Context, itemID, invoiceID string) (*domain.InvoiceItem, error)

	// ListItemsByInvoice retrieves all items on an invoice.
	ListItemsByInvoice(ctx context.Context, invoiceID string) ([]domain.InvoiceItem, error)
}

// InvoiceItemWriter defines write operations for invoice line items.
type InvoiceItemWriter interface {
	// SaveItem persists a new item.
	SaveItem(ctx context.Context, item domain.InvoiceItem) error

	// ReplaceItem overwrites description, quantity, unit price and line total
	// of an existing item. InvoiceID and CreatedAt are never touched.
	ReplaceItem(ctx context.Context, item domain.InvoiceItem) error

	// DeleteItem removes an item row, scoped to its parent invoice.
	DeleteItem(ctx context.Context, itemID, invoiceID string) error
}

// InvoiceItemRepositoryFacade combines all invoice item repository interfaces.
type InvoiceItemRepositoryFacade interface {
	InvoiceItemReader
	InvoiceItemWriter
}
