package repositories

import (
	"context"

	"github.com/finbooks/finbooks_backend/internal/core/domain"
)

// InvoiceReader defines read operations for invoice data, always owner-scoped.
type InvoiceReader interface {
	// FindInvoiceByID retrieves an invoice by id, scoped to its owner.
	FindInvoiceByID(ctx context.Context, invoiceID, ownerID string) (*domain.Invoice, error)

	// ListInvoicesByOwner retrieves all invoices belonging to an owner.
	ListInvoicesByOwner(ctx context.Context, ownerID string) ([]domain.Invoice, error)
}

// InvoiceWriter defines write operations for invoice data.
type InvoiceWriter interface {
	// SaveInvoice persists a new invoice.
	SaveInvoice(ctx context.Context, invoice domain.Invoice) error

	// UpdateInvoice writes the merged invoice record, scoped to its owner.
	UpdateInvoice(ctx context.Context, invoice domain.Invoice) error

	// DeleteInvoice removes an invoice row, scoped to its owner.
	// Dependent items and receipts are left in place; see DESIGN.md.
	DeleteInvoice(ctx context.Context, invoiceID, ownerID string) error
}

// InvoiceRepositoryFacade combines all invoice repository interfaces.
type InvoiceRepositoryFacade interface {
	InvoiceReader
	InvoiceWriter
}
