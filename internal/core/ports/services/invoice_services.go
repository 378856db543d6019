package services

import (
	"context"

	"github.com/finbooks/finbooks_backend/internal/core/domain"
	"github.com/finbooks/finbooks_backend/internal/dto"
)

// InvoiceSvcFacade defines the invoice operation family.
type InvoiceSvcFacade interface {
	CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest, ownerID string) (*domain.Invoice, error)
	GetInvoiceByID(ctx context.Context, invoiceID, ownerID string) (*domain.Invoice, error)
	ListInvoices(ctx context.Context, ownerID string) ([]domain.Invoice, error)
	UpdateInvoice(ctx context.Context, invoiceID string, req dto.UpdateInvoiceRequest, ownerID string) (*domain.Invoice, error)
	// DeleteInvoice removes the invoice and returns the deleted record.
	// Items and receipts referencing it are left untouched.
	DeleteInvoice(ctx context.Context, invoiceID, ownerID string) (*domain.Invoice, error)
}
