package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/finbooks/finbooks_backend/internal/apperrors"
	"github.com/finbooks/finbooks_backend/internal/core/domain"
	portsrepo "github.com/finbooks/finbooks_backend/internal/core/ports/repositories"
	portssvc "github.com/finbooks/finbooks_backend/internal/core/ports/services"
	"github.com/finbooks/finbooks_backend/internal/dto"
	"github.com/google/uuid"
)

// invoiceService implements the InvoiceSvcFacade interface. It needs a
// client reader to verify that a supplied clientID resolves, for the acting
// owner, before any invoice row is written.
type invoiceService struct {
	BaseService
	invoiceRepo portsrepo.InvoiceRepositoryFacade
	clientRepo  portsrepo.ClientReader
}

// NewInvoiceService creates a new invoice service.
func NewInvoiceService(invoiceRepo portsrepo.InvoiceRepositoryFacade, clientRepo portsrepo.ClientReader) portssvc.InvoiceSvcFacade {
	return &invoiceService{invoiceRepo: invoiceRepo, clientRepo: clientRepo}
}

var _ portssvc.InvoiceSvcFacade = (*invoiceService)(nil)

// checkClientReference verifies that clientID resolves to a client of the
// acting owner. A miss, whether the client is absent or owned by someone
// else, surfaces uniformly as ErrNotFound.
func (s *invoiceService) checkClientReference(ctx context.Context, clientID, ownerID string) error {
	_, err := s.clientRepo.FindClientByID(ctx, clientID, ownerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: client %s", apperrors.ErrNotFound, clientID)
		}
		s.LogError(ctx, err, "Failed to check client reference", slog.String("client_id", clientID))
		return err
	}
	return nil
}

func (s *invoiceService) CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest, ownerID string) (*domain.Invoice, error) {
	if strings.TrimSpace(req.InvoiceNumber) == "" {
		return nil, fmt.Errorf("%w: invoiceNumber is required", apperrors.ErrValidation)
	}

	clientID := ""
	if req.ClientID != nil && *req.ClientID != "" {
		if err := s.checkClientReference(ctx, *req.ClientID, ownerID); err != nil {
			return nil, err
		}
		clientID = *req.ClientID
	}

	now := time.Now()
	invoiceID := uuid.NewString()
	if req.InvoiceID != nil && *req.InvoiceID != "" {
		invoiceID = *req.InvoiceID
	}

	status := domain.StatusDraft
	if req.Status != nil {
		status = domain.InvoiceStatus(*req.Status)
	}

	invoice := domain.Invoice{
		InvoiceID:     invoiceID,
		OwnerID:       ownerID,
		ClientID:      clientID,
		InvoiceNumber: req.InvoiceNumber,
		IssueDate:     req.IssueDate,
		DueDate:       req.DueDate,
		Currency:      req.Currency,
		Status:        status,
		Notes:         req.Notes,
		Terms:         req.Terms,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	if req.SubTotal != nil {
		invoice.SubTotal = *req.SubTotal
	}
	if req.TaxAmount != nil {
		invoice.TaxAmount = *req.TaxAmount
	}
	if req.DiscountAmount != nil {
		invoice.DiscountAmount = *req.DiscountAmount
	}
	if req.TotalAmount != nil {
		invoice.TotalAmount = *req.TotalAmount
	}

	if err := s.invoiceRepo.SaveInvoice(ctx, invoice); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save invoice", slog.String("invoice_id", invoice.InvoiceID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Invoice created", slog.String("invoice_id", invoice.InvoiceID))
	return &invoice, nil
}

func (s *invoiceService) GetInvoiceByID(ctx context.Context, invoiceID, ownerID string) (*domain.Invoice, error) {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID, ownerID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find invoice", slog.String("invoice_id", invoiceID))
		}
		return nil, err
	}
	return invoice, nil
}

func (s *invoiceService) ListInvoices(ctx context.Context, ownerID string) ([]domain.Invoice, error) {
	invoices, err := s.invoiceRepo.ListInvoicesByOwner(ctx, ownerID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list invoices")
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	if invoices == nil {
		return []domain.Invoice{}, nil
	}
	return invoices, nil
}

func (s *invoiceService) UpdateInvoice(ctx context.Context, invoiceID string, req dto.UpdateInvoiceRequest, ownerID string) (*domain.Invoice, error) {
	invoice, err := s.GetInvoiceByID(ctx, invoiceID, ownerID)
	if err != nil {
		return nil, err
	}

	// Reference checks run before anything is merged or written. Setting
	// clientID to the empty string detaches the reference and needs no check.
	if req.ClientID != nil && *req.ClientID != "" {
		if err := s.checkClientReference(ctx, *req.ClientID, ownerID); err != nil {
			return nil, err
		}
	}

	updated := false
	if req.ClientID != nil {
		invoice.ClientID = *req.ClientID
		updated = true
	}
	if req.InvoiceNumber != nil {
		if strings.TrimSpace(*req.InvoiceNumber) == "" {
			return nil, fmt.Errorf("%w: invoiceNumber cannot be empty", apperrors.ErrValidation)
		}
		invoice.InvoiceNumber = *req.InvoiceNumber
		updated = true
	}
	if req.IssueDate != nil {
		invoice.IssueDate = req.IssueDate
		updated = true
	}
	if req.DueDate != nil {
		invoice.DueDate = req.DueDate
		updated = true
	}
	if req.Currency != nil {
		invoice.Currency = *req.Currency
		updated = true
	}
	if req.SubTotal != nil {
		invoice.SubTotal = *req.SubTotal
		updated = true
	}
	if req.TaxAmount != nil {
		invoice.TaxAmount = *req.TaxAmount
		updated = true
	}
	if req.DiscountAmount != nil {
		invoice.DiscountAmount = *req.DiscountAmount
		updated = true
	}
	if req.TotalAmount != nil {
		invoice.TotalAmount = *req.TotalAmount
		updated = true
	}
	if req.Status != nil {
		invoice.Status = domain.InvoiceStatus(*req.Status)
		updated = true
	}
	if req.Notes != nil {
		invoice.Notes = *req.Notes
		updated = true
	}
	if req.Terms != nil {
		invoice.Terms = *req.Terms
		updated = true
	}
	if !updated {
		s.LogDebug(ctx, "No fields provided for invoice update", slog.String("invoice_id", invoiceID))
		return invoice, nil
	}

	invoice.UpdatedAt = time.Now()

	if err := s.invoiceRepo.UpdateInvoice(ctx, *invoice); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to update invoice", slog.String("invoice_id", invoiceID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Invoice updated", slog.String("invoice_id", invoiceID))
	return invoice, nil
}

func (s *invoiceService) DeleteInvoice(ctx context.Context, invoiceID, ownerID string) (*domain.Invoice, error) {
	invoice, err := s.GetInvoiceByID(ctx, invoiceID, ownerID)
	if err != nil {
		return nil, err
	}

	if err := s.invoiceRepo.DeleteInvoice(ctx, invoiceID, ownerID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete invoice", slog.String("invoice_id", invoiceID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Invoice deleted", slog.String("invoice_id", invoiceID))
	return invoice, nil
}
