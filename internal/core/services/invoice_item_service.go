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
	"github.com/shopspring/decimal"
)

// invoiceItemService implements the InvoiceItemSvcFacade interface. Items
// have no owner column; every operation first resolves the parent invoice
// for the acting owner, so an invoice the owner cannot see makes all of its
// items unreachable too.
type invoiceItemService struct {
	BaseService
	itemRepo    portsrepo.InvoiceItemRepositoryFacade
	invoiceRepo portsrepo.InvoiceReader
}

// NewInvoiceItemService creates a new invoice item service.
func NewInvoiceItemService(itemRepo portsrepo.InvoiceItemRepositoryFacade, invoiceRepo portsrepo.InvoiceReader) portssvc.InvoiceItemSvcFacade {
	return &invoiceItemService{itemRepo: itemRepo, invoiceRepo: invoiceRepo}
}

var _ portssvc.InvoiceItemSvcFacade = (*invoiceItemService)(nil)

// resolveParentInvoice checks that the invoice exists and belongs to the
// acting owner. Re-checked on every item operation, never cached.
func (s *invoiceItemService) resolveParentInvoice(ctx context.Context, invoiceID, ownerID string) error {
	_, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID, ownerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: invoice %s", apperrors.ErrNotFound, invoiceID)
		}
		s.LogError(ctx, err, "Failed to resolve parent invoice", slog.String("invoice_id", invoiceID))
		return err
	}
	return nil
}

func decimalOrZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}

func (s *invoiceItemService) SaveInvoiceItem(ctx context.Context, invoiceID string, req dto.SaveInvoiceItemRequest, ownerID string) (*domain.InvoiceItem, error) {
	if strings.TrimSpace(req.Description) == "" {
		return nil, fmt.Errorf("%w: description is required", apperrors.ErrValidation)
	}

	if err := s.resolveParentInvoice(ctx, invoiceID, ownerID); err != nil {
		return nil, err
	}

	if req.ItemID == nil || *req.ItemID == "" {
		item := domain.InvoiceItem{
			ItemID:      uuid.NewString(),
			InvoiceID:   invoiceID,
			Description: req.Description,
			Quantity:    decimalOrZero(req.Quantity),
			UnitPrice:   decimalOrZero(req.UnitPrice),
			LineTotal:   decimalOrZero(req.LineTotal),
			CreatedAt:   time.Now(),
		}
		if err := s.itemRepo.SaveItem(ctx, item); err != nil {
			s.LogError(ctx, err, "Failed to save invoice item", slog.String("item_id", item.ItemID))
			return nil, err
		}
		s.LogInfo(ctx, "Invoice item created",
			slog.String("item_id", item.ItemID), slog.String("invoice_id", invoiceID))
		return &item, nil
	}

	// Existing item: full replace of the mutable fields, not a partial
	// merge. InvoiceID and CreatedAt stay as stored.
	item, err := s.itemRepo.FindItemByID(ctx, *req.ItemID, invoiceID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find invoice item", slog.String("item_id", *req.ItemID))
		}
		return nil, err
	}

	item.Description = req.Description
	item.Quantity = decimalOrZero(req.Quantity)
	item.UnitPrice = decimalOrZero(req.UnitPrice)
	item.LineTotal = decimalOrZero(req.LineTotal)

	if err := s.itemRepo.ReplaceItem(ctx, *item); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to replace invoice item", slog.String("item_id", item.ItemID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Invoice item replaced",
		slog.String("item_id", item.ItemID), slog.String("invoice_id", invoiceID))
	return item, nil
}

func (s *invoiceItemService) ListInvoiceItems(ctx context.Context, invoiceID, ownerID string) ([]domain.InvoiceItem, error) {
	if err := s.resolveParentInvoice(ctx, invoiceID, ownerID); err != nil {
		return nil, err
	}

	items, err := s.itemRepo.ListItemsByInvoice(ctx, invoiceID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list invoice items", slog.String("invoice_id", invoiceID))
		return nil, fmt.Errorf("failed to list invoice items: %w", err)
	}
	if items == nil {
		return []domain.InvoiceItem{}, nil
	}
	return items, nil
}

func (s *invoiceItemService) DeleteInvoiceItem(ctx context.Context, itemID, invoiceID, ownerID string) (*domain.InvoiceItem, error) {
	if err := s.resolveParentInvoice(ctx, invoiceID, ownerID); err != nil {
		return nil, err
	}

	item, err := s.itemRepo.FindItemByID(ctx, itemID, invoiceID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find invoice item", slog.String("item_id", itemID))
		}
		return nil, err
	}

	if err := s.itemRepo.DeleteItem(ctx, itemID, invoiceID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete invoice item", slog.String("item_id", itemID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Invoice item deleted",
		slog.String("item_id", itemID), slog.String("invoice_id", invoiceID))
	return item, nil
}
