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

// receiptService implements the ReceiptSvcFacade interface. It needs an
// invoice reader to verify that a supplied invoiceID resolves, for the
// acting owner, before any receipt row is written.
type receiptService struct {
	BaseService
	receiptRepo portsrepo.ReceiptRepositoryFacade
	invoiceRepo portsrepo.InvoiceReader
}

// NewReceiptService creates a new receipt service.
func NewReceiptService(receiptRepo portsrepo.ReceiptRepositoryFacade, invoiceRepo portsrepo.InvoiceReader) portssvc.ReceiptSvcFacade {
	return &receiptService{receiptRepo: receiptRepo, invoiceRepo: invoiceRepo}
}

var _ portssvc.ReceiptSvcFacade = (*receiptService)(nil)

func (s *receiptService) checkInvoiceReference(ctx context.Context, invoiceID, ownerID string) error {
	_, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID, ownerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: invoice %s", apperrors.ErrNotFound, invoiceID)
		}
		s.LogError(ctx, err, "Failed to check invoice reference", slog.String("invoice_id", invoiceID))
		return err
	}
	return nil
}

func (s *receiptService) CreateReceipt(ctx context.Context, req dto.CreateReceiptRequest, ownerID string) (*domain.Receipt, error) {
	if strings.TrimSpace(req.ReceiptNumber) == "" {
		return nil, fmt.Errorf("%w: receiptNumber is required", apperrors.ErrValidation)
	}
	if req.AmountPaid == nil {
		return nil, fmt.Errorf("%w: amountPaid is required", apperrors.ErrValidation)
	}

	invoiceID := ""
	if req.InvoiceID != nil && *req.InvoiceID != "" {
		if err := s.checkInvoiceReference(ctx, *req.InvoiceID, ownerID); err != nil {
			return nil, err
		}
		invoiceID = *req.InvoiceID
	}

	now := time.Now()
	receiptID := uuid.NewString()
	if req.ReceiptID != nil && *req.ReceiptID != "" {
		receiptID = *req.ReceiptID
	}

	receipt := domain.Receipt{
		ReceiptID:     receiptID,
		OwnerID:       ownerID,
		InvoiceID:     invoiceID,
		ReceiptNumber: req.ReceiptNumber,
		PaymentDate:   req.PaymentDate,
		AmountPaid:    *req.AmountPaid,
		Currency:      req.Currency,
		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.receiptRepo.SaveReceipt(ctx, receipt); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save receipt", slog.String("receipt_id", receipt.ReceiptID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Receipt created", slog.String("receipt_id", receipt.ReceiptID))
	return &receipt, nil
}

func (s *receiptService) GetReceiptByID(ctx context.Context, receiptID, ownerID string) (*domain.Receipt, error) {
	receipt, err := s.receiptRepo.FindReceiptByID(ctx, receiptID, ownerID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find receipt", slog.String("receipt_id", receiptID))
		}
		return nil, err
	}
	return receipt, nil
}

func (s *receiptService) ListReceipts(ctx context.Context, ownerID string) ([]domain.Receipt, error) {
	receipts, err := s.receiptRepo.ListReceiptsByOwner(ctx, ownerID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list receipts")
		return nil, fmt.Errorf("failed to list receipts: %w", err)
	}
	if receipts == nil {
		return []domain.Receipt{}, nil
	}
	return receipts, nil
}

func (s *receiptService) UpdateReceipt(ctx context.Context, receiptID string, req dto.UpdateReceiptRequest, ownerID string) (*domain.Receipt, error) {
	receipt, err := s.GetReceiptByID(ctx, receiptID, ownerID)
	if err != nil {
		return nil, err
	}

	// Reference checks run before anything is merged or written. Setting
	// invoiceID to the empty string detaches the reference with no check.
	if req.InvoiceID != nil && *req.InvoiceID != "" {
		if err := s.checkInvoiceReference(ctx, *req.InvoiceID, ownerID); err != nil {
			return nil, err
		}
	}

	updated := false
	if req.InvoiceID != nil {
		receipt.InvoiceID = *req.InvoiceID
		updated = true
	}
	if req.ReceiptNumber != nil {
		if strings.TrimSpace(*req.ReceiptNumber) == "" {
			return nil, fmt.Errorf("%w: receiptNumber cannot be empty", apperrors.ErrValidation)
		}
		receipt.ReceiptNumber = *req.ReceiptNumber
		updated = true
	}
	if req.PaymentDate != nil {
		receipt.PaymentDate = req.PaymentDate
		updated = true
	}
	if req.AmountPaid != nil {
		receipt.AmountPaid = *req.AmountPaid
		updated = true
	}
	if req.Currency != nil {
		receipt.Currency = *req.Currency
		updated = true
	}
	if req.PaymentMethod != nil {
		receipt.PaymentMethod = *req.PaymentMethod
		updated = true
	}
	if req.Notes != nil {
		receipt.Notes = *req.Notes
		updated = true
	}
	if !updated {
		s.LogDebug(ctx, "No fields provided for receipt update", slog.String("receipt_id", receiptID))
		return receipt, nil
	}

	receipt.UpdatedAt = time.Now()

	if err := s.receiptRepo.UpdateReceipt(ctx, *receipt); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to update receipt", slog.String("receipt_id", receiptID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Receipt updated", slog.String("receipt_id", receiptID))
	return receipt, nil
}

func (s *receiptService) DeleteReceipt(ctx context.Context, receiptID, ownerID string) (*domain.Receipt, error) {
	receipt, err := s.GetReceiptByID(ctx, receiptID, ownerID)
	if err != nil {
		return nil, err
	}

	if err := s.receiptRepo.DeleteReceipt(ctx, receiptID, ownerID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete receipt", slog.String("receipt_id", receiptID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Receipt deleted", slog.String("receipt_id", receiptID))
	return receipt, nil
}
