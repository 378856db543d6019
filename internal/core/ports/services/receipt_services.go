package services

import (
	"context"

	"github.com/finbooks/finbooks_backend/internal/core/domain"
	"github.com/finbooks/finbooks_backend/internal/dto"
)

// ReceiptSvcFacade defines the receipt operation family.
type ReceiptSvcFacade interface {
	CreateReceipt(ctx context.Context, req dto.CreateReceiptRequest, ownerID string) (*domain.Receipt, error)
	GetReceiptByID(ctx context.Context, receiptID, ownerID string) (*domain.Receipt, error)
	ListReceipts(ctx context.Context, ownerID string) ([]domain.Receipt, error)
	UpdateReceipt(ctx context.Context, receiptID string, req dto.UpdateReceiptRequest, ownerID string) (*domain.Receipt, error)
	// DeleteReceipt removes the receipt and returns the deleted record.
	DeleteReceipt(ctx context.Context, receiptID, ownerID string) (*domain.Receipt, error)
}
