package repositories

import (
	"context"

	"github.com/finbooks/finbooks_backend/internal/core/domain"
)

// ReceiptReader defines read operations for receipt data, always owner-scoped.
type ReceiptReader interface {
	// FindReceiptByID retrieves a receipt by id, scoped to its owner.
	FindReceiptByID(ctx context.Context, receiptID, ownerID string) (*domain.Receipt, error)

	// ListReceiptsByOwner retrieves all receipts belonging to an owner.
	ListReceiptsByOwner(ctx context.Context, ownerID string) ([]domain.Receipt, error)
}

// ReceiptWriter defines write operations for receipt data.
type ReceiptWriter interface {
	// SaveReceipt persists a new receipt.
	SaveReceipt(ctx context.Context, receipt domain.Receipt) error

	// UpdateReceipt writes the merged receipt record, scoped to its owner.
	UpdateReceipt(ctx context.Context, receipt domain.Receipt) error

	// DeleteReceipt removes a receipt row, scoped to its owner.
	DeleteReceipt(ctx context.Context, receiptID, ownerID string) error
}

// ReceiptRepositoryFacade combines all receipt repository interfaces.
type ReceiptRepositoryFacade interface {
	ReceiptReader
	ReceiptWriter
}
