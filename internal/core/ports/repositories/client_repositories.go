package repositories

import (
	"context"

	"github.com/finbooks/finbooks_backend/internal/core/domain"
)

// ClientReader defines read operations for client data. Every lookup is
// filtered by owner in the same query as the primary key, so a miss never
// reveals whether the row exists under another owner.
type ClientReader interface {
	// FindClientByID retrieves a client by id, scoped to its owner.
	FindClientByID(ctx context.Context, clientID, ownerID string) (*domain.Client, error)

	// ListClientsByOwner retrieves all clients belonging to an owner.
	ListClientsByOwner(ctx context.Context, ownerID string) ([]domain.Client, error)
}

// ClientWriter defines write operations for client data.
type ClientWriter interface {
	// SaveClient persists a new client.
	SaveClient(ctx context.Context, client domain.Client) error

	// UpdateClient writes the merged client record, scoped to its owner.
	UpdateClient(ctx context.Context, client domain.Client) error

	// DeleteClient removes a client row, scoped to its owner.
	DeleteClient(ctx context.Context, clientID, ownerID string) error
}

// ClientRepositoryFacade combines all client repository interfaces.
type ClientRepositoryFacade interface {
	ClientReader
	ClientWriter
}
