package services

import (
	"context"

	"github.com/finbooks/finbooks_backend/internal/core/domain"
	"github.com/finbooks/finbooks_backend/internal/dto"
)

// ClientSvcFacade defines the client operation family. Every method takes the
// acting owner's id; records belonging to other owners behave as absent.
type ClientSvcFacade interface {
	CreateClient(ctx context.Context, req dto.CreateClientRequest, ownerID string) (*domain.Client, error)
	GetClientByID(ctx context.Context, clientID, ownerID string) (*domain.Client, error)
	ListClients(ctx context.Context, ownerID string) ([]domain.Client, error)
	UpdateClient(ctx context.Context, clientID string, req dto.UpdateClientRequest, ownerID string) (*domain.Client, error)
	// DeleteClient removes the client and returns the deleted record.
	DeleteClient(ctx context.Context, clientID, ownerID string) (*domain.Client, error)
}
