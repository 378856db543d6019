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

// clientService implements the ClientSvcFacade interface.
type clientService struct {
	BaseService
	clientRepo portsrepo.ClientRepositoryFacade
}

// NewClientService creates a new client service.
func NewClientService(clientRepo portsrepo.ClientRepositoryFacade) portssvc.ClientSvcFacade {
	return &clientService{clientRepo: clientRepo}
}

var _ portssvc.ClientSvcFacade = (*clientService)(nil)

func (s *clientService) CreateClient(ctx context.Context, req dto.CreateClientRequest, ownerID string) (*domain.Client, error) {
	if strings.TrimSpace(req.DisplayName) == "" {
		return nil, fmt.Errorf("%w: displayName is required", apperrors.ErrValidation)
	}

	now := time.Now()
	clientID := uuid.NewString()
	if req.ClientID != nil && *req.ClientID != "" {
		clientID = *req.ClientID
	}

	client := domain.Client{
		ClientID:       clientID,
		OwnerID:        ownerID,
		DisplayName:    req.DisplayName,
		ContactPerson:  req.ContactPerson,
		Email:          req.Email,
		Phone:          req.Phone,
		BillingAddress: req.BillingAddress,
		Notes:          req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.clientRepo.SaveClient(ctx, client); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save client", slog.String("client_id", client.ClientID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Client created", slog.String("client_id", client.ClientID))
	return &client, nil
}

func (s *clientService) GetClientByID(ctx context.Context, clientID, ownerID string) (*domain.Client, error) {
	client, err := s.clientRepo.FindClientByID(ctx, clientID, ownerID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find client", slog.String("client_id", clientID))
		}
		return nil, err
	}
	return client, nil
}

func (s *clientService) ListClients(ctx context.Context, ownerID string) ([]domain.Client, error) {
	clients, err := s.clientRepo.ListClientsByOwner(ctx, ownerID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list clients")
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	if clients == nil {
		return []domain.Client{}, nil
	}
	return clients, nil
}

func (s *clientService) UpdateClient(ctx context.Context, clientID string, req dto.UpdateClientRequest, ownerID string) (*domain.Client, error) {
	client, err := s.GetClientByID(ctx, clientID, ownerID)
	if err != nil {
		return nil, err
	}

	updated := false
	if req.DisplayName != nil {
		if strings.TrimSpace(*req.DisplayName) == "" {
			return nil, fmt.Errorf("%w: displayName cannot be empty", apperrors.ErrValidation)
		}
		client.DisplayName = *req.DisplayName
		updated = true
	}
	if req.ContactPerson != nil {
		client.ContactPerson = *req.ContactPerson
		updated = true
	}
	if req.Email != nil {
		client.Email = *req.Email
		updated = true
	}
	if req.Phone != nil {
		client.Phone = *req.Phone
		updated = true
	}
	if req.BillingAddress != nil {
		client.BillingAddress = *req.BillingAddress
		updated = true
	}
	if req.Notes != nil {
		client.Notes = *req.Notes
		updated = true
	}
	if !updated {
		// Empty patch: the stored record is returned untouched, no write,
		// no timestamp bump.
		s.LogDebug(ctx, "No fields provided for client update", slog.String("client_id", clientID))
		return client, nil
	}

	client.UpdatedAt = time.Now()

	if err := s.clientRepo.UpdateClient(ctx, *client); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to update client", slog.String("client_id", clientID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Client updated", slog.String("client_id", clientID))
	return client, nil
}

func (s *clientService) DeleteClient(ctx context.Context, clientID, ownerID string) (*domain.Client, error) {
	client, err := s.GetClientByID(ctx, clientID, ownerID)
	if err != nil {
		return nil, err
	}

	if err := s.clientRepo.DeleteClient(ctx, clientID, ownerID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete client", slog.String("client_id", clientID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Client deleted", slog.String("client_id", clientID))
	return client, nil
}
