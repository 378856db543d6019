package dto

import (
	"time"

	"github.com/finbooks/finbooks_backend/internal/core/domain"
)

// CreateClientRequest defines the data needed to create a new client.
// ClientID may be supplied by the caller as an idempotency hook; when omitted
// the service generates one.
type CreateClientRequest struct {
	ClientID       *string `json:"clientID" binding:"omitempty,uuid"`
	DisplayName    string  `json:"displayName" binding:"required"`
	ContactPerson  string  `json:"contactPerson"`
	Email          string  `json:"email" binding:"omitempty,email"`
	Phone          string  `json:"phone"`
	BillingAddress string  `json:"billingAddress"`
	Notes          string  `json:"notes"`
}

// UpdateClientRequest defines the data allowed for updating a client.
// Pointers distinguish "field omitted" (nil, leave stored value untouched)
// from "field explicitly set" (non-nil, overwrite even when empty).
type UpdateClientRequest struct {
	DisplayName    *string `json:"displayName"`
	ContactPerson  *string `json:"contactPerson"`
	Email          *string `json:"email" binding:"omitempty,email"`
	Phone          *string `json:"phone"`
	BillingAddress *string `json:"billingAddress"`
	Notes          *string `json:"notes"`
}

// ClientResponse defines the data returned for a client.
type ClientResponse struct {
	ClientID       string    `json:"clientID"`
	OwnerID        string    `json:"ownerID"`
	DisplayName    string    `json:"displayName"`
	ContactPerson  string    `json:"contactPerson"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	BillingAddress string    `json:"billingAddress"`
	Notes          string    `json:"notes"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// ToClientResponse converts a domain.Client to ClientResponse.
func ToClientResponse(c *domain.Client) ClientResponse {
	return ClientResponse{
		ClientID:       c.ClientID,
		OwnerID:        c.OwnerID,
		DisplayName:    c.DisplayName,
		ContactPerson:  c.ContactPerson,
		Email:          c.Email,
		Phone:          c.Phone,
		BillingAddress: c.BillingAddress,
		Notes:          c.Notes,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

// ListClientsResponse wraps the list of clients.
type ListClientsResponse struct {
	Clients []ClientResponse `json:"clients"`
}

// ToListClientsResponse converts a slice of domain.Client to the list wrapper.
func ToListClientsResponse(clients []domain.Client) ListClientsResponse {
	res := make([]ClientResponse, len(clients))
	for i := range clients {
		res[i] = ToClientResponse(&clients[i])
	}
	return ListClientsResponse{Clients: res}
}
