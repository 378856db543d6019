package services

import (
	portsrepo "github.com/finbooks/finbooks_backend/internal/core/ports/repositories"
	portssvc "github.com/finbooks/finbooks_backend/internal/core/ports/services"
)

// NewServiceContainer wires all services against the repository registry.
// The registry is passed in explicitly; there is no global binding between
// an entity and its storage handle.
func NewServiceContainer(repos *portsrepo.RepositoryContainer) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		User:    NewUserService(repos.User),
		Client:  NewClientService(repos.Client),
		Invoice: NewInvoiceService(repos.Invoice, repos.Client),
		Item:    NewInvoiceItemService(repos.Item, repos.Invoice),
		Receipt: NewReceiptService(repos.Receipt, repos.Invoice),
	}
}
