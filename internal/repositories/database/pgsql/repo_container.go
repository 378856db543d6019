package pgsql

import (
	portsrepo "github.com/finbooks/finbooks_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryContainer wires the pgx-backed repositories into the
// container consumed by the service layer.
func NewRepositoryContainer(dbPool *pgxpool.Pool) *portsrepo.RepositoryContainer {
	return &portsrepo.RepositoryContainer{
		User:    newPgxUserRepository(dbPool),
		Client:  newPgxClientRepository(dbPool),
		Invoice: newPgxInvoiceRepository(dbPool),
		Item:    newPgxInvoiceItemRepository(dbPool),
		Receipt: newPgxReceiptRepository(dbPool),
	}
}
