package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/finbooks/finbooks_backend/internal/apperrors"
	"github.com/finbooks/finbooks_backend/internal/core/domain"
	portsrepo "github.com/finbooks/finbooks_backend/internal/core/ports/repositories"
	"github.com/finbooks/finbooks_backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxClientRepository struct {
	db *pgxpool.Pool
}

func newPgxClientRepository(db *pgxpool.Pool) portsrepo.ClientRepositoryFacade {
	return &PgxClientRepository{db: db}
}

// Ensure PgxClientRepository implements portsrepo.ClientRepositoryFacade
var _ portsrepo.ClientRepositoryFacade = (*PgxClientRepository)(nil)

func toModelClient(d domain.Client) models.Client {
	return models.Client{
		ClientID:       d.ClientID,
		OwnerID:        d.OwnerID,
		DisplayName:    d.DisplayName,
		ContactPerson:  d.ContactPerson,
		Email:          d.Email,
		Phone:          d.Phone,
		BillingAddress: d.BillingAddress,
		Notes:          d.Notes,
		AuditFields: models.AuditFields{
			CreatedAt: d.CreatedAt,
			UpdatedAt: d.UpdatedAt,
		},
	}
}

func toDomainClient(m models.Client) domain.Client {
	return domain.Client{
		ClientID:       m.ClientID,
		OwnerID:        m.OwnerID,
		DisplayName:    m.DisplayName,
		ContactPerson:  m.ContactPerson,
		Email:          m.Email,
		Phone:          m.Phone,
		BillingAddress: m.BillingAddress,
		Notes:          m.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
	}
}

func (r *PgxClientRepository) SaveClient(ctx context.Context, client domain.Client) error {
	m := toModelClient(client)
	query := `
		INSERT INTO clients (client_id, owner_id, display_name, contact_person, email, phone, billing_address, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.db.Exec(ctx, query,
		m.ClientID,
		m.OwnerID,
		m.DisplayName,
		m.ContactPerson,
		m.Email,
		m.Phone,
		m.BillingAddress,
		m.Notes,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return fmt.Errorf("%w: client ID %s already exists", apperrors.ErrDuplicate, m.ClientID)
		}
		return fmt.Errorf("failed to save client: %w", err)
	}
	return nil
}

func (r *PgxClientRepository) FindClientByID(ctx context.Context, clientID, ownerID string) (*domain.Client, error) {
	query := `
		SELECT client_id, owner_id, display_name, contact_person, email, phone, billing_address, notes, created_at, updated_at
		FROM clients
		WHERE client_id = $1 AND owner_id = $2;
	`
	var m models.Client
	err := r.db.QueryRow(ctx, query, clientID, ownerID).Scan(
		&m.ClientID,
		&m.OwnerID,
		&m.DisplayName,
		&m.ContactPerson,
		&m.Email,
		&m.Phone,
		&m.BillingAddress,
		&m.Notes,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find client by ID %s: %w", clientID, err)
	}

	d := toDomainClient(m)
	return &d, nil
}

func (r *PgxClientRepository) ListClientsByOwner(ctx context.Context, ownerID string) ([]domain.Client, error) {
	query := `
		SELECT client_id, owner_id, display_name, contact_person, email, phone, billing_address, notes, created_at, updated_at
		FROM clients
		WHERE owner_id = $1
		ORDER BY created_at DESC;
	`
	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	defer rows.Close()

	clients := make([]domain.Client, 0)
	for rows.Next() {
		var m models.Client
		if err := rows.Scan(
			&m.ClientID,
			&m.OwnerID,
			&m.DisplayName,
			&m.ContactPerson,
			&m.Email,
			&m.Phone,
			&m.BillingAddress,
			&m.Notes,
			&m.CreatedAt,
			&m.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan client row: %w", err)
		}
		clients = append(clients, toDomainClient(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating client rows: %w", err)
	}
	return clients, nil
}

func (r *PgxClientRepository) UpdateClient(ctx context.Context, client domain.Client) error {
	m := toModelClient(client)
	query := `
		UPDATE clients
		SET display_name = $3, contact_person = $4, email = $5, phone = $6, billing_address = $7, notes = $8, updated_at = $9
		WHERE client_id = $1 AND owner_id = $2;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		m.ClientID,
		m.OwnerID,
		m.DisplayName,
		m.ContactPerson,
		m.Email,
		m.Phone,
		m.BillingAddress,
		m.Notes,
		m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update client %s: %w", m.ClientID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxClientRepository) DeleteClient(ctx context.Context, clientID, ownerID string) error {
	query := `DELETE FROM clients WHERE client_id = $1 AND owner_id = $2;`
	cmdTag, err := r.db.Exec(ctx, query, clientID, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete client %s: %w", clientID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
