package pgsql

import (
	"context"
	"database/sql"
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

type PgxInvoiceRepository struct {
	db *pgxpool.Pool
}

func newPgxInvoiceRepository(db *pgxpool.Pool) portsrepo.InvoiceRepositoryFacade {
	return &PgxInvoiceRepository{db: db}
}

// Ensure PgxInvoiceRepository implements portsrepo.InvoiceRepositoryFacade
var _ portsrepo.InvoiceRepositoryFacade = (*PgxInvoiceRepository)(nil)

func toModelInvoice(d domain.Invoice) models.Invoice {
	return models.Invoice{
		InvoiceID:      d.InvoiceID,
		OwnerID:        d.OwnerID,
		ClientID:       d.ClientID,
		InvoiceNumber:  d.InvoiceNumber,
		IssueDate:      d.IssueDate,
		DueDate:        d.DueDate,
		Currency:       d.Currency,
		SubTotal:       d.SubTotal,
		TaxAmount:      d.TaxAmount,
		DiscountAmount: d.DiscountAmount,
		TotalAmount:    d.TotalAmount,
		Status:         string(d.Status),
		Notes:          d.Notes,
		Terms:          d.Terms,
		AuditFields: models.AuditFields{
			CreatedAt: d.CreatedAt,
			UpdatedAt: d.UpdatedAt,
		},
	}
}

func toDomainInvoice(m models.Invoice) domain.Invoice {
	return domain.Invoice{
		InvoiceID:      m.InvoiceID,
		OwnerID:        m.OwnerID,
		ClientID:       m.ClientID,
		InvoiceNumber:  m.InvoiceNumber,
		IssueDate:      m.IssueDate,
		DueDate:        m.DueDate,
		Currency:       m.Currency,
		SubTotal:       m.SubTotal,
		TaxAmount:      m.TaxAmount,
		DiscountAmount: m.DiscountAmount,
		TotalAmount:    m.TotalAmount,
		Status:         domain.InvoiceStatus(m.Status),
		Notes:          m.Notes,
		Terms:          m.Terms,
		AuditFields: domain.AuditFields{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
	}
}

// nullableID maps an empty reference to NULL so detached rows stay NULL in
// the database rather than storing an empty string.
func nullableID(id string) sql.NullString {
	return sql.NullString{String: id, Valid: id != ""}
}

func (r *PgxInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice) error {
	m := toModelInvoice(invoice)
	query := `
		INSERT INTO invoices (invoice_id, owner_id, client_id, invoice_number, issue_date, due_date, currency, sub_total, tax_amount, discount_amount, total_amount, status, notes, terms, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
	`
	_, err := r.db.Exec(ctx, query,
		m.InvoiceID,
		m.OwnerID,
		nullableID(m.ClientID),
		m.InvoiceNumber,
		m.IssueDate,
		m.DueDate,
		m.Currency,
		m.SubTotal,
		m.TaxAmount,
		m.DiscountAmount,
		m.TotalAmount,
		m.Status,
		m.Notes,
		m.Terms,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return fmt.Errorf("%w: invoice ID %s already exists", apperrors.ErrDuplicate, m.InvoiceID)
		}
		return fmt.Errorf("failed to save invoice: %w", err)
	}
	return nil
}

func (r *PgxInvoiceRepository) scanInvoice(row pgx.Row) (models.Invoice, error) {
	var m models.Invoice
	var clientID sql.NullString
	err := row.Scan(
		&m.InvoiceID,
		&m.OwnerID,
		&clientID,
		&m.InvoiceNumber,
		&m.IssueDate,
		&m.DueDate,
		&m.Currency,
		&m.SubTotal,
		&m.TaxAmount,
		&m.DiscountAmount,
		&m.TotalAmount,
		&m.Status,
		&m.Notes,
		&m.Terms,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		return models.Invoice{}, err
	}
	m.ClientID = clientID.String
	return m, nil
}

func (r *PgxInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID, ownerID string) (*domain.Invoice, error) {
	query := `
		SELECT invoice_id, owner_id, client_id, invoice_number, issue_date, due_date, currency, sub_total, tax_amount, discount_amount, total_amount, status, notes, terms, created_at, updated_at
		FROM invoices
		WHERE invoice_id = $1 AND owner_id = $2;
	`
	m, err := r.scanInvoice(r.db.QueryRow(ctx, query, invoiceID, ownerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find invoice by ID %s: %w", invoiceID, err)
	}

	d := toDomainInvoice(m)
	return &d, nil
}

func (r *PgxInvoiceRepository) ListInvoicesByOwner(ctx context.Context, ownerID string) ([]domain.Invoice, error) {
	query := `
		SELECT invoice_id, owner_id, client_id, invoice_number, issue_date, due_date, currency, sub_total, tax_amount, discount_amount, total_amount, status, notes, terms, created_at, updated_at
		FROM invoices
		WHERE owner_id = $1
		ORDER BY created_at DESC;
	`
	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	defer rows.Close()

	invoices := make([]domain.Invoice, 0)
	for rows.Next() {
		m, err := r.scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan invoice row: %w", err)
		}
		invoices = append(invoices, toDomainInvoice(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating invoice rows: %w", err)
	}
	return invoices, nil
}

func (r *PgxInvoiceRepository) UpdateInvoice(ctx context.Context, invoice domain.Invoice) error {
	m := toModelInvoice(invoice)
	query := `
		UPDATE invoices
		SET client_id = $3, invoice_number = $4, issue_date = $5, due_date = $6, currency = $7, sub_total = $8, tax_amount = $9, discount_amount = $10, total_amount = $11, status = $12, notes = $13, terms = $14, updated_at = $15
		WHERE invoice_id = $1 AND owner_id = $2;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		m.InvoiceID,
		m.OwnerID,
		nullableID(m.ClientID),
		m.InvoiceNumber,
		m.IssueDate,
		m.DueDate,
		m.Currency,
		m.SubTotal,
		m.TaxAmount,
		m.DiscountAmount,
		m.TotalAmount,
		m.Status,
		m.Notes,
		m.Terms,
		m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update invoice %s: %w", m.InvoiceID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxInvoiceRepository) DeleteInvoice(ctx context.Context, invoiceID, ownerID string) error {
	query := `DELETE FROM invoices WHERE invoice_id = $1 AND owner_id = $2;`
	cmdTag, err := r.db.Exec(ctx, query, invoiceID, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete invoice %s: %w", invoiceID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
