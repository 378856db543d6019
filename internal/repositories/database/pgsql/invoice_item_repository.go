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

type PgxInvoiceItemRepository struct {
	db *pgxpool.Pool
}

func newPgxInvoiceItemRepository(db *pgxpool.Pool) portsrepo.InvoiceItemRepositoryFacade {
	return &PgxInvoiceItemRepository{db: db}
}

// Ensure PgxInvoiceItemRepository implements portsrepo.InvoiceItemRepositoryFacade
var _ portsrepo.InvoiceItemRepositoryFacade = (*PgxInvoiceItemRepository)(nil)

func toModelInvoiceItem(d domain.InvoiceItem) models.InvoiceItem {
	return models.InvoiceItem{
		ItemID:      d.ItemID,
		InvoiceID:   d.InvoiceID,
		Description: d.Description,
		Quantity:    d.Quantity,
		UnitPrice:   d.UnitPrice,
		LineTotal:   d.LineTotal,
		CreatedAt:   d.CreatedAt,
	}
}

func toDomainInvoiceItem(m models.InvoiceItem) domain.InvoiceItem {
	return domain.InvoiceItem{
		ItemID:      m.ItemID,
		InvoiceID:   m.InvoiceID,
		Description: m.Description,
		Quantity:    m.Quantity,
		UnitPrice:   m.UnitPrice,
		LineTotal:   m.LineTotal,
		CreatedAt:   m.CreatedAt,
	}
}

func (r *PgxInvoiceItemRepository) SaveItem(ctx context.Context, item domain.InvoiceItem) error {
	m := toModelInvoiceItem(item)
	query := `
		INSERT INTO invoice_items (item_id, invoice_id, description, quantity, unit_price, line_total, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.db.Exec(ctx, query,
		m.ItemID,
		m.InvoiceID,
		m.Description,
		m.Quantity,
		m.UnitPrice,
		m.LineTotal,
		m.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return fmt.Errorf("%w: item ID %s already exists", apperrors.ErrDuplicate, m.ItemID)
		}
		return fmt.Errorf("failed to save invoice item: %w", err)
	}
	return nil
}

func (r *PgxInvoiceItemRepository) FindItemByID(ctx context.Context, itemID, invoiceID string) (*domain.InvoiceItem, error) {
	query := `
		SELECT item_id, invoice_id, description, quantity, unit_price, line_total, created_at
		FROM invoice_items
		WHERE item_id = $1 AND invoice_id = $2;
	`
	var m models.InvoiceItem
	err := r.db.QueryRow(ctx, query, itemID, invoiceID).Scan(
		&m.ItemID,
		&m.InvoiceID,
		&m.Description,
		&m.Quantity,
		&m.UnitPrice,
		&m.LineTotal,
		&m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find invoice item by ID %s: %w", itemID, err)
	}

	d := toDomainInvoiceItem(m)
	return &d, nil
}

func (r *PgxInvoiceItemRepository) ListItemsByInvoice(ctx context.Context, invoiceID string) ([]domain.InvoiceItem, error) {
	query := `
		SELECT item_id, invoice_id, description, quantity, unit_price, line_total, created_at
		FROM invoice_items
		WHERE invoice_id = $1
		ORDER BY created_at ASC;
	`
	rows, err := r.db.Query(ctx, query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoice items: %w", err)
	}
	defer rows.Close()

	items := make([]domain.InvoiceItem, 0)
	for rows.Next() {
		var m models.InvoiceItem
		if err := rows.Scan(
			&m.ItemID,
			&m.InvoiceID,
			&m.Description,
			&m.Quantity,
			&m.UnitPrice,
			&m.LineTotal,
			&m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan invoice item row: %w", err)
		}
		items = append(items, toDomainInvoiceItem(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating invoice item rows: %w", err)
	}
	return items, nil
}

func (r *PgxInvoiceItemRepository) ReplaceItem(ctx context.Context, item domain.InvoiceItem) error {
	m := toModelInvoiceItem(item)
	query := `
		UPDATE invoice_items
		SET description = $3, quantity = $4, unit_price = $5, line_total = $6
		WHERE item_id = $1 AND invoice_id = $2;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		m.ItemID,
		m.InvoiceID,
		m.Description,
		m.Quantity,
		m.UnitPrice,
		m.LineTotal,
	)
	if err != nil {
		return fmt.Errorf("failed to replace invoice item %s: %w", m.ItemID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxInvoiceItemRepository) DeleteItem(ctx context.Context, itemID, invoiceID string) error {
	query := `DELETE FROM invoice_items WHERE item_id = $1 AND invoice_id = $2;`
	cmdTag, err := r.db.Exec(ctx, query, itemID, invoiceID)
	if err != nil {
		return fmt.Errorf("failed to delete invoice item %s: %w", itemID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
