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

type PgxReceiptRepository struct {
	db *pgxpool.Pool
}

func newPgxReceiptRepository(db *pgxpool.Pool) portsrepo.ReceiptRepositoryFacade {
	return &PgxReceiptRepository{db: db}
}

// Ensure PgxReceiptRepository implements portsrepo.ReceiptRepositoryFacade
var _ portsrepo.ReceiptRepositoryFacade = (*PgxReceiptRepository)(nil)

func toModelReceipt(d domain.Receipt) models.Receipt {
	return models.Receipt{
		ReceiptID:     d.ReceiptID,
		OwnerID:       d.OwnerID,
		InvoiceID:     d.InvoiceID,
		ReceiptNumber: d.ReceiptNumber,
		PaymentDate:   d.PaymentDate,
		AmountPaid:    d.AmountPaid,
		Currency:      d.Currency,
		PaymentMethod: d.PaymentMethod,
		Notes:         d.Notes,
		AuditFields: models.AuditFields{
			CreatedAt: d.CreatedAt,
			UpdatedAt: d.UpdatedAt,
		},
	}
}

func toDomainReceipt(m models.Receipt) domain.Receipt {
	return domain.Receipt{
		ReceiptID:     m.ReceiptID,
		OwnerID:       m.OwnerID,
		InvoiceID:     m.InvoiceID,
		ReceiptNumber: m.ReceiptNumber,
		PaymentDate:   m.PaymentDate,
		AmountPaid:    m.AmountPaid,
		Currency:      m.Currency,
		PaymentMethod: m.PaymentMethod,
		Notes:         m.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
	}
}

func (r *PgxReceiptRepository) SaveReceipt(ctx context.Context, receipt domain.Receipt) error {
	m := toModelReceipt(receipt)
	query := `
		INSERT INTO receipts (receipt_id, owner_id, invoice_id, receipt_number, payment_date, amount_paid, currency, payment_method, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.db.Exec(ctx, query,
		m.ReceiptID,
		m.OwnerID,
		nullableID(m.InvoiceID),
		m.ReceiptNumber,
		m.PaymentDate,
		m.AmountPaid,
		m.Currency,
		m.PaymentMethod,
		m.Notes,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return fmt.Errorf("%w: receipt ID %s already exists", apperrors.ErrDuplicate, m.ReceiptID)
		}
		return fmt.Errorf("failed to save receipt: %w", err)
	}
	return nil
}

func (r *PgxReceiptRepository) scanReceipt(row pgx.Row) (models.Receipt, error) {
	var m models.Receipt
	var invoiceID sql.NullString
	err := row.Scan(
		&m.ReceiptID,
		&m.OwnerID,
		&invoiceID,
		&m.ReceiptNumber,
		&m.PaymentDate,
		&m.AmountPaid,
		&m.Currency,
		&m.PaymentMethod,
		&m.Notes,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		return models.Receipt{}, err
	}
	m.InvoiceID = invoiceID.String
	return m, nil
}

func (r *PgxReceiptRepository) FindReceiptByID(ctx context.Context, receiptID, ownerID string) (*domain.Receipt, error) {
	query := `
		SELECT receipt_id, owner_id, invoice_id, receipt_number, payment_date, amount_paid, currency, payment_method, notes, created_at, updated_at
		FROM receipts
		WHERE receipt_id = $1 AND owner_id = $2;
	`
	m, err := r.scanReceipt(r.db.QueryRow(ctx, query, receiptID, ownerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find receipt by ID %s: %w", receiptID, err)
	}

	d := toDomainReceipt(m)
	return &d, nil
}

func (r *PgxReceiptRepository) ListReceiptsByOwner(ctx context.Context, ownerID string) ([]domain.Receipt, error) {
	query := `
		SELECT receipt_id, owner_id, invoice_id, receipt_number, payment_date, amount_paid, currency, payment_method, notes, created_at, updated_at
		FROM receipts
		WHERE owner_id = $1
		ORDER BY created_at DESC;
	`
	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list receipts: %w", err)
	}
	defer rows.Close()

	receipts := make([]domain.Receipt, 0)
	for rows.Next() {
		m, err := r.scanReceipt(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan receipt row: %w", err)
		}
		receipts = append(receipts, toDomainReceipt(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating receipt rows: %w", err)
	}
	return receipts, nil
}

func (r *PgxReceiptRepository) UpdateReceipt(ctx context.Context, receipt domain.Receipt) error {
	m := toModelReceipt(receipt)
	query := `
		UPDATE receipts
		SET invoice_id = $3, receipt_number = $4, payment_date = $5, amount_paid = $6, currency = $7, payment_method = $8, notes = $9, updated_at = $10
		WHERE receipt_id = $1 AND owner_id = $2;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		m.ReceiptID,
		m.OwnerID,
		nullableID(m.InvoiceID),
		m.ReceiptNumber,
		m.PaymentDate,
		m.AmountPaid,
		m.Currency,
		m.PaymentMethod,
		m.Notes,
		m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update receipt %s: %w", m.ReceiptID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxReceiptRepository) DeleteReceipt(ctx context.Context, receiptID, ownerID string) error {
	query := `DELETE FROM receipts WHERE receipt_id = $1 AND owner_id = $2;`
	cmdTag, err := r.db.Exec(ctx, query, receiptID, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete receipt %s: %w", receiptID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
