package repositories

import (
	"context"
	"errors"

	"acmedash/internal/models"

	"github.com/jackc/pgx/v5"
)

type InvoiceRepository interface {
	Create(ctx context.Context, customerID string, amountCents int64, status string) error
	Update(ctx context.Context, id, customerID string, amountCents int64, status string) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
	GetByID(ctx context.Context, id string) (*models.Invoice, error)
	List(ctx context.Context, limit, offset int) ([]*models.Invoice, error)
}

type invoiceRepo struct {
	db Database
}

func NewInvoiceRepo(db Database) InvoiceRepository {
	return &invoiceRepo{db: db}
}

// Create inserts a new invoice. The id and date columns are filled by their
// defaults; the customer id and invoice id travel as text and are cast by
// the server, so a malformed reference surfaces as a persistence error, not
// a validation error.
func (r *invoiceRepo) Create(ctx context.Context, customerID string, amountCents int64, status string) error {
	query := `
		INSERT INTO invoices (customer_id, amount, status)
		VALUES ($1, $2, $3)
	`
	_, err := r.db.Exec(ctx, query, customerID, amountCents, status)
	return err
}

// Update overwrites customer_id, amount and status on the matching row and
// reports how many rows matched. Zero rows is not an error.
func (r *invoiceRepo) Update(ctx context.Context, id, customerID string, amountCents int64, status string) (int64, error) {
	query := `
		UPDATE invoices
		SET customer_id = $1, amount = $2, status = $3
		WHERE id = $4
	`
	tag, err := r.db.Exec(ctx, query, customerID, amountCents, status, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// Delete removes the matching row and reports how many rows matched.
func (r *invoiceRepo) Delete(ctx context.Context, id string) (int64, error) {
	query := `DELETE FROM invoices WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *invoiceRepo) GetByID(ctx context.Context, id string) (*models.Invoice, error) {
	invoice := &models.Invoice{}
	query := `
		SELECT id, customer_id, amount, status, date
		FROM invoices
		WHERE id = $1
	`
	err := r.db.QueryRow(ctx, query, id).Scan(&invoice.ID, &invoice.CustomerID, &invoice.Amount, &invoice.Status, &invoice.Date)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return invoice, nil
}

func (r *invoiceRepo) List(ctx context.Context, limit, offset int) ([]*models.Invoice, error) {
	query := `
		SELECT id, customer_id, amount, status, date
		FROM invoices
		ORDER BY date DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var invoices []*models.Invoice
	for rows.Next() {
		invoice := &models.Invoice{}
		if err := rows.Scan(&invoice.ID, &invoice.CustomerID, &invoice.Amount, &invoice.Status, &invoice.Date); err != nil {
			return nil, err
		}
		invoices = append(invoices, invoice)
	}
	return invoices, rows.Err()
}
