package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"pharmadist/internal/domain"
	"pharmadist/internal/port"
)

type invoiceRepo struct {
	db *sqlx.DB
}

// NewInvoiceRepo creates a new PostgreSQL-backed InvoiceRepository.
func NewInvoiceRepo(db *sqlx.DB) port.InvoiceRepository {
	return &invoiceRepo{db: db}
}

func (r *invoiceRepo) Create(ctx context.Context, inv *domain.SalesInvoice, decrementStock bool) error {
	inv.CreatedAt = time.Now().UTC()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("invoiceRepo.Create: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.NamedExecContext(ctx,
		`INSERT INTO sales_invoices (id, invoice_number, customer_id, customer_name, customer_type,
			customer_gstin, place_of_supply, invoice_date, subtotal, cgst_amount, sgst_amount,
			igst_amount, total_amount, payment_status, created_at)
		VALUES (:id, :invoice_number, :customer_id, :customer_name, :customer_type,
			:customer_gstin, :place_of_supply, :invoice_date, :subtotal, :cgst_amount, :sgst_amount,
			:igst_amount, :total_amount, :payment_status, :created_at)`, inv)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateInvoiceNumber
		}
		return fmt.Errorf("invoiceRepo.Create: %w", err)
	}

	for i := range inv.Items {
		it := &inv.Items[i]
		it.InvoiceID = inv.ID

		if decrementStock && it.StockItemID != nil {
			// Conditional decrement: the row only changes when enough stock remains.
			res, err := tx.ExecContext(ctx,
				`UPDATE stock_items SET quantity = quantity - $1, updated_at = NOW()
				 WHERE id = $2 AND quantity >= $1`, it.Quantity, *it.StockItemID)
			if err != nil {
				return fmt.Errorf("invoiceRepo.Create: decrement stock: %w", err)
			}
			n, err := res.RowsAffected()
			if err != nil {
				return fmt.Errorf("invoiceRepo.Create: rows affected: %w", err)
			}
			if n == 0 {
				return fmt.Errorf("%w: %s (batch %s)", domain.ErrInsufficientStock, it.ItemName, it.BatchNumber)
			}
		}

		_, err = tx.NamedExecContext(ctx,
			`INSERT INTO sales_invoice_items (id, invoice_id, stock_item_id, item_name, batch_number,
				hsn_code, quantity, rate, discount, gst_rate, taxable_amount, cgst_amount, sgst_amount,
				igst_amount, total_amount)
			VALUES (:id, :invoice_id, :stock_item_id, :item_name, :batch_number,
				:hsn_code, :quantity, :rate, :discount, :gst_rate, :taxable_amount, :cgst_amount, :sgst_amount,
				:igst_amount, :total_amount)`, it)
		if err != nil {
			return fmt.Errorf("invoiceRepo.Create: item %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("invoiceRepo.Create: commit: %w", err)
	}
	return nil
}

func (r *invoiceRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.SalesInvoice, error) {
	var inv domain.SalesInvoice
	err := r.db.GetContext(ctx, &inv, "SELECT * FROM sales_invoices WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("invoiceRepo.GetByID: %w", err)
	}

	err = r.db.SelectContext(ctx, &inv.Items,
		"SELECT * FROM sales_invoice_items WHERE invoice_id = $1 ORDER BY item_name, id", id)
	if err != nil {
		return nil, fmt.Errorf("invoiceRepo.GetByID items: %w", err)
	}
	return &inv, nil
}

func (r *invoiceRepo) List(ctx context.Context, offset, limit int) ([]domain.SalesInvoice, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM sales_invoices"); err != nil {
		return nil, 0, fmt.Errorf("invoiceRepo.List count: %w", err)
	}

	var invoices []domain.SalesInvoice
	err := r.db.SelectContext(ctx, &invoices,
		"SELECT * FROM sales_invoices ORDER BY invoice_date DESC, invoice_number DESC LIMIT $1 OFFSET $2",
		limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("invoiceRepo.List: %w", err)
	}
	return invoices, total, nil
}

func (r *invoiceRepo) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status domain.PaymentStatus) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE sales_invoices SET payment_status = $1 WHERE id = $2", status, id)
	if err != nil {
		return fmt.Errorf("invoiceRepo.UpdatePaymentStatus: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("invoiceRepo.UpdatePaymentStatus: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *invoiceRepo) NextSequence(ctx context.Context) (int64, error) {
	var seq int64
	if err := r.db.GetContext(ctx, &seq, "SELECT nextval('sales_invoice_number_seq')"); err != nil {
		return 0, fmt.Errorf("invoiceRepo.NextSequence: %w", err)
	}
	return seq, nil
}
