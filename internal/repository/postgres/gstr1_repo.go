package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"pharmadist/internal/domain"
	"pharmadist/internal/port"
)

type gstr1Repo struct {
	db *sqlx.DB
}

// NewGSTR1Repo creates a new PostgreSQL-backed GSTR1Repository.
func NewGSTR1Repo(db *sqlx.DB) port.GSTR1Repository {
	return &gstr1Repo{db: db}
}

// linesQuery flattens invoice lines with their invoice snapshot. The upper bound is
// exclusive on the day after toDate so the whole toDate day is included.
const linesQuery = `
SELECT si.id              AS invoice_id,
       si.invoice_number,
       si.invoice_date,
       si.customer_name,
       si.customer_type,
       si.customer_gstin,
       si.place_of_supply,
       si.total_amount    AS invoice_total,
       it.hsn_code,
       COALESCE(h.description, 'Unknown') AS hsn_description,
       it.quantity,
       it.gst_rate,
       it.taxable_amount,
       it.cgst_amount,
       it.sgst_amount,
       it.igst_amount,
       it.total_amount    AS line_total
FROM sales_invoice_items it
JOIN sales_invoices si ON si.id = it.invoice_id
LEFT JOIN hsn_master h ON h.hsn_code = it.hsn_code
WHERE si.invoice_date >= $1 AND si.invoice_date < $2
ORDER BY si.invoice_date, si.invoice_number, it.hsn_code, it.id`

func (r *gstr1Repo) LinesInRange(ctx context.Context, from, to time.Time) ([]domain.ReturnLine, error) {
	var lines []domain.ReturnLine
	if err := r.db.SelectContext(ctx, &lines, linesQuery, from, to.AddDate(0, 0, 1)); err != nil {
		return nil, fmt.Errorf("gstr1Repo.LinesInRange: %w", err)
	}
	return lines, nil
}
