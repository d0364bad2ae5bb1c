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

type customerRepo struct {
	db *sqlx.DB
}

// NewCustomerRepo creates a new PostgreSQL-backed CustomerRepository.
func NewCustomerRepo(db *sqlx.DB) port.CustomerRepository {
	return &customerRepo{db: db}
}

func (r *customerRepo) Create(ctx context.Context, c *domain.Customer) error {
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now

	query := `INSERT INTO customers (id, customer_name, phone, email, address, gst_number,
			customer_type, credit_limit, outstanding_amount, created_at, updated_at)
		VALUES (:id, :customer_name, :phone, :email, :address, :gst_number,
			:customer_type, :credit_limit, :outstanding_amount, :created_at, :updated_at)`

	if _, err := r.db.NamedExecContext(ctx, query, c); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateCustomer
		}
		return fmt.Errorf("customerRepo.Create: %w", err)
	}
	return nil
}

// upsertCustomerQuery refreshes master data of an existing customer. The opening
// balance only applies to new rows; a live outstanding_amount is never overwritten.
const upsertCustomerQuery = `INSERT INTO customers (id, customer_name, phone, email, address, gst_number,
		customer_type, credit_limit, outstanding_amount, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	ON CONFLICT (customer_name) DO UPDATE SET
		phone = EXCLUDED.phone,
		email = EXCLUDED.email,
		address = EXCLUDED.address,
		gst_number = EXCLUDED.gst_number,
		customer_type = EXCLUDED.customer_type,
		credit_limit = EXCLUDED.credit_limit,
		updated_at = EXCLUDED.updated_at
	RETURNING id, created_at`

func (r *customerRepo) Upsert(ctx context.Context, c *domain.Customer) error {
	now := time.Now().UTC()
	c.UpdatedAt = now
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	err := r.db.QueryRowxContext(ctx, upsertCustomerQuery,
		c.ID, c.CustomerName, c.Phone, c.Email, c.Address, c.GSTNumber,
		c.CustomerType, c.CreditLimit, c.OutstandingAmount, c.CreatedAt, c.UpdatedAt,
	).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return fmt.Errorf("customerRepo.Upsert: %w", err)
	}
	return nil
}

func (r *customerRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	var c domain.Customer
	err := r.db.GetContext(ctx, &c, "SELECT * FROM customers WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("customerRepo.GetByID: %w", err)
	}
	return &c, nil
}

func (r *customerRepo) GetByName(ctx context.Context, name string) (*domain.Customer, error) {
	var c domain.Customer
	err := r.db.GetContext(ctx, &c, "SELECT * FROM customers WHERE customer_name = $1", name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("customerRepo.GetByName: %w", err)
	}
	return &c, nil
}

func (r *customerRepo) List(ctx context.Context, offset, limit int) ([]domain.Customer, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM customers"); err != nil {
		return nil, 0, fmt.Errorf("customerRepo.List count: %w", err)
	}

	var customers []domain.Customer
	err := r.db.SelectContext(ctx, &customers,
		"SELECT * FROM customers ORDER BY customer_name LIMIT $1 OFFSET $2", limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("customerRepo.List: %w", err)
	}
	return customers, total, nil
}
