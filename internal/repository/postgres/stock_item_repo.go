package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"pharmadist/internal/domain"
	"pharmadist/internal/port"
)

type stockItemRepo struct {
	db *sqlx.DB
}

// NewStockItemRepo creates a new PostgreSQL-backed StockItemRepository.
func NewStockItemRepo(db *sqlx.DB) port.StockItemRepository {
	return &stockItemRepo{db: db}
}

func (r *stockItemRepo) Create(ctx context.Context, item *domain.StockItem) error {
	now := time.Now().UTC()
	item.CreatedAt = now
	item.UpdatedAt = now

	query := `INSERT INTO stock_items (id, item_name, manufacturer, category, batch_number, expiry_date,
			quantity, mrp, purchase_rate, gst_rate, hsn_code, min_stock_level, rack_location,
			created_at, updated_at)
		VALUES (:id, :item_name, :manufacturer, :category, :batch_number, :expiry_date,
			:quantity, :mrp, :purchase_rate, :gst_rate, :hsn_code, :min_stock_level, :rack_location,
			:created_at, :updated_at)`

	if _, err := r.db.NamedExecContext(ctx, query, item); err != nil {
		return fmt.Errorf("stockItemRepo.Create: %w", err)
	}
	return nil
}

func (r *stockItemRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.StockItem, error) {
	var item domain.StockItem
	err := r.db.GetContext(ctx, &item, "SELECT * FROM stock_items WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("stockItemRepo.GetByID: %w", err)
	}
	return &item, nil
}

func (r *stockItemRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.StockItem, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query, args, err := sqlx.In("SELECT * FROM stock_items WHERE id IN (?)", ids)
	if err != nil {
		return nil, fmt.Errorf("stockItemRepo.GetByIDs: %w", err)
	}
	var items []domain.StockItem
	if err := r.db.SelectContext(ctx, &items, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("stockItemRepo.GetByIDs: %w", err)
	}
	return items, nil
}

func (r *stockItemRepo) List(ctx context.Context, offset, limit int) ([]domain.StockItem, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM stock_items"); err != nil {
		return nil, 0, fmt.Errorf("stockItemRepo.List count: %w", err)
	}

	var items []domain.StockItem
	err := r.db.SelectContext(ctx, &items,
		"SELECT * FROM stock_items ORDER BY item_name, batch_number LIMIT $1 OFFSET $2", limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("stockItemRepo.List: %w", err)
	}
	return items, total, nil
}

func (r *stockItemRepo) ListAll(ctx context.Context) ([]domain.StockItem, error) {
	var items []domain.StockItem
	err := r.db.SelectContext(ctx, &items, "SELECT * FROM stock_items ORDER BY item_name, batch_number")
	if err != nil {
		return nil, fmt.Errorf("stockItemRepo.ListAll: %w", err)
	}
	return items, nil
}

func (r *stockItemRepo) FindByName(ctx context.Context, name, batch string) (*domain.StockItem, error) {
	var item domain.StockItem
	err := r.db.GetContext(ctx, &item, `SELECT * FROM stock_items
		WHERE lower(item_name) = lower($1)
		ORDER BY (batch_number = $2) DESC, expiry_date, created_at
		LIMIT 1`, strings.TrimSpace(name), strings.TrimSpace(batch))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("stockItemRepo.FindByName: %w", err)
	}
	return &item, nil
}
