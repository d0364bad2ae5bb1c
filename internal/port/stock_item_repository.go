package port

import (
	"context"

	"github.com/google/uuid"

	"pharmadist/internal/domain"
)

// StockItemRepository defines the contract for inventory persistence.
type StockItemRepository interface {
	Create(ctx context.Context, item *domain.StockItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.StockItem, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.StockItem, error)
	List(ctx context.Context, offset, limit int) ([]domain.StockItem, int, error)
	ListAll(ctx context.Context) ([]domain.StockItem, error)
	// FindByName returns the item with the given name, preferring the given batch and then
	// the earliest expiry. Returns domain.ErrNotFound when no item has the name.
	FindByName(ctx context.Context, name, batch string) (*domain.StockItem, error)
}
