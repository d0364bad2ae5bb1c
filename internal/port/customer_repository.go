package port

import (
	"context"

	"github.com/google/uuid"

	"pharmadist/internal/domain"
)

// CustomerRepository defines the contract for customer persistence.
type CustomerRepository interface {
	Create(ctx context.Context, c *domain.Customer) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error)
	GetByName(ctx context.Context, name string) (*domain.Customer, error)
	List(ctx context.Context, offset, limit int) ([]domain.Customer, int, error)
	// Upsert inserts the customer or refreshes the existing row with the same name.
	// An existing outstanding amount is kept.
	Upsert(ctx context.Context, c *domain.Customer) error
}
