package port

import (
	"context"

	"pharmadist/internal/domain"
)

// HSNRepository defines the contract for HSN master data access.
type HSNRepository interface {
	List(ctx context.Context) ([]domain.HSNMaster, error)
	GetByCode(ctx context.Context, code string) (*domain.HSNMaster, error)
	// InsertMissing adds entries whose code is not yet present and returns how many were inserted.
	InsertMissing(ctx context.Context, entries []domain.HSNMaster) (int, error)
}
