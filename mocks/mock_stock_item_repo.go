package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"pharmadist/internal/domain"
)

// MockStockItemRepo is a mock implementation of port.StockItemRepository.
type MockStockItemRepo struct {
	mock.Mock
}

func (m *MockStockItemRepo) Create(ctx context.Context, item *domain.StockItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockStockItemRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.StockItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StockItem), args.Error(1)
}

func (m *MockStockItemRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.StockItem, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StockItem), args.Error(1)
}

func (m *MockStockItemRepo) List(ctx context.Context, offset, limit int) ([]domain.StockItem, int, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.StockItem), args.Int(1), args.Error(2)
}

func (m *MockStockItemRepo) ListAll(ctx context.Context) ([]domain.StockItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StockItem), args.Error(1)
}

func (m *MockStockItemRepo) FindByName(ctx context.Context, name, batch string) (*domain.StockItem, error) {
	args := m.Called(ctx, name, batch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StockItem), args.Error(1)
}
