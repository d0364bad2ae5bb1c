package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"pharmadist/internal/domain"
)

// MockStockService is a mock implementation of service.StockService.
type MockStockService struct {
	mock.Mock
}

func (m *MockStockService) Create(ctx context.Context, input *domain.CreateStockItemInput) (*domain.StockItem, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StockItem), args.Error(1)
}

func (m *MockStockService) GetByID(ctx context.Context, id uuid.UUID) (*domain.StockItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StockItem), args.Error(1)
}

func (m *MockStockService) List(ctx context.Context, offset, limit int) ([]domain.StockItem, int, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.StockItem), args.Int(1), args.Error(2)
}

func (m *MockStockService) Alerts(ctx context.Context) ([]domain.StockAlert, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StockAlert), args.Error(1)
}
