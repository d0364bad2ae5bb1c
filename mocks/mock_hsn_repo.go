package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"pharmadist/internal/domain"
)

// MockHSNRepo is a mock implementation of port.HSNRepository.
type MockHSNRepo struct {
	mock.Mock
}

func (m *MockHSNRepo) List(ctx context.Context) ([]domain.HSNMaster, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.HSNMaster), args.Error(1)
}

func (m *MockHSNRepo) GetByCode(ctx context.Context, code string) (*domain.HSNMaster, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.HSNMaster), args.Error(1)
}

func (m *MockHSNRepo) InsertMissing(ctx context.Context, entries []domain.HSNMaster) (int, error) {
	args := m.Called(ctx, entries)
	return args.Int(0), args.Error(1)
}
