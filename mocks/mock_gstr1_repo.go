package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"pharmadist/internal/domain"
)

// MockGSTR1Repo is a mock implementation of port.GSTR1Repository.
type MockGSTR1Repo struct {
	mock.Mock
}

func (m *MockGSTR1Repo) LinesInRange(ctx context.Context, from, to time.Time) ([]domain.ReturnLine, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ReturnLine), args.Error(1)
}
