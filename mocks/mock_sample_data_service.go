package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"pharmadist/internal/service"
)

// MockSampleDataService is a mock implementation of service.SampleDataService.
type MockSampleDataService struct {
	mock.Mock
}

func (m *MockSampleDataService) Seed(ctx context.Context) (*service.SampleDataResult, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SampleDataResult), args.Error(1)
}
