package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"pharmadist/internal/domain"
	"pharmadist/internal/service"
)

// MockImportService is a mock implementation of service.ImportService.
type MockImportService struct {
	mock.Mock
}

func (m *MockImportService) Import(ctx context.Context, kind domain.ImportKind, fileData, format string) (*service.ImportResult, error) {
	args := m.Called(ctx, kind, fileData, format)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ImportResult), args.Error(1)
}

func (m *MockImportService) Template(kind domain.ImportKind) (string, error) {
	args := m.Called(kind)
	return args.String(0), args.Error(1)
}
