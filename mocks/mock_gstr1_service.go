package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"pharmadist/internal/domain"
	"pharmadist/internal/service"
)

// MockGSTR1Service is a mock implementation of service.GSTR1Service.
type MockGSTR1Service struct {
	mock.Mock
}

func (m *MockGSTR1Service) HSNSummary(ctx context.Context, window domain.DateRange) ([]domain.HSNSummaryRow, error) {
	args := m.Called(ctx, window)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.HSNSummaryRow), args.Error(1)
}

func (m *MockGSTR1Service) B2BSummary(ctx context.Context, window domain.DateRange) ([]domain.B2BSummaryRow, error) {
	args := m.Called(ctx, window)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.B2BSummaryRow), args.Error(1)
}

func (m *MockGSTR1Service) B2CSummary(ctx context.Context, window domain.DateRange) ([]domain.B2CSummaryRow, error) {
	args := m.Called(ctx, window)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.B2CSummaryRow), args.Error(1)
}

func (m *MockGSTR1Service) HSNCategorization(ctx context.Context, window domain.DateRange) ([]domain.HSNCategorizationRow, error) {
	args := m.Called(ctx, window)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.HSNCategorizationRow), args.Error(1)
}

func (m *MockGSTR1Service) Summary(ctx context.Context, window domain.DateRange) (*domain.ReturnSummary, error) {
	args := m.Called(ctx, window)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReturnSummary), args.Error(1)
}

func (m *MockGSTR1Service) Export(ctx context.Context, period domain.Period, format domain.ExportFormat) (*service.ExportFile, error) {
	args := m.Called(ctx, period, format)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ExportFile), args.Error(1)
}

func (m *MockGSTR1Service) Archive(ctx context.Context, period domain.Period, format domain.ExportFormat) (*service.ArchivedExport, error) {
	args := m.Called(ctx, period, format)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ArchivedExport), args.Error(1)
}
