package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"pharmadist/internal/domain"
)

// MockEmailSender is a mock implementation of port.EmailSender.
type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) SendStockAlertDigest(ctx context.Context, recipients []string, alerts []domain.StockAlert) error {
	args := m.Called(ctx, recipients, alerts)
	return args.Error(0)
}
