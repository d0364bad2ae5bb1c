package mocks

import (
	"github.com/stretchr/testify/mock"

	"pharmadist/internal/domain"
)

// MockAlertBroadcaster is a mock implementation of port.AlertBroadcaster.
type MockAlertBroadcaster struct {
	mock.Mock
}

func (m *MockAlertBroadcaster) Broadcast(alerts []domain.StockAlert) {
	m.Called(alerts)
}
