package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pharmadist/internal/domain"
	"pharmadist/internal/service"
	"pharmadist/mocks"
)

func TestStockService_Create_RejectsNegativeQuantity(t *testing.T) {
	repo := new(mocks.MockStockItemRepo)
	svc := service.NewStockService(repo, 30)

	_, err := svc.Create(context.Background(), &domain.CreateStockItemInput{
		ItemName:    "Cetirizine",
		BatchNumber: "CT01",
		Quantity:    -1,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestStockService_Create(t *testing.T) {
	repo := new(mocks.MockStockItemRepo)
	svc := service.NewStockService(repo, 30)
	ctx := context.Background()
	repo.On("Create", ctx, mock.AnythingOfType("*domain.StockItem")).Return(nil)

	item, err := svc.Create(ctx, &domain.CreateStockItemInput{
		ItemName:    " Cetirizine 10mg ",
		BatchNumber: "CT01",
		ExpiryDate:  time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC),
		Quantity:    200,
		GSTRate:     d("12"),
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, item.ID)
	assert.Equal(t, "Cetirizine 10mg", item.ItemName)
	assert.Equal(t, 200, item.Quantity)
}

func TestDeriveAlerts(t *testing.T) {
	now := time.Date(2024, 12, 1, 15, 0, 0, 0, time.UTC)
	far := now.AddDate(1, 0, 0)

	healthy := domain.StockItem{ID: uuid.New(), ItemName: "Healthy", Quantity: 100, MinStockLevel: 10, ExpiryDate: far}
	low := domain.StockItem{ID: uuid.New(), ItemName: "Low", Quantity: 10, MinStockLevel: 10, ExpiryDate: far}
	empty := domain.StockItem{ID: uuid.New(), ItemName: "Empty", Quantity: 0, MinStockLevel: 10, ExpiryDate: far}
	expired := domain.StockItem{ID: uuid.New(), ItemName: "Expired", Quantity: 50, MinStockLevel: 10,
		ExpiryDate: time.Date(2024, 11, 30, 0, 0, 0, 0, time.UTC)}
	expiring := domain.StockItem{ID: uuid.New(), ItemName: "Expiring", Quantity: 50, MinStockLevel: 10,
		ExpiryDate: time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)}
	today := domain.StockItem{ID: uuid.New(), ItemName: "Today", Quantity: 50, MinStockLevel: 10,
		ExpiryDate: time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)}

	alerts := service.DeriveAlerts([]domain.StockItem{healthy, low, empty, expired, expiring, today}, now, 30)

	byID := make(map[string]domain.StockAlert)
	for _, a := range alerts {
		byID[a.ID] = a
	}
	require.Len(t, byID, 5)

	assert.Equal(t, domain.SeverityMedium, byID["low-"+low.ID.String()].Severity)
	assert.Equal(t, domain.SeverityHigh, byID["low-"+empty.ID.String()].Severity)

	e := byID["expired-"+expired.ID.String()]
	assert.Equal(t, domain.AlertExpired, e.Type)
	assert.Equal(t, domain.SeverityHigh, e.Severity)

	soon := byID["expiry-"+expiring.ID.String()]
	assert.Equal(t, domain.AlertExpirySoon, soon.Type)
	assert.Contains(t, soon.Message, "expires in 30 days")

	assert.Equal(t, domain.AlertExpirySoon, byID["expiry-"+today.ID.String()].Type)
	_, ok := byID["low-"+healthy.ID.String()]
	assert.False(t, ok)
}

func TestStockService_Alerts(t *testing.T) {
	repo := new(mocks.MockStockItemRepo)
	svc := service.NewStockService(repo, 0)
	ctx := context.Background()

	item := domain.StockItem{ID: uuid.New(), ItemName: "Low", Quantity: 1, MinStockLevel: 5, ExpiryDate: time.Now().AddDate(2, 0, 0)}
	repo.On("ListAll", ctx).Return([]domain.StockItem{item}, nil)

	alerts, err := svc.Alerts(ctx)
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, domain.AlertLowStock, alerts[0].Type)
}
