package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pharmadist/internal/domain"
	"pharmadist/internal/service"
	"pharmadist/mocks"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertMoney(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.Equal(t, want, got.StringFixed(2))
}

type invoiceMocks struct {
	invoices  *mocks.MockInvoiceRepo
	customers *mocks.MockCustomerRepo
	stock     *mocks.MockStockItemRepo
	alerts    *mocks.MockAlertBroadcaster
}

func setupInvoiceService() (service.InvoiceService, *invoiceMocks) {
	m := &invoiceMocks{
		invoices:  new(mocks.MockInvoiceRepo),
		customers: new(mocks.MockCustomerRepo),
		stock:     new(mocks.MockStockItemRepo),
		alerts:    new(mocks.MockAlertBroadcaster),
	}
	svc := service.NewInvoiceService(m.invoices, m.customers, m.stock, m.alerts, service.InvoiceConfig{
		HomeState:            "29",
		DefaultPlaceOfSupply: "29",
	}, nil)
	return svc, m
}

func paracetamol(qty, minLevel int) domain.StockItem {
	return domain.StockItem{
		ID:            uuid.New(),
		ItemName:      "Paracetamol 500mg",
		BatchNumber:   "PC001",
		HSNCode:       "30049000",
		Quantity:      qty,
		MRP:           d("5.00"),
		GSTRate:       d("12"),
		MinStockLevel: minLevel,
	}
}

func invoiceDate() *time.Time {
	t := time.Date(2024, 12, 1, 10, 0, 0, 0, time.UTC)
	return &t
}

func TestInvoiceService_Create_EmptyItems(t *testing.T) {
	svc, _ := setupInvoiceService()

	_, err := svc.Create(context.Background(), &domain.CreateInvoiceInput{CustomerID: uuid.New()})
	assert.ErrorIs(t, err, domain.ErrEmptyInvoice)
}

func TestInvoiceService_Create_NonPositiveQuantity(t *testing.T) {
	svc, _ := setupInvoiceService()

	_, err := svc.Create(context.Background(), &domain.CreateInvoiceInput{
		CustomerID: uuid.New(),
		Items:      []domain.CreateInvoiceItemInput{{StockItemID: uuid.New(), Quantity: 0}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

func TestInvoiceService_Create_InvalidPaymentStatus(t *testing.T) {
	svc, _ := setupInvoiceService()

	_, err := svc.Create(context.Background(), &domain.CreateInvoiceInput{
		CustomerID:    uuid.New(),
		PaymentStatus: "refunded",
		Items:         []domain.CreateInvoiceItemInput{{StockItemID: uuid.New(), Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidPaymentStatus)
}

func TestInvoiceService_Create_B2CIntraState(t *testing.T) {
	svc, m := setupInvoiceService()
	ctx := context.Background()

	customer := &domain.Customer{ID: uuid.New(), CustomerName: "Walk-in", CustomerType: domain.CustomerTypeB2C}
	item := paracetamol(100, 10)

	m.customers.On("GetByID", ctx, customer.ID).Return(customer, nil)
	m.stock.On("GetByIDs", ctx, []uuid.UUID{item.ID}).Return([]domain.StockItem{item}, nil)
	m.invoices.On("NextSequence", ctx).Return(int64(7), nil)
	m.invoices.On("Create", ctx, mock.AnythingOfType("*domain.SalesInvoice"), true).Return(nil)

	inv, err := svc.Create(ctx, &domain.CreateInvoiceInput{
		CustomerID:  customer.ID,
		InvoiceDate: invoiceDate(),
		Items:       []domain.CreateInvoiceItemInput{{StockItemID: item.ID, Quantity: 10}},
	})
	require.NoError(t, err)

	assert.Equal(t, "INV-20241201-0007", inv.InvoiceNumber)
	assert.Equal(t, domain.PaymentStatusPending, inv.PaymentStatus)
	assert.Equal(t, domain.CustomerTypeB2C, inv.CustomerType)
	assert.Equal(t, "29", inv.PlaceOfSupply)
	require.Len(t, inv.Items, 1)

	line := inv.Items[0]
	assertMoney(t, "5.00", line.Rate)
	assertMoney(t, "50.00", line.TaxableAmount)
	assertMoney(t, "3.00", line.CGSTAmount)
	assertMoney(t, "3.00", line.SGSTAmount)
	assertMoney(t, "0.00", line.IGSTAmount)
	assertMoney(t, "56.00", line.TotalAmount)
	assertMoney(t, "56.00", inv.TotalAmount)
	assertMoney(t, "50.00", inv.Subtotal)

	m.alerts.AssertNotCalled(t, "Broadcast", mock.Anything)
	m.invoices.AssertExpectations(t)
}

func TestInvoiceService_Create_DatesInBusinessZone(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+30*60)
	m := &invoiceMocks{
		invoices:  new(mocks.MockInvoiceRepo),
		customers: new(mocks.MockCustomerRepo),
		stock:     new(mocks.MockStockItemRepo),
		alerts:    new(mocks.MockAlertBroadcaster),
	}
	svc := service.NewInvoiceService(m.invoices, m.customers, m.stock, m.alerts, service.InvoiceConfig{
		HomeState:            "29",
		DefaultPlaceOfSupply: "29",
		Location:             ist,
	}, nil)
	ctx := context.Background()

	customer := &domain.Customer{ID: uuid.New(), CustomerName: "Walk-in", CustomerType: domain.CustomerTypeB2C}
	item := paracetamol(100, 10)
	m.customers.On("GetByID", ctx, customer.ID).Return(customer, nil)
	m.stock.On("GetByIDs", ctx, mock.Anything).Return([]domain.StockItem{item}, nil)
	m.invoices.On("NextSequence", ctx).Return(int64(1), nil)
	m.invoices.On("Create", ctx, mock.Anything, true).Return(nil)

	// 02:00 IST on 1 December, sent as UTC.
	sold := time.Date(2024, 11, 30, 20, 30, 0, 0, time.UTC)
	inv, err := svc.Create(ctx, &domain.CreateInvoiceInput{
		CustomerID:  customer.ID,
		InvoiceDate: &sold,
		Items:       []domain.CreateInvoiceItemInput{{StockItemID: item.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	assert.Equal(t, "INV-20241201-0001", inv.InvoiceNumber)
	assert.True(t, inv.InvoiceDate.Equal(sold))

	december := domain.Period{Month: 12, Year: 2024}.Range(ist)
	assert.False(t, inv.InvoiceDate.Before(december.From))
}

func TestInvoiceService_Create_InterStateB2B(t *testing.T) {
	svc, m := setupInvoiceService()
	ctx := context.Background()

	customer := &domain.Customer{
		ID:           uuid.New(),
		CustomerName: "Apollo Pharmacy",
		GSTNumber:    "27ABCDE1234F1Z5",
		CustomerType: domain.CustomerTypeB2B,
	}
	item := paracetamol(100, 10)

	m.customers.On("GetByID", ctx, customer.ID).Return(customer, nil)
	m.stock.On("GetByIDs", ctx, mock.Anything).Return([]domain.StockItem{item}, nil)
	m.invoices.On("NextSequence", ctx).Return(int64(1), nil)
	m.invoices.On("Create", ctx, mock.Anything, true).Return(nil)

	inv, err := svc.Create(ctx, &domain.CreateInvoiceInput{
		CustomerID:    customer.ID,
		InvoiceDate:   invoiceDate(),
		PaymentStatus: domain.PaymentStatusPaid,
		Items:         []domain.CreateInvoiceItemInput{{StockItemID: item.ID, Quantity: 10, Rate: d("10"), Discount: d("10")}},
	})
	require.NoError(t, err)

	assert.Equal(t, "27", inv.PlaceOfSupply)
	assert.Equal(t, "27ABCDE1234F1Z5", inv.CustomerGSTIN)
	line := inv.Items[0]
	assertMoney(t, "90.00", line.TaxableAmount)
	assertMoney(t, "0.00", line.CGSTAmount)
	assertMoney(t, "10.80", line.IGSTAmount)
	assertMoney(t, "100.80", inv.TotalAmount)
}

func TestInvoiceService_Create_InsufficientStockAcrossLines(t *testing.T) {
	svc, m := setupInvoiceService()
	ctx := context.Background()

	customer := &domain.Customer{ID: uuid.New(), CustomerName: "Walk-in"}
	item := paracetamol(15, 5)

	m.customers.On("GetByID", ctx, customer.ID).Return(customer, nil)
	m.stock.On("GetByIDs", ctx, mock.Anything).Return([]domain.StockItem{item}, nil)

	_, err := svc.Create(ctx, &domain.CreateInvoiceInput{
		CustomerID: customer.ID,
		Items: []domain.CreateInvoiceItemInput{
			{StockItemID: item.ID, Quantity: 10},
			{StockItemID: item.ID, Quantity: 10},
		},
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	m.invoices.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	m.invoices.AssertNotCalled(t, "NextSequence", mock.Anything)
}

func TestInvoiceService_Create_RepoInsufficientStock(t *testing.T) {
	svc, m := setupInvoiceService()
	ctx := context.Background()

	customer := &domain.Customer{ID: uuid.New(), CustomerName: "Walk-in"}
	item := paracetamol(15, 5)

	m.customers.On("GetByID", ctx, customer.ID).Return(customer, nil)
	m.stock.On("GetByIDs", ctx, mock.Anything).Return([]domain.StockItem{item}, nil)
	m.invoices.On("NextSequence", ctx).Return(int64(3), nil)
	m.invoices.On("Create", ctx, mock.Anything, true).Return(domain.ErrInsufficientStock)

	_, err := svc.Create(ctx, &domain.CreateInvoiceInput{
		CustomerID: customer.ID,
		Items:      []domain.CreateInvoiceItemInput{{StockItemID: item.ID, Quantity: 5}},
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	m.alerts.AssertNotCalled(t, "Broadcast", mock.Anything)
}

func TestInvoiceService_Create_UnknownStockItem(t *testing.T) {
	svc, m := setupInvoiceService()
	ctx := context.Background()

	customer := &domain.Customer{ID: uuid.New(), CustomerName: "Walk-in"}
	m.customers.On("GetByID", ctx, customer.ID).Return(customer, nil)
	m.stock.On("GetByIDs", ctx, mock.Anything).Return([]domain.StockItem{}, nil)

	_, err := svc.Create(ctx, &domain.CreateInvoiceInput{
		CustomerID: customer.ID,
		Items:      []domain.CreateInvoiceItemInput{{StockItemID: uuid.New(), Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestInvoiceService_Create_CustomerNotFound(t *testing.T) {
	svc, m := setupInvoiceService()
	ctx := context.Background()

	id := uuid.New()
	m.customers.On("GetByID", ctx, id).Return(nil, domain.ErrNotFound)

	_, err := svc.Create(ctx, &domain.CreateInvoiceInput{
		CustomerID: id,
		Items:      []domain.CreateInvoiceItemInput{{StockItemID: uuid.New(), Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestInvoiceService_Create_BroadcastsNewLowStock(t *testing.T) {
	svc, m := setupInvoiceService()
	ctx := context.Background()

	customer := &domain.Customer{ID: uuid.New(), CustomerName: "Walk-in"}
	item := paracetamol(12, 5)

	m.customers.On("GetByID", ctx, customer.ID).Return(customer, nil)
	m.stock.On("GetByIDs", ctx, mock.Anything).Return([]domain.StockItem{item}, nil)
	m.invoices.On("NextSequence", ctx).Return(int64(1), nil)
	m.invoices.On("Create", ctx, mock.Anything, true).Return(nil)
	m.alerts.On("Broadcast", mock.MatchedBy(func(alerts []domain.StockAlert) bool {
		return len(alerts) == 1 &&
			alerts[0].Type == domain.AlertLowStock &&
			alerts[0].StockItemID == item.ID &&
			alerts[0].Quantity == 4
	})).Return()

	_, err := svc.Create(ctx, &domain.CreateInvoiceInput{
		CustomerID: customer.ID,
		Items:      []domain.CreateInvoiceItemInput{{StockItemID: item.ID, Quantity: 8}},
	})
	require.NoError(t, err)
	m.alerts.AssertExpectations(t)
}

func TestInvoiceService_UpdatePaymentStatus(t *testing.T) {
	svc, m := setupInvoiceService()
	ctx := context.Background()
	id := uuid.New()

	assert.ErrorIs(t, svc.UpdatePaymentStatus(ctx, id, "lost"), domain.ErrInvalidPaymentStatus)

	m.invoices.On("UpdatePaymentStatus", ctx, id, domain.PaymentStatusPartial).Return(nil)
	assert.NoError(t, svc.UpdatePaymentStatus(ctx, id, domain.PaymentStatusPartial))

	missing := uuid.New()
	m.invoices.On("UpdatePaymentStatus", ctx, missing, domain.PaymentStatusPaid).Return(domain.ErrNotFound)
	assert.True(t, errors.Is(svc.UpdatePaymentStatus(ctx, missing, domain.PaymentStatusPaid), domain.ErrNotFound))
}

func TestSnapshot(t *testing.T) {
	c := &domain.Customer{CustomerName: "City Clinic", GSTNumber: "33ABCDE1234F1Z5"}
	snap := service.Snapshot(c, "29")
	assert.Equal(t, domain.CustomerTypeB2B, snap.CustomerType)
	assert.Equal(t, "33", snap.PlaceOfSupply)

	snap = service.Snapshot(&domain.Customer{CustomerName: "Walk-in"}, "29")
	assert.Equal(t, domain.CustomerTypeB2C, snap.CustomerType)
	assert.Equal(t, "29", snap.PlaceOfSupply)
}

func TestInvoiceNumber(t *testing.T) {
	date := time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "INV-20250309-0042", service.InvoiceNumber(date, 42))
	assert.Equal(t, "INV-20250309-12345", service.InvoiceNumber(date, 12345))
}
