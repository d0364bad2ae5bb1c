package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"pharmadist/internal/domain"
	"pharmadist/internal/logger"
	"pharmadist/internal/port"
)

// SampleDataResult lists what a demo seed created.
type SampleDataResult struct {
	Customers  int      `json:"customers"`
	StockItems int      `json:"stock_items"`
	Invoices   []string `json:"invoices"`
}

// SampleDataService loads a small demo book of customers, stock and December 2024 sales.
type SampleDataService interface {
	Seed(ctx context.Context) (*SampleDataResult, error)
}

type sampleDataService struct {
	customerRepo port.CustomerRepository
	stockRepo    port.StockItemRepository
	invoices     InvoiceService
	loc          *time.Location
	now          func() time.Time
}

// NewSampleDataService creates a SampleDataService. Invoices are posted through invoices
// so stock, tax and numbering follow the normal sales path. A nil loc means UTC.
func NewSampleDataService(
	customerRepo port.CustomerRepository,
	stockRepo port.StockItemRepository,
	invoices InvoiceService,
	loc *time.Location,
) SampleDataService {
	if loc == nil {
		loc = time.UTC
	}
	return &sampleDataService{
		customerRepo: customerRepo,
		stockRepo:    stockRepo,
		invoices:     invoices,
		loc:          loc,
		now:          time.Now,
	}
}

var sampleCustomers = []domain.CreateCustomerInput{
	{
		CustomerName: "Apollo Pharmacy",
		Phone:        "9876543210",
		Email:        "apollo@example.com",
		Address:      "123 Main Street, Bangalore",
		GSTNumber:    "29ABCDE1234F1Z5",
		CreditLimit:  decimal.NewFromInt(50000),
	},
	{
		CustomerName: "Retail Customer",
		Phone:        "9876543211",
		Address:      "456 Park Road, Bangalore",
	},
	{
		CustomerName: "MedPlus Health Services",
		Phone:        "9876543212",
		Email:        "medplus@example.com",
		Address:      "789 Health Avenue, Bangalore",
		GSTNumber:    "29FGHIJ5678K2Z6",
		CreditLimit:  decimal.NewFromInt(75000),
	},
}

type sampleStock struct {
	item        domain.StockItem
	shelfMonths int
}

var sampleStockItems = []sampleStock{
	{domain.StockItem{
		ItemName: "Paracetamol 500mg", Manufacturer: "Cipla Ltd", Category: "Tablet", BatchNumber: "PC001",
		Quantity: 100, MRP: decimal.NewFromInt(5), PurchaseRate: decimal.RequireFromString("3.50"),
		GSTRate: decimal.NewFromInt(12), HSNCode: "30049000", MinStockLevel: 20, RackLocation: "A1",
	}, 18},
	{domain.StockItem{
		ItemName: "Amoxicillin 250mg", Manufacturer: "Sun Pharma", Category: "Capsule", BatchNumber: "AMX001",
		Quantity: 50, MRP: decimal.NewFromInt(12), PurchaseRate: decimal.RequireFromString("8.50"),
		GSTRate: decimal.NewFromInt(12), HSNCode: "30042000", MinStockLevel: 10, RackLocation: "A2",
	}, 12},
	{domain.StockItem{
		ItemName: "Insulin Injection", Manufacturer: "Novo Nordisk", Category: "Injection", BatchNumber: "INS001",
		Quantity: 25, MRP: decimal.NewFromInt(450), PurchaseRate: decimal.NewFromInt(380),
		GSTRate: decimal.NewFromInt(12), HSNCode: "30043100", MinStockLevel: 5, RackLocation: "B1",
	}, 9},
}

// sampleSale is one demo invoice: customer and stock are indexes into the lists above.
type sampleSale struct {
	customer, stock int
	day, quantity   int
}

var sampleSales = []sampleSale{
	{customer: 0, stock: 0, day: 1, quantity: 20},
	{customer: 1, stock: 2, day: 2, quantity: 1},
	{customer: 2, stock: 1, day: 3, quantity: 5},
}

// Seed inserts the demo data. It fails with domain.ErrDuplicateCustomer when the demo
// customers already exist.
func (s *sampleDataService) Seed(ctx context.Context) (*SampleDataResult, error) {
	result := &SampleDataResult{Invoices: []string{}}

	customerIDs := make([]uuid.UUID, len(sampleCustomers))
	for i := range sampleCustomers {
		c, err := NewCustomer(&sampleCustomers[i])
		if err != nil {
			return nil, fmt.Errorf("sample customer %s: %w", sampleCustomers[i].CustomerName, err)
		}
		if err := s.customerRepo.Create(ctx, c); err != nil {
			return nil, fmt.Errorf("sample customer %s: %w", c.CustomerName, err)
		}
		customerIDs[i] = c.ID
		result.Customers++
	}

	today := s.now().In(s.loc)
	stockIDs := make([]uuid.UUID, len(sampleStockItems))
	for i := range sampleStockItems {
		item := sampleStockItems[i].item
		item.ID = uuid.New()
		item.ExpiryDate = time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, s.loc).
			AddDate(0, sampleStockItems[i].shelfMonths, 0)
		if err := s.stockRepo.Create(ctx, &item); err != nil {
			return nil, fmt.Errorf("sample stock %s: %w", item.ItemName, err)
		}
		stockIDs[i] = item.ID
		result.StockItems++
	}

	for _, sale := range sampleSales {
		date := time.Date(2024, time.December, sale.day, 10, 0, 0, 0, s.loc)
		inv, err := s.invoices.Create(ctx, &domain.CreateInvoiceInput{
			CustomerID:    customerIDs[sale.customer],
			InvoiceDate:   &date,
			PaymentStatus: domain.PaymentStatusPaid,
			Items: []domain.CreateInvoiceItemInput{
				{StockItemID: stockIDs[sale.stock], Quantity: sale.quantity},
			},
		})
		if err != nil {
			return nil, fmt.Errorf("sample invoice for %s: %w", sampleCustomers[sale.customer].CustomerName, err)
		}
		result.Invoices = append(result.Invoices, inv.InvoiceNumber)
	}

	logger.FromContext(ctx).Info("sample data seeded",
		zap.Int("customers", result.Customers),
		zap.Int("stock_items", result.StockItems),
		zap.Strings("invoices", result.Invoices))
	return result, nil
}
