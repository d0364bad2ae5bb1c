package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"pharmadist/internal/domain"
	"pharmadist/internal/gst"
	"pharmadist/internal/logger"
	"pharmadist/internal/metrics"
	"pharmadist/internal/port"
)

// InvoiceConfig holds the seller's state settings used when posting invoices.
// Location is the business time zone for invoice dates and numbers; nil means UTC.
type InvoiceConfig struct {
	HomeState            string
	DefaultPlaceOfSupply string
	Location             *time.Location
}

// InvoiceService posts and manages sales invoices.
type InvoiceService interface {
	Create(ctx context.Context, input *domain.CreateInvoiceInput) (*domain.SalesInvoice, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.SalesInvoice, error)
	List(ctx context.Context, offset, limit int) ([]domain.SalesInvoice, int, error)
	UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status domain.PaymentStatus) error
}

type invoiceService struct {
	invoiceRepo  port.InvoiceRepository
	customerRepo port.CustomerRepository
	stockRepo    port.StockItemRepository
	alerts       port.AlertBroadcaster
	cfg          InvoiceConfig
	metrics      *metrics.Metrics
	now          func() time.Time
}

// NewInvoiceService creates a new InvoiceService. alerts may be nil.
func NewInvoiceService(
	invoiceRepo port.InvoiceRepository,
	customerRepo port.CustomerRepository,
	stockRepo port.StockItemRepository,
	alerts port.AlertBroadcaster,
	cfg InvoiceConfig,
	m *metrics.Metrics,
) InvoiceService {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	return &invoiceService{
		invoiceRepo:  invoiceRepo,
		customerRepo: customerRepo,
		stockRepo:    stockRepo,
		alerts:       alerts,
		cfg:          cfg,
		metrics:      m,
		now:          time.Now,
	}
}

// Snapshot captures the customer fields an invoice keeps for its lifetime.
func Snapshot(c *domain.Customer, defaultPlaceOfSupply string) domain.InvoiceSnapshot {
	customerType := c.CustomerType
	if customerType == "" {
		customerType = gst.CustomerTypeFor(c.GSTNumber)
	}
	return domain.InvoiceSnapshot{
		CustomerName:  c.CustomerName,
		CustomerType:  customerType,
		CustomerGSTIN: c.GSTNumber,
		PlaceOfSupply: gst.PlaceOfSupply(c.GSTNumber, defaultPlaceOfSupply),
	}
}

// InvoiceNumber formats the posted invoice number for a date and sequence value.
// The date part is the calendar day of date in its own location.
func InvoiceNumber(date time.Time, seq int64) string {
	return fmt.Sprintf("INV-%s-%04d", date.Format("20060102"), seq)
}

// applyTotals sets the invoice header totals to the sum of its item amounts.
func applyTotals(inv *domain.SalesInvoice) {
	inv.Subtotal = decimal.Zero
	inv.CGSTAmount = decimal.Zero
	inv.SGSTAmount = decimal.Zero
	inv.IGSTAmount = decimal.Zero
	inv.TotalAmount = decimal.Zero
	for i := range inv.Items {
		it := &inv.Items[i]
		inv.Subtotal = inv.Subtotal.Add(it.TaxableAmount)
		inv.CGSTAmount = inv.CGSTAmount.Add(it.CGSTAmount)
		inv.SGSTAmount = inv.SGSTAmount.Add(it.SGSTAmount)
		inv.IGSTAmount = inv.IGSTAmount.Add(it.IGSTAmount)
		inv.TotalAmount = inv.TotalAmount.Add(it.TotalAmount)
	}
}

func invoiceItem(stock *domain.StockItem, in *domain.CreateInvoiceItemInput, interState bool) domain.SalesInvoiceItem {
	rate := in.Rate
	if rate.IsZero() {
		rate = stock.MRP
	}
	split := gst.PostLine(in.Quantity, rate, in.Discount, stock.GSTRate, interState)
	stockID := stock.ID
	return domain.SalesInvoiceItem{
		ID:            uuid.New(),
		StockItemID:   &stockID,
		ItemName:      stock.ItemName,
		BatchNumber:   stock.BatchNumber,
		HSNCode:       stock.HSNCode,
		Quantity:      in.Quantity,
		Rate:          rate,
		Discount:      in.Discount,
		GSTRate:       stock.GSTRate,
		TaxableAmount: split.Taxable,
		CGSTAmount:    split.CGST,
		SGSTAmount:    split.SGST,
		IGSTAmount:    split.IGST,
		TotalAmount:   split.Total(),
	}
}

func (s *invoiceService) Create(ctx context.Context, input *domain.CreateInvoiceInput) (*domain.SalesInvoice, error) {
	if len(input.Items) == 0 {
		return nil, domain.ErrEmptyInvoice
	}
	for i := range input.Items {
		if input.Items[i].Quantity <= 0 {
			return nil, domain.ErrInvalidQuantity
		}
	}
	status := input.PaymentStatus
	if status == "" {
		status = domain.PaymentStatusPending
	}
	if !status.Valid() {
		return nil, domain.ErrInvalidPaymentStatus
	}

	customer, err := s.customerRepo.GetByID(ctx, input.CustomerID)
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(input.Items))
	for i := range input.Items {
		ids = append(ids, input.Items[i].StockItemID)
	}
	stock, err := s.stockRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]*domain.StockItem, len(stock))
	for i := range stock {
		byID[stock[i].ID] = &stock[i]
	}

	snapshot := Snapshot(customer, s.cfg.DefaultPlaceOfSupply)
	interState := gst.IsInterState(s.cfg.HomeState, snapshot.PlaceOfSupply)

	inv := &domain.SalesInvoice{
		ID:              uuid.New(),
		CustomerID:      customer.ID,
		InvoiceSnapshot: snapshot,
		PaymentStatus:   status,
		Items:           make([]domain.SalesInvoiceItem, 0, len(input.Items)),
	}
	// requested sums quantities per stock item so repeated lines are checked together.
	requested := make(map[uuid.UUID]int, len(input.Items))
	for i := range input.Items {
		in := &input.Items[i]
		item, ok := byID[in.StockItemID]
		if !ok {
			return nil, fmt.Errorf("stock item %s: %w", in.StockItemID, domain.ErrNotFound)
		}
		requested[item.ID] += in.Quantity
		if requested[item.ID] > item.Quantity {
			s.metrics.RecordStockInsufficient()
			return nil, fmt.Errorf("%w: %s (batch %s)", domain.ErrInsufficientStock, item.ItemName, item.BatchNumber)
		}
		inv.Items = append(inv.Items, invoiceItem(item, in, interState))
	}
	applyTotals(inv)

	inv.InvoiceDate = s.now().In(s.cfg.Location)
	if input.InvoiceDate != nil {
		inv.InvoiceDate = input.InvoiceDate.In(s.cfg.Location)
	}
	seq, err := s.invoiceRepo.NextSequence(ctx)
	if err != nil {
		return nil, err
	}
	inv.InvoiceNumber = InvoiceNumber(inv.InvoiceDate, seq)

	if err := s.invoiceRepo.Create(ctx, inv, true); err != nil {
		if errors.Is(err, domain.ErrInsufficientStock) {
			s.metrics.RecordStockInsufficient()
		}
		return nil, err
	}
	s.metrics.RecordInvoicePosted()

	logger.FromContext(ctx).Info("sales invoice posted",
		zap.String("invoice_number", inv.InvoiceNumber),
		zap.String("customer_type", string(inv.CustomerType)),
		zap.String("total", inv.TotalAmount.StringFixed(2)),
		zap.Int("items", len(inv.Items)))

	s.pushLowStock(byID, requested)
	return inv, nil
}

// pushLowStock broadcasts alerts for items the invoice took to or below their minimum level.
func (s *invoiceService) pushLowStock(items map[uuid.UUID]*domain.StockItem, sold map[uuid.UUID]int) {
	if s.alerts == nil {
		return
	}
	var alerts []domain.StockAlert
	for id, qty := range sold {
		after := *items[id]
		wasLow := after.Quantity <= after.MinStockLevel
		after.Quantity -= qty
		if a, ok := LowStockAlert(&after); ok && !wasLow {
			alerts = append(alerts, a)
		}
	}
	if len(alerts) > 0 {
		s.alerts.Broadcast(alerts)
	}
}

func (s *invoiceService) GetByID(ctx context.Context, id uuid.UUID) (*domain.SalesInvoice, error) {
	return s.invoiceRepo.GetByID(ctx, id)
}

func (s *invoiceService) List(ctx context.Context, offset, limit int) ([]domain.SalesInvoice, int, error) {
	return s.invoiceRepo.List(ctx, offset, limit)
}

func (s *invoiceService) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status domain.PaymentStatus) error {
	if !status.Valid() {
		return domain.ErrInvalidPaymentStatus
	}
	return s.invoiceRepo.UpdatePaymentStatus(ctx, id, status)
}
