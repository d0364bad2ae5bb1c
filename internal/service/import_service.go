package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"pharmadist/internal/domain"
	"pharmadist/internal/gst"
	"pharmadist/internal/importer"
	"pharmadist/internal/logger"
	"pharmadist/internal/metrics"
	"pharmadist/internal/port"
)

// ImportResult reports how many records were stored and why the others failed.
type ImportResult struct {
	Success int      `json:"success"`
	Errors  []string `json:"errors"`
}

func (r *ImportResult) fail(format string, args ...interface{}) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// ImportService loads customers, stock and historical invoices from accounting exports.
type ImportService interface {
	Import(ctx context.Context, kind domain.ImportKind, fileData, format string) (*ImportResult, error)
	Template(kind domain.ImportKind) (string, error)
}

type importService struct {
	customerRepo port.CustomerRepository
	stockRepo    port.StockItemRepository
	invoiceRepo  port.InvoiceRepository
	mapping      importer.ColumnMapping
	cfg          InvoiceConfig
	metrics      *metrics.Metrics
	now          func() time.Time
}

// NewImportService creates a new ImportService using the default column mapping.
func NewImportService(
	customerRepo port.CustomerRepository,
	stockRepo port.StockItemRepository,
	invoiceRepo port.InvoiceRepository,
	cfg InvoiceConfig,
	m *metrics.Metrics,
) ImportService {
	return &importService{
		customerRepo: customerRepo,
		stockRepo:    stockRepo,
		invoiceRepo:  invoiceRepo,
		mapping:      importer.DefaultMapping(),
		cfg:          cfg,
		metrics:      m,
		now:          time.Now,
	}
}

func (s *importService) Template(kind domain.ImportKind) (string, error) {
	return importer.Template(kind)
}

// Import parses fileData and stores each record independently. A file that cannot
// be parsed at all is an error; a record that fails is reported in the result.
func (s *importService) Import(ctx context.Context, kind domain.ImportKind, fileData, format string) (*ImportResult, error) {
	if fileData == "" {
		return nil, domain.ErrEmptyImport
	}
	f, err := importer.DetectFormat(fileData, format)
	if err != nil {
		return nil, err
	}
	rows, err := importer.Parse(fileData, f, kind)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyImport) {
			return nil, err
		}
		return nil, &ImportParseError{Format: f, Err: err}
	}

	records := make([]importRecord, len(rows))
	for i := range rows {
		records[i] = importRecord{line: rows[i].Line, fields: s.mapping.Normalize(rows[i].Fields, kind)}
	}

	result := &ImportResult{Errors: []string{}}
	switch kind {
	case domain.ImportCustomers:
		s.importCustomers(ctx, records, result)
	case domain.ImportStock:
		s.importStock(ctx, records, result)
	case domain.ImportInvoices, domain.ImportTransactions:
		s.importInvoices(ctx, records, result)
	default:
		return nil, domain.ErrInvalidImportType
	}

	s.metrics.RecordImport(string(kind), result.Success, len(result.Errors))
	logger.FromContext(ctx).Info("import finished",
		zap.String("kind", string(kind)),
		zap.String("format", string(f)),
		zap.Int("rows", len(rows)),
		zap.Int("success", result.Success),
		zap.Int("errors", len(result.Errors)))
	return result, nil
}

// ImportParseError reports a file that could not be split into records.
type ImportParseError struct {
	Format domain.ImportFormat
	Err    error
}

func (e *ImportParseError) Error() string {
	return fmt.Sprintf("malformed %s file: %v", e.Format, e.Err)
}

func (e *ImportParseError) Unwrap() error { return e.Err }

type importRecord struct {
	line   int
	fields map[string]string
}

func (s *importService) importCustomers(ctx context.Context, records []importRecord, result *ImportResult) {
	for _, rec := range records {
		in, err := importer.CustomerRecord(rec.fields)
		if err != nil {
			result.fail("Row %d: %v", rec.line, err)
			continue
		}
		c, err := NewCustomer(in)
		if err != nil {
			result.fail("Customer %s: %v", in.CustomerName, err)
			continue
		}
		if err := s.customerRepo.Upsert(ctx, c); err != nil {
			logger.FromContext(ctx).Warn("customer import failed", zap.String("customer", c.CustomerName), zap.Error(err))
			result.fail("Customer %s: could not be saved", c.CustomerName)
			continue
		}
		result.Success++
	}
}

func (s *importService) importStock(ctx context.Context, records []importRecord, result *ImportResult) {
	now := s.now()
	for _, rec := range records {
		in, err := importer.StockRecord(rec.fields, now)
		if err != nil {
			result.fail("Row %d: %v", rec.line, err)
			continue
		}
		if in.Quantity < 0 {
			result.fail("Stock item %s: %v", in.ItemName, domain.ErrInvalidQuantity)
			continue
		}
		item := &domain.StockItem{
			ID:            uuid.New(),
			ItemName:      in.ItemName,
			Manufacturer:  in.Manufacturer,
			Category:      in.Category,
			BatchNumber:   in.BatchNumber,
			ExpiryDate:    in.ExpiryDate,
			Quantity:      in.Quantity,
			MRP:           in.MRP,
			PurchaseRate:  in.PurchaseRate,
			GSTRate:       in.GSTRate,
			HSNCode:       in.HSNCode,
			MinStockLevel: in.MinStockLevel,
			RackLocation:  in.RackLocation,
		}
		if err := s.stockRepo.Create(ctx, item); err != nil {
			logger.FromContext(ctx).Warn("stock import failed", zap.String("item", item.ItemName), zap.Error(err))
			result.fail("Stock item %s: could not be saved", item.ItemName)
			continue
		}
		result.Success++
	}
}

// importInvoices groups rows by invoice number, in first-seen order, and stores each
// group as one historical invoice. Stock is not decremented for historical sales.
func (s *importService) importInvoices(ctx context.Context, records []importRecord, result *ImportResult) {
	var order []string
	groups := make(map[string][]*importer.InvoiceLine)
	for _, rec := range records {
		line, err := importer.InvoiceRecord(rec.fields)
		if err != nil {
			result.fail("Row %d: %v", rec.line, err)
			continue
		}
		if _, ok := groups[line.InvoiceNumber]; !ok {
			order = append(order, line.InvoiceNumber)
		}
		groups[line.InvoiceNumber] = append(groups[line.InvoiceNumber], line)
	}

	for _, number := range order {
		if err := s.importInvoice(ctx, groups[number]); err != nil {
			result.fail("Invoice %s: %v", number, err)
			continue
		}
		result.Success++
	}
}

func (s *importService) importInvoice(ctx context.Context, lines []*importer.InvoiceLine) error {
	first := lines[0]
	gstin := gst.NormalizeGSTIN(first.CustomerGSTIN)

	customer, err := s.findOrCreateCustomer(ctx, first.CustomerName, gstin)
	if err != nil {
		return err
	}

	// The snapshot follows the invoice row, not the live customer record.
	snapshot := Snapshot(&domain.Customer{
		CustomerName: first.CustomerName,
		GSTNumber:    gstin,
		CustomerType: gst.CustomerTypeFor(gstin),
	}, s.cfg.DefaultPlaceOfSupply)
	interState := gst.IsInterState(s.cfg.HomeState, snapshot.PlaceOfSupply)

	inv := &domain.SalesInvoice{
		ID:              uuid.New(),
		InvoiceNumber:   first.InvoiceNumber,
		CustomerID:      customer.ID,
		InvoiceSnapshot: snapshot,
		InvoiceDate:     calendarDay(first.InvoiceDate, s.cfg.Location),
		PaymentStatus:   domain.PaymentStatusPaid,
		Items:           make([]domain.SalesInvoiceItem, 0, len(lines)),
	}
	for _, l := range lines {
		stockID, err := s.stockItemID(ctx, l)
		if err != nil {
			logger.FromContext(ctx).Warn("stock lookup failed", zap.String("item", l.ItemName), zap.Error(err))
			return errors.New("could not be saved")
		}
		split := ImportedLineSplit(l, interState)
		inv.Items = append(inv.Items, domain.SalesInvoiceItem{
			ID:            uuid.New(),
			StockItemID:   stockID,
			ItemName:      l.ItemName,
			BatchNumber:   l.Batch,
			HSNCode:       l.HSNCode,
			Quantity:      l.Quantity,
			Rate:          l.Rate,
			Discount:      l.Discount,
			GSTRate:       l.GSTRate,
			TaxableAmount: split.Taxable,
			CGSTAmount:    split.CGST,
			SGSTAmount:    split.SGST,
			IGSTAmount:    split.IGST,
			TotalAmount:   split.Total(),
		})
	}
	applyTotals(inv)

	if err := s.invoiceRepo.Create(ctx, inv, false); err != nil {
		if errors.Is(err, domain.ErrDuplicateInvoiceNumber) {
			return err
		}
		logger.FromContext(ctx).Warn("invoice import failed", zap.String("invoice_number", inv.InvoiceNumber), zap.Error(err))
		return errors.New("could not be saved")
	}
	return nil
}

// stockItemID links an imported line to the stock item of the same name, if one exists.
func (s *importService) stockItemID(ctx context.Context, l *importer.InvoiceLine) (*uuid.UUID, error) {
	if l.ItemName == "" {
		return nil, nil
	}
	item, err := s.stockRepo.FindByName(ctx, l.ItemName, l.Batch)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item.ID, nil
}

// calendarDay re-anchors a parsed date to midnight in loc.
func calendarDay(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		return t
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

func (s *importService) findOrCreateCustomer(ctx context.Context, name, gstin string) (*domain.Customer, error) {
	c, err := s.customerRepo.GetByName(ctx, name)
	if err == nil {
		return c, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	c, err = NewCustomer(&domain.CreateCustomerInput{
		CustomerName: name,
		Address:      importer.DefaultAddress,
		GSTNumber:    gstin,
	})
	if err != nil {
		return nil, err
	}
	if err := s.customerRepo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// ImportedLineSplit settles the amounts of an imported line. Tax amounts present in
// the source are kept. Otherwise the split is derived forward from the taxable value,
// backward from a tax-inclusive total, or from quantity and rate as a last resort.
func ImportedLineSplit(l *importer.InvoiceLine, interState bool) gst.TaxSplit {
	hasTax := !l.CGST.IsZero() || !l.SGST.IsZero() || !l.IGST.IsZero()
	switch {
	case !l.Taxable.IsZero() && hasTax:
		return gst.TaxSplit{Taxable: l.Taxable, CGST: l.CGST, SGST: l.SGST, IGST: l.IGST}.Rounded()
	case !l.Taxable.IsZero():
		return gst.FromTaxableBase(gst.RoundMoney(l.Taxable), l.GSTRate, interState).Rounded()
	case !l.Total.IsZero():
		return gst.FromInclusiveAmount(l.Total, l.GSTRate, interState).Rounded()
	default:
		return gst.PostLine(l.Quantity, l.Rate, l.Discount, l.GSTRate, interState)
	}
}
