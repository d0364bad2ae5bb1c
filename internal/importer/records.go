package importer

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"pharmadist/internal/domain"
)

// Fallbacks applied to imported records that leave a field blank.
const (
	DefaultHSNCode       = "30049000"
	DefaultBatch         = "BATCH001"
	DefaultManufacturer  = "Unknown"
	DefaultCategory      = "General"
	DefaultAddress       = "Imported Address"
	DefaultMinStockLevel = 10
)

// DefaultGSTRate is the rate assumed for pharmaceutical lines without one.
var DefaultGSTRate = decimal.NewFromInt(12)

var dateLayouts = []string{
	"2006-01-02",
	"02-01-2006",
	"02/01/2006",
	"2006/01/02",
	"02-Jan-2006",
	"02-Jan-06",
	"02.01.2006",
	time.RFC3339,
}

// ParseDate accepts the date layouts seen in accounting exports.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

// ParseAmount parses a money or rate value, ignoring currency symbols and
// thousands separators. Blank input yields fallback.
func ParseAmount(s string, fallback decimal.Decimal) (decimal.Decimal, error) {
	s = strings.NewReplacer(",", "", "₹", "", "Rs.", "", " ", "", "%", "").Replace(strings.TrimSpace(s))
	if s == "" {
		return fallback, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q", s)
	}
	return d, nil
}

// ParseQuantity parses a whole-unit quantity. Decimal quantities are truncated.
func ParseQuantity(s string, fallback int) (int, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return fallback, nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("invalid quantity %q", s)
	}
	return int(d.IntPart()), nil
}

// CustomerRecord converts a normalized row into customer input.
func CustomerRecord(f map[string]string) (*domain.CreateCustomerInput, error) {
	name := f["customer_name"]
	if name == "" {
		return nil, fmt.Errorf("customer name is required")
	}
	credit, err := ParseAmount(f["credit_limit"], decimal.Zero)
	if err != nil {
		return nil, err
	}
	opening, err := ParseAmount(f["opening_balance"], decimal.Zero)
	if err != nil {
		return nil, err
	}
	address := f["address"]
	if address == "" {
		address = DefaultAddress
	}
	return &domain.CreateCustomerInput{
		CustomerName:   name,
		Phone:          f["phone"],
		Email:          f["email"],
		Address:        address,
		GSTNumber:      f["gst_number"],
		CreditLimit:    credit,
		OpeningBalance: opening,
	}, nil
}

// StockRecord converts a normalized row into stock item input. A missing expiry
// date defaults to one year after now.
func StockRecord(f map[string]string, now time.Time) (*domain.CreateStockItemInput, error) {
	name := f["item_name"]
	if name == "" {
		return nil, fmt.Errorf("item name is required")
	}
	in := &domain.CreateStockItemInput{
		ItemName:     name,
		Manufacturer: orDefault(f["manufacturer"], DefaultManufacturer),
		Category:     orDefault(f["category"], DefaultCategory),
		BatchNumber:  orDefault(f["batch_number"], DefaultBatch),
		HSNCode:      orDefault(f["hsn_code"], DefaultHSNCode),
		RackLocation: f["rack_location"],
		ExpiryDate:   now.AddDate(1, 0, 0).UTC(),
	}

	var err error
	if v := f["expiry_date"]; v != "" {
		if in.ExpiryDate, err = ParseDate(v); err != nil {
			return nil, err
		}
	}
	if in.Quantity, err = ParseQuantity(f["quantity"], 0); err != nil {
		return nil, err
	}
	if in.MinStockLevel, err = ParseQuantity(f["min_stock_level"], DefaultMinStockLevel); err != nil {
		return nil, err
	}
	if in.MRP, err = ParseAmount(f["mrp"], decimal.Zero); err != nil {
		return nil, err
	}
	if in.PurchaseRate, err = ParseAmount(f["purchase_rate"], decimal.Zero); err != nil {
		return nil, err
	}
	if in.GSTRate, err = ParseAmount(f["gst_rate"], DefaultGSTRate); err != nil {
		return nil, err
	}
	return in, nil
}

// InvoiceLine is one imported invoice row. Amounts left blank in the source are zero.
type InvoiceLine struct {
	InvoiceNumber string
	InvoiceDate   time.Time
	CustomerName  string
	CustomerGSTIN string
	ItemName      string
	Batch         string
	HSNCode       string
	Quantity      int
	Rate          decimal.Decimal
	Discount      decimal.Decimal
	GSTRate       decimal.Decimal
	Taxable       decimal.Decimal
	CGST          decimal.Decimal
	SGST          decimal.Decimal
	IGST          decimal.Decimal
	Total         decimal.Decimal
}

// InvoiceRecord converts a normalized row into an invoice line.
func InvoiceRecord(f map[string]string) (*InvoiceLine, error) {
	l := &InvoiceLine{
		InvoiceNumber: f["invoice_number"],
		CustomerName:  f["customer_name"],
		CustomerGSTIN: f["customer_gst"],
		ItemName:      orDefault(f["item_name"], "Imported item"),
		Batch:         orDefault(f["batch"], DefaultBatch),
		HSNCode:       orDefault(f["hsn_code"], DefaultHSNCode),
	}
	if l.InvoiceNumber == "" {
		return nil, fmt.Errorf("invoice number is required")
	}
	if l.CustomerName == "" {
		return nil, fmt.Errorf("customer name is required")
	}
	if f["invoice_date"] == "" {
		return nil, fmt.Errorf("invoice date is required")
	}

	var err error
	if l.InvoiceDate, err = ParseDate(f["invoice_date"]); err != nil {
		return nil, err
	}
	if l.Quantity, err = ParseQuantity(f["quantity"], 1); err != nil {
		return nil, err
	}
	if l.Quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}
	amounts := []struct {
		field    string
		dst      *decimal.Decimal
		fallback decimal.Decimal
	}{
		{"rate", &l.Rate, decimal.Zero},
		{"discount", &l.Discount, decimal.Zero},
		{"gst_rate", &l.GSTRate, DefaultGSTRate},
		{"taxable_amount", &l.Taxable, decimal.Zero},
		{"cgst_amount", &l.CGST, decimal.Zero},
		{"sgst_amount", &l.SGST, decimal.Zero},
		{"igst_amount", &l.IGST, decimal.Zero},
		{"total_amount", &l.Total, decimal.Zero},
	}
	for _, a := range amounts {
		if *a.dst, err = ParseAmount(f[a.field], a.fallback); err != nil {
			return nil, err
		}
	}
	return l, nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
