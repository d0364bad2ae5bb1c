package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// HSNMaster is a reference entry mapping an HSN code to its default GST rate.
type HSNMaster struct {
	HSNCode     string          `db:"hsn_code" json:"hsn_code"`
	Description string          `db:"description" json:"description"`
	GSTRate     decimal.Decimal `db:"gst_rate" json:"gst_rate"`
	Category    HSNCategory     `db:"category" json:"category"`
	CreatedAt   time.Time       `db:"created_at" json:"created_at"`
}

// StockItem is a single pharmaceutical SKU batch held in inventory.
type StockItem struct {
	ID            uuid.UUID       `db:"id" json:"id"`
	ItemName      string          `db:"item_name" json:"item_name"`
	Manufacturer  string          `db:"manufacturer" json:"manufacturer"`
	Category      string          `db:"category" json:"category"`
	BatchNumber   string          `db:"batch_number" json:"batch_number"`
	ExpiryDate    time.Time       `db:"expiry_date" json:"expiry_date"`
	Quantity      int             `db:"quantity" json:"quantity"`
	MRP           decimal.Decimal `db:"mrp" json:"mrp"`
	PurchaseRate  decimal.Decimal `db:"purchase_rate" json:"purchase_rate"`
	GSTRate       decimal.Decimal `db:"gst_rate" json:"gst_rate"`
	HSNCode       string          `db:"hsn_code" json:"hsn_code"`
	MinStockLevel int             `db:"min_stock_level" json:"min_stock_level"`
	RackLocation  string          `db:"rack_location" json:"rack_location"`
	CreatedAt     time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at" json:"updated_at"`
}

// Customer is a counterparty. A non-empty GSTNumber makes it a B2B customer.
type Customer struct {
	ID                uuid.UUID       `db:"id" json:"id"`
	CustomerName      string          `db:"customer_name" json:"customer_name"`
	Phone             string          `db:"phone" json:"phone"`
	Email             string          `db:"email" json:"email"`
	Address           string          `db:"address" json:"address"`
	GSTNumber         string          `db:"gst_number" json:"gst_number"`
	CustomerType      CustomerType    `db:"customer_type" json:"customer_type"`
	CreditLimit       decimal.Decimal `db:"credit_limit" json:"credit_limit"`
	OutstandingAmount decimal.Decimal `db:"outstanding_amount" json:"outstanding_amount"`
	CreatedAt         time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time       `db:"updated_at" json:"updated_at"`
}

// InvoiceSnapshot is the customer state copied onto an invoice when it is posted.
// It is never rewritten, so historical returns stay stable when customers change.
type InvoiceSnapshot struct {
	CustomerName  string       `db:"customer_name" json:"customer_name"`
	CustomerType  CustomerType `db:"customer_type" json:"customer_type"`
	CustomerGSTIN string       `db:"customer_gstin" json:"customer_gstin"`
	PlaceOfSupply string       `db:"place_of_supply" json:"place_of_supply"`
}

// SalesInvoice is a posted sale with its tax totals.
type SalesInvoice struct {
	ID            uuid.UUID `db:"id" json:"id"`
	InvoiceNumber string    `db:"invoice_number" json:"invoice_number"`
	CustomerID    uuid.UUID `db:"customer_id" json:"customer_id"`
	InvoiceSnapshot
	InvoiceDate   time.Time          `db:"invoice_date" json:"invoice_date"`
	Subtotal      decimal.Decimal    `db:"subtotal" json:"subtotal"`
	CGSTAmount    decimal.Decimal    `db:"cgst_amount" json:"cgst_amount"`
	SGSTAmount    decimal.Decimal    `db:"sgst_amount" json:"sgst_amount"`
	IGSTAmount    decimal.Decimal    `db:"igst_amount" json:"igst_amount"`
	TotalAmount   decimal.Decimal    `db:"total_amount" json:"total_amount"`
	PaymentStatus PaymentStatus      `db:"payment_status" json:"payment_status"`
	CreatedAt     time.Time          `db:"created_at" json:"created_at"`
	Items         []SalesInvoiceItem `db:"-" json:"items,omitempty"`
}

// SalesInvoiceItem is one line of a sales invoice.
type SalesInvoiceItem struct {
	ID            uuid.UUID       `db:"id" json:"id"`
	InvoiceID     uuid.UUID       `db:"invoice_id" json:"invoice_id"`
	StockItemID   *uuid.UUID      `db:"stock_item_id" json:"stock_item_id,omitempty"`
	ItemName      string          `db:"item_name" json:"item_name"`
	BatchNumber   string          `db:"batch_number" json:"batch_number"`
	HSNCode       string          `db:"hsn_code" json:"hsn_code"`
	Quantity      int             `db:"quantity" json:"quantity"`
	Rate          decimal.Decimal `db:"rate" json:"rate"`
	Discount      decimal.Decimal `db:"discount" json:"discount"`
	GSTRate       decimal.Decimal `db:"gst_rate" json:"gst_rate"`
	TaxableAmount decimal.Decimal `db:"taxable_amount" json:"taxable_amount"`
	CGSTAmount    decimal.Decimal `db:"cgst_amount" json:"cgst_amount"`
	SGSTAmount    decimal.Decimal `db:"sgst_amount" json:"sgst_amount"`
	IGSTAmount    decimal.Decimal `db:"igst_amount" json:"igst_amount"`
	TotalAmount   decimal.Decimal `db:"total_amount" json:"total_amount"`
}

// StockAlert is derived from stock item state at read time and never persisted.
type StockAlert struct {
	ID          string        `json:"id"`
	Type        AlertType     `json:"type"`
	Severity    AlertSeverity `json:"severity"`
	StockItemID uuid.UUID     `json:"stock_item_id"`
	ItemName    string        `json:"item_name"`
	BatchNumber string        `json:"batch_number"`
	Quantity    int           `json:"quantity"`
	ExpiryDate  time.Time     `json:"expiry_date"`
	Message     string        `json:"message"`
}

// CreateCustomerInput carries the fields accepted when creating a customer.
type CreateCustomerInput struct {
	CustomerName   string          `json:"customer_name" binding:"required"`
	Phone          string          `json:"phone"`
	Email          string          `json:"email"`
	Address        string          `json:"address"`
	GSTNumber      string          `json:"gst_number"`
	CreditLimit    decimal.Decimal `json:"credit_limit"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
}

// CreateStockItemInput carries the fields accepted when creating a stock item.
type CreateStockItemInput struct {
	ItemName      string          `json:"item_name" binding:"required"`
	Manufacturer  string          `json:"manufacturer"`
	Category      string          `json:"category"`
	BatchNumber   string          `json:"batch_number" binding:"required"`
	ExpiryDate    time.Time       `json:"expiry_date" binding:"required"`
	Quantity      int             `json:"quantity"`
	MRP           decimal.Decimal `json:"mrp"`
	PurchaseRate  decimal.Decimal `json:"purchase_rate"`
	GSTRate       decimal.Decimal `json:"gst_rate"`
	HSNCode       string          `json:"hsn_code"`
	MinStockLevel int             `json:"min_stock_level"`
	RackLocation  string          `json:"rack_location"`
}

// CreateInvoiceInput describes a sale to be posted.
type CreateInvoiceInput struct {
	CustomerID    uuid.UUID                `json:"customer_id" binding:"required"`
	InvoiceDate   *time.Time               `json:"invoice_date"`
	PaymentStatus PaymentStatus            `json:"payment_status"`
	Items         []CreateInvoiceItemInput `json:"items"`
}

// CreateInvoiceItemInput is one requested invoice line. A zero Rate falls back to the item's MRP.
type CreateInvoiceItemInput struct {
	StockItemID uuid.UUID       `json:"stock_item_id" binding:"required"`
	Quantity    int             `json:"quantity"`
	Rate        decimal.Decimal `json:"rate"`
	Discount    decimal.Decimal `json:"discount"`
}

// DateRange is an inclusive reporting window on invoice dates.
type DateRange struct {
	From time.Time
	To   time.Time
}

// DateLayout is the wire format of report window dates.
const DateLayout = "2006-01-02"

// ParseDateRange parses an inclusive YYYY-MM-DD window. Dates are calendar days in loc;
// a nil loc means UTC.
func ParseDateRange(from, to string, loc *time.Location) (DateRange, error) {
	if from == "" || to == "" {
		return DateRange{}, ErrDateRangeRequired
	}
	if loc == nil {
		loc = time.UTC
	}
	f, err := time.ParseInLocation(DateLayout, from, loc)
	if err != nil {
		return DateRange{}, ErrInvalidDate
	}
	t, err := time.ParseInLocation(DateLayout, to, loc)
	if err != nil {
		return DateRange{}, ErrInvalidDate
	}
	r := DateRange{From: f, To: t}
	return r, r.Validate()
}

// Validate checks the window is set and ordered.
func (r DateRange) Validate() error {
	if r.From.IsZero() || r.To.IsZero() {
		return ErrDateRangeRequired
	}
	if r.From.After(r.To) {
		return ErrInvalidDateRange
	}
	return nil
}

// Period is a GSTR-1 filing month.
type Period struct {
	Month int
	Year  int
}

// Range returns the inclusive window covering the whole month in loc. A nil loc means UTC.
func (p Period) Range(loc *time.Location) DateRange {
	if loc == nil {
		loc = time.UTC
	}
	from := time.Date(p.Year, time.Month(p.Month), 1, 0, 0, 0, 0, loc)
	return DateRange{From: from, To: from.AddDate(0, 1, -1)}
}

// Validate checks the month and year are usable as a filing period.
func (p Period) Validate() error {
	if p.Month < 1 || p.Month > 12 || p.Year < 2000 || p.Year > 9999 {
		return ErrInvalidPeriod
	}
	return nil
}
