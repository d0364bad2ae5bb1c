package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReturnLine is one invoice line joined with its invoice snapshot and HSN description.
// All GSTR-1 reports are groupings of these rows.
type ReturnLine struct {
	InvoiceID     uuid.UUID `db:"invoice_id"`
	InvoiceNumber string    `db:"invoice_number"`
	InvoiceDate   time.Time `db:"invoice_date"`
	InvoiceSnapshot
	InvoiceTotal   decimal.Decimal `db:"invoice_total"`
	HSNCode        string          `db:"hsn_code"`
	HSNDescription string          `db:"hsn_description"`
	Quantity       int             `db:"quantity"`
	GSTRate        decimal.Decimal `db:"gst_rate"`
	TaxableAmount  decimal.Decimal `db:"taxable_amount"`
	CGSTAmount     decimal.Decimal `db:"cgst_amount"`
	SGSTAmount     decimal.Decimal `db:"sgst_amount"`
	IGSTAmount     decimal.Decimal `db:"igst_amount"`
	LineTotal      decimal.Decimal `db:"line_total"`
}

// HSNSummaryRow aggregates all outward supplies for one HSN code.
type HSNSummaryRow struct {
	HSNCode       string          `json:"hsn_code"`
	Description   string          `json:"description"`
	UQC           string          `json:"uqc"`
	TotalQuantity int64           `json:"total_quantity"`
	TotalValue    decimal.Decimal `json:"total_value"`
	TaxableValue  decimal.Decimal `json:"taxable_value"`
	IGSTAmount    decimal.Decimal `json:"igst_amount"`
	CGSTAmount    decimal.Decimal `json:"cgst_amount"`
	SGSTAmount    decimal.Decimal `json:"sgst_amount"`
}

// B2BSummaryRow is one (invoice, HSN code) group of a registered-customer invoice.
type B2BSummaryRow struct {
	InvoiceNumber string          `json:"invoice_number"`
	InvoiceDate   string          `json:"invoice_date"`
	CustomerName  string          `json:"customer_name"`
	CustomerGSTIN string          `json:"customer_gstin"`
	PlaceOfSupply string          `json:"place_of_supply"`
	ReverseCharge string          `json:"reverse_charge"`
	InvoiceType   string          `json:"invoice_type"`
	InvoiceValue  decimal.Decimal `json:"invoice_value"`
	HSNCode       string          `json:"hsn_code"`
	TaxableValue  decimal.Decimal `json:"taxable_value"`
	IGSTAmount    decimal.Decimal `json:"igst_amount"`
	CGSTAmount    decimal.Decimal `json:"cgst_amount"`
	SGSTAmount    decimal.Decimal `json:"sgst_amount"`
}

// B2CSummaryRow aggregates unregistered-customer supplies at one tax rate and place of supply.
type B2CSummaryRow struct {
	PlaceOfSupply string          `json:"place_of_supply"`
	TaxRate       decimal.Decimal `json:"tax_rate"`
	TaxableValue  decimal.Decimal `json:"taxable_value"`
	IGSTAmount    decimal.Decimal `json:"igst_amount"`
	CGSTAmount    decimal.Decimal `json:"cgst_amount"`
	SGSTAmount    decimal.Decimal `json:"sgst_amount"`
}

// HSNCategorizationRow is the B2B/B2C cross-tab for one HSN code.
type HSNCategorizationRow struct {
	HSNCode     string          `json:"hsn_code"`
	Description string          `json:"description"`
	B2BValue    decimal.Decimal `json:"b2b_value"`
	B2BQuantity int64           `json:"b2b_quantity"`
	B2CValue    decimal.Decimal `json:"b2c_value"`
	B2CQuantity int64           `json:"b2c_quantity"`
}

// TaxTotals sums the tax components of a set of supplies.
type TaxTotals struct {
	TaxableValue decimal.Decimal `json:"taxable_value"`
	IGSTAmount   decimal.Decimal `json:"igst_amount"`
	CGSTAmount   decimal.Decimal `json:"cgst_amount"`
	SGSTAmount   decimal.Decimal `json:"sgst_amount"`
}

// Add returns the componentwise sum of t and o.
func (t TaxTotals) Add(o TaxTotals) TaxTotals {
	return TaxTotals{
		TaxableValue: t.TaxableValue.Add(o.TaxableValue),
		IGSTAmount:   t.IGSTAmount.Add(o.IGSTAmount),
		CGSTAmount:   t.CGSTAmount.Add(o.CGSTAmount),
		SGSTAmount:   t.SGSTAmount.Add(o.SGSTAmount),
	}
}

// ReturnInvoiceItem is the per-rate detail of an invoice in the filing return.
type ReturnInvoiceItem struct {
	Number  int             `json:"number"`
	GSTRate decimal.Decimal `json:"gst_rate"`
	TaxTotals
}

// ReturnInvoice is an invoice reported individually (B2B or B2C-Large).
type ReturnInvoice struct {
	InvoiceNumber string              `json:"invoice_number"`
	InvoiceDate   time.Time           `json:"invoice_date"`
	CustomerName  string              `json:"customer_name"`
	CustomerGSTIN string              `json:"customer_gstin"`
	PlaceOfSupply string              `json:"place_of_supply"`
	Category      SupplyCategory      `json:"category"`
	InvoiceValue  decimal.Decimal     `json:"invoice_value"`
	Items         []ReturnInvoiceItem `json:"items"`
	TaxTotals
}

// B2CSmallRow is a B2C-Small supply bucket keyed by place of supply and rate.
type B2CSmallRow struct {
	PlaceOfSupply string          `json:"place_of_supply"`
	InterState    bool            `json:"inter_state"`
	GSTRate       decimal.Decimal `json:"gst_rate"`
	TaxTotals
}

// SectionSummary counts the records and value in one return section.
type SectionSummary struct {
	Section string          `json:"section"`
	Records int             `json:"records"`
	Value   decimal.Decimal `json:"value"`
	TaxTotals
}

// Return is the complete GSTR-1 aggregate for a window, ready for export.
// B2CSmallInvoices keeps the individual invoices behind the B2CSmall buckets for review exports.
type Return struct {
	Range            DateRange        `json:"-"`
	B2B              []ReturnInvoice  `json:"b2b"`
	B2CLarge         []ReturnInvoice  `json:"b2cl"`
	B2CSmall         []B2CSmallRow    `json:"b2cs"`
	B2CSmallInvoices []ReturnInvoice  `json:"-"`
	HSN              []HSNSummaryRow  `json:"hsn"`
	Sections         []SectionSummary `json:"sections"`
	Totals           TaxTotals        `json:"totals"`
	Turnover         decimal.Decimal  `json:"turnover"`
}

// ReturnSummary is the section overview of a return window.
type ReturnSummary struct {
	FromDate string           `json:"from_date"`
	ToDate   string           `json:"to_date"`
	Sections []SectionSummary `json:"sections"`
	Totals   TaxTotals        `json:"totals"`
	Turnover decimal.Decimal  `json:"turnover"`
}

// Summary returns the section overview of r.
func (r *Return) Summary() ReturnSummary {
	return ReturnSummary{
		FromDate: r.Range.From.Format(DateLayout),
		ToDate:   r.Range.To.Format(DateLayout),
		Sections: r.Sections,
		Totals:   r.Totals,
		Turnover: r.Turnover,
	}
}
