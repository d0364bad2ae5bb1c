package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"pharmadist/internal/domain"
	"pharmadist/internal/gst"
)

// BOM is the UTF-8 byte order mark Excel on Windows needs to detect the encoding.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// Section labels used in the review CSV.
const (
	csvSectionB2B      = "B2B"
	csvSectionB2CSmall = "B2C Small"
	csvSectionB2CLarge = "B2C Large"
	csvTypeInvoice     = "Invoice"
)

// columns defines the review CSV header row.
var columns = []string{
	"Section",
	"Type",
	"Invoice Number",
	"Date",
	"Customer",
	"GSTIN",
	"Amount",
	"CGST",
	"SGST",
	"IGST",
}

// Writer wraps csv.Writer for writing a return as review rows.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteHeader writes the header row.
func (w *Writer) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteReturn writes one row per invoice: B2B, then B2C Small, then B2C Large.
func (w *Writer) WriteReturn(ret *domain.Return) error {
	sections := []struct {
		label    string
		invoices []domain.ReturnInvoice
		gstin    bool
	}{
		{csvSectionB2B, ret.B2B, true},
		{csvSectionB2CSmall, ret.B2CSmallInvoices, false},
		{csvSectionB2CLarge, ret.B2CLarge, false},
	}
	for _, s := range sections {
		for i := range s.invoices {
			if err := w.csv.Write(invoiceRow(s.label, &s.invoices[i], s.gstin)); err != nil {
				return err
			}
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

func invoiceRow(section string, inv *domain.ReturnInvoice, withGSTIN bool) []string {
	row := make([]string, len(columns))
	row[0] = section
	row[1] = csvTypeInvoice
	row[2] = inv.InvoiceNumber
	row[3] = inv.InvoiceDate.Format("2006-01-02")
	row[4] = inv.CustomerName
	if withGSTIN {
		row[5] = inv.CustomerGSTIN
	}
	row[6] = formatMoney(inv.InvoiceValue)
	row[7] = formatMoney(inv.CGSTAmount)
	row[8] = formatMoney(inv.SGSTAmount)
	row[9] = formatMoney(inv.IGSTAmount)
	return row
}

func formatMoney(d decimal.Decimal) string {
	return gst.RoundMoney(d).StringFixed(2)
}

// CSV renders the review CSV, optionally prefixed with a BOM.
func CSV(ret *domain.Return, withBOM bool) ([]byte, error) {
	var buf bytes.Buffer
	if withBOM {
		buf.Write(BOM)
	}
	w := NewWriter(&buf)
	if err := w.WriteHeader(); err != nil {
		return nil, fmt.Errorf("export.CSV: %w", err)
	}
	if err := w.WriteReturn(ret); err != nil {
		return nil, fmt.Errorf("export.CSV: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("export.CSV: %w", err)
	}
	return buf.Bytes(), nil
}
