// Package gstr1 groups invoice lines into the GSTR-1 report shapes. Every function
// here is a pure transform over already-fetched lines, so the same input always
// produces the same output.
package gstr1

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"pharmadist/internal/domain"
	"pharmadist/internal/gst"
)

const (
	dateLayout         = "2006-01-02"
	reverseChargeNo    = "N"
	invoiceTypeRegular = "Regular"
)

// Options carries the seller-side settings that shape a return.
type Options struct {
	HomeState            string
	DefaultPlaceOfSupply string
	B2CLargeThreshold    decimal.Decimal
	UQC                  string
}

// Aggregator builds GSTR-1 reports from invoice lines.
type Aggregator struct {
	opts Options
}

// NewAggregator creates an Aggregator. Zero-valued options fall back to the
// statutory threshold and the NOS unit.
func NewAggregator(opts Options) *Aggregator {
	if opts.B2CLargeThreshold.IsZero() {
		opts.B2CLargeThreshold = gst.DefaultB2CLargeThreshold
	}
	if opts.UQC == "" {
		opts.UQC = "NOS"
	}
	return &Aggregator{opts: opts}
}

func (a *Aggregator) placeOfSupply(l *domain.ReturnLine) string {
	if l.PlaceOfSupply != "" {
		return l.PlaceOfSupply
	}
	return a.opts.DefaultPlaceOfSupply
}

func lineTotals(l *domain.ReturnLine) domain.TaxTotals {
	return domain.TaxTotals{
		TaxableValue: l.TaxableAmount,
		IGSTAmount:   l.IGSTAmount,
		CGSTAmount:   l.CGSTAmount,
		SGSTAmount:   l.SGSTAmount,
	}
}

func zeroTotals() domain.TaxTotals {
	return domain.TaxTotals{
		TaxableValue: decimal.Zero,
		IGSTAmount:   decimal.Zero,
		CGSTAmount:   decimal.Zero,
		SGSTAmount:   decimal.Zero,
	}
}

// HSNSummary groups every line by HSN code, B2B and B2C combined, sorted by code.
func (a *Aggregator) HSNSummary(lines []domain.ReturnLine) []domain.HSNSummaryRow {
	byCode := make(map[string]*domain.HSNSummaryRow)
	for i := range lines {
		l := &lines[i]
		row, ok := byCode[l.HSNCode]
		if !ok {
			row = &domain.HSNSummaryRow{
				HSNCode:      l.HSNCode,
				Description:  describe(l),
				UQC:          a.opts.UQC,
				TotalValue:   decimal.Zero,
				TaxableValue: decimal.Zero,
				IGSTAmount:   decimal.Zero,
				CGSTAmount:   decimal.Zero,
				SGSTAmount:   decimal.Zero,
			}
			byCode[l.HSNCode] = row
		}
		row.TotalQuantity += int64(l.Quantity)
		row.TotalValue = row.TotalValue.Add(l.LineTotal)
		row.TaxableValue = row.TaxableValue.Add(l.TaxableAmount)
		row.IGSTAmount = row.IGSTAmount.Add(l.IGSTAmount)
		row.CGSTAmount = row.CGSTAmount.Add(l.CGSTAmount)
		row.SGSTAmount = row.SGSTAmount.Add(l.SGSTAmount)
	}

	rows := make([]domain.HSNSummaryRow, 0, len(byCode))
	for _, r := range byCode {
		rows = append(rows, *r)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].HSNCode < rows[j].HSNCode })
	return rows
}

func describe(l *domain.ReturnLine) string {
	if l.HSNDescription == "" {
		return "Unknown"
	}
	return l.HSNDescription
}

type invoiceHSNKey struct {
	invoiceID uuid.UUID
	hsnCode   string
}

// B2BSummary returns one row per (invoice, HSN code) for invoices whose snapshot
// type is B2B, sorted by invoice date, invoice number and HSN code.
func (a *Aggregator) B2BSummary(lines []domain.ReturnLine) []domain.B2BSummaryRow {
	type group struct {
		date time.Time
		row  domain.B2BSummaryRow
	}
	groups := make(map[invoiceHSNKey]*group)
	for i := range lines {
		l := &lines[i]
		if l.CustomerType != domain.CustomerTypeB2B {
			continue
		}
		key := invoiceHSNKey{invoiceID: l.InvoiceID, hsnCode: l.HSNCode}
		g, ok := groups[key]
		if !ok {
			g = &group{
				date: l.InvoiceDate,
				row: domain.B2BSummaryRow{
					InvoiceNumber: l.InvoiceNumber,
					InvoiceDate:   l.InvoiceDate.Format(dateLayout),
					CustomerName:  l.CustomerName,
					CustomerGSTIN: l.CustomerGSTIN,
					PlaceOfSupply: a.placeOfSupply(l),
					ReverseCharge: reverseChargeNo,
					InvoiceType:   invoiceTypeRegular,
					InvoiceValue:  l.InvoiceTotal,
					HSNCode:       l.HSNCode,
					TaxableValue:  decimal.Zero,
					IGSTAmount:    decimal.Zero,
					CGSTAmount:    decimal.Zero,
					SGSTAmount:    decimal.Zero,
				},
			}
			groups[key] = g
		}
		g.row.TaxableValue = g.row.TaxableValue.Add(l.TaxableAmount)
		g.row.IGSTAmount = g.row.IGSTAmount.Add(l.IGSTAmount)
		g.row.CGSTAmount = g.row.CGSTAmount.Add(l.CGSTAmount)
		g.row.SGSTAmount = g.row.SGSTAmount.Add(l.SGSTAmount)
	}

	ordered := make([]*group, 0, len(groups))
	for _, g := range groups {
		ordered = append(ordered, g)
	}
	sort.Slice(ordered, func(i, j int) bool {
		gi, gj := ordered[i], ordered[j]
		if !gi.date.Equal(gj.date) {
			return gi.date.Before(gj.date)
		}
		if gi.row.InvoiceNumber != gj.row.InvoiceNumber {
			return gi.row.InvoiceNumber < gj.row.InvoiceNumber
		}
		return gi.row.HSNCode < gj.row.HSNCode
	})

	rows := make([]domain.B2BSummaryRow, len(ordered))
	for i, g := range ordered {
		rows[i] = g.row
	}
	return rows
}

type rateKey struct {
	placeOfSupply string
	rate          string
}

// B2CSummary groups B2C lines by place of supply and GST rate, sorted by rate.
func (a *Aggregator) B2CSummary(lines []domain.ReturnLine) []domain.B2CSummaryRow {
	groups := make(map[rateKey]*domain.B2CSummaryRow)
	for i := range lines {
		l := &lines[i]
		if l.CustomerType != domain.CustomerTypeB2C {
			continue
		}
		pos := a.placeOfSupply(l)
		key := rateKey{placeOfSupply: pos, rate: l.GSTRate.StringFixed(2)}
		row, ok := groups[key]
		if !ok {
			row = &domain.B2CSummaryRow{
				PlaceOfSupply: pos,
				TaxRate:       l.GSTRate,
				TaxableValue:  decimal.Zero,
				IGSTAmount:    decimal.Zero,
				CGSTAmount:    decimal.Zero,
				SGSTAmount:    decimal.Zero,
			}
			groups[key] = row
		}
		row.TaxableValue = row.TaxableValue.Add(l.TaxableAmount)
		row.IGSTAmount = row.IGSTAmount.Add(l.IGSTAmount)
		row.CGSTAmount = row.CGSTAmount.Add(l.CGSTAmount)
		row.SGSTAmount = row.SGSTAmount.Add(l.SGSTAmount)
	}

	rows := make([]domain.B2CSummaryRow, 0, len(groups))
	for _, r := range groups {
		rows = append(rows, *r)
	}
	sort.Slice(rows, func(i, j int) bool {
		if c := rows[i].TaxRate.Cmp(rows[j].TaxRate); c != 0 {
			return c < 0
		}
		return rows[i].PlaceOfSupply < rows[j].PlaceOfSupply
	})
	return rows
}

type hsnSide struct {
	description string
	value       decimal.Decimal
	quantity    int64
}

func groupByHSN(lines []domain.ReturnLine, customerType domain.CustomerType) map[string]*hsnSide {
	out := make(map[string]*hsnSide)
	for i := range lines {
		l := &lines[i]
		if l.CustomerType != customerType {
			continue
		}
		s, ok := out[l.HSNCode]
		if !ok {
			s = &hsnSide{description: describe(l), value: decimal.Zero}
			out[l.HSNCode] = s
		}
		s.value = s.value.Add(l.LineTotal)
		s.quantity += int64(l.Quantity)
	}
	return out
}

// HSNCategorization groups B2B and B2C lines by HSN code independently and merges
// the two on the code. A side with no supplies for a code reports zero.
func (a *Aggregator) HSNCategorization(lines []domain.ReturnLine) []domain.HSNCategorizationRow {
	b2b := groupByHSN(lines, domain.CustomerTypeB2B)
	b2c := groupByHSN(lines, domain.CustomerTypeB2C)

	merged := make(map[string]*domain.HSNCategorizationRow, len(b2b)+len(b2c))
	for code, s := range b2b {
		merged[code] = &domain.HSNCategorizationRow{
			HSNCode:     code,
			Description: s.description,
			B2BValue:    s.value,
			B2BQuantity: s.quantity,
			B2CValue:    decimal.Zero,
		}
	}
	for code, s := range b2c {
		row, ok := merged[code]
		if !ok {
			row = &domain.HSNCategorizationRow{
				HSNCode:     code,
				Description: s.description,
				B2BValue:    decimal.Zero,
			}
			merged[code] = row
		}
		row.B2CValue = s.value
		row.B2CQuantity = s.quantity
	}

	rows := make([]domain.HSNCategorizationRow, 0, len(merged))
	for _, r := range merged {
		rows = append(rows, *r)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].HSNCode < rows[j].HSNCode })
	return rows
}
