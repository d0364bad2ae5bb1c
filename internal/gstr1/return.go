package gstr1

import (
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"pharmadist/internal/domain"
	"pharmadist/internal/gst"
)

// Section names used in the return summary.
const (
	SectionB2B  = "B2B"
	SectionB2CL = "B2CL"
	SectionB2CS = "B2CS"
	SectionHSN  = "HSN"
)

type invoiceLines struct {
	head  *domain.ReturnLine
	lines []*domain.ReturnLine
}

// groupInvoices collects lines per invoice, ordered by invoice date then number.
func groupInvoices(lines []domain.ReturnLine) []*invoiceLines {
	byID := make(map[uuid.UUID]*invoiceLines)
	for i := range lines {
		l := &lines[i]
		inv, ok := byID[l.InvoiceID]
		if !ok {
			inv = &invoiceLines{head: l}
			byID[l.InvoiceID] = inv
		}
		inv.lines = append(inv.lines, l)
	}

	out := make([]*invoiceLines, 0, len(byID))
	for _, inv := range byID {
		out = append(out, inv)
	}
	sort.Slice(out, func(i, j int) bool {
		hi, hj := out[i].head, out[j].head
		if !hi.InvoiceDate.Equal(hj.InvoiceDate) {
			return hi.InvoiceDate.Before(hj.InvoiceDate)
		}
		return hi.InvoiceNumber < hj.InvoiceNumber
	})
	return out
}

// rateItems groups an invoice's lines by GST rate and numbers them from 1.
func rateItems(lines []*domain.ReturnLine) []domain.ReturnInvoiceItem {
	byRate := make(map[string]*domain.ReturnInvoiceItem)
	for _, l := range lines {
		key := l.GSTRate.StringFixed(2)
		item, ok := byRate[key]
		if !ok {
			item = &domain.ReturnInvoiceItem{GSTRate: l.GSTRate, TaxTotals: zeroTotals()}
			byRate[key] = item
		}
		item.TaxTotals = item.TaxTotals.Add(lineTotals(l))
	}

	items := make([]domain.ReturnInvoiceItem, 0, len(byRate))
	for _, it := range byRate {
		items = append(items, *it)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].GSTRate.LessThan(items[j].GSTRate) })
	for i := range items {
		items[i].Number = i + 1
	}
	return items
}

// BuildReturn assembles the complete return for a window: B2B and B2C-Large
// invoices with per-rate items, B2C-Small buckets by place of supply and rate,
// the HSN block, per-section counts and overall totals.
func (a *Aggregator) BuildReturn(window domain.DateRange, lines []domain.ReturnLine) *domain.Return {
	ret := &domain.Return{
		Range:            window,
		B2B:              []domain.ReturnInvoice{},
		B2CLarge:         []domain.ReturnInvoice{},
		B2CSmall:         []domain.B2CSmallRow{},
		B2CSmallInvoices: []domain.ReturnInvoice{},
		Totals:           zeroTotals(),
		Turnover:         decimal.Zero,
	}

	small := make(map[rateKey]*domain.B2CSmallRow)
	b2bValue, b2clValue, b2csValue := decimal.Zero, decimal.Zero, decimal.Zero

	for _, inv := range groupInvoices(lines) {
		h := inv.head
		ret.Turnover = ret.Turnover.Add(h.InvoiceTotal)
		pos := a.placeOfSupply(h)

		category := gst.Classify(h.CustomerType, h.InvoiceTotal, a.opts.B2CLargeThreshold)
		ri := domain.ReturnInvoice{
			InvoiceNumber: h.InvoiceNumber,
			InvoiceDate:   h.InvoiceDate,
			CustomerName:  h.CustomerName,
			CustomerGSTIN: h.CustomerGSTIN,
			PlaceOfSupply: pos,
			Category:      category,
			InvoiceValue:  h.InvoiceTotal,
			Items:         rateItems(inv.lines),
			TaxTotals:     zeroTotals(),
		}
		for _, it := range ri.Items {
			ri.TaxTotals = ri.TaxTotals.Add(it.TaxTotals)
		}
		ret.Totals = ret.Totals.Add(ri.TaxTotals)

		if category == domain.SupplyB2CSmall {
			for _, l := range inv.lines {
				key := rateKey{placeOfSupply: pos, rate: l.GSTRate.StringFixed(2)}
				row, ok := small[key]
				if !ok {
					row = &domain.B2CSmallRow{
						PlaceOfSupply: pos,
						InterState:    gst.IsInterState(a.opts.HomeState, pos),
						GSTRate:       l.GSTRate,
						TaxTotals:     zeroTotals(),
					}
					small[key] = row
				}
				row.TaxTotals = row.TaxTotals.Add(lineTotals(l))
			}
			ret.B2CSmallInvoices = append(ret.B2CSmallInvoices, ri)
			b2csValue = b2csValue.Add(h.InvoiceTotal)
			continue
		}

		if category == domain.SupplyB2B {
			ret.B2B = append(ret.B2B, ri)
			b2bValue = b2bValue.Add(h.InvoiceTotal)
		} else {
			ret.B2CLarge = append(ret.B2CLarge, ri)
			b2clValue = b2clValue.Add(h.InvoiceTotal)
		}
	}

	for _, row := range small {
		ret.B2CSmall = append(ret.B2CSmall, *row)
	}
	sort.Slice(ret.B2CSmall, func(i, j int) bool {
		if ret.B2CSmall[i].PlaceOfSupply != ret.B2CSmall[j].PlaceOfSupply {
			return ret.B2CSmall[i].PlaceOfSupply < ret.B2CSmall[j].PlaceOfSupply
		}
		return ret.B2CSmall[i].GSTRate.LessThan(ret.B2CSmall[j].GSTRate)
	})

	ret.HSN = a.HSNSummary(lines)

	ret.Sections = []domain.SectionSummary{
		invoiceSection(SectionB2B, ret.B2B, b2bValue),
		invoiceSection(SectionB2CL, ret.B2CLarge, b2clValue),
		smallSection(ret.B2CSmall, b2csValue),
		hsnSection(ret.HSN),
	}
	return ret
}

func invoiceSection(name string, invoices []domain.ReturnInvoice, value decimal.Decimal) domain.SectionSummary {
	s := domain.SectionSummary{Section: name, Records: len(invoices), Value: value, TaxTotals: zeroTotals()}
	for i := range invoices {
		s.TaxTotals = s.TaxTotals.Add(invoices[i].TaxTotals)
	}
	return s
}

func smallSection(rows []domain.B2CSmallRow, value decimal.Decimal) domain.SectionSummary {
	s := domain.SectionSummary{Section: SectionB2CS, Records: len(rows), Value: value, TaxTotals: zeroTotals()}
	for i := range rows {
		s.TaxTotals = s.TaxTotals.Add(rows[i].TaxTotals)
	}
	return s
}

func hsnSection(rows []domain.HSNSummaryRow) domain.SectionSummary {
	s := domain.SectionSummary{Section: SectionHSN, Records: len(rows), Value: decimal.Zero, TaxTotals: zeroTotals()}
	for i := range rows {
		r := &rows[i]
		s.Value = s.Value.Add(r.TotalValue)
		s.TaxTotals = s.TaxTotals.Add(domain.TaxTotals{
			TaxableValue: r.TaxableValue,
			IGSTAmount:   r.IGSTAmount,
			CGSTAmount:   r.CGSTAmount,
			SGSTAmount:   r.SGSTAmount,
		})
	}
	return s
}
