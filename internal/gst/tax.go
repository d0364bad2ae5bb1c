// Package gst holds the pure tax arithmetic and classification rules used for
// invoice posting and GSTR-1 reporting.
package gst

import (
	"github.com/shopspring/decimal"
)

// MoneyPlaces is the number of decimal places money is persisted with (paise).
const MoneyPlaces = 2

var (
	hundred    = decimal.NewFromInt(100)
	twoHundred = decimal.NewFromInt(200)
)

// RoundMoney rounds to paise, half away from zero.
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(MoneyPlaces)
}

// TaxSplit is a taxable value with its GST components. Exactly one of
// CGST/SGST or IGST is non-zero for a non-zero rate.
type TaxSplit struct {
	Taxable decimal.Decimal
	CGST    decimal.Decimal
	SGST    decimal.Decimal
	IGST    decimal.Decimal
}

// FromTaxableBase derives the tax components forward from a pre-tax amount.
func FromTaxableBase(base, rate decimal.Decimal, interState bool) TaxSplit {
	s := TaxSplit{Taxable: base, CGST: decimal.Zero, SGST: decimal.Zero, IGST: decimal.Zero}
	if interState {
		s.IGST = base.Mul(rate).Div(hundred)
		return s
	}
	half := base.Mul(rate).Div(twoHundred)
	s.CGST = half
	s.SGST = half
	return s
}

// FromInclusiveAmount derives the taxable value backward from a tax-inclusive
// amount such as an MRP, then splits it forward.
func FromInclusiveAmount(amount, rate decimal.Decimal, interState bool) TaxSplit {
	tax := amount.Mul(rate).Div(hundred.Add(rate))
	return FromTaxableBase(amount.Sub(tax), rate, interState)
}

// Tax returns the sum of the tax components.
func (s TaxSplit) Tax() decimal.Decimal {
	return s.CGST.Add(s.SGST).Add(s.IGST)
}

// Total returns taxable value plus tax.
func (s TaxSplit) Total() decimal.Decimal {
	return s.Taxable.Add(s.Tax())
}

// Rounded rounds every component to paise. It is applied once, when values are persisted.
func (s TaxSplit) Rounded() TaxSplit {
	return TaxSplit{
		Taxable: RoundMoney(s.Taxable),
		CGST:    RoundMoney(s.CGST),
		SGST:    RoundMoney(s.SGST),
		IGST:    RoundMoney(s.IGST),
	}
}

// LineTaxable is quantity * rate less a percentage discount.
func LineTaxable(qty int, rate, discountPct decimal.Decimal) decimal.Decimal {
	gross := rate.Mul(decimal.NewFromInt(int64(qty)))
	return gross.Sub(gross.Mul(discountPct).Div(hundred))
}

// PostLine computes the persisted split for one invoice line: the taxable value is
// rounded first, then split forward and rounded again.
func PostLine(qty int, rate, discountPct, gstRate decimal.Decimal, interState bool) TaxSplit {
	taxable := RoundMoney(LineTaxable(qty, rate, discountPct))
	return FromTaxableBase(taxable, gstRate, interState).Rounded()
}
