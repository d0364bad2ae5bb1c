package gst

import (
	"strings"

	"github.com/shopspring/decimal"

	"pharmadist/internal/domain"
)

// DefaultB2CLargeThreshold is the invoice value above which a B2C sale is reported individually.
var DefaultB2CLargeThreshold = decimal.NewFromInt(250000)

// CustomerTypeFor derives the registration class from a GST number.
func CustomerTypeFor(gstNumber string) domain.CustomerType {
	if strings.TrimSpace(gstNumber) != "" {
		return domain.CustomerTypeB2B
	}
	return domain.CustomerTypeB2C
}

// Classify places an invoice in its GSTR-1 section. A B2C invoice is large only
// when its total strictly exceeds threshold.
func Classify(customerType domain.CustomerType, total, threshold decimal.Decimal) domain.SupplyCategory {
	if customerType == domain.CustomerTypeB2B {
		return domain.SupplyB2B
	}
	if total.GreaterThan(threshold) {
		return domain.SupplyB2CLarge
	}
	return domain.SupplyB2CSmall
}
