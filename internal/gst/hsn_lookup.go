package gst

import (
	"github.com/shopspring/decimal"

	"pharmadist/internal/domain"
)

// HSNLookup resolves HSN codes against the master list in memory.
// It is immutable after construction and safe for concurrent access.
type HSNLookup struct {
	byCode map[string]domain.HSNMaster
}

// NewHSNLookup builds an HSNLookup from master entries loaded from the database.
func NewHSNLookup(entries []domain.HSNMaster) *HSNLookup {
	m := make(map[string]domain.HSNMaster, len(entries))
	for i := range entries {
		m[entries[i].HSNCode] = entries[i]
	}
	return &HSNLookup{byCode: m}
}

// Find returns the entry for code, falling back from 8 to 6 to 4 digit prefixes.
func (h *HSNLookup) Find(code string) (domain.HSNMaster, bool) {
	if h == nil || len(h.byCode) == 0 || code == "" {
		return domain.HSNMaster{}, false
	}
	if e, ok := h.byCode[code]; ok {
		return e, true
	}
	for _, prefixLen := range []int{6, 4} {
		if len(code) > prefixLen {
			if e, ok := h.byCode[code[:prefixLen]]; ok {
				return e, true
			}
		}
	}
	return domain.HSNMaster{}, false
}

// Description returns the master description for code, or "Unknown".
func (h *HSNLookup) Description(code string) string {
	if e, ok := h.Find(code); ok {
		return e.Description
	}
	return "Unknown"
}

// RateOr returns the master GST rate for code, or fallback when the code is not listed.
func (h *HSNLookup) RateOr(code string, fallback decimal.Decimal) decimal.Decimal {
	if e, ok := h.Find(code); ok {
		return e.GSTRate
	}
	return fallback
}
