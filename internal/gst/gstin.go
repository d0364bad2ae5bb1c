package gst

import (
	"regexp"
	"strings"
)

var (
	gstinPattern     = regexp.MustCompile(`^\d{2}[A-Z]{5}\d{4}[A-Z][1-9A-Z]Z[0-9A-Z]$`)
	stateCodePattern = regexp.MustCompile(`^\d{2}$`)
)

// NormalizeGSTIN trims and upper-cases a GST number.
func NormalizeGSTIN(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// ValidGSTIN reports whether s is a well-formed 15-character GSTIN.
func ValidGSTIN(s string) bool {
	return gstinPattern.MatchString(s)
}

// StateCodeFromGSTIN returns the two-digit state code of a valid GSTIN, or "".
func StateCodeFromGSTIN(gstin string) string {
	if !ValidGSTIN(gstin) {
		return ""
	}
	return gstin[:2]
}

// PlaceOfSupply picks the state code for a customer: the GSTIN state when the
// GSTIN is valid, the configured default otherwise.
func PlaceOfSupply(gstin, defaultCode string) string {
	if code := StateCodeFromGSTIN(gstin); code != "" {
		return code
	}
	return defaultCode
}

// IsInterState reports whether a supply crosses state lines. Malformed codes are
// treated as intra-state.
func IsInterState(homeState, placeOfSupply string) bool {
	if !stateCodePattern.MatchString(homeState) || !stateCodePattern.MatchString(placeOfSupply) {
		return false
	}
	return homeState != placeOfSupply
}
