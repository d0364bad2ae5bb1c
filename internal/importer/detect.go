// Package importer turns exports from third-party accounting software into
// canonical customer, stock and invoice records. Field matching is driven by a
// ColumnMapping table so it can be tested without any parsing.
package importer

import (
	"strings"

	"pharmadist/internal/domain"
)

// DetectFormat picks the wire format of data. An explicit format wins; otherwise
// a leading XML declaration selects xml, any pipe selects dat, and csv is the default.
func DetectFormat(data, explicit string) (domain.ImportFormat, error) {
	if explicit = strings.ToLower(strings.TrimSpace(explicit)); explicit != "" {
		switch f := domain.ImportFormat(explicit); f {
		case domain.FormatCSV, domain.FormatXML, domain.FormatDAT:
			return f, nil
		}
		return "", domain.ErrUnsupportedFormat
	}

	trimmed := strings.TrimSpace(strings.TrimPrefix(data, "\ufeff"))
	switch {
	case strings.HasPrefix(trimmed, "<?xml"):
		return domain.FormatXML, nil
	case strings.Contains(trimmed, "|"):
		return domain.FormatDAT, nil
	default:
		return domain.FormatCSV, nil
	}
}
