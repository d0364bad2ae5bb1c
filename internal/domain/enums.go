package domain

// CustomerType is the GST registration class of a counterparty.
type CustomerType string

const (
	CustomerTypeB2B CustomerType = "B2B"
	CustomerTypeB2C CustomerType = "B2C"
)

// SupplyCategory is the GSTR-1 reporting bucket an invoice falls into.
type SupplyCategory string

const (
	SupplyB2B      SupplyCategory = "B2B"
	SupplyB2CLarge SupplyCategory = "B2C-Large"
	SupplyB2CSmall SupplyCategory = "B2C-Small"
)

// PaymentStatus tracks settlement of a sales invoice.
type PaymentStatus string

const (
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPartial PaymentStatus = "partial"
)

// Valid reports whether s is a known payment status.
func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusPaid, PaymentStatusPending, PaymentStatusPartial:
		return true
	}
	return false
}

// AlertType classifies a derived stock alert.
type AlertType string

const (
	AlertLowStock   AlertType = "low_stock"
	AlertExpirySoon AlertType = "expiry_soon"
	AlertExpired    AlertType = "expired"
)

// AlertSeverity ranks a stock alert.
type AlertSeverity string

const (
	SeverityHigh   AlertSeverity = "high"
	SeverityMedium AlertSeverity = "medium"
)

// HSNCategory tags an HSN master entry.
type HSNCategory string

const (
	HSNCategoryPharma        HSNCategory = "pharma"
	HSNCategoryMedicalDevice HSNCategory = "medical_device"
)

// ImportKind is the record shape an import file is normalized into.
type ImportKind string

const (
	ImportCustomers    ImportKind = "customers"
	ImportStock        ImportKind = "stock"
	ImportInvoices     ImportKind = "invoices"
	ImportTransactions ImportKind = "transactions"
)

// ParseImportKind validates a path parameter naming an import kind.
func ParseImportKind(s string) (ImportKind, error) {
	switch k := ImportKind(s); k {
	case ImportCustomers, ImportStock, ImportInvoices, ImportTransactions:
		return k, nil
	}
	return "", ErrInvalidImportType
}

// ImportFormat is the wire format of an import file.
type ImportFormat string

const (
	FormatCSV ImportFormat = "csv"
	FormatXML ImportFormat = "xml"
	FormatDAT ImportFormat = "dat"
)

// ExportFormat is the rendering of a GSTR-1 return.
type ExportFormat string

const (
	ExportJSON ExportFormat = "json"
	ExportCSV  ExportFormat = "csv"
	ExportXLSX ExportFormat = "xlsx"
)

// ParseExportFormat validates an export format, defaulting to JSON.
func ParseExportFormat(s string) (ExportFormat, error) {
	switch f := ExportFormat(s); f {
	case "":
		return ExportJSON, nil
	case ExportJSON, ExportCSV, ExportXLSX:
		return f, nil
	}
	return "", ErrUnsupportedFormat
}

// ContentType returns the MIME type served for the export format.
func (f ExportFormat) ContentType() string {
	switch f {
	case ExportCSV:
		return "text/csv; charset=utf-8"
	case ExportXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return "application/json"
	}
}
