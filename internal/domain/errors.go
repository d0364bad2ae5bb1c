package domain

import "errors"

var (
	ErrNotFound               = errors.New("resource not found")
	ErrDateRangeRequired      = errors.New("fromDate and toDate are required")
	ErrInvalidDate            = errors.New("fromDate and toDate must be YYYY-MM-DD")
	ErrInvalidDateRange       = errors.New("fromDate must not be after toDate")
	ErrInvalidPeriod          = errors.New("month must be 1-12 and year a four-digit year")
	ErrInsufficientStock      = errors.New("insufficient stock for invoice line")
	ErrDuplicateInvoiceNumber = errors.New("invoice number already exists")
	ErrDuplicateCustomer      = errors.New("customer name already exists")
	ErrInvalidGSTIN           = errors.New("invalid GSTIN")
	ErrInvalidImportType      = errors.New("invalid import type")
	ErrUnsupportedFormat      = errors.New("unsupported format")
	ErrEmptyImport            = errors.New("file data is required")
	ErrEmptyInvoice           = errors.New("invoice must have at least one item")
	ErrInvalidQuantity        = errors.New("quantity must be positive")
	ErrInvalidPaymentStatus   = errors.New("invalid payment status")
	ErrStorageUnavailable     = errors.New("return archive storage is not configured")
)
