package handler

// Swagger type definitions for API documentation.
// These types are used by swag to generate OpenAPI documentation.

// ArchiveExportRequest represents the archive export request body.
type ArchiveExportRequest struct {
	Month  int    `json:"month" binding:"required" example:"12"`
	Year   int    `json:"year" binding:"required" example:"2024"`
	Format string `json:"format" example:"json"`
}

// UpdatePaymentStatusRequest represents the payment status update body.
type UpdatePaymentStatusRequest struct {
	PaymentStatus string `json:"payment_status" binding:"required" example:"paid"`
}

// ImportRequest represents an import upload. FileData is the raw file text.
type ImportRequest struct {
	FileData string `json:"fileData" example:"customer_name,gst_number\nApollo Pharmacy,29ABCDE1234F1Z5"`
	Format   string `json:"format" example:"csv"`
}

// SeedHSNResponse reports how many HSN codes were inserted.
type SeedHSNResponse struct {
	Message  string `json:"message" example:"HSN codes seeded successfully"`
	Inserted int    `json:"inserted" example:"13"`
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status       string `json:"status" example:"ok"`
	Error        string `json:"error,omitempty"`
	AlertClients *int   `json:"alert_clients,omitempty" example:"2"`
}
