package port

import (
	"context"

	"pharmadist/internal/domain"
)

// EmailSender defines the contract for sending emails.
type EmailSender interface {
	SendStockAlertDigest(ctx context.Context, recipients []string, alerts []domain.StockAlert) error
}
