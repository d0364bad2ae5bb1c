package port

import (
	"context"

	"github.com/google/uuid"

	"pharmadist/internal/domain"
)

// InvoiceRepository defines the contract for sales invoice persistence.
type InvoiceRepository interface {
	// Create persists the invoice and its items in one transaction. When decrementStock is
	// set, every item with a stock item ID reduces that item's quantity, and the whole
	// invoice is rolled back with domain.ErrInsufficientStock if any line cannot be covered.
	Create(ctx context.Context, inv *domain.SalesInvoice, decrementStock bool) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.SalesInvoice, error)
	List(ctx context.Context, offset, limit int) ([]domain.SalesInvoice, int, error)
	UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status domain.PaymentStatus) error
	NextSequence(ctx context.Context) (int64, error)
}
