package port

import (
	"context"
	"time"

	"pharmadist/internal/domain"
)

// GSTR1Repository reads the flattened invoice lines the GSTR-1 reports are built from.
type GSTR1Repository interface {
	// LinesInRange returns every invoice line whose invoice date falls in [from, to], inclusive.
	LinesInRange(ctx context.Context, from, to time.Time) ([]domain.ReturnLine, error)
}
