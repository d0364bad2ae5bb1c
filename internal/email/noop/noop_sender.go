package noop

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"pharmadist/internal/domain"
	"pharmadist/internal/email"
	"pharmadist/internal/port"
)

type noopSender struct {
	log *zap.Logger
}

// NewNoopSender creates a no-op EmailSender that logs digests instead of sending them.
func NewNoopSender(log *zap.Logger) port.EmailSender {
	return &noopSender{log: log}
}

func (s *noopSender) SendStockAlertDigest(_ context.Context, recipients []string, alerts []domain.StockAlert) error {
	if len(alerts) == 0 {
		return nil
	}
	digest := email.RenderDigest("Pharmadist", alerts)
	s.log.Info("[NOOP EMAIL] stock alert digest",
		zap.String("to", strings.Join(recipients, ",")),
		zap.String("subject", digest.Subject),
		zap.Int("alerts", len(alerts)))
	return nil
}
