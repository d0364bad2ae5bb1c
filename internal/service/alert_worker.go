package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"pharmadist/internal/domain"
	"pharmadist/internal/metrics"
	"pharmadist/internal/port"
)

// AlertWorkerConfig holds settings for the stock alert worker.
type AlertWorkerConfig struct {
	PollInterval     time.Duration
	DigestRecipients []string
}

// AlertWorker periodically derives stock alerts, pushes newly raised ones to
// connected clients and mails them as a digest.
type AlertWorker struct {
	stock       StockService
	broadcaster port.AlertBroadcaster
	email       port.EmailSender
	cfg         AlertWorkerConfig
	metrics     *metrics.Metrics
	log         *zap.Logger
	seen        map[string]struct{}
}

// NewAlertWorker creates a new AlertWorker. broadcaster and email may be nil.
func NewAlertWorker(
	stock StockService,
	broadcaster port.AlertBroadcaster,
	email port.EmailSender,
	cfg AlertWorkerConfig,
	m *metrics.Metrics,
	log *zap.Logger,
) *AlertWorker {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 5 * time.Minute
	}
	return &AlertWorker{
		stock:       stock,
		broadcaster: broadcaster,
		email:       email,
		cfg:         cfg,
		metrics:     m,
		log:         log,
		seen:        make(map[string]struct{}),
	}
}

// Start runs the polling loop until ctx is canceled. The first poll happens
// immediately.
func (w *AlertWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.cfg.PollInterval)
	defer ticker.Stop()

	w.log.Info("alert worker started",
		zap.Duration("poll_interval", w.cfg.PollInterval),
		zap.Int("digest_recipients", len(w.cfg.DigestRecipients)))

	w.Poll(ctx)
	for {
		select {
		case <-ctx.Done():
			w.log.Info("alert worker stopped")
			return
		case <-ticker.C:
			w.Poll(ctx)
		}
	}
}

// Poll derives the current alerts and dispatches the ones not seen in a previous
// poll. Alerts that have cleared are forgotten so they are raised again if they recur.
// It returns the newly raised alerts.
func (w *AlertWorker) Poll(ctx context.Context) []domain.StockAlert {
	alerts, err := w.stock.Alerts(ctx)
	if err != nil {
		if ctx.Err() == nil {
			w.log.Error("deriving stock alerts", zap.Error(err))
		}
		return nil
	}

	current := make(map[string]struct{}, len(alerts))
	var fresh []domain.StockAlert
	for i := range alerts {
		current[alerts[i].ID] = struct{}{}
		if _, ok := w.seen[alerts[i].ID]; !ok {
			fresh = append(fresh, alerts[i])
		}
	}
	w.seen = current

	if len(fresh) == 0 {
		return nil
	}
	w.log.Info("new stock alerts", zap.Int("count", len(fresh)), zap.Int("active", len(alerts)))

	if w.broadcaster != nil {
		w.broadcaster.Broadcast(fresh)
	}
	if w.email != nil && len(w.cfg.DigestRecipients) > 0 {
		if err := w.email.SendStockAlertDigest(ctx, w.cfg.DigestRecipients, fresh); err != nil {
			w.log.Warn("sending stock alert digest", zap.Error(err))
		} else {
			w.metrics.RecordDigestSent()
		}
	}
	return fresh
}
