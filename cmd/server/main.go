package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	_ "pharmadist/docs"
	"pharmadist/internal/config"
	"pharmadist/internal/email/noop"
	"pharmadist/internal/email/ses"
	"pharmadist/internal/gstr1"
	"pharmadist/internal/handler"
	"pharmadist/internal/logger"
	"pharmadist/internal/metrics"
	"pharmadist/internal/port"
	"pharmadist/internal/repository/postgres"
	"pharmadist/internal/router"
	"pharmadist/internal/service"
	s3storage "pharmadist/internal/storage/s3"
	"pharmadist/internal/websocket"
)

// @title          Pharmadist API
// @version        1.0
// @description    Pharmaceutical distribution backend: invoicing, stock and GSTR-1 returns.
// @BasePath       /api
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	zl, err := logger.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = zl.Sync() }()
	zap.ReplaceGlobals(zl)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	// Initialize repositories
	customerRepo := postgres.NewCustomerRepo(db)
	stockRepo := postgres.NewStockItemRepo(db)
	invoiceRepo := postgres.NewInvoiceRepo(db)
	hsnRepo := postgres.NewHSNRepo(db)
	gstr1Repo := postgres.NewGSTR1Repo(db)

	// Initialize storage; archiving stays disabled without a bucket
	var objectStorage port.ObjectStorage
	if cfg.S3.Enabled() {
		objectStorage, err = s3storage.NewS3Client(&cfg.S3)
		if err != nil {
			return fmt.Errorf("failed to initialize S3 client: %w", err)
		}
	} else {
		zl.Info("S3 bucket not configured, GSTR-1 archiving disabled")
	}

	emailSender, err := newEmailSender(cfg.Email, zl)
	if err != nil {
		return err
	}

	hub := websocket.NewHub(cfg.CORS.AllowedOrigins, zl, m)
	go hub.Run(ctx)

	// Initialize services
	invoiceCfg := service.InvoiceConfig{
		HomeState:            cfg.GST.HomeStateCode,
		DefaultPlaceOfSupply: cfg.GST.DefaultPlaceOfSupply,
		Location:             cfg.GST.Location,
	}
	customerSvc := service.NewCustomerService(customerRepo)
	stockSvc := service.NewStockService(stockRepo, cfg.Alerts.ExpiryWindowDays)
	invoiceSvc := service.NewInvoiceService(invoiceRepo, customerRepo, stockRepo, hub, invoiceCfg, m)
	hsnSvc := service.NewHSNService(hsnRepo)
	importSvc := service.NewImportService(customerRepo, stockRepo, invoiceRepo, invoiceCfg, m)
	sampleSvc := service.NewSampleDataService(customerRepo, stockRepo, invoiceSvc, cfg.GST.Location)
	gstr1Svc := service.NewGSTR1Service(gstr1Repo, objectStorage, service.GSTR1Config{
		Aggregation: gstr1.Options{
			HomeState:            cfg.GST.HomeStateCode,
			DefaultPlaceOfSupply: cfg.GST.DefaultPlaceOfSupply,
			B2CLargeThreshold:    cfg.GST.B2CLargeThreshold,
			UQC:                  cfg.GST.DefaultUQC,
		},
		SellerGSTIN:   cfg.GST.SellerGSTIN,
		Version:       cfg.GST.SchemaVersion,
		QueryTimeout:  cfg.Report.QueryTimeout,
		Bucket:        cfg.S3.Bucket,
		PresignExpiry: cfg.S3.PresignExpiry,
		ReverseCharge: cfg.GST.ReverseCharge,
		Location:      cfg.GST.Location,
	}, m)

	// Start stock alert worker
	worker := service.NewAlertWorker(stockSvc, hub, emailSender, service.AlertWorkerConfig{
		PollInterval:     cfg.Alerts.PollInterval,
		DigestRecipients: cfg.Alerts.DigestRecipients,
	}, m, zl)
	go worker.Start(ctx)

	// Initialize handlers
	gstr1H := handler.NewGSTR1Handler(gstr1Svc, hsnSvc, cfg.GST.Location)
	customerH := handler.NewCustomerHandler(customerSvc)
	stockH := handler.NewStockHandler(stockSvc)
	invoiceH := handler.NewInvoiceHandler(invoiceSvc)
	importH := handler.NewImportHandler(importSvc)
	sampleH := handler.NewSampleDataHandler(sampleSvc)
	healthH := handler.NewHealthHandler(db, hub)

	r := router.Setup(zl, m, cfg.CORS.AllowedOrigins, hub, gstr1H, customerH, stockH, invoiceH, importH, sampleH, healthH)

	srv := &http.Server{
		Addr:              cfg.Server.Port,
		Handler:           r,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		zl.Info("server starting", zap.String("addr", cfg.Server.Port), zap.String("environment", cfg.Server.Environment))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
	case <-ctx.Done():
	}

	zl.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}

func newEmailSender(cfg config.EmailConfig, zl *zap.Logger) (port.EmailSender, error) {
	switch cfg.Provider {
	case "ses":
		sender, err := ses.NewSESSender(cfg.Region, cfg.FromAddress, cfg.FromName)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize SES sender: %w", err)
		}
		return sender, nil
	case "", "noop":
		return noop.NewNoopSender(zl), nil
	default:
		return nil, fmt.Errorf("unknown email provider %q", cfg.Provider)
	}
}
