package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"pharmadist/internal/domain"
	"pharmadist/internal/export"
	"pharmadist/internal/gstr1"
	"pharmadist/internal/logger"
	"pharmadist/internal/metrics"
	"pharmadist/internal/port"
)

// GSTR1Config holds the seller settings and limits for return generation.
// Location is the business time zone for filing periods and invoice dates; nil means UTC.
type GSTR1Config struct {
	Aggregation   gstr1.Options
	SellerGSTIN   string
	Version       string
	QueryTimeout  time.Duration
	Bucket        string
	PresignExpiry int64
	ReverseCharge bool
	Location      *time.Location
}

// ExportFile is a rendered return ready for download.
type ExportFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ArchivedExport describes a return file stored in object storage.
type ArchivedExport struct {
	Key       string `json:"key"`
	Filename  string `json:"filename"`
	URL       string `json:"url"`
	ExpiresIn int64  `json:"expires_in"`
}

// GSTR1Service builds GSTR-1 reports and export files from posted invoices.
type GSTR1Service interface {
	HSNSummary(ctx context.Context, window domain.DateRange) ([]domain.HSNSummaryRow, error)
	B2BSummary(ctx context.Context, window domain.DateRange) ([]domain.B2BSummaryRow, error)
	B2CSummary(ctx context.Context, window domain.DateRange) ([]domain.B2CSummaryRow, error)
	HSNCategorization(ctx context.Context, window domain.DateRange) ([]domain.HSNCategorizationRow, error)
	Summary(ctx context.Context, window domain.DateRange) (*domain.ReturnSummary, error)
	Export(ctx context.Context, period domain.Period, format domain.ExportFormat) (*ExportFile, error)
	Archive(ctx context.Context, period domain.Period, format domain.ExportFormat) (*ArchivedExport, error)
}

type gstr1Service struct {
	repo    port.GSTR1Repository
	storage port.ObjectStorage
	agg     *gstr1.Aggregator
	cfg     GSTR1Config
	metrics *metrics.Metrics
}

// NewGSTR1Service creates a GSTR1Service. storage may be nil when archiving is disabled.
func NewGSTR1Service(repo port.GSTR1Repository, storage port.ObjectStorage, cfg GSTR1Config, m *metrics.Metrics) GSTR1Service {
	if cfg.QueryTimeout <= 0 {
		cfg.QueryTimeout = 30 * time.Second
	}
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	return &gstr1Service{
		repo:    repo,
		storage: storage,
		agg:     gstr1.NewAggregator(cfg.Aggregation),
		cfg:     cfg,
		metrics: m,
	}
}

// lines loads the window's invoice lines under the configured query timeout.
func (s *gstr1Service) lines(ctx context.Context, report string, window domain.DateRange) ([]domain.ReturnLine, error) {
	if err := window.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.QueryTimeout)
	defer cancel()

	start := time.Now()
	lines, err := s.repo.LinesInRange(ctx, window.From, window.To)
	s.metrics.RecordReport(report, err, time.Since(start).Seconds())
	if err != nil {
		logger.FromContext(ctx).Error("gstr1 report query failed",
			zap.String("report", report),
			zap.String("from", window.From.Format(domain.DateLayout)),
			zap.String("to", window.To.Format(domain.DateLayout)),
			zap.Error(err))
		return nil, fmt.Errorf("loading %s lines: %w", report, err)
	}
	for i := range lines {
		lines[i].InvoiceDate = lines[i].InvoiceDate.In(s.cfg.Location)
	}
	return lines, nil
}

func (s *gstr1Service) HSNSummary(ctx context.Context, window domain.DateRange) ([]domain.HSNSummaryRow, error) {
	lines, err := s.lines(ctx, "hsn-summary", window)
	if err != nil {
		return nil, err
	}
	return s.agg.HSNSummary(lines), nil
}

func (s *gstr1Service) B2BSummary(ctx context.Context, window domain.DateRange) ([]domain.B2BSummaryRow, error) {
	lines, err := s.lines(ctx, "b2b-summary", window)
	if err != nil {
		return nil, err
	}
	return s.agg.B2BSummary(lines), nil
}

func (s *gstr1Service) B2CSummary(ctx context.Context, window domain.DateRange) ([]domain.B2CSummaryRow, error) {
	lines, err := s.lines(ctx, "b2c-summary", window)
	if err != nil {
		return nil, err
	}
	return s.agg.B2CSummary(lines), nil
}

func (s *gstr1Service) HSNCategorization(ctx context.Context, window domain.DateRange) ([]domain.HSNCategorizationRow, error) {
	lines, err := s.lines(ctx, "hsn-categorization", window)
	if err != nil {
		return nil, err
	}
	return s.agg.HSNCategorization(lines), nil
}

func (s *gstr1Service) Summary(ctx context.Context, window domain.DateRange) (*domain.ReturnSummary, error) {
	lines, err := s.lines(ctx, "summary", window)
	if err != nil {
		return nil, err
	}
	summary := s.agg.BuildReturn(window, lines).Summary()
	return &summary, nil
}

func (s *gstr1Service) Export(ctx context.Context, period domain.Period, format domain.ExportFormat) (*ExportFile, error) {
	if err := period.Validate(); err != nil {
		return nil, err
	}
	window := period.Range(s.cfg.Location)
	lines, err := s.lines(ctx, "export", window)
	if err != nil {
		return nil, err
	}
	ret := s.agg.BuildReturn(window, lines)

	var data []byte
	switch format {
	case domain.ExportJSON:
		data, err = export.FilingJSON(ret, export.FilingConfig{
			GSTIN:         s.cfg.SellerGSTIN,
			Version:       s.cfg.Version,
			Period:        period,
			DefaultUQC:    s.cfg.Aggregation.UQC,
			ReverseCharge: s.cfg.ReverseCharge,
		})
	case domain.ExportCSV:
		data, err = export.CSV(ret, true)
	case domain.ExportXLSX:
		data, err = export.XLSX(ret)
	default:
		return nil, domain.ErrUnsupportedFormat
	}
	if err != nil {
		return nil, fmt.Errorf("rendering %s export: %w", format, err)
	}

	s.metrics.RecordExport(string(format))
	logger.FromContext(ctx).Info("gstr1 export rendered",
		zap.String("period", export.FilingPeriod(period)),
		zap.String("format", string(format)),
		zap.Int("b2b_invoices", len(ret.B2B)),
		zap.Int("b2cl_invoices", len(ret.B2CLarge)),
		zap.Int("b2cs_rows", len(ret.B2CSmall)),
		zap.Int("bytes", len(data)))

	return &ExportFile{
		Filename:    export.Filename(period, format),
		ContentType: format.ContentType(),
		Data:        data,
	}, nil
}

func (s *gstr1Service) Archive(ctx context.Context, period domain.Period, format domain.ExportFormat) (*ArchivedExport, error) {
	if s.storage == nil || s.cfg.Bucket == "" {
		return nil, domain.ErrStorageUnavailable
	}

	file, err := s.Export(ctx, period, format)
	if err != nil {
		return nil, err
	}

	key := export.ArchiveKey(period, format)
	_, err = s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.cfg.Bucket,
		Key:         key,
		Body:        bytes.NewReader(file.Data),
		ContentType: file.ContentType,
		Filename:    file.Filename,
		Size:        int64(len(file.Data)),
	})
	if err != nil {
		return nil, fmt.Errorf("archiving %s: %w", key, err)
	}

	url, err := s.storage.GetPresignedURL(ctx, s.cfg.Bucket, key, s.cfg.PresignExpiry)
	if err != nil {
		return nil, fmt.Errorf("presigning %s: %w", key, err)
	}

	return &ArchivedExport{
		Key:       key,
		Filename:  file.Filename,
		URL:       url,
		ExpiresIn: s.cfg.PresignExpiry,
	}, nil
}
