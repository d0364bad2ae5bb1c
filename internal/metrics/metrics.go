// Package metrics defines the Prometheus collectors exposed at /metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "pharmadist"

// Metrics holds every collector the service records into.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	gatherer prometheus.Gatherer

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	InvoicesPosted    prometheus.Counter
	StockInsufficient prometheus.Counter
	ImportRecords     *prometheus.CounterVec
	ReportsGenerated  *prometheus.CounterVec
	ReportDuration    *prometheus.HistogramVec
	ExportsRendered   *prometheus.CounterVec
	StockAlertsRaised *prometheus.CounterVec
	AlertDigestsSent  prometheus.Counter
	WebsocketClients  prometheus.Gauge
}

// New registers all collectors with reg. Pass prometheus.NewRegistry() in tests.
func New(reg *prometheus.Registry) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		gatherer: reg,

		HTTPRequestsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		}, []string{"method", "path", "status"}),
		HTTPRequestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path", "status"}),

		InvoicesPosted: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "invoices_posted_total",
			Help:      "Sales invoices posted",
		}),
		StockInsufficient: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "invoice_stock_insufficient_total",
			Help:      "Invoices rejected because a line exceeded stock on hand",
		}),
		ImportRecords: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "import_records_total",
			Help:      "Imported records by kind and outcome",
		}, []string{"kind", "outcome"}),
		ReportsGenerated: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "gstr1_reports_total",
			Help:      "GSTR-1 reports generated by report and outcome",
		}, []string{"report", "outcome"}),
		ReportDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "gstr1_report_duration_seconds",
			Help:      "Duration of GSTR-1 report generation in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"report"}),
		ExportsRendered: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "gstr1_exports_total",
			Help:      "GSTR-1 export files rendered by format",
		}, []string{"format"}),
		StockAlertsRaised: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stock_alerts_raised_total",
			Help:      "New stock alerts broadcast by type",
		}, []string{"type"}),
		AlertDigestsSent: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stock_alert_digests_sent_total",
			Help:      "Stock alert digest emails sent",
		}),
		WebsocketClients: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "websocket_clients",
			Help:      "Connected stock alert websocket clients",
		}),
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

// ObserveHTTP records one completed HTTP request.
func (m *Metrics) ObserveHTTP(method, path, status string, seconds float64) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path, status).Observe(seconds)
}

// RecordInvoicePosted counts a posted invoice.
func (m *Metrics) RecordInvoicePosted() {
	if m == nil {
		return
	}
	m.InvoicesPosted.Inc()
}

// RecordStockInsufficient counts an invoice rejected for insufficient stock.
func (m *Metrics) RecordStockInsufficient() {
	if m == nil {
		return
	}
	m.StockInsufficient.Inc()
}

// RecordImport counts imported records for a kind.
func (m *Metrics) RecordImport(kind string, succeeded, failed int) {
	if m == nil {
		return
	}
	m.ImportRecords.WithLabelValues(kind, "success").Add(float64(succeeded))
	m.ImportRecords.WithLabelValues(kind, "error").Add(float64(failed))
}

// RecordReport counts a report run and its duration.
func (m *Metrics) RecordReport(report string, err error, seconds float64) {
	if m == nil {
		return
	}
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	m.ReportsGenerated.WithLabelValues(report, outcome).Inc()
	m.ReportDuration.WithLabelValues(report).Observe(seconds)
}

// RecordExport counts a rendered export file.
func (m *Metrics) RecordExport(format string) {
	if m == nil {
		return
	}
	m.ExportsRendered.WithLabelValues(format).Inc()
}

// RecordAlert counts a newly raised stock alert.
func (m *Metrics) RecordAlert(alertType string) {
	if m == nil {
		return
	}
	m.StockAlertsRaised.WithLabelValues(alertType).Inc()
}

// RecordDigestSent counts a sent alert digest.
func (m *Metrics) RecordDigestSent() {
	if m == nil {
		return
	}
	m.AlertDigestsSent.Inc()
}

// SetWebsocketClients reports the number of connected websocket clients.
func (m *Metrics) SetWebsocketClients(n int) {
	if m == nil {
		return
	}
	m.WebsocketClients.Set(float64(n))
}
