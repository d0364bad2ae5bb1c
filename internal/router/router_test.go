package router_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"pharmadist/internal/domain"
	"pharmadist/internal/handler"
	"pharmadist/internal/metrics"
	"pharmadist/internal/router"
	"pharmadist/internal/websocket"
	"pharmadist/mocks"
)

type fixture struct {
	engine *gin.Engine
	stock  *mocks.MockStockService
}

func setup(t *testing.T) fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	stock := new(mocks.MockStockService)
	m := metrics.New(prometheus.NewRegistry())
	log := zap.NewNop()

	r := router.Setup(
		log,
		m,
		[]string{"http://localhost:5173"},
		websocket.NewHub(nil, log, m),
		handler.NewGSTR1Handler(new(mocks.MockGSTR1Service), new(mocks.MockHSNService), nil),
		handler.NewCustomerHandler(new(mocks.MockCustomerService)),
		handler.NewStockHandler(stock),
		handler.NewInvoiceHandler(new(mocks.MockInvoiceService)),
		handler.NewImportHandler(new(mocks.MockImportService)),
		handler.NewSampleDataHandler(new(mocks.MockSampleDataService)),
		handler.NewHealthHandler(nil, nil),
	)
	return fixture{engine: r, stock: stock}
}

func TestSetup_RegistersRoutes(t *testing.T) {
	f := setup(t)

	registered := make(map[string]bool)
	for _, route := range f.engine.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	for _, want := range []string{
		"GET /healthz",
		"GET /readyz",
		"GET /metrics",
		"GET /swagger/*any",
		"GET /ws/stock-alerts",
		"GET /api/gstr1/hsn-summary",
		"GET /api/gstr1/b2b-summary",
		"GET /api/gstr1/b2c-summary",
		"GET /api/gstr1/hsn-categorization",
		"GET /api/gstr1/summary",
		"GET /api/gstr1/export",
		"POST /api/gstr1/export/archive",
		"POST /api/gstr1/seed-hsn",
		"GET /api/hsn",
		"GET /api/hsn/:code",
		"POST /api/customers",
		"GET /api/customers",
		"GET /api/customers/:id",
		"POST /api/stock-items",
		"GET /api/stock-items",
		"GET /api/stock-items/:id",
		"GET /api/stock-alerts",
		"POST /api/sales-invoices",
		"GET /api/sales-invoices",
		"GET /api/sales-invoices/:id",
		"PATCH /api/sales-invoices/:id/status",
		"POST /api/import/:type",
		"POST /api/sample-data/seed",
		"GET /api/import/template/:type",
	} {
		assert.True(t, registered[want], "missing route %s", want)
	}
}

func TestSetup_MiddlewareChain(t *testing.T) {
	f := setup(t)
	f.stock.On("Alerts", mock.Anything).Return([]domain.StockAlert{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/stock-alerts", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("X-Request-ID", "req-123")
	w := httptest.NewRecorder()
	f.engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "req-123", w.Header().Get("X-Request-ID"))
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w = httptest.NewRecorder()
	f.engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), `pharmadist_http_requests_total{method="GET",path="/api/stock-alerts",status="200"} 1`))
}

func TestSetup_Preflight(t *testing.T) {
	f := setup(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/sales-invoices", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w := httptest.NewRecorder()
	f.engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "PATCH")
}
