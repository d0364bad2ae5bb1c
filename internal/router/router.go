package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"pharmadist/internal/handler"
	"pharmadist/internal/metrics"
	"pharmadist/internal/middleware"
	"pharmadist/internal/websocket"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	log *zap.Logger,
	m *metrics.Metrics,
	allowedOrigins []string,
	hub *websocket.Hub,
	gstr1H *handler.GSTR1Handler,
	customerH *handler.CustomerHandler,
	stockH *handler.StockHandler,
	invoiceH *handler.InvoiceHandler,
	importH *handler.ImportHandler,
	sampleH *handler.SampleDataHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID(log))
	r.Use(middleware.Logger())
	r.Use(middleware.Metrics(m))
	r.Use(middleware.CORS(allowedOrigins))

	// Health checks and operational endpoints
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)
	r.GET("/metrics", gin.WrapH(m.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/ws/stock-alerts", hub.ServeWS)

	api := r.Group("/api")

	// GSTR-1 reports and exports
	gstr1 := api.Group("/gstr1")
	gstr1.GET("/hsn-summary", gstr1H.HSNSummary)
	gstr1.GET("/b2b-summary", gstr1H.B2BSummary)
	gstr1.GET("/b2c-summary", gstr1H.B2CSummary)
	gstr1.GET("/hsn-categorization", gstr1H.HSNCategorization)
	gstr1.GET("/summary", gstr1H.Summary)
	gstr1.GET("/export", gstr1H.Export)
	gstr1.POST("/export/archive", gstr1H.ArchiveExport)
	gstr1.POST("/seed-hsn", gstr1H.SeedHSN)

	// HSN master
	api.GET("/hsn", gstr1H.ListHSN)
	api.GET("/hsn/:code", gstr1H.LookupHSN)

	customers := api.Group("/customers")
	customers.POST("", customerH.Create)
	customers.GET("", customerH.List)
	customers.GET("/:id", customerH.GetByID)

	stock := api.Group("/stock-items")
	stock.POST("", stockH.Create)
	stock.GET("", stockH.List)
	stock.GET("/:id", stockH.GetByID)
	api.GET("/stock-alerts", stockH.Alerts)

	invoices := api.Group("/sales-invoices")
	invoices.POST("", invoiceH.Create)
	invoices.GET("", invoiceH.List)
	invoices.GET("/:id", invoiceH.GetByID)
	invoices.PATCH("/:id/status", invoiceH.UpdateStatus)

	// Bulk import from accounting exports
	imports := api.Group("/import")
	imports.GET("/template/:type", importH.Template)
	imports.POST("/:type", importH.Import)

	api.POST("/sample-data/seed", sampleH.Seed)

	return r
}
