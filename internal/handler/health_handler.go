package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

const readinessTimeout = 2 * time.Second

// AlertSubscribers reports how many dashboards are listening for stock alerts.
type AlertSubscribers interface {
	Clients() int
}

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	db     *sqlx.DB
	alerts AlertSubscribers
}

// NewHealthHandler creates a new HealthHandler. alerts may be nil.
func NewHealthHandler(db *sqlx.DB, alerts AlertSubscribers) *HealthHandler {
	return &HealthHandler{db: db, alerts: alerts}
}

// Liveness handles GET /healthz
// @Summary      Liveness probe
// @Tags         health
// @Produce      json
// @Success      200 {object} HealthResponse
// @Router       /healthz [get]
func (h *HealthHandler) Liveness(c *gin.Context) {
	resp := HealthResponse{Status: "ok"}
	if h.alerts != nil {
		n := h.alerts.Clients()
		resp.AlertClients = &n
	}
	c.JSON(http.StatusOK, resp)
}

// Readiness handles GET /readyz
// @Summary      Readiness probe
// @Tags         health
// @Produce      json
// @Success      200 {object} HealthResponse
// @Failure      503 {object} HealthResponse
// @Router       /readyz [get]
func (h *HealthHandler) Readiness(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), readinessTimeout)
	defer cancel()
	if err := h.db.PingContext(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, HealthResponse{Status: "unavailable", Error: "database not reachable"})
		return
	}
	c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}
