package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pharmadist/internal/domain"
	"pharmadist/internal/service"
)

// StockHandler handles inventory and stock alert endpoints.
type StockHandler struct {
	stockService service.StockService
}

// NewStockHandler creates a new StockHandler.
func NewStockHandler(stockService service.StockService) *StockHandler {
	return &StockHandler{stockService: stockService}
}

// Create handles POST /api/stock-items
// @Summary      Create stock item
// @Tags         stock
// @Accept       json
// @Produce      json
// @Param        body body domain.CreateStockItemInput true "Stock item batch"
// @Success      201 {object} APIResponse{data=domain.StockItem}
// @Failure      400 {object} APIResponse
// @Router       /stock-items [post]
func (h *StockHandler) Create(c *gin.Context) {
	var input domain.CreateStockItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "item_name, batch_number and expiry_date are required")
		return
	}

	item, err := h.stockService.Create(c.Request.Context(), &input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, item)
}

// List handles GET /api/stock-items
// @Summary      List stock items
// @Tags         stock
// @Produce      json
// @Param        offset query int false "Pagination offset" default(0)
// @Param        limit query int false "Pagination limit" default(20)
// @Success      200 {object} APIResponse{data=[]domain.StockItem,meta=PagMeta}
// @Failure      500 {object} APIResponse
// @Router       /stock-items [get]
func (h *StockHandler) List(c *gin.Context) {
	offset, limit := parsePagination(c)

	items, total, err := h.stockService.List(c.Request.Context(), offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondPaginated(c, items, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/stock-items/:id
// @Summary      Get stock item
// @Tags         stock
// @Produce      json
// @Param        id path string true "Stock item ID"
// @Success      200 {object} APIResponse{data=domain.StockItem}
// @Failure      400 {object} APIResponse
// @Failure      404 {object} APIResponse
// @Router       /stock-items/{id} [get]
func (h *StockHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	item, err := h.stockService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, item)
}

// Alerts handles GET /api/stock-alerts
// @Summary      Current stock alerts
// @Description  Low stock, expired and soon-to-expire batches derived from current inventory
// @Tags         stock
// @Produce      json
// @Success      200 {object} APIResponse{data=[]domain.StockAlert}
// @Failure      500 {object} APIResponse
// @Router       /stock-alerts [get]
func (h *StockHandler) Alerts(c *gin.Context) {
	alerts, err := h.stockService.Alerts(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, alerts)
}
