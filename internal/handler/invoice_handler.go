package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pharmadist/internal/domain"
	"pharmadist/internal/service"
)

// InvoiceHandler handles sales invoice endpoints.
type InvoiceHandler struct {
	invoiceService service.InvoiceService
}

// NewInvoiceHandler creates a new InvoiceHandler.
func NewInvoiceHandler(invoiceService service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

// Create handles POST /api/sales-invoices
// @Summary      Post sales invoice
// @Description  Computes line taxes, snapshots the customer and decrements stock in one transaction
// @Tags         sales-invoices
// @Accept       json
// @Produce      json
// @Param        body body domain.CreateInvoiceInput true "Invoice"
// @Success      201 {object} APIResponse{data=domain.SalesInvoice}
// @Failure      400 {object} APIResponse
// @Failure      404 {object} APIResponse
// @Failure      409 {object} APIResponse
// @Router       /sales-invoices [post]
func (h *InvoiceHandler) Create(c *gin.Context) {
	var input domain.CreateInvoiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "customer_id and items are required")
		return
	}

	inv, err := h.invoiceService.Create(c.Request.Context(), &input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, inv)
}

// List handles GET /api/sales-invoices
// @Summary      List sales invoices
// @Tags         sales-invoices
// @Produce      json
// @Param        offset query int false "Pagination offset" default(0)
// @Param        limit query int false "Pagination limit" default(20)
// @Success      200 {object} APIResponse{data=[]domain.SalesInvoice,meta=PagMeta}
// @Failure      500 {object} APIResponse
// @Router       /sales-invoices [get]
func (h *InvoiceHandler) List(c *gin.Context) {
	offset, limit := parsePagination(c)

	invoices, total, err := h.invoiceService.List(c.Request.Context(), offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondPaginated(c, invoices, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/sales-invoices/:id
// @Summary      Get sales invoice
// @Tags         sales-invoices
// @Produce      json
// @Param        id path string true "Invoice ID"
// @Success      200 {object} APIResponse{data=domain.SalesInvoice}
// @Failure      400 {object} APIResponse
// @Failure      404 {object} APIResponse
// @Router       /sales-invoices/{id} [get]
func (h *InvoiceHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	inv, err := h.invoiceService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, inv)
}

// UpdateStatus handles PATCH /api/sales-invoices/:id/status
// @Summary      Update payment status
// @Tags         sales-invoices
// @Accept       json
// @Produce      json
// @Param        id path string true "Invoice ID"
// @Param        body body UpdatePaymentStatusRequest true "New status"
// @Success      200 {object} APIResponse
// @Failure      400 {object} APIResponse
// @Failure      404 {object} APIResponse
// @Router       /sales-invoices/{id}/status [patch]
func (h *InvoiceHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req UpdatePaymentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "payment_status is required")
		return
	}

	if err := h.invoiceService.UpdatePaymentStatus(c.Request.Context(), id, domain.PaymentStatus(req.PaymentStatus)); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "payment status updated"})
}
