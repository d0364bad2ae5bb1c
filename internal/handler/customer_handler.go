package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pharmadist/internal/domain"
	"pharmadist/internal/service"
)

// CustomerHandler handles customer endpoints.
type CustomerHandler struct {
	customerService service.CustomerService
}

// NewCustomerHandler creates a new CustomerHandler.
func NewCustomerHandler(customerService service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

// Create handles POST /api/customers
// @Summary      Create customer
// @Description  A customer with a GSTIN is registered (B2B), otherwise unregistered (B2C)
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        body body domain.CreateCustomerInput true "Customer"
// @Success      201 {object} APIResponse{data=domain.Customer}
// @Failure      400 {object} APIResponse
// @Failure      409 {object} APIResponse
// @Router       /customers [post]
func (h *CustomerHandler) Create(c *gin.Context) {
	var input domain.CreateCustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "customer_name is required")
		return
	}

	customer, err := h.customerService.Create(c.Request.Context(), &input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, customer)
}

// List handles GET /api/customers
// @Summary      List customers
// @Tags         customers
// @Produce      json
// @Param        offset query int false "Pagination offset" default(0)
// @Param        limit query int false "Pagination limit" default(20)
// @Success      200 {object} APIResponse{data=[]domain.Customer,meta=PagMeta}
// @Failure      500 {object} APIResponse
// @Router       /customers [get]
func (h *CustomerHandler) List(c *gin.Context) {
	offset, limit := parsePagination(c)

	customers, total, err := h.customerService.List(c.Request.Context(), offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondPaginated(c, customers, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/customers/:id
// @Summary      Get customer
// @Tags         customers
// @Produce      json
// @Param        id path string true "Customer ID"
// @Success      200 {object} APIResponse{data=domain.Customer}
// @Failure      400 {object} APIResponse
// @Failure      404 {object} APIResponse
// @Router       /customers/{id} [get]
func (h *CustomerHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	customer, err := h.customerService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, customer)
}
