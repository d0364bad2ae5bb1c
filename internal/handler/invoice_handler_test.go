package handler_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"pharmadist/internal/domain"
	"pharmadist/internal/handler"
	"pharmadist/mocks"
)

func ginParam(key, value string) gin.Param {
	return gin.Param{Key: key, Value: value}
}

func TestInvoiceHandler_Create_InsufficientStock(t *testing.T) {
	svc := new(mocks.MockInvoiceService)
	h := handler.NewInvoiceHandler(svc)

	svc.On("Create", mock.Anything, mock.AnythingOfType("*domain.CreateInvoiceInput")).
		Return(nil, fmt.Errorf("%w: Paracetamol (batch PC001)", domain.ErrInsufficientStock))

	c, w := newContext(http.MethodPost, "/api/sales-invoices", map[string]interface{}{
		"customer_id": uuid.New().String(),
		"items":       []map[string]interface{}{{"stock_item_id": uuid.New().String(), "quantity": 500}},
	})
	h.Create(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	resp := decode(t, w)
	assert.Equal(t, "INSUFFICIENT_STOCK", resp.Error.Code)
	assert.Contains(t, resp.Error.Message, "Paracetamol")
}

func TestInvoiceHandler_Create_Success(t *testing.T) {
	svc := new(mocks.MockInvoiceService)
	h := handler.NewInvoiceHandler(svc)

	svc.On("Create", mock.Anything, mock.Anything).Return(&domain.SalesInvoice{InvoiceNumber: "INV-20241201-0001"}, nil)

	c, w := newContext(http.MethodPost, "/api/sales-invoices", map[string]interface{}{
		"customer_id": uuid.New().String(),
		"items":       []map[string]interface{}{{"stock_item_id": uuid.New().String(), "quantity": 1}},
	})
	h.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestInvoiceHandler_GetByID_InvalidID(t *testing.T) {
	svc := new(mocks.MockInvoiceService)
	h := handler.NewInvoiceHandler(svc)

	c, w := newContext(http.MethodGet, "/api/sales-invoices/abc", nil)
	c.Params = gin.Params{ginParam("id", "abc")}
	h.GetByID(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestInvoiceHandler_UpdateStatus(t *testing.T) {
	svc := new(mocks.MockInvoiceService)
	h := handler.NewInvoiceHandler(svc)
	id := uuid.New()

	svc.On("UpdatePaymentStatus", mock.Anything, id, domain.PaymentStatusPaid).Return(nil)

	c, w := newContext(http.MethodPatch, "/api/sales-invoices/"+id.String()+"/status", handler.UpdatePaymentStatusRequest{PaymentStatus: "paid"})
	c.Params = gin.Params{ginParam("id", id.String())}
	h.UpdateStatus(c)

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestInvoiceHandler_List(t *testing.T) {
	svc := new(mocks.MockInvoiceService)
	h := handler.NewInvoiceHandler(svc)

	svc.On("List", mock.Anything, 0, 20).Return([]domain.SalesInvoice{}, 0, nil)

	c, w := newContext(http.MethodGet, "/api/sales-invoices?limit=500", nil)
	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	assert.Equal(t, 20, resp.Meta.Limit)
}
