package handler

import (
	"github.com/gin-gonic/gin"

	"pharmadist/internal/service"
)

// SampleDataHandler loads demo data for evaluating the reports.
type SampleDataHandler struct {
	sampleService service.SampleDataService
}

// NewSampleDataHandler creates a new SampleDataHandler.
func NewSampleDataHandler(sampleService service.SampleDataService) *SampleDataHandler {
	return &SampleDataHandler{sampleService: sampleService}
}

// Seed handles POST /api/sample-data/seed
// @Summary      Seed demo data
// @Description  Creates three customers, three stock items and three paid December 2024 invoices.
// @Tags         sample-data
// @Produce      json
// @Success      200 {object} APIResponse{data=service.SampleDataResult}
// @Failure      409 {object} APIResponse
// @Failure      500 {object} APIResponse
// @Router       /sample-data/seed [post]
func (h *SampleDataHandler) Seed(c *gin.Context) {
	result, err := h.sampleService.Seed(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, result)
}
