package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"pharmadist/internal/domain"
	"pharmadist/internal/service"
)

// ImportHandler handles accounting data import endpoints.
type ImportHandler struct {
	importService service.ImportService
}

// NewImportHandler creates a new ImportHandler.
func NewImportHandler(importService service.ImportService) *ImportHandler {
	return &ImportHandler{importService: importService}
}

// Import handles POST /api/import/:type
// @Summary      Import records
// @Description  Imports customers, stock or historical invoices from CSV, XML or pipe-delimited text.
// @Description  Records are stored independently; failed records are listed in errors.
// @Tags         import
// @Accept       json
// @Produce      json
// @Param        type path string true "customers, stock, invoices or transactions"
// @Param        body body ImportRequest true "File contents"
// @Success      200 {object} APIResponse{data=service.ImportResult}
// @Failure      400 {object} APIResponse
// @Router       /import/{type} [post]
func (h *ImportHandler) Import(c *gin.Context) {
	kind, err := domain.ParseImportKind(c.Param("type"))
	if err != nil {
		HandleError(c, err)
		return
	}
	var req ImportRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.FileData == "" {
		HandleError(c, domain.ErrEmptyImport)
		return
	}

	result, err := h.importService.Import(c.Request.Context(), kind, req.FileData, req.Format)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, result)
}

// Template handles GET /api/import/template/:type
// @Summary      Download import template
// @Tags         import
// @Produce      text/csv
// @Param        type path string true "customers, stock, invoices or transactions"
// @Success      200 {file} file
// @Failure      400 {object} APIResponse
// @Router       /import/template/{type} [get]
func (h *ImportHandler) Template(c *gin.Context) {
	kind, err := domain.ParseImportKind(c.Param("type"))
	if err != nil {
		HandleError(c, err)
		return
	}
	tpl, err := h.importService.Template(kind)
	if err != nil {
		HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", string(kind)+"_template.csv"))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(tpl))
}
