package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"pharmadist/internal/domain"
	"pharmadist/internal/service"
)

// GSTR1Handler handles GSTR-1 report and export endpoints.
type GSTR1Handler struct {
	gstr1Service service.GSTR1Service
	hsnService   service.HSNService
	loc          *time.Location
}

// NewGSTR1Handler creates a new GSTR1Handler. Report dates are read as calendar days in loc.
func NewGSTR1Handler(gstr1Service service.GSTR1Service, hsnService service.HSNService, loc *time.Location) *GSTR1Handler {
	return &GSTR1Handler{gstr1Service: gstr1Service, hsnService: hsnService, loc: loc}
}

// window reads the fromDate/toDate query params. Returns false if they are
// missing or malformed (error response already written).
func (h *GSTR1Handler) window(c *gin.Context) (domain.DateRange, bool) {
	w, err := domain.ParseDateRange(c.Query("fromDate"), c.Query("toDate"), h.loc)
	if err != nil {
		HandleError(c, err)
		return domain.DateRange{}, false
	}
	return w, true
}

func parsePeriod(month, year string) (domain.Period, error) {
	m, err := strconv.Atoi(month)
	if err != nil {
		return domain.Period{}, domain.ErrInvalidPeriod
	}
	y, err := strconv.Atoi(year)
	if err != nil {
		return domain.Period{}, domain.ErrInvalidPeriod
	}
	p := domain.Period{Month: m, Year: y}
	return p, p.Validate()
}

// HSNSummary handles GET /api/gstr1/hsn-summary
// @Summary      HSN-wise summary
// @Description  Aggregates all outward supplies in the window by HSN code
// @Tags         gstr1
// @Produce      json
// @Param        fromDate query string true "Start date (YYYY-MM-DD), inclusive"
// @Param        toDate query string true "End date (YYYY-MM-DD), inclusive"
// @Success      200 {object} APIResponse{data=[]domain.HSNSummaryRow}
// @Failure      400 {object} APIResponse
// @Failure      500 {object} APIResponse
// @Router       /gstr1/hsn-summary [get]
func (h *GSTR1Handler) HSNSummary(c *gin.Context) {
	w, ok := h.window(c)
	if !ok {
		return
	}
	rows, err := h.gstr1Service.HSNSummary(c.Request.Context(), w)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, rows)
}

// B2BSummary handles GET /api/gstr1/b2b-summary
// @Summary      B2B invoice summary
// @Description  Registered-customer invoices grouped by invoice and HSN code
// @Tags         gstr1
// @Produce      json
// @Param        fromDate query string true "Start date (YYYY-MM-DD), inclusive"
// @Param        toDate query string true "End date (YYYY-MM-DD), inclusive"
// @Success      200 {object} APIResponse{data=[]domain.B2BSummaryRow}
// @Failure      400 {object} APIResponse
// @Failure      500 {object} APIResponse
// @Router       /gstr1/b2b-summary [get]
func (h *GSTR1Handler) B2BSummary(c *gin.Context) {
	w, ok := h.window(c)
	if !ok {
		return
	}
	rows, err := h.gstr1Service.B2BSummary(c.Request.Context(), w)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, rows)
}

// B2CSummary handles GET /api/gstr1/b2c-summary
// @Summary      B2C supply summary
// @Description  Unregistered-customer supplies grouped by place of supply and tax rate
// @Tags         gstr1
// @Produce      json
// @Param        fromDate query string true "Start date (YYYY-MM-DD), inclusive"
// @Param        toDate query string true "End date (YYYY-MM-DD), inclusive"
// @Success      200 {object} APIResponse{data=[]domain.B2CSummaryRow}
// @Failure      400 {object} APIResponse
// @Failure      500 {object} APIResponse
// @Router       /gstr1/b2c-summary [get]
func (h *GSTR1Handler) B2CSummary(c *gin.Context) {
	w, ok := h.window(c)
	if !ok {
		return
	}
	rows, err := h.gstr1Service.B2CSummary(c.Request.Context(), w)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, rows)
}

// HSNCategorization handles GET /api/gstr1/hsn-categorization
// @Summary      HSN B2B/B2C split
// @Description  Per HSN code value and quantity for registered and unregistered customers
// @Tags         gstr1
// @Produce      json
// @Param        fromDate query string true "Start date (YYYY-MM-DD), inclusive"
// @Param        toDate query string true "End date (YYYY-MM-DD), inclusive"
// @Success      200 {object} APIResponse{data=[]domain.HSNCategorizationRow}
// @Failure      400 {object} APIResponse
// @Failure      500 {object} APIResponse
// @Router       /gstr1/hsn-categorization [get]
func (h *GSTR1Handler) HSNCategorization(c *gin.Context) {
	w, ok := h.window(c)
	if !ok {
		return
	}
	rows, err := h.gstr1Service.HSNCategorization(c.Request.Context(), w)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, rows)
}

// Summary handles GET /api/gstr1/summary
// @Summary      Return summary
// @Description  Section counts and values with tax totals for the window
// @Tags         gstr1
// @Produce      json
// @Param        fromDate query string true "Start date (YYYY-MM-DD), inclusive"
// @Param        toDate query string true "End date (YYYY-MM-DD), inclusive"
// @Success      200 {object} APIResponse{data=domain.ReturnSummary}
// @Failure      400 {object} APIResponse
// @Failure      500 {object} APIResponse
// @Router       /gstr1/summary [get]
func (h *GSTR1Handler) Summary(c *gin.Context) {
	w, ok := h.window(c)
	if !ok {
		return
	}
	summary, err := h.gstr1Service.Summary(c.Request.Context(), w)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, summary)
}

// Export handles GET /api/gstr1/export
// @Summary      Download GSTR-1 return
// @Description  Renders the month's return as portal JSON, CSV or XLSX and serves it as an attachment
// @Tags         gstr1
// @Produce      json
// @Produce      text/csv
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        month query int true "Month (1-12)"
// @Param        year query int true "Year (YYYY)"
// @Param        format query string false "json, csv or xlsx" default(json)
// @Success      200 {file} file
// @Failure      400 {object} APIResponse
// @Failure      500 {object} APIResponse
// @Router       /gstr1/export [get]
func (h *GSTR1Handler) Export(c *gin.Context) {
	period, err := parsePeriod(c.Query("month"), c.Query("year"))
	if err != nil {
		HandleError(c, err)
		return
	}
	format, err := domain.ParseExportFormat(c.Query("format"))
	if err != nil {
		HandleError(c, err)
		return
	}

	file, err := h.gstr1Service.Export(c.Request.Context(), period, format)
	if err != nil {
		HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
	c.Data(http.StatusOK, file.ContentType, file.Data)
}

// ArchiveExport handles POST /api/gstr1/export/archive
// @Summary      Archive GSTR-1 return
// @Description  Renders the month's return, stores it in object storage and returns a presigned download URL
// @Tags         gstr1
// @Accept       json
// @Produce      json
// @Param        body body ArchiveExportRequest true "Period and format"
// @Success      200 {object} APIResponse{data=service.ArchivedExport}
// @Failure      400 {object} APIResponse
// @Failure      503 {object} APIResponse
// @Router       /gstr1/export/archive [post]
func (h *GSTR1Handler) ArchiveExport(c *gin.Context) {
	var req ArchiveExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "month and year are required")
		return
	}
	period := domain.Period{Month: req.Month, Year: req.Year}
	if err := period.Validate(); err != nil {
		HandleError(c, err)
		return
	}
	format, err := domain.ParseExportFormat(req.Format)
	if err != nil {
		HandleError(c, err)
		return
	}

	archived, err := h.gstr1Service.Archive(c.Request.Context(), period, format)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, archived)
}

// SeedHSN handles POST /api/gstr1/seed-hsn
// @Summary      Seed HSN master
// @Description  Inserts the standard pharmaceutical HSN codes, skipping codes already present
// @Tags         gstr1
// @Produce      json
// @Success      200 {object} APIResponse{data=SeedHSNResponse}
// @Failure      500 {object} APIResponse
// @Router       /gstr1/seed-hsn [post]
func (h *GSTR1Handler) SeedHSN(c *gin.Context) {
	n, err := h.hsnService.SeedPharmaceutical(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, SeedHSNResponse{Message: "HSN codes seeded successfully", Inserted: n})
}

// ListHSN handles GET /api/hsn
// @Summary      List HSN master
// @Tags         gstr1
// @Produce      json
// @Success      200 {object} APIResponse{data=[]domain.HSNMaster}
// @Failure      500 {object} APIResponse
// @Router       /hsn [get]
func (h *GSTR1Handler) ListHSN(c *gin.Context) {
	entries, err := h.hsnService.List(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, entries)
}

// LookupHSN handles GET /api/hsn/:code
// @Summary      Look up an HSN code
// @Description  Returns the exact master entry, or the nearest 6 or 4 digit parent
// @Tags         gstr1
// @Produce      json
// @Param        code path string true "HSN code"
// @Success      200 {object} APIResponse{data=domain.HSNMaster}
// @Failure      404 {object} APIResponse
// @Router       /hsn/{code} [get]
func (h *GSTR1Handler) LookupHSN(c *gin.Context) {
	entry, err := h.hsnService.Lookup(c.Request.Context(), c.Param("code"))
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, entry)
}
