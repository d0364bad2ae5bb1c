package handler_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"pharmadist/internal/domain"
	"pharmadist/internal/handler"
	"pharmadist/internal/service"
	"pharmadist/mocks"
)

func newGSTR1Handler() (*handler.GSTR1Handler, *mocks.MockGSTR1Service, *mocks.MockHSNService) {
	gstr1Svc := new(mocks.MockGSTR1Service)
	hsnSvc := new(mocks.MockHSNService)
	return handler.NewGSTR1Handler(gstr1Svc, hsnSvc, nil), gstr1Svc, hsnSvc
}

func TestGSTR1Handler_HSNSummary_Success(t *testing.T) {
	h, svc, _ := newGSTR1Handler()

	want := domain.DateRange{
		From: time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
	}
	svc.On("HSNSummary", mock.Anything, want).Return([]domain.HSNSummaryRow{{HSNCode: "30049000"}}, nil)

	c, w := newContext(http.MethodGet, "/api/gstr1/hsn-summary?fromDate=2024-12-01&toDate=2024-12-31", nil)
	h.HSNSummary(c)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	assert.True(t, resp.Success)
	svc.AssertExpectations(t)
}

func TestGSTR1Handler_DatesInBusinessZone(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+30*60)
	svc := new(mocks.MockGSTR1Service)
	h := handler.NewGSTR1Handler(svc, new(mocks.MockHSNService), ist)

	svc.On("B2BSummary", mock.Anything, mock.MatchedBy(func(w domain.DateRange) bool {
		return w.From.Equal(time.Date(2024, 11, 30, 18, 30, 0, 0, time.UTC)) &&
			w.To.Equal(time.Date(2024, 12, 30, 18, 30, 0, 0, time.UTC))
	})).Return([]domain.B2BSummaryRow{}, nil)

	c, w := newContext(http.MethodGet, "/api/gstr1/b2b-summary?fromDate=2024-12-01&toDate=2024-12-31", nil)
	h.B2BSummary(c)

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestGSTR1Handler_MissingDates(t *testing.T) {
	h, svc, _ := newGSTR1Handler()

	for _, target := range []string{
		"/api/gstr1/b2b-summary",
		"/api/gstr1/b2b-summary?fromDate=2024-12-01",
	} {
		c, w := newContext(http.MethodGet, target, nil)
		h.B2BSummary(c)

		assert.Equal(t, http.StatusBadRequest, w.Code, target)
		resp := decode(t, w)
		assert.Equal(t, "fromDate and toDate are required", resp.Error.Message)
	}
	svc.AssertNotCalled(t, "B2BSummary", mock.Anything, mock.Anything)
}

func TestGSTR1Handler_ReversedDates(t *testing.T) {
	h, _, _ := newGSTR1Handler()

	c, w := newContext(http.MethodGet, "/api/gstr1/b2c-summary?fromDate=2024-12-31&toDate=2024-12-01", nil)
	h.B2CSummary(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_DATE_RANGE", decode(t, w).Error.Code)
}

func TestGSTR1Handler_QueryFailure(t *testing.T) {
	h, svc, _ := newGSTR1Handler()
	svc.On("HSNCategorization", mock.Anything, mock.Anything).Return(nil, errors.New("timeout"))

	c, w := newContext(http.MethodGet, "/api/gstr1/hsn-categorization?fromDate=2024-12-01&toDate=2024-12-31", nil)
	h.HSNCategorization(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "INTERNAL_ERROR", decode(t, w).Error.Code)
}

func TestGSTR1Handler_Summary(t *testing.T) {
	h, svc, _ := newGSTR1Handler()
	svc.On("Summary", mock.Anything, mock.Anything).Return(&domain.ReturnSummary{FromDate: "2024-12-01", ToDate: "2024-12-31"}, nil)

	c, w := newContext(http.MethodGet, "/api/gstr1/summary?fromDate=2024-12-01&toDate=2024-12-31", nil)
	h.Summary(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGSTR1Handler_Export_Attachment(t *testing.T) {
	h, svc, _ := newGSTR1Handler()
	period := domain.Period{Month: 12, Year: 2024}
	svc.On("Export", mock.Anything, period, domain.ExportCSV).Return(&service.ExportFile{
		Filename:    "GSTR1_12_2024.csv",
		ContentType: "text/csv; charset=utf-8",
		Data:        []byte("Section,Invoice Number\n"),
	}, nil)

	c, w := newContext(http.MethodGet, "/api/gstr1/export?month=12&year=2024&format=csv", nil)
	h.Export(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `attachment; filename="GSTR1_12_2024.csv"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, "Section,Invoice Number\n", w.Body.String())
}

func TestGSTR1Handler_Export_DefaultsToJSON(t *testing.T) {
	h, svc, _ := newGSTR1Handler()
	svc.On("Export", mock.Anything, domain.Period{Month: 3, Year: 2025}, domain.ExportJSON).Return(&service.ExportFile{
		Filename:    "GSTR1_03_2025.json",
		ContentType: "application/json",
		Data:        []byte(`{"fp":"032025"}`),
	}, nil)

	c, w := newContext(http.MethodGet, "/api/gstr1/export?month=3&year=2025", nil)
	h.Export(c)

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestGSTR1Handler_Export_BadParams(t *testing.T) {
	h, _, _ := newGSTR1Handler()

	tests := []struct {
		target string
		code   string
	}{
		{"/api/gstr1/export?month=13&year=2024", "INVALID_PERIOD"},
		{"/api/gstr1/export?month=x&year=2024", "INVALID_PERIOD"},
		{"/api/gstr1/export?month=12&year=2024&format=pdf", "UNSUPPORTED_FORMAT"},
	}
	for _, tt := range tests {
		c, w := newContext(http.MethodGet, tt.target, nil)
		h.Export(c)
		assert.Equal(t, http.StatusBadRequest, w.Code, tt.target)
		assert.Equal(t, tt.code, decode(t, w).Error.Code, tt.target)
	}
}

func TestGSTR1Handler_ArchiveExport_StorageUnavailable(t *testing.T) {
	h, svc, _ := newGSTR1Handler()
	svc.On("Archive", mock.Anything, domain.Period{Month: 12, Year: 2024}, domain.ExportXLSX).Return(nil, domain.ErrStorageUnavailable)

	c, w := newContext(http.MethodPost, "/api/gstr1/export/archive", handler.ArchiveExportRequest{Month: 12, Year: 2024, Format: "xlsx"})
	h.ArchiveExport(c)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "STORAGE_UNAVAILABLE", decode(t, w).Error.Code)
}

func TestGSTR1Handler_SeedHSN(t *testing.T) {
	h, _, hsnSvc := newGSTR1Handler()
	hsnSvc.On("SeedPharmaceutical", mock.Anything).Return(13, nil)

	c, w := newContext(http.MethodPost, "/api/gstr1/seed-hsn", nil)
	h.SeedHSN(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decode(t, w).Data.(map[string]interface{})
	assert.Equal(t, "HSN codes seeded successfully", data["message"])
	assert.Equal(t, float64(13), data["inserted"])
}

func TestGSTR1Handler_LookupHSN_NotFound(t *testing.T) {
	h, _, hsnSvc := newGSTR1Handler()
	hsnSvc.On("Lookup", mock.Anything, "84713010").Return(nil, domain.ErrNotFound)

	c, w := newContext(http.MethodGet, "/api/hsn/84713010", nil)
	c.Params = append(c.Params, ginParam("code", "84713010"))
	h.LookupHSN(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
