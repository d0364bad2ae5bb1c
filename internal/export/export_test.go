package export_test

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"pharmadist/internal/domain"
	"pharmadist/internal/export"
	"pharmadist/internal/gstr1"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func line(invoiceID uuid.UUID, number, day string, snap domain.InvoiceSnapshot, invoiceTotal, hsn, gstRate, taxable, cgst, sgst, igst, total string, qty int) domain.ReturnLine {
	dt, err := time.Parse("2006-01-02", day)
	if err != nil {
		panic(err)
	}
	return domain.ReturnLine{
		InvoiceID:       invoiceID,
		InvoiceNumber:   number,
		InvoiceDate:     dt,
		InvoiceSnapshot: snap,
		InvoiceTotal:    d(invoiceTotal),
		HSNCode:         hsn,
		HSNDescription:  "Other medicaments",
		Quantity:        qty,
		GSTRate:         d(gstRate),
		TaxableAmount:   d(taxable),
		CGSTAmount:      d(cgst),
		SGSTAmount:      d(sgst),
		IGSTAmount:      d(igst),
		LineTotal:       d(total),
	}
}

func testReturn() *domain.Return {
	b2b := domain.InvoiceSnapshot{CustomerName: "City Hospital", CustomerType: domain.CustomerTypeB2B, CustomerGSTIN: "29ABCDE1234F1Z5", PlaceOfSupply: "29"}
	b2c := domain.InvoiceSnapshot{CustomerName: "Walk-in", CustomerType: domain.CustomerTypeB2C, PlaceOfSupply: "29"}
	large := domain.InvoiceSnapshot{CustomerName: "Clinic Chain", CustomerType: domain.CustomerTypeB2C, PlaceOfSupply: "27"}

	inv1, inv2, inv3 := uuid.New(), uuid.New(), uuid.New()
	lines := []domain.ReturnLine{
		line(inv1, "INV-20241201-1", "2024-12-01", b2b, "112.00", "30049000", "12", "100.00", "6.00", "6.00", "0", "112.00", 10),
		line(inv2, "INV-20241202-2", "2024-12-02", b2c, "504.00", "30049000", "12", "450.00", "27.00", "27.00", "0", "504.00", 45),
		line(inv3, "INV-20241203-3", "2024-12-03", large, "336000.00", "30049000", "12", "300000.00", "0", "0", "36000.00", "336000.00", 1000),
	}
	agg := gstr1.NewAggregator(gstr1.Options{HomeState: "29", DefaultPlaceOfSupply: "29"})
	return agg.BuildReturn(domain.Period{Month: 12, Year: 2024}.Range(nil), lines)
}

func filingConfig() export.FilingConfig {
	return export.FilingConfig{
		GSTIN:   "29AAACP1234M1Z2",
		Version: "GST3.0.4",
		Period:  domain.Period{Month: 12, Year: 2024},
	}
}

func TestFilingJSON_RoundTripTurnover(t *testing.T) {
	ret := testReturn()

	b, err := export.FilingJSON(ret, filingConfig())
	require.NoError(t, err)

	f, err := export.ParseFilingJSON(b)
	require.NoError(t, err)

	assert.Equal(t, ret.Turnover.InexactFloat64(), f.GT)
	assert.Equal(t, f.GT, f.CurGT)
	assert.InDelta(t, 336616.00, f.GT, 0.001)
}

func TestFilingJSON_Structure(t *testing.T) {
	b, err := export.FilingJSON(testReturn(), filingConfig())
	require.NoError(t, err)
	f, err := export.ParseFilingJSON(b)
	require.NoError(t, err)

	assert.Equal(t, "29AAACP1234M1Z2", f.GSTIN)
	assert.Equal(t, "122024", f.FP)
	assert.Equal(t, "GST3.0.4", f.Version)

	require.Len(t, f.B2B, 1)
	assert.Equal(t, "29ABCDE1234F1Z5", f.B2B[0].CTIN)
	require.Len(t, f.B2B[0].Invoices, 1)
	inv := f.B2B[0].Invoices[0]
	assert.Equal(t, "INV-20241201-1", inv.Number)
	assert.Equal(t, "01-12-2024", inv.Date)
	assert.Equal(t, "29", inv.POS)
	assert.Equal(t, "N", inv.ReverseCharge)
	assert.Equal(t, 112.0, inv.Value)
	require.Len(t, inv.Items, 1)
	assert.Equal(t, 1, inv.Items[0].Num)
	assert.Equal(t, 12.0, inv.Items[0].Detail.Rate)
	assert.Equal(t, 100.0, inv.Items[0].Detail.Taxable)
	assert.Equal(t, 6.0, inv.Items[0].Detail.CGST)

	require.Len(t, f.B2CL, 1)
	assert.Equal(t, "27", f.B2CL[0].POS)
	assert.Equal(t, 36000.0, f.B2CL[0].Invoices[0].Items[0].Detail.IGST)

	require.Len(t, f.B2CS, 1)
	assert.Equal(t, "INTRA", f.B2CS[0].SupplyType)
	assert.Equal(t, "OE", f.B2CS[0].Type)
	assert.Equal(t, 450.0, f.B2CS[0].Taxable)

	require.NotNil(t, f.HSN)
	require.Len(t, f.HSN.Data, 1)
	assert.Equal(t, "30049000", f.HSN.Data[0].HSNCode)
	assert.Equal(t, "NOS", f.HSN.Data[0].UQC)
	assert.Equal(t, int64(1055), f.HSN.Data[0].Quantity)
}

func TestFilingJSON_Deterministic(t *testing.T) {
	first, err := export.FilingJSON(testReturn(), filingConfig())
	require.NoError(t, err)
	second, err := export.FilingJSON(testReturn(), filingConfig())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestFilingJSON_SellerFromConfig(t *testing.T) {
	cfg := filingConfig()
	cfg.GSTIN = "27AAPFU0939F1ZV"
	b, err := export.FilingJSON(testReturn(), cfg)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"gstin": "27AAPFU0939F1ZV"`)
}

func TestFilingPeriod(t *testing.T) {
	assert.Equal(t, "012025", export.FilingPeriod(domain.Period{Month: 1, Year: 2025}))
	assert.Equal(t, "122024", export.FilingPeriod(domain.Period{Month: 12, Year: 2024}))
}

func TestCSV(t *testing.T) {
	b, err := export.CSV(testReturn(), false)
	require.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewReader(b)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 4)

	assert.Equal(t, []string{"Section", "Type", "Invoice Number", "Date", "Customer", "GSTIN", "Amount", "CGST", "SGST", "IGST"}, rows[0])
	assert.Equal(t, []string{"B2B", "Invoice", "INV-20241201-1", "2024-12-01", "City Hospital", "29ABCDE1234F1Z5", "112.00", "6.00", "6.00", "0.00"}, rows[1])
	assert.Equal(t, []string{"B2C Small", "Invoice", "INV-20241202-2", "2024-12-02", "Walk-in", "", "504.00", "27.00", "27.00", "0.00"}, rows[2])
	assert.Equal(t, []string{"B2C Large", "Invoice", "INV-20241203-3", "2024-12-03", "Clinic Chain", "", "336000.00", "0.00", "0.00", "36000.00"}, rows[3])
}

func TestCSV_BOM(t *testing.T) {
	b, err := export.CSV(testReturn(), true)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(b, export.BOM))
}

func TestXLSX(t *testing.T) {
	b, err := export.XLSX(testReturn())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(b))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.Equal(t, []string{export.SheetB2B, export.SheetB2CS, export.SheetB2CL, export.SheetHSN}, f.GetSheetList())

	rows, err := f.GetRows(export.SheetB2B)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "GSTIN of Recipient", rows[0][0])
	assert.Equal(t, "29ABCDE1234F1Z5", rows[1][0])
	assert.Equal(t, "INV-20241201-1", rows[1][2])

	hsn, err := f.GetRows(export.SheetHSN)
	require.NoError(t, err)
	require.Len(t, hsn, 2)
	assert.Equal(t, "30049000", hsn[1][0])
}

func TestFilename(t *testing.T) {
	p := domain.Period{Month: 3, Year: 2025}
	assert.Equal(t, "GSTR1_03_2025.json", export.Filename(p, domain.ExportJSON))
	assert.Equal(t, "GSTR1_03_2025.csv", export.Filename(p, domain.ExportCSV))
	assert.Equal(t, "gstr1/2025/03/GSTR1_03_2025.xlsx", export.ArchiveKey(p, domain.ExportXLSX))
}

func TestFilingJSON_ItemDetailCarriesAllTaxHeads(t *testing.T) {
	b, err := export.FilingJSON(testReturn(), filingConfig())
	require.NoError(t, err)

	var doc struct {
		B2B []struct {
			Inv []struct {
				Itms []struct {
					Det map[string]any `json:"itm_det"`
				} `json:"itms"`
			} `json:"inv"`
		} `json:"b2b"`
		B2CL []struct {
			Inv []struct {
				Itms []struct {
					Det map[string]any `json:"itm_det"`
				} `json:"itms"`
			} `json:"inv"`
		} `json:"b2cl"`
	}
	require.NoError(t, json.Unmarshal(b, &doc))

	intra := doc.B2B[0].Inv[0].Itms[0].Det
	inter := doc.B2CL[0].Inv[0].Itms[0].Det
	for _, key := range []string{"iamt", "camt", "samt", "csamt"} {
		assert.Contains(t, intra, key)
		assert.Contains(t, inter, key)
	}
	assert.EqualValues(t, 0, intra["iamt"])
	assert.EqualValues(t, 0, inter["camt"])
	assert.EqualValues(t, 0, inter["samt"])
}

func TestFilingJSON_ReverseChargeFromConfig(t *testing.T) {
	cfg := filingConfig()
	cfg.ReverseCharge = true
	b, err := export.FilingJSON(testReturn(), cfg)
	require.NoError(t, err)
	f, err := export.ParseFilingJSON(b)
	require.NoError(t, err)
	assert.Equal(t, "Y", f.B2B[0].Invoices[0].ReverseCharge)
}
