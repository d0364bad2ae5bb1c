package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"pharmadist/internal/domain"
)

// Workbook sheet names.
const (
	SheetB2B  = "b2b"
	SheetB2CS = "b2cs"
	SheetB2CL = "b2cl"
	SheetHSN  = "hsn"
)

var (
	b2bHeader  = []interface{}{"GSTIN of Recipient", "Receiver Name", "Invoice Number", "Invoice Date", "Invoice Value", "Place Of Supply", "Reverse Charge", "Rate", "Taxable Value", "IGST", "CGST", "SGST"}
	b2clHeader = []interface{}{"Invoice Number", "Invoice Date", "Invoice Value", "Place Of Supply", "Rate", "Taxable Value", "IGST"}
	b2csHeader = []interface{}{"Type", "Place Of Supply", "Rate", "Taxable Value", "IGST", "CGST", "SGST"}
	hsnHeader  = []interface{}{"HSN", "Description", "UQC", "Total Quantity", "Total Value", "Taxable Value", "IGST", "CGST", "SGST"}
)

// XLSX renders the return as a review workbook with one sheet per section.
func XLSX(ret *domain.Return) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), SheetB2B); err != nil {
		return nil, fmt.Errorf("export.XLSX: %w", err)
	}
	for _, name := range []string{SheetB2CS, SheetB2CL, SheetHSN} {
		if _, err := f.NewSheet(name); err != nil {
			return nil, fmt.Errorf("export.XLSX: %w", err)
		}
	}

	var rows [][]interface{}
	for i := range ret.B2B {
		inv := &ret.B2B[i]
		for _, it := range inv.Items {
			rows = append(rows, []interface{}{
				inv.CustomerGSTIN, inv.CustomerName, inv.InvoiceNumber, inv.InvoiceDate.Format(filingDateLayout),
				money(inv.InvoiceValue), inv.PlaceOfSupply, "N", rate(it.GSTRate),
				money(it.TaxableValue), money(it.IGSTAmount), money(it.CGSTAmount), money(it.SGSTAmount),
			})
		}
	}
	if err := writeSheet(f, SheetB2B, b2bHeader, rows); err != nil {
		return nil, err
	}

	rows = rows[:0]
	for i := range ret.B2CLarge {
		inv := &ret.B2CLarge[i]
		for _, it := range inv.Items {
			rows = append(rows, []interface{}{
				inv.InvoiceNumber, inv.InvoiceDate.Format(filingDateLayout), money(inv.InvoiceValue),
				inv.PlaceOfSupply, rate(it.GSTRate), money(it.TaxableValue), money(it.IGSTAmount),
			})
		}
	}
	if err := writeSheet(f, SheetB2CL, b2clHeader, rows); err != nil {
		return nil, err
	}

	rows = rows[:0]
	for i := range ret.B2CSmall {
		r := &ret.B2CSmall[i]
		rows = append(rows, []interface{}{
			b2csTypeOE, r.PlaceOfSupply, rate(r.GSTRate),
			money(r.TaxableValue), money(r.IGSTAmount), money(r.CGSTAmount), money(r.SGSTAmount),
		})
	}
	if err := writeSheet(f, SheetB2CS, b2csHeader, rows); err != nil {
		return nil, err
	}

	rows = rows[:0]
	for i := range ret.HSN {
		r := &ret.HSN[i]
		rows = append(rows, []interface{}{
			r.HSNCode, r.Description, r.UQC, r.TotalQuantity, money(r.TotalValue),
			money(r.TaxableValue), money(r.IGSTAmount), money(r.CGSTAmount), money(r.SGSTAmount),
		})
	}
	if err := writeSheet(f, SheetHSN, hsnHeader, rows); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("export.XLSX: %w", err)
	}
	return buf.Bytes(), nil
}

func writeSheet(f *excelize.File, sheet string, header []interface{}, rows [][]interface{}) error {
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("export.XLSX %s header: %w", sheet, err)
	}
	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("export.XLSX %s: %w", sheet, err)
		}
		if err := f.SetSheetRow(sheet, cell, &rows[i]); err != nil {
			return fmt.Errorf("export.XLSX %s row %d: %w", sheet, i+2, err)
		}
	}
	return nil
}
