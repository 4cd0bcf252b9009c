// Package xlsxexport renders the invoice register as an Excel workbook for
// download by accountants.
package xlsxexport

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// Row is one invoice line in the register.
type Row struct {
	InvoiceNumber string
	InvoiceDate   string
	BilledToName  string
	BilledToGSTIN string
	PlaceOfSupply string
	Subtotal      float64
	CGSTAmount    float64
	SGSTAmount    float64
	IGSTAmount    float64
	GrandTotal    float64
	Status        string
}

var headers = []string{
	"Invoice No.", "Invoice Date", "Billed To", "GSTIN", "Place of Supply",
	"Taxable Value", "CGST", "SGST", "IGST", "Invoice Total", "Status",
}

const sheetName = "Invoice Register"

// WriteRegister writes the invoice register workbook to w. Amounts are
// rendered with a two-decimal number format; the underlying values keep full
// precision.
func WriteRegister(w io.Writer, rows []Row) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("xlsxexport: create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("xlsxexport: drop default sheet: %w", err)
	}

	for col, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			return fmt.Errorf("xlsxexport: write header: %w", err)
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		endCell, _ := excelize.CoordinatesToCellName(len(headers), 1)
		_ = f.SetCellStyle(sheetName, "A1", endCell, headerStyle)
	}

	amountFormat := "#,##0.00"
	amountStyle, amountStyleErr := f.NewStyle(&excelize.Style{CustomNumFmt: &amountFormat})

	for i, row := range rows {
		values := []interface{}{
			row.InvoiceNumber, row.InvoiceDate, row.BilledToName, row.BilledToGSTIN,
			row.PlaceOfSupply, row.Subtotal, row.CGSTAmount, row.SGSTAmount,
			row.IGSTAmount, row.GrandTotal, row.Status,
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return fmt.Errorf("xlsxexport: write row %d: %w", i+1, err)
			}
		}
		if amountStyleErr == nil {
			startCell, _ := excelize.CoordinatesToCellName(6, i+2)
			endCell, _ := excelize.CoordinatesToCellName(10, i+2)
			_ = f.SetCellStyle(sheetName, startCell, endCell, amountStyle)
		}
	}

	widths := []float64{18, 14, 30, 18, 18, 14, 12, 12, 12, 14, 10}
	for col, width := range widths {
		name, _ := excelize.ColumnNumberToName(col + 1)
		_ = f.SetColWidth(sheetName, name, name, width)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("xlsxexport: write workbook: %w", err)
	}
	return nil
}
