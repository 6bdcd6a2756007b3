package services

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/signintech/gopdf"
	"github.com/xuri/excelize/v2"

	"github.com/rutamk/dsr-final/internal/models"
)

var reportColumns = []string{
	"Component", "Model", "Vendor", "PO No.", "Qty",
	"Per Unit", "Total", "Status", "Location", "Validated By",
}

// column widths in points, tuned for A4 landscape (842pt wide)
var reportColWidths = []int{110, 90, 90, 70, 40, 65, 65, 70, 100, 90}

func reportRow(e models.DSREntry) []string {
	return []string{
		e.ComponentName,
		e.Model,
		e.Vendor,
		strconv.FormatInt(e.PurchaseOrderNum, 10),
		strconv.Itoa(e.Quantity),
		strconv.FormatFloat(e.PerUnitPrice, 'f', 2, 64),
		strconv.FormatFloat(e.TotalPrice, 'f', 2, 64),
		e.Status,
		e.LocationOfComponent,
		e.ValidatedBy,
	}
}

// BuildPDFReport renders the section's entries as a bordered table, one page
// header per page.
func BuildPDFReport(deptName, labName, sectionName string, entries []models.DSREntry, fontPath string) ([]byte, error) {
	pdf := &gopdf.GoPdf{}
	pageSize := gopdf.Rect{W: 842, H: 595} // A4 landscape
	pdf.Start(gopdf.Config{PageSize: pageSize})
	pdf.AddPage()

	if err := pdf.AddTTFFont("report", fontPath); err != nil {
		return nil, err
	}

	title := fmt.Sprintf("Dead Stock Register - %s / %s / %s", deptName, labName, sectionName)
	if err := pdf.SetFont("report", "", 16); err != nil {
		return nil, err
	}
	pdf.SetX(30)
	pdf.SetY(30)
	if err := pdf.Cell(nil, title); err != nil {
		return nil, err
	}

	if err := pdf.SetFont("report", "", 9); err != nil {
		return nil, err
	}
	cellOpt := gopdf.CellOption{
		Align:  gopdf.Center | gopdf.Middle,
		Border: gopdf.AllBorders,
	}

	const rowH = 18.0
	const marginL = 30.0
	const marginT = 60.0
	const pageBottom = 560.0

	writeHeader := func(y float64) float64 {
		x := marginL
		for i, col := range reportColumns {
			pdf.SetX(x)
			pdf.SetY(y)
			_ = pdf.CellWithOption(&gopdf.Rect{W: float64(reportColWidths[i]), H: rowH}, col, cellOpt)
			x += float64(reportColWidths[i])
		}
		return y + rowH
	}

	y := writeHeader(marginT)
	for _, entry := range entries {
		if y+rowH > pageBottom {
			pdf.AddPage()
			y = writeHeader(marginT)
		}
		x := marginL
		for i, val := range reportRow(entry) {
			pdf.SetX(x)
			pdf.SetY(y)
			_ = pdf.CellWithOption(&gopdf.Rect{W: float64(reportColWidths[i]), H: rowH}, val, cellOpt)
			x += float64(reportColWidths[i])
		}
		y += rowH
	}

	var buf bytes.Buffer
	if _, err := pdf.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// BuildXLSXReport writes the same table as a spreadsheet.
func BuildXLSXReport(deptName, labName, sectionName string, entries []models.DSREntry) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "DSR"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	title := fmt.Sprintf("Dead Stock Register - %s / %s / %s", deptName, labName, sectionName)
	if err := f.SetCellValue(sheet, "A1", title); err != nil {
		return nil, err
	}
	for i, col := range reportColumns {
		cell, err := excelize.CoordinatesToCellName(i+1, 2)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, col); err != nil {
			return nil, err
		}
	}
	for r, entry := range entries {
		for c, val := range reportRow(entry) {
			cell, err := excelize.CoordinatesToCellName(c+1, r+3)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, val); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
