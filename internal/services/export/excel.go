// Package export renders analytics series as spreadsheets.
package export

import (
	"fmt"
	"io"

	"storeadmin/internal/models"

	"github.com/xuri/excelize/v2"
)

const (
	ContentType   = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	FileExtension = ".xlsx"
)

// SalesSheet is the sheet name of the sales workbook.
const SalesSheet = "Sales"

var salesHeaders = []string{"Period start", "Total sales", "Orders"}

// ExcelExporter writes sales series as XLSX workbooks.
type ExcelExporter struct {
	sheetName string
}

func NewExcelExporter() *ExcelExporter {
	return &ExcelExporter{sheetName: SalesSheet}
}

// WriteSales writes a titled sheet with one row per point and a totals row.
func (e *ExcelExporter) WriteSales(w io.Writer, title string, points []models.SalesPoint) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", e.sheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	titleStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}})
	if err != nil {
		return fmt.Errorf("failed to create title style: %w", err)
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	moneyFmt := "#,##0.00"
	moneyStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &moneyFmt})
	if err != nil {
		return fmt.Errorf("failed to create money style: %w", err)
	}

	sw := &sheetWriter{f: f, sheet: e.sheetName}
	sw.value("A1", title)
	sw.style("A1", "A1", titleStyle)

	// Row 2 is left blank; headers start on row 3.
	headerRow := 3
	sw.row(headerRow, salesHeaders[0], salesHeaders[1], salesHeaders[2])
	sw.style(fmt.Sprintf("A%d", headerRow), fmt.Sprintf("C%d", headerRow), headerStyle)
	sw.width("A", "A", 16)
	sw.width("B", "C", 14)

	row := headerRow + 1
	for _, p := range points {
		sales, _ := p.TotalSales.Float64()
		sw.row(row, p.PeriodStart.Format("2006-01-02"), sales, p.OrderCount)
		row++
	}
	if len(points) > 0 {
		sw.style(fmt.Sprintf("B%d", headerRow+1), fmt.Sprintf("B%d", row-1), moneyStyle)
		sw.row(row, "Total")
		sw.formula(fmt.Sprintf("B%d", row), fmt.Sprintf("SUM(B%d:B%d)", headerRow+1, row-1))
		sw.formula(fmt.Sprintf("C%d", row), fmt.Sprintf("SUM(C%d:C%d)", headerRow+1, row-1))
	} else {
		sw.row(row, "Total", 0, 0)
	}
	sw.style(fmt.Sprintf("B%d", row), fmt.Sprintf("B%d", row), moneyStyle)

	sw.panes(&excelize.Panes{
		Freeze:      true,
		YSplit:      headerRow,
		TopLeftCell: fmt.Sprintf("A%d", headerRow+1),
		ActivePane:  "bottomLeft",
	})
	if sw.err != nil {
		return fmt.Errorf("failed to fill sheet: %w", sw.err)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write Excel file: %w", err)
	}
	return nil
}

// sheetWriter keeps the first excelize error so a sheet can be filled without
// checking every call.
type sheetWriter struct {
	f     *excelize.File
	sheet string
	err   error
}

func (w *sheetWriter) value(cell string, v interface{}) {
	if w.err == nil {
		w.err = w.f.SetCellValue(w.sheet, cell, v)
	}
}

// row writes values left to right starting at column A.
func (w *sheetWriter) row(n int, values ...interface{}) {
	if w.err == nil {
		w.err = w.f.SetSheetRow(w.sheet, fmt.Sprintf("A%d", n), &values)
	}
}

func (w *sheetWriter) formula(cell, formula string) {
	if w.err == nil {
		w.err = w.f.SetCellFormula(w.sheet, cell, formula)
	}
}

func (w *sheetWriter) style(from, to string, id int) {
	if w.err == nil {
		w.err = w.f.SetCellStyle(w.sheet, from, to, id)
	}
}

func (w *sheetWriter) width(from, to string, width float64) {
	if w.err == nil {
		w.err = w.f.SetColWidth(w.sheet, from, to, width)
	}
}

func (w *sheetWriter) panes(p *excelize.Panes) {
	if w.err == nil {
		w.err = w.f.SetPanes(w.sheet, p)
	}
}
