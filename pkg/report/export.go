package report

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"
)

const (
	summarySheet    = "summary"
	selectionsSheet = "selections"
)

// XLSX renders the report as a two-sheet workbook.
func XLSX(r *Report) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, fmt.Errorf("renaming sheet: %w", err)
	}
	if _, err := f.NewSheet(selectionsSheet); err != nil {
		return nil, fmt.Errorf("creating sheet: %w", err)
	}

	_ = f.SetCellValue(summarySheet, "A1", "Green Building Design Summary")
	_ = f.SetCellValue(summarySheet, "A2", "Report")
	_ = f.SetCellValue(summarySheet, "B2", r.ID)
	_ = f.SetCellValue(summarySheet, "A3", "Generated")
	_ = f.SetCellValue(summarySheet, "B3", r.GeneratedAt.Format(time.RFC3339))
	_ = f.SetCellValue(summarySheet, "A4", "Archetype")
	_ = f.SetCellValue(summarySheet, "B4", r.ArchetypeName)

	_ = f.SetCellValue(summarySheet, "A6", "Metric")
	_ = f.SetCellValue(summarySheet, "B6", "Value")
	_ = f.SetCellValue(summarySheet, "C6", "Unit")
	for i, row := range r.Rows {
		n := i + 7
		_ = f.SetCellValue(summarySheet, fmt.Sprintf("A%d", n), row.Label)
		_ = f.SetCellValue(summarySheet, fmt.Sprintf("B%d", n), row.Value)
		_ = f.SetCellValue(summarySheet, fmt.Sprintf("C%d", n), row.Unit)
	}

	_ = f.SetCellValue(selectionsSheet, "A1", "Kind")
	_ = f.SetCellValue(selectionsSheet, "B1", "ID")
	_ = f.SetCellValue(selectionsSheet, "C1", "Name")
	_ = f.SetCellValue(selectionsSheet, "D1", "Cost")
	for i, s := range r.Selections {
		n := i + 2
		_ = f.SetCellValue(selectionsSheet, fmt.Sprintf("A%d", n), s.Kind)
		_ = f.SetCellValue(selectionsSheet, fmt.Sprintf("B%d", n), s.ID)
		_ = f.SetCellValue(selectionsSheet, fmt.Sprintf("C%d", n), s.Name)
		_ = f.SetCellValue(selectionsSheet, fmt.Sprintf("D%d", n), s.Cost)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// The core PDF fonts are cp1252, which has no rupee sign or superscript
// digits.
var pdfText = strings.NewReplacer("₹", "INR ", "m²", "m2", "CO₂", "CO2", "°", " deg")

// PDF renders the report as a single A4 page.
func PDF(r *Report) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Arial", "B", 14)
	pdf.AddPage()

	pdf.Cell(0, 8, "Green Building Design Summary")
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Report: %s", r.ID))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Generated: %s", r.GeneratedAt.Format(time.RFC3339)))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Archetype: %s", r.ArchetypeName))
	pdf.Ln(8)

	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(70, 6, "Metric", "1", 0, "C", false, 0, "")
	pdf.CellFormat(80, 6, "Value", "1", 0, "C", false, 0, "")
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 10)
	for _, row := range r.Rows {
		pdf.CellFormat(70, 6, row.Label, "1", 0, "L", false, 0, "")
		pdf.CellFormat(80, 6, pdfText.Replace(row.Display), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	if len(r.Selections) > 0 {
		pdf.Ln(6)
		pdf.SetFont("Arial", "B", 10)
		pdf.CellFormat(40, 6, "Kind", "1", 0, "C", false, 0, "")
		pdf.CellFormat(70, 6, "System", "1", 0, "C", false, 0, "")
		pdf.CellFormat(40, 6, "Cost (INR)", "1", 0, "C", false, 0, "")
		pdf.Ln(-1)
		pdf.SetFont("Arial", "", 10)
		for _, s := range r.Selections {
			pdf.CellFormat(40, 6, s.Kind, "1", 0, "L", false, 0, "")
			pdf.CellFormat(70, 6, s.Name, "1", 0, "L", false, 0, "")
			pdf.CellFormat(40, 6, fmt.Sprintf("%.0f", s.Cost), "1", 0, "R", false, 0, "")
			pdf.Ln(-1)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
