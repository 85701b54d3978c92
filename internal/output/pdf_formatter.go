package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/taxgo/itr-calculator/internal/domain"
)

const (
	pdfMarginLeft  = 15.0
	pdfMarginTop   = 15.0
	pdfMarginRight = 15.0
	pdfPageWidth   = 210.0
	pdfContentW    = pdfPageWidth - pdfMarginLeft - pdfMarginRight
)

// PDFFormatter renders the worksheet as a one-page A4 report.
type PDFFormatter struct{}

func (p PDFFormatter) Name() string { return "pdf" }

func (p PDFFormatter) Format(ws *domain.Worksheet) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pdfMarginLeft, pdfMarginTop, pdfMarginRight)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.SetTextColor(0, 51, 102)
	pdf.CellFormat(pdfContentW, 12, fmt.Sprintf("Income Tax Worksheet FY %d-%d", ws.FiscalYear, (ws.FiscalYear+1)%100), "", 1, "C", false, 0, "")
	if ws.Taxpayer != "" {
		pdf.SetFont("Arial", "", 11)
		pdf.SetTextColor(0, 0, 0)
		pdf.CellFormat(pdfContentW, 7, ws.Taxpayer, "", 1, "C", false, 0, "")
	}
	pdf.Ln(4)

	writePDFSection(pdf, "Summary")
	writePDFRow(pdf, "Total Income", FormatINR(ws.TotalIncome))
	writePDFRow(pdf, "Tax (Old Regime)", FormatINR(ws.OldRegime.TotalTax))
	writePDFRow(pdf, "Tax (New Regime)", FormatINR(ws.NewRegime.TotalTax))
	writePDFRow(pdf, "Recommended Regime", strings.ToUpper(string(ws.Recommended)))
	writePDFRow(pdf, "Final Tax", FormatINR(ws.FinalTax))
	writePDFRow(pdf, "TDS Credited", FormatINR(ws.TDSCredited))
	pdf.Ln(4)

	writePDFSection(pdf, "Advance Tax Schedule")
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(230, 236, 245)
	headers := []string{"Due Date", "Target", "Required", "Paid", "Shortfall", "234C Interest"}
	widths := []float64{32, 20, 32, 32, 32, 32}
	for i, h := range headers {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	for _, row := range ws.Schedule {
		cells := []string{
			row.DueDate.Format("02 Jan 2006"),
			FormatPercent(row.CumulativePercent),
			GroupINR(row.Required),
			GroupINR(row.Paid),
			GroupINR(row.Shortfall),
			GroupINR(row.Interest),
		}
		for i, cell := range cells {
			align := "R"
			if i == 0 {
				align = "L"
			}
			pdf.CellFormat(widths[i], 7, cell, "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.Ln(4)

	writePDFSection(pdf, "Settlement")
	writePDFRow(pdf, "Interest u/s 234B", FormatINR(ws.Interest234B))
	writePDFRow(pdf, "Interest u/s 234C", FormatINR(ws.Interest234C))
	writePDFRow(pdf, "Advance Tax Paid", FormatINR(ws.TotalAdvancePaid))
	pdf.SetFont("Arial", "B", 11)
	writePDFRow(pdf, "Net Payable", FormatINR(ws.NetPayable))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writePDFSection(pdf *fpdf.Fpdf, title string) {
	pdf.SetFont("Arial", "B", 13)
	pdf.SetTextColor(0, 51, 102)
	pdf.CellFormat(pdfContentW, 9, title, "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Arial", "", 11)
}

func writePDFRow(pdf *fpdf.Fpdf, label, value string) {
	pdf.CellFormat(70, 7, label, "", 0, "L", false, 0, "")
	pdf.CellFormat(pdfContentW-70, 7, value, "", 1, "R", false, 0, "")
}
