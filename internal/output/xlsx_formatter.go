package output

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/taxgo/itr-calculator/internal/domain"
)

// XLSXFormatter writes the worksheet as a two-sheet spreadsheet: a
// summary sheet and the installment schedule.
type XLSXFormatter struct{}

func (x XLSXFormatter) Name() string { return "xlsx" }

func (x XLSXFormatter) Format(ws *domain.Worksheet) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const summarySheet = "Summary"
	const scheduleSheet = "Schedule"

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(scheduleSheet); err != nil {
		return nil, err
	}

	summary := [][]interface{}{
		{"Field", "Value"},
		{"Fiscal Year", fmt.Sprintf("%d-%d", ws.FiscalYear, (ws.FiscalYear+1)%100)},
		{"Taxpayer", ws.Taxpayer},
		{"Total Income", ws.TotalIncome.InexactFloat64()},
		{"Standard Deduction", ws.StandardDeduction.InexactFloat64()},
		{"Tax (Old Regime)", ws.OldRegime.TotalTax.InexactFloat64()},
		{"Tax (New Regime)", ws.NewRegime.TotalTax.InexactFloat64()},
		{"Recommended Regime", string(ws.Recommended)},
		{"Selected Regime", string(ws.Selected)},
		{"Final Tax", ws.FinalTax.InexactFloat64()},
		{"TDS Credited", ws.TDSCredited.InexactFloat64()},
		{"Advance Tax Due", ws.AdvanceTaxDue.InexactFloat64()},
		{"Interest 234B", ws.Interest234B.InexactFloat64()},
		{"Interest 234C", ws.Interest234C.InexactFloat64()},
		{"Advance Tax Paid", ws.TotalAdvancePaid.InexactFloat64()},
		{"Net Payable", ws.NetPayable.InexactFloat64()},
	}
	for i, row := range summary {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(summarySheet, cell, &row); err != nil {
			return nil, err
		}
	}

	header := []interface{}{"Due Date", "Cumulative %", "Required", "Paid", "Shortfall", "234C Interest"}
	if err := f.SetSheetRow(scheduleSheet, "A1", &header); err != nil {
		return nil, err
	}
	for i, row := range ws.Schedule {
		record := []interface{}{
			row.DueDate.Format("2006-01-02"),
			row.CumulativePercent.Mul(hundred).InexactFloat64(),
			row.Required.InexactFloat64(),
			row.Paid.InexactFloat64(),
			row.Shortfall.InexactFloat64(),
			row.Interest.InexactFloat64(),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(scheduleSheet, cell, &record); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
