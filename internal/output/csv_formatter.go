package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/taxgo/itr-calculator/internal/domain"
)

// CSVFormatter writes the summary figures followed by the installment
// schedule, one row per due date.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(ws *domain.Worksheet) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	summary := [][]string{
		{"Field", "Value"},
		{"FiscalYear", strconv.Itoa(ws.FiscalYear)},
		{"TotalIncome", ws.TotalIncome.StringFixed(2)},
		{"TaxOldRegime", ws.OldRegime.TotalTax.StringFixed(2)},
		{"TaxNewRegime", ws.NewRegime.TotalTax.StringFixed(2)},
		{"RecommendedRegime", string(ws.Recommended)},
		{"SelectedRegime", string(ws.Selected)},
		{"FinalTax", ws.FinalTax.StringFixed(2)},
		{"TDSCredited", ws.TDSCredited.StringFixed(2)},
		{"AdvanceTaxDue", ws.AdvanceTaxDue.StringFixed(2)},
		{"Interest234B", ws.Interest234B.StringFixed(2)},
		{"Interest234C", ws.Interest234C.StringFixed(2)},
		{"NetPayable", ws.NetPayable.StringFixed(2)},
	}
	if err := w.WriteAll(summary); err != nil {
		return nil, err
	}

	if err := w.Write([]string{}); err != nil {
		return nil, err
	}
	if err := w.Write([]string{"DueDate", "CumulativePercent", "Required", "Paid", "Shortfall", "Interest234C"}); err != nil {
		return nil, err
	}
	for _, row := range ws.Schedule {
		record := []string{
			row.DueDate.Format("2006-01-02"),
			row.CumulativePercent.StringFixed(2),
			row.Required.StringFixed(2),
			row.Paid.StringFixed(2),
			row.Shortfall.StringFixed(2),
			row.Interest.StringFixed(2),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}
