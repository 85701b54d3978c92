package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taxgo/itr-calculator/internal/domain"
)

func sampleWorksheet() *domain.Worksheet {
	due := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}
	return &domain.Worksheet{
		FiscalYear:  2024,
		Taxpayer:    "A Sharma",
		TotalIncome: decimal.NewFromInt(1147600),
		Gains: domain.GainSummary{
			EquityLTCG: decimal.NewFromInt(130000),
		},
		StandardDeduction: decimal.NewFromInt(50000),
		OldRegime: domain.RegimeComputation{
			Regime:          domain.RegimeOld,
			TaxableOrdinary: decimal.NewFromInt(1147600),
			SlabTax:         decimal.NewFromInt(156780),
			TotalTax:        decimal.NewFromFloat(163051.20),
		},
		NewRegime: domain.RegimeComputation{
			Regime:          domain.RegimeNew,
			TaxableOrdinary: decimal.NewFromInt(1147600),
			SlabTax:         decimal.NewFromInt(72140),
			TotalTax:        decimal.NewFromFloat(75025.60),
		},
		Recommended:   domain.RegimeNew,
		Selected:      domain.RegimeNew,
		FinalTax:      decimal.NewFromFloat(75025.60),
		AdvanceTaxDue: decimal.NewFromFloat(75025.60),
		Schedule: []domain.InstallmentStatus{
			{
				DueDate:           due(2024, time.June, 15),
				CumulativePercent: decimal.NewFromFloat(0.15),
				Required:          decimal.NewFromFloat(11253.84),
				Shortfall:         decimal.NewFromFloat(11253.84),
				Interest:          decimal.NewFromFloat(337.62),
			},
			{
				DueDate:           due(2025, time.March, 15),
				CumulativePercent: decimal.NewFromInt(1),
				Required:          decimal.NewFromFloat(75025.60),
				Shortfall:         decimal.NewFromFloat(75025.60),
				Interest:          decimal.NewFromFloat(750.26),
			},
		},
		Interest234B: decimal.NewFromFloat(2700.92),
		Interest234C: decimal.NewFromFloat(1087.88),
		NetPayable:   decimal.NewFromFloat(78814.40),
	}
}

func TestGetFormatterByName(t *testing.T) {
	tests := []struct {
		name     string
		lookup   string
		expected string
	}{
		{"canonical console", "console", "console"},
		{"text alias", "text", "console"},
		{"report alias", "report", "console"},
		{"excel alias", "excel", "xlsx"},
		{"spreadsheet alias", "spreadsheet", "xlsx"},
		{"json pretty alias", "json-pretty", "json"},
		{"case insensitive", "CSV", "csv"},
		{"surrounding whitespace", "  pdf  ", "pdf"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := GetFormatterByName(tt.lookup)
			require.NotNil(t, f)
			assert.Equal(t, tt.expected, f.Name())
		})
	}

	assert.Nil(t, GetFormatterByName("html"))
}

func TestAvailableFormatterNames(t *testing.T) {
	assert.Equal(t, []string{"console", "csv", "json", "pdf", "xlsx"}, AvailableFormatterNames())
}

func TestConsoleFormatter(t *testing.T) {
	data, err := ConsoleFormatter{}.Format(sampleWorksheet())
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, "INCOME TAX WORKSHEET - FY 2024-25")
	assert.Contains(t, out, "Taxpayer: A Sharma")
	assert.Contains(t, out, "Equity LTCG:")
	assert.Contains(t, out, "Rs 1,30,000.00")
	assert.Contains(t, out, "Recommended regime:    NEW")
	assert.Contains(t, out, "15 Jun 2024")
	assert.Contains(t, out, "NET PAYABLE:           Rs 78,814.40")
	// Zero gain buckets stay out of the report.
	assert.NotContains(t, out, "Foreign STCG")
}

func TestConsoleFormatterExemptBanner(t *testing.T) {
	ws := sampleWorksheet()
	ws.AdvanceTaxExempt = true
	data, err := ConsoleFormatter{}.Format(ws)
	require.NoError(t, err)
	assert.Contains(t, string(data), "exempt from advance tax")
}

func TestJSONFormatter(t *testing.T) {
	data, err := JSONFormatter{}.Format(sampleWorksheet())
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, float64(2024), decoded["fiscalYear"])
	assert.Equal(t, "new", decoded["recommended"])
	assert.Equal(t, "75025.6", decoded["finalTax"])
	schedule, ok := decoded["schedule"].([]interface{})
	require.True(t, ok)
	assert.Len(t, schedule, 2)
}

func TestCSVFormatter(t *testing.T) {
	data, err := CSVFormatter{}.Format(sampleWorksheet())
	require.NoError(t, err)

	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	require.NoError(t, err)

	assert.Equal(t, []string{"Field", "Value"}, records[0])
	assert.Equal(t, []string{"FiscalYear", "2024"}, records[1])

	var scheduleHeader int
	for i, rec := range records {
		if len(rec) > 0 && rec[0] == "DueDate" {
			scheduleHeader = i
			break
		}
	}
	require.NotZero(t, scheduleHeader)
	assert.Equal(t, []string{"2024-06-15", "0.15", "11253.84", "0.00", "11253.84", "337.62"}, records[scheduleHeader+1])
	assert.Len(t, records[scheduleHeader:], 3)
}

func TestPDFFormatter(t *testing.T) {
	data, err := PDFFormatter{}.Format(sampleWorksheet())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestXLSXFormatter(t *testing.T) {
	data, err := XLSXFormatter{}.Format(sampleWorksheet())
	require.NoError(t, err)
	// XLSX files are zip archives.
	assert.True(t, bytes.HasPrefix(data, []byte("PK")))
}

func TestFormatterFuncAdapter(t *testing.T) {
	f := FormatterFunc{
		ID: "stub",
		F: func(ws *domain.Worksheet) ([]byte, error) {
			return []byte(ws.Taxpayer), nil
		},
	}
	assert.Equal(t, "stub", f.Name())
	data, err := f.Format(sampleWorksheet())
	require.NoError(t, err)
	assert.Equal(t, "A Sharma", string(data))
}
