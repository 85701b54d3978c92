package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// GainTerm is the holding-period classification of one disposal.
type GainTerm string

const (
	LongTerm  GainTerm = "long_term"
	ShortTerm GainTerm = "short_term"
)

// GainSource identifies which asset class produced a classified gain.
type GainSource string

const (
	SourceEquityFund   GainSource = "equity_fund"
	SourceDebtFund     GainSource = "debt_fund"
	SourceForeignStock GainSource = "foreign_stock"
)

// ClassifiedGain is one disposal after holding-period classification and
// indexation. RawGain may be negative; TaxableGain is clamped at zero
// since losses are reported but never offset (no carry-forward).
type ClassifiedGain struct {
	Source      GainSource      `json:"source"`
	Term        GainTerm        `json:"term"`
	HeldMonths  int             `json:"heldMonths"`
	RawGain     decimal.Decimal `json:"rawGain"`
	IndexedCost decimal.Decimal `json:"indexedCost"`
	TaxableGain decimal.Decimal `json:"taxableGain"`
	TDS         decimal.Decimal `json:"tds"`
}

// GainSummary is the aggregate of classified gains per taxed bucket.
// DebtSTCGAtSlab folds into ordinary income rather than taking a
// special rate.
type GainSummary struct {
	EquityLTCG     decimal.Decimal `json:"equityLtcg"`
	EquitySTCG     decimal.Decimal `json:"equityStcg"`
	DebtLTCG       decimal.Decimal `json:"debtLtcg"`
	DebtSTCGAtSlab decimal.Decimal `json:"debtStcgAtSlab"`
	ForeignLTCG    decimal.Decimal `json:"foreignLtcg"`
	ForeignSTCG    decimal.Decimal `json:"foreignStcg"`
	TotalTDS       decimal.Decimal `json:"totalTds"`
}

// TotalSpecialRateGains sums the buckets taxed outside the slab ladder.
func (g GainSummary) TotalSpecialRateGains() decimal.Decimal {
	return g.EquityLTCG.Add(g.EquitySTCG).Add(g.DebtLTCG).Add(g.ForeignLTCG).Add(g.ForeignSTCG)
}

// RegimeComputation is the full tax derivation under one regime.
type RegimeComputation struct {
	Regime            TaxRegime       `json:"regime"`
	OrdinaryIncome    decimal.Decimal `json:"ordinaryIncome"`
	DeductionsApplied decimal.Decimal `json:"deductionsApplied"`
	TaxableOrdinary   decimal.Decimal `json:"taxableOrdinary"`
	SlabTax           decimal.Decimal `json:"slabTax"`
	RebateApplied     bool            `json:"rebateApplied"`
	SpecialRateTax    decimal.Decimal `json:"specialRateTax"`
	BaseTax           decimal.Decimal `json:"baseTax"`
	Surcharge         decimal.Decimal `json:"surcharge"`
	Cess              decimal.Decimal `json:"cess"`
	TotalTax          decimal.Decimal `json:"totalTax"`
}

// InstallmentStatus is one row of the advance-tax schedule.
type InstallmentStatus struct {
	DueDate           time.Time       `json:"dueDate"`
	CumulativePercent decimal.Decimal `json:"cumulativePercent"`
	Required          decimal.Decimal `json:"required"`
	Paid              decimal.Decimal `json:"paid"`
	Shortfall         decimal.Decimal `json:"shortfall"`
	Interest          decimal.Decimal `json:"interest"` // 234C on this row
}

// Worksheet is the computation result. It is a pure derived value:
// recomputed from the Assessment whenever an input changes, never
// persisted by the core.
type Worksheet struct {
	FiscalYear int    `json:"fiscalYear"`
	Taxpayer   string `json:"taxpayer"`

	TotalIncome       decimal.Decimal `json:"totalIncome"`
	StandardDeduction decimal.Decimal `json:"standardDeduction"`
	Gains             GainSummary     `json:"gains"`

	OldRegime   RegimeComputation `json:"oldRegime"`
	NewRegime   RegimeComputation `json:"newRegime"`
	Recommended TaxRegime         `json:"recommended"`
	Selected    TaxRegime         `json:"selected"`

	FinalTax         decimal.Decimal     `json:"finalTax"`
	TDSCredited      decimal.Decimal     `json:"tdsCredited"`
	AdvanceTaxDue    decimal.Decimal     `json:"advanceTaxDue"`
	AdvanceTaxExempt bool                `json:"advanceTaxExempt"`
	Schedule         []InstallmentStatus `json:"schedule"`

	Interest234B     decimal.Decimal `json:"interest234b"`
	Interest234C     decimal.Decimal `json:"interest234c"`
	TotalAdvancePaid decimal.Decimal `json:"totalAdvancePaid"`
	NetPayable       decimal.Decimal `json:"netPayable"`
}

// SelectedComputation returns the regime computation the final tax was
// taken from.
func (w *Worksheet) SelectedComputation() RegimeComputation {
	if w.Selected == RegimeOld {
		return w.OldRegime
	}
	return w.NewRegime
}

// TotalInterest is 234B plus 234C.
func (w *Worksheet) TotalInterest() decimal.Decimal {
	return w.Interest234B.Add(w.Interest234C)
}
