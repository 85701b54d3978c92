package calculation

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/taxgo/itr-calculator/internal/domain"
	"github.com/taxgo/itr-calculator/pkg/dateutil"
)

// CostIndexer uplifts an acquisition cost for inflation over the holding
// period. The default is a fixed annual factor compounded per elapsed
// whole year; a published cost-inflation-index table can be substituted
// here without touching the classification algorithm.
type CostIndexer func(cost decimal.Decimal, acquired, disposed time.Time) decimal.Decimal

// FixedRateIndexer returns a CostIndexer that compounds a flat annual
// rate per elapsed whole year.
func FixedRateIndexer(annualRate decimal.Decimal) CostIndexer {
	return func(cost decimal.Decimal, acquired, disposed time.Time) decimal.Decimal {
		years := dateutil.WholeYearsBetween(acquired, disposed)
		if years == 0 {
			return cost
		}
		factor := decimal.NewFromInt(1).Add(annualRate).Pow(decimal.NewFromInt(int64(years)))
		return cost.Mul(factor)
	}
}

// GainClassifier determines the holding period and long/short-term
// status of each disposal and applies indexation where eligible.
type GainClassifier struct {
	Thresholds domain.HoldingThresholds
	Indexer    CostIndexer
	FiscalYear int
}

// NewGainClassifier creates a classifier from a rate schedule.
func NewGainClassifier(rates *domain.RateSchedule) *GainClassifier {
	return &GainClassifier{
		Thresholds: rates.Holding,
		Indexer:    FixedRateIndexer(rates.IndexationAnnualRate),
		FiscalYear: rates.FiscalYear,
	}
}

// ClassifyMutualFund classifies one fund redemption. A missing
// redemption date defaults to the start of the fiscal year. Long-term
// debt-fund gains are computed against the indexed cost basis; equity
// gains are never indexed.
func (gc *GainClassifier) ClassifyMutualFund(mf domain.MutualFundRedemption) domain.ClassifiedGain {
	redeemed := dateutil.FiscalYearStart(gc.FiscalYear)
	if mf.RedemptionDate != nil {
		redeemed = *mf.RedemptionDate
	}

	months := dateutil.WholeMonthsBetween(mf.AcquisitionDate, redeemed)
	term := domain.ShortTerm
	if months > gc.Thresholds.ThresholdFor(mf.Category) {
		term = domain.LongTerm
	}

	source := domain.SourceEquityFund
	if mf.Category == domain.FundDebt {
		source = domain.SourceDebtFund
	}

	cost := mf.CostBasis
	if term == domain.LongTerm && mf.Category == domain.FundDebt {
		cost = gc.Indexer(mf.CostBasis, mf.AcquisitionDate, redeemed)
	}

	raw := mf.AmountWithdrawn.Sub(mf.CostBasis)
	taxable := mf.AmountWithdrawn.Sub(cost)
	if taxable.LessThan(decimal.Zero) {
		taxable = decimal.Zero
	}

	return domain.ClassifiedGain{
		Source:      source,
		Term:        term,
		HeldMonths:  months,
		RawGain:     raw,
		IndexedCost: cost,
		TaxableGain: taxable,
		TDS:         mf.TDS,
	}
}

// ClassifyForeignSale classifies one foreign stock sale using the INR
// figures resolved upstream. Brokerage reduces the gain; long-term gains
// are computed against the indexed INR cost basis.
func (gc *GainClassifier) ClassifyForeignSale(fs domain.ForeignStockSale) domain.ClassifiedGain {
	months := dateutil.WholeMonthsBetween(fs.PurchaseDate, fs.SaleDate)
	term := domain.ShortTerm
	if months > gc.Thresholds.ForeignMonths {
		term = domain.LongTerm
	}

	cost := fs.CostBasisINR
	if term == domain.LongTerm {
		cost = gc.Indexer(fs.CostBasisINR, fs.PurchaseDate, fs.SaleDate)
	}

	raw := fs.ProceedsINR.Sub(fs.CostBasisINR).Sub(fs.Brokerage)
	taxable := fs.ProceedsINR.Sub(cost).Sub(fs.Brokerage)
	if taxable.LessThan(decimal.Zero) {
		taxable = decimal.Zero
	}

	return domain.ClassifiedGain{
		Source:      domain.SourceForeignStock,
		Term:        term,
		HeldMonths:  months,
		RawGain:     raw,
		IndexedCost: cost,
		TaxableGain: taxable,
		TDS:         fs.TDS,
	}
}

// ClassifyAll classifies every disposal in the assessment.
func (gc *GainClassifier) ClassifyAll(a *domain.Assessment) []domain.ClassifiedGain {
	gains := make([]domain.ClassifiedGain, 0, len(a.MutualFunds)+len(a.ForeignSales))
	for _, mf := range a.MutualFunds {
		gains = append(gains, gc.ClassifyMutualFund(mf))
	}
	for _, fs := range a.ForeignSales {
		gains = append(gains, gc.ClassifyForeignSale(fs))
	}
	return gains
}
