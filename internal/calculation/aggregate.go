package calculation

import (
	"github.com/taxgo/itr-calculator/internal/domain"
)

// AggregateGains sums classified gains into per-bucket totals. Debt-fund
// short-term gains go to the at-slab bucket and fold into ordinary
// income downstream. Entries never interact; TDS is summed regardless of
// gain sign, since withholding happened whether or not the disposal
// produced a taxable gain.
func AggregateGains(gains []domain.ClassifiedGain) domain.GainSummary {
	var summary domain.GainSummary
	for _, g := range gains {
		summary.TotalTDS = summary.TotalTDS.Add(g.TDS)

		switch g.Source {
		case domain.SourceEquityFund:
			if g.Term == domain.LongTerm {
				summary.EquityLTCG = summary.EquityLTCG.Add(g.TaxableGain)
			} else {
				summary.EquitySTCG = summary.EquitySTCG.Add(g.TaxableGain)
			}
		case domain.SourceDebtFund:
			if g.Term == domain.LongTerm {
				summary.DebtLTCG = summary.DebtLTCG.Add(g.TaxableGain)
			} else {
				summary.DebtSTCGAtSlab = summary.DebtSTCGAtSlab.Add(g.TaxableGain)
			}
		case domain.SourceForeignStock:
			if g.Term == domain.LongTerm {
				summary.ForeignLTCG = summary.ForeignLTCG.Add(g.TaxableGain)
			} else {
				summary.ForeignSTCG = summary.ForeignSTCG.Add(g.TaxableGain)
			}
		}
	}
	return summary
}
