package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AgeBracket is the taxpayer's age tier for the assessment year.
type AgeBracket string

const (
	AgeBelow60  AgeBracket = "below_60"
	Age60To80   AgeBracket = "60_to_80"
	AgeAbove80  AgeBracket = "above_80"
)

// ResidentialStatus under the Income Tax Act.
type ResidentialStatus string

const (
	StatusResident    ResidentialStatus = "resident"
	StatusNonResident ResidentialStatus = "non_resident"
	StatusRNOR        ResidentialStatus = "rnor" // resident, not ordinarily resident
)

// TaxRegime selects which slab/deduction rule set applies.
type TaxRegime string

const (
	RegimeOld  TaxRegime = "old"  // deduction-eligible
	RegimeNew  TaxRegime = "new"  // default, no Chapter VI-A deductions
	RegimeAuto TaxRegime = "auto" // pick whichever yields lower tax
)

// FundCategory distinguishes mutual-fund classes with different
// holding-period thresholds and gain treatment.
type FundCategory string

const (
	FundEquity FundCategory = "equity"
	FundDebt   FundCategory = "debt"
)

// OtherIncomeCategory is an explicit, required selection. Categories are
// never inferred from free-text descriptions.
type OtherIncomeCategory string

const (
	IncomeInterest      OtherIncomeCategory = "interest"
	IncomeRental        OtherIncomeCategory = "rental"
	IncomeMiscellaneous OtherIncomeCategory = "miscellaneous"
)

// TaxpayerProfile is the immutable taxpayer context for one assessment.
type TaxpayerProfile struct {
	Name              string            `yaml:"name" json:"name"`
	AgeBracket        AgeBracket        `yaml:"age_bracket" json:"age_bracket"`
	ResidentialStatus ResidentialStatus `yaml:"residential_status" json:"residential_status"`
	HasBusinessIncome bool              `yaml:"has_business_income" json:"has_business_income"`
}

// IsSenior reports whether the taxpayer is 60 or older.
func (p TaxpayerProfile) IsSenior() bool {
	return p.AgeBracket == Age60To80 || p.AgeBracket == AgeAbove80
}

// AdvanceTaxExempt reports whether the taxpayer is exempt from advance
// tax: a resident senior citizen with no business or professional income.
func (p TaxpayerProfile) AdvanceTaxExempt() bool {
	return p.ResidentialStatus == StatusResident && p.IsSenior() && !p.HasBusinessIncome
}

// SalaryIncome is a single employment spell within the fiscal year.
type SalaryIncome struct {
	EmploymentStart time.Time       `yaml:"employment_start" json:"employment_start"`
	EmploymentEnd   time.Time       `yaml:"employment_end,omitempty" json:"employment_end,omitempty"`
	GrossAmount     decimal.Decimal `yaml:"gross_amount" json:"gross_amount"`
	ProfessionalTax decimal.Decimal `yaml:"professional_tax" json:"professional_tax"`
	TDS             decimal.Decimal `yaml:"tds" json:"tds"`
}

// MutualFundRedemption is one withdrawal from an equity- or
// debt-oriented fund. A missing redemption date defaults to the start of
// the fiscal year.
type MutualFundRedemption struct {
	Category        FundCategory    `yaml:"category" json:"category"`
	AcquisitionDate time.Time       `yaml:"acquisition_date" json:"acquisition_date"`
	RedemptionDate  *time.Time      `yaml:"redemption_date,omitempty" json:"redemption_date,omitempty"`
	AmountWithdrawn decimal.Decimal `yaml:"amount_withdrawn" json:"amount_withdrawn"`
	CostBasis       decimal.Decimal `yaml:"cost_basis" json:"cost_basis"`
	TDS             decimal.Decimal `yaml:"tds" json:"tds"`
}

// ForeignStockSale is one sale of foreign-listed stock. Proceeds and
// cost arrive already converted to INR; the rate lookup happens upstream
// and the core never performs it.
type ForeignStockSale struct {
	PurchaseDate     time.Time       `yaml:"purchase_date" json:"purchase_date"`
	SaleDate         time.Time       `yaml:"sale_date" json:"sale_date"`
	Currency         string          `yaml:"currency" json:"currency"`
	ProceedsForeign  decimal.Decimal `yaml:"proceeds_foreign" json:"proceeds_foreign"`
	ProceedsINR      decimal.Decimal `yaml:"proceeds_inr" json:"proceeds_inr"`
	CostBasisForeign decimal.Decimal `yaml:"cost_basis_foreign" json:"cost_basis_foreign"`
	CostBasisINR     decimal.Decimal `yaml:"cost_basis_inr" json:"cost_basis_inr"`
	Brokerage        decimal.Decimal `yaml:"brokerage" json:"brokerage"`
	TDS              decimal.Decimal `yaml:"tds" json:"tds"`
}

// OtherIncome is interest, rental or miscellaneous income.
type OtherIncome struct {
	Category OtherIncomeCategory `yaml:"category" json:"category"`
	Amount   decimal.Decimal     `yaml:"amount" json:"amount"`
	TDS      decimal.Decimal     `yaml:"tds" json:"tds"`
}

// Deductions are the Chapter VI-A style buckets, applicable only under
// the old regime. Entered amounts; capping happens in the engine.
type Deductions struct {
	Savings          decimal.Decimal `yaml:"savings" json:"savings"`                     // 80C
	HealthInsurance  decimal.Decimal `yaml:"health_insurance" json:"health_insurance"`   // 80D
	RetirementScheme decimal.Decimal `yaml:"retirement_scheme" json:"retirement_scheme"` // 80CCD(1B)
	Donations        decimal.Decimal `yaml:"donations" json:"donations"`                 // 80G
	HomeLoanInterest decimal.Decimal `yaml:"home_loan_interest" json:"home_loan_interest"`
	Other            decimal.Decimal `yaml:"other" json:"other"`
}

// AdvanceTaxPayment is one advance-tax remittance. The payment date may
// differ from the nominal due date; payments count toward every
// installment whose due date is on or after the payment date.
type AdvanceTaxPayment struct {
	Amount      decimal.Decimal `yaml:"amount" json:"amount"`
	PaymentDate time.Time       `yaml:"payment_date" json:"payment_date"`
}

// Assessment is the complete input for one worksheet computation.
type Assessment struct {
	FiscalYear   int                    `yaml:"fiscal_year" json:"fiscal_year"` // start year, e.g. 2024 for FY 2024-25
	Regime       TaxRegime              `yaml:"regime" json:"regime"`
	Profile      TaxpayerProfile        `yaml:"profile" json:"profile"`
	Salary       *SalaryIncome          `yaml:"salary,omitempty" json:"salary,omitempty"`
	MutualFunds  []MutualFundRedemption `yaml:"mutual_funds,omitempty" json:"mutual_funds,omitempty"`
	ForeignSales []ForeignStockSale     `yaml:"foreign_sales,omitempty" json:"foreign_sales,omitempty"`
	OtherIncomes []OtherIncome          `yaml:"other_incomes,omitempty" json:"other_incomes,omitempty"`
	Deductions   Deductions             `yaml:"deductions" json:"deductions"`
	Payments     []AdvanceTaxPayment    `yaml:"advance_tax_payments,omitempty" json:"advance_tax_payments,omitempty"`
	Rates        *RateSchedule          `yaml:"rates,omitempty" json:"rates,omitempty"`
}

// TotalTDS sums withholding across every income source.
func (a *Assessment) TotalTDS() decimal.Decimal {
	total := decimal.Zero
	if a.Salary != nil {
		total = total.Add(a.Salary.TDS)
	}
	for _, mf := range a.MutualFunds {
		total = total.Add(mf.TDS)
	}
	for _, fs := range a.ForeignSales {
		total = total.Add(fs.TDS)
	}
	for _, oi := range a.OtherIncomes {
		total = total.Add(oi.TDS)
	}
	return total
}

// TotalAdvancePaid sums every advance-tax payment regardless of date.
func (a *Assessment) TotalAdvancePaid() decimal.Decimal {
	total := decimal.Zero
	for _, p := range a.Payments {
		total = total.Add(p.Amount)
	}
	return total
}
