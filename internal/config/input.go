package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/taxgo/itr-calculator/internal/domain"
	"github.com/taxgo/itr-calculator/pkg/dateutil"
)

// InputParser handles parsing of assessment input files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads an assessment from a YAML or JSON file and
// validates it. The calculation engine itself never rejects business
// data, so every malformed record must be caught here.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Assessment, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var assessment domain.Assessment
	if err := yaml.Unmarshal(data, &assessment); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateAssessment(&assessment); err != nil {
		return nil, fmt.Errorf("assessment validation failed: %w", err)
	}

	return &assessment, nil
}

// ValidateAssessment validates the loaded assessment.
func (ip *InputParser) ValidateAssessment(a *domain.Assessment) error {
	if a.FiscalYear < 1961 || a.FiscalYear > 2100 {
		return fmt.Errorf("fiscal year must be a plausible start year, got %d", a.FiscalYear)
	}

	if err := ip.validateProfile(&a.Profile); err != nil {
		return fmt.Errorf("profile validation failed: %w", err)
	}
	if err := ip.validateRegime(a.Regime); err != nil {
		return err
	}
	if a.Salary != nil {
		if err := ip.validateSalary(a.Salary); err != nil {
			return fmt.Errorf("salary validation failed: %w", err)
		}
	}
	for i, mf := range a.MutualFunds {
		if err := ip.validateMutualFund(&mf); err != nil {
			return fmt.Errorf("mutual fund entry %d validation failed: %w", i, err)
		}
	}
	for i, fs := range a.ForeignSales {
		if err := ip.validateForeignSale(&fs); err != nil {
			return fmt.Errorf("foreign sale entry %d validation failed: %w", i, err)
		}
	}
	for i, oi := range a.OtherIncomes {
		if err := ip.validateOtherIncome(&oi); err != nil {
			return fmt.Errorf("other income entry %d validation failed: %w", i, err)
		}
	}
	if err := ip.validateDeductions(&a.Deductions); err != nil {
		return fmt.Errorf("deductions validation failed: %w", err)
	}
	for i, p := range a.Payments {
		if err := ip.validatePayment(&p, a.FiscalYear); err != nil {
			return fmt.Errorf("advance tax payment %d validation failed: %w", i, err)
		}
	}
	return nil
}

func (ip *InputParser) validateProfile(p *domain.TaxpayerProfile) error {
	switch p.AgeBracket {
	case domain.AgeBelow60, domain.Age60To80, domain.AgeAbove80:
	default:
		return fmt.Errorf("age bracket must be 'below_60', '60_to_80' or 'above_80', got %q", p.AgeBracket)
	}
	switch p.ResidentialStatus {
	case domain.StatusResident, domain.StatusNonResident, domain.StatusRNOR:
	default:
		return fmt.Errorf("residential status must be 'resident', 'non_resident' or 'rnor', got %q", p.ResidentialStatus)
	}
	return nil
}

func (ip *InputParser) validateRegime(r domain.TaxRegime) error {
	switch r {
	case domain.RegimeOld, domain.RegimeNew, domain.RegimeAuto, "":
		return nil
	}
	return fmt.Errorf("regime must be 'old', 'new' or 'auto', got %q", r)
}

func (ip *InputParser) validateSalary(s *domain.SalaryIncome) error {
	if s.EmploymentStart.IsZero() {
		return fmt.Errorf("employment start date is required")
	}
	if !s.EmploymentEnd.IsZero() && s.EmploymentEnd.Before(s.EmploymentStart) {
		return fmt.Errorf("employment end date cannot be before start date")
	}
	if s.GrossAmount.LessThan(decimal.Zero) {
		return fmt.Errorf("gross amount cannot be negative")
	}
	if s.ProfessionalTax.LessThan(decimal.Zero) {
		return fmt.Errorf("professional tax cannot be negative")
	}
	if s.TDS.LessThan(decimal.Zero) {
		return fmt.Errorf("TDS cannot be negative")
	}
	if s.TDS.GreaterThan(s.GrossAmount) {
		return fmt.Errorf("TDS cannot exceed gross amount")
	}
	return nil
}

func (ip *InputParser) validateMutualFund(mf *domain.MutualFundRedemption) error {
	if mf.Category != domain.FundEquity && mf.Category != domain.FundDebt {
		return fmt.Errorf("fund category must be 'equity' or 'debt', got %q", mf.Category)
	}
	if mf.AcquisitionDate.IsZero() {
		return fmt.Errorf("acquisition date is required")
	}
	if mf.AmountWithdrawn.LessThan(decimal.Zero) {
		return fmt.Errorf("amount withdrawn cannot be negative")
	}
	if mf.CostBasis.LessThan(decimal.Zero) {
		return fmt.Errorf("cost basis cannot be negative")
	}
	if mf.CostBasis.GreaterThan(mf.AmountWithdrawn) {
		return fmt.Errorf("cost basis cannot exceed amount withdrawn")
	}
	if mf.TDS.GreaterThan(mf.AmountWithdrawn) {
		return fmt.Errorf("TDS cannot exceed amount withdrawn")
	}
	if mf.RedemptionDate != nil && mf.RedemptionDate.Before(mf.AcquisitionDate) {
		return fmt.Errorf("redemption date cannot be before acquisition date")
	}
	return nil
}

func (ip *InputParser) validateForeignSale(fs *domain.ForeignStockSale) error {
	if fs.PurchaseDate.IsZero() {
		return fmt.Errorf("purchase date is required")
	}
	if fs.SaleDate.IsZero() {
		return fmt.Errorf("sale date is required")
	}
	if !fs.SaleDate.After(fs.PurchaseDate) {
		return fmt.Errorf("sale date must be after purchase date")
	}
	if fs.ProceedsINR.LessThan(decimal.Zero) || fs.CostBasisINR.LessThan(decimal.Zero) {
		return fmt.Errorf("INR proceeds and cost basis cannot be negative")
	}
	if fs.Brokerage.LessThan(decimal.Zero) {
		return fmt.Errorf("brokerage cannot be negative")
	}
	if fs.TDS.GreaterThan(fs.ProceedsINR) {
		return fmt.Errorf("TDS cannot exceed INR proceeds")
	}
	return nil
}

func (ip *InputParser) validateOtherIncome(oi *domain.OtherIncome) error {
	switch oi.Category {
	case domain.IncomeInterest, domain.IncomeRental, domain.IncomeMiscellaneous:
	default:
		return fmt.Errorf("category must be 'interest', 'rental' or 'miscellaneous', got %q", oi.Category)
	}
	if oi.Amount.LessThan(decimal.Zero) {
		return fmt.Errorf("amount cannot be negative")
	}
	if oi.TDS.GreaterThan(oi.Amount) {
		return fmt.Errorf("TDS cannot exceed amount")
	}
	return nil
}

func (ip *InputParser) validateDeductions(d *domain.Deductions) error {
	buckets := map[string]decimal.Decimal{
		"savings":            d.Savings,
		"health_insurance":   d.HealthInsurance,
		"retirement_scheme":  d.RetirementScheme,
		"donations":          d.Donations,
		"home_loan_interest": d.HomeLoanInterest,
		"other":              d.Other,
	}
	for name, amount := range buckets {
		if amount.LessThan(decimal.Zero) {
			return fmt.Errorf("%s cannot be negative", name)
		}
	}
	return nil
}

func (ip *InputParser) validatePayment(p *domain.AdvanceTaxPayment, fiscalYear int) error {
	if p.Amount.LessThan(decimal.Zero) {
		return fmt.Errorf("amount cannot be negative")
	}
	if p.PaymentDate.IsZero() {
		return fmt.Errorf("payment date is required")
	}
	if p.PaymentDate.Before(dateutil.FiscalYearStart(fiscalYear)) ||
		p.PaymentDate.After(dateutil.FiscalYearEnd(fiscalYear)) {
		return fmt.Errorf("payment date %s falls outside fiscal year %d-%d",
			p.PaymentDate.Format("2006-01-02"), fiscalYear, fiscalYear+1)
	}
	return nil
}
