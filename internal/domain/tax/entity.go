package tax

import "github.com/shopspring/decimal"

// Regime selects between the two mutually exclusive income tax schemes.
type Regime string

const (
	RegimeOld Regime = "OLD"
	RegimeNew Regime = "NEW"
)

func (r Regime) IsValid() bool {
	return r == RegimeOld || r == RegimeNew
}

// DeclarationStatus enum
type DeclarationStatus string

const (
	DeclarationStatusDraft     DeclarationStatus = "DRAFT"
	DeclarationStatusSubmitted DeclarationStatus = "SUBMITTED"
)

// Declaration holds an employee's exemption and deduction claims for
// one financial year. The engine computes from whatever is passed in;
// a DRAFT declaration is still computable as a preview.
type Declaration struct {
	EmployeeID    string
	FinancialYear string
	Status        DeclarationStatus

	// Chapter VI-A and related claims, all non-negative annual amounts.
	Sec80C                decimal.Decimal
	Sec80CCD1B            decimal.Decimal
	Sec80DSelfFamily      decimal.Decimal
	Sec80DParents         decimal.Decimal
	Sec80DCheckup         decimal.Decimal
	Sec80TTA              decimal.Decimal
	Sec80E                decimal.Decimal
	Sec80G                decimal.Decimal
	Sec24HomeLoanInterest decimal.Decimal

	// HRA claim inputs.
	RentPaidAnnual decimal.Decimal
	IsMetroCity    bool
}

// Submit marks a draft declaration submitted, locking further edits.
// Submitting twice is an error.
func (d Declaration) Submit() (Declaration, error) {
	if d.Status == DeclarationStatusSubmitted {
		return Declaration{}, ErrAlreadySubmitted
	}
	d.Status = DeclarationStatusSubmitted
	return d, nil
}

// Slab is one progressive tax band. A nil To means open-ended.
type Slab struct {
	From        decimal.Decimal
	To          *decimal.Decimal
	RatePercent decimal.Decimal
}

// SlabTax is one band of the calculation breakdown: the portion of
// taxable income falling in the band and the rounded tax on it.
type SlabTax struct {
	Slab
	TaxableAmount decimal.Decimal
	Tax           decimal.Decimal
}

// CalculationResult is the full annual tax derivation, kept step by
// step so a payslip or Form 16 renderer can show its work.
type CalculationResult struct {
	Regime            Regime
	GrossAnnualIncome decimal.Decimal
	StandardDeduction decimal.Decimal
	HRAExemption      decimal.Decimal
	ChapterVIA        decimal.Decimal
	TaxableIncome     decimal.Decimal

	SlabBreakdown   []SlabTax
	TaxBeforeRebate decimal.Decimal
	Rebate          decimal.Decimal
	TaxAfterRebate  decimal.Decimal
	Surcharge       decimal.Decimal
	Cess            decimal.Decimal
	TotalLiability  decimal.Decimal

	TaxPaidSoFar    decimal.Decimal
	RemainingMonths int
	MonthlyTDS      decimal.Decimal
}

// RegimeComparison holds both regimes' results and the cheaper choice.
type RegimeComparison struct {
	Old         CalculationResult
	New         CalculationResult
	Recommended Regime
	Savings     decimal.Decimal
}
