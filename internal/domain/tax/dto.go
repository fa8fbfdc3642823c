package tax

import (
	"github.com/shopspring/decimal"

	"github.com/opshr/payroll-engine-go/internal/pkg/fiscal"
	"github.com/opshr/payroll-engine-go/internal/pkg/validator"
)

type HRAExemptionRequest struct {
	AnnualBasic    *decimal.Decimal `json:"annual_basic"`
	AnnualHRA      *decimal.Decimal `json:"annual_hra"`
	RentPaidAnnual decimal.Decimal  `json:"rent_paid_annual"`
	IsMetroCity    bool             `json:"is_metro_city"`
}

func (req *HRAExemptionRequest) Validate() error {
	var errs validator.ValidationErrors
	errs = validator.RequireAmount(errs, "annual_basic", req.AnnualBasic)
	errs = validator.RequireAmount(errs, "annual_hra", req.AnnualHRA)
	errs = validator.NonNegative(errs, "rent_paid_annual", req.RentPaidAnnual)
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// CalculationRequest carries everything the annual computation needs.
// AnnualGross is total annual earnings before any exemption; AnnualHRA
// is the HRA component received within it.
type CalculationRequest struct {
	EmployeeID    string           `json:"employee_id"`
	FinancialYear string           `json:"financial_year"`
	CurrentMonth  int              `json:"current_month"`
	Regime        Regime           `json:"regime"`
	AnnualBasic   *decimal.Decimal `json:"annual_basic"`
	AnnualGross   *decimal.Decimal `json:"annual_gross"`
	AnnualHRA     decimal.Decimal  `json:"annual_hra"`
	Declaration   Declaration      `json:"declaration"`
	TaxPaidSoFar  decimal.Decimal  `json:"tax_paid_so_far"`
}

func (req *CalculationRequest) Validate() error {
	var errs validator.ValidationErrors
	if req.EmployeeID == "" {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if _, err := fiscal.Parse(req.FinancialYear); err != nil {
		errs = append(errs, validator.ValidationError{Field: "financial_year", Message: err.Error()})
	}
	if !validator.IsValidMonth(req.CurrentMonth) {
		errs = append(errs, validator.ValidationError{Field: "current_month", Message: "must be between 1 and 12"})
	}
	if !req.Regime.IsValid() {
		errs = append(errs, validator.ValidationError{Field: "regime", Message: "must be OLD or NEW"})
	}
	errs = validator.RequireAmount(errs, "annual_basic", req.AnnualBasic)
	errs = validator.RequireAmount(errs, "annual_gross", req.AnnualGross)
	errs = validator.NonNegative(errs, "annual_hra", req.AnnualHRA)
	errs = validator.NonNegative(errs, "tax_paid_so_far", req.TaxPaidSoFar)
	if len(errs) > 0 {
		return errs
	}
	return nil
}
