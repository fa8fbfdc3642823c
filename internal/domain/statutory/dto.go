package statutory

import (
	"github.com/shopspring/decimal"

	"github.com/opshr/payroll-engine-go/internal/pkg/validator"
)

type PFRequest struct {
	BasicSalary *decimal.Decimal
	Config      RateConfig
}

func (r *PFRequest) Validate() error {
	var errs validator.ValidationErrors

	errs = validator.RequireAmount(errs, "basic_salary", r.BasicSalary)
	errs = validator.NonNegative(errs, "pf_employee_rate", r.Config.PFEmployeeRate)
	errs = validator.NonNegative(errs, "pf_employer_rate", r.Config.PFEmployerRate)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ESIRequest struct {
	GrossSalary *decimal.Decimal
	Config      RateConfig
}

func (r *ESIRequest) Validate() error {
	var errs validator.ValidationErrors

	errs = validator.RequireAmount(errs, "gross_salary", r.GrossSalary)
	errs = validator.NonNegative(errs, "esi_employee_rate", r.Config.ESIEmployeeRate)
	errs = validator.NonNegative(errs, "esi_employer_rate", r.Config.ESIEmployerRate)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ProfessionalTaxRequest struct {
	GrossSalary *decimal.Decimal
	State       string
	Gender      *string
	Slabs       []ProfessionalTaxSlab

	// PTApplicable mirrors the employee-level PT flag; when off the tax
	// is zero regardless of state.
	PTApplicable bool
}

func (r *ProfessionalTaxRequest) Validate() error {
	var errs validator.ValidationErrors

	errs = validator.RequireAmount(errs, "gross_salary", r.GrossSalary)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ContributionsRequest computes PF, ESI and PT in one call for a pay
// period.
type ContributionsRequest struct {
	BasicSalary  *decimal.Decimal
	GrossSalary  *decimal.Decimal
	Config       RateConfig
	Slabs        []ProfessionalTaxSlab
	Gender       *string
	PTApplicable bool
}

func (r *ContributionsRequest) Validate() error {
	var errs validator.ValidationErrors

	errs = validator.RequireAmount(errs, "basic_salary", r.BasicSalary)
	errs = validator.RequireAmount(errs, "gross_salary", r.GrossSalary)

	if len(errs) > 0 {
		return errs
	}
	return nil
}
