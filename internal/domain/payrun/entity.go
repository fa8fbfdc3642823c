package payrun

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/opshr/payroll-engine-go/internal/domain/attendance"
	"github.com/opshr/payroll-engine-go/internal/domain/loan"
	"github.com/opshr/payroll-engine-go/internal/domain/statutory"
)

// RunStatus enum
type RunStatus string

const (
	RunStatusDraft      RunStatus = "DRAFT"
	RunStatusCalculated RunStatus = "CALCULATED"
)

// WageBasis is an employee's monthly earning components. Basic is
// required; the other components default to zero when absent.
type WageBasis struct {
	Basic          *decimal.Decimal `json:"basic"`
	HRA            decimal.Decimal  `json:"hra"`
	Conveyance     decimal.Decimal  `json:"conveyance"`
	FixedAllowance decimal.Decimal  `json:"fixed_allowance"`
	OtherEarnings  decimal.Decimal  `json:"other_earnings"`
}

// EmployeeInput is everything one employee's pay period calculation
// consumes, pre-fetched by the caller. The calculator performs no I/O.
type EmployeeInput struct {
	EmployeeID string
	Wage       WageBasis
	Attendance attendance.MonthlyAttendanceSummary

	Rates        statutory.RateConfig
	PTSlabs      []statutory.ProfessionalTaxSlab
	PTApplicable bool
	Gender       *string

	// MonthlyTDS is the precomputed figure from the yearly projection;
	// zero when the employee has no declaration.
	MonthlyTDS      decimal.Decimal
	OtherDeductions decimal.Decimal
	Loans           []loan.Loan
}

// EmployeeResult is one employee's finalized pay record. GrossSalary is
// already net of the LOP deduction, so TotalDeductions does not include
// it again.
type EmployeeResult struct {
	EmployeeID string

	GrossEarnings decimal.Decimal // sum of wage components before LOP
	LOPDays       decimal.Decimal
	DailyRate     decimal.Decimal
	LOPDeduction  decimal.Decimal
	GrossSalary   decimal.Decimal // GrossEarnings less LOPDeduction

	PFEmployee      decimal.Decimal
	PFEmployer      decimal.Decimal
	ESIEmployee     decimal.Decimal
	ESIEmployer     decimal.Decimal
	ProfessionalTax decimal.Decimal
	TDS             decimal.Decimal
	EMIDeduction    decimal.Decimal
	OtherDeductions decimal.Decimal

	TotalDeductions           decimal.Decimal
	TotalEmployerContribution decimal.Decimal
	NetSalary                 decimal.Decimal

	// Loans after this period's EMI has been applied.
	UpdatedLoans []loan.Loan
}

// RunTotals aggregates employee results for a pay run.
type RunTotals struct {
	Employees                 int
	GrossSalary               decimal.Decimal
	LOPDeduction              decimal.Decimal
	PFEmployee                decimal.Decimal
	PFEmployer                decimal.Decimal
	ESIEmployee               decimal.Decimal
	ESIEmployer               decimal.Decimal
	ProfessionalTax           decimal.Decimal
	TDS                       decimal.Decimal
	TotalDeductions           decimal.Decimal
	TotalEmployerContribution decimal.Decimal
	NetSalary                 decimal.Decimal
}

// Run is one calculated pay run. A run is replaced wholesale on
// recalculation, never patched in place.
type Run struct {
	ID           string
	Month        int
	Year         int
	Status       RunStatus
	Results      []EmployeeResult
	Totals       RunTotals
	CalculatedAt time.Time
}
