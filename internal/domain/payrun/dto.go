package payrun

import (
	"fmt"

	"github.com/opshr/payroll-engine-go/internal/pkg/validator"
)

type CalculateEmployeeRequest struct {
	Month    int
	Year     int
	Employee EmployeeInput
}

func (r *CalculateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors
	errs = validatePeriod(errs, r.Month, r.Year)
	errs = validateEmployee(errs, "employee", r.Employee)
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CalculateRunRequest struct {
	Month     int
	Year      int
	Employees []EmployeeInput

	// Concurrency bounds the worker pool; zero means the default.
	Concurrency int
}

func (r *CalculateRunRequest) Validate() error {
	var errs validator.ValidationErrors
	errs = validatePeriod(errs, r.Month, r.Year)
	if len(r.Employees) == 0 {
		errs = append(errs, validator.ValidationError{Field: "employees", Message: "is required"})
	}
	if r.Concurrency < 0 {
		errs = append(errs, validator.ValidationError{Field: "concurrency", Message: "must be non-negative"})
	}
	seen := make(map[string]struct{}, len(r.Employees))
	for i, emp := range r.Employees {
		field := fmt.Sprintf("employees[%d]", i)
		errs = validateEmployee(errs, field, emp)
		if _, dup := seen[emp.EmployeeID]; dup {
			errs = append(errs, validator.ValidationError{Field: field + ".employee_id", Message: "is duplicated"})
		}
		seen[emp.EmployeeID] = struct{}{}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validatePeriod(errs validator.ValidationErrors, month, year int) validator.ValidationErrors {
	if !validator.IsValidMonth(month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 1 and 12"})
	}
	if year < 1900 {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be a calendar year"})
	}
	return errs
}

func validateEmployee(errs validator.ValidationErrors, field string, emp EmployeeInput) validator.ValidationErrors {
	if emp.EmployeeID == "" {
		errs = append(errs, validator.ValidationError{Field: field + ".employee_id", Message: "is required"})
	}
	errs = validator.RequireAmount(errs, field+".wage.basic", emp.Wage.Basic)
	errs = validator.NonNegative(errs, field+".wage.hra", emp.Wage.HRA)
	errs = validator.NonNegative(errs, field+".wage.conveyance", emp.Wage.Conveyance)
	errs = validator.NonNegative(errs, field+".wage.fixed_allowance", emp.Wage.FixedAllowance)
	errs = validator.NonNegative(errs, field+".wage.other_earnings", emp.Wage.OtherEarnings)
	errs = validator.NonNegative(errs, field+".monthly_tds", emp.MonthlyTDS)
	errs = validator.NonNegative(errs, field+".other_deductions", emp.OtherDeductions)
	if emp.Attendance.WorkingDays < 0 {
		errs = append(errs, validator.ValidationError{Field: field + ".attendance.working_days", Message: "must be non-negative"})
	}
	errs = validator.NonNegative(errs, field+".attendance.lop_days", emp.Attendance.LOPDays)
	return errs
}
