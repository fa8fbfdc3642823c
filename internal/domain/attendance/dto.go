package attendance

import (
	"github.com/shopspring/decimal"

	"github.com/opshr/payroll-engine-go/internal/pkg/validator"
)

// ComputeMonthSummaryRequest carries everything the aggregator needs as
// plain data; leave policies and prior usage are pre-fetched by the
// caller so the aggregator never queries back into a store.
type ComputeMonthSummaryRequest struct {
	EmployeeID    string
	Month         int
	Year          int
	WeekendPolicy WeekendPolicy
	Days          []AttendanceDay
	Policies      []LeavePolicy

	// PriorUsage is year-to-date paid leave consumed per leave type in
	// the months before Month, within the same financial year.
	PriorUsage map[string]decimal.Decimal
}

func (r *ComputeMonthSummaryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 1 and 12"})
	}
	if r.Year < 1900 {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be a valid calendar year"})
	}
	if !r.WeekendPolicy.IsValid() {
		errs = append(errs, validator.ValidationError{Field: "weekend_policy", Message: "unknown weekend policy"})
	}
	for _, day := range r.Days {
		if !day.Status.IsValid() {
			errs = append(errs, validator.ValidationError{
				Field:   "days",
				Message: "unknown day status " + string(day.Status) + " on " + day.Date.Format("2006-01-02"),
			})
		}
	}
	for leaveTypeID, used := range r.PriorUsage {
		if used.IsNegative() {
			errs = append(errs, validator.ValidationError{
				Field:   "prior_usage",
				Message: "usage for leave type " + leaveTypeID + " must be non-negative",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// LeaveBalancesRequest asks for the remaining allocation of every paid
// leave type after the given year-to-date usage.
type LeaveBalancesRequest struct {
	EmployeeID string
	Policies   []LeavePolicy
	Usage      map[string]decimal.Decimal
}

func (r *LeaveBalancesRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	for leaveTypeID, used := range r.Usage {
		if used.IsNegative() {
			errs = append(errs, validator.ValidationError{
				Field:   "usage",
				Message: "usage for leave type " + leaveTypeID + " must be non-negative",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
