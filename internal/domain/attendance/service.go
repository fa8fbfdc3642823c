package attendance

import (
	"context"
)

// Aggregator turns daily attendance facts into the monthly figures the
// pay-run pipeline consumes. Implementations are pure: same inputs,
// same outputs, safe for concurrent use.
type Aggregator interface {
	// ComputeMonthSummary derives working days, days worked and LOP days
	// for one employee and month. LOP days are fractional; the caller
	// rounds up at the pay-run boundary.
	ComputeMonthSummary(ctx context.Context, req ComputeMonthSummaryRequest) (MonthlyAttendanceSummary, error)

	// LeaveBalances reports the remaining paid allocation per leave type
	// given year-to-date usage.
	LeaveBalances(ctx context.Context, req LeaveBalancesRequest) ([]LeaveBalance, error)
}
