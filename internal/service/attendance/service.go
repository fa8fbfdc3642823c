package attendance

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/opshr/payroll-engine-go/internal/domain/attendance"
)

var (
	one  = decimal.NewFromInt(1)
	half = decimal.RequireFromString("0.5")
)

type AggregatorImpl struct {
}

func NewAggregator() attendance.Aggregator {
	return &AggregatorImpl{}
}

// ComputeMonthSummary implements attendance.Aggregator.
func (a *AggregatorImpl) ComputeMonthSummary(ctx context.Context, req attendance.ComputeMonthSummaryRequest) (attendance.MonthlyAttendanceSummary, error) {
	if err := req.Validate(); err != nil {
		return attendance.MonthlyAttendanceSummary{}, err
	}

	days, err := orderedDays(req)
	if err != nil {
		return attendance.MonthlyAttendanceSummary{}, err
	}

	policies := make(map[string]attendance.LeavePolicy, len(req.Policies))
	for _, p := range req.Policies {
		policies[p.LeaveTypeID] = p
	}

	// Running year-to-date usage per leave type: prior months first,
	// then the current month's days in date order.
	usage := make(map[string]decimal.Decimal, len(req.PriorUsage))
	for leaveTypeID, used := range req.PriorUsage {
		usage[leaveTypeID] = used
	}

	workingDays := countWorkingDays(req.Year, req.Month, req.WeekendPolicy)

	daysWorked := decimal.Zero
	lopDays := decimal.Zero

	for _, day := range days {
		if isWeekend(day.Date, req.WeekendPolicy) {
			continue
		}

		switch day.Status {
		case attendance.StatusPresent:
			daysWorked = daysWorked.Add(one)

		case attendance.StatusAbsent:
			lopDays = lopDays.Add(one)

		case attendance.StatusHalfDay:
			// Worked half the day; the other half is paid leave when a
			// leave type covers it, otherwise LOP.
			daysWorked = daysWorked.Add(half)
			if day.LeaveTypeID == nil {
				lopDays = lopDays.Add(half)
				break
			}
			if consumeLeave(policies, usage, *day.LeaveTypeID, half) {
				break
			}
			lopDays = lopDays.Add(half)

		case attendance.StatusLeave:
			// Missing or unknown leave type is LOP, fail-safe.
			if day.LeaveTypeID == nil {
				lopDays = lopDays.Add(one)
				break
			}
			if consumeLeave(policies, usage, *day.LeaveTypeID, one) {
				daysWorked = daysWorked.Add(one)
				break
			}
			lopDays = lopDays.Add(one)

		case attendance.StatusHoliday, attendance.StatusWeekend:
			// Neither worked nor penalized.

		default:
			return attendance.MonthlyAttendanceSummary{}, fmt.Errorf("%w: %q", attendance.ErrUnknownDayStatus, day.Status)
		}
	}

	return attendance.MonthlyAttendanceSummary{
		WorkingDays: workingDays,
		DaysWorked:  daysWorked,
		LOPDays:     lopDays,
	}, nil
}

// LeaveBalances implements attendance.Aggregator.
func (a *AggregatorImpl) LeaveBalances(ctx context.Context, req attendance.LeaveBalancesRequest) ([]attendance.LeaveBalance, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	balances := make([]attendance.LeaveBalance, 0, len(req.Policies))
	for _, p := range req.Policies {
		if !p.IsPaid {
			continue
		}
		used := req.Usage[p.LeaveTypeID]
		remaining := p.AnnualAllocationDays.Sub(used)
		if remaining.IsNegative() {
			remaining = decimal.Zero
		}
		balances = append(balances, attendance.LeaveBalance{
			LeaveTypeID: p.LeaveTypeID,
			Allocation:  p.AnnualAllocationDays,
			Used:        used,
			Remaining:   remaining,
		})
	}

	sort.Slice(balances, func(i, j int) bool {
		return balances[i].LeaveTypeID < balances[j].LeaveTypeID
	})
	return balances, nil
}

// consumeLeave tries to book amount days of the given leave type against
// its annual allocation. It reports whether the days are paid; unpaid
// types and exhausted balances leave usage untouched.
func consumeLeave(policies map[string]attendance.LeavePolicy, usage map[string]decimal.Decimal, leaveTypeID string, amount decimal.Decimal) bool {
	policy, ok := policies[leaveTypeID]
	if !ok || !policy.IsPaid {
		return false
	}
	next := usage[leaveTypeID].Add(amount)
	if next.GreaterThan(policy.AnnualAllocationDays) {
		return false
	}
	usage[leaveTypeID] = next
	return true
}

// orderedDays validates the one-record-per-day invariant and returns the
// month's records sorted by date.
func orderedDays(req attendance.ComputeMonthSummaryRequest) ([]attendance.AttendanceDay, error) {
	seen := make(map[string]struct{}, len(req.Days))
	days := make([]attendance.AttendanceDay, 0, len(req.Days))

	for _, day := range req.Days {
		if day.EmployeeID != req.EmployeeID {
			return nil, fmt.Errorf("%w: %s", attendance.ErrWrongEmployee, day.EmployeeID)
		}
		if day.Date.Year() != req.Year || int(day.Date.Month()) != req.Month {
			return nil, fmt.Errorf("%w: %s", attendance.ErrDayOutsideMonth, day.Date.Format("2006-01-02"))
		}
		key := day.Date.Format("2006-01-02")
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("%w: %s", attendance.ErrDuplicateDay, key)
		}
		seen[key] = struct{}{}
		days = append(days, day)
	}

	sort.Slice(days, func(i, j int) bool {
		return days[i].Date.Before(days[j].Date)
	})
	return days, nil
}

func countWorkingDays(year, month int, policy attendance.WeekendPolicy) int {
	daysInMonth := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
	count := 0
	for d := 1; d <= daysInMonth; d++ {
		date := time.Date(year, time.Month(month), d, 0, 0, 0, 0, time.UTC)
		if !isWeekend(date, policy) {
			count++
		}
	}
	return count
}

func isWeekend(date time.Time, policy attendance.WeekendPolicy) bool {
	switch date.Weekday() {
	case time.Sunday:
		return true
	case time.Saturday:
		occurrence := (date.Day()-1)/7 + 1
		switch policy {
		case attendance.WeekendAllSaturdays:
			return true
		case attendance.WeekendSecondFourth:
			return occurrence == 2 || occurrence == 4
		case attendance.WeekendFirstThird:
			return occurrence == 1 || occurrence == 3
		case attendance.WeekendNoSaturday:
			return false
		}
	}
	return false
}
