package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

// DayStatus is the closed set of states a calendar day can be in for an
// employee. Unknown values are rejected up front so a new status can
// never silently fall through to a default branch.
type DayStatus string

const (
	StatusPresent DayStatus = "PRESENT"
	StatusAbsent  DayStatus = "ABSENT"
	StatusHalfDay DayStatus = "HALF_DAY"
	StatusLeave   DayStatus = "LEAVE"
	StatusHoliday DayStatus = "HOLIDAY"
	StatusWeekend DayStatus = "WEEKEND"
)

// IsValid reports whether s is one of the known day statuses.
func (s DayStatus) IsValid() bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusHalfDay, StatusLeave, StatusHoliday, StatusWeekend:
		return true
	}
	return false
}

// WeekendPolicy selects which Saturdays are off for a tenant.
// Sundays are always off.
type WeekendPolicy string

const (
	WeekendAllSaturdays WeekendPolicy = "ALL_SATURDAYS"
	WeekendSecondFourth WeekendPolicy = "SECOND_FOURTH_SATURDAY"
	WeekendFirstThird   WeekendPolicy = "FIRST_THIRD_SATURDAY"
	WeekendNoSaturday   WeekendPolicy = "NO_SATURDAY"
)

func (p WeekendPolicy) IsValid() bool {
	switch p {
	case WeekendAllSaturdays, WeekendSecondFourth, WeekendFirstThird, WeekendNoSaturday:
		return true
	}
	return false
}

// AttendanceDay is one employee-day fact. Exactly one record may exist
// per (employee, date).
type AttendanceDay struct {
	EmployeeID  string
	Date        time.Time
	Status      DayStatus
	LeaveTypeID *string
}

// LeavePolicy is the per-leave-type policy for a tenant, fixed within a
// financial year.
type LeavePolicy struct {
	LeaveTypeID          string
	Name                 string
	IsPaid               bool
	AnnualAllocationDays decimal.Decimal
}

// MonthlyAttendanceSummary is derived per request and never cached.
// LOPDays keeps fractional precision (half day = 0.5); rounding up to
// whole days happens only at the pay-run boundary.
type MonthlyAttendanceSummary struct {
	WorkingDays int
	DaysWorked  decimal.Decimal
	LOPDays     decimal.Decimal
}

// LeaveBalance is the remaining paid allocation for one leave type
// after year-to-date usage.
type LeaveBalance struct {
	LeaveTypeID string
	Allocation  decimal.Decimal
	Used        decimal.Decimal
	Remaining   decimal.Decimal
}
