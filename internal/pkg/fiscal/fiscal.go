package fiscal

import (
	"fmt"
	"strconv"
	"strings"
)

// The Indian financial year runs April through March. Month numbers in
// this package are calendar months (1-12).

// Year is a parsed financial year, e.g. "2025-26" -> StartYear 2025.
type Year struct {
	StartYear int
}

// Parse parses a "YYYY-YY" financial year string.
func Parse(fy string) (Year, error) {
	parts := strings.Split(fy, "-")
	if len(parts) != 2 || len(parts[0]) != 4 || len(parts[1]) != 2 {
		return Year{}, fmt.Errorf("malformed financial year %q, expected YYYY-YY", fy)
	}
	start, err := strconv.Atoi(parts[0])
	if err != nil {
		return Year{}, fmt.Errorf("malformed financial year %q: %w", fy, err)
	}
	suffix, err := strconv.Atoi(parts[1])
	if err != nil {
		return Year{}, fmt.Errorf("malformed financial year %q: %w", fy, err)
	}
	if (start+1)%100 != suffix {
		return Year{}, fmt.Errorf("financial year %q end does not follow start year", fy)
	}
	return Year{StartYear: start}, nil
}

// String formats the year back to "YYYY-YY".
func (y Year) String() string {
	return fmt.Sprintf("%04d-%02d", y.StartYear, (y.StartYear+1)%100)
}

// RemainingMonths counts the months left in the financial year from
// currentMonth inclusive. Never returns less than 1, so TDS apportionment
// always has at least one month to spread over.
func RemainingMonths(currentMonth int) int {
	var remaining int
	if currentMonth >= 4 {
		remaining = 16 - currentMonth
	} else {
		remaining = 4 - currentMonth
	}
	if remaining < 1 {
		remaining = 1
	}
	return remaining
}

// ForDate returns the financial year containing the given calendar
// year/month.
func ForDate(calendarYear, month int) Year {
	if month >= 4 {
		return Year{StartYear: calendarYear}
	}
	return Year{StartYear: calendarYear - 1}
}
