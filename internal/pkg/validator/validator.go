package validator

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Date validation
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse("2006-01-02", dateStr)
	return date, err == nil
}

// IsValidMonth checks a 1-12 calendar month.
func IsValidMonth(month int) bool {
	return month >= 1 && month <= 12
}

// RequireAmount reports a missing-or-negative error for a required
// monetary field. Nil pointers fail fast rather than defaulting to zero.
func RequireAmount(errs ValidationErrors, field string, v *decimal.Decimal) ValidationErrors {
	if v == nil {
		return append(errs, ValidationError{Field: field, Message: "is required"})
	}
	if v.IsNegative() {
		return append(errs, ValidationError{Field: field, Message: "must be non-negative"})
	}
	return errs
}

// NonNegative reports an error when an optional amount is negative.
func NonNegative(errs ValidationErrors, field string, v decimal.Decimal) ValidationErrors {
	if v.IsNegative() {
		return append(errs, ValidationError{Field: field, Message: "must be non-negative"})
	}
	return errs
}
