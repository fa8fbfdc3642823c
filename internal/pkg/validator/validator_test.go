package validator

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2023-01-01", "2000-12-31"}
	invalid := []string{"2023-13-01", "2023-01-32", "2023/01/01", "01-01-2023", ""}
	for _, s := range valid {
		_, ok := IsValidDate(s)
		if !ok {
			t.Errorf("IsValidDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		_, ok := IsValidDate(s)
		if ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidMonth(t *testing.T) {
	for month := 1; month <= 12; month++ {
		if !IsValidMonth(month) {
			t.Errorf("IsValidMonth(%d) = false, want true", month)
		}
	}
	for _, month := range []int{0, -1, 13} {
		if IsValidMonth(month) {
			t.Errorf("IsValidMonth(%d) = true, want false", month)
		}
	}
}

func TestRequireAmount(t *testing.T) {
	var errs ValidationErrors

	errs = RequireAmount(errs, "basic_salary", nil)
	if len(errs) != 1 || errs[0].Message != "is required" {
		t.Errorf("RequireAmount(nil) = %v, want single 'is required' error", errs)
	}

	negative := decimal.NewFromInt(-1)
	errs = RequireAmount(nil, "basic_salary", &negative)
	if len(errs) != 1 || errs[0].Message != "must be non-negative" {
		t.Errorf("RequireAmount(-1) = %v, want single 'must be non-negative' error", errs)
	}

	ok := decimal.NewFromInt(20000)
	errs = RequireAmount(nil, "basic_salary", &ok)
	if len(errs) != 0 {
		t.Errorf("RequireAmount(20000) = %v, want no errors", errs)
	}
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{
		{Field: "basic_salary", Message: "is required"},
		{Field: "period_month", Message: "must be between 1 and 12"},
	}
	got := errs.Error()
	want := "basic_salary: is required; period_month: must be between 1 and 12"
	if got != want {
		t.Errorf("ValidationErrors.Error() = %q, want %q", got, want)
	}
}

func TestValidationErrors_ToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "principal", Message: "is required"},
		{Field: "tenure_months", Message: "must be positive"},
	}
	got := errs.ToMap()
	want := map[string]string{"principal": "is required", "tenure_months": "must be positive"}
	if len(got) != len(want) {
		t.Errorf("ValidationErrors.ToMap() length = %d, want %d", len(got), len(want))
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("ValidationErrors.ToMap()[%q] = %q, want %q", k, got[k], v)
		}
	}
}
