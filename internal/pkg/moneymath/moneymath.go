package moneymath

import "github.com/shopspring/decimal"

// Hundred is the divisor for percentage rates expressed as whole numbers (12 = 12%).
var Hundred = decimal.NewFromInt(100)

// RoundRupee rounds half-up to the nearest whole currency unit.
// Statutory contributions (PF, ESI, PT) and per-slab income tax are
// always settled in whole rupees.
func RoundRupee(v decimal.Decimal) decimal.Decimal {
	return v.Round(0)
}

// Round2 rounds half-up to two decimal places. Used for payslip line
// amounts and EMI figures.
func Round2(v decimal.Decimal) decimal.Decimal {
	return v.Round(2)
}

// Percent applies a percentage rate to a base amount without rounding.
// Callers decide the rounding rule for their context.
func Percent(base, ratePercent decimal.Decimal) decimal.Decimal {
	return base.Mul(ratePercent).Div(Hundred)
}

// CapAt clamps v to ceiling when ceiling is positive. A zero or negative
// ceiling means "no ceiling configured" and v passes through.
func CapAt(v, ceiling decimal.Decimal) decimal.Decimal {
	if ceiling.IsPositive() && v.GreaterThan(ceiling) {
		return ceiling
	}
	return v
}

// CeilDays rounds fractional days up to the next whole day.
func CeilDays(days decimal.Decimal) decimal.Decimal {
	return days.Ceil()
}

// SafeDiv divides a by b, returning zero when b is zero.
func SafeDiv(a, b decimal.Decimal) decimal.Decimal {
	if b.IsZero() {
		return decimal.Zero
	}
	return a.Div(b)
}

// SumAll adds up a list of amounts.
func SumAll(amounts ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total
}

// MaxZero clamps negative values to zero. Taxable income and similar
// derived figures never go below zero.
func MaxZero(v decimal.Decimal) decimal.Decimal {
	if v.IsNegative() {
		return decimal.Zero
	}
	return v
}

// Min returns the smaller of two amounts.
func Min(a, b decimal.Decimal) decimal.Decimal {
	if a.LessThan(b) {
		return a
	}
	return b
}
