package moneymath

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestRoundRupee(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"100.49", "100"},
		{"100.50", "101"}, // half-up
		{"100.51", "101"},
		{"0", "0"},
	}
	for _, c := range cases {
		assert.True(t, RoundRupee(d(c.in)).Equal(d(c.want)), "RoundRupee(%s)", c.in)
	}
}

func TestRound2(t *testing.T) {
	assert.True(t, Round2(d("10661.8545")).Equal(d("10661.85")))
	assert.True(t, Round2(d("10661.855")).Equal(d("10661.86")))
}

func TestPercent(t *testing.T) {
	// 12% of 15000 = 1800
	assert.True(t, Percent(d("15000"), d("12")).Equal(d("1800")))
	// 0.75% of 20000 = 150
	assert.True(t, Percent(d("20000"), d("0.75")).Equal(d("150")))
}

func TestCapAt(t *testing.T) {
	assert.True(t, CapAt(d("20000"), d("15000")).Equal(d("15000")))
	assert.True(t, CapAt(d("12000"), d("15000")).Equal(d("12000")))
	// Zero ceiling means no cap
	assert.True(t, CapAt(d("20000"), decimal.Zero).Equal(d("20000")))
}

func TestCeilDays(t *testing.T) {
	assert.True(t, CeilDays(d("1.5")).Equal(d("2")))
	assert.True(t, CeilDays(d("2")).Equal(d("2")))
	assert.True(t, CeilDays(d("0")).Equal(d("0")))
}

func TestSafeDiv(t *testing.T) {
	assert.True(t, SafeDiv(d("30000"), decimal.Zero).IsZero())
	got := SafeDiv(d("30000"), d("26"))
	assert.True(t, got.Round(2).Equal(d("1153.85")))
}

func TestMaxZeroAndMin(t *testing.T) {
	assert.True(t, MaxZero(d("-5")).IsZero())
	assert.True(t, MaxZero(d("5")).Equal(d("5")))
	assert.True(t, Min(d("3"), d("7")).Equal(d("3")))
	assert.True(t, Min(d("7"), d("3")).Equal(d("3")))
}

func TestSumAll(t *testing.T) {
	assert.True(t, SumAll(d("1.10"), d("2.20"), d("3.30")).Equal(d("6.60")))
	assert.True(t, SumAll().IsZero())
}
