package loan

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/opshr/payroll-engine-go/internal/domain/loan"
	"github.com/opshr/payroll-engine-go/internal/pkg/moneymath"
)

var (
	one = decimal.NewFromInt(1)
	// Annual percent to monthly fraction: rate / 12 / 100.
	twelveHundred = decimal.NewFromInt(1200)
)

type AmortizerImpl struct {
}

func NewAmortizer() loan.Amortizer {
	return &AmortizerImpl{}
}

// ComputeEMI implements loan.Amortizer.
func (a *AmortizerImpl) ComputeEMI(ctx context.Context, req loan.ComputeEMIRequest) (loan.EMIResult, error) {
	if err := req.Validate(); err != nil {
		return loan.EMIResult{}, err
	}
	terms := req.Terms()
	n := decimal.NewFromInt(int64(terms.TenureMonths))

	if terms.AnnualRatePercent.IsZero() {
		emi := moneymath.Round2(terms.Principal.Div(n))
		return loan.EMIResult{
			EMI:           emi,
			TotalInterest: decimal.Zero,
			TotalAmount:   emi.Mul(n),
		}, nil
	}

	// emi = P*r*(1+r)^n / ((1+r)^n - 1). Decimal division carries 16
	// significant digits, comfortably above the 10 the figures need
	// before the final 2-decimal rounding.
	r := terms.AnnualRatePercent.Div(twelveHundred)
	factor := one.Add(r).Pow(n)
	emi := moneymath.Round2(terms.Principal.Mul(r).Mul(factor).Div(factor.Sub(one)))

	totalAmount := emi.Mul(n)
	return loan.EMIResult{
		EMI:           emi,
		TotalInterest: totalAmount.Sub(terms.Principal),
		TotalAmount:   totalAmount,
	}, nil
}

// NewLoan implements loan.Amortizer.
func (a *AmortizerImpl) NewLoan(ctx context.Context, req loan.ComputeEMIRequest) (loan.Loan, error) {
	emi, err := a.ComputeEMI(ctx, req)
	if err != nil {
		return loan.Loan{}, err
	}
	return loan.Loan{
		Terms:              req.Terms(),
		EMI:                emi,
		OutstandingBalance: emi.TotalAmount,
		PendingEMIs:        req.Terms().TenureMonths,
		Status:             loan.LoanStatusActive,
	}, nil
}

// ApplyPayment implements loan.Amortizer.
func (a *AmortizerImpl) ApplyPayment(ctx context.Context, current loan.Loan, amount decimal.Decimal) (loan.Loan, error) {
	if current.Status == loan.LoanStatusClosed {
		return loan.Loan{}, loan.ErrLoanClosed
	}
	if !amount.IsPositive() {
		return loan.Loan{}, loan.ErrNonPositivePayment
	}

	next := current
	next.OutstandingBalance = moneymath.MaxZero(current.OutstandingBalance.Sub(amount))
	next.PendingEMIs = current.PendingEMIs - 1
	if next.PendingEMIs <= 0 {
		next.PendingEMIs = 0
		next.Status = loan.LoanStatusClosed
	}
	return next, nil
}

// Schedule implements loan.Amortizer.
func (a *AmortizerImpl) Schedule(ctx context.Context, req loan.ComputeEMIRequest) ([]loan.ScheduleEntry, error) {
	emi, err := a.ComputeEMI(ctx, req)
	if err != nil {
		return nil, err
	}
	terms := req.Terms()
	r := decimal.Zero
	if !terms.AnnualRatePercent.IsZero() {
		r = terms.AnnualRatePercent.Div(twelveHundred)
	}

	entries := make([]loan.ScheduleEntry, 0, terms.TenureMonths)
	remaining := terms.Principal

	for period := 1; period <= terms.TenureMonths; period++ {
		interest := moneymath.Round2(remaining.Mul(r))
		payment := emi.EMI
		principal := payment.Sub(interest)

		// Last period absorbs the accumulated rounding drift so the
		// balance lands exactly on zero.
		if period == terms.TenureMonths {
			principal = remaining
			payment = principal.Add(interest)
		}

		remaining = moneymath.MaxZero(remaining.Sub(principal))
		entries = append(entries, loan.ScheduleEntry{
			Period:           period,
			Payment:          payment,
			Interest:         interest,
			Principal:        principal,
			RemainingBalance: remaining,
		})
	}
	return entries, nil
}
