package loan

import (
	"context"

	"github.com/shopspring/decimal"
)

// Amortizer computes EMI figures and evolves loan state through payment
// events. Implementations are pure and safe for concurrent use.
type Amortizer interface {
	// ComputeEMI derives the monthly installment, total interest and
	// total repayable amount from the loan terms.
	ComputeEMI(ctx context.Context, req ComputeEMIRequest) (EMIResult, error)

	// NewLoan computes the EMI and returns the initial loan state:
	// outstanding balance at the total repayable amount and one pending
	// EMI per tenure month.
	NewLoan(ctx context.Context, req ComputeEMIRequest) (Loan, error)

	// ApplyPayment records one EMI payment and returns the next loan
	// state. The loan closes when no EMIs remain pending.
	ApplyPayment(ctx context.Context, current Loan, amount decimal.Decimal) (Loan, error)

	// Schedule expands the terms into a full amortization table with a
	// final-period rounding adjustment so the balance lands on zero.
	Schedule(ctx context.Context, req ComputeEMIRequest) ([]ScheduleEntry, error)
}
