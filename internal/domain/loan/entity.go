package loan

import "github.com/shopspring/decimal"

// LoanStatus enum
type LoanStatus string

const (
	LoanStatusActive LoanStatus = "ACTIVE"
	LoanStatusClosed LoanStatus = "CLOSED"
)

// Terms are the immutable inputs fixed at loan creation.
type Terms struct {
	Principal         decimal.Decimal
	AnnualRatePercent decimal.Decimal
	TenureMonths      int
}

// EMIResult is derived once from Terms and never recomputed.
type EMIResult struct {
	EMI           decimal.Decimal
	TotalInterest decimal.Decimal
	TotalAmount   decimal.Decimal
}

// Loan is the running state of a disbursed loan. Payment events produce
// a new Loan value; nothing mutates in place.
type Loan struct {
	Terms              Terms
	EMI                EMIResult
	OutstandingBalance decimal.Decimal
	PendingEMIs        int
	Status             LoanStatus
}

// ScheduleEntry is one period of the amortization table.
type ScheduleEntry struct {
	Period           int
	Payment          decimal.Decimal
	Interest         decimal.Decimal
	Principal        decimal.Decimal
	RemainingBalance decimal.Decimal
}
