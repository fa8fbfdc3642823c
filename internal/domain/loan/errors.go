package loan

import "errors"

var (
	ErrLoanClosed         = errors.New("loan is already closed")
	ErrNonPositivePayment = errors.New("payment amount must be positive")
)
