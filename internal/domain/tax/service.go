package tax

import (
	"context"

	"github.com/shopspring/decimal"
)

// Engine computes annual income tax and monthly TDS under either
// regime. Implementations are stateless and safe for concurrent use.
type Engine interface {
	HRAExemption(ctx context.Context, req HRAExemptionRequest) (decimal.Decimal, error)
	CalculateAnnualTax(ctx context.Context, req CalculationRequest) (CalculationResult, error)
	CompareRegimes(ctx context.Context, req CalculationRequest) (RegimeComparison, error)
}
