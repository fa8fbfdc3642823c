package statutory

import (
	"context"

	"github.com/shopspring/decimal"
)

// Calculator computes statutory contributions from explicit wage inputs
// and tenant rate configuration. Implementations are pure and safe for
// concurrent use.
type Calculator interface {
	// PF returns employee and employer Provident Fund shares. The wage
	// base is basic salary capped at the configured ceiling.
	PF(ctx context.Context, req PFRequest) (PFContribution, error)

	// ESI returns employee and employer shares, or zero for both when
	// gross salary exceeds the wage ceiling.
	ESI(ctx context.Context, req ESIRequest) (ESIContribution, error)

	// ProfessionalTax looks up the state slab schedule, falling back to
	// the default schedule when the state has none.
	ProfessionalTax(ctx context.Context, req ProfessionalTaxRequest) (decimal.Decimal, error)

	// Contributions computes all three for one pay period.
	Contributions(ctx context.Context, req ContributionsRequest) (Contributions, error)
}
