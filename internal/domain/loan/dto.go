package loan

import (
	"github.com/shopspring/decimal"

	"github.com/opshr/payroll-engine-go/internal/pkg/validator"
)

// ComputeEMIRequest carries the loan terms. A nil rate means an
// interest-free loan; a nil principal or tenure is an error, never a
// silent zero.
type ComputeEMIRequest struct {
	Principal         *decimal.Decimal
	AnnualRatePercent *decimal.Decimal
	TenureMonths      *int
}

func (r *ComputeEMIRequest) Validate() error {
	var errs validator.ValidationErrors

	errs = validator.RequireAmount(errs, "principal", r.Principal)
	if r.AnnualRatePercent != nil && r.AnnualRatePercent.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "annual_rate_percent", Message: "must be non-negative"})
	}
	if r.TenureMonths == nil {
		errs = append(errs, validator.ValidationError{Field: "tenure_months", Message: "is required"})
	} else if *r.TenureMonths <= 0 {
		errs = append(errs, validator.ValidationError{Field: "tenure_months", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Terms converts the validated request into loan terms.
func (r *ComputeEMIRequest) Terms() Terms {
	rate := decimal.Zero
	if r.AnnualRatePercent != nil {
		rate = *r.AnnualRatePercent
	}
	return Terms{
		Principal:         *r.Principal,
		AnnualRatePercent: rate,
		TenureMonths:      *r.TenureMonths,
	}
}
