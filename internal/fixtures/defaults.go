package fixtures

import (
	"github.com/shopspring/decimal"

	"github.com/opshr/payroll-engine-go/internal/config"
	"github.com/opshr/payroll-engine-go/internal/domain/attendance"
	"github.com/opshr/payroll-engine-go/internal/domain/statutory"
)

func strPtr(s string) *string { return &s }

func decPtr(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

// DefaultLeavePolicies is the leave-type set a new tenant starts with.
func DefaultLeavePolicies() []attendance.LeavePolicy {
	return []attendance.LeavePolicy{
		{LeaveTypeID: "CASUAL", Name: "Casual Leave", IsPaid: true, AnnualAllocationDays: decimal.NewFromInt(12)},
		{LeaveTypeID: "SICK", Name: "Sick Leave", IsPaid: true, AnnualAllocationDays: decimal.NewFromInt(10)},
		{LeaveTypeID: "EARNED", Name: "Earned Leave", IsPaid: true, AnnualAllocationDays: decimal.NewFromInt(15)},
		{LeaveTypeID: "UNPAID", Name: "Leave Without Pay", IsPaid: false, AnnualAllocationDays: decimal.Zero},
	}
}

// DefaultRateConfig turns engine-level statutory defaults into the
// tenant rate configuration used until the tenant overrides it.
func DefaultRateConfig(cfg config.StatutoryConfig) statutory.RateConfig {
	return statutory.RateConfig{
		PFEnabled:       true,
		PFEmployeeRate:  cfg.PFEmployeeRate,
		PFEmployerRate:  cfg.PFEmployerRate,
		PFWageCeiling:   cfg.PFWageCeiling,
		ESIEnabled:      true,
		ESIEmployeeRate: cfg.ESIEmployeeRate,
		ESIEmployerRate: cfg.ESIEmployerRate,
		ESIWageCeiling:  cfg.ESIWageCeiling,
		PTState:         cfg.DefaultPTState,
	}
}

// ProfessionalTaxSlabs returns the seeded schedule for states whose
// slabs the engine ships with. States without a seeded schedule fall
// back to the calculator's built-in default bands.
func ProfessionalTaxSlabs(state string) []statutory.ProfessionalTaxSlab {
	switch state {
	case "Karnataka":
		return []statutory.ProfessionalTaxSlab{
			{State: state, FromAmount: decimal.Zero, ToAmount: decPtr(24999), TaxAmount: decimal.Zero},
			{State: state, FromAmount: decimal.NewFromInt(25000), TaxAmount: decimal.NewFromInt(200)},
		}
	case "Maharashtra":
		return []statutory.ProfessionalTaxSlab{
			{State: state, FromAmount: decimal.Zero, ToAmount: decPtr(7500), TaxAmount: decimal.Zero},
			{State: state, FromAmount: decimal.NewFromInt(7501), ToAmount: decPtr(10000), TaxAmount: decimal.NewFromInt(175), Gender: strPtr("MALE")},
			{State: state, FromAmount: decimal.NewFromInt(7501), ToAmount: decPtr(10000), TaxAmount: decimal.Zero, Gender: strPtr("FEMALE")},
			{State: state, FromAmount: decimal.NewFromInt(10001), TaxAmount: decimal.NewFromInt(200)},
		}
	default:
		return nil
	}
}
