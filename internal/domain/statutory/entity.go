package statutory

import "github.com/shopspring/decimal"

// RateConfig is the tenant-scoped statutory configuration. It is always
// passed explicitly into calculator calls; the engine never reads it
// from shared state. The latest value applies, there is no historical
// rate tracking.
type RateConfig struct {
	PFEnabled      bool
	PFEmployeeRate decimal.Decimal // percent, e.g. 12 = 12%
	PFEmployerRate decimal.Decimal
	PFWageCeiling  decimal.Decimal // zero = no ceiling

	ESIEnabled      bool
	ESIEmployeeRate decimal.Decimal
	ESIEmployerRate decimal.Decimal
	ESIWageCeiling  decimal.Decimal

	PTState string
}

// ProfessionalTaxSlab is one row of a state's PT schedule. A nil
// ToAmount means the slab is open-ended. Slabs with a gender filter
// apply only to matching employees.
type ProfessionalTaxSlab struct {
	State      string
	FromAmount decimal.Decimal
	ToAmount   *decimal.Decimal
	TaxAmount  decimal.Decimal
	Gender     *string
}

// Matches reports whether the slab covers the given gross salary and
// gender.
func (s ProfessionalTaxSlab) Matches(gross decimal.Decimal, gender *string) bool {
	if gross.LessThan(s.FromAmount) {
		return false
	}
	if s.ToAmount != nil && gross.GreaterThan(*s.ToAmount) {
		return false
	}
	if s.Gender != nil {
		if gender == nil || *gender != *s.Gender {
			return false
		}
	}
	return true
}

// PFContribution is the employee and employer Provident Fund shares for
// one pay period, in whole rupees.
type PFContribution struct {
	EmployeeShare decimal.Decimal
	EmployerShare decimal.Decimal
}

// ESIContribution is the Employee State Insurance shares. Both are zero
// when gross salary exceeds the wage ceiling; ESI is a cliff, not a
// taper.
type ESIContribution struct {
	EmployeeShare decimal.Decimal
	EmployerShare decimal.Decimal
}

// Contributions bundles all statutory deductions for one employee and
// pay period.
type Contributions struct {
	PF              PFContribution
	ESI             ESIContribution
	ProfessionalTax decimal.Decimal
}
