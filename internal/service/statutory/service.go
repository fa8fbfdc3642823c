package statutory

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/opshr/payroll-engine-go/internal/domain/statutory"
	"github.com/opshr/payroll-engine-go/internal/pkg/moneymath"
)

// Default professional tax schedule (Tamil Nadu), used when a state has
// no slabs of its own.
var (
	ptBand1Limit = decimal.NewFromInt(3500)
	ptBand2Limit = decimal.NewFromInt(5000)
	ptBand3Limit = decimal.NewFromInt(10000)

	ptBand2Tax = decimal.RequireFromString("22.50")
	ptBand3Tax = decimal.RequireFromString("52.50")
	ptBand4Tax = decimal.NewFromInt(208)
)

type CalculatorImpl struct {
}

func NewCalculator() statutory.Calculator {
	return &CalculatorImpl{}
}

// PF implements statutory.Calculator.
func (c *CalculatorImpl) PF(ctx context.Context, req statutory.PFRequest) (statutory.PFContribution, error) {
	if err := req.Validate(); err != nil {
		return statutory.PFContribution{}, err
	}
	if !req.Config.PFEnabled {
		return statutory.PFContribution{EmployeeShare: decimal.Zero, EmployerShare: decimal.Zero}, nil
	}

	wageBase := moneymath.CapAt(*req.BasicSalary, req.Config.PFWageCeiling)
	return statutory.PFContribution{
		EmployeeShare: moneymath.RoundRupee(moneymath.Percent(wageBase, req.Config.PFEmployeeRate)),
		EmployerShare: moneymath.RoundRupee(moneymath.Percent(wageBase, req.Config.PFEmployerRate)),
	}, nil
}

// ESI implements statutory.Calculator.
func (c *CalculatorImpl) ESI(ctx context.Context, req statutory.ESIRequest) (statutory.ESIContribution, error) {
	if err := req.Validate(); err != nil {
		return statutory.ESIContribution{}, err
	}
	if !req.Config.ESIEnabled {
		return statutory.ESIContribution{EmployeeShare: decimal.Zero, EmployerShare: decimal.Zero}, nil
	}
	// Cliff: a gross exactly at the ceiling is still covered, anything
	// above gets nothing.
	if req.Config.ESIWageCeiling.IsPositive() && req.GrossSalary.GreaterThan(req.Config.ESIWageCeiling) {
		return statutory.ESIContribution{EmployeeShare: decimal.Zero, EmployerShare: decimal.Zero}, nil
	}

	return statutory.ESIContribution{
		EmployeeShare: moneymath.RoundRupee(moneymath.Percent(*req.GrossSalary, req.Config.ESIEmployeeRate)),
		EmployerShare: moneymath.RoundRupee(moneymath.Percent(*req.GrossSalary, req.Config.ESIEmployerRate)),
	}, nil
}

// ProfessionalTax implements statutory.Calculator.
func (c *CalculatorImpl) ProfessionalTax(ctx context.Context, req statutory.ProfessionalTaxRequest) (decimal.Decimal, error) {
	if err := req.Validate(); err != nil {
		return decimal.Zero, err
	}
	if !req.PTApplicable {
		return decimal.Zero, nil
	}

	gross := *req.GrossSalary

	stateSlabs := make([]statutory.ProfessionalTaxSlab, 0, len(req.Slabs))
	for _, slab := range req.Slabs {
		if slab.State == req.State {
			stateSlabs = append(stateSlabs, slab)
		}
	}
	if len(stateSlabs) == 0 {
		return defaultProfessionalTax(gross), nil
	}

	for _, slab := range stateSlabs {
		if slab.Matches(gross, req.Gender) {
			return slab.TaxAmount, nil
		}
	}
	return decimal.Zero, fmt.Errorf("%w: state %s, gross %s", statutory.ErrSlabGap, req.State, gross)
}

// Contributions implements statutory.Calculator.
func (c *CalculatorImpl) Contributions(ctx context.Context, req statutory.ContributionsRequest) (statutory.Contributions, error) {
	if err := req.Validate(); err != nil {
		return statutory.Contributions{}, err
	}

	pf, err := c.PF(ctx, statutory.PFRequest{BasicSalary: req.BasicSalary, Config: req.Config})
	if err != nil {
		return statutory.Contributions{}, fmt.Errorf("pf: %w", err)
	}
	esi, err := c.ESI(ctx, statutory.ESIRequest{GrossSalary: req.GrossSalary, Config: req.Config})
	if err != nil {
		return statutory.Contributions{}, fmt.Errorf("esi: %w", err)
	}
	pt, err := c.ProfessionalTax(ctx, statutory.ProfessionalTaxRequest{
		GrossSalary:  req.GrossSalary,
		State:        req.Config.PTState,
		Gender:       req.Gender,
		Slabs:        req.Slabs,
		PTApplicable: req.PTApplicable,
	})
	if err != nil {
		return statutory.Contributions{}, fmt.Errorf("professional tax: %w", err)
	}

	return statutory.Contributions{PF: pf, ESI: esi, ProfessionalTax: pt}, nil
}

func defaultProfessionalTax(gross decimal.Decimal) decimal.Decimal {
	switch {
	case gross.LessThan(ptBand1Limit):
		return decimal.Zero
	case gross.LessThanOrEqual(ptBand2Limit):
		return ptBand2Tax
	case gross.LessThanOrEqual(ptBand3Limit):
		return ptBand3Tax
	default:
		return ptBand4Tax
	}
}
