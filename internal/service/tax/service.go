package tax

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/opshr/payroll-engine-go/internal/domain/tax"
	"github.com/opshr/payroll-engine-go/internal/pkg/fiscal"
	"github.com/opshr/payroll-engine-go/internal/pkg/moneymath"
)

var (
	stdDeductionOld = decimal.NewFromInt(50000)
	stdDeductionNew = decimal.NewFromInt(75000)

	rebateThresholdOld = decimal.NewFromInt(500000)
	rebateCapOld       = decimal.NewFromInt(12500)
	rebateThresholdNew = decimal.NewFromInt(700000)
	rebateCapNew       = decimal.NewFromInt(25000)

	cap80C        = decimal.NewFromInt(150000)
	cap80CCD1B    = decimal.NewFromInt(50000)
	cap80DSelf    = decimal.NewFromInt(25000)
	cap80DParents = decimal.NewFromInt(25000)
	cap80DCheckup = decimal.NewFromInt(5000)
	cap80TTA      = decimal.NewFromInt(10000)
	capSec24      = decimal.NewFromInt(200000)

	metroHRAPercent    = decimal.NewFromInt(50)
	nonMetroHRAPercent = decimal.NewFromInt(40)
	rentOffsetPercent  = decimal.NewFromInt(10)

	cessPercent = decimal.NewFromInt(4)
)

type surchargeTier struct {
	above       decimal.Decimal
	ratePercent decimal.Decimal
}

// Highest threshold first so the first match wins.
var surchargeTiers = []surchargeTier{
	{decimal.NewFromInt(50000000), decimal.NewFromInt(37)},
	{decimal.NewFromInt(20000000), decimal.NewFromInt(25)},
	{decimal.NewFromInt(10000000), decimal.NewFromInt(15)},
	{decimal.NewFromInt(5000000), decimal.NewFromInt(10)},
}

func slab(from, to int64, rate int64) tax.Slab {
	s := tax.Slab{From: decimal.NewFromInt(from), RatePercent: decimal.NewFromInt(rate)}
	if to > 0 {
		d := decimal.NewFromInt(to)
		s.To = &d
	}
	return s
}

var oldRegimeSlabs = []tax.Slab{
	slab(0, 250000, 0),
	slab(250000, 500000, 5),
	slab(500000, 1000000, 20),
	slab(1000000, 0, 30),
}

var newRegimeSlabs = []tax.Slab{
	slab(0, 300000, 0),
	slab(300000, 700000, 5),
	slab(700000, 1000000, 10),
	slab(1000000, 1200000, 15),
	slab(1200000, 1500000, 20),
	slab(1500000, 0, 30),
}

type EngineImpl struct{}

func NewEngine() tax.Engine {
	return &EngineImpl{}
}

func (s *EngineImpl) HRAExemption(ctx context.Context, req tax.HRAExemptionRequest) (decimal.Decimal, error) {
	if err := req.Validate(); err != nil {
		return decimal.Zero, err
	}
	return hraExemption(*req.AnnualBasic, *req.AnnualHRA, req.RentPaidAnnual, req.IsMetroCity), nil
}

// hraExemption is the least of HRA received, rent paid less 10% of
// basic, and 50% (metro) or 40% (non-metro) of basic. No rent claimed
// means no exemption.
func hraExemption(annualBasic, annualHRA, rentPaid decimal.Decimal, metro bool) decimal.Decimal {
	if !rentPaid.IsPositive() {
		return decimal.Zero
	}
	rentExcess := moneymath.MaxZero(rentPaid.Sub(moneymath.Percent(annualBasic, rentOffsetPercent)))
	basicPct := nonMetroHRAPercent
	if metro {
		basicPct = metroHRAPercent
	}
	basicShare := moneymath.Percent(annualBasic, basicPct)
	return moneymath.Min(moneymath.Min(annualHRA, rentExcess), basicShare)
}

// chapterVIA totals the capped deduction claims. Only the OLD regime
// admits these; callers gate on regime.
func chapterVIA(d tax.Declaration) decimal.Decimal {
	return moneymath.SumAll(
		moneymath.Min(d.Sec80C, cap80C),
		moneymath.Min(d.Sec80CCD1B, cap80CCD1B),
		moneymath.Min(d.Sec80DSelfFamily, cap80DSelf),
		moneymath.Min(d.Sec80DParents, cap80DParents),
		moneymath.Min(d.Sec80DCheckup, cap80DCheckup),
		moneymath.Min(d.Sec80TTA, cap80TTA),
		d.Sec80E,
		d.Sec80G,
		moneymath.Min(d.Sec24HomeLoanInterest, capSec24),
	)
}

func (s *EngineImpl) CalculateAnnualTax(ctx context.Context, req tax.CalculationRequest) (tax.CalculationResult, error) {
	if err := req.Validate(); err != nil {
		return tax.CalculationResult{}, err
	}
	return s.calculate(req, req.Regime), nil
}

func (s *EngineImpl) calculate(req tax.CalculationRequest, regime tax.Regime) tax.CalculationResult {
	gross := *req.AnnualGross
	basic := *req.AnnualBasic

	res := tax.CalculationResult{
		Regime:            regime,
		GrossAnnualIncome: gross,
		TaxPaidSoFar:      req.TaxPaidSoFar,
	}

	slabs := newRegimeSlabs
	if regime == tax.RegimeOld {
		slabs = oldRegimeSlabs
		res.StandardDeduction = stdDeductionOld
		res.HRAExemption = hraExemption(basic, req.AnnualHRA, req.Declaration.RentPaidAnnual, req.Declaration.IsMetroCity)
		res.ChapterVIA = chapterVIA(req.Declaration)
	} else {
		res.StandardDeduction = stdDeductionNew
	}

	res.TaxableIncome = moneymath.MaxZero(gross.
		Sub(res.StandardDeduction).
		Sub(res.HRAExemption).
		Sub(res.ChapterVIA))

	res.SlabBreakdown = slabTax(res.TaxableIncome, slabs)
	for _, b := range res.SlabBreakdown {
		res.TaxBeforeRebate = res.TaxBeforeRebate.Add(b.Tax)
	}

	res.Rebate = rebate(regime, res.TaxableIncome, res.TaxBeforeRebate)
	res.TaxAfterRebate = res.TaxBeforeRebate.Sub(res.Rebate)
	res.Surcharge = surcharge(res.TaxableIncome, res.TaxAfterRebate)
	res.Cess = moneymath.RoundRupee(moneymath.Percent(res.TaxAfterRebate.Add(res.Surcharge), cessPercent))
	res.TotalLiability = res.TaxAfterRebate.Add(res.Surcharge).Add(res.Cess)

	res.RemainingMonths = fiscal.RemainingMonths(req.CurrentMonth)
	remaining := moneymath.MaxZero(res.TotalLiability.Sub(req.TaxPaidSoFar))
	res.MonthlyTDS = remaining.Div(decimal.NewFromInt(int64(res.RemainingMonths))).Ceil()

	return res
}

// slabTax partitions taxable income across the bands. Every band is
// reported, empty ones included, with per-band tax rounded half up to
// the rupee.
func slabTax(taxable decimal.Decimal, slabs []tax.Slab) []tax.SlabTax {
	out := make([]tax.SlabTax, 0, len(slabs))
	for _, sl := range slabs {
		portion := decimal.Zero
		if taxable.GreaterThan(sl.From) {
			portion = taxable.Sub(sl.From)
			if sl.To != nil {
				width := sl.To.Sub(sl.From)
				if portion.GreaterThan(width) {
					portion = width
				}
			}
		}
		out = append(out, tax.SlabTax{
			Slab:          sl,
			TaxableAmount: portion,
			Tax:           moneymath.RoundRupee(moneymath.Percent(portion, sl.RatePercent)),
		})
	}
	return out
}

// rebate under section 87A zeroes out small liabilities: if taxable
// income is within the regime threshold the rebate is the tax itself,
// up to the regime cap.
func rebate(regime tax.Regime, taxable, taxBefore decimal.Decimal) decimal.Decimal {
	threshold, cap := rebateThresholdNew, rebateCapNew
	if regime == tax.RegimeOld {
		threshold, cap = rebateThresholdOld, rebateCapOld
	}
	if taxable.GreaterThan(threshold) {
		return decimal.Zero
	}
	return moneymath.Min(taxBefore, cap)
}

func surcharge(taxable, taxAfterRebate decimal.Decimal) decimal.Decimal {
	for _, tier := range surchargeTiers {
		if taxable.GreaterThan(tier.above) {
			return moneymath.RoundRupee(moneymath.Percent(taxAfterRebate, tier.ratePercent))
		}
	}
	return decimal.Zero
}

// CompareRegimes runs the same income and declaration through both
// regimes. Ties recommend NEW, the statutory default.
func (s *EngineImpl) CompareRegimes(ctx context.Context, req tax.CalculationRequest) (tax.RegimeComparison, error) {
	if err := req.Validate(); err != nil {
		return tax.RegimeComparison{}, err
	}
	cmp := tax.RegimeComparison{
		Old: s.calculate(req, tax.RegimeOld),
		New: s.calculate(req, tax.RegimeNew),
	}
	if cmp.Old.TotalLiability.LessThan(cmp.New.TotalLiability) {
		cmp.Recommended = tax.RegimeOld
		cmp.Savings = cmp.New.TotalLiability.Sub(cmp.Old.TotalLiability)
	} else {
		cmp.Recommended = tax.RegimeNew
		cmp.Savings = cmp.Old.TotalLiability.Sub(cmp.New.TotalLiability)
	}
	return cmp, nil
}
