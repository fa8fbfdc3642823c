package payrun

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/opshr/payroll-engine-go/internal/domain/loan"
	"github.com/opshr/payroll-engine-go/internal/domain/payrun"
	"github.com/opshr/payroll-engine-go/internal/domain/statutory"
	"github.com/opshr/payroll-engine-go/internal/pkg/fiscal"
	"github.com/opshr/payroll-engine-go/internal/pkg/moneymath"
)

type CalculatorImpl struct {
	statutory statutory.Calculator
	amortizer loan.Amortizer
	logger    *slog.Logger
}

func NewCalculator(statutoryCalc statutory.Calculator, amortizer loan.Amortizer, logger *slog.Logger) payrun.Calculator {
	return &CalculatorImpl{
		statutory: statutoryCalc,
		amortizer: amortizer,
		logger:    logger,
	}
}

func (s *CalculatorImpl) CalculateEmployee(ctx context.Context, req payrun.CalculateEmployeeRequest) (payrun.EmployeeResult, error) {
	if err := req.Validate(); err != nil {
		return payrun.EmployeeResult{}, err
	}
	return s.calculateEmployee(ctx, req.Employee)
}

// calculateEmployee runs the per-employee pipeline: gross assembly,
// LOP proration, statutory deductions, loan EMIs, then net. Inputs are
// assumed validated.
func (s *CalculatorImpl) calculateEmployee(ctx context.Context, emp payrun.EmployeeInput) (payrun.EmployeeResult, error) {
	res := payrun.EmployeeResult{EmployeeID: emp.EmployeeID}

	basic := *emp.Wage.Basic
	res.GrossEarnings = moneymath.SumAll(
		basic,
		emp.Wage.HRA,
		emp.Wage.Conveyance,
		emp.Wage.FixedAllowance,
		emp.Wage.OtherEarnings,
	)

	// Fractional LOP rounds up to whole days only here, at the pay-run
	// boundary.
	res.LOPDays = moneymath.CeilDays(emp.Attendance.LOPDays)
	if res.LOPDays.IsPositive() {
		// Zero working days means no divisible month, so no LOP deduction.
		workingDays := decimal.NewFromInt(int64(emp.Attendance.WorkingDays))
		res.DailyRate = moneymath.Round2(moneymath.SafeDiv(res.GrossEarnings, workingDays))
		res.LOPDeduction = moneymath.Round2(res.DailyRate.Mul(res.LOPDays))
		if res.LOPDeduction.GreaterThan(res.GrossEarnings) {
			res.LOPDeduction = res.GrossEarnings
		}
	}
	res.GrossSalary = res.GrossEarnings.Sub(res.LOPDeduction)

	// Statutory wages shrink in the same proportion as gross.
	basicAfterLOP := basic
	if res.LOPDeduction.IsPositive() && res.GrossEarnings.IsPositive() {
		basicAfterLOP = moneymath.Round2(basic.Mul(res.GrossSalary).Div(res.GrossEarnings))
	}

	contrib, err := s.statutory.Contributions(ctx, statutory.ContributionsRequest{
		BasicSalary:  &basicAfterLOP,
		GrossSalary:  &res.GrossSalary,
		Config:       emp.Rates,
		Slabs:        emp.PTSlabs,
		Gender:       emp.Gender,
		PTApplicable: emp.PTApplicable,
	})
	if err != nil {
		return payrun.EmployeeResult{}, fmt.Errorf("statutory contributions: %w", err)
	}
	res.PFEmployee = contrib.PF.EmployeeShare
	res.PFEmployer = contrib.PF.EmployerShare
	res.ESIEmployee = contrib.ESI.EmployeeShare
	res.ESIEmployer = contrib.ESI.EmployerShare
	res.ProfessionalTax = contrib.ProfessionalTax

	res.UpdatedLoans = make([]loan.Loan, 0, len(emp.Loans))
	for _, l := range emp.Loans {
		if l.Status != loan.LoanStatusActive {
			res.UpdatedLoans = append(res.UpdatedLoans, l)
			continue
		}
		payment := moneymath.Min(l.EMI.EMI, l.OutstandingBalance)
		if !payment.IsPositive() {
			res.UpdatedLoans = append(res.UpdatedLoans, l)
			continue
		}
		updated, err := s.amortizer.ApplyPayment(ctx, l, payment)
		if err != nil {
			return payrun.EmployeeResult{}, fmt.Errorf("loan payment: %w", err)
		}
		res.EMIDeduction = res.EMIDeduction.Add(payment)
		res.UpdatedLoans = append(res.UpdatedLoans, updated)
	}

	res.TDS = emp.MonthlyTDS
	res.OtherDeductions = emp.OtherDeductions

	// GrossSalary is already net of LOP, so the deduction total leaves
	// it out.
	res.TotalDeductions = moneymath.SumAll(
		res.PFEmployee,
		res.ESIEmployee,
		res.ProfessionalTax,
		res.TDS,
		res.EMIDeduction,
		res.OtherDeductions,
	)
	res.TotalEmployerContribution = res.PFEmployer.Add(res.ESIEmployer)
	res.NetSalary = res.GrossSalary.Sub(res.TotalDeductions)

	return res, nil
}

func (s *CalculatorImpl) CalculateRun(ctx context.Context, req payrun.CalculateRunRequest) (payrun.Run, error) {
	if err := req.Validate(); err != nil {
		return payrun.Run{}, err
	}

	limit := req.Concurrency
	if limit == 0 {
		limit = runtime.NumCPU()
	}

	results := make([]payrun.EmployeeResult, len(req.Employees))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, emp := range req.Employees {
		g.Go(func() error {
			res, err := s.calculateEmployee(gctx, emp)
			if err != nil {
				return fmt.Errorf("%w: %s: %w", payrun.ErrEmployeeFailed, emp.EmployeeID, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.logger.ErrorContext(ctx, "pay run aborted",
			slog.Int("month", req.Month),
			slog.Int("year", req.Year),
			slog.String("error", err.Error()),
		)
		return payrun.Run{}, err
	}

	run := payrun.Run{
		ID:           uuid.NewString(),
		Month:        req.Month,
		Year:         req.Year,
		Status:       payrun.RunStatusCalculated,
		Results:      results,
		Totals:       reduceTotals(results),
		CalculatedAt: time.Now().UTC(),
	}

	s.logger.InfoContext(ctx, "pay run calculated",
		slog.String("run_id", run.ID),
		slog.Int("month", run.Month),
		slog.Int("year", run.Year),
		slog.String("financial_year", fiscal.ForDate(run.Year, run.Month).String()),
		slog.Int("employees", run.Totals.Employees),
		slog.String("net_salary", run.Totals.NetSalary.String()),
	)
	return run, nil
}

func reduceTotals(results []payrun.EmployeeResult) payrun.RunTotals {
	totals := payrun.RunTotals{Employees: len(results)}
	for _, r := range results {
		totals.GrossSalary = totals.GrossSalary.Add(r.GrossSalary)
		totals.LOPDeduction = totals.LOPDeduction.Add(r.LOPDeduction)
		totals.PFEmployee = totals.PFEmployee.Add(r.PFEmployee)
		totals.PFEmployer = totals.PFEmployer.Add(r.PFEmployer)
		totals.ESIEmployee = totals.ESIEmployee.Add(r.ESIEmployee)
		totals.ESIEmployer = totals.ESIEmployer.Add(r.ESIEmployer)
		totals.ProfessionalTax = totals.ProfessionalTax.Add(r.ProfessionalTax)
		totals.TDS = totals.TDS.Add(r.TDS)
		totals.TotalDeductions = totals.TotalDeductions.Add(r.TotalDeductions)
		totals.TotalEmployerContribution = totals.TotalEmployerContribution.Add(r.TotalEmployerContribution)
		totals.NetSalary = totals.NetSalary.Add(r.NetSalary)
	}
	return totals
}
