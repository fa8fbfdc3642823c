package payrun_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opshr/payroll-engine-go/internal/domain/attendance"
	"github.com/opshr/payroll-engine-go/internal/domain/loan"
	"github.com/opshr/payroll-engine-go/internal/domain/payrun"
	"github.com/opshr/payroll-engine-go/internal/domain/statutory"
	loanservice "github.com/opshr/payroll-engine-go/internal/service/loan"
	payrunservice "github.com/opshr/payroll-engine-go/internal/service/payrun"
	statutoryservice "github.com/opshr/payroll-engine-go/internal/service/statutory"
)

func amt(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newCalculator(t *testing.T) payrun.Calculator {
	t.Helper()
	return payrunservice.NewCalculator(
		statutoryservice.NewCalculator(),
		loanservice.NewAmortizer(),
		slog.New(slog.DiscardHandler),
	)
}

func standardRates() statutory.RateConfig {
	return statutory.RateConfig{
		PFEnabled:       true,
		PFEmployeeRate:  decimal.NewFromInt(12),
		PFEmployerRate:  decimal.NewFromInt(12),
		PFWageCeiling:   decimal.NewFromInt(15000),
		ESIEnabled:      true,
		ESIEmployeeRate: dec("0.75"),
		ESIEmployerRate: dec("3.25"),
		ESIWageCeiling:  decimal.NewFromInt(21000),
		PTState:         "Tamil Nadu",
	}
}

func employeeInput(id string) payrun.EmployeeInput {
	return payrun.EmployeeInput{
		EmployeeID: id,
		Wage: payrun.WageBasis{
			Basic: amt(20000),
			HRA:   decimal.NewFromInt(10000),
		},
		Attendance: attendance.MonthlyAttendanceSummary{
			WorkingDays: 26,
			DaysWorked:  decimal.NewFromInt(24),
			LOPDays:     decimal.NewFromInt(2),
		},
		Rates:        standardRates(),
		PTApplicable: true,
	}
}

func TestCalculator_CalculateEmployee(t *testing.T) {
	t.Parallel()
	calc := newCalculator(t)
	ctx := context.Background()

	t.Run("lop proration and statutory pipeline", func(t *testing.T) {
		t.Parallel()
		emp := employeeInput("emp-001")
		emp.MonthlyTDS = decimal.NewFromInt(2817)

		res, err := calc.CalculateEmployee(ctx, payrun.CalculateEmployeeRequest{Month: 6, Year: 2025, Employee: emp})
		require.NoError(t, err)

		assert.True(t, res.GrossEarnings.Equal(decimal.NewFromInt(30000)))
		assert.True(t, res.LOPDays.Equal(decimal.NewFromInt(2)))
		assert.True(t, res.DailyRate.Equal(dec("1153.85")), "daily rate %s", res.DailyRate)
		assert.True(t, res.LOPDeduction.Equal(dec("2307.70")), "lop deduction %s", res.LOPDeduction)
		assert.True(t, res.GrossSalary.Equal(dec("27692.30")), "gross %s", res.GrossSalary)

		// prorated basic 18461.53 is above the 15000 PF ceiling
		assert.True(t, res.PFEmployee.Equal(decimal.NewFromInt(1800)))
		assert.True(t, res.PFEmployer.Equal(decimal.NewFromInt(1800)))
		// gross after LOP still exceeds the 21000 ESI ceiling
		assert.True(t, res.ESIEmployee.IsZero())
		assert.True(t, res.ESIEmployer.IsZero())
		assert.True(t, res.ProfessionalTax.Equal(decimal.NewFromInt(208)))

		assert.True(t, res.TotalDeductions.Equal(decimal.NewFromInt(4825)), "deductions %s", res.TotalDeductions)
		assert.True(t, res.TotalEmployerContribution.Equal(decimal.NewFromInt(1800)))
		assert.True(t, res.NetSalary.Equal(dec("22867.30")), "net %s", res.NetSalary)
		assert.True(t, res.NetSalary.Equal(res.GrossSalary.Sub(res.TotalDeductions)))
	})

	t.Run("fractional lop rounds up to whole days", func(t *testing.T) {
		t.Parallel()
		emp := employeeInput("emp-002")
		emp.Attendance.LOPDays = dec("1.5")

		res, err := calc.CalculateEmployee(ctx, payrun.CalculateEmployeeRequest{Month: 6, Year: 2025, Employee: emp})
		require.NoError(t, err)

		assert.True(t, res.LOPDays.Equal(decimal.NewFromInt(2)))
		assert.True(t, res.LOPDeduction.Equal(dec("2307.70")))
	})

	t.Run("zero working days skips lop deduction", func(t *testing.T) {
		t.Parallel()
		emp := employeeInput("emp-003")
		emp.Attendance.WorkingDays = 0

		res, err := calc.CalculateEmployee(ctx, payrun.CalculateEmployeeRequest{Month: 6, Year: 2025, Employee: emp})
		require.NoError(t, err)

		assert.True(t, res.LOPDeduction.IsZero())
		assert.True(t, res.GrossSalary.Equal(decimal.NewFromInt(30000)))
	})

	t.Run("no lop leaves gross untouched", func(t *testing.T) {
		t.Parallel()
		emp := employeeInput("emp-004")
		emp.Attendance.LOPDays = decimal.Zero
		emp.Attendance.DaysWorked = decimal.NewFromInt(26)

		res, err := calc.CalculateEmployee(ctx, payrun.CalculateEmployeeRequest{Month: 6, Year: 2025, Employee: emp})
		require.NoError(t, err)

		assert.True(t, res.GrossSalary.Equal(decimal.NewFromInt(30000)))
		assert.True(t, res.DailyRate.IsZero())
	})

	t.Run("active loan emi joins the deductions", func(t *testing.T) {
		t.Parallel()
		amortizer := loanservice.NewAmortizer()
		tenure := 12
		l, err := amortizer.NewLoan(context.Background(), loan.ComputeEMIRequest{
			Principal:         amt(120000),
			AnnualRatePercent: amt(12),
			TenureMonths:      &tenure,
		})
		require.NoError(t, err)

		emp := employeeInput("emp-005")
		emp.Attendance.LOPDays = decimal.Zero
		emp.Loans = []loan.Loan{l}

		res, err := calc.CalculateEmployee(ctx, payrun.CalculateEmployeeRequest{Month: 6, Year: 2025, Employee: emp})
		require.NoError(t, err)

		assert.True(t, res.EMIDeduction.Equal(dec("10661.85")), "emi %s", res.EMIDeduction)
		require.Len(t, res.UpdatedLoans, 1)
		assert.True(t, res.UpdatedLoans[0].OutstandingBalance.Equal(l.OutstandingBalance.Sub(dec("10661.85"))))
		assert.Equal(t, l.PendingEMIs-1, res.UpdatedLoans[0].PendingEMIs)
		// the input loan is untouched
		assert.Equal(t, loan.LoanStatusActive, l.Status)
		assert.True(t, l.OutstandingBalance.Equal(dec("127942.20")))
	})

	t.Run("closed loans are carried through without deduction", func(t *testing.T) {
		t.Parallel()
		closed := loan.Loan{Status: loan.LoanStatusClosed}

		emp := employeeInput("emp-006")
		emp.Loans = []loan.Loan{closed}

		res, err := calc.CalculateEmployee(ctx, payrun.CalculateEmployeeRequest{Month: 6, Year: 2025, Employee: emp})
		require.NoError(t, err)

		assert.True(t, res.EMIDeduction.IsZero())
		require.Len(t, res.UpdatedLoans, 1)
		assert.Equal(t, loan.LoanStatusClosed, res.UpdatedLoans[0].Status)
	})

	t.Run("missing basic fails fast", func(t *testing.T) {
		t.Parallel()
		emp := employeeInput("emp-007")
		emp.Wage.Basic = nil

		_, err := calc.CalculateEmployee(ctx, payrun.CalculateEmployeeRequest{Month: 6, Year: 2025, Employee: emp})
		assert.Error(t, err)
	})
}

func TestCalculator_CalculateRun(t *testing.T) {
	t.Parallel()
	calc := newCalculator(t)
	ctx := context.Background()

	t.Run("results keep input order and totals reduce", func(t *testing.T) {
		t.Parallel()
		employees := make([]payrun.EmployeeInput, 0, 40)
		for i := 0; i < 40; i++ {
			emp := employeeInput(employeeID(i))
			employees = append(employees, emp)
		}

		run, err := calc.CalculateRun(ctx, payrun.CalculateRunRequest{
			Month:       6,
			Year:        2025,
			Employees:   employees,
			Concurrency: 4,
		})
		require.NoError(t, err)

		assert.NotEmpty(t, run.ID)
		assert.Equal(t, payrun.RunStatusCalculated, run.Status)
		require.Len(t, run.Results, 40)
		for i, res := range run.Results {
			assert.Equal(t, employeeID(i), res.EmployeeID)
		}

		assert.Equal(t, 40, run.Totals.Employees)
		assert.True(t, run.Totals.GrossSalary.Equal(dec("27692.30").Mul(decimal.NewFromInt(40))))
		assert.True(t, run.Totals.PFEmployee.Equal(decimal.NewFromInt(1800*40)))
		assert.True(t, run.Totals.NetSalary.Equal(run.Totals.GrossSalary.Sub(run.Totals.TotalDeductions)))
	})

	t.Run("one failing employee fails the run", func(t *testing.T) {
		t.Parallel()
		good := employeeInput("emp-ok")
		bad := employeeInput("emp-bad")
		bad.Rates.PTState = "Karnataka"
		bad.PTSlabs = []statutory.ProfessionalTaxSlab{
			{State: "Karnataka", FromAmount: decimal.NewFromInt(50000), TaxAmount: decimal.NewFromInt(200)},
		}

		_, err := calc.CalculateRun(ctx, payrun.CalculateRunRequest{
			Month:     6,
			Year:      2025,
			Employees: []payrun.EmployeeInput{good, bad},
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, payrun.ErrEmployeeFailed)
		assert.ErrorIs(t, err, statutory.ErrSlabGap)
	})

	t.Run("duplicate employee ids rejected", func(t *testing.T) {
		t.Parallel()
		_, err := calc.CalculateRun(ctx, payrun.CalculateRunRequest{
			Month:     6,
			Year:      2025,
			Employees: []payrun.EmployeeInput{employeeInput("emp-dup"), employeeInput("emp-dup")},
		})
		assert.Error(t, err)
	})

	t.Run("empty run rejected", func(t *testing.T) {
		t.Parallel()
		_, err := calc.CalculateRun(ctx, payrun.CalculateRunRequest{Month: 6, Year: 2025})
		assert.Error(t, err)
	})

	t.Run("recalculation yields identical results under a fresh id", func(t *testing.T) {
		t.Parallel()
		req := payrun.CalculateRunRequest{
			Month:     6,
			Year:      2025,
			Employees: []payrun.EmployeeInput{employeeInput("emp-001"), employeeInput("emp-002")},
		}

		first, err := calc.CalculateRun(ctx, req)
		require.NoError(t, err)
		second, err := calc.CalculateRun(ctx, req)
		require.NoError(t, err)

		assert.NotEqual(t, first.ID, second.ID)
		assert.True(t, first.Totals.NetSalary.Equal(second.Totals.NetSalary))
		for i := range first.Results {
			assert.True(t, first.Results[i].NetSalary.Equal(second.Results[i].NetSalary))
		}
	})
}

func employeeID(i int) string {
	return "emp-" + string(rune('a'+i/26)) + string(rune('a'+i%26))
}
