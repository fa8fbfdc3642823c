// Command payrollrun calculates a monthly pay run from a JSON request
// on stdin or a file and writes the calculated run to stdout.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/opshr/payroll-engine-go/internal/config"
	"github.com/opshr/payroll-engine-go/internal/domain/payrun"
	"github.com/opshr/payroll-engine-go/internal/domain/statutory"
	"github.com/opshr/payroll-engine-go/internal/fixtures"
	loanService "github.com/opshr/payroll-engine-go/internal/service/loan"
	payrunService "github.com/opshr/payroll-engine-go/internal/service/payrun"
	statutoryService "github.com/opshr/payroll-engine-go/internal/service/statutory"
)

func main() {
	inputPath := flag.String("input", "-", "pay run request JSON file, - for stdin")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error loading config:", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel(cfg.App.LogLevel),
	}))

	req, err := readRequest(*inputPath, cfg)
	if err != nil {
		logger.Error("read request", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if req.Concurrency == 0 {
		req.Concurrency = cfg.Payroll.RunConcurrency
	}

	calculator := payrunService.NewCalculator(
		statutoryService.NewCalculator(),
		loanService.NewAmortizer(),
		logger,
	)

	run, err := calculator.CalculateRun(context.Background(), req)
	if err != nil {
		logger.Error("calculate run", slog.String("error", err.Error()))
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(run); err != nil {
		logger.Error("encode run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// employeeDocument is the wire form of one employee. Rates is a pointer
// so an omitted key means "use the bootstrap defaults" while a present
// key, even one disabling PF and ESI, is taken verbatim.
type employeeDocument struct {
	payrun.EmployeeInput
	Rates *statutory.RateConfig
}

type runDocument struct {
	Month       int
	Year        int
	Concurrency int
	Employees   []employeeDocument
}

func readRequest(path string, cfg *config.Config) (payrun.CalculateRunRequest, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return payrun.CalculateRunRequest{}, err
		}
		defer f.Close()
		r = f
	}
	var doc runDocument
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return payrun.CalculateRunRequest{}, fmt.Errorf("decode request: %w", err)
	}

	req := payrun.CalculateRunRequest{
		Month:       doc.Month,
		Year:        doc.Year,
		Concurrency: doc.Concurrency,
		Employees:   make([]payrun.EmployeeInput, 0, len(doc.Employees)),
	}
	for _, e := range doc.Employees {
		emp := e.EmployeeInput
		if e.Rates != nil {
			emp.Rates = *e.Rates
		} else {
			emp.Rates = fixtures.DefaultRateConfig(cfg.Statutory)
		}
		if len(emp.PTSlabs) == 0 {
			emp.PTSlabs = fixtures.ProfessionalTaxSlabs(emp.Rates.PTState)
		}
		req.Employees = append(req.Employees, emp)
	}
	return req, nil
}

func logLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
