package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opshr/payroll-engine-go/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		Statutory: config.StatutoryConfig{
			PFEmployeeRate:  decimal.NewFromInt(12),
			PFEmployerRate:  decimal.NewFromInt(12),
			PFWageCeiling:   decimal.NewFromInt(15000),
			ESIEmployeeRate: decimal.RequireFromString("0.75"),
			ESIEmployerRate: decimal.RequireFromString("3.25"),
			ESIWageCeiling:  decimal.NewFromInt(21000),
			DefaultPTState:  "Tamil Nadu",
		},
	}
}

func writeRequestFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "run.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestReadRequest_OmittedRatesGetDefaults(t *testing.T) {
	t.Parallel()

	path := writeRequestFile(t, `{
		"Month": 6, "Year": 2025,
		"Employees": [
			{"EmployeeID": "emp-001", "Wage": {"basic": "20000", "hra": "10000"}}
		]
	}`)

	req, err := readRequest(path, testConfig())
	require.NoError(t, err)
	require.Len(t, req.Employees, 1)

	rates := req.Employees[0].Rates
	assert.True(t, rates.PFEnabled)
	assert.True(t, rates.ESIEnabled)
	assert.Equal(t, "Tamil Nadu", rates.PTState)
	assert.True(t, rates.PFWageCeiling.Equal(decimal.NewFromInt(15000)))
}

func TestReadRequest_ExplicitRatesKeptVerbatim(t *testing.T) {
	t.Parallel()

	// A tenant that deliberately disabled PF and ESI must not be
	// overwritten with the bootstrap defaults.
	path := writeRequestFile(t, `{
		"Month": 6, "Year": 2025,
		"Employees": [
			{
				"EmployeeID": "emp-001",
				"Wage": {"basic": "20000"},
				"Rates": {"PFEnabled": false, "ESIEnabled": false, "PTState": "Karnataka"}
			}
		]
	}`)

	req, err := readRequest(path, testConfig())
	require.NoError(t, err)
	require.Len(t, req.Employees, 1)

	rates := req.Employees[0].Rates
	assert.False(t, rates.PFEnabled)
	assert.False(t, rates.ESIEnabled)
	assert.Equal(t, "Karnataka", rates.PTState)
	assert.True(t, rates.PFEmployeeRate.IsZero())

	// Slab seeding still follows the employee's own state.
	require.NotEmpty(t, req.Employees[0].PTSlabs)
	assert.Equal(t, "Karnataka", req.Employees[0].PTSlabs[0].State)
}
