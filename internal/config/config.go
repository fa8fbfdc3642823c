package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	App       AppConfig
	Statutory StatutoryConfig
	Payroll   PayrollConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Env      string
	LogLevel string
}

// StatutoryConfig carries the default rates a tenant inherits until it
// sets its own. The values track the current EPF and ESIC notifications.
type StatutoryConfig struct {
	PFEmployeeRate  decimal.Decimal
	PFEmployerRate  decimal.Decimal
	PFWageCeiling   decimal.Decimal
	ESIEmployeeRate decimal.Decimal
	ESIEmployerRate decimal.Decimal
	ESIWageCeiling  decimal.Decimal
	DefaultPTState  string
}

// PayrollConfig holds pay-run defaults.
type PayrollConfig struct {
	WeekendPolicy  string
	RunConcurrency int
}

func Load() (*Config, error) {
	// A missing .env is fine; the environment may carry everything.
	_ = godotenv.Load()

	config := &Config{}

	config.App = AppConfig{
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	statutory, err := loadStatutory()
	if err != nil {
		return nil, err
	}
	config.Statutory = statutory

	runConcurrency, err := getEnvInt("PAYRUN_CONCURRENCY", 0)
	if err != nil {
		return nil, err
	}
	config.Payroll = PayrollConfig{
		WeekendPolicy:  getEnv("WEEKEND_POLICY", "SECOND_FOURTH_SATURDAY"),
		RunConcurrency: runConcurrency,
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

func loadStatutory() (StatutoryConfig, error) {
	cfg := StatutoryConfig{
		DefaultPTState: getEnv("PT_STATE", "Tamil Nadu"),
	}

	rates := []struct {
		key      string
		fallback string
		dst      *decimal.Decimal
	}{
		{"PF_EMPLOYEE_RATE", "12", &cfg.PFEmployeeRate},
		{"PF_EMPLOYER_RATE", "12", &cfg.PFEmployerRate},
		{"PF_WAGE_CEILING", "15000", &cfg.PFWageCeiling},
		{"ESI_EMPLOYEE_RATE", "0.75", &cfg.ESIEmployeeRate},
		{"ESI_EMPLOYER_RATE", "3.25", &cfg.ESIEmployerRate},
		{"ESI_WAGE_CEILING", "21000", &cfg.ESIWageCeiling},
	}
	for _, r := range rates {
		v, err := decimal.NewFromString(getEnv(r.key, r.fallback))
		if err != nil {
			return StatutoryConfig{}, fmt.Errorf("invalid %s: %w", r.key, err)
		}
		*r.dst = v
	}
	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	negatives := map[string]decimal.Decimal{
		"PF_EMPLOYEE_RATE":  c.Statutory.PFEmployeeRate,
		"PF_EMPLOYER_RATE":  c.Statutory.PFEmployerRate,
		"PF_WAGE_CEILING":   c.Statutory.PFWageCeiling,
		"ESI_EMPLOYEE_RATE": c.Statutory.ESIEmployeeRate,
		"ESI_EMPLOYER_RATE": c.Statutory.ESIEmployerRate,
		"ESI_WAGE_CEILING":  c.Statutory.ESIWageCeiling,
	}
	for key, v := range negatives {
		if v.IsNegative() {
			return fmt.Errorf("%s must be non-negative", key)
		}
	}
	if c.Payroll.RunConcurrency < 0 {
		return fmt.Errorf("PAYRUN_CONCURRENCY must be non-negative")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}
