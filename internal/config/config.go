package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	SMTP     SMTPConfig
	Payroll  PayrollConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	FrontendURL string
}

// SMTPConfig holds outbound mail configuration. Mail sending is disabled
// when Host is empty.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	FromName string
}

func (c SMTPConfig) Enabled() bool {
	return c.Host != "" && c.From != ""
}

// PayrollConfig carries every rate and threshold the pay calculation uses.
// Defaults match the company's current jurisdiction; all are overridable
// through the environment so rates can change without a rebuild.
type PayrollConfig struct {
	StateTaxRate       decimal.Decimal
	FederalTaxRate     decimal.Decimal
	SocialSecurityRate decimal.Decimal
	MedicareRate       decimal.Decimal

	OvertimeMultiplier decimal.Decimal
	WeekendMultiplier  decimal.Decimal

	DailyOvertimeThreshold decimal.Decimal
	MaxHoursPerDay         decimal.Decimal
	MaxPTOHoursPerDay      decimal.Decimal
	StandardWeeklyHours    decimal.Decimal
	SalariedAutoHours      decimal.Decimal
	WeeksPerYear           int64

	MedicalSingle    decimal.Decimal
	MedicalFamily    decimal.Decimal
	DependentStipend decimal.Decimal

	MaxPTOBalance  decimal.Decimal
	MinEmployeeAge int
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Warn("No .env file found, using environment variables")
	}

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "abcco-payroll"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "8h"),
	}

	// SMTP configuration (optional)
	smtpPort, err := strconv.Atoi(getEnv("SMTP_PORT", "587"))
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP_PORT: %w", err)
	}

	config.SMTP = SMTPConfig{
		Host:     getEnv("SMTP_HOST", ""),
		Port:     smtpPort,
		Username: getEnv("SMTP_USERNAME", ""),
		Password: getEnv("SMTP_PASSWORD", ""),
		From:     getEnv("SMTP_FROM", ""),
		FromName: getEnv("SMTP_FROM_NAME", "Abcco Payroll"),
	}

	// Payroll configuration
	payrollCfg, err := loadPayrollConfig()
	if err != nil {
		return nil, err
	}
	config.Payroll = payrollCfg

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

func loadPayrollConfig() (PayrollConfig, error) {
	cfg := PayrollConfig{}

	fields := []struct {
		dst      *decimal.Decimal
		key      string
		fallback string
	}{
		{&cfg.StateTaxRate, "PAYROLL_STATE_TAX_RATE", "0.0315"},
		{&cfg.FederalTaxRate, "PAYROLL_FEDERAL_TAX_RATE", "0.0765"},
		{&cfg.SocialSecurityRate, "PAYROLL_SOCIAL_SECURITY_RATE", "0.062"},
		{&cfg.MedicareRate, "PAYROLL_MEDICARE_RATE", "0.0145"},
		{&cfg.OvertimeMultiplier, "PAYROLL_OVERTIME_MULTIPLIER", "1.5"},
		{&cfg.WeekendMultiplier, "PAYROLL_WEEKEND_MULTIPLIER", "1.5"},
		{&cfg.DailyOvertimeThreshold, "PAYROLL_DAILY_OVERTIME_THRESHOLD", "8"},
		{&cfg.MaxHoursPerDay, "PAYROLL_MAX_HOURS_PER_DAY", "24"},
		{&cfg.MaxPTOHoursPerDay, "PAYROLL_MAX_PTO_HOURS_PER_DAY", "8"},
		{&cfg.StandardWeeklyHours, "PAYROLL_STANDARD_WEEKLY_HOURS", "40"},
		{&cfg.SalariedAutoHours, "PAYROLL_SALARIED_AUTO_HOURS", "8"},
		{&cfg.MedicalSingle, "PAYROLL_MEDICAL_SINGLE", "50.00"},
		{&cfg.MedicalFamily, "PAYROLL_MEDICAL_FAMILY", "100.00"},
		{&cfg.DependentStipend, "PAYROLL_DEPENDENT_STIPEND", "45.00"},
		{&cfg.MaxPTOBalance, "PAYROLL_MAX_PTO_BALANCE", "80"},
	}

	for _, f := range fields {
		value, err := decimal.NewFromString(getEnv(f.key, f.fallback))
		if err != nil {
			return PayrollConfig{}, fmt.Errorf("invalid %s: %w", f.key, err)
		}
		*f.dst = value
	}

	weeksPerYear, err := strconv.ParseInt(getEnv("PAYROLL_WEEKS_PER_YEAR", "52"), 10, 64)
	if err != nil {
		return PayrollConfig{}, fmt.Errorf("invalid PAYROLL_WEEKS_PER_YEAR: %w", err)
	}
	cfg.WeeksPerYear = weeksPerYear

	minAge, err := strconv.Atoi(getEnv("PAYROLL_MIN_EMPLOYEE_AGE", "18"))
	if err != nil {
		return PayrollConfig{}, fmt.Errorf("invalid PAYROLL_MIN_EMPLOYEE_AGE: %w", err)
	}
	cfg.MinEmployeeAge = minAge

	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Payroll.WeeksPerYear <= 0 {
		return fmt.Errorf("PAYROLL_WEEKS_PER_YEAR must be positive")
	}
	if c.Payroll.DailyOvertimeThreshold.IsNegative() || c.Payroll.DailyOvertimeThreshold.GreaterThan(c.Payroll.MaxHoursPerDay) {
		return fmt.Errorf("PAYROLL_DAILY_OVERTIME_THRESHOLD must be between 0 and PAYROLL_MAX_HOURS_PER_DAY")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
