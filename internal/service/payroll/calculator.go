package payroll

import (
	"github.com/abcco/payroll-backend-go/internal/config"
	"github.com/abcco/payroll-backend-go/internal/domain/employee"
	"github.com/abcco/payroll-backend-go/internal/domain/payroll"
	"github.com/abcco/payroll-backend-go/internal/domain/timeentry"
	"github.com/shopspring/decimal"
)

// Rounding scales. Tax amounts are carried at four decimals through the six
// independent computations so their sum doesn't accumulate cent-level drift;
// only the externally visible figures (pay subtotals, taxable income, net
// pay) are snapped to currency. decimal.Round is half-away-from-zero, which
// for these non-negative amounts is the traditional half-up rounding.
const (
	currencyScale = 2
	taxScale      = 4
)

// CalculatorConfig carries the rates and thresholds the calculator applies.
type CalculatorConfig struct {
	StateTaxRate       decimal.Decimal
	FederalTaxRate     decimal.Decimal
	SocialSecurityRate decimal.Decimal
	MedicareRate       decimal.Decimal

	OvertimeMultiplier decimal.Decimal
	WeekendMultiplier  decimal.Decimal

	DailyOvertimeThreshold decimal.Decimal
	StandardWeeklyHours    decimal.Decimal
	WeeksPerYear           int64

	MedicalSingle    decimal.Decimal
	MedicalFamily    decimal.Decimal
	DependentStipend decimal.Decimal
}

// CalculatorConfigFrom derives the calculator's view of the payroll config.
func CalculatorConfigFrom(cfg config.PayrollConfig) CalculatorConfig {
	return CalculatorConfig{
		StateTaxRate:           cfg.StateTaxRate,
		FederalTaxRate:         cfg.FederalTaxRate,
		SocialSecurityRate:     cfg.SocialSecurityRate,
		MedicareRate:           cfg.MedicareRate,
		OvertimeMultiplier:     cfg.OvertimeMultiplier,
		WeekendMultiplier:      cfg.WeekendMultiplier,
		DailyOvertimeThreshold: cfg.DailyOvertimeThreshold,
		StandardWeeklyHours:    cfg.StandardWeeklyHours,
		WeeksPerYear:           cfg.WeeksPerYear,
		MedicalSingle:          cfg.MedicalSingle,
		MedicalFamily:          cfg.MedicalFamily,
		DependentStipend:       cfg.DependentStipend,
	}
}

// Calculator turns hours and compensation terms into pay, deduction, and tax
// amounts. Pure functions over its inputs; no storage, no clock.
type Calculator struct {
	cfg CalculatorConfig
}

func NewCalculator(cfg CalculatorConfig) *Calculator {
	return &Calculator{cfg: cfg}
}

// CalculateHourlyPay buckets a week of entries and prices each bucket.
// Weekend entries send every worked hour to the weekend bucket at the
// weekend multiplier, with no overtime split; weekday entries split at the
// daily threshold. PTO hours from all entries are paid at the plain rate.
func (c *Calculator) CalculateHourlyPay(entries []timeentry.TimeEntry, hourlyRate decimal.Decimal) payroll.PayBreakdown {
	var regular, overtime, weekend, pto decimal.Decimal

	for _, entry := range entries {
		pto = pto.Add(entry.PTOHours)
		if entry.IsWeekend {
			weekend = weekend.Add(entry.HoursWorked)
			continue
		}
		regular = regular.Add(entry.RegularHours(c.cfg.DailyOvertimeThreshold))
		overtime = overtime.Add(entry.OvertimeHours(c.cfg.DailyOvertimeThreshold))
	}

	basePay := regular.Add(pto).Mul(hourlyRate).Round(currencyScale)
	overtimePay := overtime.Mul(hourlyRate).Mul(c.cfg.OvertimeMultiplier).Round(currencyScale)
	weekendPay := weekend.Mul(hourlyRate).Mul(c.cfg.WeekendMultiplier).Round(currencyScale)

	return payroll.PayBreakdown{
		RegularHours:  regular,
		OvertimeHours: overtime,
		WeekendHours:  weekend,
		PTOHours:      pto,
		TotalHours:    regular.Add(overtime).Add(weekend).Add(pto),
		BasePay:       basePay,
		OvertimePay:   overtimePay,
		WeekendPay:    weekendPay,
		GrossPay:      basePay.Add(overtimePay).Add(weekendPay),
	}
}

// CalculateSalaryPay is the flat weekly slice of an annual salary at the
// standard weekly hours. Salaried employees' time entries are informational
// only and never change this amount.
func (c *Calculator) CalculateSalaryPay(annualSalary decimal.Decimal) payroll.PayBreakdown {
	weeklyPay := annualSalary.Div(decimal.NewFromInt(c.cfg.WeeksPerYear)).Round(currencyScale)

	return payroll.PayBreakdown{
		RegularHours: c.cfg.StandardWeeklyHours,
		TotalHours:   c.cfg.StandardWeeklyHours,
		BasePay:      weeklyPay,
		GrossPay:     weeklyPay,
	}
}

// CalculateDependentStipend is a flat per-dependent addition to gross pay.
func (c *Calculator) CalculateDependentStipend(numDependents int) decimal.Decimal {
	if numDependents <= 0 {
		return decimal.Zero
	}
	return c.cfg.DependentStipend.Mul(decimal.NewFromInt(int64(numDependents)))
}

// CalculateMedicalDeduction is a flat per-period pre-tax amount by plan.
func (c *Calculator) CalculateMedicalDeduction(plan employee.MedicalPlan) decimal.Decimal {
	if plan == employee.MedicalPlanFamily {
		return c.cfg.MedicalFamily
	}
	return c.cfg.MedicalSingle
}

// CalculateTaxes applies the six flat rates to taxable income. Employer
// contributions mirror the federal, social security, and medicare rates and
// are reported alongside withholding without reducing net pay.
func (c *Calculator) CalculateTaxes(taxableIncome decimal.Decimal) payroll.TaxBreakdown {
	stateTax := taxableIncome.Mul(c.cfg.StateTaxRate).Round(taxScale)
	federalTax := taxableIncome.Mul(c.cfg.FederalTaxRate).Round(taxScale)
	socialSecurityTax := taxableIncome.Mul(c.cfg.SocialSecurityRate).Round(taxScale)
	medicareTax := taxableIncome.Mul(c.cfg.MedicareRate).Round(taxScale)

	employerFederal := taxableIncome.Mul(c.cfg.FederalTaxRate).Round(taxScale)
	employerSocialSecurity := taxableIncome.Mul(c.cfg.SocialSecurityRate).Round(taxScale)
	employerMedicare := taxableIncome.Mul(c.cfg.MedicareRate).Round(taxScale)

	return payroll.TaxBreakdown{
		StateTax:           stateTax,
		FederalTax:         federalTax,
		SocialSecurityTax:  socialSecurityTax,
		MedicareTax:        medicareTax,
		TotalEmployeeTaxes: stateTax.Add(federalTax).Add(socialSecurityTax).Add(medicareTax).Round(taxScale),

		EmployerFederalTax:        employerFederal,
		EmployerSocialSecurityTax: employerSocialSecurity,
		EmployerMedicareTax:       employerMedicare,
		TotalEmployerTaxes:        employerFederal.Add(employerSocialSecurity).Add(employerMedicare).Round(taxScale),
	}
}

// CalculateNetPay derives the two currency-facing figures: taxable income
// (gross minus the medical deduction) and net pay (taxable income minus
// total employee withholding), both rounded half-up to cents.
func (c *Calculator) CalculateNetPay(grossPay, medicalDeduction, totalEmployeeTaxes decimal.Decimal) (taxableIncome, netPay decimal.Decimal) {
	taxableIncome = grossPay.Sub(medicalDeduction).Round(currencyScale)
	netPay = taxableIncome.Sub(totalEmployeeTaxes).Round(currencyScale)
	return taxableIncome, netPay
}
