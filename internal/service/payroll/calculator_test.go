package payroll

import (
	"testing"
	"time"

	"github.com/abcco/payroll-backend-go/internal/domain/employee"
	"github.com/abcco/payroll-backend-go/internal/domain/timeentry"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCalculatorConfig() CalculatorConfig {
	return CalculatorConfig{
		StateTaxRate:           decimal.RequireFromString("0.0315"),
		FederalTaxRate:         decimal.RequireFromString("0.0765"),
		SocialSecurityRate:     decimal.RequireFromString("0.062"),
		MedicareRate:           decimal.RequireFromString("0.0145"),
		OvertimeMultiplier:     decimal.RequireFromString("1.5"),
		WeekendMultiplier:      decimal.RequireFromString("1.5"),
		DailyOvertimeThreshold: decimal.NewFromInt(8),
		StandardWeeklyHours:    decimal.NewFromInt(40),
		WeeksPerYear:           52,
		MedicalSingle:          decimal.RequireFromString("50.00"),
		MedicalFamily:          decimal.RequireFromString("100.00"),
		DependentStipend:       decimal.RequireFromString("45.00"),
	}
}

// Monday and Saturday of the same week
var (
	testMonday   = time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	testTuesday  = time.Date(2026, 1, 6, 0, 0, 0, 0, time.UTC)
	testSaturday = time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
)

func entry(date time.Time, worked, pto string) timeentry.TimeEntry {
	return timeentry.NewEntry("E001", date,
		decimal.RequireFromString(worked),
		decimal.RequireFromString(pto),
		"")
}

func TestCalculateSalaryPay(t *testing.T) {
	calc := NewCalculator(testCalculatorConfig())

	breakdown := calc.CalculateSalaryPay(decimal.NewFromInt(78000))

	assert.True(t, breakdown.BasePay.Equal(decimal.RequireFromString("1500.00")), "base pay: %s", breakdown.BasePay)
	assert.True(t, breakdown.GrossPay.Equal(decimal.RequireFromString("1500.00")), "gross pay: %s", breakdown.GrossPay)
	assert.True(t, breakdown.RegularHours.Equal(decimal.NewFromInt(40)))
	assert.True(t, breakdown.TotalHours.Equal(decimal.NewFromInt(40)))
	assert.True(t, breakdown.OvertimeHours.IsZero())
	assert.True(t, breakdown.WeekendHours.IsZero())
}

func TestCalculateSalaryPay_RoundsToCents(t *testing.T) {
	calc := NewCalculator(testCalculatorConfig())

	// 50000/52 = 961.538461... rounds half-up to 961.54
	breakdown := calc.CalculateSalaryPay(decimal.NewFromInt(50000))

	assert.True(t, breakdown.BasePay.Equal(decimal.RequireFromString("961.54")), "base pay: %s", breakdown.BasePay)
}

func TestCalculateHourlyPay(t *testing.T) {
	calc := NewCalculator(testCalculatorConfig())
	rate := decimal.NewFromInt(20)

	tests := []struct {
		name     string
		entries  []timeentry.TimeEntry
		regular  string
		overtime string
		weekend  string
		pto      string
		base     string
		otPay    string
		wkndPay  string
		gross    string
	}{
		{
			name:    "under daily threshold is all regular",
			entries: []timeentry.TimeEntry{entry(testMonday, "6", "0")},
			regular: "6", overtime: "0", weekend: "0", pto: "0",
			base: "120.00", otPay: "0.00", wkndPay: "0.00", gross: "120.00",
		},
		{
			name:    "ten weekday hours split at the daily threshold",
			entries: []timeentry.TimeEntry{entry(testMonday, "10", "0")},
			regular: "8", overtime: "2", weekend: "0", pto: "0",
			base: "160.00", otPay: "60.00", wkndPay: "0.00", gross: "220.00",
		},
		{
			name:    "weekend hours all priced at the weekend multiplier",
			entries: []timeentry.TimeEntry{entry(testSaturday, "10", "0")},
			regular: "0", overtime: "0", weekend: "10", pto: "0",
			base: "0.00", otPay: "0.00", wkndPay: "300.00", gross: "300.00",
		},
		{
			name: "pto paid at the plain rate alongside worked hours",
			entries: []timeentry.TimeEntry{
				entry(testMonday, "8", "0"),
				entry(testTuesday, "0", "8"),
			},
			regular: "8", overtime: "0", weekend: "0", pto: "8",
			base: "320.00", otPay: "0.00", wkndPay: "0.00", gross: "320.00",
		},
		{
			name: "mixed week buckets independently",
			entries: []timeentry.TimeEntry{
				entry(testMonday, "10", "0"),
				entry(testTuesday, "8", "0"),
				entry(testSaturday, "4", "0"),
			},
			regular: "16", overtime: "2", weekend: "4", pto: "0",
			base: "320.00", otPay: "60.00", wkndPay: "120.00", gross: "500.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			breakdown := calc.CalculateHourlyPay(tt.entries, rate)

			assert.True(t, breakdown.RegularHours.Equal(decimal.RequireFromString(tt.regular)), "regular hours: %s", breakdown.RegularHours)
			assert.True(t, breakdown.OvertimeHours.Equal(decimal.RequireFromString(tt.overtime)), "overtime hours: %s", breakdown.OvertimeHours)
			assert.True(t, breakdown.WeekendHours.Equal(decimal.RequireFromString(tt.weekend)), "weekend hours: %s", breakdown.WeekendHours)
			assert.True(t, breakdown.PTOHours.Equal(decimal.RequireFromString(tt.pto)), "pto hours: %s", breakdown.PTOHours)
			assert.True(t, breakdown.BasePay.Equal(decimal.RequireFromString(tt.base)), "base pay: %s", breakdown.BasePay)
			assert.True(t, breakdown.OvertimePay.Equal(decimal.RequireFromString(tt.otPay)), "overtime pay: %s", breakdown.OvertimePay)
			assert.True(t, breakdown.WeekendPay.Equal(decimal.RequireFromString(tt.wkndPay)), "weekend pay: %s", breakdown.WeekendPay)
			assert.True(t, breakdown.GrossPay.Equal(decimal.RequireFromString(tt.gross)), "gross pay: %s", breakdown.GrossPay)

			// Gross is always the exact sum of the priced buckets
			sum := breakdown.BasePay.Add(breakdown.OvertimePay).Add(breakdown.WeekendPay)
			assert.True(t, breakdown.GrossPay.Equal(sum))
		})
	}
}

func TestCalculateDependentStipend(t *testing.T) {
	calc := NewCalculator(testCalculatorConfig())

	assert.True(t, calc.CalculateDependentStipend(0).IsZero())
	assert.True(t, calc.CalculateDependentStipend(-1).IsZero())
	assert.True(t, calc.CalculateDependentStipend(1).Equal(decimal.RequireFromString("45.00")))
	assert.True(t, calc.CalculateDependentStipend(3).Equal(decimal.RequireFromString("135.00")))
}

func TestCalculateMedicalDeduction(t *testing.T) {
	calc := NewCalculator(testCalculatorConfig())

	assert.True(t, calc.CalculateMedicalDeduction(employee.MedicalPlanSingle).Equal(decimal.RequireFromString("50.00")))
	assert.True(t, calc.CalculateMedicalDeduction(employee.MedicalPlanFamily).Equal(decimal.RequireFromString("100.00")))
}

func TestCalculateTaxes(t *testing.T) {
	calc := NewCalculator(testCalculatorConfig())

	taxes := calc.CalculateTaxes(decimal.NewFromInt(1450))

	assert.True(t, taxes.StateTax.Equal(decimal.RequireFromString("45.6750")), "state tax: %s", taxes.StateTax)
	assert.True(t, taxes.FederalTax.Equal(decimal.RequireFromString("110.9250")), "federal tax: %s", taxes.FederalTax)
	assert.True(t, taxes.SocialSecurityTax.Equal(decimal.RequireFromString("89.90")), "social security tax: %s", taxes.SocialSecurityTax)
	assert.True(t, taxes.MedicareTax.Equal(decimal.RequireFromString("21.0250")), "medicare tax: %s", taxes.MedicareTax)
	assert.True(t, taxes.TotalEmployeeTaxes.Equal(decimal.RequireFromString("267.5250")), "total employee taxes: %s", taxes.TotalEmployeeTaxes)

	// Employer side mirrors federal, social security, and medicare
	assert.True(t, taxes.EmployerFederalTax.Equal(taxes.FederalTax))
	assert.True(t, taxes.EmployerSocialSecurityTax.Equal(taxes.SocialSecurityTax))
	assert.True(t, taxes.EmployerMedicareTax.Equal(taxes.MedicareTax))
	assert.True(t, taxes.TotalEmployerTaxes.Equal(decimal.RequireFromString("221.8500")), "total employer taxes: %s", taxes.TotalEmployerTaxes)
}

func TestCalculateNetPay(t *testing.T) {
	calc := NewCalculator(testCalculatorConfig())

	taxable, net := calc.CalculateNetPay(
		decimal.RequireFromString("1500.00"),
		decimal.RequireFromString("50.00"),
		decimal.RequireFromString("267.5250"),
	)

	assert.True(t, taxable.Equal(decimal.RequireFromString("1450.00")), "taxable income: %s", taxable)
	// 1450 - 267.525 = 1182.475, which rounds half-up to 1182.48
	assert.True(t, net.Equal(decimal.RequireFromString("1182.48")), "net pay: %s", net)
}

// Full salaried scenario: $78,000 annual, single medical, no dependents.
func TestSalariedWeeklyScenario(t *testing.T) {
	calc := NewCalculator(testCalculatorConfig())

	breakdown := calc.CalculateSalaryPay(decimal.NewFromInt(78000))
	stipend := calc.CalculateDependentStipend(0)
	medical := calc.CalculateMedicalDeduction(employee.MedicalPlanSingle)

	gross := breakdown.GrossPay.Add(stipend)
	require.True(t, gross.Equal(decimal.RequireFromString("1500.00")))

	taxes := calc.CalculateTaxes(gross.Sub(medical))
	taxable, net := calc.CalculateNetPay(gross, medical, taxes.TotalEmployeeTaxes)

	assert.True(t, taxable.Equal(decimal.RequireFromString("1450.00")), "taxable income: %s", taxable)
	assert.True(t, net.Equal(decimal.RequireFromString("1182.48")), "net pay: %s", net)
}

// Full hourly scenario: $20/hr, one ten-hour weekday, single medical.
func TestHourlyTenHourDayScenario(t *testing.T) {
	calc := NewCalculator(testCalculatorConfig())

	breakdown := calc.CalculateHourlyPay([]timeentry.TimeEntry{entry(testMonday, "10", "0")}, decimal.NewFromInt(20))
	medical := calc.CalculateMedicalDeduction(employee.MedicalPlanSingle)

	require.True(t, breakdown.GrossPay.Equal(decimal.RequireFromString("220.00")))

	taxes := calc.CalculateTaxes(breakdown.GrossPay.Sub(medical))
	taxable, net := calc.CalculateNetPay(breakdown.GrossPay, medical, taxes.TotalEmployeeTaxes)

	assert.True(t, taxable.Equal(decimal.RequireFromString("170.00")), "taxable income: %s", taxable)
	// 170 * (0.0315+0.0765+0.062+0.0145) = 31.3650 withheld
	assert.True(t, taxes.TotalEmployeeTaxes.Equal(decimal.RequireFromString("31.3650")), "total employee taxes: %s", taxes.TotalEmployeeTaxes)
	assert.True(t, net.Equal(decimal.RequireFromString("138.64")), "net pay: %s", net)
}
