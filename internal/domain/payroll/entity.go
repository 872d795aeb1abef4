package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// PeriodDays is the length of a pay period; periods always run Monday through
// the following Sunday.
const PeriodDays = 7

// PayPeriod - one Monday-to-Sunday payroll window
type PayPeriod struct {
	ID          int64
	StartDate   time.Time // Monday
	EndDate     time.Time // Sunday, start + 6 days
	IsLocked    bool
	ProcessedAt *time.Time
	ProcessedBy *string
	CreatedAt   time.Time
}

// PayrollDetail - the computed paycheck for one employee in one period
type PayrollDetail struct {
	ID         int64
	PayrollID  int64
	EmployeeID string

	// Hour buckets
	RegularHours  decimal.Decimal
	OvertimeHours decimal.Decimal
	WeekendHours  decimal.Decimal
	PTOHours      decimal.Decimal
	TotalHours    decimal.Decimal

	// Pay buckets
	BasePay          decimal.Decimal
	OvertimePay      decimal.Decimal
	WeekendPay       decimal.Decimal
	DependentStipend decimal.Decimal
	GrossPay         decimal.Decimal

	// Deductions and taxes
	MedicalDeduction   decimal.Decimal
	TaxableIncome      decimal.Decimal
	StateTax           decimal.Decimal
	FederalTax         decimal.Decimal
	SocialSecurityTax  decimal.Decimal
	MedicareTax        decimal.Decimal
	TotalEmployeeTaxes decimal.Decimal
	NetPay             decimal.Decimal

	// Employer contributions (reporting only, do not reduce net pay)
	EmployerFederalTax        decimal.Decimal
	EmployerSocialSecurityTax decimal.Decimal
	EmployerMedicareTax       decimal.Decimal
	TotalEmployerTaxes        decimal.Decimal

	CalculatedAt time.Time

	// Joined fields
	EmployeeName    *string
	PeriodStartDate *time.Time
	PeriodEndDate   *time.Time
}

// PayBreakdown is the calculator's hour and pay result before stipends,
// deductions, and taxes are applied.
type PayBreakdown struct {
	RegularHours  decimal.Decimal
	OvertimeHours decimal.Decimal
	WeekendHours  decimal.Decimal
	PTOHours      decimal.Decimal
	TotalHours    decimal.Decimal

	BasePay     decimal.Decimal
	OvertimePay decimal.Decimal
	WeekendPay  decimal.Decimal
	GrossPay    decimal.Decimal
}

// TaxBreakdown carries the six flat-rate withholding amounts. Employee-side
// amounts reduce net pay; employer-side amounts are tracked for reporting.
type TaxBreakdown struct {
	StateTax           decimal.Decimal
	FederalTax         decimal.Decimal
	SocialSecurityTax  decimal.Decimal
	MedicareTax        decimal.Decimal
	TotalEmployeeTaxes decimal.Decimal

	EmployerFederalTax        decimal.Decimal
	EmployerSocialSecurityTax decimal.Decimal
	EmployerMedicareTax       decimal.Decimal
	TotalEmployerTaxes        decimal.Decimal
}

// PeriodForDate returns the Monday-to-Sunday window containing date.
func PeriodForDate(date time.Time) (start, end time.Time) {
	// time.Weekday numbers Sunday as 0; shift so Monday is the week anchor.
	daysSinceMonday := (int(date.Weekday()) + 6) % 7
	start = time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location()).
		AddDate(0, 0, -daysSinceMonday)
	end = start.AddDate(0, 0, PeriodDays-1)
	return start, end
}

// CurrentPeriod returns the window containing today in server-local time.
func CurrentPeriod() (start, end time.Time) {
	return PeriodForDate(time.Now())
}

// IsValidPeriod reports whether (start, end) is a Monday followed by the
// Sunday six days later.
func IsValidPeriod(start, end time.Time) bool {
	return start.Weekday() == time.Monday && end.Equal(start.AddDate(0, 0, PeriodDays-1))
}
