package report

import (
	"github.com/abcco/payroll-backend-go/internal/domain/payroll"
	"github.com/abcco/payroll-backend-go/internal/domain/timeentry"
	"github.com/shopspring/decimal"
)

// SummaryTotals aggregates every detail in a period. Employer taxes are
// included so the report covers the company's full payroll cost.
type SummaryTotals struct {
	EmployeeCount int64

	RegularHours  decimal.Decimal
	OvertimeHours decimal.Decimal
	WeekendHours  decimal.Decimal
	PTOHours      decimal.Decimal
	TotalHours    decimal.Decimal

	GrossPay           decimal.Decimal
	DependentStipends  decimal.Decimal
	MedicalDeductions  decimal.Decimal
	TotalEmployeeTaxes decimal.Decimal
	TotalEmployerTaxes decimal.Decimal
	NetPay             decimal.Decimal
}

type PeriodSummaryResponse struct {
	Period payroll.PayPeriodResponse `json:"period"`

	EmployeeCount int64 `json:"employee_count"`

	RegularHours  decimal.Decimal `json:"regular_hours"`
	OvertimeHours decimal.Decimal `json:"overtime_hours"`
	WeekendHours  decimal.Decimal `json:"weekend_hours"`
	PTOHours      decimal.Decimal `json:"pto_hours"`
	TotalHours    decimal.Decimal `json:"total_hours"`

	GrossPay           decimal.Decimal `json:"gross_pay"`
	DependentStipends  decimal.Decimal `json:"dependent_stipends"`
	MedicalDeductions  decimal.Decimal `json:"medical_deductions"`
	TotalEmployeeTaxes decimal.Decimal `json:"total_employee_taxes"`
	TotalEmployerTaxes decimal.Decimal `json:"total_employer_taxes"`
	NetPay             decimal.Decimal `json:"net_pay"`
}

// WeeklySummaryResponse rolls one employee's entries for a week up into
// reporting buckets. The regular/overtime split here uses the weekly
// 40-hour standard and is for reporting only; the pay calculation uses the
// daily threshold instead.
type WeeklySummaryResponse struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`

	Entries []timeentry.TimeEntryResponse `json:"entries"`

	WorkedHours   decimal.Decimal `json:"worked_hours"`
	WeekendHours  decimal.Decimal `json:"weekend_hours"`
	PTOHours      decimal.Decimal `json:"pto_hours"`
	RegularHours  decimal.Decimal `json:"regular_hours"`
	OvertimeHours decimal.Decimal `json:"overtime_hours"`
	TotalHours    decimal.Decimal `json:"total_hours"`
}
