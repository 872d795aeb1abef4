package report

import (
	"context"
	"time"

	"github.com/abcco/payroll-backend-go/internal/domain/payroll"
)

// ReportService defines read-only projections over computed payroll data.
type ReportService interface {
	// PeriodSummary aggregates hour and money totals over a period's details
	PeriodSummary(ctx context.Context, periodID int64) (PeriodSummaryResponse, error)

	// EmployeeWeeklySummary rolls one employee's week of entries up into
	// reporting buckets, using the weekly-hours split.
	EmployeeWeeklySummary(ctx context.Context, employeeID string, start, end time.Time) (WeeklySummaryResponse, error)

	// PayrollHistory lists an employee's details, most recent first
	PayrollHistory(ctx context.Context, employeeID string, limit int) ([]payroll.PayrollDetailResponse, error)
}
