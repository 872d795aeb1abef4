package payroll

import (
	"context"
	"time"
)

// PayrollService defines business logic for pay periods, payroll
// calculation, and approval.
type PayrollService interface {
	// CalculateWeeklyPay calculates (or recalculates) one employee's pay for
	// a period. When the period is locked and a detail already exists, the
	// stored detail is returned unchanged.
	CalculateWeeklyPay(ctx context.Context, req CalculatePayrollRequest) (PayrollDetailResponse, error)

	// CalculateAllPayroll runs CalculateWeeklyPay for every employee,
	// collecting per-employee failures instead of aborting the batch.
	// initiatorUserID receives run-progress events.
	CalculateAllPayroll(ctx context.Context, req CalculateAllPayrollRequest, initiatorUserID string) (BatchCalculationResponse, error)

	// AutoFillSalariedHours creates standard workday entries for salaried
	// employees on weekdays that have no entry yet. Idempotent.
	AutoFillSalariedHours(ctx context.Context, req AutoFillRequest) (AutoFillResponse, error)

	// ApprovePayroll locks a period, freezing its calculations.
	ApprovePayroll(ctx context.Context, periodID int64, approverID string) error

	// GetOrCreatePeriod resolves the period for a (start, end) pair,
	// creating an open one on first use.
	GetOrCreatePeriod(ctx context.Context, start, end time.Time) (PayPeriod, error)

	// ListPeriods lists periods, most recent first
	ListPeriods(ctx context.Context, includeLocked bool) ([]PayPeriodResponse, error)

	// GetPeriod retrieves one period
	GetPeriod(ctx context.Context, periodID int64) (PayPeriodResponse, error)

	// GetCurrentPeriod returns the window containing today, creating the
	// period row if it does not exist yet.
	GetCurrentPeriod(ctx context.Context) (PayPeriodResponse, error)

	// GetPeriodDetails lists every computed detail in a period
	GetPeriodDetails(ctx context.Context, periodID int64) ([]PayrollDetailResponse, error)

	// GetEmployeeHistory lists an employee's details, most recent first
	GetEmployeeHistory(ctx context.Context, employeeID string, limit int) ([]PayrollDetailResponse, error)

	// GetDetail retrieves one detail by ID, for paycheck views
	GetDetail(ctx context.Context, detailID int64) (PayrollDetailResponse, error)
}
