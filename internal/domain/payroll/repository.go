package payroll

import (
	"context"
	"time"
)

// PeriodRepository defines data access methods for pay periods.
type PeriodRepository interface {
	// Create inserts a new open period. A (start, end) uniqueness violation
	// surfaces as ErrDuplicatePeriod so get-or-create callers can re-read.
	Create(ctx context.Context, period PayPeriod) (PayPeriod, error)

	// GetByDates retrieves the period for the exact (start, end) pair
	GetByDates(ctx context.Context, start, end time.Time) (PayPeriod, error)

	// GetByID retrieves a period by primary key
	GetByID(ctx context.Context, id int64) (PayPeriod, error)

	// GetAll lists periods, most recent first, optionally including locked ones
	GetAll(ctx context.Context, includeLocked bool) ([]PayPeriod, error)

	// Lock performs the one-way Open -> Locked transition, stamping the
	// processed timestamp and approver. Locking a locked period fails with
	// ErrAlreadyLocked; a missing period fails with ErrPeriodNotFound.
	Lock(ctx context.Context, id int64, approverID string) error
}

// DetailRepository defines data access methods for payroll details.
type DetailRepository interface {
	// GetByID retrieves one detail by primary key with period dates joined
	GetByID(ctx context.Context, id int64) (PayrollDetail, error)

	// GetByPayrollAndEmployee retrieves the one detail for a (period, employee) pair
	GetByPayrollAndEmployee(ctx context.Context, periodID int64, employeeID string) (PayrollDetail, error)

	// GetByPayroll retrieves all details in a period with employee names joined
	GetByPayroll(ctx context.Context, periodID int64) ([]PayrollDetail, error)

	// GetByEmployee retrieves an employee's detail history, most recent period
	// first, with period dates joined. limit <= 0 means no limit.
	GetByEmployee(ctx context.Context, employeeID string, limit int) ([]PayrollDetail, error)

	// Save inserts the detail, or overwrites every computed field of the
	// existing (period, employee) row. Full replace, no partial patch.
	Save(ctx context.Context, detail PayrollDetail) (PayrollDetail, error)
}
