package timeentry

import (
	"context"
	"time"
)

// TimeEntryRepository defines data access methods for time entries.
type TimeEntryRepository interface {
	// Create inserts a new entry. A (employee, date) uniqueness violation
	// surfaces as ErrDuplicateEntry.
	Create(ctx context.Context, entry TimeEntry) (TimeEntry, error)

	// Update overwrites the mutable fields (hours, PTO, notes) of an entry.
	Update(ctx context.Context, entry TimeEntry) error

	// GetByID retrieves a single entry by primary key
	GetByID(ctx context.Context, id int64) (TimeEntry, error)

	// GetByEmployeeAndDate returns nil (no error) when the employee has no
	// entry on the given date
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*TimeEntry, error)

	// GetByEmployeeInRange returns entries in [start, end] inclusive, ordered by date
	GetByEmployeeInRange(ctx context.Context, employeeID string, start, end time.Time) ([]TimeEntry, error)

	// GetByPeriod returns all entries assigned to a pay period
	GetByPeriod(ctx context.Context, periodID int64) ([]TimeEntry, error)

	// AssignToPeriod stamps every unassigned entry for the employee in
	// [start, end] with periodID and returns how many rows it touched.
	// Already-assigned rows are left alone, so re-running it is harmless.
	AssignToPeriod(ctx context.Context, employeeID string, start, end time.Time, periodID int64) (int64, error)

	// Delete removes an entry by primary key
	Delete(ctx context.Context, id int64) error
}
