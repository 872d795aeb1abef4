package timeentry

import (
	"context"
	"time"
)

// TimeEntryService defines business logic for submitting and managing time
// entries.
type TimeEntryService interface {
	// Submit creates the entry for (employee, date) or updates the existing
	// one. Editing an entry whose period is locked fails with
	// ErrPeriodLocked. enforcePTOBalance gates self-service submissions
	// against the employee's remaining PTO; admin submissions skip it.
	Submit(ctx context.Context, req SubmitTimeEntryRequest, enforcePTOBalance bool) (TimeEntryResponse, error)

	// GetByEmployeeInRange lists an employee's entries in [start, end]
	GetByEmployeeInRange(ctx context.Context, employeeID string, start, end time.Time) ([]TimeEntryResponse, error)

	// GetByPeriod lists every entry assigned to a pay period
	GetByPeriod(ctx context.Context, periodID int64) ([]TimeEntryResponse, error)

	// Delete removes an entry. Fails with ErrPeriodLocked when the entry's
	// period is locked.
	Delete(ctx context.Context, entryID int64) error
}
