package timeentry

import "errors"

// Time entry domain errors
var (
	ErrEntryNotFound  = errors.New("time entry not found")
	ErrDuplicateEntry = errors.New("a time entry already exists for this employee and date")
	ErrPeriodLocked   = errors.New("the pay period for this entry has been approved and is closed")
)
