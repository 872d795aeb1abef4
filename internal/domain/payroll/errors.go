package payroll

import "errors"

var (
	ErrPeriodNotFound  = errors.New("pay period not found")
	ErrDetailNotFound  = errors.New("payroll detail not found")
	ErrPeriodLocked    = errors.New("pay period has been approved and is closed")
	ErrAlreadyLocked   = errors.New("pay period is already approved")
	ErrDuplicatePeriod = errors.New("a pay period already exists for these dates")
	ErrInvalidPeriod   = errors.New("pay period must run Monday through Sunday")
)
