package employee

import "errors"

// Employee domain errors
var (
	ErrEmployeeNotFound     = errors.New("employee not found")
	ErrEmployeeExists       = errors.New("employee ID already exists")
	ErrEmailExists          = errors.New("email already registered")
	ErrAlreadyTerminated    = errors.New("employee is already terminated")
	ErrAlreadyActive        = errors.New("employee is already active")
	ErrMissingCompensation  = errors.New("employee has no compensation record")
	ErrMissingSalary        = errors.New("salaried employee has no base salary configured")
	ErrMissingHourlyRate    = errors.New("hourly employee has no hourly rate configured")
	ErrUnknownPayType       = errors.New("employee has an unknown pay type")
	ErrDeleteNotConfirmed   = errors.New("permanent deletion requires explicit confirmation")
	ErrInsufficientPTOHours = errors.New("insufficient PTO balance for the requested hours")
)
