package response

import (
	"errors"
	"net/http"

	"github.com/abcco/payroll-backend-go/internal/domain/auth"
	"github.com/abcco/payroll-backend-go/internal/domain/employee"
	"github.com/abcco/payroll-backend-go/internal/domain/payroll"
	"github.com/abcco/payroll-backend-go/internal/domain/timeentry"
	"github.com/abcco/payroll-backend-go/internal/domain/user"
	"github.com/abcco/payroll-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Auth domain errors
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrAccountInactive):
		Forbidden(w, "Account is inactive")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUsernameExists):
		Conflict(w, "Username already exists")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeExists):
		Conflict(w, "Employee ID already exists")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, employee.ErrAlreadyTerminated):
		Conflict(w, "Employee is already terminated")
	case errors.Is(err, employee.ErrAlreadyActive):
		Conflict(w, "Employee is already active")
	case errors.Is(err, employee.ErrDeleteNotConfirmed):
		BadRequest(w, "Permanent deletion requires explicit confirmation", nil)
	case errors.Is(err, employee.ErrInsufficientPTOHours):
		BadRequest(w, "Insufficient PTO balance for the requested hours", nil)
	case errors.Is(err, employee.ErrMissingCompensation),
		errors.Is(err, employee.ErrMissingSalary),
		errors.Is(err, employee.ErrMissingHourlyRate),
		errors.Is(err, employee.ErrUnknownPayType):
		BadRequest(w, err.Error(), nil)

	// Time entry domain errors
	case errors.Is(err, timeentry.ErrEntryNotFound):
		NotFound(w, "Time entry not found")
	case errors.Is(err, timeentry.ErrDuplicateEntry):
		Conflict(w, "A time entry already exists for this employee and date")
	case errors.Is(err, timeentry.ErrPeriodLocked):
		Conflict(w, "The pay period for this entry has been approved and is closed")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrPeriodNotFound):
		NotFound(w, "Pay period not found")
	case errors.Is(err, payroll.ErrDetailNotFound):
		NotFound(w, "Payroll detail not found")
	case errors.Is(err, payroll.ErrPeriodLocked):
		Conflict(w, "Pay period has been approved and is closed")
	case errors.Is(err, payroll.ErrAlreadyLocked):
		Conflict(w, "Pay period is already approved")
	case errors.Is(err, payroll.ErrDuplicatePeriod):
		Conflict(w, "Pay period already exists for these dates")
	case errors.Is(err, payroll.ErrInvalidPeriod):
		BadRequest(w, "Pay period must run Monday through Sunday", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
