package timeentry

import (
	"github.com/abcco/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========== REQUEST DTOs ==========

type SubmitTimeEntryRequest struct {
	EmployeeID  string          `json:"employee_id"`
	EntryDate   string          `json:"entry_date"` // YYYY-MM-DD
	HoursWorked decimal.Decimal `json:"hours_worked"`
	PTOHours    decimal.Decimal `json:"pto_hours"`
	Notes       string          `json:"notes,omitempty"`
}

// Validate checks shape-level rules. Configured hour ceilings (max per day,
// max PTO per day) are enforced by the service, which owns the payroll config.
func (r *SubmitTimeEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	} else if !validator.IsValidEmployeeID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "must look like E001"})
	}

	if validator.IsEmpty(r.EntryDate) {
		errs = append(errs, validator.ValidationError{Field: "entry_date", Message: "is required"})
	} else if _, ok := validator.IsValidDate(r.EntryDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "entry_date", Message: "must be a valid date in YYYY-MM-DD format"})
	}

	if r.HoursWorked.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "hours_worked", Message: "must be non-negative"})
	}
	if r.PTOHours.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "pto_hours", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ========== RESPONSE DTOs ==========

type TimeEntryResponse struct {
	ID            int64           `json:"id"`
	EmployeeID    string          `json:"employee_id"`
	EntryDate     string          `json:"entry_date"`
	DayOfWeek     string          `json:"day_of_week"`
	PayrollID     *int64          `json:"payroll_id,omitempty"`
	HoursWorked   decimal.Decimal `json:"hours_worked"`
	PTOHours      decimal.Decimal `json:"pto_hours"`
	RegularHours  decimal.Decimal `json:"regular_hours"`
	OvertimeHours decimal.Decimal `json:"overtime_hours"`
	TotalHours    decimal.Decimal `json:"total_hours"`
	IsWeekend     bool            `json:"is_weekend"`
	Notes         string          `json:"notes,omitempty"`
}

// ToResponse projects an entry for the API, including the daily
// regular/overtime split at the given threshold.
func ToResponse(e TimeEntry, dailyThreshold decimal.Decimal) TimeEntryResponse {
	return TimeEntryResponse{
		ID:            e.ID,
		EmployeeID:    e.EmployeeID,
		EntryDate:     e.EntryDate.Format("2006-01-02"),
		DayOfWeek:     e.DayOfWeek,
		PayrollID:     e.PayrollID,
		HoursWorked:   e.HoursWorked,
		PTOHours:      e.PTOHours,
		RegularHours:  e.RegularHours(dailyThreshold),
		OvertimeHours: e.OvertimeHours(dailyThreshold),
		TotalHours:    e.TotalHours(),
		IsWeekend:     e.IsWeekend,
		Notes:         e.Notes,
	}
}
