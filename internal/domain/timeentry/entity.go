package timeentry

import (
	"time"

	"github.com/shopspring/decimal"
)

// WeekendDay is the single day whose hours are paid at the weekend premium.
// Sunday work is not expected in this company's schedule and is treated as a
// regular day when it occurs.
const WeekendDay = "Saturday"

// TimeEntry - one employee-day record of worked and PTO hours
type TimeEntry struct {
	ID          int64
	EmployeeID  string
	EntryDate   time.Time
	DayOfWeek   string
	PayrollID   *int64
	HoursWorked decimal.Decimal
	PTOHours    decimal.Decimal
	IsWeekend   bool
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewEntry builds an unpersisted entry, deriving the day-of-week name and
// weekend flag from the date.
func NewEntry(employeeID string, entryDate time.Time, hoursWorked, ptoHours decimal.Decimal, notes string) TimeEntry {
	day := DayOfWeekName(entryDate)
	return TimeEntry{
		EmployeeID:  employeeID,
		EntryDate:   entryDate,
		DayOfWeek:   day,
		HoursWorked: hoursWorked,
		PTOHours:    ptoHours,
		IsWeekend:   day == WeekendDay,
		Notes:       notes,
	}
}

// DayOfWeekName returns the full English weekday name for a date.
func DayOfWeekName(date time.Time) string {
	return date.Weekday().String()
}

// TotalHours is worked plus PTO hours.
func (e TimeEntry) TotalHours() decimal.Decimal {
	return e.HoursWorked.Add(e.PTOHours)
}

// RegularHours caps worked hours at the daily overtime threshold. Weekend
// entries do not use this split; the calculator routes their hours wholesale.
func (e TimeEntry) RegularHours(dailyThreshold decimal.Decimal) decimal.Decimal {
	if e.HoursWorked.GreaterThan(dailyThreshold) {
		return dailyThreshold
	}
	return e.HoursWorked
}

// OvertimeHours is the portion of a single day's worked hours above the
// daily threshold.
func (e TimeEntry) OvertimeHours(dailyThreshold decimal.Decimal) decimal.Decimal {
	if e.HoursWorked.GreaterThan(dailyThreshold) {
		return e.HoursWorked.Sub(dailyThreshold)
	}
	return decimal.Zero
}
