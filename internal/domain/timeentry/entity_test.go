package timeentry

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

var threshold = decimal.NewFromInt(8)

func TestNewEntry(t *testing.T) {
	saturday := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	wednesday := time.Date(2026, 1, 7, 0, 0, 0, 0, time.UTC)

	e := NewEntry("E001", saturday, decimal.NewFromInt(5), decimal.Zero, "inventory count")
	assert.Equal(t, "Saturday", e.DayOfWeek)
	assert.True(t, e.IsWeekend)
	assert.Equal(t, "inventory count", e.Notes)

	e = NewEntry("E001", wednesday, decimal.NewFromInt(8), decimal.Zero, "")
	assert.Equal(t, "Wednesday", e.DayOfWeek)
	assert.False(t, e.IsWeekend)
}

func TestNewEntry_SundayIsNotWeekend(t *testing.T) {
	sunday := time.Date(2026, 1, 11, 0, 0, 0, 0, time.UTC)

	e := NewEntry("E001", sunday, decimal.NewFromInt(4), decimal.Zero, "")
	assert.Equal(t, "Sunday", e.DayOfWeek)
	assert.False(t, e.IsWeekend)
}

func TestRegularAndOvertimeSplit(t *testing.T) {
	tests := []struct {
		name     string
		worked   string
		regular  string
		overtime string
	}{
		{"zero hours", "0", "0", "0"},
		{"under threshold", "6.5", "6.5", "0"},
		{"exactly at threshold", "8", "8", "0"},
		{"over threshold", "10", "8", "2"},
		{"fractional overtime", "8.25", "8", "0.25"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := TimeEntry{HoursWorked: decimal.RequireFromString(tt.worked)}

			assert.True(t, e.RegularHours(threshold).Equal(decimal.RequireFromString(tt.regular)),
				"regular hours: %s", e.RegularHours(threshold))
			assert.True(t, e.OvertimeHours(threshold).Equal(decimal.RequireFromString(tt.overtime)),
				"overtime hours: %s", e.OvertimeHours(threshold))

			// The split always reassembles into the worked hours
			sum := e.RegularHours(threshold).Add(e.OvertimeHours(threshold))
			assert.True(t, sum.Equal(e.HoursWorked))
		})
	}
}

func TestTotalHours(t *testing.T) {
	e := TimeEntry{
		HoursWorked: decimal.RequireFromString("6"),
		PTOHours:    decimal.RequireFromString("2"),
	}
	assert.True(t, e.TotalHours().Equal(decimal.NewFromInt(8)))
}
