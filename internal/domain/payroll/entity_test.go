package payroll

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestPeriodForDate(t *testing.T) {
	// 2026-01-05 is a Monday; the week runs through Sunday 2026-01-11
	wantStart := date(2026, time.January, 5)
	wantEnd := date(2026, time.January, 11)

	tests := []struct {
		name string
		in   time.Time
	}{
		{"monday maps to itself", date(2026, time.January, 5)},
		{"midweek", date(2026, time.January, 7)},
		{"saturday", date(2026, time.January, 10)},
		{"sunday stays in the preceding week", date(2026, time.January, 11)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := PeriodForDate(tt.in)
			assert.Equal(t, wantStart, start)
			assert.Equal(t, wantEnd, end)
		})
	}
}

func TestPeriodForDate_NextMondayStartsNewPeriod(t *testing.T) {
	start, end := PeriodForDate(date(2026, time.January, 12))
	assert.Equal(t, date(2026, time.January, 12), start)
	assert.Equal(t, date(2026, time.January, 18), end)
}

func TestPeriodForDate_DropsTimeOfDay(t *testing.T) {
	start, _ := PeriodForDate(time.Date(2026, time.January, 7, 17, 45, 12, 0, time.UTC))
	assert.Equal(t, date(2026, time.January, 5), start)
}

func TestIsValidPeriod(t *testing.T) {
	assert.True(t, IsValidPeriod(date(2026, time.January, 5), date(2026, time.January, 11)))

	// Starts on a Tuesday
	assert.False(t, IsValidPeriod(date(2026, time.January, 6), date(2026, time.January, 12)))
	// Right start, wrong length
	assert.False(t, IsValidPeriod(date(2026, time.January, 5), date(2026, time.January, 12)))
	assert.False(t, IsValidPeriod(date(2026, time.January, 5), date(2026, time.January, 10)))
}

func TestCurrentPeriodIsValid(t *testing.T) {
	start, end := CurrentPeriod()
	assert.True(t, IsValidPeriod(start, end))
}
