package timeentry

import (
	"context"
	"testing"
	"time"

	"github.com/abcco/payroll-backend-go/internal/config"
	"github.com/abcco/payroll-backend-go/internal/domain/employee"
	"github.com/abcco/payroll-backend-go/internal/domain/payroll"
	"github.com/abcco/payroll-backend-go/internal/domain/timeentry"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

type stubEntryRepo struct {
	timeentry.TimeEntryRepository
	existing    *timeentry.TimeEntry
	createCalls int
	updateCalls int
	deleteCalls int
}

func (s *stubEntryRepo) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*timeentry.TimeEntry, error) {
	return s.existing, nil
}

func (s *stubEntryRepo) GetByID(ctx context.Context, id int64) (timeentry.TimeEntry, error) {
	return *s.existing, nil
}

func (s *stubEntryRepo) Create(ctx context.Context, entry timeentry.TimeEntry) (timeentry.TimeEntry, error) {
	s.createCalls++
	return entry, nil
}

func (s *stubEntryRepo) Update(ctx context.Context, entry timeentry.TimeEntry) error {
	s.updateCalls++
	return nil
}

func (s *stubEntryRepo) Delete(ctx context.Context, id int64) error {
	s.deleteCalls++
	return nil
}

type stubPeriodRepo struct {
	payroll.PeriodRepository
	period payroll.PayPeriod
}

func (s *stubPeriodRepo) GetByDates(ctx context.Context, start, end time.Time) (payroll.PayPeriod, error) {
	return s.period, nil
}

func (s *stubPeriodRepo) GetByID(ctx context.Context, id int64) (payroll.PayPeriod, error) {
	return s.period, nil
}

type stubEmployeeRepo struct {
	employee.EmployeeRepository
}

func (s *stubEmployeeRepo) GetByID(ctx context.Context, employeeID string) (employee.Employee, error) {
	return employee.Employee{
		EmployeeID: employeeID,
		Status:     employee.StatusActive,
		PTOBalance: &employee.PTOBalance{
			EmployeeID: employeeID,
			Accrued:    decimal.NewFromInt(40),
		},
	}, nil
}

func lockedWeekService(entryRepo *stubEntryRepo) timeentry.TimeEntryService {
	monday := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	return NewTimeEntryService(
		nil,
		config.PayrollConfig{
			MaxHoursPerDay:         decimal.NewFromInt(24),
			MaxPTOHoursPerDay:      decimal.NewFromInt(8),
			DailyOvertimeThreshold: decimal.NewFromInt(8),
		},
		entryRepo,
		&stubPeriodRepo{period: payroll.PayPeriod{
			ID:        7,
			StartDate: monday,
			EndDate:   monday.AddDate(0, 0, 6),
			IsLocked:  true,
		}},
		&stubEmployeeRepo{},
	)
}

// Once a period is approved its hours are frozen. Submitting a new entry
// whose date falls inside the locked window must fail before any write.
func TestSubmit_LockedPeriodRejectsNewEntry(t *testing.T) {
	entryRepo := &stubEntryRepo{}
	svc := lockedWeekService(entryRepo)

	_, err := svc.Submit(context.Background(), timeentry.SubmitTimeEntryRequest{
		EmployeeID:  "E001",
		EntryDate:   "2026-01-06",
		HoursWorked: decimal.NewFromInt(8),
	}, false)

	assert.ErrorIs(t, err, timeentry.ErrPeriodLocked)
	assert.Zero(t, entryRepo.createCalls)
}

func TestSubmit_LockedPeriodRejectsEdit(t *testing.T) {
	periodID := int64(7)
	existing := timeentry.NewEntry("E001",
		time.Date(2026, 1, 6, 0, 0, 0, 0, time.UTC),
		decimal.NewFromInt(8), decimal.Zero, "")
	existing.ID = 11
	existing.PayrollID = &periodID

	entryRepo := &stubEntryRepo{existing: &existing}
	svc := lockedWeekService(entryRepo)

	_, err := svc.Submit(context.Background(), timeentry.SubmitTimeEntryRequest{
		EmployeeID:  "E001",
		EntryDate:   "2026-01-06",
		HoursWorked: decimal.NewFromInt(4),
		PTOHours:    decimal.NewFromInt(4),
	}, false)

	assert.ErrorIs(t, err, timeentry.ErrPeriodLocked)
	assert.Zero(t, entryRepo.updateCalls)
}

func TestDelete_LockedPeriodRejected(t *testing.T) {
	periodID := int64(7)
	existing := timeentry.NewEntry("E001",
		time.Date(2026, 1, 6, 0, 0, 0, 0, time.UTC),
		decimal.NewFromInt(8), decimal.Zero, "")
	existing.ID = 11
	existing.PayrollID = &periodID

	entryRepo := &stubEntryRepo{existing: &existing}
	svc := lockedWeekService(entryRepo)

	err := svc.Delete(context.Background(), existing.ID)

	assert.ErrorIs(t, err, timeentry.ErrPeriodLocked)
	assert.Zero(t, entryRepo.deleteCalls)
}
