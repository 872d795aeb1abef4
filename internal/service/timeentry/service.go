package timeentry

import (
	"context"
	"errors"
	"time"

	"github.com/abcco/payroll-backend-go/internal/config"
	"github.com/abcco/payroll-backend-go/internal/domain/employee"
	"github.com/abcco/payroll-backend-go/internal/domain/payroll"
	"github.com/abcco/payroll-backend-go/internal/domain/timeentry"
	"github.com/abcco/payroll-backend-go/internal/pkg/database"
	"github.com/abcco/payroll-backend-go/internal/pkg/validator"
	"github.com/abcco/payroll-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

type TimeEntryServiceImpl struct {
	db           *database.DB
	cfg          config.PayrollConfig
	entryRepo    timeentry.TimeEntryRepository
	periodRepo   payroll.PeriodRepository
	employeeRepo employee.EmployeeRepository
}

func NewTimeEntryService(
	db *database.DB,
	cfg config.PayrollConfig,
	entryRepo timeentry.TimeEntryRepository,
	periodRepo payroll.PeriodRepository,
	employeeRepo employee.EmployeeRepository,
) timeentry.TimeEntryService {
	return &TimeEntryServiceImpl{
		db:           db,
		cfg:          cfg,
		entryRepo:    entryRepo,
		periodRepo:   periodRepo,
		employeeRepo: employeeRepo,
	}
}

// Submit implements timeentry.TimeEntryService.
func (s *TimeEntryServiceImpl) Submit(ctx context.Context, req timeentry.SubmitTimeEntryRequest, enforcePTOBalance bool) (timeentry.TimeEntryResponse, error) {
	if err := req.Validate(); err != nil {
		return timeentry.TimeEntryResponse{}, err
	}
	if err := s.validateHourCeilings(req); err != nil {
		return timeentry.TimeEntryResponse{}, err
	}

	entryDate, _ := validator.IsValidDate(req.EntryDate)

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return timeentry.TimeEntryResponse{}, err
	}

	existing, err := s.entryRepo.GetByEmployeeAndDate(ctx, req.EmployeeID, entryDate)
	if err != nil {
		return timeentry.TimeEntryResponse{}, err
	}

	if err := s.checkPeriodOpen(ctx, existing, entryDate); err != nil {
		return timeentry.TimeEntryResponse{}, err
	}

	// Used-PTO accounting moves by the difference against what was already
	// recorded for the day, so resubmissions never double-count.
	ptoDelta := req.PTOHours
	if existing != nil {
		ptoDelta = req.PTOHours.Sub(existing.PTOHours)
	}

	if enforcePTOBalance && ptoDelta.IsPositive() {
		if emp.PTOBalance == nil || ptoDelta.GreaterThan(emp.PTOBalance.Balance()) {
			return timeentry.TimeEntryResponse{}, employee.ErrInsufficientPTOHours
		}
	}

	var saved timeentry.TimeEntry
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if existing != nil {
			updated := *existing
			updated.HoursWorked = req.HoursWorked
			updated.PTOHours = req.PTOHours
			updated.Notes = req.Notes
			if err := s.entryRepo.Update(txCtx, updated); err != nil {
				return err
			}
			saved = updated
		} else {
			created, err := s.entryRepo.Create(txCtx, timeentry.NewEntry(req.EmployeeID, entryDate, req.HoursWorked, req.PTOHours, req.Notes))
			if err != nil {
				return err
			}
			saved = created
		}

		if !ptoDelta.IsZero() {
			if err := s.employeeRepo.UpdatePTOUsed(txCtx, req.EmployeeID, ptoDelta); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return timeentry.TimeEntryResponse{}, err
	}

	return timeentry.ToResponse(saved, s.cfg.DailyOvertimeThreshold), nil
}

// GetByEmployeeInRange implements timeentry.TimeEntryService.
func (s *TimeEntryServiceImpl) GetByEmployeeInRange(ctx context.Context, employeeID string, start, end time.Time) ([]timeentry.TimeEntryResponse, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}

	entries, err := s.entryRepo.GetByEmployeeInRange(ctx, employeeID, start, end)
	if err != nil {
		return nil, err
	}
	return s.toResponses(entries), nil
}

// GetByPeriod implements timeentry.TimeEntryService.
func (s *TimeEntryServiceImpl) GetByPeriod(ctx context.Context, periodID int64) ([]timeentry.TimeEntryResponse, error) {
	if _, err := s.periodRepo.GetByID(ctx, periodID); err != nil {
		return nil, err
	}

	entries, err := s.entryRepo.GetByPeriod(ctx, periodID)
	if err != nil {
		return nil, err
	}
	return s.toResponses(entries), nil
}

// Delete implements timeentry.TimeEntryService.
func (s *TimeEntryServiceImpl) Delete(ctx context.Context, entryID int64) error {
	entry, err := s.entryRepo.GetByID(ctx, entryID)
	if err != nil {
		return err
	}

	if err := s.checkPeriodOpen(ctx, &entry, entry.EntryDate); err != nil {
		return err
	}

	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := s.entryRepo.Delete(txCtx, entryID); err != nil {
			return err
		}
		// Give the PTO hours back
		if entry.PTOHours.IsPositive() {
			return s.employeeRepo.UpdatePTOUsed(txCtx, entry.EmployeeID, entry.PTOHours.Neg())
		}
		return nil
	})
}

// checkPeriodOpen rejects writes that would change a period whose
// calculations are frozen. The entry's assigned period wins; an unassigned
// entry falls back to the calendar window of its date.
func (s *TimeEntryServiceImpl) checkPeriodOpen(ctx context.Context, entry *timeentry.TimeEntry, date time.Time) error {
	var (
		period payroll.PayPeriod
		err    error
	)

	if entry != nil && entry.PayrollID != nil {
		period, err = s.periodRepo.GetByID(ctx, *entry.PayrollID)
	} else {
		start, end := payroll.PeriodForDate(date)
		period, err = s.periodRepo.GetByDates(ctx, start, end)
	}

	if errors.Is(err, payroll.ErrPeriodNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if period.IsLocked {
		return timeentry.ErrPeriodLocked
	}
	return nil
}

// validateHourCeilings applies the configured per-day limits.
func (s *TimeEntryServiceImpl) validateHourCeilings(req timeentry.SubmitTimeEntryRequest) error {
	var errs validator.ValidationErrors

	if req.HoursWorked.GreaterThan(s.cfg.MaxHoursPerDay) {
		errs = append(errs, validator.ValidationError{Field: "hours_worked", Message: "cannot exceed " + s.cfg.MaxHoursPerDay.String() + " hours per day"})
	}
	if req.PTOHours.GreaterThan(s.cfg.MaxPTOHoursPerDay) {
		errs = append(errs, validator.ValidationError{Field: "pto_hours", Message: "cannot exceed " + s.cfg.MaxPTOHoursPerDay.String() + " hours per day"})
	}
	if req.HoursWorked.Add(req.PTOHours).GreaterThan(s.cfg.MaxHoursPerDay) {
		errs = append(errs, validator.ValidationError{Field: "pto_hours", Message: "worked plus PTO hours cannot exceed " + s.cfg.MaxHoursPerDay.String()})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (s *TimeEntryServiceImpl) toResponses(entries []timeentry.TimeEntry) []timeentry.TimeEntryResponse {
	var result []timeentry.TimeEntryResponse
	for _, e := range entries {
		result = append(result, timeentry.ToResponse(e, s.cfg.DailyOvertimeThreshold))
	}
	return result
}
