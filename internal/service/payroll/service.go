package payroll

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/abcco/payroll-backend-go/internal/config"
	"github.com/abcco/payroll-backend-go/internal/domain/employee"
	"github.com/abcco/payroll-backend-go/internal/domain/payroll"
	"github.com/abcco/payroll-backend-go/internal/domain/timeentry"
	"github.com/abcco/payroll-backend-go/internal/pkg/database"
	"github.com/abcco/payroll-backend-go/internal/pkg/email"
	"github.com/abcco/payroll-backend-go/internal/pkg/sse"
	"github.com/abcco/payroll-backend-go/internal/repository/postgresql"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// AutoFillNote marks entries the auto-fill job created, so humans reading
// the ledger can tell them from submitted hours.
const AutoFillNote = "Auto-filled for salaried employee"

type PayrollServiceImpl struct {
	db           *database.DB
	cfg          config.PayrollConfig
	calc         *Calculator
	periodRepo   payroll.PeriodRepository
	detailRepo   payroll.DetailRepository
	entryRepo    timeentry.TimeEntryRepository
	employeeRepo employee.EmployeeRepository
	hub          *sse.Hub
	emailService email.EmailService
}

func NewPayrollService(
	db *database.DB,
	cfg config.PayrollConfig,
	calc *Calculator,
	periodRepo payroll.PeriodRepository,
	detailRepo payroll.DetailRepository,
	entryRepo timeentry.TimeEntryRepository,
	employeeRepo employee.EmployeeRepository,
	hub *sse.Hub,
	emailService email.EmailService,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		db:           db,
		cfg:          cfg,
		calc:         calc,
		periodRepo:   periodRepo,
		detailRepo:   detailRepo,
		entryRepo:    entryRepo,
		employeeRepo: employeeRepo,
		hub:          hub,
		emailService: emailService,
	}
}

// GetOrCreatePeriod implements payroll.PayrollService. A concurrent first
// use races on the (start, end) unique constraint; the loser re-reads the
// winner's row.
func (s *PayrollServiceImpl) GetOrCreatePeriod(ctx context.Context, start, end time.Time) (payroll.PayPeriod, error) {
	if !payroll.IsValidPeriod(start, end) {
		return payroll.PayPeriod{}, payroll.ErrInvalidPeriod
	}

	period, err := s.periodRepo.GetByDates(ctx, start, end)
	if err == nil {
		return period, nil
	}
	if !errors.Is(err, payroll.ErrPeriodNotFound) {
		return payroll.PayPeriod{}, err
	}

	period, err = s.periodRepo.Create(ctx, payroll.PayPeriod{StartDate: start, EndDate: end})
	if errors.Is(err, payroll.ErrDuplicatePeriod) {
		return s.periodRepo.GetByDates(ctx, start, end)
	}
	return period, err
}

// CalculateWeeklyPay implements payroll.PayrollService.
func (s *PayrollServiceImpl) CalculateWeeklyPay(ctx context.Context, req payroll.CalculatePayrollRequest) (payroll.PayrollDetailResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollDetailResponse{}, err
	}

	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)

	detail, err := s.calculateForEmployee(ctx, req.EmployeeID, start, end)
	if err != nil {
		return payroll.PayrollDetailResponse{}, err
	}
	return payroll.ToDetailResponse(detail), nil
}

// calculateForEmployee runs the full calculation pipeline for one employee
// and period window, persisting the result.
func (s *PayrollServiceImpl) calculateForEmployee(ctx context.Context, employeeID string, start, end time.Time) (payroll.PayrollDetail, error) {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return payroll.PayrollDetail{}, err
	}

	period, err := s.GetOrCreatePeriod(ctx, start, end)
	if err != nil {
		return payroll.PayrollDetail{}, err
	}

	// A locked period's calculations are frozen: an existing detail is
	// returned as-is, and there is no path to computing a new one.
	if period.IsLocked {
		existing, err := s.detailRepo.GetByPayrollAndEmployee(ctx, period.ID, employeeID)
		if err == nil {
			return existing, nil
		}
		if errors.Is(err, payroll.ErrDetailNotFound) {
			return payroll.PayrollDetail{}, payroll.ErrPeriodLocked
		}
		return payroll.PayrollDetail{}, err
	}

	entries, err := s.entryRepo.GetByEmployeeInRange(ctx, employeeID, start, end)
	if err != nil {
		return payroll.PayrollDetail{}, err
	}

	if emp.Compensation == nil {
		return payroll.PayrollDetail{}, employee.ErrMissingCompensation
	}

	var breakdown payroll.PayBreakdown
	switch emp.Compensation.PayType {
	case employee.PayTypeSalary:
		if emp.Compensation.BaseSalary == nil {
			return payroll.PayrollDetail{}, employee.ErrMissingSalary
		}
		breakdown = s.calc.CalculateSalaryPay(*emp.Compensation.BaseSalary)
	case employee.PayTypeHourly:
		if emp.Compensation.HourlyRate == nil {
			return payroll.PayrollDetail{}, employee.ErrMissingHourlyRate
		}
		breakdown = s.calc.CalculateHourlyPay(entries, *emp.Compensation.HourlyRate)
	default:
		return payroll.PayrollDetail{}, employee.ErrUnknownPayType
	}

	stipend := s.calc.CalculateDependentStipend(emp.Compensation.NumDependents)
	medical := s.calc.CalculateMedicalDeduction(emp.Compensation.MedicalPlan)

	grossPay := breakdown.GrossPay.Add(stipend)
	taxes := s.calc.CalculateTaxes(grossPay.Sub(medical))
	taxableIncome, netPay := s.calc.CalculateNetPay(grossPay, medical, taxes.TotalEmployeeTaxes)

	detail := payroll.PayrollDetail{
		PayrollID:  period.ID,
		EmployeeID: employeeID,

		RegularHours:  breakdown.RegularHours,
		OvertimeHours: breakdown.OvertimeHours,
		WeekendHours:  breakdown.WeekendHours,
		PTOHours:      breakdown.PTOHours,
		TotalHours:    breakdown.TotalHours,

		BasePay:          breakdown.BasePay,
		OvertimePay:      breakdown.OvertimePay,
		WeekendPay:       breakdown.WeekendPay,
		DependentStipend: stipend,
		GrossPay:         grossPay,

		MedicalDeduction:   medical,
		TaxableIncome:      taxableIncome,
		StateTax:           taxes.StateTax,
		FederalTax:         taxes.FederalTax,
		SocialSecurityTax:  taxes.SocialSecurityTax,
		MedicareTax:        taxes.MedicareTax,
		TotalEmployeeTaxes: taxes.TotalEmployeeTaxes,
		NetPay:             netPay,

		EmployerFederalTax:        taxes.EmployerFederalTax,
		EmployerSocialSecurityTax: taxes.EmployerSocialSecurityTax,
		EmployerMedicareTax:       taxes.EmployerMedicareTax,
		TotalEmployerTaxes:        taxes.TotalEmployerTaxes,
	}

	// The detail upsert and the entry assignment stand or fall together.
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		saved, err := s.detailRepo.Save(txCtx, detail)
		if err != nil {
			return err
		}
		detail = saved

		if _, err := s.entryRepo.AssignToPeriod(txCtx, employeeID, start, end, period.ID); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return payroll.PayrollDetail{}, err
	}

	name := emp.FullName()
	detail.EmployeeName = &name
	detail.PeriodStartDate = &period.StartDate
	detail.PeriodEndDate = &period.EndDate

	return detail, nil
}

// CalculateAllPayroll implements payroll.PayrollService.
func (s *PayrollServiceImpl) CalculateAllPayroll(ctx context.Context, req payroll.CalculateAllPayrollRequest, initiatorUserID string) (payroll.BatchCalculationResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.BatchCalculationResponse{}, err
	}

	start, end := s.resolveWindow(req.StartDate, req.EndDate)

	activeOnly := true
	if req.ActiveOnly != nil {
		activeOnly = *req.ActiveOnly
	}

	period, err := s.GetOrCreatePeriod(ctx, start, end)
	if err != nil {
		return payroll.BatchCalculationResponse{}, err
	}

	employees, err := s.employeeRepo.GetAllForPayroll(ctx, activeOnly)
	if err != nil {
		return payroll.BatchCalculationResponse{}, err
	}

	result := payroll.BatchCalculationResponse{
		RunID:  uuid.NewString(),
		Period: payroll.ToPeriodResponse(period),
	}

	s.publish(initiatorUserID, "payroll.run.started", map[string]interface{}{
		"run_id":         result.RunID,
		"period_id":      period.ID,
		"employee_count": len(employees),
	})

	for _, emp := range employees {
		detail, err := s.calculateForEmployee(ctx, emp.EmployeeID, start, end)
		if err != nil {
			result.Failed = append(result.Failed, payroll.CalculationFailure{
				EmployeeID: emp.EmployeeID,
				Reason:     err.Error(),
			})
			s.publish(initiatorUserID, "payroll.employee.failed", map[string]interface{}{
				"run_id":      result.RunID,
				"employee_id": emp.EmployeeID,
				"reason":      err.Error(),
			})
			continue
		}
		result.Succeeded = append(result.Succeeded, payroll.ToDetailResponse(detail))
		s.publish(initiatorUserID, "payroll.employee.calculated", map[string]interface{}{
			"run_id":      result.RunID,
			"employee_id": emp.EmployeeID,
			"net_pay":     detail.NetPay,
		})
	}

	s.publish(initiatorUserID, "payroll.run.completed", map[string]interface{}{
		"run_id":    result.RunID,
		"succeeded": len(result.Succeeded),
		"failed":    len(result.Failed),
	})

	return result, nil
}

// AutoFillSalariedHours implements payroll.PayrollService.
func (s *PayrollServiceImpl) AutoFillSalariedHours(ctx context.Context, req payroll.AutoFillRequest) (payroll.AutoFillResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.AutoFillResponse{}, err
	}

	start, end := s.resolveWindow(req.StartDate, req.EndDate)

	var targets []employee.Employee
	if req.EmployeeID != "" {
		emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
		if err != nil {
			return payroll.AutoFillResponse{}, err
		}
		targets = append(targets, emp)
	} else {
		all, err := s.employeeRepo.GetAllForPayroll(ctx, true)
		if err != nil {
			return payroll.AutoFillResponse{}, err
		}
		targets = all
	}

	created := 0
	for _, emp := range targets {
		if emp.Compensation == nil || emp.Compensation.PayType != employee.PayTypeSalary {
			continue
		}
		n, err := s.autoFillEmployee(ctx, emp.EmployeeID, start, end)
		if err != nil {
			return payroll.AutoFillResponse{}, err
		}
		created += n
	}

	return payroll.AutoFillResponse{EntriesCreated: created}, nil
}

// autoFillEmployee walks the weekdays of a window and fills the gaps with
// standard workdays. Existing entries are never touched.
func (s *PayrollServiceImpl) autoFillEmployee(ctx context.Context, employeeID string, start, end time.Time) (int, error) {
	created := 0

	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		switch day.Weekday() {
		case time.Saturday, time.Sunday:
			continue
		}

		existing, err := s.entryRepo.GetByEmployeeAndDate(ctx, employeeID, day)
		if err != nil {
			return created, err
		}
		if existing != nil {
			continue
		}

		entry := timeentry.NewEntry(employeeID, day, s.cfg.SalariedAutoHours, decimal.Zero, AutoFillNote)
		if _, err := s.entryRepo.Create(ctx, entry); err != nil {
			// A concurrent fill for the same day is not a failure.
			if errors.Is(err, timeentry.ErrDuplicateEntry) {
				continue
			}
			return created, err
		}
		created++
	}

	return created, nil
}

// ApprovePayroll implements payroll.PayrollService.
func (s *PayrollServiceImpl) ApprovePayroll(ctx context.Context, periodID int64, approverID string) error {
	if err := s.periodRepo.Lock(ctx, periodID, approverID); err != nil {
		return err
	}

	s.notifyApproved(ctx, periodID)
	return nil
}

// notifyApproved emails each employee paid in the period. Send failures are
// logged and never affect the approval outcome.
func (s *PayrollServiceImpl) notifyApproved(ctx context.Context, periodID int64) {
	if s.emailService == nil {
		return
	}

	period, err := s.periodRepo.GetByID(ctx, periodID)
	if err != nil {
		slog.Error("Failed to load period for paystub notices", "period_id", periodID, "error", err)
		return
	}
	details, err := s.detailRepo.GetByPayroll(ctx, periodID)
	if err != nil {
		slog.Error("Failed to load details for paystub notices", "period_id", periodID, "error", err)
		return
	}

	for _, d := range details {
		emp, err := s.employeeRepo.GetByID(ctx, d.EmployeeID)
		if err != nil {
			slog.Warn("Skipping paystub notice, employee lookup failed", "employee_id", d.EmployeeID, "error", err)
			continue
		}
		err = s.emailService.SendPaystubReady(
			emp.Email,
			emp.FullName(),
			period.StartDate.Format("2006-01-02"),
			period.EndDate.Format("2006-01-02"),
			d.NetPay.StringFixed(2),
		)
		if err != nil {
			slog.Warn("Failed to send paystub notice", "employee_id", d.EmployeeID, "error", err)
		}
	}
}

// ListPeriods implements payroll.PayrollService.
func (s *PayrollServiceImpl) ListPeriods(ctx context.Context, includeLocked bool) ([]payroll.PayPeriodResponse, error) {
	periods, err := s.periodRepo.GetAll(ctx, includeLocked)
	if err != nil {
		return nil, err
	}

	var result []payroll.PayPeriodResponse
	for _, p := range periods {
		result = append(result, payroll.ToPeriodResponse(p))
	}
	return result, nil
}

// GetPeriod implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetPeriod(ctx context.Context, periodID int64) (payroll.PayPeriodResponse, error) {
	period, err := s.periodRepo.GetByID(ctx, periodID)
	if err != nil {
		return payroll.PayPeriodResponse{}, err
	}
	return payroll.ToPeriodResponse(period), nil
}

// GetCurrentPeriod implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetCurrentPeriod(ctx context.Context) (payroll.PayPeriodResponse, error) {
	start, end := payroll.CurrentPeriod()
	period, err := s.GetOrCreatePeriod(ctx, start, end)
	if err != nil {
		return payroll.PayPeriodResponse{}, err
	}
	return payroll.ToPeriodResponse(period), nil
}

// GetPeriodDetails implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetPeriodDetails(ctx context.Context, periodID int64) ([]payroll.PayrollDetailResponse, error) {
	if _, err := s.periodRepo.GetByID(ctx, periodID); err != nil {
		return nil, err
	}

	details, err := s.detailRepo.GetByPayroll(ctx, periodID)
	if err != nil {
		return nil, err
	}

	var result []payroll.PayrollDetailResponse
	for _, d := range details {
		result = append(result, payroll.ToDetailResponse(d))
	}
	return result, nil
}

// GetEmployeeHistory implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetEmployeeHistory(ctx context.Context, employeeID string, limit int) ([]payroll.PayrollDetailResponse, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}

	details, err := s.detailRepo.GetByEmployee(ctx, employeeID, limit)
	if err != nil {
		return nil, err
	}

	var result []payroll.PayrollDetailResponse
	for _, d := range details {
		result = append(result, payroll.ToDetailResponse(d))
	}
	return result, nil
}

// GetDetail implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetDetail(ctx context.Context, detailID int64) (payroll.PayrollDetailResponse, error) {
	detail, err := s.detailRepo.GetByID(ctx, detailID)
	if err != nil {
		return payroll.PayrollDetailResponse{}, err
	}
	return payroll.ToDetailResponse(detail), nil
}

// resolveWindow parses an explicit window or falls back to the current
// period. Shape validation has already run by the time this is called.
func (s *PayrollServiceImpl) resolveWindow(startDate, endDate string) (time.Time, time.Time) {
	if startDate == "" && endDate == "" {
		return payroll.CurrentPeriod()
	}
	start, _ := time.Parse("2006-01-02", startDate)
	end, _ := time.Parse("2006-01-02", endDate)
	return start, end
}

func (s *PayrollServiceImpl) publish(userID, event string, data map[string]interface{}) {
	if s.hub == nil || userID == "" {
		return
	}
	s.hub.Publish(userID, sse.Event{UserID: userID, Event: event, Data: data})
}

