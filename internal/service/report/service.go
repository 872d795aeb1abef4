package report

import (
	"context"
	"time"

	"github.com/abcco/payroll-backend-go/internal/config"
	"github.com/abcco/payroll-backend-go/internal/domain/employee"
	"github.com/abcco/payroll-backend-go/internal/domain/payroll"
	"github.com/abcco/payroll-backend-go/internal/domain/report"
	"github.com/abcco/payroll-backend-go/internal/domain/timeentry"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

type ReportServiceImpl struct {
	cfg          config.PayrollConfig
	reportRepo   report.ReportRepository
	periodRepo   payroll.PeriodRepository
	detailRepo   payroll.DetailRepository
	entryRepo    timeentry.TimeEntryRepository
	employeeRepo employee.EmployeeRepository
}

func NewReportService(
	cfg config.PayrollConfig,
	reportRepo report.ReportRepository,
	periodRepo payroll.PeriodRepository,
	detailRepo payroll.DetailRepository,
	entryRepo timeentry.TimeEntryRepository,
	employeeRepo employee.EmployeeRepository,
) report.ReportService {
	return &ReportServiceImpl{
		cfg:          cfg,
		reportRepo:   reportRepo,
		periodRepo:   periodRepo,
		detailRepo:   detailRepo,
		entryRepo:    entryRepo,
		employeeRepo: employeeRepo,
	}
}

// PeriodSummary implements report.ReportService.
func (s *ReportServiceImpl) PeriodSummary(ctx context.Context, periodID int64) (report.PeriodSummaryResponse, error) {
	var (
		period payroll.PayPeriod
		totals report.SummaryTotals
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		period, err = s.periodRepo.GetByID(gCtx, periodID)
		return err
	})
	g.Go(func() error {
		var err error
		totals, err = s.reportRepo.PeriodSummaryTotals(gCtx, periodID)
		return err
	})
	if err := g.Wait(); err != nil {
		return report.PeriodSummaryResponse{}, err
	}

	return report.PeriodSummaryResponse{
		Period: payroll.ToPeriodResponse(period),

		EmployeeCount: totals.EmployeeCount,

		RegularHours:  totals.RegularHours,
		OvertimeHours: totals.OvertimeHours,
		WeekendHours:  totals.WeekendHours,
		PTOHours:      totals.PTOHours,
		TotalHours:    totals.TotalHours,

		GrossPay:           totals.GrossPay.Round(2),
		DependentStipends:  totals.DependentStipends.Round(2),
		MedicalDeductions:  totals.MedicalDeductions.Round(2),
		TotalEmployeeTaxes: totals.TotalEmployeeTaxes.Round(2),
		TotalEmployerTaxes: totals.TotalEmployerTaxes.Round(2),
		NetPay:             totals.NetPay.Round(2),
	}, nil
}

// EmployeeWeeklySummary implements report.ReportService.
func (s *ReportServiceImpl) EmployeeWeeklySummary(ctx context.Context, employeeID string, start, end time.Time) (report.WeeklySummaryResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return report.WeeklySummaryResponse{}, err
	}

	entries, err := s.entryRepo.GetByEmployeeInRange(ctx, employeeID, start, end)
	if err != nil {
		return report.WeeklySummaryResponse{}, err
	}

	resp := report.WeeklySummaryResponse{
		EmployeeID:   employeeID,
		EmployeeName: emp.FullName(),
		StartDate:    start.Format("2006-01-02"),
		EndDate:      end.Format("2006-01-02"),
	}

	var worked, weekend, pto decimal.Decimal
	for _, e := range entries {
		resp.Entries = append(resp.Entries, timeentry.ToResponse(e, s.cfg.DailyOvertimeThreshold))
		worked = worked.Add(e.HoursWorked)
		pto = pto.Add(e.PTOHours)
		if e.IsWeekend {
			weekend = weekend.Add(e.HoursWorked)
		}
	}

	// The reporting split measures the week as a whole against the standard
	// week. Weekend hours stay in their own bucket and never count toward
	// either side of the split.
	weekdayWorked := worked.Sub(weekend)
	regular := decimal.Min(weekdayWorked, s.cfg.StandardWeeklyHours)
	overtime := decimal.Max(weekdayWorked.Sub(s.cfg.StandardWeeklyHours), decimal.Zero)

	resp.WorkedHours = worked
	resp.WeekendHours = weekend
	resp.PTOHours = pto
	resp.RegularHours = regular
	resp.OvertimeHours = overtime
	resp.TotalHours = worked.Add(pto)

	return resp, nil
}

// PayrollHistory implements report.ReportService.
func (s *ReportServiceImpl) PayrollHistory(ctx context.Context, employeeID string, limit int) ([]payroll.PayrollDetailResponse, error) {
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
