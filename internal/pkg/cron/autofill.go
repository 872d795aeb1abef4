package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/abcco/payroll-backend-go/internal/domain/payroll"
)

type PayrollJobs struct {
	payrollSvc payroll.PayrollService
}

func NewPayrollJobs(payrollSvc payroll.PayrollService) *PayrollJobs {
	return &PayrollJobs{payrollSvc: payrollSvc}
}

func (j *PayrollJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("auto_fill_salaried_hours", 1*time.Hour, j.AutoFillSalariedHours)
}

// AutoFillSalariedHours tops up the current period with standard workdays
// for salaried employees, so their entries exist before payroll runs.
func (j *PayrollJobs) AutoFillSalariedHours(ctx context.Context) error {
	// Only run in the early morning (05:00-05:59 UTC)
	if time.Now().UTC().Hour() != 5 {
		return nil
	}

	slog.Info("Cron: Starting salaried auto-fill job")

	resp, err := j.payrollSvc.AutoFillSalariedHours(ctx, payroll.AutoFillRequest{})
	if err != nil {
		return fmt.Errorf("failed to auto-fill salaried hours: %w", err)
	}

	slog.Info("Cron: Salaried auto-fill completed", "entries_created", resp.EntriesCreated)
	return nil
}
