package postgresql

import (
	"context"
	"fmt"

	"github.com/abcco/payroll-backend-go/internal/domain/report"
	"github.com/abcco/payroll-backend-go/internal/pkg/database"
)

type reportRepository struct {
	db *database.DB
}

func NewReportRepository(db *database.DB) report.ReportRepository {
	return &reportRepository{db: db}
}

// PeriodSummaryTotals implements report.ReportRepository. A period with no
// details returns all-zero totals rather than an error.
func (r *reportRepository) PeriodSummaryTotals(ctx context.Context, periodID int64) (report.SummaryTotals, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*),
			   COALESCE(SUM(regular_hours), 0),
			   COALESCE(SUM(overtime_hours), 0),
			   COALESCE(SUM(weekend_hours), 0),
			   COALESCE(SUM(pto_hours), 0),
			   COALESCE(SUM(total_hours), 0),
			   COALESCE(SUM(gross_pay), 0),
			   COALESCE(SUM(dependent_stipend), 0),
			   COALESCE(SUM(medical_deduction), 0),
			   COALESCE(SUM(total_employee_taxes), 0),
			   COALESCE(SUM(total_employer_taxes), 0),
			   COALESCE(SUM(net_pay), 0)
		FROM payroll_details
		WHERE payroll_id = $1
	`

	var totals report.SummaryTotals
	err := q.QueryRow(ctx, query, periodID).Scan(
		&totals.EmployeeCount,
		&totals.RegularHours,
		&totals.OvertimeHours,
		&totals.WeekendHours,
		&totals.PTOHours,
		&totals.TotalHours,
		&totals.GrossPay,
		&totals.DependentStipends,
		&totals.MedicalDeductions,
		&totals.TotalEmployeeTaxes,
		&totals.TotalEmployerTaxes,
		&totals.NetPay,
	)
	if err != nil {
		return report.SummaryTotals{}, fmt.Errorf("failed to aggregate period summary: %w", err)
	}

	return totals, nil
}
