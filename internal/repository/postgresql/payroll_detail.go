package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/abcco/payroll-backend-go/internal/domain/payroll"
	"github.com/abcco/payroll-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type payrollDetailRepository struct {
	db *database.DB
}

func NewPayrollDetailRepository(db *database.DB) payroll.DetailRepository {
	return &payrollDetailRepository{db: db}
}

const detailColumns = `
	d.id, d.payroll_id, d.employee_id,
	d.regular_hours, d.overtime_hours, d.weekend_hours, d.pto_hours, d.total_hours,
	d.base_pay, d.overtime_pay, d.weekend_pay, d.dependent_stipend, d.gross_pay,
	d.medical_deduction, d.taxable_income,
	d.state_tax, d.federal_tax, d.social_security_tax, d.medicare_tax, d.total_employee_taxes,
	d.net_pay,
	d.employer_federal_tax, d.employer_social_security_tax, d.employer_medicare_tax, d.total_employer_taxes,
	d.calculated_at`

func scanDetail(row pgx.Row, extra ...interface{}) (payroll.PayrollDetail, error) {
	var d payroll.PayrollDetail
	dest := []interface{}{
		&d.ID, &d.PayrollID, &d.EmployeeID,
		&d.RegularHours, &d.OvertimeHours, &d.WeekendHours, &d.PTOHours, &d.TotalHours,
		&d.BasePay, &d.OvertimePay, &d.WeekendPay, &d.DependentStipend, &d.GrossPay,
		&d.MedicalDeduction, &d.TaxableIncome,
		&d.StateTax, &d.FederalTax, &d.SocialSecurityTax, &d.MedicareTax, &d.TotalEmployeeTaxes,
		&d.NetPay,
		&d.EmployerFederalTax, &d.EmployerSocialSecurityTax, &d.EmployerMedicareTax, &d.TotalEmployerTaxes,
		&d.CalculatedAt,
	}

	err := row.Scan(append(dest, extra...)...)
	return d, err
}

// GetByID implements payroll.DetailRepository.
func (r *payrollDetailRepository) GetByID(ctx context.Context, id int64) (payroll.PayrollDetail, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + detailColumns + `,
			p.start_date, p.end_date
		FROM payroll_details d
		JOIN pay_periods p ON p.id = d.payroll_id
		WHERE d.id = $1
	`

	var periodStart, periodEnd time.Time
	detail, err := scanDetail(q.QueryRow(ctx, query, id), &periodStart, &periodEnd)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayrollDetail{}, payroll.ErrDetailNotFound
		}
		return payroll.PayrollDetail{}, fmt.Errorf("failed to get payroll detail by ID: %w", err)
	}
	detail.PeriodStartDate = &periodStart
	detail.PeriodEndDate = &periodEnd

	return detail, nil
}

// GetByPayrollAndEmployee implements payroll.DetailRepository.
func (r *payrollDetailRepository) GetByPayrollAndEmployee(ctx context.Context, periodID int64, employeeID string) (payroll.PayrollDetail, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + detailColumns + `
		FROM payroll_details d
		WHERE d.payroll_id = $1
		  AND d.employee_id = $2
	`

	detail, err := scanDetail(q.QueryRow(ctx, query, periodID, employeeID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayrollDetail{}, payroll.ErrDetailNotFound
		}
		return payroll.PayrollDetail{}, fmt.Errorf("failed to get payroll detail: %w", err)
	}

	return detail, nil
}

// GetByPayroll implements payroll.DetailRepository.
func (r *payrollDetailRepository) GetByPayroll(ctx context.Context, periodID int64) ([]payroll.PayrollDetail, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + detailColumns + `,
			e.first_name || ' ' || e.last_name AS employee_name
		FROM payroll_details d
		LEFT JOIN employees e ON e.employee_id = d.employee_id
		WHERE d.payroll_id = $1
		ORDER BY d.employee_id
	`

	rows, err := q.Query(ctx, query, periodID)
	if err != nil {
		return nil, fmt.Errorf("failed to query payroll details: %w", err)
	}
	defer rows.Close()

	var details []payroll.PayrollDetail
	for rows.Next() {
		var employeeName *string
		detail, err := scanDetail(rows, &employeeName)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll detail: %w", err)
		}
		detail.EmployeeName = employeeName
		details = append(details, detail)
	}

	return details, nil
}

// GetByEmployee implements payroll.DetailRepository.
func (r *payrollDetailRepository) GetByEmployee(ctx context.Context, employeeID string, limit int) ([]payroll.PayrollDetail, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + detailColumns + `,
			p.start_date, p.end_date
		FROM payroll_details d
		JOIN pay_periods p ON p.id = d.payroll_id
		WHERE d.employee_id = $1
		ORDER BY p.start_date DESC
	`
	args := []interface{}{employeeID}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query payroll history: %w", err)
	}
	defer rows.Close()

	var details []payroll.PayrollDetail
	for rows.Next() {
		var periodStart, periodEnd time.Time
		detail, err := scanDetail(rows, &periodStart, &periodEnd)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll history row: %w", err)
		}
		detail.PeriodStartDate = &periodStart
		detail.PeriodEndDate = &periodEnd
		details = append(details, detail)
	}

	return details, nil
}

// Save implements payroll.DetailRepository. Insert-or-overwrite keyed by
// (payroll_id, employee_id); every computed field is replaced on conflict.
func (r *payrollDetailRepository) Save(ctx context.Context, detail payroll.PayrollDetail) (payroll.PayrollDetail, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_details (
			payroll_id, employee_id,
			regular_hours, overtime_hours, weekend_hours, pto_hours, total_hours,
			base_pay, overtime_pay, weekend_pay, dependent_stipend, gross_pay,
			medical_deduction, taxable_income,
			state_tax, federal_tax, social_security_tax, medicare_tax, total_employee_taxes,
			net_pay,
			employer_federal_tax, employer_social_security_tax, employer_medicare_tax, total_employer_taxes,
			calculated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18, $19, $20, $21, $22, $23, $24, NOW()
		)
		ON CONFLICT (payroll_id, employee_id) DO UPDATE SET
			regular_hours = EXCLUDED.regular_hours,
			overtime_hours = EXCLUDED.overtime_hours,
			weekend_hours = EXCLUDED.weekend_hours,
			pto_hours = EXCLUDED.pto_hours,
			total_hours = EXCLUDED.total_hours,
			base_pay = EXCLUDED.base_pay,
			overtime_pay = EXCLUDED.overtime_pay,
			weekend_pay = EXCLUDED.weekend_pay,
			dependent_stipend = EXCLUDED.dependent_stipend,
			gross_pay = EXCLUDED.gross_pay,
			medical_deduction = EXCLUDED.medical_deduction,
			taxable_income = EXCLUDED.taxable_income,
			state_tax = EXCLUDED.state_tax,
			federal_tax = EXCLUDED.federal_tax,
			social_security_tax = EXCLUDED.social_security_tax,
			medicare_tax = EXCLUDED.medicare_tax,
			total_employee_taxes = EXCLUDED.total_employee_taxes,
			net_pay = EXCLUDED.net_pay,
			employer_federal_tax = EXCLUDED.employer_federal_tax,
			employer_social_security_tax = EXCLUDED.employer_social_security_tax,
			employer_medicare_tax = EXCLUDED.employer_medicare_tax,
			total_employer_taxes = EXCLUDED.total_employer_taxes,
			calculated_at = NOW()
		RETURNING id, calculated_at
	`

	err := q.QueryRow(ctx, query,
		detail.PayrollID, detail.EmployeeID,
		detail.RegularHours, detail.OvertimeHours, detail.WeekendHours, detail.PTOHours, detail.TotalHours,
		detail.BasePay, detail.OvertimePay, detail.WeekendPay, detail.DependentStipend, detail.GrossPay,
		detail.MedicalDeduction, detail.TaxableIncome,
		detail.StateTax, detail.FederalTax, detail.SocialSecurityTax, detail.MedicareTax, detail.TotalEmployeeTaxes,
		detail.NetPay,
		detail.EmployerFederalTax, detail.EmployerSocialSecurityTax, detail.EmployerMedicareTax, detail.TotalEmployerTaxes,
	).Scan(&detail.ID, &detail.CalculatedAt)

	if err != nil {
		return payroll.PayrollDetail{}, fmt.Errorf("failed to save payroll detail: %w", err)
	}

	return detail, nil
}
