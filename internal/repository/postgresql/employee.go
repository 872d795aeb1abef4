package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/abcco/payroll-backend-go/internal/domain/employee"
	"github.com/abcco/payroll-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepository) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			employee_id, first_name, last_name, phone, date_of_birth, gender,
			email, address1, address2, city, state, zip,
			status, hire_date, department, job_title
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		emp.EmployeeID, emp.FirstName, emp.LastName, emp.Phone, emp.DateOfBirth, emp.Gender,
		emp.Email, emp.Address1, emp.Address2, emp.City, emp.State, emp.Zip,
		emp.Status, emp.HireDate, emp.Department, emp.JobTitle,
	).Scan(&emp.CreatedAt, &emp.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			if strings.Contains(pgErr.ConstraintName, "email") {
				return employee.Employee{}, employee.ErrEmailExists
			}
			return employee.Employee{}, employee.ErrEmployeeExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return emp, nil
}

// CreateCompensation implements employee.EmployeeRepository.
func (r *employeeRepository) CreateCompensation(ctx context.Context, comp employee.Compensation) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO compensation (
			employee_id, pay_type, base_salary, hourly_rate, medical_plan, num_dependents
		) VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := q.Exec(ctx, query,
		comp.EmployeeID, comp.PayType, comp.BaseSalary, comp.HourlyRate, comp.MedicalPlan, comp.NumDependents,
	)
	if err != nil {
		return fmt.Errorf("failed to create compensation: %w", err)
	}

	return nil
}

// CreatePTOBalance implements employee.EmployeeRepository.
func (r *employeeRepository) CreatePTOBalance(ctx context.Context, balance employee.PTOBalance) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO pto_balances (employee_id, accrued, used)
		VALUES ($1, $2, $3)
	`

	_, err := q.Exec(ctx, query, balance.EmployeeID, balance.Accrued, balance.Used)
	if err != nil {
		return fmt.Errorf("failed to create PTO balance: %w", err)
	}

	return nil
}

const employeeSelect = `
	SELECT e.employee_id, e.first_name, e.last_name, e.phone, e.date_of_birth, e.gender,
		   e.email, e.address1, e.address2, e.city, e.state, e.zip,
		   e.status, e.hire_date, e.department, e.job_title, e.created_at, e.updated_at,
		   c.pay_type, c.base_salary, c.hourly_rate, c.medical_plan, c.num_dependents,
		   b.accrued, b.used
	FROM employees e
	LEFT JOIN compensation c ON c.employee_id = e.employee_id
	LEFT JOIN pto_balances b ON b.employee_id = e.employee_id`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	var payType, medicalPlan *string
	var baseSalary, hourlyRate *decimal.Decimal
	var numDependents *int
	var accrued, used *decimal.Decimal

	err := row.Scan(
		&emp.EmployeeID, &emp.FirstName, &emp.LastName, &emp.Phone, &emp.DateOfBirth, &emp.Gender,
		&emp.Email, &emp.Address1, &emp.Address2, &emp.City, &emp.State, &emp.Zip,
		&emp.Status, &emp.HireDate, &emp.Department, &emp.JobTitle, &emp.CreatedAt, &emp.UpdatedAt,
		&payType, &baseSalary, &hourlyRate, &medicalPlan, &numDependents,
		&accrued, &used,
	)
	if err != nil {
		return employee.Employee{}, err
	}

	if payType != nil {
		emp.Compensation = &employee.Compensation{
			EmployeeID:  emp.EmployeeID,
			PayType:     employee.PayType(*payType),
			BaseSalary:  baseSalary,
			HourlyRate:  hourlyRate,
			MedicalPlan: employee.MedicalPlan(safeString(medicalPlan)),
		}
		if numDependents != nil {
			emp.Compensation.NumDependents = *numDependents
		}
	}
	if accrued != nil && used != nil {
		emp.PTOBalance = &employee.PTOBalance{
			EmployeeID: emp.EmployeeID,
			Accrued:    *accrued,
			Used:       *used,
		}
	}

	return emp, nil
}

func safeString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepository) GetByID(ctx context.Context, employeeID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := employeeSelect + `
	WHERE e.employee_id = $1`

	emp, err := scanEmployee(q.QueryRow(ctx, query, employeeID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by ID: %w", err)
	}

	return emp, nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepository) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if !filter.IncludeTerminated {
		baseWhere += fmt.Sprintf(" AND e.status = $%d", argIdx)
		args = append(args, employee.StatusActive)
		argIdx++
	}
	if filter.Search != "" {
		baseWhere += fmt.Sprintf(" AND (e.first_name ILIKE $%d OR e.last_name ILIKE $%d OR e.employee_id ILIKE $%d)", argIdx, argIdx, argIdx)
		args = append(args, "%"+filter.Search+"%")
		argIdx++
	}
	if filter.Department != "" {
		baseWhere += fmt.Sprintf(" AND e.department = $%d", argIdx)
		args = append(args, filter.Department)
	}

	query := employeeSelect + `
	WHERE ` + baseWhere + `
	ORDER BY e.employee_id`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	return employees, nil
}

// GetAllForPayroll implements employee.EmployeeRepository.
func (r *employeeRepository) GetAllForPayroll(ctx context.Context, activeOnly bool) ([]employee.Employee, error) {
	filter := employee.EmployeeFilter{IncludeTerminated: !activeOnly}
	return r.List(ctx, filter)
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepository) Update(ctx context.Context, emp employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET first_name = $1, last_name = $2, phone = $3, gender = $4, email = $5,
			address1 = $6, address2 = $7, city = $8, state = $9, zip = $10,
			department = $11, job_title = $12, updated_at = $13
		WHERE employee_id = $14
		RETURNING employee_id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		emp.FirstName, emp.LastName, emp.Phone, emp.Gender, emp.Email,
		emp.Address1, emp.Address2, emp.City, emp.State, emp.Zip,
		emp.Department, emp.JobTitle, time.Now(), emp.EmployeeID,
	).Scan(&updatedID)

	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.ErrEmployeeNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return employee.ErrEmailExists
		}
		return fmt.Errorf("failed to update employee: %w", err)
	}

	return nil
}

// UpdateCompensation implements employee.EmployeeRepository.
func (r *employeeRepository) UpdateCompensation(ctx context.Context, comp employee.Compensation) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE compensation
		SET pay_type = $1, base_salary = $2, hourly_rate = $3,
			medical_plan = $4, num_dependents = $5, updated_at = $6
		WHERE employee_id = $7
		RETURNING employee_id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		comp.PayType, comp.BaseSalary, comp.HourlyRate,
		comp.MedicalPlan, comp.NumDependents, time.Now(), comp.EmployeeID,
	).Scan(&updatedID)

	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.ErrMissingCompensation
		}
		return fmt.Errorf("failed to update compensation: %w", err)
	}

	return nil
}

// UpdatePTOUsed implements employee.EmployeeRepository.
func (r *employeeRepository) UpdatePTOUsed(ctx context.Context, employeeID string, hoursDelta decimal.Decimal) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE pto_balances
		SET used = used + $1, updated_at = $2
		WHERE employee_id = $3
	`

	_, err := q.Exec(ctx, query, hoursDelta, time.Now(), employeeID)
	if err != nil {
		return fmt.Errorf("failed to update PTO used hours: %w", err)
	}

	return nil
}

// UpdateStatus implements employee.EmployeeRepository.
func (r *employeeRepository) UpdateStatus(ctx context.Context, employeeID string, status employee.Status) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET status = $1, updated_at = $2
		WHERE employee_id = $3
		RETURNING employee_id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, status, time.Now(), employeeID).Scan(&updatedID); err != nil {
		if err == pgx.ErrNoRows {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to update employee status: %w", err)
	}

	return nil
}

// HardDelete implements employee.EmployeeRepository. Child rows go first;
// callers wrap this in a transaction together with the login account delete.
func (r *employeeRepository) HardDelete(ctx context.Context, employeeID string) error {
	q := GetQuerier(ctx, r.db)

	statements := []string{
		`DELETE FROM compensation WHERE employee_id = $1`,
		`DELETE FROM pto_balances WHERE employee_id = $1`,
	}
	for _, stmt := range statements {
		if _, err := q.Exec(ctx, stmt, employeeID); err != nil {
			return fmt.Errorf("failed to delete employee child rows: %w", err)
		}
	}

	commandTag, err := q.Exec(ctx, `DELETE FROM employees WHERE employee_id = $1`, employeeID)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// NextEmployeeID implements employee.EmployeeRepository. IDs look like E001;
// the numeric suffix is the current maximum plus one.
func (r *employeeRepository) NextEmployeeID(ctx context.Context) (string, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(MAX(CAST(SUBSTRING(employee_id FROM 2) AS INTEGER)), 0)
		FROM employees
		WHERE employee_id ~ '^E[0-9]+$'
	`

	var maxID int
	if err := q.QueryRow(ctx, query).Scan(&maxID); err != nil {
		return "", fmt.Errorf("failed to compute next employee ID: %w", err)
	}

	return fmt.Sprintf("E%03d", maxID+1), nil
}

// Statistics implements employee.EmployeeRepository.
func (r *employeeRepository) Statistics(ctx context.Context) (employee.Statistics, error) {
	q := GetQuerier(ctx, r.db)

	var stats employee.Statistics

	query := `
		SELECT COUNT(*),
			   COUNT(*) FILTER (WHERE e.status = 'Active'),
			   COUNT(*) FILTER (WHERE e.status = 'Terminated'),
			   COUNT(*) FILTER (WHERE c.pay_type = 'Salary'),
			   COUNT(*) FILTER (WHERE c.pay_type = 'Hourly')
		FROM employees e
		LEFT JOIN compensation c ON c.employee_id = e.employee_id
	`
	err := q.QueryRow(ctx, query).Scan(
		&stats.TotalEmployees, &stats.ActiveEmployees, &stats.TerminatedEmployees,
		&stats.SalariedEmployees, &stats.HourlyEmployees,
	)
	if err != nil {
		return employee.Statistics{}, fmt.Errorf("failed to aggregate employee statistics: %w", err)
	}

	deptQuery := `
		SELECT department, COUNT(*)
		FROM employees
		WHERE status = 'Active'
		GROUP BY department
		ORDER BY department
	`
	rows, err := q.Query(ctx, deptQuery)
	if err != nil {
		return employee.Statistics{}, fmt.Errorf("failed to aggregate department counts: %w", err)
	}
	defer rows.Close()

	stats.ByDepartment = make(map[string]int64)
	for rows.Next() {
		var dept string
		var count int64
		if err := rows.Scan(&dept, &count); err != nil {
			return employee.Statistics{}, fmt.Errorf("failed to scan department count: %w", err)
		}
		stats.ByDepartment[dept] = count
	}

	return stats, nil
}

// Departments implements employee.EmployeeRepository.
func (r *employeeRepository) Departments(ctx context.Context) ([]string, error) {
	return r.distinctColumn(ctx, "department")
}

// JobTitles implements employee.EmployeeRepository.
func (r *employeeRepository) JobTitles(ctx context.Context) ([]string, error) {
	return r.distinctColumn(ctx, "job_title")
}

func (r *employeeRepository) distinctColumn(ctx context.Context, column string) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	// column is a compile-time constant from the two callers above
	query := fmt.Sprintf(`SELECT DISTINCT %s FROM employees WHERE %s <> '' ORDER BY %s`, column, column, column)

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query distinct %s: %w", column, err)
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", column, err)
		}
		values = append(values, v)
	}

	return values, nil
}
