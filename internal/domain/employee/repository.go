package employee

import (
	"context"

	"github.com/shopspring/decimal"
)

// EmployeeFilter narrows List results.
type EmployeeFilter struct {
	IncludeTerminated bool
	Search            string // matches name or employee ID
	Department        string
}

// EmployeeRepository defines data access methods for employees and their
// compensation and PTO records.
type EmployeeRepository interface {
	// Create inserts the employee row. Compensation and PTO rows are written
	// by their own methods so the service can wrap all three in a transaction.
	Create(ctx context.Context, emp Employee) (Employee, error)

	// CreateCompensation inserts the pay terms for an employee
	CreateCompensation(ctx context.Context, comp Compensation) error

	// CreatePTOBalance inserts the PTO balance row for an employee
	CreatePTOBalance(ctx context.Context, balance PTOBalance) error

	// GetByID retrieves an employee with compensation and PTO balance joined
	GetByID(ctx context.Context, employeeID string) (Employee, error)

	// List retrieves employees matching the filter, ordered by employee ID
	List(ctx context.Context, filter EmployeeFilter) ([]Employee, error)

	// GetAllForPayroll retrieves employees with compensation joined for a
	// batch calculation run, optionally active employees only.
	GetAllForPayroll(ctx context.Context, activeOnly bool) ([]Employee, error)

	// Update overwrites the employee's mutable personal/employment fields
	Update(ctx context.Context, emp Employee) error

	// UpdateCompensation overwrites the employee's pay terms
	UpdateCompensation(ctx context.Context, comp Compensation) error

	// UpdatePTOUsed adds hoursDelta (may be negative) to the used column of
	// the PTO balance
	UpdatePTOUsed(ctx context.Context, employeeID string, hoursDelta decimal.Decimal) error

	// UpdateStatus sets Active or Terminated
	UpdateStatus(ctx context.Context, employeeID string, status Status) error

	// HardDelete permanently removes the employee and cascades to
	// compensation, PTO balance, and login account rows.
	HardDelete(ctx context.Context, employeeID string) error

	// NextEmployeeID generates the next sequential E### identifier
	NextEmployeeID(ctx context.Context) (string, error)

	// Statistics aggregates headcounts by status, pay type, and department
	Statistics(ctx context.Context) (Statistics, error)

	// Departments lists distinct department names
	Departments(ctx context.Context) ([]string, error)

	// JobTitles lists distinct job titles
	JobTitles(ctx context.Context) ([]string, error)
}
