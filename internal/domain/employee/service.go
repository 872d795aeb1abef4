package employee

import "context"

// EmployeeService defines business logic for employee lifecycle and
// compensation management.
type EmployeeService interface {
	// Create adds an employee with compensation, PTO balance, and a login
	// account, all in one transaction.
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	// GetByID retrieves one employee with compensation and PTO balance
	GetByID(ctx context.Context, employeeID string) (EmployeeResponse, error)

	// List retrieves employees matching the filter
	List(ctx context.Context, filter EmployeeFilter) ([]EmployeeResponse, error)

	// Update applies partial changes to personal and compensation fields
	Update(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// Terminate is the reversible status transition Active -> Terminated
	Terminate(ctx context.Context, employeeID string) error

	// Reactivate reverses a termination
	Reactivate(ctx context.Context, employeeID string) error

	// HardDelete permanently removes the employee and every dependent
	// record. Irreversible; requires req.Confirmed.
	HardDelete(ctx context.Context, req HardDeleteRequest) error

	// Statistics aggregates headcounts for the admin dashboard
	Statistics(ctx context.Context) (StatisticsResponse, error)

	// Departments lists distinct department names
	Departments(ctx context.Context) ([]string, error)

	// JobTitles lists distinct job titles
	JobTitles(ctx context.Context) ([]string, error)
}
