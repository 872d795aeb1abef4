package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayType enum - closed set, unknown values are rejected at validation
type PayType string

const (
	PayTypeSalary PayType = "Salary"
	PayTypeHourly PayType = "Hourly"
)

// MedicalPlan enum
type MedicalPlan string

const (
	MedicalPlanSingle MedicalPlan = "Single"
	MedicalPlanFamily MedicalPlan = "Family"
)

// Status enum
type Status string

const (
	StatusActive     Status = "Active"
	StatusTerminated Status = "Terminated"
)

// Employee - personal and employment record
type Employee struct {
	EmployeeID  string // E001, E002, ...
	FirstName   string
	LastName    string
	Phone       string
	DateOfBirth time.Time
	Gender      string
	Email       string
	Address1    string
	Address2    *string
	City        string
	State       string
	Zip         string
	Status      Status
	HireDate    time.Time
	Department  string
	JobTitle    string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Joined fields
	Compensation *Compensation
	PTOBalance   *PTOBalance
}

// Compensation - pay terms the payroll calculation reads. Exactly one of
// BaseSalary/HourlyRate is set, matching PayType.
type Compensation struct {
	EmployeeID    string
	PayType       PayType
	BaseSalary    *decimal.Decimal // annual, PayTypeSalary only
	HourlyRate    *decimal.Decimal // PayTypeHourly only
	MedicalPlan   MedicalPlan
	NumDependents int
	UpdatedAt     time.Time
}

// PTOBalance - accrued and used PTO hours
type PTOBalance struct {
	EmployeeID string
	Accrued    decimal.Decimal
	Used       decimal.Decimal
	UpdatedAt  time.Time
}

// Balance is accrued minus used hours.
func (b PTOBalance) Balance() decimal.Decimal {
	return b.Accrued.Sub(b.Used)
}

// FullName joins first and last name.
func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// IsActive reports whether the employee has not been terminated.
func (e Employee) IsActive() bool {
	return e.Status == StatusActive
}

// Statistics - headcount roll-up for the admin dashboard
type Statistics struct {
	TotalEmployees      int64
	ActiveEmployees     int64
	TerminatedEmployees int64
	SalariedEmployees   int64
	HourlyEmployees     int64
	ByDepartment        map[string]int64
}
