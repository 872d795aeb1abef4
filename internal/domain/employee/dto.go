package employee

import (
	"github.com/abcco/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========== REQUEST DTOs ==========

type CreateEmployeeRequest struct {
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	Phone       string  `json:"phone"`
	DateOfBirth string  `json:"date_of_birth"` // YYYY-MM-DD
	Gender      string  `json:"gender,omitempty"`
	Email       string  `json:"email"`
	Address1    string  `json:"address1"`
	Address2    *string `json:"address2,omitempty"`
	City        string  `json:"city"`
	State       string  `json:"state"`
	Zip         string  `json:"zip"`
	HireDate    string  `json:"hire_date"` // YYYY-MM-DD
	Department  string  `json:"department"`
	JobTitle    string  `json:"job_title"`

	PayType       string           `json:"pay_type"` // "Salary" or "Hourly"
	BaseSalary    *decimal.Decimal `json:"base_salary,omitempty"`
	HourlyRate    *decimal.Decimal `json:"hourly_rate,omitempty"`
	MedicalPlan   string           `json:"medical_plan"` // "Single" or "Family"
	NumDependents int              `json:"num_dependents"`
}

// Validate checks shape-level rules. The minimum-age rule is enforced by the
// service, which owns the configured threshold.
func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{Field: "first_name", Message: "is required"})
	}
	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{Field: "last_name", Message: "is required"})
	}
	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "is required"})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email address"})
	}
	if !validator.IsEmpty(r.Phone) && !validator.IsValidPhoneNumber(r.Phone) {
		errs = append(errs, validator.ValidationError{Field: "phone", Message: "must be a valid phone number"})
	}
	if validator.IsEmpty(r.DateOfBirth) {
		errs = append(errs, validator.ValidationError{Field: "date_of_birth", Message: "is required"})
	} else if _, ok := validator.IsValidDate(r.DateOfBirth); !ok {
		errs = append(errs, validator.ValidationError{Field: "date_of_birth", Message: "must be a valid date in YYYY-MM-DD format"})
	}
	if validator.IsEmpty(r.HireDate) {
		errs = append(errs, validator.ValidationError{Field: "hire_date", Message: "is required"})
	} else if _, ok := validator.IsValidDate(r.HireDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "hire_date", Message: "must be a valid date in YYYY-MM-DD format"})
	}
	if !validator.IsEmpty(r.Zip) && !validator.IsValidZipCode(r.Zip) {
		errs = append(errs, validator.ValidationError{Field: "zip", Message: "must be a valid ZIP code"})
	}
	if validator.IsEmpty(r.Department) {
		errs = append(errs, validator.ValidationError{Field: "department", Message: "is required"})
	}
	if validator.IsEmpty(r.JobTitle) {
		errs = append(errs, validator.ValidationError{Field: "job_title", Message: "is required"})
	}

	errs = append(errs, validateCompensation(r.PayType, r.BaseSalary, r.HourlyRate, r.MedicalPlan, r.NumDependents)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	EmployeeID  string  `json:"-"`
	FirstName   *string `json:"first_name,omitempty"`
	LastName    *string `json:"last_name,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Gender      *string `json:"gender,omitempty"`
	Email       *string `json:"email,omitempty"`
	Address1    *string `json:"address1,omitempty"`
	Address2    *string `json:"address2,omitempty"`
	City        *string `json:"city,omitempty"`
	State       *string `json:"state,omitempty"`
	Zip         *string `json:"zip,omitempty"`
	Department  *string `json:"department,omitempty"`
	JobTitle    *string `json:"job_title,omitempty"`

	PayType       *string          `json:"pay_type,omitempty"`
	BaseSalary    *decimal.Decimal `json:"base_salary,omitempty"`
	HourlyRate    *decimal.Decimal `json:"hourly_rate,omitempty"`
	MedicalPlan   *string          `json:"medical_plan,omitempty"`
	NumDependents *int             `json:"num_dependents,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email address"})
	}
	if r.Phone != nil && !validator.IsEmpty(*r.Phone) && !validator.IsValidPhoneNumber(*r.Phone) {
		errs = append(errs, validator.ValidationError{Field: "phone", Message: "must be a valid phone number"})
	}
	if r.Zip != nil && !validator.IsEmpty(*r.Zip) && !validator.IsValidZipCode(*r.Zip) {
		errs = append(errs, validator.ValidationError{Field: "zip", Message: "must be a valid ZIP code"})
	}
	if r.PayType != nil && !validator.IsInSlice(*r.PayType, []string{string(PayTypeSalary), string(PayTypeHourly)}) {
		errs = append(errs, validator.ValidationError{Field: "pay_type", Message: "must be 'Salary' or 'Hourly'"})
	}
	if r.MedicalPlan != nil && !validator.IsInSlice(*r.MedicalPlan, []string{string(MedicalPlanSingle), string(MedicalPlanFamily)}) {
		errs = append(errs, validator.ValidationError{Field: "medical_plan", Message: "must be 'Single' or 'Family'"})
	}
	if r.NumDependents != nil && *r.NumDependents < 0 {
		errs = append(errs, validator.ValidationError{Field: "num_dependents", Message: "must be non-negative"})
	}
	if r.BaseSalary != nil && r.BaseSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "base_salary", Message: "must be non-negative"})
	}
	if r.HourlyRate != nil && r.HourlyRate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "hourly_rate", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validateCompensation(payType string, baseSalary, hourlyRate *decimal.Decimal, medicalPlan string, numDependents int) validator.ValidationErrors {
	var errs validator.ValidationErrors

	switch PayType(payType) {
	case PayTypeSalary:
		if baseSalary == nil || baseSalary.IsZero() {
			errs = append(errs, validator.ValidationError{Field: "base_salary", Message: "is required for salaried employees"})
		} else if baseSalary.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: "base_salary", Message: "must be positive"})
		}
	case PayTypeHourly:
		if hourlyRate == nil || hourlyRate.IsZero() {
			errs = append(errs, validator.ValidationError{Field: "hourly_rate", Message: "is required for hourly employees"})
		} else if hourlyRate.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: "hourly_rate", Message: "must be positive"})
		}
	default:
		errs = append(errs, validator.ValidationError{Field: "pay_type", Message: "must be 'Salary' or 'Hourly'"})
	}

	if !validator.IsInSlice(medicalPlan, []string{string(MedicalPlanSingle), string(MedicalPlanFamily)}) {
		errs = append(errs, validator.ValidationError{Field: "medical_plan", Message: "must be 'Single' or 'Family'"})
	}
	if numDependents < 0 {
		errs = append(errs, validator.ValidationError{Field: "num_dependents", Message: "must be non-negative"})
	}

	return errs
}

type HardDeleteRequest struct {
	EmployeeID string
	Confirmed  bool
}

// ========== RESPONSE DTOs ==========

type CompensationResponse struct {
	PayType       string           `json:"pay_type"`
	BaseSalary    *decimal.Decimal `json:"base_salary,omitempty"`
	HourlyRate    *decimal.Decimal `json:"hourly_rate,omitempty"`
	MedicalPlan   string           `json:"medical_plan"`
	NumDependents int              `json:"num_dependents"`
}

type PTOBalanceResponse struct {
	Accrued decimal.Decimal `json:"accrued"`
	Used    decimal.Decimal `json:"used"`
	Balance decimal.Decimal `json:"balance"`
}

type EmployeeResponse struct {
	EmployeeID  string  `json:"employee_id"`
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	Phone       string  `json:"phone,omitempty"`
	DateOfBirth string  `json:"date_of_birth"`
	Gender      string  `json:"gender,omitempty"`
	Email       string  `json:"email"`
	Address1    string  `json:"address1,omitempty"`
	Address2    *string `json:"address2,omitempty"`
	City        string  `json:"city,omitempty"`
	State       string  `json:"state,omitempty"`
	Zip         string  `json:"zip,omitempty"`
	Status      string  `json:"status"`
	HireDate    string  `json:"hire_date"`
	Department  string  `json:"department"`
	JobTitle    string  `json:"job_title"`

	Compensation *CompensationResponse `json:"compensation,omitempty"`
	PTOBalance   *PTOBalanceResponse   `json:"pto_balance,omitempty"`
}

func ToResponse(e Employee) EmployeeResponse {
	resp := EmployeeResponse{
		EmployeeID:  e.EmployeeID,
		FirstName:   e.FirstName,
		LastName:    e.LastName,
		Phone:       e.Phone,
		DateOfBirth: e.DateOfBirth.Format("2006-01-02"),
		Gender:      e.Gender,
		Email:       e.Email,
		Address1:    e.Address1,
		Address2:    e.Address2,
		City:        e.City,
		State:       e.State,
		Zip:         e.Zip,
		Status:      string(e.Status),
		HireDate:    e.HireDate.Format("2006-01-02"),
		Department:  e.Department,
		JobTitle:    e.JobTitle,
	}
	if e.Compensation != nil {
		resp.Compensation = &CompensationResponse{
			PayType:       string(e.Compensation.PayType),
			BaseSalary:    e.Compensation.BaseSalary,
			HourlyRate:    e.Compensation.HourlyRate,
			MedicalPlan:   string(e.Compensation.MedicalPlan),
			NumDependents: e.Compensation.NumDependents,
		}
	}
	if e.PTOBalance != nil {
		resp.PTOBalance = &PTOBalanceResponse{
			Accrued: e.PTOBalance.Accrued,
			Used:    e.PTOBalance.Used,
			Balance: e.PTOBalance.Balance(),
		}
	}
	return resp
}

type StatisticsResponse struct {
	TotalEmployees      int64            `json:"total_employees"`
	ActiveEmployees     int64            `json:"active_employees"`
	TerminatedEmployees int64            `json:"terminated_employees"`
	SalariedEmployees   int64            `json:"salaried_employees"`
	HourlyEmployees     int64            `json:"hourly_employees"`
	ByDepartment        map[string]int64 `json:"by_department"`
}
