package payroll

import (
	"github.com/abcco/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========== REQUEST DTOs ==========

type CalculatePayrollRequest struct {
	EmployeeID string `json:"employee_id"`
	StartDate  string `json:"start_date"` // Monday, YYYY-MM-DD
	EndDate    string `json:"end_date"`   // Sunday, YYYY-MM-DD
}

func (r *CalculatePayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	errs = append(errs, validatePeriodDates(r.StartDate, r.EndDate)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CalculateAllPayrollRequest struct {
	StartDate  string `json:"start_date,omitempty"` // empty = current period
	EndDate    string `json:"end_date,omitempty"`
	ActiveOnly *bool  `json:"active_only,omitempty"` // defaults to true
}

func (r *CalculateAllPayrollRequest) Validate() error {
	// Both dates empty means "current period"; otherwise both are required.
	if r.StartDate == "" && r.EndDate == "" {
		return nil
	}
	if errs := validatePeriodDates(r.StartDate, r.EndDate); len(errs) > 0 {
		return errs
	}
	return nil
}

type AutoFillRequest struct {
	EmployeeID string `json:"employee_id,omitempty"` // empty = all active salaried
	StartDate  string `json:"start_date,omitempty"`  // empty = current period
	EndDate    string `json:"end_date,omitempty"`
}

func (r *AutoFillRequest) Validate() error {
	if r.StartDate == "" && r.EndDate == "" {
		return nil
	}
	if errs := validatePeriodDates(r.StartDate, r.EndDate); len(errs) > 0 {
		return errs
	}
	return nil
}

func validatePeriodDates(startDate, endDate string) validator.ValidationErrors {
	var errs validator.ValidationErrors

	start, startOK := validator.IsValidDate(startDate)
	end, endOK := validator.IsValidDate(endDate)

	if validator.IsEmpty(startDate) {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "is required"})
	} else if !startOK {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be a valid date in YYYY-MM-DD format"})
	}
	if validator.IsEmpty(endDate) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "is required"})
	} else if !endOK {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be a valid date in YYYY-MM-DD format"})
	}

	if startOK && endOK && !IsValidPeriod(start, end) {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "period must run Monday through the following Sunday"})
	}

	return errs
}

// ========== RESPONSE DTOs ==========

type PayPeriodResponse struct {
	ID          int64   `json:"id"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	IsLocked    bool    `json:"is_locked"`
	ProcessedAt *string `json:"processed_at,omitempty"`
	ProcessedBy *string `json:"processed_by,omitempty"`
}

func ToPeriodResponse(p PayPeriod) PayPeriodResponse {
	resp := PayPeriodResponse{
		ID:        p.ID,
		StartDate: p.StartDate.Format("2006-01-02"),
		EndDate:   p.EndDate.Format("2006-01-02"),
		IsLocked:  p.IsLocked,
	}
	if p.ProcessedAt != nil {
		str := p.ProcessedAt.Format("2006-01-02 15:04:05")
		resp.ProcessedAt = &str
	}
	resp.ProcessedBy = p.ProcessedBy
	return resp
}

type PayrollDetailResponse struct {
	ID           int64   `json:"id"`
	PayrollID    int64   `json:"payroll_id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	PeriodStart  *string `json:"period_start,omitempty"`
	PeriodEnd    *string `json:"period_end,omitempty"`

	RegularHours  decimal.Decimal `json:"regular_hours"`
	OvertimeHours decimal.Decimal `json:"overtime_hours"`
	WeekendHours  decimal.Decimal `json:"weekend_hours"`
	PTOHours      decimal.Decimal `json:"pto_hours"`
	TotalHours    decimal.Decimal `json:"total_hours"`

	BasePay          decimal.Decimal `json:"base_pay"`
	OvertimePay      decimal.Decimal `json:"overtime_pay"`
	WeekendPay       decimal.Decimal `json:"weekend_pay"`
	DependentStipend decimal.Decimal `json:"dependent_stipend"`
	GrossPay         decimal.Decimal `json:"gross_pay"`

	MedicalDeduction   decimal.Decimal `json:"medical_deduction"`
	TaxableIncome      decimal.Decimal `json:"taxable_income"`
	StateTax           decimal.Decimal `json:"state_tax"`
	FederalTax         decimal.Decimal `json:"federal_tax"`
	SocialSecurityTax  decimal.Decimal `json:"social_security_tax"`
	MedicareTax        decimal.Decimal `json:"medicare_tax"`
	TotalEmployeeTaxes decimal.Decimal `json:"total_employee_taxes"`
	NetPay             decimal.Decimal `json:"net_pay"`

	EmployerFederalTax        decimal.Decimal `json:"employer_federal_tax"`
	EmployerSocialSecurityTax decimal.Decimal `json:"employer_social_security_tax"`
	EmployerMedicareTax       decimal.Decimal `json:"employer_medicare_tax"`
	TotalEmployerTaxes        decimal.Decimal `json:"total_employer_taxes"`

	CalculatedAt string `json:"calculated_at"`
}

func ToDetailResponse(d PayrollDetail) PayrollDetailResponse {
	resp := PayrollDetailResponse{
		ID:           d.ID,
		PayrollID:    d.PayrollID,
		EmployeeID:   d.EmployeeID,
		EmployeeName: d.EmployeeName,

		RegularHours:  d.RegularHours,
		OvertimeHours: d.OvertimeHours,
		WeekendHours:  d.WeekendHours,
		PTOHours:      d.PTOHours,
		TotalHours:    d.TotalHours,

		BasePay:          d.BasePay,
		OvertimePay:      d.OvertimePay,
		WeekendPay:       d.WeekendPay,
		DependentStipend: d.DependentStipend,
		GrossPay:         d.GrossPay,

		MedicalDeduction:   d.MedicalDeduction,
		TaxableIncome:      d.TaxableIncome,
		StateTax:           d.StateTax,
		FederalTax:         d.FederalTax,
		SocialSecurityTax:  d.SocialSecurityTax,
		MedicareTax:        d.MedicareTax,
		TotalEmployeeTaxes: d.TotalEmployeeTaxes,
		NetPay:             d.NetPay,

		EmployerFederalTax:        d.EmployerFederalTax,
		EmployerSocialSecurityTax: d.EmployerSocialSecurityTax,
		EmployerMedicareTax:       d.EmployerMedicareTax,
		TotalEmployerTaxes:        d.TotalEmployerTaxes,

		CalculatedAt: d.CalculatedAt.Format("2006-01-02 15:04:05"),
	}
	if d.PeriodStartDate != nil {
		str := d.PeriodStartDate.Format("2006-01-02")
		resp.PeriodStart = &str
	}
	if d.PeriodEndDate != nil {
		str := d.PeriodEndDate.Format("2006-01-02")
		resp.PeriodEnd = &str
	}
	return resp
}

// CalculationFailure records why one employee's calculation failed during a
// batch run. Batch runs report failures instead of aborting on them.
type CalculationFailure struct {
	EmployeeID string `json:"employee_id"`
	Reason     string `json:"reason"`
}

type BatchCalculationResponse struct {
	RunID     string                  `json:"run_id"`
	Period    PayPeriodResponse       `json:"period"`
	Succeeded []PayrollDetailResponse `json:"succeeded"`
	Failed    []CalculationFailure    `json:"failed"`
}

type AutoFillResponse struct {
	EntriesCreated int `json:"entries_created"`
}
