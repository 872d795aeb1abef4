package employee

import (
	"context"
	"fmt"
	"strings"

	"github.com/abcco/payroll-backend-go/internal/config"
	"github.com/abcco/payroll-backend-go/internal/domain/employee"
	"github.com/abcco/payroll-backend-go/internal/domain/user"
	"github.com/abcco/payroll-backend-go/internal/pkg/database"
	"github.com/abcco/payroll-backend-go/internal/pkg/validator"
	"github.com/abcco/payroll-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

type EmployeeServiceImpl struct {
	db           *database.DB
	cfg          config.PayrollConfig
	employeeRepo employee.EmployeeRepository
	userRepo     user.UserRepository
}

func NewEmployeeService(
	db *database.DB,
	cfg config.PayrollConfig,
	employeeRepo employee.EmployeeRepository,
	userRepo user.UserRepository,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		db:           db,
		cfg:          cfg,
		employeeRepo: employeeRepo,
		userRepo:     userRepo,
	}
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	dob, _ := validator.IsValidDate(req.DateOfBirth)
	hireDate, _ := validator.IsValidDate(req.HireDate)

	if validator.AgeAt(dob, hireDate) < s.cfg.MinEmployeeAge {
		return employee.EmployeeResponse{}, validator.ValidationErrors{
			{Field: "date_of_birth", Message: fmt.Sprintf("employee must be at least %d years old on the hire date", s.cfg.MinEmployeeAge)},
		}
	}

	employeeID, err := s.employeeRepo.NextEmployeeID(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp := employee.Employee{
		EmployeeID:  employeeID,
		FirstName:   strings.TrimSpace(req.FirstName),
		LastName:    strings.TrimSpace(req.LastName),
		Phone:       req.Phone,
		DateOfBirth: dob,
		Gender:      req.Gender,
		Email:       strings.ToLower(strings.TrimSpace(req.Email)),
		Address1:    req.Address1,
		Address2:    req.Address2,
		City:        req.City,
		State:       req.State,
		Zip:         req.Zip,
		Status:      employee.StatusActive,
		HireDate:    hireDate,
		Department:  req.Department,
		JobTitle:    req.JobTitle,
	}

	comp := employee.Compensation{
		EmployeeID:    employeeID,
		PayType:       employee.PayType(req.PayType),
		BaseSalary:    req.BaseSalary,
		HourlyRate:    req.HourlyRate,
		MedicalPlan:   employee.MedicalPlan(req.MedicalPlan),
		NumDependents: req.NumDependents,
	}

	passwordHash, err := s.initialPasswordHash(emp.Email, req.DateOfBirth)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		created, err := s.employeeRepo.Create(txCtx, emp)
		if err != nil {
			return err
		}
		emp = created

		if err := s.employeeRepo.CreateCompensation(txCtx, comp); err != nil {
			return err
		}
		if err := s.employeeRepo.CreatePTOBalance(txCtx, employee.PTOBalance{
			EmployeeID: employeeID,
			Accrued:    decimal.Zero,
			Used:       decimal.Zero,
		}); err != nil {
			return err
		}

		_, err = s.userRepo.Create(txCtx, user.User{
			Username:     emp.Email,
			PasswordHash: passwordHash,
			UserType:     user.UserTypeEmployee,
			EmployeeID:   &employeeID,
			IsActive:     true,
		})
		return err
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return s.GetByID(ctx, employeeID)
}

// initialPasswordHash derives the first-login password: the email local part
// followed by the date of birth as MMDDYYYY. Employees are expected to change
// it on first login.
func (s *EmployeeServiceImpl) initialPasswordHash(email, dateOfBirth string) (string, error) {
	localPart, _, _ := strings.Cut(email, "@")
	dob, _ := validator.IsValidDate(dateOfBirth)

	hash, err := bcrypt.GenerateFromPassword([]byte(localPart+dob.Format("01022006")), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash initial password: %w", err)
	}
	return string(hash), nil
}

// GetByID implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetByID(ctx context.Context, employeeID string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(emp), nil
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	var result []employee.EmployeeResponse
	for _, emp := range employees {
		result = append(result, employee.ToResponse(emp))
	}
	return result, nil
}

// Update implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	applyString := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	applyString(&emp.FirstName, req.FirstName)
	applyString(&emp.LastName, req.LastName)
	applyString(&emp.Phone, req.Phone)
	applyString(&emp.Gender, req.Gender)
	applyString(&emp.Address1, req.Address1)
	applyString(&emp.City, req.City)
	applyString(&emp.State, req.State)
	applyString(&emp.Zip, req.Zip)
	applyString(&emp.Department, req.Department)
	applyString(&emp.JobTitle, req.JobTitle)
	if req.Email != nil {
		emp.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Address2 != nil {
		emp.Address2 = req.Address2
	}

	compChanged := req.PayType != nil || req.BaseSalary != nil || req.HourlyRate != nil ||
		req.MedicalPlan != nil || req.NumDependents != nil

	var comp employee.Compensation
	if compChanged {
		if emp.Compensation == nil {
			return employee.EmployeeResponse{}, employee.ErrMissingCompensation
		}
		comp = *emp.Compensation
		if req.PayType != nil {
			comp.PayType = employee.PayType(*req.PayType)
		}
		if req.BaseSalary != nil {
			comp.BaseSalary = req.BaseSalary
		}
		if req.HourlyRate != nil {
			comp.HourlyRate = req.HourlyRate
		}
		if req.MedicalPlan != nil {
			comp.MedicalPlan = employee.MedicalPlan(*req.MedicalPlan)
		}
		if req.NumDependents != nil {
			comp.NumDependents = *req.NumDependents
		}

		// The merged record must still satisfy pay-type consistency.
		if errs := validateMergedCompensation(comp); len(errs) > 0 {
			return employee.EmployeeResponse{}, errs
		}
	}

	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := s.employeeRepo.Update(txCtx, emp); err != nil {
			return err
		}
		if compChanged {
			return s.employeeRepo.UpdateCompensation(txCtx, comp)
		}
		return nil
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return s.GetByID(ctx, req.EmployeeID)
}

func validateMergedCompensation(comp employee.Compensation) validator.ValidationErrors {
	var errs validator.ValidationErrors
	switch comp.PayType {
	case employee.PayTypeSalary:
		if comp.BaseSalary == nil || !comp.BaseSalary.IsPositive() {
			errs = append(errs, validator.ValidationError{Field: "base_salary", Message: "is required for salaried employees"})
		}
	case employee.PayTypeHourly:
		if comp.HourlyRate == nil || !comp.HourlyRate.IsPositive() {
			errs = append(errs, validator.ValidationError{Field: "hourly_rate", Message: "is required for hourly employees"})
		}
	default:
		errs = append(errs, validator.ValidationError{Field: "pay_type", Message: "must be 'Salary' or 'Hourly'"})
	}
	return errs
}

// Terminate implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Terminate(ctx context.Context, employeeID string) error {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return err
	}
	if !emp.IsActive() {
		return employee.ErrAlreadyTerminated
	}
	return s.employeeRepo.UpdateStatus(ctx, employeeID, employee.StatusTerminated)
}

// Reactivate implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Reactivate(ctx context.Context, employeeID string) error {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return err
	}
	if emp.IsActive() {
		return employee.ErrAlreadyActive
	}
	return s.employeeRepo.UpdateStatus(ctx, employeeID, employee.StatusActive)
}

// HardDelete implements employee.EmployeeService.
func (s *EmployeeServiceImpl) HardDelete(ctx context.Context, req employee.HardDeleteRequest) error {
	if !req.Confirmed {
		return employee.ErrDeleteNotConfirmed
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return err
	}

	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := s.userRepo.DeleteByEmployeeID(txCtx, req.EmployeeID); err != nil {
			return err
		}
		return s.employeeRepo.HardDelete(txCtx, req.EmployeeID)
	})
}

// Statistics implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Statistics(ctx context.Context) (employee.StatisticsResponse, error) {
	stats, err := s.employeeRepo.Statistics(ctx)
	if err != nil {
		return employee.StatisticsResponse{}, err
	}
	return employee.StatisticsResponse{
		TotalEmployees:      stats.TotalEmployees,
		ActiveEmployees:     stats.ActiveEmployees,
		TerminatedEmployees: stats.TerminatedEmployees,
		SalariedEmployees:   stats.SalariedEmployees,
		HourlyEmployees:     stats.HourlyEmployees,
		ByDepartment:        stats.ByDepartment,
	}, nil
}

// Departments implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Departments(ctx context.Context) ([]string, error) {
	return s.employeeRepo.Departments(ctx)
}

// JobTitles implements employee.EmployeeService.
func (s *EmployeeServiceImpl) JobTitles(ctx context.Context) ([]string, error) {
	return s.employeeRepo.JobTitles(ctx)
}
