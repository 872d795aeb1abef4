package auth

import "github.com/abcco/payroll-backend-go/internal/pkg/validator"

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Username) {
		errs = append(errs, validator.ValidationError{Field: "username", Message: "is required"})
	}
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TokenResponse struct {
	AccessToken string  `json:"access_token"`
	ExpiresAt   int64   `json:"expires_at"`
	UserID      string  `json:"user_id"`
	Username    string  `json:"username"`
	UserType    string  `json:"user_type"`
	EmployeeID  *string `json:"employee_id,omitempty"`
}

type MeResponse struct {
	UserID     string  `json:"user_id"`
	Username   string  `json:"username"`
	UserType   string  `json:"user_type"`
	EmployeeID *string `json:"employee_id,omitempty"`
}
