package user

import "time"

// UserType enum
type UserType string

const (
	UserTypeAdmin    UserType = "Admin"
	UserTypeEmployee UserType = "Employee"
)

// User - a login account. Employee accounts carry the employee ID their
// self-service routes operate on; admin accounts do not.
type User struct {
	ID           string // uuid
	Username     string
	PasswordHash string
	UserType     UserType
	EmployeeID   *string
	IsActive     bool
	LastLoginAt  *time.Time
	CreatedAt    time.Time
}

// IsAdmin reports whether the account has admin privileges.
func (u User) IsAdmin() bool {
	return u.UserType == UserTypeAdmin
}
