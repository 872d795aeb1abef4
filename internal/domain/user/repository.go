package user

import (
	"context"
	"time"
)

// UserRepository defines data access methods for login accounts.
type UserRepository interface {
	// Create inserts an account. A username uniqueness violation surfaces
	// as ErrUsernameExists.
	Create(ctx context.Context, u User) (User, error)

	// GetByUsername retrieves an account by case-insensitive username
	GetByUsername(ctx context.Context, username string) (User, error)

	// GetByID retrieves an account by primary key
	GetByID(ctx context.Context, id string) (User, error)

	// UpdateLastLogin stamps the last successful login time
	UpdateLastLogin(ctx context.Context, id string, at time.Time) error

	// DeleteByEmployeeID removes the account tied to an employee, if any.
	// Used by the hard-delete cascade.
	DeleteByEmployeeID(ctx context.Context, employeeID string) error
}
