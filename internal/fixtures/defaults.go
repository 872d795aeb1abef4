package fixtures

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/abcco/payroll-backend-go/internal/domain/user"
	"golang.org/x/crypto/bcrypt"
)

// DefaultAdminUsername is the account seeded on first startup so the system
// is usable before any employees exist.
const DefaultAdminUsername = "hr0001"

// SeedDefaultAdmin creates the default admin account when no account with
// that username exists yet. The initial password comes from
// ADMIN_DEFAULT_PASSWORD and must be changed after first login.
func SeedDefaultAdmin(ctx context.Context, userRepo user.UserRepository) error {
	_, err := userRepo.GetByUsername(ctx, DefaultAdminUsername)
	if err == nil {
		return nil
	}
	if !errors.Is(err, user.ErrUserNotFound) {
		return fmt.Errorf("check default admin: %w", err)
	}

	password := os.Getenv("ADMIN_DEFAULT_PASSWORD")
	if password == "" {
		return fmt.Errorf("ADMIN_DEFAULT_PASSWORD is required to seed the default admin account")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash default admin password: %w", err)
	}

	_, err = userRepo.Create(ctx, user.User{
		Username:     DefaultAdminUsername,
		PasswordHash: string(hash),
		UserType:     user.UserTypeAdmin,
		IsActive:     true,
	})
	if err != nil {
		// Another instance may have seeded it first
		if errors.Is(err, user.ErrUsernameExists) {
			return nil
		}
		return fmt.Errorf("seed default admin: %w", err)
	}

	slog.Info("Seeded default admin account", "username", DefaultAdminUsername)
	return nil
}
