package postgresql_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/abcco/payroll-backend-go/internal/domain/user"
	"github.com/abcco/payroll-backend-go/internal/pkg/database"
	"github.com/abcco/payroll-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var testDB *database.DB

func TestMain(m *testing.M) {
	setup, err := NewTestDatabase()
	if err != nil {
		// No database available; integration tests cannot run
		os.Exit(0)
	}
	testDB = setup.DB

	code := m.Run()
	setup.Close()
	os.Exit(code)
}

func truncateAll(t *testing.T) {
	t.Helper()
	setup := &TestDatabaseSetup{DB: testDB}
	require.NoError(t, setup.TruncateAllTables(context.Background()))
}

func hashFor(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestUserRepository_CreateAndGet(t *testing.T) {
	truncateAll(t)
	ctx := context.Background()
	repo := postgresql.NewUserRepository(testDB)

	created, err := repo.Create(ctx, user.User{
		Username:     "hr0001",
		PasswordHash: hashFor(t, "secret"),
		UserType:     user.UserTypeAdmin,
		IsActive:     true,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	// Username lookup is case-insensitive
	got, err := repo.GetByUsername(ctx, "HR0001")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.True(t, got.IsAdmin())

	got, err = repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "hr0001", got.Username)
}

func TestUserRepository_DuplicateUsername(t *testing.T) {
	truncateAll(t)
	ctx := context.Background()
	repo := postgresql.NewUserRepository(testDB)

	_, err := repo.Create(ctx, user.User{
		Username:     "hr0001",
		PasswordHash: hashFor(t, "secret"),
		UserType:     user.UserTypeAdmin,
		IsActive:     true,
	})
	require.NoError(t, err)

	_, err = repo.Create(ctx, user.User{
		Username:     "hr0001",
		PasswordHash: hashFor(t, "other"),
		UserType:     user.UserTypeAdmin,
		IsActive:     true,
	})
	assert.ErrorIs(t, err, user.ErrUsernameExists)
}

func TestUserRepository_GetByUsernameNotFound(t *testing.T) {
	truncateAll(t)
	repo := postgresql.NewUserRepository(testDB)

	_, err := repo.GetByUsername(context.Background(), "nobody")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestUserRepository_UpdateLastLogin(t *testing.T) {
	truncateAll(t)
	ctx := context.Background()
	repo := postgresql.NewUserRepository(testDB)

	created, err := repo.Create(ctx, user.User{
		Username:     "hr0001",
		PasswordHash: hashFor(t, "secret"),
		UserType:     user.UserTypeAdmin,
		IsActive:     true,
	})
	require.NoError(t, err)
	assert.Nil(t, created.LastLoginAt)

	now := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, repo.UpdateLastLogin(ctx, created.ID, now))

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got.LastLoginAt)
	assert.WithinDuration(t, now, *got.LastLoginAt, time.Second)
}
