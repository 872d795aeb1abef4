package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/abcco/payroll-backend-go/internal/domain/employee"
	"github.com/abcco/payroll-backend-go/internal/domain/payroll"
	"github.com/abcco/payroll-backend-go/internal/domain/timeentry"
	"github.com/abcco/payroll-backend-go/internal/repository/postgresql"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedEmployee(t *testing.T, employeeID string) {
	t.Helper()
	ctx := context.Background()
	repo := postgresql.NewEmployeeRepository(testDB)

	rate := decimal.NewFromInt(25)
	_, err := repo.Create(ctx, employee.Employee{
		EmployeeID:  employeeID,
		FirstName:   "Test",
		LastName:    "Employee",
		Phone:       "555-0100",
		DateOfBirth: time.Date(1990, 3, 14, 0, 0, 0, 0, time.UTC),
		Gender:      "F",
		Email:       employeeID + "@example.com",
		Address1:    "1 Main St",
		City:        "Springfield",
		State:       "IL",
		Zip:         "62701",
		Status:      employee.StatusActive,
		HireDate:    time.Date(2020, 1, 6, 0, 0, 0, 0, time.UTC),
		Department:  "Engineering",
		JobTitle:    "Engineer",
	})
	require.NoError(t, err)
	require.NoError(t, repo.CreateCompensation(ctx, employee.Compensation{
		EmployeeID:  employeeID,
		PayType:     employee.PayTypeHourly,
		HourlyRate:  &rate,
		MedicalPlan: employee.MedicalPlanSingle,
	}))
	require.NoError(t, repo.CreatePTOBalance(ctx, employee.PTOBalance{
		EmployeeID: employeeID,
		Accrued:    decimal.NewFromInt(40),
		Used:       decimal.Zero,
	}))
}

func seedPeriod(t *testing.T, start time.Time) payroll.PayPeriod {
	t.Helper()
	repo := postgresql.NewPayPeriodRepository(testDB)
	period, err := repo.Create(context.Background(), payroll.PayPeriod{
		StartDate: start,
		EndDate:   start.AddDate(0, 0, 6),
	})
	require.NoError(t, err)
	return period
}

func TestPayPeriodRepository_DuplicateDates(t *testing.T) {
	truncateAll(t)
	repo := postgresql.NewPayPeriodRepository(testDB)
	start := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	seedPeriod(t, start)

	_, err := repo.Create(context.Background(), payroll.PayPeriod{
		StartDate: start,
		EndDate:   start.AddDate(0, 0, 6),
	})
	assert.ErrorIs(t, err, payroll.ErrDuplicatePeriod)
}

func TestPayPeriodRepository_LockIsOneWay(t *testing.T) {
	truncateAll(t)
	ctx := context.Background()
	repo := postgresql.NewPayPeriodRepository(testDB)
	period := seedPeriod(t, time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC))

	require.NoError(t, repo.Lock(ctx, period.ID, "hr0001"))

	locked, err := repo.GetByID(ctx, period.ID)
	require.NoError(t, err)
	assert.True(t, locked.IsLocked)
	require.NotNil(t, locked.ProcessedBy)
	assert.Equal(t, "hr0001", *locked.ProcessedBy)
	assert.NotNil(t, locked.ProcessedAt)

	err = repo.Lock(ctx, period.ID, "hr0001")
	assert.ErrorIs(t, err, payroll.ErrAlreadyLocked)
}

func TestPayrollDetailRepository_SaveReplacesExisting(t *testing.T) {
	truncateAll(t)
	ctx := context.Background()
	seedEmployee(t, "E001")
	period := seedPeriod(t, time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC))
	repo := postgresql.NewPayrollDetailRepository(testDB)

	first, err := repo.Save(ctx, payroll.PayrollDetail{
		PayrollID:    period.ID,
		EmployeeID:   "E001",
		RegularHours: decimal.NewFromInt(40),
		TotalHours:   decimal.NewFromInt(40),
		BasePay:      decimal.NewFromInt(1000),
		GrossPay:     decimal.NewFromInt(1000),
		NetPay:       decimal.NewFromInt(800),
	})
	require.NoError(t, err)

	// Saving again for the same period and employee replaces the row
	second, err := repo.Save(ctx, payroll.PayrollDetail{
		PayrollID:    period.ID,
		EmployeeID:   "E001",
		RegularHours: decimal.NewFromInt(32),
		PTOHours:     decimal.NewFromInt(8),
		TotalHours:   decimal.NewFromInt(40),
		BasePay:      decimal.NewFromInt(1000),
		GrossPay:     decimal.NewFromInt(1000),
		NetPay:       decimal.NewFromInt(810),
	})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	got, err := repo.GetByPayrollAndEmployee(ctx, period.ID, "E001")
	require.NoError(t, err)
	assert.True(t, got.RegularHours.Equal(decimal.NewFromInt(32)))
	assert.True(t, got.PTOHours.Equal(decimal.NewFromInt(8)))
	assert.True(t, got.NetPay.Equal(decimal.NewFromInt(810)))

	all, err := repo.GetByPayroll(ctx, period.ID)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestPayrollDetailRepository_GetMissing(t *testing.T) {
	truncateAll(t)
	repo := postgresql.NewPayrollDetailRepository(testDB)

	_, err := repo.GetByPayrollAndEmployee(context.Background(), 999, "E404")
	assert.ErrorIs(t, err, payroll.ErrDetailNotFound)
}

func TestTimeEntryRepository_DuplicateDate(t *testing.T) {
	truncateAll(t)
	ctx := context.Background()
	seedEmployee(t, "E001")
	repo := postgresql.NewTimeEntryRepository(testDB)
	day := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)

	_, err := repo.Create(ctx, timeentry.NewEntry("E001", day, decimal.NewFromInt(8), decimal.Zero, ""))
	require.NoError(t, err)

	_, err = repo.Create(ctx, timeentry.NewEntry("E001", day, decimal.NewFromInt(4), decimal.Zero, ""))
	assert.ErrorIs(t, err, timeentry.ErrDuplicateEntry)
}

func TestTimeEntryRepository_AssignToPeriod(t *testing.T) {
	truncateAll(t)
	ctx := context.Background()
	seedEmployee(t, "E001")
	seedEmployee(t, "E002")
	start := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	period := seedPeriod(t, start)
	repo := postgresql.NewTimeEntryRepository(testDB)

	for i := 0; i < 3; i++ {
		_, err := repo.Create(ctx, timeentry.NewEntry("E001", start.AddDate(0, 0, i), decimal.NewFromInt(8), decimal.Zero, ""))
		require.NoError(t, err)
	}
	// Another employee's entry in the same window must be untouched
	_, err := repo.Create(ctx, timeentry.NewEntry("E002", start, decimal.NewFromInt(8), decimal.Zero, ""))
	require.NoError(t, err)

	assigned, err := repo.AssignToPeriod(ctx, "E001", start, start.AddDate(0, 0, 6), period.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 3, assigned)

	// Re-running assigns nothing new
	assigned, err = repo.AssignToPeriod(ctx, "E001", start, start.AddDate(0, 0, 6), period.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, assigned)

	entries, err := repo.GetByPeriod(ctx, period.ID)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
	for _, e := range entries {
		assert.Equal(t, "E001", e.EmployeeID)
		require.NotNil(t, e.PayrollID)
		assert.Equal(t, period.ID, *e.PayrollID)
	}

	other, err := repo.GetByEmployeeAndDate(ctx, "E002", start)
	require.NoError(t, err)
	require.NotNil(t, other)
	assert.Nil(t, other.PayrollID)
}

func TestEmployeeRepository_UpdatePTOUsed(t *testing.T) {
	truncateAll(t)
	ctx := context.Background()
	seedEmployee(t, "E001")
	repo := postgresql.NewEmployeeRepository(testDB)

	require.NoError(t, repo.UpdatePTOUsed(ctx, "E001", decimal.NewFromInt(8)))
	require.NoError(t, repo.UpdatePTOUsed(ctx, "E001", decimal.NewFromInt(-3)))

	emp, err := repo.GetByID(ctx, "E001")
	require.NoError(t, err)
	require.NotNil(t, emp.PTOBalance)
	assert.True(t, emp.PTOBalance.Used.Equal(decimal.NewFromInt(5)))
	assert.True(t, emp.PTOBalance.Balance().Equal(decimal.NewFromInt(35)))
}
