package payroll

import (
	"context"
	"testing"
	"time"

	"github.com/abcco/payroll-backend-go/internal/config"
	"github.com/abcco/payroll-backend-go/internal/domain/employee"
	"github.com/abcco/payroll-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPeriodRepo struct {
	payroll.PeriodRepository
	period payroll.PayPeriod
}

func (s *stubPeriodRepo) GetByDates(ctx context.Context, start, end time.Time) (payroll.PayPeriod, error) {
	return s.period, nil
}

type stubDetailRepo struct {
	payroll.DetailRepository
	detail    payroll.PayrollDetail
	getErr    error
	saveCalls int
}

func (s *stubDetailRepo) GetByPayrollAndEmployee(ctx context.Context, periodID int64, employeeID string) (payroll.PayrollDetail, error) {
	if s.getErr != nil {
		return payroll.PayrollDetail{}, s.getErr
	}
	return s.detail, nil
}

func (s *stubDetailRepo) Save(ctx context.Context, detail payroll.PayrollDetail) (payroll.PayrollDetail, error) {
	s.saveCalls++
	return detail, nil
}

type stubEmployeeRepo struct {
	employee.EmployeeRepository
	emp employee.Employee
}

func (s *stubEmployeeRepo) GetByID(ctx context.Context, employeeID string) (employee.Employee, error) {
	return s.emp, nil
}

func lockedTestService(detailRepo *stubDetailRepo) payroll.PayrollService {
	rate := decimal.NewFromInt(25)
	return NewPayrollService(
		nil,
		config.PayrollConfig{},
		NewCalculator(testCalculatorConfig()),
		&stubPeriodRepo{period: payroll.PayPeriod{
			ID:        7,
			StartDate: testMonday,
			EndDate:   testMonday.AddDate(0, 0, 6),
			IsLocked:  true,
		}},
		detailRepo,
		nil,
		&stubEmployeeRepo{emp: employee.Employee{
			EmployeeID: "E001",
			Status:     employee.StatusActive,
			Compensation: &employee.Compensation{
				EmployeeID: "E001",
				PayType:    employee.PayTypeHourly,
				HourlyRate: &rate,
			},
		}},
		nil,
		nil,
	)
}

// A locked period's calculations are frozen. Recalculating must hand back
// the stored detail untouched, without writing anything.
func TestCalculateWeeklyPay_LockedPeriodReturnsStoredDetail(t *testing.T) {
	stored := payroll.PayrollDetail{
		ID:           42,
		PayrollID:    7,
		EmployeeID:   "E001",
		RegularHours: decimal.NewFromInt(40),
		TotalHours:   decimal.NewFromInt(40),
		GrossPay:     decimal.RequireFromString("1000.00"),
		NetPay:       decimal.RequireFromString("778.15"),
	}
	detailRepo := &stubDetailRepo{detail: stored}
	svc := lockedTestService(detailRepo)

	resp, err := svc.CalculateWeeklyPay(context.Background(), payroll.CalculatePayrollRequest{
		EmployeeID: "E001",
		StartDate:  "2026-01-05",
		EndDate:    "2026-01-11",
	})
	require.NoError(t, err)

	assert.Equal(t, stored.ID, resp.ID)
	assert.True(t, resp.GrossPay.Equal(stored.GrossPay), "gross pay: %s", resp.GrossPay)
	assert.True(t, resp.NetPay.Equal(stored.NetPay), "net pay: %s", resp.NetPay)
	assert.Zero(t, detailRepo.saveCalls, "locked period must not be written to")
}

func TestCalculateWeeklyPay_LockedPeriodWithoutDetailFails(t *testing.T) {
	detailRepo := &stubDetailRepo{getErr: payroll.ErrDetailNotFound}
	svc := lockedTestService(detailRepo)

	_, err := svc.CalculateWeeklyPay(context.Background(), payroll.CalculatePayrollRequest{
		EmployeeID: "E001",
		StartDate:  "2026-01-05",
		EndDate:    "2026-01-11",
	})
	assert.ErrorIs(t, err, payroll.ErrPeriodLocked)
	assert.Zero(t, detailRepo.saveCalls)
}

func TestGetOrCreatePeriod_RejectsNonWeekWindows(t *testing.T) {
	svc := lockedTestService(&stubDetailRepo{})

	cases := []struct {
		name       string
		start, end time.Time
	}{
		{"starts on Tuesday", testTuesday, testTuesday.AddDate(0, 0, 6)},
		{"too short", testMonday, testMonday.AddDate(0, 0, 5)},
		{"too long", testMonday, testMonday.AddDate(0, 0, 7)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.GetOrCreatePeriod(context.Background(), tc.start, tc.end)
			assert.ErrorIs(t, err, payroll.ErrInvalidPeriod)
		})
	}
}
