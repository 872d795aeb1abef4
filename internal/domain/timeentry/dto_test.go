package timeentry

import (
	"testing"

	"github.com/abcco/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSubmitRequest() SubmitTimeEntryRequest {
	return SubmitTimeEntryRequest{
		EmployeeID:  "E001",
		EntryDate:   "2026-01-05",
		HoursWorked: decimal.NewFromInt(8),
		PTOHours:    decimal.Zero,
	}
}

func TestSubmitTimeEntryRequestValidate(t *testing.T) {
	t.Run("valid request passes", func(t *testing.T) {
		req := validSubmitRequest()
		assert.NoError(t, req.Validate())
	})

	tests := []struct {
		name     string
		mutate   func(*SubmitTimeEntryRequest)
		badField string
	}{
		{"missing employee id", func(r *SubmitTimeEntryRequest) { r.EmployeeID = "" }, "employee_id"},
		{"malformed employee id", func(r *SubmitTimeEntryRequest) { r.EmployeeID = "X42" }, "employee_id"},
		{"missing entry date", func(r *SubmitTimeEntryRequest) { r.EntryDate = "" }, "entry_date"},
		{"malformed entry date", func(r *SubmitTimeEntryRequest) { r.EntryDate = "01/05/2026" }, "entry_date"},
		{"negative worked hours", func(r *SubmitTimeEntryRequest) { r.HoursWorked = decimal.NewFromInt(-1) }, "hours_worked"},
		{"negative pto hours", func(r *SubmitTimeEntryRequest) { r.PTOHours = decimal.NewFromInt(-1) }, "pto_hours"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validSubmitRequest()
			tt.mutate(&req)

			err := req.Validate()
			require.Error(t, err)

			var verrs validator.ValidationErrors
			require.ErrorAs(t, err, &verrs)
			assert.Contains(t, verrs.ToMap(), tt.badField)
		})
	}
}
