package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/abcco/payroll-backend-go/internal/domain/payroll"
	"github.com/abcco/payroll-backend-go/internal/domain/timeentry"
	"github.com/abcco/payroll-backend-go/internal/handler/http/response"
	"github.com/abcco/payroll-backend-go/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

type TimeEntryHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	SubmitOwn(w http.ResponseWriter, r *http.Request)
	ListByEmployee(w http.ResponseWriter, r *http.Request)
	ListOwn(w http.ResponseWriter, r *http.Request)
	ListByPeriod(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type TimeEntryHandlerImpl struct {
	timeEntryService timeentry.TimeEntryService
}

func NewTimeEntryHandler(timeEntryService timeentry.TimeEntryService) TimeEntryHandler {
	return &TimeEntryHandlerImpl{timeEntryService: timeEntryService}
}

// Submit implements TimeEntryHandler. Admin entry point; accepts any
// employee ID and does not gate on PTO balance.
func (h *TimeEntryHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	var req timeentry.SubmitTimeEntryRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Submit time entry decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.timeEntryService.Submit(r.Context(), req, false)
	if err != nil {
		slog.Error("Submit time entry service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Time entry saved", resp)
}

// SubmitOwn implements TimeEntryHandler. Self-service entry point; the
// employee ID comes from the token and PTO balance is enforced.
func (h *TimeEntryHandlerImpl) SubmitOwn(w http.ResponseWriter, r *http.Request) {
	employeeID := getEmployeeIDFromContext(r)
	if employeeID == "" {
		response.Forbidden(w, "Account is not linked to an employee")
		return
	}

	var req timeentry.SubmitTimeEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Submit own time entry decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EmployeeID = employeeID

	resp, err := h.timeEntryService.Submit(r.Context(), req, true)
	if err != nil {
		slog.Error("Submit own time entry service error", "error", err, "employee_id", employeeID)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Time entry saved", resp)
}

// ListByEmployee implements TimeEntryHandler.
func (h *TimeEntryHandlerImpl) ListByEmployee(w http.ResponseWriter, r *http.Request) {
	h.listForEmployee(w, r, chi.URLParam(r, "employeeID"))
}

// ListOwn implements TimeEntryHandler.
func (h *TimeEntryHandlerImpl) ListOwn(w http.ResponseWriter, r *http.Request) {
	employeeID := getEmployeeIDFromContext(r)
	if employeeID == "" {
		response.Forbidden(w, "Account is not linked to an employee")
		return
	}
	h.listForEmployee(w, r, employeeID)
}

func (h *TimeEntryHandlerImpl) listForEmployee(w http.ResponseWriter, r *http.Request, employeeID string) {
	start, end, ok := dateRangeFromQuery(r)
	if !ok {
		response.BadRequest(w, "start and end must be valid YYYY-MM-DD dates with start not after end", nil)
		return
	}

	resp, err := h.timeEntryService.GetByEmployeeInRange(r.Context(), employeeID, start, end)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// ListByPeriod implements TimeEntryHandler.
func (h *TimeEntryHandlerImpl) ListByPeriod(w http.ResponseWriter, r *http.Request) {
	periodID, err := strconv.ParseInt(chi.URLParam(r, "periodID"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid period ID", nil)
		return
	}

	resp, err := h.timeEntryService.GetByPeriod(r.Context(), periodID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// Delete implements TimeEntryHandler.
func (h *TimeEntryHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	entryID, err := strconv.ParseInt(chi.URLParam(r, "entryID"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid entry ID", nil)
		return
	}

	if err := h.timeEntryService.Delete(r.Context(), entryID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Time entry deleted", nil)
}

// dateRangeFromQuery reads start/end query params, defaulting to the
// current pay period window when both are absent.
func dateRangeFromQuery(r *http.Request) (time.Time, time.Time, bool) {
	startStr := r.URL.Query().Get("start")
	endStr := r.URL.Query().Get("end")

	if startStr == "" && endStr == "" {
		start, end := payroll.CurrentPeriod()
		return start, end, true
	}

	start, ok := validator.IsValidDate(startStr)
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	end, ok := validator.IsValidDate(endStr)
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	if !validator.IsDateOrderValid(start, end) {
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}
