package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/abcco/payroll-backend-go/internal/domain/payroll"
	"github.com/abcco/payroll-backend-go/internal/handler/http/response"
	"github.com/abcco/payroll-backend-go/internal/pkg/jwt"
	"github.com/abcco/payroll-backend-go/internal/pkg/sse"
	"github.com/go-chi/chi/v5"
)

type PayrollHandler interface {
	Calculate(w http.ResponseWriter, r *http.Request)
	CalculateAll(w http.ResponseWriter, r *http.Request)
	AutoFill(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	ListPeriods(w http.ResponseWriter, r *http.Request)
	GetCurrentPeriod(w http.ResponseWriter, r *http.Request)
	GetPeriod(w http.ResponseWriter, r *http.Request)
	PeriodDetails(w http.ResponseWriter, r *http.Request)
	OwnHistory(w http.ResponseWriter, r *http.Request)
	OwnPaycheck(w http.ResponseWriter, r *http.Request)
	GetSSEToken(w http.ResponseWriter, r *http.Request)
	Events(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	payrollService payroll.PayrollService
	jwtService     jwt.Service
	hub            *sse.Hub
}

func NewPayrollHandler(payrollService payroll.PayrollService, jwtService jwt.Service, hub *sse.Hub) PayrollHandler {
	return &PayrollHandlerImpl{
		payrollService: payrollService,
		jwtService:     jwtService,
		hub:            hub,
	}
}

// Calculate implements PayrollHandler.
func (h *PayrollHandlerImpl) Calculate(w http.ResponseWriter, r *http.Request) {
	var req payroll.CalculatePayrollRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Calculate payroll decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.payrollService.CalculateWeeklyPay(r.Context(), req)
	if err != nil {
		slog.Error("Calculate payroll service error", "error", err, "employee_id", req.EmployeeID)
		response.HandleError(w, err)
		return
	}

	slog.Info("Payroll calculated", "employee_id", req.EmployeeID, "payroll_id", resp.PayrollID)
	response.SuccessWithMessage(w, "Payroll calculated", resp)
}

// CalculateAll implements PayrollHandler.
func (h *PayrollHandlerImpl) CalculateAll(w http.ResponseWriter, r *http.Request) {
	var req payroll.CalculateAllPayrollRequest

	// An empty body means the current period, all active employees
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		slog.Error("Calculate all payroll decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.payrollService.CalculateAllPayroll(r.Context(), req, getUserIDFromContext(r))
	if err != nil {
		slog.Error("Calculate all payroll service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Payroll batch completed",
		"run_id", resp.RunID,
		"succeeded", len(resp.Succeeded),
		"failed", len(resp.Failed),
	)
	response.SuccessWithMessage(w, "Payroll batch completed", resp)
}

// AutoFill implements PayrollHandler.
func (h *PayrollHandlerImpl) AutoFill(w http.ResponseWriter, r *http.Request) {
	var req payroll.AutoFillRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		slog.Error("Auto-fill decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.payrollService.AutoFillSalariedHours(r.Context(), req)
	if err != nil {
		slog.Error("Auto-fill service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Auto-fill completed", resp)
}

// Approve implements PayrollHandler.
func (h *PayrollHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	periodID, ok := periodIDFromURL(w, r)
	if !ok {
		return
	}

	if err := h.payrollService.ApprovePayroll(r.Context(), periodID, getUserIDFromContext(r)); err != nil {
		slog.Error("Approve payroll service error", "error", err, "period_id", periodID)
		response.HandleError(w, err)
		return
	}

	slog.Info("Pay period approved", "period_id", periodID)
	response.SuccessWithMessage(w, "Pay period approved", nil)
}

// ListPeriods implements PayrollHandler.
func (h *PayrollHandlerImpl) ListPeriods(w http.ResponseWriter, r *http.Request) {
	includeLocked := r.URL.Query().Get("include_locked") != "false"

	resp, err := h.payrollService.ListPeriods(r.Context(), includeLocked)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// GetCurrentPeriod implements PayrollHandler.
func (h *PayrollHandlerImpl) GetCurrentPeriod(w http.ResponseWriter, r *http.Request) {
	resp, err := h.payrollService.GetCurrentPeriod(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// GetPeriod implements PayrollHandler.
func (h *PayrollHandlerImpl) GetPeriod(w http.ResponseWriter, r *http.Request) {
	periodID, ok := periodIDFromURL(w, r)
	if !ok {
		return
	}

	resp, err := h.payrollService.GetPeriod(r.Context(), periodID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// PeriodDetails implements PayrollHandler.
func (h *PayrollHandlerImpl) PeriodDetails(w http.ResponseWriter, r *http.Request) {
	periodID, ok := periodIDFromURL(w, r)
	if !ok {
		return
	}

	resp, err := h.payrollService.GetPeriodDetails(r.Context(), periodID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// OwnHistory implements PayrollHandler.
func (h *PayrollHandlerImpl) OwnHistory(w http.ResponseWriter, r *http.Request) {
	employeeID := getEmployeeIDFromContext(r)
	if employeeID == "" {
		response.Forbidden(w, "Account is not linked to an employee")
		return
	}

	limit := getIntQueryParam(r, "limit", 0)

	resp, err := h.payrollService.GetEmployeeHistory(r.Context(), employeeID, limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// OwnPaycheck implements PayrollHandler. Employees can only read their own
// details; anything else 404s so detail IDs cannot be probed.
func (h *PayrollHandlerImpl) OwnPaycheck(w http.ResponseWriter, r *http.Request) {
	employeeID := getEmployeeIDFromContext(r)
	if employeeID == "" {
		response.Forbidden(w, "Account is not linked to an employee")
		return
	}

	detailID, err := strconv.ParseInt(chi.URLParam(r, "detailID"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid paycheck ID", nil)
		return
	}

	resp, err := h.payrollService.GetDetail(r.Context(), detailID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if resp.EmployeeID != employeeID {
		response.NotFound(w, "Payroll detail not found")
		return
	}

	response.Success(w, resp)
}

// GetSSEToken generates a short-lived token for SSE connections
func (h *PayrollHandlerImpl) GetSSEToken(w http.ResponseWriter, r *http.Request) {
	userID := getUserIDFromContext(r)
	if userID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	token, expiresIn, err := h.jwtService.GenerateSSEToken(userID)
	if err != nil {
		response.InternalServerError(w, "Failed to generate SSE token")
		return
	}

	response.Success(w, map[string]interface{}{
		"token":      token,
		"expires_in": expiresIn,
	})
}

// Events streams payroll run progress over SSE
func (h *PayrollHandlerImpl) Events(w http.ResponseWriter, r *http.Request) {
	// Get token from query parameter (SSE doesn't support custom headers)
	tokenStr := r.URL.Query().Get("token")
	if tokenStr == "" {
		http.Error(w, "Missing token", http.StatusUnauthorized)
		return
	}

	userID, err := h.jwtService.ValidateSSEToken(tokenStr)
	if err != nil {
		http.Error(w, "Invalid token", http.StatusUnauthorized)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")

	events, cleanup := h.hub.Subscribe(userID)
	defer cleanup()

	fmt.Fprintf(w, "event: connected\ndata: {\"status\":\"connected\",\"user_id\":\"%s\"}\n\n", userID)
	flusher.Flush()

	keepalive := time.NewTicker(30 * time.Second)
	defer keepalive.Stop()

	for {
		select {
		case event, ok := <-events:
			if !ok {
				return
			}
			data, err := json.Marshal(event.Data)
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Event, data)
			flusher.Flush()

		case <-keepalive.C:
			fmt.Fprintf(w, "event: ping\ndata: {\"timestamp\":%d}\n\n", time.Now().Unix())
			flusher.Flush()

		case <-r.Context().Done():
			return
		}
	}
}

func periodIDFromURL(w http.ResponseWriter, r *http.Request) (int64, bool) {
	periodID, err := strconv.ParseInt(chi.URLParam(r, "periodID"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid period ID", nil)
		return 0, false
	}
	return periodID, true
}
