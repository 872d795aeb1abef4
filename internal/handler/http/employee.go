package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/abcco/payroll-backend-go/internal/domain/employee"
	"github.com/abcco/payroll-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type EmployeeHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Terminate(w http.ResponseWriter, r *http.Request)
	Reactivate(w http.ResponseWriter, r *http.Request)
	HardDelete(w http.ResponseWriter, r *http.Request)
	Statistics(w http.ResponseWriter, r *http.Request)
	Departments(w http.ResponseWriter, r *http.Request)
	JobTitles(w http.ResponseWriter, r *http.Request)
}

type EmployeeHandlerImpl struct {
	employeeService employee.EmployeeService
}

func NewEmployeeHandler(employeeService employee.EmployeeService) EmployeeHandler {
	return &EmployeeHandlerImpl{employeeService: employeeService}
}

// Create implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req employee.CreateEmployeeRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create employee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.employeeService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Create employee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Employee created", "employee_id", resp.EmployeeID)
	response.Created(w, "Employee created successfully", resp)
}

// GetByID implements EmployeeHandler.
func (h *EmployeeHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	resp, err := h.employeeService.GetByID(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// List implements EmployeeHandler.
func (h *EmployeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := employee.EmployeeFilter{
		IncludeTerminated: r.URL.Query().Get("include_terminated") == "true",
		Search:            r.URL.Query().Get("search"),
		Department:        r.URL.Query().Get("department"),
	}

	resp, err := h.employeeService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// Update implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req employee.UpdateEmployeeRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update employee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EmployeeID = chi.URLParam(r, "employeeID")

	resp, err := h.employeeService.Update(r.Context(), req)
	if err != nil {
		slog.Error("Update employee service error", "error", err, "employee_id", req.EmployeeID)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee updated successfully", resp)
}

// Terminate implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Terminate(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	if err := h.employeeService.Terminate(r.Context(), employeeID); err != nil {
		response.HandleError(w, err)
		return
	}

	slog.Info("Employee terminated", "employee_id", employeeID)
	response.SuccessWithMessage(w, "Employee terminated", nil)
}

// Reactivate implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Reactivate(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	if err := h.employeeService.Reactivate(r.Context(), employeeID); err != nil {
		response.HandleError(w, err)
		return
	}

	slog.Info("Employee reactivated", "employee_id", employeeID)
	response.SuccessWithMessage(w, "Employee reactivated", nil)
}

// HardDelete implements EmployeeHandler.
func (h *EmployeeHandlerImpl) HardDelete(w http.ResponseWriter, r *http.Request) {
	req := employee.HardDeleteRequest{
		EmployeeID: chi.URLParam(r, "employeeID"),
		Confirmed:  r.URL.Query().Get("confirm") == "true",
	}

	if err := h.employeeService.HardDelete(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	slog.Warn("Employee permanently deleted", "employee_id", req.EmployeeID)
	response.SuccessWithMessage(w, "Employee permanently deleted", nil)
}

// Statistics implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Statistics(w http.ResponseWriter, r *http.Request) {
	resp, err := h.employeeService.Statistics(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// Departments implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Departments(w http.ResponseWriter, r *http.Request) {
	resp, err := h.employeeService.Departments(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// JobTitles implements EmployeeHandler.
func (h *EmployeeHandlerImpl) JobTitles(w http.ResponseWriter, r *http.Request) {
	resp, err := h.employeeService.JobTitles(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}
