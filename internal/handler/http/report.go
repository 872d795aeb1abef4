package http

import (
	"net/http"

	"github.com/abcco/payroll-backend-go/internal/domain/report"
	"github.com/abcco/payroll-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ReportHandler interface {
	PeriodSummary(w http.ResponseWriter, r *http.Request)
	WeeklySummary(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &ReportHandlerImpl{reportService: reportService}
}

// PeriodSummary implements ReportHandler.
func (h *ReportHandlerImpl) PeriodSummary(w http.ResponseWriter, r *http.Request) {
	periodID, ok := periodIDFromURL(w, r)
	if !ok {
		return
	}

	resp, err := h.reportService.PeriodSummary(r.Context(), periodID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// WeeklySummary implements ReportHandler.
func (h *ReportHandlerImpl) WeeklySummary(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	start, end, ok := dateRangeFromQuery(r)
	if !ok {
		response.BadRequest(w, "start and end must be valid YYYY-MM-DD dates with start not after end", nil)
		return
	}

	resp, err := h.reportService.EmployeeWeeklySummary(r.Context(), employeeID, start, end)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// History implements ReportHandler.
func (h *ReportHandlerImpl) History(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	limit := getIntQueryParam(r, "limit", 0)

	resp, err := h.reportService.PayrollHistory(r.Context(), employeeID, limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}
