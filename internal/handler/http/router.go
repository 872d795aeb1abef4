package http

import (
	"log/slog"
	"os"

	"github.com/abcco/payroll-backend-go/internal/config"
	"github.com/abcco/payroll-backend-go/internal/handler/http/middleware"
	"github.com/abcco/payroll-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	cfg config.AppConfig,
	jwtService jwt.Service,
	authHandler AuthHandler,
	employeeHandler EmployeeHandler,
	timeEntryHandler TimeEntryHandler,
	payrollHandler PayrollHandler,
	reportHandler ReportHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "payroll-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/health"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)

			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
				r.Use(middleware.AuthRequired(jwtService.JWTAuth()))
				r.Get("/me", authHandler.Me)
			})
		})

		// SSE stream authenticates through its own short-lived token
		r.Get("/payroll/events", payrollHandler.Events)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			// Employee self-service
			r.Route("/me", func(r chi.Router) {
				r.Get("/time-entries", timeEntryHandler.ListOwn)
				r.Post("/time-entries", timeEntryHandler.SubmitOwn)
				r.Get("/payroll-history", payrollHandler.OwnHistory)
				r.Get("/paychecks/{detailID}", payrollHandler.OwnPaycheck)
			})

			// Admin only
			r.Group(func(r chi.Router) {
				r.Use(middleware.AdminOnly)

				r.Route("/employees", func(r chi.Router) {
					r.Get("/", employeeHandler.List)
					r.Post("/", employeeHandler.Create)
					r.Get("/statistics", employeeHandler.Statistics)
					r.Get("/departments", employeeHandler.Departments)
					r.Get("/job-titles", employeeHandler.JobTitles)

					r.Route("/{employeeID}", func(r chi.Router) {
						r.Get("/", employeeHandler.GetByID)
						r.Put("/", employeeHandler.Update)
						r.Delete("/", employeeHandler.HardDelete)
						r.Post("/terminate", employeeHandler.Terminate)
						r.Post("/reactivate", employeeHandler.Reactivate)
					})
				})

				r.Route("/time-entries", func(r chi.Router) {
					r.Post("/", timeEntryHandler.Submit)
					r.Get("/employee/{employeeID}", timeEntryHandler.ListByEmployee)
					r.Delete("/{entryID}", timeEntryHandler.Delete)
				})

				r.Route("/payroll", func(r chi.Router) {
					r.Post("/calculate", payrollHandler.Calculate)
					r.Post("/calculate-all", payrollHandler.CalculateAll)
					r.Post("/auto-fill", payrollHandler.AutoFill)
					r.Get("/events/token", payrollHandler.GetSSEToken)

					r.Route("/periods", func(r chi.Router) {
						r.Get("/", payrollHandler.ListPeriods)
						r.Get("/current", payrollHandler.GetCurrentPeriod)

						r.Route("/{periodID}", func(r chi.Router) {
							r.Get("/", payrollHandler.GetPeriod)
							r.Post("/approve", payrollHandler.Approve)
							r.Get("/details", payrollHandler.PeriodDetails)
							r.Get("/summary", reportHandler.PeriodSummary)
							r.Get("/time-entries", timeEntryHandler.ListByPeriod)
						})
					})

					r.Route("/employees/{employeeID}", func(r chi.Router) {
						r.Get("/history", reportHandler.History)
						r.Get("/weekly-summary", reportHandler.WeeklySummary)
					})
				})
			})
		})
	})
	return r
}
