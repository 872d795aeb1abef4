package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/abcco/payroll-backend-go/internal/config"
	"github.com/abcco/payroll-backend-go/internal/fixtures"
	appHTTP "github.com/abcco/payroll-backend-go/internal/handler/http"
	"github.com/abcco/payroll-backend-go/internal/pkg/cron"
	"github.com/abcco/payroll-backend-go/internal/pkg/database"
	"github.com/abcco/payroll-backend-go/internal/pkg/email"
	"github.com/abcco/payroll-backend-go/internal/pkg/jwt"
	"github.com/abcco/payroll-backend-go/internal/pkg/sse"
	"github.com/abcco/payroll-backend-go/internal/repository/postgresql"
	serviceAuth "github.com/abcco/payroll-backend-go/internal/service/auth"
	employeeService "github.com/abcco/payroll-backend-go/internal/service/employee"
	payrollService "github.com/abcco/payroll-backend-go/internal/service/payroll"
	reportService "github.com/abcco/payroll-backend-go/internal/service/report"
	timeEntryService "github.com/abcco/payroll-backend-go/internal/service/timeentry"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	timeEntryRepo := postgresql.NewTimeEntryRepository(db)
	periodRepo := postgresql.NewPayPeriodRepository(db)
	detailRepo := postgresql.NewPayrollDetailRepository(db)
	reportRepo := postgresql.NewReportRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	hub := sse.NewHub()

	emailService, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize email service:", err)
	}

	if err := fixtures.SeedDefaultAdmin(context.Background(), userRepo); err != nil {
		log.Fatal("Failed to seed default admin:", err)
	}

	calculator := payrollService.NewCalculator(payrollService.CalculatorConfigFrom(cfg.Payroll))

	authSvc := serviceAuth.NewAuthService(userRepo, JWTService)
	employeeSvc := employeeService.NewEmployeeService(db, cfg.Payroll, employeeRepo, userRepo)
	timeEntrySvc := timeEntryService.NewTimeEntryService(db, cfg.Payroll, timeEntryRepo, periodRepo, employeeRepo)
	payrollSvc := payrollService.NewPayrollService(
		db,
		cfg.Payroll,
		calculator,
		periodRepo,
		detailRepo,
		timeEntryRepo,
		employeeRepo,
		hub,
		emailService,
	)
	reportSvc := reportService.NewReportService(cfg.Payroll, reportRepo, periodRepo, detailRepo, timeEntryRepo, employeeRepo)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	timeEntryHandler := appHTTP.NewTimeEntryHandler(timeEntrySvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc, JWTService, hub)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	scheduler := cron.NewScheduler()
	cron.NewPayrollJobs(payrollSvc).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		cfg.App,
		JWTService,
		authHandler,
		employeeHandler,
		timeEntryHandler,
		payrollHandler,
		reportHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	server := &http.Server{Addr: port, Handler: router}

	go func() {
		fmt.Printf("Server running at http://localhost%s\n", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Println("Server error:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("Shutting down...")
	if err := server.Shutdown(context.Background()); err != nil {
		fmt.Println("Server shutdown error:", err)
	}
}
