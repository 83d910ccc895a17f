package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hanifadr/reimbursement-hub/internal"
	"github.com/hanifadr/reimbursement-hub/internal/category"
	categoryMemory "github.com/hanifadr/reimbursement-hub/internal/category/memory"
	"github.com/hanifadr/reimbursement-hub/internal/core/events"
	"github.com/hanifadr/reimbursement-hub/internal/expense"
	expenseMemory "github.com/hanifadr/reimbursement-hub/internal/expense/memory"
	"github.com/hanifadr/reimbursement-hub/internal/notification"
	notificationMemory "github.com/hanifadr/reimbursement-hub/internal/notification/memory"
	"github.com/hanifadr/reimbursement-hub/internal/reports"
	"github.com/hanifadr/reimbursement-hub/internal/seed"
	"github.com/hanifadr/reimbursement-hub/internal/session"
	"github.com/hanifadr/reimbursement-hub/internal/transport"
	"github.com/hanifadr/reimbursement-hub/internal/transport/rest"
	"github.com/hanifadr/reimbursement-hub/internal/upload"
	"github.com/hanifadr/reimbursement-hub/internal/user"
	userMemory "github.com/hanifadr/reimbursement-hub/internal/user/memory"
	"github.com/hanifadr/reimbursement-hub/pkg/logger"

	"github.com/go-chi/chi"
	"github.com/spf13/cobra"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle API requests`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config   *internal.Config
	Router   *chi.Mux
	Sessions *session.Service
	Logger   *slog.Logger
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	deps.Sessions.Bootstrap(deps.Config.Session.DefaultActorEmail, deps.Config.Session.InitDelay)

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	deps.Logger.Info("starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:              addr,
		Handler:           deps.Router,
		ReadHeaderTimeout: deps.Config.Server.ReadHeaderTimeout,
		ReadTimeout:       deps.Config.Server.ReadTimeout,
		WriteTimeout:      deps.Config.Server.WriteTimeout,
		IdleTimeout:       deps.Config.Server.IdleTimeout,
	}

	// Signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		deps.Logger.Info("received signal, shutting down", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			deps.Logger.Error("server shutdown error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			deps.Logger.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}

	deps.Logger.Info("server stopped")
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(config.Env, config.Observability.Logging.Level)
	lg := logger.LoggerWrapper()

	// In-memory stores, preloaded with the sample dataset
	userRepo := userMemory.NewUserRepository()
	categoryRepo := categoryMemory.NewCategoryRepository()
	expenseRepo := expenseMemory.NewExpenseRepository()
	notificationRepo := notificationMemory.NewNotificationRepository()

	if err := seed.Load(userRepo, categoryRepo, expenseRepo); err != nil {
		return nil, fmt.Errorf("failed to load sample dataset: %w", err)
	}

	eventBus := events.NewEventBus(lg)

	// Services
	userService := user.NewService(userRepo, lg)
	categoryService := category.NewService(categoryRepo, lg)
	expenseService := expense.NewService(expenseRepo, categoryService, eventBus, lg)
	sessionService := session.NewService(userService, lg)
	reportsService := reports.NewService(expenseService, categoryService, userService, lg)
	notificationService := notification.NewService(notificationRepo, userService, lg)
	notificationService.RegisterEventHandlers(eventBus)

	receiptChecker := upload.NewChecker(config.Uploads.MaxReceiptSizeBytes(), lg)

	// Handlers
	baseHandler := transport.NewBaseHandler(lg)
	handlers := rest.Handlers{
		Session:      session.NewHandler(baseHandler, sessionService),
		User:         user.NewHandler(baseHandler, userService),
		Category:     category.NewHandler(baseHandler, categoryService, userService),
		Expense:      expense.NewHandler(baseHandler, expenseService, categoryService, userService),
		Upload:       upload.NewHandler(baseHandler, receiptChecker),
		Reports:      reports.NewHandler(baseHandler, reportsService),
		Notification: notification.NewHandler(baseHandler, notificationService),
	}

	router := chi.NewRouter()
	rest.RegisterAllRoutes(router, handlers, sessionService, config, lg)

	return &Dependencies{
		Config:   config,
		Router:   router,
		Sessions: sessionService,
		Logger:   lg,
	}, nil
}
