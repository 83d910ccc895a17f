package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hanifadr/reimbursement-hub/internal"
	"github.com/hanifadr/reimbursement-hub/internal/category"
	"github.com/hanifadr/reimbursement-hub/internal/expense"
	"github.com/hanifadr/reimbursement-hub/internal/notification"
	"github.com/hanifadr/reimbursement-hub/internal/reports"
	"github.com/hanifadr/reimbursement-hub/internal/session"
	"github.com/hanifadr/reimbursement-hub/internal/transport/middleware"
	"github.com/hanifadr/reimbursement-hub/internal/transport/swagger"
	"github.com/hanifadr/reimbursement-hub/internal/upload"
	"github.com/hanifadr/reimbursement-hub/internal/user"
)

type Handlers struct {
	Session      *session.Handler
	User         *user.Handler
	Category     *category.Handler
	Expense      *expense.Handler
	Upload       *upload.Handler
	Reports      *reports.Handler
	Notification *notification.Handler
}

func RegisterAllRoutes(router *chi.Mux, handlers Handlers, sessions middleware.SessionAPI, cfg *internal.Config, logger *slog.Logger) {
	healthHandler := NewHealthHandler(func() bool {
		_, err := sessions.CurrentActor()
		return err == nil
	})

	// Global middleware
	router.Use(middleware.CORS)
	router.Use(chiMiddleware.RequestID)
	router.Use(middleware.RequestID)
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(middleware.RecoveryMiddleware(logger))
	router.Use(middleware.ActorMiddleware(sessions))
	if cfg.Observability.Metrics.Enabled {
		router.Use(middleware.MetricsMiddleware)
		router.Handle(cfg.Observability.Metrics.Path, promhttp.Handler())
	}

	// Serve OpenAPI spec at root (outside API prefix)
	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	// Swagger UI route at root
	router.Handle("/swagger/*", swagger.Handler())

	// Mount API under /api/v1 to match OpenAPI basePath
	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		r.Route("/session", func(sr chi.Router) {
			sr.Get("/", handlers.Session.GetSession)
			sr.Post("/switch", handlers.Session.Switch)
		})

		r.Get("/users", handlers.User.ListUsers)
		r.Get("/users/{id}", handlers.User.GetUser)

		r.Route("/categories", func(cr chi.Router) {
			cr.Get("/", handlers.Category.ListCategories)
			cr.Post("/", handlers.Category.CreateCategory)
			cr.Get("/{id}", handlers.Category.GetCategory)
			cr.Patch("/{id}/activate", handlers.Category.ActivateCategory)
			cr.Patch("/{id}/deactivate", handlers.Category.DeactivateCategory)
		})

		r.Route("/expenses", func(er chi.Router) {
			er.Post("/", handlers.Expense.CreateExpense)
			er.Get("/", handlers.Expense.ListExpenses)
			er.Get("/{id}", handlers.Expense.GetExpense)
			er.Post("/{id}/transitions", handlers.Expense.TransitionExpense)
			er.Post("/{id}/comments", handlers.Expense.AddComment)
		})

		r.Post("/receipts/check", handlers.Upload.CheckReceipt)

		r.Get("/dashboard", handlers.Reports.GetDashboard)
		r.Get("/reports/summary", handlers.Reports.GetSummary)

		r.Route("/notifications", func(nr chi.Router) {
			nr.Get("/", handlers.Notification.ListNotifications)
			nr.Post("/{id}/read", handlers.Notification.MarkRead)
		})
	})
}
