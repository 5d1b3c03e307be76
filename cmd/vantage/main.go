package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	"github.com/vantage-suite/vantage/internal/admin"
	"github.com/vantage-suite/vantage/internal/app"
	"github.com/vantage-suite/vantage/internal/appointments"
	"github.com/vantage-suite/vantage/internal/dashboard"
	"github.com/vantage-suite/vantage/internal/docgen"
	"github.com/vantage-suite/vantage/internal/invoices"
	"github.com/vantage-suite/vantage/internal/leads"
	"github.com/vantage-suite/vantage/internal/ledger"
	"github.com/vantage-suite/vantage/internal/observability"
	"github.com/vantage-suite/vantage/internal/proposals"
	"github.com/vantage-suite/vantage/internal/tax"
	"github.com/vantage-suite/vantage/jobs"
	"github.com/vantage-suite/vantage/report"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping runtime startup")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Warn("redis ping", slog.Any("error", err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Warn("redis close", slog.Any("error", err))
		}
	}()

	ledgerService := ledger.NewService(ledger.NewMemoryRepository())
	invoiceService := invoices.NewService(invoices.NewMemoryRepository())
	taxService := tax.NewService(tax.NewMemoryRepository())
	leadService := leads.NewService(leads.NewMemoryRepository())
	appointmentService := appointments.NewService(appointments.NewMemoryRepository())
	proposalService := proposals.NewService(proposals.NewMemoryRepository())
	adminService := admin.NewService(admin.NewMemoryRepository())

	invoiceService.SetDocumentDefaults(cfg.CurrencySymbol, cfg.TaxRate)
	proposalService.SetDocumentDefaults(cfg.CurrencySymbol, cfg.TaxRate)

	cache := dashboard.NewCache(redisClient, cfg.DashboardCacheTTL)
	if err := cache.ListenForInvalidation(ctx); err != nil {
		logger.Warn("cache invalidation listener", slog.Any("error", err))
	}
	dashboardService := dashboard.NewService(ledgerService, invoiceService, taxService, leadService, appointmentService, cache)

	// Record mutations bump the dashboard cache so the KPI block stays fresh.
	ledgerService.SetCacheInvalidator(dashboardService)
	invoiceService.SetCacheInvalidator(dashboardService)
	taxService.SetCacheInvalidator(dashboardService)
	leadService.SetCacheInvalidator(dashboardService)
	appointmentService.SetCacheInvalidator(dashboardService)

	renderer := docgen.NewRenderer()
	pdfClient := report.NewClient(cfg.GotenbergURL)

	metrics := observability.NewMetrics()

	inspector := asynq.NewInspector(asynq.RedisClientOpt{Addr: cfg.RedisAddr})
	defer func() {
		if err := inspector.Close(); err != nil {
			logger.Warn("inspector close", slog.Any("error", err))
		}
	}()

	router := app.NewRouter(app.RouterParams{
		Logger:             logger,
		Config:             cfg,
		LedgerHandler:      ledger.NewHandler(logger, ledgerService),
		InvoiceHandler:     invoices.NewHandler(logger, invoiceService, renderer, pdfClient),
		TaxHandler:         tax.NewHandler(logger, taxService),
		LeadHandler:        leads.NewHandler(logger, leadService),
		AppointmentHandler: appointments.NewHandler(logger, appointmentService),
		ProposalHandler:    proposals.NewHandler(logger, proposalService, pdfClient),
		DashboardHandler:   dashboard.NewHandler(logger, dashboardService),
		AdminHandler:       admin.NewHandler(logger, adminService),
		ReportHandler:      report.NewHandler(pdfClient, logger),
		JobHandler:         jobs.NewHandler(inspector, logger),
		Metrics:            metrics,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", slog.Any("error", err))
	}
}
