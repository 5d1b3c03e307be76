package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	"github.com/vantage-suite/vantage/internal/app"
	"github.com/vantage-suite/vantage/internal/appointments"
	"github.com/vantage-suite/vantage/internal/dashboard"
	"github.com/vantage-suite/vantage/internal/invoices"
	jobmetrics "github.com/vantage-suite/vantage/internal/jobs"
	"github.com/vantage-suite/vantage/internal/leads"
	"github.com/vantage-suite/vantage/internal/ledger"
	"github.com/vantage-suite/vantage/internal/tax"
	"github.com/vantage-suite/vantage/jobs"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping worker startup")
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
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Warn("redis close", slog.Any("error", err))
		}
	}()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Warn("redis ping", slog.Any("error", err))
	}

	ledgerService := ledger.NewService(ledger.NewMemoryRepository())
	invoiceService := invoices.NewService(invoices.NewMemoryRepository())
	taxService := tax.NewService(tax.NewMemoryRepository())
	leadService := leads.NewService(leads.NewMemoryRepository())
	appointmentService := appointments.NewService(appointments.NewMemoryRepository())

	cache := dashboard.NewCache(redisClient, cfg.DashboardCacheTTL)
	if err := cache.ListenForInvalidation(ctx); err != nil {
		logger.Warn("cache invalidation listener", slog.Any("error", err))
	}
	dashboardService := dashboard.NewService(ledgerService, invoiceService, taxService, leadService, appointmentService, cache)

	jobMetrics := jobmetrics.NewMetrics(nil)
	warmupJob := jobs.NewDashboardWarmupJob(dashboardService, logger, jobMetrics)
	overdueJob := jobs.NewOverdueScanJob(invoiceService, taxService, dashboardService, logger, jobMetrics)

	warmupTask, err := jobs.NewDashboardWarmupTask(jobs.DashboardWarmupPayload{Reason: "cron"})
	if err != nil {
		logger.Error("build warmup task", slog.Any("error", err))
		os.Exit(1)
	}
	overdueTask, err := jobs.NewOverdueScanTask(jobs.OverdueScanPayload{HorizonDays: 30})
	if err != nil {
		logger.Error("build overdue task", slog.Any("error", err))
		os.Exit(1)
	}

	worker, err := jobs.NewWorker(jobs.WorkerConfig{
		RedisOpts: asynq.RedisClientOpt{Addr: cfg.RedisAddr},
		Logger:    logger,
		Handlers: []jobs.TaskHandler{
			{Type: jobs.TaskDashboardWarmup, Handler: warmupJob.Handle},
			{Type: jobs.TaskOverdueScan, Handler: overdueJob.Handle},
		},
		Cron: []jobs.CronRegistration{
			{Spec: "*/15 * * * *", Task: warmupTask, Options: []asynq.Option{asynq.MaxRetry(3)}},
			{Spec: "0 6 * * *", Task: overdueTask, Options: []asynq.Option{asynq.MaxRetry(3)}},
		},
	})
	if err != nil {
		logger.Error("init worker", slog.Any("error", err))
		os.Exit(1)
	}

	if err := worker.Run(ctx); err != nil && err != context.Canceled {
		logger.Error("worker run", slog.Any("error", err))
		os.Exit(1)
	}
}
