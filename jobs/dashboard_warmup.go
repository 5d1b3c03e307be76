package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/hibiken/asynq"

	"github.com/vantage-suite/vantage/internal/dashboard"
	jobmetrics "github.com/vantage-suite/vantage/internal/jobs"
)

// DashboardWarmupJob precomputes the KPI summary so the first dashboard hit
// after an invalidation is served from cache.
type DashboardWarmupJob struct {
	Dashboard *dashboard.Service
	Logger    *slog.Logger
	Metrics   *jobmetrics.Metrics
}

// NewDashboardWarmupJob wires dependencies for the warmup handler.
func NewDashboardWarmupJob(svc *dashboard.Service, logger *slog.Logger, metrics *jobmetrics.Metrics) *DashboardWarmupJob {
	return &DashboardWarmupJob{Dashboard: svc, Logger: logger, Metrics: metrics}
}

// Handle processes dashboard warmup tasks.
func (j *DashboardWarmupJob) Handle(ctx context.Context, t *asynq.Task) error {
	if j == nil || j.Dashboard == nil {
		return errors.New("dashboard warmup: handler not configured")
	}
	var payload DashboardWarmupPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return asynq.SkipRetry
	}

	tracker := j.Metrics.Track(TaskDashboardWarmup)
	var resultErr error
	defer func() {
		resultErr = tracker.End(resultErr)
	}()

	summary, err := j.Dashboard.Summary(ctx)
	if err != nil {
		resultErr = err
		j.Logger.Error("dashboard warmup failed", slog.Any("error", err))
		return err
	}
	j.Logger.Info("dashboard warmed",
		slog.String("reason", payload.Reason),
		slog.Float64("revenue", summary.Revenue),
		slog.Float64("pipeline_value", summary.PipelineValue),
	)
	return nil
}
