package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"

	"github.com/vantage-suite/vantage/internal/dashboard"
	"github.com/vantage-suite/vantage/internal/invoices"
	jobmetrics "github.com/vantage-suite/vantage/internal/jobs"
	"github.com/vantage-suite/vantage/internal/tax"
)

const defaultHorizonDays = 30

// OverdueScanJob reviews receivables and tax deadlines, logs what needs
// chasing and invalidates the dashboard so its overdue counters refresh.
type OverdueScanJob struct {
	Invoices  *invoices.Service
	Tax       *tax.Service
	Dashboard *dashboard.Service
	Logger    *slog.Logger
	Metrics   *jobmetrics.Metrics
	clock     func() time.Time
}

// NewOverdueScanJob wires dependencies for the scan handler.
func NewOverdueScanJob(inv *invoices.Service, tx *tax.Service, dash *dashboard.Service, logger *slog.Logger, metrics *jobmetrics.Metrics) *OverdueScanJob {
	return &OverdueScanJob{
		Invoices:  inv,
		Tax:       tx,
		Dashboard: dash,
		Logger:    logger,
		Metrics:   metrics,
		clock:     func() time.Time { return time.Now().UTC() },
	}
}

// Handle processes overdue scan tasks.
func (j *OverdueScanJob) Handle(ctx context.Context, t *asynq.Task) error {
	if j == nil || j.Invoices == nil || j.Tax == nil {
		return errors.New("overdue scan: handler not configured")
	}
	var payload OverdueScanPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return asynq.SkipRetry
	}
	if payload.HorizonDays <= 0 {
		payload.HorizonDays = defaultHorizonDays
	}

	tracker := j.Metrics.Track(TaskOverdueScan)
	var resultErr error
	defer func() {
		resultErr = tracker.End(resultErr)
	}()

	receivables, err := j.Invoices.List(ctx, invoices.ListRequest{})
	if err != nil {
		resultErr = err
		return err
	}
	compliance, err := j.Tax.Summarize(ctx)
	if err != nil {
		resultErr = err
		return err
	}

	j.Logger.Info("overdue scan",
		slog.Int("horizon_days", payload.HorizonDays),
		slog.Int("overdue_invoices", receivables.OverdueCount),
		slog.Float64("outstanding", receivables.Outstanding),
		slog.Int("overdue_tax_records", compliance.OverdueCount),
		slog.Any("upcoming_tax_ids", compliance.UpcomingIDs),
	)

	if j.Dashboard != nil {
		if err := j.Dashboard.Invalidate(ctx); err != nil {
			j.Logger.Warn("dashboard invalidation failed", slog.Any("error", err))
		}
	}
	return nil
}
