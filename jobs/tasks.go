package jobs

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const (
	// QueueDefault is the default queue name for background jobs.
	QueueDefault = "default"
	// TaskDashboardWarmup precomputes the dashboard KPI block into cache.
	TaskDashboardWarmup = "dashboard:warmup"
	// TaskOverdueScan reviews receivables and tax deadlines.
	TaskOverdueScan = "compliance:overdue_scan"
)

// DashboardWarmupPayload parameterises a warmup run.
type DashboardWarmupPayload struct {
	Reason string `json:"reason,omitempty"`
}

// NewDashboardWarmupTask constructs an Asynq task.
func NewDashboardWarmupTask(payload DashboardWarmupPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskDashboardWarmup, data), nil
}

// OverdueScanPayload parameterises an overdue scan. HorizonDays bounds how
// far ahead upcoming deadlines are reported.
type OverdueScanPayload struct {
	HorizonDays int `json:"horizon_days,omitempty"`
}

// NewOverdueScanTask constructs an Asynq task.
func NewOverdueScanTask(payload OverdueScanPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskOverdueScan, data), nil
}
