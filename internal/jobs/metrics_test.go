package jobmetrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestTrackerRecordsRunsAndFailures(t *testing.T) {
	registry := prometheus.NewRegistry()
	metrics := NewMetrics(registry)

	if err := metrics.Track("dashboard:warmup").End(nil); err != nil {
		t.Fatalf("expected nil error passthrough, got %v", err)
	}
	boom := errors.New("redis down")
	if err := metrics.Track("dashboard:warmup").End(boom); !errors.Is(err, boom) {
		t.Fatalf("expected error passthrough, got %v", err)
	}

	if got := testutil.ToFloat64(metrics.runs.WithLabelValues("dashboard:warmup", "success")); got != 1 {
		t.Fatalf("expected 1 success run, got %v", got)
	}
	if got := testutil.ToFloat64(metrics.runs.WithLabelValues("dashboard:warmup", "failure")); got != 1 {
		t.Fatalf("expected 1 failure run, got %v", got)
	}
	if got := testutil.ToFloat64(metrics.failures.WithLabelValues("dashboard:warmup")); got != 1 {
		t.Fatalf("expected 1 failure, got %v", got)
	}
}

func TestNewMetricsNilRegistererSharesDefault(t *testing.T) {
	a := NewMetrics(nil)
	b := NewMetrics(nil)
	if a == nil {
		t.Fatal("expected default metrics instance")
	}
	if a != b {
		t.Fatal("expected repeated nil-registerer calls to share one instance")
	}
}

func TestTrackerNilMetricsPassesErrorThrough(t *testing.T) {
	var metrics *Metrics

	boom := errors.New("boom")
	if err := metrics.Track("compliance:overdue_scan").End(boom); !errors.Is(err, boom) {
		t.Fatalf("expected error passthrough, got %v", err)
	}
}
