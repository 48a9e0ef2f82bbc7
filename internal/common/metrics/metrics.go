// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	WorkerJobsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_completed_total",
			Help: "Total number of jobs completed by worker",
		},
		[]string{"task_type"},
	)

	WorkerJobsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_failed_total",
			Help: "Total number of jobs failed by worker",
		},
		[]string{"task_type", "error_code"},
	)

	WorkerJobDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "worker_job_duration_seconds",
			Help: "Duration of job processing in seconds",
		},
		[]string{"task_type"},
	)

	MatchFetchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "match_fetch_total",
			Help: "Matching service requests by kind and outcome",
		},
		[]string{"kind", "outcome"},
	)

	MatchFallbackTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "match_fallback_total",
			Help: "Times the synthesized fallback pool served a match request",
		},
		[]string{"kind"},
	)

	MatchBackfillApplied = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "match_backfill_applied_total",
			Help: "Times backfill was needed to honor the minimum result count",
		},
		[]string{"kind", "stage"},
	)
)
