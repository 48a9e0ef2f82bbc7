// internal/common/observability/metrics.go

// Package observability exposes the OTel meter for the guidance worker
// manager. Instruments are labelled by task type so one counter covers the
// whole pipeline (score-quiz through send-guidance-report).
package observability

import (
	"context"
	"log"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	otelmetric "go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/sdk/metric"
)

type Observability struct {
	meterProvider *metric.MeterProvider
	meter         otelmetric.Meter
	jobsHandled   otelmetric.Int64Counter
	jobDuration   otelmetric.Float64Histogram
}

func New(serviceName string) *Observability {
	exporter, err := prometheus.New()
	if err != nil {
		log.Printf("Failed to create Prometheus exporter: %v", err)
		return &Observability{}
	}

	provider := metric.NewMeterProvider(metric.WithReader(exporter))
	otel.SetMeterProvider(provider)

	meter := provider.Meter(serviceName)

	jobsHandled, _ := meter.Int64Counter(
		"guidance.jobs.handled",
		otelmetric.WithDescription("Guidance pipeline jobs handled, per task type"),
	)

	jobDuration, _ := meter.Float64Histogram(
		"guidance.jobs.duration",
		otelmetric.WithDescription("Guidance job handling duration, per task type"),
		otelmetric.WithUnit("ms"),
	)

	return &Observability{
		meterProvider: provider,
		meter:         meter,
		jobsHandled:   jobsHandled,
		jobDuration:   jobDuration,
	}
}

// RecordJobHandled counts one handled job and its duration under the
// worker's task type (score-quiz, retrieve-matches, ...).
func (o *Observability) RecordJobHandled(ctx context.Context, taskType string, duration time.Duration) {
	attrs := otelmetric.WithAttributes(
		attribute.String("task_type", taskType),
	)
	if o.jobsHandled != nil {
		o.jobsHandled.Add(ctx, 1, attrs)
	}
	if o.jobDuration != nil {
		o.jobDuration.Record(ctx, float64(duration.Milliseconds()), attrs)
	}
}

func (o *Observability) Shutdown() {
	if o.meterProvider != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		o.meterProvider.Shutdown(ctx)
	}
}
