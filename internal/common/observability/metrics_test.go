// internal/common/observability/metrics_test.go
package observability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_CreatesInstruments(t *testing.T) {
	obs := New("observability-test")
	defer obs.Shutdown()

	require.NotNil(t, obs.meterProvider)
	assert.NotNil(t, obs.jobsHandled)
	assert.NotNil(t, obs.jobDuration)
}

func TestRecordJobHandled(t *testing.T) {
	obs := New("observability-test-record")
	defer obs.Shutdown()

	// Must not panic for any task type, including an empty one.
	obs.RecordJobHandled(context.Background(), "score-quiz", 12*time.Millisecond)
	obs.RecordJobHandled(context.Background(), "", 0)
}

func TestRecordJobHandled_ZeroValueObservability(t *testing.T) {
	// Exporter construction can fail at startup; recording must still be
	// safe on the degraded zero value.
	var obs Observability
	obs.RecordJobHandled(context.Background(), "retrieve-matches", time.Millisecond)
	obs.Shutdown()
}
