// internal/workers/guidance/resolve-recommendation/handler_test.go
package resolverecommendation

import (
	"context"
	"testing"

	"guidance-workers/internal/catalog"
	"guidance-workers/internal/common/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T) *Handler {
	return NewHandler(LoadConfig(), catalog.NewStatic(), logger.NewTestLogger(t))
}

func TestHandler_Execute_KnownLabel(t *testing.T) {
	handler := newTestHandler(t)

	output, err := handler.Execute(context.Background(), &Input{Label: "Engineering & Technology"})

	require.NoError(t, err)
	assert.True(t, output.Matched)
	assert.Equal(t, "Engineering & Technology", output.Label)
	assert.NotEmpty(t, output.Detail.Careers)
	assert.NotEmpty(t, output.Detail.Courses)
	assert.NotEmpty(t, output.Detail.Skills)
}

func TestHandler_Execute_UnknownLabelServesDefault(t *testing.T) {
	handler := newTestHandler(t)
	def := catalog.NewStatic().Default()

	tests := []string{
		"",
		"Underwater Basket Weaving",
		"engineering & technology", // case matters: exact match only
	}

	for _, label := range tests {
		t.Run("label "+label, func(t *testing.T) {
			output, err := handler.Execute(context.Background(), &Input{Label: label})

			require.NoError(t, err, "resolution never fails")
			assert.False(t, output.Matched)
			assert.Equal(t, def, output.Detail)
			assert.NotEmpty(t, output.Detail.Careers, "default detail is well-formed")
		})
	}
}

func TestHandler_Execute_Pure(t *testing.T) {
	handler := newTestHandler(t)
	input := &Input{Label: "Science & Research"}

	first, err := handler.Execute(context.Background(), input)
	require.NoError(t, err)
	second, err := handler.Execute(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func BenchmarkHandler_Execute(b *testing.B) {
	handler := NewHandler(LoadConfig(), catalog.NewStatic(), logger.NewNoOpLogger())
	input := &Input{Label: "Commerce & Finance"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		handler.Execute(context.Background(), input)
	}
}
