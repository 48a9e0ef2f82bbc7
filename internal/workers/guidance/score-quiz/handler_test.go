// internal/workers/guidance/score-quiz/handler_test.go
package scorequiz

import (
	"context"
	"testing"

	"guidance-workers/internal/common/logger"
	"guidance-workers/internal/models"
	"guidance-workers/internal/session"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Test Helper Functions
// ==========================

func createTestConfig() *Config {
	return &Config{MaxRecommendations: 5}
}

func answersFor(categories ...string) []models.QuizAnswer {
	answers := make([]models.QuizAnswer, 0, len(categories))
	for i, c := range categories {
		answers = append(answers, models.QuizAnswer{
			QuestionID: "q" + string(rune('1'+i)),
			Category:   c,
		})
	}
	return answers
}

// ==========================
// Core Functionality Tests
// ==========================

func TestHandler_Execute_Success(t *testing.T) {
	tests := []struct {
		name               string
		answers            []models.QuizAnswer
		totalQuestions     int
		expectedCategories map[string]int
		expectedPercentage int
		expectedRecs       []string
	}{
		{
			name:               "all answers one category",
			answers:            answersFor("Engineering & Technology", "Engineering & Technology", "Engineering & Technology", "Engineering & Technology", "Engineering & Technology"),
			totalQuestions:     5,
			expectedCategories: map[string]int{"Engineering & Technology": 5},
			expectedPercentage: 100,
			expectedRecs:       []string{"Engineering & Technology"},
		},
		{
			name:           "mixed categories ranked by tally",
			answers:        answersFor("Arts & Humanities", "Engineering & Technology", "Engineering & Technology", "Science & Research", "Engineering & Technology", "Science & Research"),
			totalQuestions: 6,
			expectedCategories: map[string]int{
				"Engineering & Technology": 3,
				"Science & Research":       2,
				"Arts & Humanities":        1,
			},
			expectedPercentage: 100,
			expectedRecs:       []string{"Engineering & Technology", "Science & Research", "Arts & Humanities"},
		},
		{
			name:           "ties broken by first-encountered order",
			answers:        answersFor("Commerce & Finance", "Medical & Healthcare", "Medical & Healthcare", "Commerce & Finance"),
			totalQuestions: 4,
			expectedCategories: map[string]int{
				"Commerce & Finance":   2,
				"Medical & Healthcare": 2,
			},
			expectedPercentage: 100,
			expectedRecs:       []string{"Commerce & Finance", "Medical & Healthcare"},
		},
		{
			name:           "partial completion",
			answers:        answersFor("Engineering & Technology", "Arts & Humanities", "Engineering & Technology"),
			totalQuestions: 10,
			expectedCategories: map[string]int{
				"Engineering & Technology": 2,
				"Arts & Humanities":        1,
			},
			expectedPercentage: 30,
			expectedRecs:       []string{"Engineering & Technology", "Arts & Humanities"},
		},
		{
			name:               "zero answered questions",
			answers:            nil,
			totalQuestions:     10,
			expectedCategories: map[string]int{},
			expectedPercentage: 0,
			expectedRecs:       nil,
		},
		{
			name:               "total questions omitted defaults to answered count",
			answers:            answersFor("Science & Research", "Science & Research"),
			totalQuestions:     0,
			expectedCategories: map[string]int{"Science & Research": 2},
			expectedPercentage: 100,
			expectedRecs:       []string{"Science & Research"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewHandler(createTestConfig(), nil, logger.NewTestLogger(t))

			output, err := handler.Execute(context.Background(), &Input{
				Answers:        tt.answers,
				TotalQuestions: tt.totalQuestions,
			})

			assert.NoError(t, err)
			require.NotNil(t, output)
			assert.Equal(t, tt.expectedCategories, output.Score.Categories)
			assert.Equal(t, tt.expectedPercentage, output.Score.Percentage)
			assert.Equal(t, tt.expectedRecs, output.Score.Recommendations)
			assert.Equal(t, len(tt.answers), output.Score.Total)
		})
	}
}

func TestHandler_Execute_Idempotent(t *testing.T) {
	handler := NewHandler(createTestConfig(), nil, logger.NewTestLogger(t))
	input := &Input{
		Answers:        answersFor("Arts & Humanities", "Engineering & Technology", "Arts & Humanities", "Science & Research"),
		TotalQuestions: 4,
	}

	first, err := handler.Execute(context.Background(), input)
	require.NoError(t, err)
	second, err := handler.Execute(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, first.Score, second.Score)
}

func TestHandler_Execute_TruncatesRecommendations(t *testing.T) {
	handler := NewHandler(&Config{MaxRecommendations: 3}, nil, logger.NewTestLogger(t))

	output, err := handler.Execute(context.Background(), &Input{
		Answers: answersFor("A", "B", "C", "D", "E"),
	})

	require.NoError(t, err)
	assert.Len(t, output.Score.Recommendations, 3)
	assert.Equal(t, []string{"A", "B", "C"}, output.Score.Recommendations)
	assert.Len(t, output.Score.Categories, 5, "tally keeps every category")
}

func TestHandler_Execute_RecommendationsBoundedByDistinctCategories(t *testing.T) {
	handler := NewHandler(createTestConfig(), nil, logger.NewTestLogger(t))

	output, err := handler.Execute(context.Background(), &Input{
		Answers: answersFor("A", "A", "B", "B", "B"),
	})

	require.NoError(t, err)
	assert.LessOrEqual(t, len(output.Score.Recommendations), len(output.Score.Categories))
	assert.Equal(t, []string{"B", "A"}, output.Score.Recommendations)
}

func TestHandler_Execute_SkipsUnlabeledAnswers(t *testing.T) {
	handler := NewHandler(createTestConfig(), nil, logger.NewTestLogger(t))

	output, err := handler.Execute(context.Background(), &Input{
		Answers: []models.QuizAnswer{
			{QuestionID: "q1", Category: "Engineering & Technology"},
			{QuestionID: "q2", Category: ""},
		},
		TotalQuestions: 2,
	})

	require.NoError(t, err)
	assert.Equal(t, map[string]int{"Engineering & Technology": 1}, output.Score.Categories)
	assert.Equal(t, 50, output.Score.Percentage)
}

// ==========================
// Session Persistence
// ==========================

func TestHandler_Execute_PersistsSession(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	sessions := session.NewStore(client, "guidance:session", 0, logger.NewTestLogger(t))

	handler := NewHandler(createTestConfig(), sessions, logger.NewTestLogger(t))
	input := &Input{
		SessionID:      "sess-quiz",
		Answers:        answersFor("Engineering & Technology", "Engineering & Technology"),
		TotalQuestions: 2,
	}

	output, err := handler.Execute(context.Background(), input)
	require.NoError(t, err)

	score, answers, err := sessions.Load(context.Background(), "sess-quiz")
	require.NoError(t, err)
	assert.Equal(t, output.Score, *score)
	assert.Equal(t, input.Answers, answers)
}

func TestHandler_Execute_SessionSaveFailureIsNonFatal(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	sessions := session.NewStore(client, "guidance:session", 0, logger.NewNoOpLogger())
	mr.Close() // redis down

	handler := NewHandler(createTestConfig(), sessions, logger.NewNoOpLogger())
	output, err := handler.Execute(context.Background(), &Input{
		SessionID: "sess-down",
		Answers:   answersFor("Science & Research"),
	})

	assert.NoError(t, err, "scoring succeeds even when persistence is down")
	assert.Equal(t, 100, output.Score.Percentage)
}

// ==========================
// Benchmark Tests
// ==========================

func BenchmarkHandler_Execute(b *testing.B) {
	handler := NewHandler(createTestConfig(), nil, logger.NewNoOpLogger())
	input := &Input{
		Answers:        answersFor("A", "B", "A", "C", "B", "A", "D", "E", "C", "A"),
		TotalQuestions: 10,
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		handler.Execute(context.Background(), input)
	}
}
