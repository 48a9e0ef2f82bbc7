// internal/session/store_test.go
package session

import (
	"context"
	"testing"
	"time"

	"guidance-workers/internal/common/logger"
	"guidance-workers/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewStore(client, "guidance:session", 0, logger.NewTestLogger(t)), mr
}

func testScore() *models.QuizScore {
	return &models.QuizScore{
		Categories:      map[string]int{"Engineering & Technology": 5},
		Total:           5,
		Percentage:      100,
		Recommendations: []string{"Engineering & Technology"},
	}
}

func testAnswers() []models.QuizAnswer {
	return []models.QuizAnswer{
		{QuestionID: "q1", OptionIndex: 0, Category: "Engineering & Technology"},
		{QuestionID: "q2", OptionIndex: 2, Category: "Engineering & Technology"},
	}
}

func TestStore_SaveAndLoad(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "sess-1", testScore(), testAnswers()))

	score, answers, err := store.Load(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, testScore(), score)
	assert.Equal(t, testAnswers(), answers)
}

func TestStore_Load_MissingSession(t *testing.T) {
	store, _ := newTestStore(t)

	_, _, err := store.Load(context.Background(), "never-took-quiz")
	assert.ErrorIs(t, err, ErrNoQuizTaken)
}

func TestStore_Load_PartialSessionTreatedAsMissing(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "sess-2", testScore(), testAnswers()))
	// Simulate the answers key being evicted out from under the score key.
	mr.Del("guidance:session:sess-2:answers")

	_, _, err := store.Load(ctx, "sess-2")
	assert.ErrorIs(t, err, ErrNoQuizTaken)
}

func TestStore_Clear(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "sess-3", testScore(), testAnswers()))
	require.NoError(t, store.Clear(ctx, "sess-3"))

	_, _, err := store.Load(ctx, "sess-3")
	assert.ErrorIs(t, err, ErrNoQuizTaken)

	// Clearing again is a no-op, not an error.
	assert.NoError(t, store.Clear(ctx, "sess-3"))
}

func TestStore_SaveWithTTL(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	store := NewStore(client, "guidance:session", 30*time.Minute, logger.NewTestLogger(t))
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "sess-4", testScore(), testAnswers()))

	mr.FastForward(31 * time.Minute)

	_, _, err := store.Load(ctx, "sess-4")
	assert.ErrorIs(t, err, ErrNoQuizTaken)
}

func TestStore_Load_RedisDownSurfacesStoreError(t *testing.T) {
	client, mock := redismock.NewClientMock()
	store := NewStore(client, "guidance:session", 0, logger.NewNoOpLogger())

	mock.ExpectGet("guidance:session:sess-5:score").SetErr(assert.AnError)

	_, _, err := store.Load(context.Background(), "sess-5")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoQuizTaken, "infrastructure failure is not the same as no quiz")
	assert.NoError(t, mock.ExpectationsWereMet())
}
