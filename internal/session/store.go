// internal/session/store.go

// Package session persists a user's quiz score and raw answers under fixed
// keys so every guidance page reads the same state. It replaces ambient
// global lookups with an explicit create/read/clear lifecycle.
package session

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"time"

	"guidance-workers/internal/common/errors"
	"guidance-workers/internal/common/logger"
	"guidance-workers/internal/models"

	"github.com/redis/go-redis/v9"
)

// ErrNoQuizTaken is returned when either session key is missing; callers
// route the user back to the quiz.
var ErrNoQuizTaken = stderrors.New("no quiz taken for session")

// Store is a Redis-backed quiz session store.
type Store struct {
	client    *redis.Client
	keyPrefix string
	ttl       time.Duration // zero means no expiry
	logger    logger.Logger
}

func NewStore(client *redis.Client, keyPrefix string, ttl time.Duration, log logger.Logger) *Store {
	return &Store{
		client:    client,
		keyPrefix: keyPrefix,
		ttl:       ttl,
		logger:    log.WithFields(map[string]interface{}{"component": "session-store"}),
	}
}

func (s *Store) scoreKey(sessionID string) string {
	return s.keyPrefix + ":" + sessionID + ":score"
}

func (s *Store) answersKey(sessionID string) string {
	return s.keyPrefix + ":" + sessionID + ":answers"
}

// Save writes both the score and the raw answers. A session is only
// considered created once both keys exist.
func (s *Store) Save(ctx context.Context, sessionID string, score *models.QuizScore, answers []models.QuizAnswer) error {
	scoreJSON, err := json.Marshal(score)
	if err != nil {
		return errors.NewSessionStoreFailedError(err)
	}
	answersJSON, err := json.Marshal(answers)
	if err != nil {
		return errors.NewSessionStoreFailedError(err)
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, s.scoreKey(sessionID), scoreJSON, s.ttl)
	pipe.Set(ctx, s.answersKey(sessionID), answersJSON, s.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return errors.NewSessionStoreFailedError(err)
	}

	s.logger.Debug("session saved", map[string]interface{}{
		"sessionId": sessionID,
		"answered":  len(answers),
	})
	return nil
}

// Load reads the stored score and answers. Missing keys mean the quiz was
// never taken (or was cleared) and yield ErrNoQuizTaken.
func (s *Store) Load(ctx context.Context, sessionID string) (*models.QuizScore, []models.QuizAnswer, error) {
	scoreJSON, err := s.client.Get(ctx, s.scoreKey(sessionID)).Result()
	if err == redis.Nil {
		return nil, nil, ErrNoQuizTaken
	}
	if err != nil {
		return nil, nil, errors.NewSessionStoreFailedError(err)
	}

	answersJSON, err := s.client.Get(ctx, s.answersKey(sessionID)).Result()
	if err == redis.Nil {
		return nil, nil, ErrNoQuizTaken
	}
	if err != nil {
		return nil, nil, errors.NewSessionStoreFailedError(err)
	}

	var score models.QuizScore
	if err := json.Unmarshal([]byte(scoreJSON), &score); err != nil {
		return nil, nil, errors.NewSessionStoreFailedError(err)
	}
	var answers []models.QuizAnswer
	if err := json.Unmarshal([]byte(answersJSON), &answers); err != nil {
		return nil, nil, errors.NewSessionStoreFailedError(err)
	}

	return &score, answers, nil
}

// Clear removes both keys. Clearing an absent session is not an error.
func (s *Store) Clear(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, s.scoreKey(sessionID), s.answersKey(sessionID)).Err(); err != nil {
		return errors.NewSessionStoreFailedError(err)
	}
	return nil
}
