// internal/workers/guidance/score-quiz/handler.go
package scorequiz

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"sort"

	"guidance-workers/internal/common/logger"
	"guidance-workers/internal/models"
	"guidance-workers/internal/session"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const (
	TaskType = "score-quiz"
)

type Handler struct {
	config   *Config
	sessions *session.Store
	logger   logger.Logger
}

// NewHandler creates the scoring handler. sessions may be nil when the
// caller keeps state itself (tests, embedded use).
func NewHandler(config *Config, sessions *session.Store, log logger.Logger) *Handler {
	return &Handler{
		config:   config,
		sessions: sessions,
		logger:   log.WithFields(map[string]interface{}{"taskType": TaskType}),
	}
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	h.logger.Info("processing job", map[string]interface{}{
		"jobKey":      job.Key,
		"workflowKey": job.ProcessInstanceKey,
	})

	var input Input
	if err := json.Unmarshal([]byte(job.Variables), &input); err != nil {
		h.failJob(client, job, "PARSE_ERROR", fmt.Sprintf("parse input: %v", err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	output, err := h.execute(ctx, &input)
	if err != nil {
		h.failJob(client, job, "SCORE_QUIZ_FAILED", err.Error())
		return
	}

	h.completeJob(client, job, output)
}

func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	score := h.aggregate(input.Answers, input.TotalQuestions)

	if h.sessions != nil && input.SessionID != "" {
		if err := h.sessions.Save(ctx, input.SessionID, &score, input.Answers); err != nil {
			// The score itself is still valid; persistence is best-effort.
			h.logger.Warn("failed to persist quiz session", map[string]interface{}{
				"sessionId": input.SessionID,
				"error":     err.Error(),
			})
		}
	}

	h.logger.Info("quiz scored", map[string]interface{}{
		"answered":        score.Total,
		"percentage":      score.Percentage,
		"recommendations": score.Recommendations,
	})

	return &Output{Score: score}, nil
}

// aggregate tallies answers per category and ranks the categories. The
// result is fully determined by the answer sequence: running it twice on the
// same input yields the same QuizScore.
func (h *Handler) aggregate(answers []models.QuizAnswer, totalQuestions int) models.QuizScore {
	tally := make(map[string]int)
	var order []string // categories in first-encountered order

	for _, a := range answers {
		if a.Category == "" {
			continue
		}
		if _, seen := tally[a.Category]; !seen {
			order = append(order, a.Category)
		}
		tally[a.Category]++
	}

	answered := 0
	for _, n := range tally {
		answered += n
	}

	if totalQuestions <= 0 {
		totalQuestions = answered
	}

	percentage := 0
	if totalQuestions > 0 {
		percentage = int(math.Round(100 * float64(answered) / float64(totalQuestions)))
	}
	if percentage > 100 {
		percentage = 100
	}

	// Descending by tally; SliceStable keeps first-seen order on ties.
	ranked := make([]string, len(order))
	copy(ranked, order)
	sort.SliceStable(ranked, func(i, j int) bool {
		return tally[ranked[i]] > tally[ranked[j]]
	})

	if len(ranked) > h.config.MaxRecommendations {
		ranked = ranked[:h.config.MaxRecommendations]
	}

	return models.QuizScore{
		Categories:      tally,
		Total:           answered,
		Percentage:      percentage,
		Recommendations: ranked,
	}
}

func (h *Handler) completeJob(client worker.JobClient, job entities.Job, output *Output) {
	cmd, err := client.NewCompleteJobCommand().
		JobKey(job.Key).
		VariablesFromObject(output)
	if err != nil {
		h.logger.Error("failed to create complete job command", map[string]interface{}{
			"error": err,
		})
		return
	}
	_, err = cmd.Send(context.Background())
	if err != nil {
		h.logger.Error("failed to send complete job command", map[string]interface{}{
			"error": err,
		})
	}
}

func (h *Handler) failJob(client worker.JobClient, job entities.Job, errorCode, errorMessage string) {
	h.logger.Error("job failed", map[string]interface{}{
		"jobKey":       job.Key,
		"errorCode":    errorCode,
		"errorMessage": errorMessage,
	})

	_, err := client.NewThrowErrorCommand().
		JobKey(job.Key).
		ErrorCode(errorCode).
		ErrorMessage(errorMessage).
		Send(context.Background())
	if err != nil {
		h.logger.Error("failed to throw error", map[string]interface{}{
			"error": err,
		})
	}
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}
