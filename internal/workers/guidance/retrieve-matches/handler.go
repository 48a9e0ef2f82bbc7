// internal/workers/guidance/retrieve-matches/handler.go
package retrievematches

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"

	commonhttp "guidance-workers/internal/common/http"
	"guidance-workers/internal/common/logger"
	"guidance-workers/internal/common/metrics"
	"guidance-workers/internal/common/validation"
	"guidance-workers/internal/models"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/google/uuid"
)

const (
	TaskType = "retrieve-matches"

	maxSignals = 3
)

type Handler struct {
	config *Config
	client *commonhttp.Client
	logger logger.Logger
}

func NewHandler(config *Config, log logger.Logger) *Handler {
	return &Handler{
		config: config,
		client: commonhttp.NewClient(config.Timeout),
		logger: log.WithFields(map[string]interface{}{"taskType": TaskType}),
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
		// execute only errors on unusable input; fetch failures degrade
		// to the fallback pool instead.
		h.failJob(client, job, "RETRIEVE_MATCHES_FAILED", err.Error())
		return
	}

	h.completeJob(client, job, output)
}

func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	kind := input.Kind
	if kind != KindInstitutes && kind != KindScholarships {
		return nil, fmt.Errorf("unknown match kind %q", kind)
	}

	output := &Output{RequestID: uuid.NewString()}

	pool, err := h.fetchCandidates(ctx, input)
	if err != nil {
		metrics.MatchFallbackTotal.WithLabelValues(string(kind)).Inc()
		h.logger.Warn("matching service unavailable, using fallback pool", map[string]interface{}{
			"kind":       string(kind),
			"searchTerm": input.SearchTerm,
			"error":      err.Error(),
		})
		pool = fallbackPool(kind, input.SearchTerm)
		output.UsingFallback = true
		output.Error = err.Error()
	}

	output.Results = h.applyFilters(pool, input)

	h.logger.Info("matches retrieved", map[string]interface{}{
		"kind":          string(kind),
		"requestId":     output.RequestID,
		"resultCount":   len(output.Results),
		"usingFallback": output.UsingFallback,
	})

	return output, nil
}

// fetchCandidates posts the kind-specific request to the matching service
// and decodes the validated response. Any transport, status, schema or
// decode failure is returned to the caller, which owns fallback policy.
func (h *Handler) fetchCandidates(ctx context.Context, input *Input) ([]models.MatchResult, error) {
	url := h.config.BaseURL + "/api/" + string(input.Kind) + "/match"

	var body interface{}
	switch input.Kind {
	case KindScholarships:
		body = scholarshipRequest{
			ChosenCourse:  input.ChosenCourse,
			Location:      input.Location,
			AcademicScore: input.AcademicScore,
		}
	default:
		strengths, interests := deriveSignals(input.Score)
		body = instituteRequest{
			Profile: input.Profile,
			QuizResult: quizResultPayload{
				Strengths:  strengths,
				Interests:  interests,
				RawAnswers: input.RawAnswers,
			},
			Preferences: map[string]interface{}{
				"searchTerm": input.SearchTerm,
				"category":   input.Category,
			},
		}
	}

	resp, err := h.client.PostJSON(ctx, url, body)
	if err != nil {
		metrics.MatchFetchTotal.WithLabelValues(string(input.Kind), "error").Inc()
		return nil, fmt.Errorf("post %s: %w", url, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.MatchFetchTotal.WithLabelValues(string(input.Kind), "error").Inc()
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		metrics.MatchFetchTotal.WithLabelValues(string(input.Kind), "error").Inc()
		return nil, fmt.Errorf("matching service returned status %d", resp.StatusCode)
	}

	if err := validation.ValidateMatchResponse(string(input.Kind), payload); err != nil {
		metrics.MatchFetchTotal.WithLabelValues(string(input.Kind), "invalid").Inc()
		return nil, err
	}

	var decoded matchResponse
	if err := json.Unmarshal(payload, &decoded); err != nil {
		metrics.MatchFetchTotal.WithLabelValues(string(input.Kind), "invalid").Inc()
		return nil, fmt.Errorf("decode response: %w", err)
	}

	results := decoded.Institutes
	if input.Kind == KindScholarships {
		results = decoded.Scholarships
	}

	metrics.MatchFetchTotal.WithLabelValues(string(input.Kind), "success").Inc()
	return results, nil
}

// deriveSignals condenses the quiz score into the strengths/interests
// vectors the matching service expects: strengths are the top categories by
// tally, interests the leading recommendations. Both cap at maxSignals.
func deriveSignals(score *models.QuizScore) (strengths, interests []string) {
	if score == nil {
		return nil, nil
	}

	// Recommendations already carry the ranked order, so reuse it for
	// deterministic tie behavior instead of iterating the tally map.
	ranked := make([]string, len(score.Recommendations))
	copy(ranked, score.Recommendations)
	sort.SliceStable(ranked, func(i, j int) bool {
		return score.Categories[ranked[i]] > score.Categories[ranked[j]]
	})

	strengths = ranked
	if len(strengths) > maxSignals {
		strengths = strengths[:maxSignals]
	}

	interests = score.Recommendations
	if len(interests) > maxSignals {
		interests = interests[:maxSignals]
	}

	return strengths, interests
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
