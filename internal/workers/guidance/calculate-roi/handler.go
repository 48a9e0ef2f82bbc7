// internal/workers/guidance/calculate-roi/handler.go
package calculateroi

import (
	"context"
	"encoding/json"
	"fmt"

	"guidance-workers/internal/catalog"
	"guidance-workers/internal/common/errors"
	"guidance-workers/internal/common/logger"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const (
	TaskType = "calculate-roi"
)

// Classification bands for UI labeling.
const (
	BandExcellent = "excellent"
	BandGood      = "good"
	BandAverage   = "average"
	BandPoor      = "poor"
)

type Handler struct {
	config  *Config
	catalog *catalog.Catalog
	logger  logger.Logger
}

// NewHandler creates the ROI handler. careers may be nil when callers
// always supply the salary range directly.
func NewHandler(config *Config, careers *catalog.Catalog, log logger.Logger) *Handler {
	return &Handler{
		config:  config,
		catalog: careers,
		logger:  log.WithFields(map[string]interface{}{"taskType": TaskType}),
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
		h.failJob(client, job, string(errors.ErrCodeROIValidationFailed), err.Error())
		return
	}

	h.completeJob(client, job, output)
}

// execute is a pure computation over the input and the static catalog.
// Validation errors block the whole calculation; there is no partial result.
func (h *Handler) execute(_ context.Context, input *Input) (*Output, error) {
	if input.TotalCost <= 0 {
		return nil, errors.NewROIValidationFailedError("totalCost must be positive")
	}

	salary, defaulted := h.resolveSalary(input)
	if salary <= 0 {
		return nil, errors.NewROIValidationFailedError("expected salary must be positive")
	}

	workingYears := input.WorkingYears
	if workingYears <= 0 {
		workingYears = h.config.DefaultWorkingYears
	}

	lifetime := salary * float64(workingYears)
	output := &Output{
		TotalInvestment:  input.TotalCost,
		ExpectedSalary:   salary,
		YearsToRecover:   input.TotalCost / salary,
		LifetimeEarnings: lifetime,
		ROIPercent:       100 * (lifetime - input.TotalCost) / input.TotalCost,
		MonthlyIncome:    salary / 12,
		SalaryDefaulted:  defaulted,
	}
	output.Band = classifyROI(output.ROIPercent)

	h.logger.Info("roi calculated", map[string]interface{}{
		"totalInvestment": output.TotalInvestment,
		"expectedSalary":  output.ExpectedSalary,
		"roiPercent":      output.ROIPercent,
		"band":            output.Band,
	})

	return output, nil
}

// resolveSalary picks the expected annual salary: a directly supplied
// range wins, then a catalog cross-reference by label and career title,
// then the configured default. Unparseable ranges log a warning and fall
// through to the default rather than failing the calculation.
func (h *Handler) resolveSalary(input *Input) (salary float64, defaulted bool) {
	raw := input.SalaryRange
	if raw == "" && h.catalog != nil && input.CareerTitle != "" {
		detail := h.catalog.Resolve(input.RecommendationLabel)
		for _, c := range detail.Careers {
			if c.Title == input.CareerTitle {
				raw = c.SalaryRange
				break
			}
		}
	}

	if raw == "" {
		return h.config.DefaultAnnualSalary, true
	}

	salary, err := AnnualSalaryFromRange(raw)
	if err != nil {
		h.logger.Warn("salary range unparseable, using default", map[string]interface{}{
			"salaryRange": raw,
			"error":       err.Error(),
		})
		return h.config.DefaultAnnualSalary, true
	}

	return salary, false
}

func classifyROI(roiPercent float64) string {
	switch {
	case roiPercent > 500:
		return BandExcellent
	case roiPercent > 200:
		return BandGood
	case roiPercent > 100:
		return BandAverage
	default:
		return BandPoor
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
