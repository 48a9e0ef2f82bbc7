// internal/workers/guidance/send-guidance-report/handler.go
package sendguidancereport

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	commonaws "guidance-workers/internal/common/aws"
	"guidance-workers/internal/common/errors"
	"guidance-workers/internal/common/logger"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/google/uuid"
)

const (
	TaskType = "send-guidance-report"
)

type Handler struct {
	config       *Config
	sender       commonaws.EmailSender
	errorHandler *errors.ErrorHandler
	logger       logger.Logger
}

func NewHandler(config *Config, sender commonaws.EmailSender, log logger.Logger) *Handler {
	return &Handler{
		config:       config,
		sender:       sender,
		errorHandler: errors.NewErrorHandler(log),
		logger:       log.WithFields(map[string]interface{}{"taskType": TaskType}),
	}
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	h.logger.Info("processing job", map[string]interface{}{
		"jobKey":      job.Key,
		"workflowKey": job.ProcessInstanceKey,
	})

	var input Input
	if err := json.Unmarshal([]byte(job.Variables), &input); err != nil {
		h.errorHandler.HandleJobError(context.Background(), client, job,
			errors.NewReportValidationFailedError(fmt.Sprintf("parse input: %v", err)))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	output, err := h.execute(ctx, &input)
	if err != nil {
		// Send failures are retryable; validation failures throw a BPMN
		// error straight away.
		h.errorHandler.HandleJobError(ctx, client, job, err)
		return
	}

	h.completeJob(client, job, output)
}

func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	if !h.config.Enabled {
		h.logger.Info("report delivery disabled, skipping send", map[string]interface{}{
			"to": input.To,
		})
		return &Output{Sent: false, Skipped: true, SentAt: time.Now().UTC()}, nil
	}

	subject, body := buildReport(input)

	resp, err := h.sender.SendEmail(ctx, &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{input.To},
		},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(subject)},
			Body: &types.Body{
				Text: &types.Content{Data: aws.String(body)},
			},
		},
		Source: aws.String(h.config.FromEmail),
	})
	if err != nil {
		return nil, errors.NewReportSendFailedError(err)
	}

	messageID := uuid.NewString()
	if resp != nil && resp.MessageId != nil {
		messageID = *resp.MessageId
	}

	h.logger.Info("guidance report sent", map[string]interface{}{
		"to":        input.To,
		"messageId": messageID,
	})

	return &Output{Sent: true, MessageID: messageID, SentAt: time.Now().UTC()}, nil
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

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}
