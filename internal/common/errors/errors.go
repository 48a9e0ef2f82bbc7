// Package errors provides standardized error handling for the guidance
// pipeline workers and their BPMN workflow integration.
package errors

import (
	"fmt"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeQuizParseFailed ErrorCode = "QUIZ_PARSE_FAILED"

	ErrCodeMatchFetchFailed     ErrorCode = "MATCH_FETCH_FAILED"
	ErrCodeMatchResponseInvalid ErrorCode = "MATCH_RESPONSE_INVALID"
	ErrCodeMatchFetchTimeout    ErrorCode = "MATCH_FETCH_TIMEOUT"

	ErrCodeROIValidationFailed ErrorCode = "ROI_VALIDATION_FAILED"
	ErrCodeSalaryParseFailed   ErrorCode = "SALARY_PARSE_FAILED"

	ErrCodeCatalogLoadFailed ErrorCode = "CATALOG_LOAD_FAILED"

	ErrCodeSessionNotFound    ErrorCode = "SESSION_NOT_FOUND"
	ErrCodeSessionStoreFailed ErrorCode = "SESSION_STORE_FAILED"

	ErrCodeReportValidationFailed ErrorCode = "REPORT_VALIDATION_FAILED"
	ErrCodeReportSendFailed       ErrorCode = "REPORT_SEND_FAILED"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// ==========================
// 2. BPMN Error Integration
// ==========================

// BPMNError represents an error that can be thrown to the workflow engine.
type BPMNError struct {
	Code           string                 `json:"code"`
	Message        string                 `json:"message"`
	Details        string                 `json:"details,omitempty"`
	Retryable      bool                   `json:"retryable"`
	Retries        int                    `json:"retries"`
	ErrorVariables map[string]interface{} `json:"errorVariables,omitempty"`
}

func (e *BPMNError) Error() string {
	return fmt.Sprintf("BPMNError[%s]: %s", e.Code, e.Message)
}

// ToErrorVariables returns a map suitable for setting job fail variables.
func (e *BPMNError) ToErrorVariables() map[string]interface{} {
	vars := map[string]interface{}{
		"errorCode":    e.Code,
		"errorMessage": e.Message,
		"errorDetails": e.Details,
		"retryable":    e.Retryable,
	}

	if e.ErrorVariables != nil {
		for k, v := range e.ErrorVariables {
			vars[k] = v
		}
	}

	return vars
}

// ConvertToBPMNError maps a StandardError onto its workflow-facing form.
func ConvertToBPMNError(err *StandardError) *BPMNError {
	return &BPMNError{
		Code:      string(err.Code),
		Message:   err.Message,
		Details:   err.Details,
		Retryable: err.Retryable,
		Retries:   GetRetryCount(err.Code),
	}
}

// GetRetryCount returns how many retries a given error code warrants.
// Non-retryable codes always return 0.
func GetRetryCount(code ErrorCode) int {
	switch code {
	case ErrCodeSessionStoreFailed, ErrCodeCatalogLoadFailed, ErrCodeReportSendFailed:
		return 3
	default:
		return 0
	}
}

// ==========================
// 3. Error Constructors
// ==========================

// NewQuizParseFailedError creates a non-retryable input decode error.
func NewQuizParseFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeQuizParseFailed,
		Message:   "Failed to parse quiz answers",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewMatchFetchFailedError creates the error recorded when the matching
// service is unreachable or returns a non-success status. It is never
// surfaced to callers as a failure; retrieve-matches converts it into the
// fallback path and reports it informationally.
func NewMatchFetchFailedError(kind string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeMatchFetchFailed,
		Message:   "Matching service request failed",
		Details:   fmt.Sprintf("kind: %s, error: %s", kind, err.Error()),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewMatchResponseInvalidError records a malformed matching-service payload.
func NewMatchResponseInvalidError(kind, details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeMatchResponseInvalid,
		Message:   "Matching service returned an unexpected payload",
		Details:   fmt.Sprintf("kind: %s, %s", kind, details),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewROIValidationFailedError creates a non-retryable input validation error.
// ROI computation is blocked entirely, no partial result is produced.
func NewROIValidationFailedError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeROIValidationFailed,
		Message:   "ROI input validation failed",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewSalaryParseFailedError reports an unparseable salary range string.
func NewSalaryParseFailedError(raw string) *StandardError {
	return &StandardError{
		Code:      ErrCodeSalaryParseFailed,
		Message:   "Salary range could not be parsed",
		Details:   fmt.Sprintf("raw: %q", raw),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewCatalogLoadFailedError creates a retryable catalog refresh error.
func NewCatalogLoadFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeCatalogLoadFailed,
		Message:   "Career catalog load failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewSessionNotFoundError signals that no quiz has been taken for a session.
func NewSessionNotFoundError(sessionID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeSessionNotFound,
		Message:   "No stored quiz result for session",
		Details:   fmt.Sprintf("sessionId: %s", sessionID),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewSessionStoreFailedError creates a retryable session persistence error.
func NewSessionStoreFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeSessionStoreFailed,
		Message:   "Session store operation failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewReportValidationFailedError creates a non-retryable report input error.
func NewReportValidationFailedError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeReportValidationFailed,
		Message:   "Guidance report validation failed",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewReportSendFailedError creates a retryable delivery error.
func NewReportSendFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeReportSendFailed,
		Message:   "Guidance report delivery failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}
