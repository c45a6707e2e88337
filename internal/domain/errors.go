package domain

import (
	"fmt"
	"strings"
)

// ErrorCode identifies a category of failure
type ErrorCode string

const (
	// Validation error codes
	CodeValidation    ErrorCode = "VALIDATION"
	CodeMissingField  ErrorCode = "MISSING_FIELD"
	CodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	CodeOutOfRange    ErrorCode = "OUT_OF_RANGE"

	// Pipeline error codes
	CodeUnsupportedFormat ErrorCode = "UNSUPPORTED_FORMAT"
	CodeExtractionFailed  ErrorCode = "EXTRACTION_FAILED"
	CodeMalformedQuiz     ErrorCode = "MALFORMED_QUIZ"
	CodeUpstreamFailure   ErrorCode = "UPSTREAM_FAILURE"

	CodeInternal ErrorCode = "INTERNAL_ERROR"
)

// DomainError is the error type returned by the quiz pipeline and its
// collaborators. Code drives the HTTP status mapping, Cause keeps the full
// chain for logging, Context carries structured detail that never reaches
// the response body.
type DomainError struct {
	Code    ErrorCode
	Message string
	Cause   error
	Context map[string]interface{}
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *DomainError) Unwrap() error {
	return e.Cause
}

// NewDomainError creates a new DomainError
func NewDomainError(code ErrorCode, message string, cause error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WithContext attaches a key/value pair to the error for logging
func (e *DomainError) WithContext(key string, value interface{}) *DomainError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// NewUnsupportedFormatError indicates the uploaded file has an extension the
// extractor does not handle
func NewUnsupportedFormatError(filename string) *DomainError {
	return NewDomainError(CodeUnsupportedFormat, "unsupported file format", nil).
		WithContext("filename", filename)
}

// NewExtractionError indicates the document bytes could not be turned into text
func NewExtractionError(filename string, cause error) *DomainError {
	return NewDomainError(CodeExtractionFailed, "failed to extract document text", cause).
		WithContext("filename", filename)
}

// NewMalformedQuizError indicates the generation output could not be parsed
// into quiz rows
func NewMalformedQuizError(cause error) *DomainError {
	return NewDomainError(CodeMalformedQuiz, "generated quiz could not be parsed", cause)
}

// NewUpstreamFailureError indicates an LLM call failed
func NewUpstreamFailureError(stage string, cause error) *DomainError {
	return NewDomainError(CodeUpstreamFailure, "LLM request failed", cause).
		WithContext("stage", stage)
}

// NewInternalError wraps an unexpected failure
func NewInternalError(cause error) *DomainError {
	return NewDomainError(CodeInternal, "internal error", cause)
}

// ValidationError represents a single field-level validation failure
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors accumulates field-level failures so a request reports all
// of them at once
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, v := range e {
		msgs[i] = v.Error()
	}
	return strings.Join(msgs, "; ")
}

// NewMissingFieldError creates a validation error for a required field
func NewMissingFieldError(field string) ValidationError {
	return ValidationError{Field: field, Message: "is required"}
}

// NewInvalidFormatError creates a validation error for a malformed value
func NewInvalidFormatError(field, value string) ValidationError {
	return ValidationError{Field: field, Message: fmt.Sprintf("has invalid format: %q", value)}
}

// NewOutOfRangeError creates a validation error for a value outside its bounds
func NewOutOfRangeError(field string, value, min, max int) ValidationError {
	return ValidationError{Field: field, Message: fmt.Sprintf("must be between %d and %d, got %d", min, max, value)}
}
