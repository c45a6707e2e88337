package domain

import (
	"strings"
	"unicode/utf8"
)

// Question count bounds for a single generation request
const (
	MinQuestionCount = 3
	MaxQuestionCount = 50
)

// Length limits for the free-text generation parameters
const (
	MaxSubjectLength = 20
	MaxToneLength    = 20
)

// GenerationRequest carries the user parameters for one quiz generation
type GenerationRequest struct {
	Count   int
	Subject string
	Tone    string
}

// NewGenerationRequest creates a new GenerationRequest
func NewGenerationRequest(count int, subject, tone string) *GenerationRequest {
	return &GenerationRequest{
		Count:   count,
		Subject: subject,
		Tone:    tone,
	}
}

// Validate checks the request parameters against their bounds
func (r *GenerationRequest) Validate() error {
	var errs ValidationErrors

	if r.Count < MinQuestionCount || r.Count > MaxQuestionCount {
		errs = append(errs, NewOutOfRangeError("count", r.Count, MinQuestionCount, MaxQuestionCount))
	}

	if strings.TrimSpace(r.Subject) == "" {
		errs = append(errs, NewMissingFieldError("subject"))
	} else if utf8.RuneCountInString(r.Subject) > MaxSubjectLength {
		errs = append(errs, NewOutOfRangeError("subject", utf8.RuneCountInString(r.Subject), 1, MaxSubjectLength))
	}

	if strings.TrimSpace(r.Tone) == "" {
		errs = append(errs, NewMissingFieldError("tone"))
	} else if utf8.RuneCountInString(r.Tone) > MaxToneLength {
		errs = append(errs, NewOutOfRangeError("tone", utf8.RuneCountInString(r.Tone), 1, MaxToneLength))
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// QuizRow is one row of the generated quiz table. Choices holds all options
// as a single display string, e.g. "a-> Paris || b-> Lyon".
type QuizRow struct {
	MCQ     string
	Choices string
	Correct string
}

// TokenUsage aggregates token accounting across LLM calls
type TokenUsage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// Add accumulates another usage into u
func (u *TokenUsage) Add(other TokenUsage) {
	u.PromptTokens += other.PromptTokens
	u.CompletionTokens += other.CompletionTokens
	u.TotalTokens += other.TotalTokens
}

// QuizResult is the outcome of the two-stage generation pipeline
type QuizResult struct {
	ID     string
	Rows   []QuizRow
	Review string
	Usage  TokenUsage
}
