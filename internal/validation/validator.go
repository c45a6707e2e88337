package validation

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"mcqgen/internal/domain"
)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateGenerateQuizRequest validates the form fields of a generation
// request and converts the raw count to its numeric form.
func (v *Validator) ValidateGenerateQuizRequest(countRaw, subject, tone string) (int, domain.ValidationErrors) {
	var errors domain.ValidationErrors

	count := 0
	if strings.TrimSpace(countRaw) == "" {
		errors = append(errors, domain.NewMissingFieldError("count"))
	} else if parsed, err := strconv.Atoi(strings.TrimSpace(countRaw)); err != nil {
		errors = append(errors, domain.NewInvalidFormatError("count", countRaw))
	} else if parsed < domain.MinQuestionCount || parsed > domain.MaxQuestionCount {
		errors = append(errors, domain.NewOutOfRangeError("count", parsed, domain.MinQuestionCount, domain.MaxQuestionCount))
	} else {
		count = parsed
	}

	if strings.TrimSpace(subject) == "" {
		errors = append(errors, domain.NewMissingFieldError("subject"))
	} else if utf8.RuneCountInString(subject) > domain.MaxSubjectLength {
		errors = append(errors, domain.NewOutOfRangeError("subject", utf8.RuneCountInString(subject), 1, domain.MaxSubjectLength))
	}

	if strings.TrimSpace(tone) == "" {
		errors = append(errors, domain.NewMissingFieldError("tone"))
	} else if utf8.RuneCountInString(tone) > domain.MaxToneLength {
		errors = append(errors, domain.NewOutOfRangeError("tone", utf8.RuneCountInString(tone), 1, domain.MaxToneLength))
	}

	return count, errors
}
