package domain

import "context"

// GenerationInput bundles everything the generation prompt needs.
type GenerationInput struct {
	Text    string
	Count   int
	Subject string
	Tone    string
}

// LLMResult is a raw model completion plus its token accounting.
type LLMResult struct {
	Content string
	Usage   TokenUsage
}

// QuizGenerator defines the interface for the generation stage. It turns a
// source document into raw quiz text shaped like the configured response
// schema.
type QuizGenerator interface {
	GenerateQuiz(ctx context.Context, input GenerationInput) (*LLMResult, error)
}

// QuizReviewer defines the interface for the review stage. It produces an
// expert assessment of previously generated quiz text.
type QuizReviewer interface {
	ReviewQuiz(ctx context.Context, subject, quizText string) (*LLMResult, error)
}

// TextExtractor turns an uploaded document into plain text.
type TextExtractor interface {
	Extract(filename string, data []byte) (string, error)
}
