package service

import (
	"context"

	"mcqgen/internal/domain"

	"github.com/stretchr/testify/mock"
)

// --- MockTextExtractor ---
type MockTextExtractor struct {
	mock.Mock
}

func (m *MockTextExtractor) Extract(filename string, data []byte) (string, error) {
	args := m.Called(filename, data)
	return args.String(0), args.Error(1)
}

// --- MockQuizGenerator ---
type MockQuizGenerator struct {
	mock.Mock
}

func (m *MockQuizGenerator) GenerateQuiz(ctx context.Context, input domain.GenerationInput) (*domain.LLMResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LLMResult), args.Error(1)
}

// --- MockQuizReviewer ---
type MockQuizReviewer struct {
	mock.Mock
}

func (m *MockQuizReviewer) ReviewQuiz(ctx context.Context, subject, quizText string) (*domain.LLMResult, error) {
	args := m.Called(ctx, subject, quizText)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LLMResult), args.Error(1)
}

// Ensure all required methods for interfaces are present in the mocks
var _ domain.TextExtractor = (*MockTextExtractor)(nil)
var _ domain.QuizGenerator = (*MockQuizGenerator)(nil)
var _ domain.QuizReviewer = (*MockQuizReviewer)(nil)
