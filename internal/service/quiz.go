package service

import (
	"bytes"
	"context"
	"encoding/csv"

	"mcqgen/internal/domain"
	"mcqgen/internal/logger"
	"mcqgen/internal/util"

	"go.uber.org/zap"
)

// CSVFilename is the name the exported quiz table is downloaded as
const CSVFilename = "mcqs.csv"

// QuizService defines the interface for quiz generation operations
type QuizService interface {
	Generate(ctx context.Context, filename string, data []byte, req *domain.GenerationRequest) (*domain.QuizResult, error)
	ExportCSV(rows []domain.QuizRow) ([]byte, error)
}

// quizService implements QuizService
type quizService struct {
	extractor domain.TextExtractor
	generator domain.QuizGenerator
	reviewer  domain.QuizReviewer
}

// NewQuizService creates a new instance of quizService
func NewQuizService(extractor domain.TextExtractor, generator domain.QuizGenerator, reviewer domain.QuizReviewer) QuizService {
	return &quizService{
		extractor: extractor,
		generator: generator,
		reviewer:  reviewer,
	}
}

// Generate runs the pipeline in strict order: validate, extract, generate,
// review, parse. The first failing step aborts the request, so the review
// call never happens when generation fails and no partial results are ever
// returned.
func (s *quizService) Generate(ctx context.Context, filename string, data []byte, req *domain.GenerationRequest) (*domain.QuizResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	text, err := s.extractor.Extract(filename, data)
	if err != nil {
		return nil, err
	}

	generated, err := s.generator.GenerateQuiz(ctx, domain.GenerationInput{
		Text:    text,
		Count:   req.Count,
		Subject: req.Subject,
		Tone:    req.Tone,
	})
	if err != nil {
		return nil, err
	}

	review, err := s.reviewer.ReviewQuiz(ctx, req.Subject, generated.Content)
	if err != nil {
		return nil, err
	}

	usage := generated.Usage
	usage.Add(review.Usage)

	rows, err := domain.ParseGeneratedQuiz(generated.Content)
	if err != nil {
		return nil, err
	}

	result := &domain.QuizResult{
		ID:     util.NewULID(),
		Rows:   rows,
		Review: review.Content,
		Usage:  usage,
	}

	logger.Get().Info("Quiz generated",
		zap.String("quiz_id", result.ID),
		zap.String("filename", filename),
		zap.Int("rows", len(result.Rows)),
		zap.Int("prompt_tokens", usage.PromptTokens),
		zap.Int("completion_tokens", usage.CompletionTokens),
		zap.Int("total_tokens", usage.TotalTokens))

	return result, nil
}

// ExportCSV renders quiz rows as the downloadable CSV payload, one line per
// row under a MCQ,Choices,Correct header
func (s *quizService) ExportCSV(rows []domain.QuizRow) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"MCQ", "Choices", "Correct"}); err != nil {
		return nil, domain.NewInternalError(err)
	}
	for _, row := range rows {
		if err := w.Write([]string{row.MCQ, row.Choices, row.Correct}); err != nil {
			return nil, domain.NewInternalError(err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, domain.NewInternalError(err)
	}

	return buf.Bytes(), nil
}
