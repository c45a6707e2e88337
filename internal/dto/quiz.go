package dto

import "mcqgen/internal/domain"

// QuizRowDTO represents a single generated question in API payloads
// @Description One multiple choice question with its formatted choices
type QuizRowDTO struct {
	MCQ     string `json:"mcq"`
	Choices string `json:"choices"`
	Correct string `json:"correct"`
}

// TokenUsageResponse represents the combined token consumption of a generation
type TokenUsageResponse struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// GenerateQuizResponse represents a completed quiz generation in the API response
// @Description Generated quiz rows with the expert review and token usage
type GenerateQuizResponse struct {
	QuizID string             `json:"quiz_id"`
	Rows   []QuizRowDTO       `json:"rows"`
	Review string             `json:"review"`
	Usage  TokenUsageResponse `json:"usage"`
}

// ExportCSVRequest represents the rows to serialize in the API request
// @Description Request body for exporting quiz rows as CSV
type ExportCSVRequest struct {
	Rows []QuizRowDTO `json:"rows"`
}

// NewGenerateQuizResponse maps a domain result to its API representation
func NewGenerateQuizResponse(result *domain.QuizResult) GenerateQuizResponse {
	rows := make([]QuizRowDTO, 0, len(result.Rows))
	for _, row := range result.Rows {
		rows = append(rows, QuizRowDTO{
			MCQ:     row.MCQ,
			Choices: row.Choices,
			Correct: row.Correct,
		})
	}
	return GenerateQuizResponse{
		QuizID: result.ID,
		Rows:   rows,
		Review: result.Review,
		Usage: TokenUsageResponse{
			PromptTokens:     result.Usage.PromptTokens,
			CompletionTokens: result.Usage.CompletionTokens,
			TotalTokens:      result.Usage.TotalTokens,
		},
	}
}

// ToDomainRows converts request DTOs back to domain rows for export
func (r ExportCSVRequest) ToDomainRows() []domain.QuizRow {
	rows := make([]domain.QuizRow, 0, len(r.Rows))
	for _, row := range r.Rows {
		rows = append(rows, domain.QuizRow{
			MCQ:     row.MCQ,
			Choices: row.Choices,
			Correct: row.Correct,
		})
	}
	return rows
}
