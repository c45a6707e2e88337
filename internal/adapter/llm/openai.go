package llm

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"mcqgen/internal/config"
	"mcqgen/internal/domain"
	"mcqgen/internal/logger"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"go.uber.org/zap"
)

// Client implements domain.QuizGenerator and domain.QuizReviewer on top of
// an OpenAI chat model. Both pipeline stages share the same model and
// temperature.
type Client struct {
	llm         llms.Model
	temperature float64
	schemaJSON  string
}

// NewClient creates the OpenAI-backed client. schemaJSON is the serialized
// response schema injected into every generation prompt.
func NewClient(cfg config.LLMConfig, schemaJSON string) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key cannot be empty")
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("model name cannot be empty")
	}
	if schemaJSON == "" {
		return nil, fmt.Errorf("response schema cannot be empty")
	}

	httpClient := &http.Client{
		Timeout: cfg.Timeout,
		Transport: &http.Transport{
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 10,
		},
	}

	model, err := openai.New(
		openai.WithToken(cfg.APIKey),
		openai.WithModel(cfg.Model),
		openai.WithHTTPClient(httpClient),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create OpenAI client: %w", err)
	}

	return &Client{
		llm:         model,
		temperature: cfg.Temperature,
		schemaJSON:  schemaJSON,
	}, nil
}

// GenerateQuiz renders the generation prompt and asks the model for quiz
// text shaped like the response schema. Fenced output is cleaned before it
// is returned.
func (c *Client) GenerateQuiz(ctx context.Context, input domain.GenerationInput) (*domain.LLMResult, error) {
	prompt, err := generationPrompt.Format(map[string]any{
		"text":          input.Text,
		"number":        strconv.Itoa(input.Count),
		"subject":       input.Subject,
		"tone":          input.Tone,
		"response_json": c.schemaJSON,
	})
	if err != nil {
		return nil, domain.NewInternalError(fmt.Errorf("failed to render generation prompt: %w", err))
	}

	result, err := c.call(ctx, prompt)
	if err != nil {
		return nil, domain.NewUpstreamFailureError("generation", err)
	}

	logger.Get().Info("Quiz generation call completed",
		zap.Int("prompt_tokens", result.Usage.PromptTokens),
		zap.Int("completion_tokens", result.Usage.CompletionTokens),
		zap.Int("total_tokens", result.Usage.TotalTokens))

	result.Content = cleanModelOutput(result.Content)
	return result, nil
}

// ReviewQuiz renders the evaluation prompt and asks the model for an expert
// assessment of the quiz text. The review is returned verbatim.
func (c *Client) ReviewQuiz(ctx context.Context, subject, quizText string) (*domain.LLMResult, error) {
	prompt, err := reviewPrompt.Format(map[string]any{
		"subject": subject,
		"quiz":    quizText,
	})
	if err != nil {
		return nil, domain.NewInternalError(fmt.Errorf("failed to render review prompt: %w", err))
	}

	result, err := c.call(ctx, prompt)
	if err != nil {
		return nil, domain.NewUpstreamFailureError("review", err)
	}

	logger.Get().Info("Quiz review call completed",
		zap.Int("prompt_tokens", result.Usage.PromptTokens),
		zap.Int("completion_tokens", result.Usage.CompletionTokens),
		zap.Int("total_tokens", result.Usage.TotalTokens))

	return result, nil
}

func (c *Client) call(ctx context.Context, prompt string) (*domain.LLMResult, error) {
	resp, err := c.llm.GenerateContent(ctx,
		[]llms.MessageContent{llms.TextParts(llms.ChatMessageTypeHuman, prompt)},
		llms.WithTemperature(c.temperature),
	)
	if err != nil {
		return nil, err
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("model returned no choices")
	}

	choice := resp.Choices[0]
	return &domain.LLMResult{
		Content: choice.Content,
		Usage: domain.TokenUsage{
			PromptTokens:     intFromInfo(choice.GenerationInfo, "PromptTokens"),
			CompletionTokens: intFromInfo(choice.GenerationInfo, "CompletionTokens"),
			TotalTokens:      intFromInfo(choice.GenerationInfo, "TotalTokens"),
		},
	}, nil
}

// cleanModelOutput strips reasoning blocks and markdown fences some models
// wrap around their JSON
func cleanModelOutput(s string) string {
	s = strings.TrimSpace(s)
	if strings.Contains(s, "<think>") {
		if end := strings.Index(s, "</think>"); end != -1 {
			s = strings.TrimSpace(s[end+len("</think>"):])
		}
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

func intFromInfo(info map[string]any, key string) int {
	switch v := info[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return 0
	}
}

var _ domain.QuizGenerator = (*Client)(nil)
var _ domain.QuizReviewer = (*Client)(nil)
