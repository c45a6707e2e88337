package handler

import (
	"io"

	"mcqgen/internal/domain"
	"mcqgen/internal/dto"
	"mcqgen/internal/service"

	"github.com/gofiber/fiber/v2"
)

// QuizHandler handles quiz generation HTTP requests
type QuizHandler struct {
	service service.QuizService
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(service service.QuizService) *QuizHandler {
	return &QuizHandler{
		service: service,
	}
}

// GenerateQuiz godoc
// @Summary Generate a multiple choice quiz from a document
// @Description Extracts text from the uploaded .txt or .pdf file, generates the requested number of MCQs and reviews them
// @Tags quiz
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Source document (.txt or .pdf)"
// @Param count formData int true "Number of questions (3-50)"
// @Param subject formData string true "Quiz subject (max 20 characters)"
// @Param tone formData string true "Question tone (max 20 characters)"
// @Success 200 {object} dto.GenerateQuizResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 422 {object} middleware.ErrorResponse
// @Failure 502 {object} middleware.ErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /quizzes [post]
func (h *QuizHandler) GenerateQuiz(c *fiber.Ctx) error {
	count := c.Locals("validated_count").(int)
	subject := c.Locals("validated_subject").(string)
	tone := c.Locals("validated_tone").(string)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return domain.ValidationErrors{domain.NewMissingFieldError("file")}
	}

	file, err := fileHeader.Open()
	if err != nil {
		return domain.NewInternalError(err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return domain.NewInternalError(err)
	}

	result, err := h.service.Generate(c.Context(), fileHeader.Filename, data, domain.NewGenerationRequest(count, subject, tone))
	if err != nil {
		return err
	}

	return c.JSON(dto.NewGenerateQuizResponse(result))
}

// ExportQuizCSV godoc
// @Summary Export quiz rows as a CSV file
// @Description Serializes the given quiz rows into a downloadable CSV attachment
// @Tags quiz
// @Accept json
// @Produce text/csv
// @Param request body dto.ExportCSVRequest true "Quiz rows to export"
// @Success 200 {string} string "CSV payload"
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /quizzes/export [post]
func (h *QuizHandler) ExportQuizCSV(c *fiber.Ctx) error {
	var req dto.ExportCSVRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.ValidationErrors{{Field: "body", Message: "must be valid JSON"}}
	}

	rows := req.ToDomainRows()
	if len(rows) == 0 {
		return domain.ValidationErrors{domain.NewMissingFieldError("rows")}
	}

	payload, err := h.service.ExportCSV(rows)
	if err != nil {
		return err
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, "attachment; filename="+service.CSVFilename)
	return c.Send(payload)
}
