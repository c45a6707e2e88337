package middleware

import (
	"mcqgen/internal/domain"
	"mcqgen/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// ValidationMiddleware provides request validation middleware
type ValidationMiddleware struct {
	validator *validation.Validator
}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware() *ValidationMiddleware {
	return &ValidationMiddleware{
		validator: validation.NewValidator(),
	}
}

// ValidateGenerateQuizParams validates the multipart form fields of the
// generate endpoint before the handler runs.
func (vm *ValidationMiddleware) ValidateGenerateQuizParams() fiber.Handler {
	return func(c *fiber.Ctx) error {
		subject := c.FormValue("subject")
		tone := c.FormValue("tone")

		count, errors := vm.validator.ValidateGenerateQuizRequest(c.FormValue("count"), subject, tone)
		if _, err := c.FormFile("file"); err != nil {
			errors = append(errors, domain.NewMissingFieldError("file"))
		}
		if len(errors) > 0 {
			return errors // This will be handled by ErrorHandler middleware
		}

		// Store validated values in context for handlers to use
		c.Locals("validated_count", count)
		c.Locals("validated_subject", subject)
		c.Locals("validated_tone", tone)
		return c.Next()
	}
}
