package middleware_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"mcqgen/internal/domain"
	"mcqgen/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func multipartForm(t *testing.T, fields map[string]string, fileName string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for name, value := range fields {
		require.NoError(t, w.WriteField(name, value))
	}
	if fileName != "" {
		part, err := w.CreateFormFile("file", fileName)
		require.NoError(t, err)
		_, err = part.Write([]byte("some source text"))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return body, w.FormDataContentType()
}

func TestValidateGenerateQuizParams_StoresValidatedValues(t *testing.T) {
	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler(),
	})

	var gotCount interface{}
	var gotSubject interface{}
	var gotTone interface{}
	vm := middleware.NewValidationMiddleware()
	app.Post("/quizzes", vm.ValidateGenerateQuizParams(), func(c *fiber.Ctx) error {
		gotCount = c.Locals("validated_count")
		gotSubject = c.Locals("validated_subject")
		gotTone = c.Locals("validated_tone")
		return c.SendStatus(fiber.StatusOK)
	})

	body, contentType := multipartForm(t, map[string]string{
		"count":   "7",
		"subject": "machine learning",
		"tone":    "formal",
	}, "notes.txt")
	req := httptest.NewRequest(fiber.MethodPost, "/quizzes", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, 7, gotCount)
	assert.Equal(t, "machine learning", gotSubject)
	assert.Equal(t, "formal", gotTone)
}

func TestValidateGenerateQuizParams_RejectsBadFields(t *testing.T) {
	tests := []struct {
		name      string
		fields    map[string]string
		fileName  string
		wantField string
	}{
		{
			name:      "count not a number",
			fields:    map[string]string{"count": "abc", "subject": "biology", "tone": "simple"},
			fileName:  "notes.txt",
			wantField: "count",
		},
		{
			name:      "count out of range",
			fields:    map[string]string{"count": "100", "subject": "biology", "tone": "simple"},
			fileName:  "notes.txt",
			wantField: "count",
		},
		{
			name:      "missing subject",
			fields:    map[string]string{"count": "5", "tone": "simple"},
			fileName:  "notes.txt",
			wantField: "subject",
		},
		{
			name:      "missing tone",
			fields:    map[string]string{"count": "5", "subject": "biology"},
			fileName:  "notes.txt",
			wantField: "tone",
		},
		{
			name:      "missing file",
			fields:    map[string]string{"count": "5", "subject": "biology", "tone": "simple"},
			wantField: "file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New(fiber.Config{
				ErrorHandler: middleware.ErrorHandler(),
			})

			handlerCalled := false
			vm := middleware.NewValidationMiddleware()
			app.Post("/quizzes", vm.ValidateGenerateQuizParams(), func(c *fiber.Ctx) error {
				handlerCalled = true
				return c.SendStatus(fiber.StatusOK)
			})

			body, contentType := multipartForm(t, tt.fields, tt.fileName)
			req := httptest.NewRequest(fiber.MethodPost, "/quizzes", body)
			req.Header.Set("Content-Type", contentType)

			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
			assert.False(t, handlerCalled)

			var errResp middleware.ValidationErrorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
			assert.Equal(t, string(domain.CodeValidation), errResp.Code)
			require.Len(t, errResp.Errors, 1)
			assert.Equal(t, tt.wantField, errResp.Errors[0].Field)
		})
	}
}

func TestValidateGenerateQuizParams_AccumulatesAllFields(t *testing.T) {
	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler(),
	})

	vm := middleware.NewValidationMiddleware()
	app.Post("/quizzes", vm.ValidateGenerateQuizParams(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	body, contentType := multipartForm(t, map[string]string{}, "")
	req := httptest.NewRequest(fiber.MethodPost, "/quizzes", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var errResp middleware.ValidationErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
	require.Len(t, errResp.Errors, 4)
	fields := make([]string, 0, len(errResp.Errors))
	for _, e := range errResp.Errors {
		fields = append(fields, e.Field)
	}
	assert.ElementsMatch(t, []string{"count", "subject", "tone", "file"}, fields)
}
