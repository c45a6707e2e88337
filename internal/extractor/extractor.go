package extractor

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"mcqgen/internal/domain"

	"github.com/ledongthuc/pdf"
)

// Extractor turns uploaded documents into plain text. It implements
// domain.TextExtractor.
type Extractor struct{}

// NewExtractor creates a new Extractor
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract dispatches on the filename extension, case-insensitively. Only
// .txt and .pdf are supported; anything else fails before the content is
// touched.
func (e *Extractor) Extract(filename string, data []byte) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return e.extractPDF(filename, data)
	case ".txt":
		return e.extractTxt(filename, data)
	default:
		return "", domain.NewUnsupportedFormatError(filename)
	}
}

// extractTxt returns the bytes as text, verbatim
func (e *Extractor) extractTxt(filename string, data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", domain.NewExtractionError(filename, fmt.Errorf("file is not valid UTF-8"))
	}
	return string(data), nil
}

// extractPDF concatenates the plain text of every page, in page order, with
// no separator between pages. Any page failure discards the partial text.
func (e *Extractor) extractPDF(filename string, data []byte) (text string, err error) {
	// The pdf library panics on some malformed inputs
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = domain.NewExtractionError(filename, fmt.Errorf("pdf parse: %v", r))
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", domain.NewExtractionError(filename, err)
	}

	var sb strings.Builder
	totalPages := reader.NumPage()
	for i := 1; i <= totalPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			return "", domain.NewExtractionError(filename, fmt.Errorf("page %d: %w", i, err))
		}
		sb.WriteString(pageText)
	}

	return sb.String(), nil
}

var _ domain.TextExtractor = (*Extractor)(nil)
