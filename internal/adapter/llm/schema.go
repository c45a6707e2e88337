package llm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// LoadResponseSchema reads the response schema template and returns it
// compacted for prompt injection. Compacting keeps the file's own key order.
func LoadResponseSchema(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read response schema: %w", err)
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, data); err != nil {
		return "", fmt.Errorf("response schema is not valid JSON: %w", err)
	}
	return buf.String(), nil
}
