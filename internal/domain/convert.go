package domain

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// ParseGeneratedQuiz parses the generation stage's JSON output into table
// rows. The input is an object mapping entry keys to
// {"mcq": ..., "options": {...}, "correct": ...} objects. Row order follows
// the order entries appear in the text. encoding/json maps do not keep that
// order, so the parse walks tokens instead of unmarshaling into a map.
// Duplicate keys collapse to one row holding the last value at the first
// occurrence's position, as a decode into a map would.
//
// Any structural surprise aborts the whole parse: a malformed quiz yields no
// rows at all.
func ParseGeneratedQuiz(quizText string) ([]QuizRow, error) {
	dec := json.NewDecoder(strings.NewReader(quizText))

	tok, err := dec.Token()
	if err != nil {
		return nil, NewMalformedQuizError(err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, NewMalformedQuizError(fmt.Errorf("expected quiz object, got %v", tok))
	}

	var rows []QuizRow
	rowIndex := make(map[string]int)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, NewMalformedQuizError(err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, NewMalformedQuizError(fmt.Errorf("unexpected token %v as quiz entry key", keyTok))
		}
		row, err := parseQuizEntry(dec)
		if err != nil {
			return nil, NewMalformedQuizError(err)
		}
		if i, seen := rowIndex[key]; seen {
			rows[i] = *row
			continue
		}
		rowIndex[key] = len(rows)
		rows = append(rows, *row)
	}
	if _, err := dec.Token(); err != nil { // closing brace
		return nil, NewMalformedQuizError(err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, NewMalformedQuizError(fmt.Errorf("unexpected data after quiz object"))
	}

	return rows, nil
}

func parseQuizEntry(dec *json.Decoder) (*QuizRow, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("quiz entry is not an object")
	}

	var row QuizRow
	var haveMCQ, haveOptions, haveCorrect bool
	var choices []string

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected token %v in quiz entry", keyTok)
		}

		switch key {
		case "mcq":
			if row.MCQ, err = decodeString(dec, "mcq"); err != nil {
				return nil, err
			}
			haveMCQ = true
		case "options":
			if choices, err = parseOptions(dec); err != nil {
				return nil, err
			}
			haveOptions = true
		case "correct":
			if row.Correct, err = decodeString(dec, "correct"); err != nil {
				return nil, err
			}
			haveCorrect = true
		default:
			// Unknown fields are skipped
			var skip json.RawMessage
			if err := dec.Decode(&skip); err != nil {
				return nil, err
			}
		}
	}
	if _, err := dec.Token(); err != nil { // closing brace
		return nil, err
	}

	if !haveMCQ || !haveOptions || !haveCorrect {
		return nil, fmt.Errorf("quiz entry is missing mcq, options or correct")
	}

	row.Choices = strings.Join(choices, " || ")
	return &row, nil
}

// parseOptions reads the options object and formats each entry as
// "label-> text", preserving the order the labels appear in. A repeated
// label replaces its earlier text in place.
func parseOptions(dec *json.Decoder) ([]string, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("options is not an object")
	}

	var choices []string
	choiceIndex := make(map[string]int)
	for dec.More() {
		labelTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		label, ok := labelTok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected token %v in options", labelTok)
		}
		text, err := decodeString(dec, "option "+label)
		if err != nil {
			return nil, err
		}
		choice := fmt.Sprintf("%s-> %s", label, text)
		if i, seen := choiceIndex[label]; seen {
			choices[i] = choice
			continue
		}
		choiceIndex[label] = len(choices)
		choices = append(choices, choice)
	}
	if _, err := dec.Token(); err != nil { // closing brace
		return nil, err
	}

	return choices, nil
}

func decodeString(dec *json.Decoder, field string) (string, error) {
	tok, err := dec.Token()
	if err != nil {
		return "", err
	}
	s, ok := tok.(string)
	if !ok {
		return "", fmt.Errorf("%s is not a string", field)
	}
	return s, nil
}
