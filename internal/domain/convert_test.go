package domain

import (
	"errors"
	"testing"
)

func TestParseGeneratedQuiz(t *testing.T) {
	quizText := `{
		"1": {"mcq": "What is the capital of France?", "options": {"a": "Paris", "b": "Lyon", "c": "Nice", "d": "Lille"}, "correct": "a"},
		"2": {"mcq": "Which planet is known as the Red Planet?", "options": {"a": "Venus", "b": "Mars", "c": "Jupiter", "d": "Saturn"}, "correct": "b"}
	}`

	rows, err := ParseGeneratedQuiz(quizText)
	if err != nil {
		t.Fatalf("ParseGeneratedQuiz() error = %v, want nil", err)
	}
	if len(rows) != 2 {
		t.Fatalf("ParseGeneratedQuiz() len(rows) = %d, want 2", len(rows))
	}

	if rows[0].MCQ != "What is the capital of France?" {
		t.Errorf("rows[0].MCQ = %q, want %q", rows[0].MCQ, "What is the capital of France?")
	}
	wantChoices := "a-> Paris || b-> Lyon || c-> Nice || d-> Lille"
	if rows[0].Choices != wantChoices {
		t.Errorf("rows[0].Choices = %q, want %q", rows[0].Choices, wantChoices)
	}
	if rows[0].Correct != "a" {
		t.Errorf("rows[0].Correct = %q, want %q", rows[0].Correct, "a")
	}
	if rows[1].Correct != "b" {
		t.Errorf("rows[1].Correct = %q, want %q", rows[1].Correct, "b")
	}
}

func TestParseGeneratedQuiz_PreservesEntryOrder(t *testing.T) {
	// Keys are deliberately neither numeric nor sorted.
	quizText := `{
		"10": {"mcq": "Q-ten", "options": {"a": "A"}, "correct": "a"},
		"2": {"mcq": "Q-two", "options": {"a": "A"}, "correct": "a"},
		"banana": {"mcq": "Q-banana", "options": {"a": "A"}, "correct": "a"}
	}`

	rows, err := ParseGeneratedQuiz(quizText)
	if err != nil {
		t.Fatalf("ParseGeneratedQuiz() error = %v, want nil", err)
	}
	want := []string{"Q-ten", "Q-two", "Q-banana"}
	if len(rows) != len(want) {
		t.Fatalf("ParseGeneratedQuiz() len(rows) = %d, want %d", len(rows), len(want))
	}
	for i, w := range want {
		if rows[i].MCQ != w {
			t.Errorf("rows[%d].MCQ = %q, want %q", i, rows[i].MCQ, w)
		}
	}
}

func TestParseGeneratedQuiz_DuplicateEntryKeys(t *testing.T) {
	// The second "1" must win but keep the first "1"'s position.
	quizText := `{
		"1": {"mcq": "First draft", "options": {"a": "A"}, "correct": "a"},
		"2": {"mcq": "Other question", "options": {"a": "A"}, "correct": "a"},
		"1": {"mcq": "Second draft", "options": {"a": "A"}, "correct": "a"}
	}`

	rows, err := ParseGeneratedQuiz(quizText)
	if err != nil {
		t.Fatalf("ParseGeneratedQuiz() error = %v, want nil", err)
	}
	if len(rows) != 2 {
		t.Fatalf("ParseGeneratedQuiz() len(rows) = %d, want 2", len(rows))
	}
	if rows[0].MCQ != "Second draft" {
		t.Errorf("rows[0].MCQ = %q, want %q", rows[0].MCQ, "Second draft")
	}
	if rows[1].MCQ != "Other question" {
		t.Errorf("rows[1].MCQ = %q, want %q", rows[1].MCQ, "Other question")
	}
}

func TestParseGeneratedQuiz_DuplicateOptionLabels(t *testing.T) {
	quizText := `{"1": {"mcq": "Q", "options": {"a": "old", "b": "B1", "a": "new"}, "correct": "a"}}`

	rows, err := ParseGeneratedQuiz(quizText)
	if err != nil {
		t.Fatalf("ParseGeneratedQuiz() error = %v, want nil", err)
	}
	if rows[0].Choices != "a-> new || b-> B1" {
		t.Errorf("rows[0].Choices = %q, want %q", rows[0].Choices, "a-> new || b-> B1")
	}
}

func TestParseGeneratedQuiz_PreservesOptionOrder(t *testing.T) {
	quizText := `{"1": {"mcq": "Q", "options": {"d": "D1", "a": "A1", "c": "C1"}, "correct": "d"}}`

	rows, err := ParseGeneratedQuiz(quizText)
	if err != nil {
		t.Fatalf("ParseGeneratedQuiz() error = %v, want nil", err)
	}
	if rows[0].Choices != "d-> D1 || a-> A1 || c-> C1" {
		t.Errorf("rows[0].Choices = %q, want %q", rows[0].Choices, "d-> D1 || a-> A1 || c-> C1")
	}
}

func TestParseGeneratedQuiz_EmptyObject(t *testing.T) {
	rows, err := ParseGeneratedQuiz("{}")
	if err != nil {
		t.Fatalf("ParseGeneratedQuiz() error = %v, want nil", err)
	}
	if len(rows) != 0 {
		t.Errorf("ParseGeneratedQuiz() len(rows) = %d, want 0", len(rows))
	}
}

func TestParseGeneratedQuiz_SkipsUnknownFields(t *testing.T) {
	quizText := `{"1": {"mcq": "Q", "difficulty": "easy", "options": {"a": "A"}, "correct": "a", "hint": {"nested": true}}}`

	rows, err := ParseGeneratedQuiz(quizText)
	if err != nil {
		t.Fatalf("ParseGeneratedQuiz() error = %v, want nil", err)
	}
	if len(rows) != 1 {
		t.Fatalf("ParseGeneratedQuiz() len(rows) = %d, want 1", len(rows))
	}
	if rows[0].Choices != "a-> A" {
		t.Errorf("rows[0].Choices = %q, want %q", rows[0].Choices, "a-> A")
	}
}

func TestParseGeneratedQuiz_Malformed(t *testing.T) {
	tests := []struct {
		name     string
		quizText string
	}{
		{"not json", "To be, or not to be"},
		{"top level array", `[{"mcq": "Q"}]`},
		{"top level string", `"quiz"`},
		{"entry not an object", `{"1": "not an object"}`},
		{"missing mcq", `{"1": {"options": {"a": "A"}, "correct": "a"}}`},
		{"missing options", `{"1": {"mcq": "Q", "correct": "a"}}`},
		{"missing correct", `{"1": {"mcq": "Q", "options": {"a": "A"}}}`},
		{"mcq not a string", `{"1": {"mcq": 42, "options": {"a": "A"}, "correct": "a"}}`},
		{"correct not a string", `{"1": {"mcq": "Q", "options": {"a": "A"}, "correct": true}}`},
		{"option not a string", `{"1": {"mcq": "Q", "options": {"a": 1}, "correct": "a"}}`},
		{"options not an object", `{"1": {"mcq": "Q", "options": ["A"], "correct": "a"}}`},
		{"options null", `{"1": {"mcq": "Q", "options": null, "correct": "a"}}`},
		{"trailing garbage", `{"1": {"mcq": "Q", "options": {"a": "A"}, "correct": "a"}} extra`},
		{"truncated", `{"1": {"mcq": "Q", "options": {"a": "A"},`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := ParseGeneratedQuiz(tt.quizText)
			if err == nil {
				t.Fatal("ParseGeneratedQuiz() error = nil, want malformed quiz error")
			}
			var domainErr *DomainError
			if !errors.As(err, &domainErr) {
				t.Fatalf("ParseGeneratedQuiz() error type = %T, want *DomainError", err)
			}
			if domainErr.Code != CodeMalformedQuiz {
				t.Errorf("ParseGeneratedQuiz() code = %s, want %s", domainErr.Code, CodeMalformedQuiz)
			}
			if rows != nil {
				t.Errorf("ParseGeneratedQuiz() rows = %v, want nil on malformed input", rows)
			}
		})
	}
}
