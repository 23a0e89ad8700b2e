package question

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"
)

// Difficulty levels stored on questions. "mixed" is only valid as a filter.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
	DifficultyMixed  = "mixed"
)

// Categories accepted for questions.
var Categories = []string{
	"Geography",
	"Science",
	"History",
	"Literature",
	"Art",
	"General Knowledge",
	"Entertainment",
	"Sports",
}

const (
	minOptions = 2
	maxOptions = 6
	minTextLen = 5
	maxTextLen = 500
)

var (
	ErrNotFound = errors.New("question not found")
)

// Question is a single trivia question. CorrectAnswer is always a member of
// Options; Validate enforces this before any write.
type Question struct {
	ID            string    `json:"id"`
	Text          string    `json:"question"`
	Options       []string  `json:"options"`
	CorrectAnswer string    `json:"correctAnswer"`
	Category      string    `json:"category"`
	Difficulty    string    `json:"difficulty"`
	Explanation   string    `json:"explanation,omitempty"`
	CreatedAt     time.Time `json:"createdAt,omitempty"`
	UpdatedAt     time.Time `json:"updatedAt,omitempty"`
}

// Filter narrows a corpus lookup. Empty fields (or "mixed") match everything.
type Filter struct {
	Category   string
	Difficulty string
}

// ValidationError reports a rejected question field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Validate checks the schema invariants of a question.
func (q *Question) Validate() error {
	q.Text = strings.TrimSpace(q.Text)
	q.Category = strings.TrimSpace(q.Category)
	q.Difficulty = strings.ToLower(strings.TrimSpace(q.Difficulty))

	if len(q.Text) < minTextLen || len(q.Text) > maxTextLen {
		return &ValidationError{Field: "question", Message: fmt.Sprintf("question must be between %d and %d characters", minTextLen, maxTextLen)}
	}
	if len(q.Options) < minOptions || len(q.Options) > maxOptions {
		return &ValidationError{Field: "options", Message: fmt.Sprintf("question must have between %d and %d options", minOptions, maxOptions)}
	}
	if !slices.Contains(q.Options, q.CorrectAnswer) {
		return &ValidationError{Field: "correctAnswer", Message: "correct answer must be one of the provided options"}
	}
	if !slices.Contains(Categories, q.Category) {
		return &ValidationError{Field: "category", Message: "category must be one of: " + strings.Join(Categories, ", ")}
	}
	switch q.Difficulty {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
	default:
		return &ValidationError{Field: "difficulty", Message: "difficulty must be: easy, medium, or hard"}
	}
	return nil
}

// Matches reports whether the question satisfies the filter. Difficulty is
// compared case-insensitively, category exactly, matching the write path.
func (q *Question) Matches(f Filter) bool {
	if d := strings.ToLower(f.Difficulty); d != "" && d != DifficultyMixed {
		if q.Difficulty != d {
			return false
		}
	}
	if f.Category != "" && !strings.EqualFold(f.Category, "mixed") {
		if q.Category != f.Category {
			return false
		}
	}
	return true
}
