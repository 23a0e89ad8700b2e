package score

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("score not found")

// Score is a persisted game result.
type Score struct {
	ID             string    `json:"id"`
	PlayerName     string    `json:"playerName"`
	Score          int       `json:"score"`
	TotalQuestions int       `json:"totalQuestions"`
	CorrectAnswers int       `json:"correctAnswers"`
	Accuracy       int       `json:"accuracy"`
	TimeTaken      int       `json:"timeTaken"`
	Difficulty     string    `json:"difficulty"`
	Categories     []string  `json:"categories"`
	CreatedAt      time.Time `json:"timestamp"`
}

// Submission is a score submitted for persistence, before validation and
// accuracy recomputation.
type Submission struct {
	PlayerName     string   `json:"playerName"`
	Score          *int     `json:"score"`
	TotalQuestions *int     `json:"totalQuestions"`
	CorrectAnswers *int     `json:"correctAnswers"`
	TimeTaken      int      `json:"timeTaken"`
	Difficulty     string   `json:"difficulty"`
	Categories     []string `json:"categories"`
}

// Stats is the aggregate summary over all recorded scores.
type Stats struct {
	TotalGames   int `json:"totalGames"`
	TotalPlayers int `json:"totalPlayers"`
	AverageScore int `json:"averageScore"`
	HighestScore int `json:"highestScore"`
}

// ValidationError reports a rejected submission field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
