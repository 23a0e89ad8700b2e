package game

import (
	"errors"
	"math"
	"time"

	"github.com/Evasive-6/TriviaSwift/internal/question"
)

// Status is the lifecycle state of a game session. The only transition is
// active -> completed, exactly once, when the last question is answered.
type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
)

// Per-correct-answer reward. Matches the score arithmetic the scores API
// expects.
const pointsPerCorrect = 10

var (
	ErrSessionNotFound      = errors.New("game session not found")
	ErrSessionNotActive     = errors.New("game session is not active")
	ErrSessionExists        = errors.New("game session already exists")
	ErrPlayerNameRequired   = errors.New("playerName is required")
	ErrAnswerRequired       = errors.New("answer is required")
	ErrNoQuestionsAvailable = errors.New("no questions available to start game")
	ErrNoMatchingQuestions  = errors.New("no questions match the requested filters")
)

// Session is one player's run from start to completion. Sessions live only
// in process memory; the sole durable artifact is the score record handed to
// the score recorder at completion.
type Session struct {
	ID                   string              `json:"id"`
	PlayerName           string              `json:"playerName"`
	Questions            []question.Question `json:"questions"`
	CurrentQuestionIndex int                 `json:"currentQuestionIndex"`
	Score                int                 `json:"score"`
	CorrectAnswers       int                 `json:"correctAnswers"`
	Status               Status              `json:"status"`
	StartTime            time.Time           `json:"startTime"`
	EndTime              time.Time           `json:"endTime,omitzero"`
	TotalTime            int                 `json:"totalTime,omitempty"`
	Difficulty           string              `json:"difficulty"`
	Category             string              `json:"category"`
}

// PublicQuestion is a question with answer-revealing fields stripped, safe
// to send to the player.
type PublicQuestion struct {
	ID         string   `json:"id"`
	Text       string   `json:"question"`
	Options    []string `json:"options"`
	Category   string   `json:"category"`
	Difficulty string   `json:"difficulty"`
}

func publicQuestion(q question.Question) PublicQuestion {
	return PublicQuestion{
		ID:         q.ID,
		Text:       q.Text,
		Options:    q.Options,
		Category:   q.Category,
		Difficulty: q.Difficulty,
	}
}

// Accuracy converts raw answer counts into a whole percentage.
func Accuracy(correct, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(correct) / float64(total) * 100))
}
