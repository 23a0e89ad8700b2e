package game

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Evasive-6/TriviaSwift/internal/question"
)

func corpusQuestion(id, difficulty, category string) question.Question {
	return question.Question{
		ID:            id,
		Text:          "question " + id,
		Options:       []string{"a", "b"},
		CorrectAnswer: "a",
		Category:      category,
		Difficulty:    difficulty,
	}
}

func buildCorpus(counts map[string]int) []question.Question {
	var corpus []question.Question
	for key, n := range counts {
		difficulty, category, _ := strings.Cut(key, " ")
		for j := 0; j < n; j++ {
			corpus = append(corpus, corpusQuestion(fmt.Sprintf("%s-%s-%d", difficulty, category, j), difficulty, category))
		}
	}
	return corpus
}

func TestSelectQuestionsEmptyCorpus(t *testing.T) {
	_, err := SelectQuestions(nil, 5, "easy", "Science")
	assert.ErrorIs(t, err, ErrNoQuestionsAvailable)
}

func TestSelectQuestionsExactMatch(t *testing.T) {
	corpus := buildCorpus(map[string]int{
		"easy Science":   5,
		"hard Geography": 5,
	})

	selected, err := SelectQuestions(corpus, 3, "easy", "Science")
	require.NoError(t, err)

	assert.Len(t, selected, 3)
	for _, q := range selected {
		assert.Equal(t, "easy", q.Difficulty)
		assert.Equal(t, "Science", q.Category)
	}
}

func TestSelectQuestionsRelaxesCategoryOnShortfall(t *testing.T) {
	corpus := buildCorpus(map[string]int{
		"easy Science":   2,
		"easy Geography": 4,
		"hard History":   3,
	})

	selected, err := SelectQuestions(corpus, 5, "easy", "Science")
	require.NoError(t, err)

	// Category is dropped but difficulty still holds.
	assert.Len(t, selected, 5)
	for _, q := range selected {
		assert.Equal(t, "easy", q.Difficulty)
	}
}

func TestSelectQuestionsRelaxesToWholeCorpus(t *testing.T) {
	corpus := buildCorpus(map[string]int{
		"easy Science": 2,
		"hard History": 4,
	})

	selected, err := SelectQuestions(corpus, 6, "easy", "Science")
	require.NoError(t, err)
	assert.Len(t, selected, 6)
}

func TestSelectQuestionsShortfallIsNotAnError(t *testing.T) {
	corpus := buildCorpus(map[string]int{"medium Art": 3})

	selected, err := SelectQuestions(corpus, 10, "", "")
	require.NoError(t, err)
	assert.Len(t, selected, 3)
}

func TestSelectQuestionsMixedMatchesEverything(t *testing.T) {
	corpus := buildCorpus(map[string]int{
		"easy Science": 2,
		"hard History": 2,
	})

	selected, err := SelectQuestions(corpus, 4, "Mixed", "mixed")
	require.NoError(t, err)
	assert.Len(t, selected, 4)
}

func TestSelectQuestionsDifficultyCaseInsensitive(t *testing.T) {
	corpus := buildCorpus(map[string]int{
		"easy Science": 3,
		"hard Science": 3,
	})

	selected, err := SelectQuestions(corpus, 3, "EASY", "Science")
	require.NoError(t, err)
	for _, q := range selected {
		assert.Equal(t, "easy", q.Difficulty)
	}
}

func TestSelectQuestionsKeepsSmallerExactTier(t *testing.T) {
	// The exact tier already satisfies count; relaxation must not kick in.
	corpus := buildCorpus(map[string]int{
		"easy Science": 4,
		"easy Sports":  4,
	})

	selected, err := SelectQuestions(corpus, 4, "easy", "Science")
	require.NoError(t, err)
	for _, q := range selected {
		assert.Equal(t, "Science", q.Category)
	}
}
