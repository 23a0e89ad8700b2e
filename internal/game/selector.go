package game

import (
	"strings"

	"github.com/Evasive-6/TriviaSwift/internal/question"
)

// SelectQuestions builds the ordered question list for a session from the
// available corpus. Filters are relaxed in tiers until enough questions
// match: exact difficulty+category first, then difficulty only, then the
// whole corpus. A tier is only adopted when it is strictly larger than the
// current candidate set. The result is shuffled and truncated to count;
// returning fewer than count questions is not an error.
func SelectQuestions(available []question.Question, count int, difficulty, category string) ([]question.Question, error) {
	if len(available) == 0 {
		return nil, ErrNoQuestionsAvailable
	}

	wantDifficulty := normalizeFilter(difficulty)
	wantCategory := ""
	if category != "" && !strings.EqualFold(category, "mixed") {
		wantCategory = category
	}

	matched := filterQuestions(available, wantDifficulty, wantCategory)

	if len(matched) < count && wantCategory != "" {
		relaxed := filterQuestions(available, wantDifficulty, "")
		if len(relaxed) > len(matched) {
			matched = relaxed
		}
	}

	if len(matched) < count && len(available) > len(matched) {
		matched = available
	}

	if len(matched) == 0 {
		return nil, ErrNoMatchingQuestions
	}

	shuffled := Shuffle(matched)
	if count < len(shuffled) {
		shuffled = shuffled[:count]
	}
	return shuffled, nil
}

func filterQuestions(available []question.Question, difficulty, category string) []question.Question {
	var matched []question.Question
	for _, q := range available {
		if difficulty != "" && q.Difficulty != difficulty {
			continue
		}
		if category != "" && q.Category != category {
			continue
		}
		matched = append(matched, q)
	}
	return matched
}

// normalizeFilter lowercases a difficulty filter and maps "mixed" (or empty)
// to no constraint.
func normalizeFilter(value string) string {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == question.DifficultyMixed {
		return ""
	}
	return v
}
