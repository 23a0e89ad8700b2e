package filestore

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Evasive-6/TriviaSwift/internal/score"
)

// ScoreStore keeps submitted results in scores.json under the data
// directory.
type ScoreStore struct {
	mu     sync.RWMutex
	path   string
	scores []score.Score
}

var _ score.Repository = (*ScoreStore)(nil)

// NewScoreStore loads existing results from dataDir/scores.json. A missing
// file is treated as an empty history.
func NewScoreStore(dataDir string) (*ScoreStore, error) {
	s := &ScoreStore{path: filepath.Join(dataDir, "scores.json")}
	if err := loadJSON(s.path, &s.scores); err != nil {
		return nil, fmt.Errorf("load scores: %w", err)
	}
	return s, nil
}

func (s *ScoreStore) Save(ctx context.Context, entry score.Score) (score.Score, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry.ID = uuid.NewString()
	entry.CreatedAt = time.Now().UTC()
	updated := append(copyScores(s.scores), entry)

	if err := writeJSON(s.path, updated); err != nil {
		return score.Score{}, fmt.Errorf("persist scores: %w", err)
	}
	s.scores = updated
	return entry, nil
}

func (s *ScoreStore) List(ctx context.Context) ([]score.Score, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	listed := copyScores(s.scores)
	sort.SliceStable(listed, func(i, j int) bool {
		if listed[i].Score != listed[j].Score {
			return listed[i].Score > listed[j].Score
		}
		return listed[i].CreatedAt.After(listed[j].CreatedAt)
	})
	return listed, nil
}

func (s *ScoreStore) Top(ctx context.Context, limit int) ([]score.Score, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	top := copyScores(s.scores)
	sort.SliceStable(top, func(i, j int) bool {
		if top[i].Score != top[j].Score {
			return top[i].Score > top[j].Score
		}
		return top[i].TimeTaken < top[j].TimeTaken
	})
	if limit < len(top) {
		top = top[:limit]
	}
	return top, nil
}

func (s *ScoreStore) ByPlayer(ctx context.Context, playerName string) ([]score.Score, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	needle := strings.ToLower(playerName)
	var matched []score.Score
	for _, entry := range s.scores {
		if strings.Contains(strings.ToLower(entry.PlayerName), needle) {
			matched = append(matched, entry)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	return matched, nil
}

func (s *ScoreStore) CountGreaterThan(ctx context.Context, points int) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, entry := range s.scores {
		if entry.Score > points {
			count++
		}
	}
	return count, nil
}

func (s *ScoreStore) Stats(ctx context.Context) (score.Stats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := score.Stats{TotalGames: len(s.scores)}
	if stats.TotalGames == 0 {
		return stats, nil
	}

	players := make(map[string]struct{})
	total := 0
	for _, entry := range s.scores {
		players[entry.PlayerName] = struct{}{}
		total += entry.Score
		if entry.Score > stats.HighestScore {
			stats.HighestScore = entry.Score
		}
	}
	stats.TotalPlayers = len(players)
	stats.AverageScore = (total + stats.TotalGames/2) / stats.TotalGames
	return stats, nil
}

func copyScores(scores []score.Score) []score.Score {
	copied := make([]score.Score, len(scores))
	copy(copied, scores)
	return copied
}
