package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics groups the gameplay counters exported on /metrics.
type Metrics struct {
	GamesStarted   prometheus.Counter
	GamesCompleted prometheus.Counter
	Answers        *prometheus.CounterVec
}

// New registers gameplay counters with the given registerer. Tests pass a
// fresh prometheus.NewRegistry to avoid duplicate registration.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		GamesStarted: factory.NewCounter(prometheus.CounterOpts{
			Name: "triviaswift_games_started_total",
			Help: "Number of game sessions created.",
		}),
		GamesCompleted: factory.NewCounter(prometheus.CounterOpts{
			Name: "triviaswift_games_completed_total",
			Help: "Number of game sessions answered through to completion.",
		}),
		Answers: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "triviaswift_answers_total",
			Help: "Number of submitted answers, labeled by result.",
		}, []string{"result"}),
	}
}

// RecordAnswer increments the answer counter with a correct/incorrect label.
func (m *Metrics) RecordAnswer(correct bool) {
	if m == nil {
		return
	}
	result := "incorrect"
	if correct {
		result = "correct"
	}
	m.Answers.WithLabelValues(result).Inc()
}
