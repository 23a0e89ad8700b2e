package game

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Evasive-6/TriviaSwift/internal/question"
)

type stubQuestionSource struct {
	questions []question.Question
	err       error
}

func (s *stubQuestionSource) Find(ctx context.Context, filter question.Filter) ([]question.Question, error) {
	return s.questions, s.err
}

type stubRecorder struct {
	mu      sync.Mutex
	results []Result
	err     error
}

func (r *stubRecorder) RecordResult(ctx context.Context, result Result) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.results = append(r.results, result)
	return nil
}

func (r *stubRecorder) recorded() []Result {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.results
}

func newTestService(t *testing.T, corpus []question.Question, recorder *stubRecorder) *Service {
	t.Helper()
	var scores ScoreRecorder
	if recorder != nil {
		scores = recorder
	}
	return NewService(
		NewStore(),
		&stubQuestionSource{questions: corpus},
		scores,
		nil,
		ServiceOptions{DefaultQuestionCount: 10},
		zerolog.Nop(),
	)
}

func twoQuestionCorpus() []question.Question {
	return []question.Question{
		{
			ID:            "q1",
			Text:          "first question",
			Options:       []string{"right", "wrong"},
			CorrectAnswer: "right",
			Category:      "Science",
			Difficulty:    "easy",
		},
		{
			ID:            "q2",
			Text:          "second question",
			Options:       []string{"yes", "no"},
			CorrectAnswer: "yes",
			Category:      "Science",
			Difficulty:    "easy",
		},
	}
}

func TestStartSessionRequiresPlayerName(t *testing.T) {
	svc := newTestService(t, twoQuestionCorpus(), nil)

	_, err := svc.StartSession(context.Background(), StartRequest{PlayerName: "   "})
	assert.ErrorIs(t, err, ErrPlayerNameRequired)
}

func TestStartSessionEmptyCorpus(t *testing.T) {
	svc := newTestService(t, nil, nil)

	_, err := svc.StartSession(context.Background(), StartRequest{PlayerName: "alice"})
	assert.ErrorIs(t, err, ErrNoQuestionsAvailable)
}

func TestStartSessionReturnsFirstQuestion(t *testing.T) {
	svc := newTestService(t, twoQuestionCorpus(), nil)

	resp, err := svc.StartSession(context.Background(), StartRequest{PlayerName: "alice", QuestionCount: 2})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.GameID)
	assert.Equal(t, 2, resp.TotalQuestions)
	assert.Equal(t, 0, resp.CurrentQuestionIndex)
	assert.NotEmpty(t, resp.Question.Text)
	assert.Len(t, resp.Question.Options, 2)

	session, err := svc.GetSession(resp.GameID)
	require.NoError(t, err)
	assert.Equal(t, StatusActive, session.Status)
	assert.Equal(t, "mixed", session.Difficulty)
	assert.Equal(t, "mixed", session.Category)
	assert.False(t, session.StartTime.IsZero())
}

func TestSubmitAnswerUnknownSession(t *testing.T) {
	svc := newTestService(t, twoQuestionCorpus(), nil)

	_, err := svc.SubmitAnswer(context.Background(), "nope", "right")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestFullGameFlow(t *testing.T) {
	recorder := &stubRecorder{}
	svc := newTestService(t, twoQuestionCorpus(), recorder)
	ctx := context.Background()

	resp, err := svc.StartSession(ctx, StartRequest{PlayerName: "alice", QuestionCount: 2})
	require.NoError(t, err)

	// Answer comparison is exact string equality, so we look the answer up
	// in the stored session.
	session, err := svc.GetSession(resp.GameID)
	require.NoError(t, err)

	first, err := svc.SubmitAnswer(ctx, resp.GameID, session.Questions[0].CorrectAnswer)
	require.NoError(t, err)
	assert.False(t, first.GameComplete)
	assert.True(t, first.WasCorrect)
	assert.Equal(t, 10, first.Score)
	assert.Equal(t, 1, first.CorrectAnswers)
	assert.Equal(t, 1, first.CurrentQuestionIndex)
	require.NotNil(t, first.NextQuestion)
	assert.Equal(t, session.Questions[1].ID, first.NextQuestion.ID)

	final, err := svc.SubmitAnswer(ctx, resp.GameID, "definitely wrong")
	require.NoError(t, err)
	assert.True(t, final.GameComplete)
	assert.False(t, final.WasCorrect)
	assert.Equal(t, 10, final.FinalScore)
	assert.Equal(t, 1, final.CorrectAnswers)
	assert.Equal(t, 2, final.TotalQuestions)
	assert.Equal(t, 50, final.Accuracy)

	completed, err := svc.GetSession(resp.GameID)
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, completed.Status)
	assert.False(t, completed.EndTime.IsZero())

	results := recorder.recorded()
	require.Len(t, results, 1)
	assert.Equal(t, "alice", results[0].PlayerName)
	assert.Equal(t, 10, results[0].Score)
	assert.Equal(t, 50, results[0].Accuracy)
	assert.Equal(t, 2, results[0].TotalQuestions)
}

func TestSubmitAnswerOnCompletedSession(t *testing.T) {
	svc := newTestService(t, twoQuestionCorpus()[:1], &stubRecorder{})
	ctx := context.Background()

	resp, err := svc.StartSession(ctx, StartRequest{PlayerName: "bob", QuestionCount: 1})
	require.NoError(t, err)

	result, err := svc.SubmitAnswer(ctx, resp.GameID, "whatever")
	require.NoError(t, err)
	require.True(t, result.GameComplete)

	_, err = svc.SubmitAnswer(ctx, resp.GameID, "again")
	assert.ErrorIs(t, err, ErrSessionNotActive)
}

func TestCaseSensitiveAnswerIsWrong(t *testing.T) {
	svc := newTestService(t, twoQuestionCorpus(), nil)
	ctx := context.Background()

	resp, err := svc.StartSession(ctx, StartRequest{PlayerName: "carol", QuestionCount: 2})
	require.NoError(t, err)

	session, err := svc.GetSession(resp.GameID)
	require.NoError(t, err)

	wrongCase := strings.ToUpper(session.Questions[0].CorrectAnswer)
	result, err := svc.SubmitAnswer(ctx, resp.GameID, wrongCase)
	require.NoError(t, err)
	assert.False(t, result.WasCorrect)
	assert.Equal(t, 0, result.Score)
}

func TestEndSessionDeletes(t *testing.T) {
	svc := newTestService(t, twoQuestionCorpus(), nil)
	ctx := context.Background()

	resp, err := svc.StartSession(ctx, StartRequest{PlayerName: "dave"})
	require.NoError(t, err)

	require.NoError(t, svc.EndSession(resp.GameID))
	_, err = svc.GetSession(resp.GameID)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	assert.ErrorIs(t, svc.EndSession(resp.GameID), ErrSessionNotFound)
}

func TestAccuracy(t *testing.T) {
	assert.Equal(t, 0, Accuracy(0, 0))
	assert.Equal(t, 0, Accuracy(0, 10))
	assert.Equal(t, 100, Accuracy(10, 10))
	assert.Equal(t, 50, Accuracy(1, 2))
	assert.Equal(t, 33, Accuracy(1, 3))
	assert.Equal(t, 67, Accuracy(2, 3))
}
