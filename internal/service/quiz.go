package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/nsmeele/magistra/internal/models"
	"github.com/nsmeele/magistra/internal/repository"
	"go.uber.org/zap"
)

type QuizListRI interface {
	ListByID(ctx context.Context, id int64) (models.List, error)
	EntriesByList(ctx context.Context, listID int64) ([]models.Entry, error)
}

type QuizEntryRI interface {
	EntryByID(ctx context.Context, id int64) (models.Entry, error)
	UpdateScore(ctx context.Context, id int64, correct bool) error
}

type SessionRI interface {
	SaveSession(ctx context.Context, state *models.SessionState) error
	UpdateSession(ctx context.Context, state *models.SessionState) error
	CompleteSession(ctx context.Context, id uuid.UUID, finalScore int) error
	AbandonSession(ctx context.Context, id uuid.UUID) error
	LoadSession(ctx context.Context, id uuid.UUID) (*models.SessionState, error)
	AddAnswer(ctx context.Context, answer models.QuizAnswer) error
	SessionAnswers(ctx context.Context, id uuid.UUID) ([]models.QuizAnswer, error)
	History(ctx context.Context, limit int) ([]models.SessionSummary, error)
	IncompleteSessions(ctx context.Context) ([]models.SessionSummary, error)
	OverallStats(ctx context.Context) (models.OverallStats, error)
}

type QuizS struct {
	lists    QuizListRI
	entries  QuizEntryRI
	sessions SessionRI
	eval     *Evaluator
	log      *zap.Logger
}

func NewQuizService(lists QuizListRI, entries QuizEntryRI, sessions SessionRI, eval *Evaluator, log *zap.Logger) *QuizS {
	return &QuizS{
		lists:    lists,
		entries:  entries,
		sessions: sessions,
		eval:     eval,
		log:      log,
	}
}

// Start builds a new session and persists the initial snapshot.
func (q *QuizS) Start(ctx context.Context, listIDs []int64, direction models.Direction) (*models.SessionState, error) {
	state, err := q.Build(ctx, listIDs, direction)
	if err != nil {
		return nil, err
	}

	if err := q.sessions.SaveSession(ctx, state); err != nil {
		return nil, err
	}

	return state, nil
}

// SubmitAnswer evaluates the user's text for one question, bumps the
// entry's permanent counters, records the answer, advances the session
// and refreshes the stored snapshot. Bookkeeping failures are logged and
// swallowed: the in-memory state stays authoritative.
func (q *QuizS) SubmitAnswer(ctx context.Context, state *models.SessionState, question models.Question, userAnswer string) (models.Evaluation, error) {
	if !validSession(state) {
		return models.Evaluation{}, ErrInvalidSession
	}

	entry, err := q.entries.EntryByID(ctx, question.EntryID)
	if err != nil {
		return models.Evaluation{}, err
	}

	_, expected := promptAndExpected(entry, question.Direction)
	eval := q.eval.Evaluate(expected, userAnswer)

	if err := q.entries.UpdateScore(ctx, entry.ID, eval.Accepted); err != nil {
		q.log.Warn("failed to update entry score",
			zap.Int64("entry_id", entry.ID), zap.Error(err))
	}

	answer := models.QuizAnswer{
		SessionID:     state.ID,
		EntryID:       entry.ID,
		UserAnswer:    userAnswer,
		CorrectAnswer: expected,
		IsCorrect:     eval.Accepted,
		Direction:     question.Direction,
	}
	if err := q.sessions.AddAnswer(ctx, answer); err != nil {
		q.log.Warn("failed to record quiz answer",
			zap.String("session_id", state.ID.String()), zap.Error(err))
	}

	if err := q.Advance(state, eval.Accepted); err != nil {
		return models.Evaluation{}, err
	}

	if err := q.sessions.UpdateSession(ctx, state); err != nil {
		q.log.Warn("failed to update session snapshot",
			zap.String("session_id", state.ID.String()), zap.Error(err))
	}

	if state.IsComplete() {
		state.Status = models.StatusCompleted
		if err := q.sessions.CompleteSession(ctx, state.ID, state.Score); err != nil {
			q.log.Warn("failed to mark session completed",
				zap.String("session_id", state.ID.String()), zap.Error(err))
		}
	}

	return eval, nil
}

// Resume rehydrates a stored session so play continues from the exact
// saved queue and position.
func (q *QuizS) Resume(ctx context.Context, id uuid.UUID) (*models.SessionState, error) {
	state, err := q.sessions.LoadSession(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidSession
		}
		return nil, err
	}

	if state.Status != models.StatusInProgress || len(state.Questions) == 0 {
		return nil, ErrSessionNotResumable
	}

	return state, nil
}

// Abandon marks a session abandoned. The entry statistics collected so
// far stay as they are.
func (q *QuizS) Abandon(ctx context.Context, state *models.SessionState) error {
	if !validSession(state) {
		return ErrInvalidSession
	}

	state.Status = models.StatusAbandoned
	if err := q.sessions.UpdateSession(ctx, state); err != nil {
		q.log.Warn("failed to update session snapshot",
			zap.String("session_id", state.ID.String()), zap.Error(err))
	}

	return q.sessions.AbandonSession(ctx, state.ID)
}

func (q *QuizS) History(ctx context.Context, limit int) ([]models.SessionSummary, error) {
	return q.sessions.History(ctx, limit)
}

func (q *QuizS) IncompleteSessions(ctx context.Context) ([]models.SessionSummary, error) {
	return q.sessions.IncompleteSessions(ctx)
}

func (q *QuizS) SessionAnswers(ctx context.Context, id uuid.UUID) ([]models.QuizAnswer, error) {
	return q.sessions.SessionAnswers(ctx, id)
}

func (q *QuizS) OverallStats(ctx context.Context) (models.OverallStats, error) {
	return q.sessions.OverallStats(ctx)
}
