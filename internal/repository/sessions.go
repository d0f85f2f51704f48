package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/nsmeele/magistra/internal/models"
)

type SessionsR struct {
	db QueryI
}

func NewSessionsRepository(db QueryI) *SessionsR {
	return &SessionsR{db: db}
}

func quizType(state *models.SessionState) string {
	if state.Mixed() {
		return "mixed"
	}
	return "single"
}

// SaveSession persists a freshly built session: the full snapshot plus one
// link row per source list.
func (s *SessionsR) SaveSession(ctx context.Context, state *models.SessionState) error {
	snapshot, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode session %s: %w", state.ID, err)
	}

	query := `
		INSERT INTO quiz_sessions
			(id, quiz_type, direction, total_questions, correct_answers,
			current_index, status, started_at, quiz_data)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err = s.db.ExecContext(ctx, query,
		state.ID, quizType(state), state.Direction, state.Total, state.Score,
		state.Index, state.Status, state.StartedAt, snapshot)
	if err != nil {
		return fmt.Errorf("failed to save session %s: %w", state.ID, err)
	}

	linkQuery := `INSERT INTO quiz_session_lists (session_id, list_id) VALUES ($1, $2)`
	for _, listID := range state.ListIDs {
		if _, err := s.db.ExecContext(ctx, linkQuery, state.ID, listID); err != nil {
			// Roll the session row back so a half-saved session never shows
			// up as resumable. Link rows already inserted cascade with it.
			if _, delErr := s.db.ExecContext(ctx, `DELETE FROM quiz_sessions WHERE id = $1`, state.ID); delErr != nil {
				return fmt.Errorf("failed to link session %s to list %d (cleanup also failed: %v): %w",
					state.ID, listID, delErr, err)
			}
			return fmt.Errorf("failed to link session %s to list %d: %w", state.ID, listID, err)
		}
	}

	return nil
}

// UpdateSession overwrites the stored snapshot and progress columns. Called
// after every answer so the session stays resumable from any point.
func (s *SessionsR) UpdateSession(ctx context.Context, state *models.SessionState) error {
	snapshot, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode session %s: %w", state.ID, err)
	}

	query := `
		UPDATE quiz_sessions
		SET current_index = $1, correct_answers = $2, quiz_data = $3
		WHERE id = $4
	`

	res, err := s.db.ExecContext(ctx, query, state.Index, state.Score, snapshot, state.ID)
	if err != nil {
		return fmt.Errorf("failed to update session %s: %w", state.ID, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *SessionsR) CompleteSession(ctx context.Context, id uuid.UUID, finalScore int) error {
	query := `
		UPDATE quiz_sessions
		SET status = $1, correct_answers = $2, completed_at = NOW(),
			duration_seconds = EXTRACT(EPOCH FROM (NOW() - started_at))::int
		WHERE id = $3
	`

	res, err := s.db.ExecContext(ctx, query, models.StatusCompleted, finalScore, id)
	if err != nil {
		return fmt.Errorf("failed to complete session %s: %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *SessionsR) AbandonSession(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE quiz_sessions
		SET status = $1, completed_at = NOW(),
			duration_seconds = EXTRACT(EPOCH FROM (NOW() - started_at))::int
		WHERE id = $2 AND status = $3
	`

	res, err := s.db.ExecContext(ctx, query, models.StatusAbandoned, id, models.StatusInProgress)
	if err != nil {
		return fmt.Errorf("failed to abandon session %s: %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

type sessionRow struct {
	Status   models.SessionStatus `db:"status"`
	QuizData []byte               `db:"quiz_data"`
}

// LoadSession returns the exact last-saved snapshot, including any requeued
// questions, so play continues where it left off.
func (s *SessionsR) LoadSession(ctx context.Context, id uuid.UUID) (*models.SessionState, error) {
	query := `SELECT status, quiz_data FROM quiz_sessions WHERE id = $1`

	var row sessionRow
	if err := s.db.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load session %s: %w", id, err)
	}

	var state models.SessionState
	if err := json.Unmarshal(row.QuizData, &state); err != nil {
		return nil, fmt.Errorf("failed to decode session %s: %w", id, err)
	}
	state.Status = row.Status

	return &state, nil
}

func (s *SessionsR) AddAnswer(ctx context.Context, answer models.QuizAnswer) error {
	query := `
		INSERT INTO quiz_answers
			(session_id, entry_id, user_answer, correct_answer, is_correct, direction)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := s.db.ExecContext(ctx, query,
		answer.SessionID, answer.EntryID, answer.UserAnswer,
		answer.CorrectAnswer, answer.IsCorrect, answer.Direction)
	if err != nil {
		return fmt.Errorf("failed to record answer for session %s: %w", answer.SessionID, err)
	}

	return nil
}

func (s *SessionsR) SessionAnswers(ctx context.Context, id uuid.UUID) ([]models.QuizAnswer, error) {
	query := `
		SELECT id, session_id, entry_id, user_answer, correct_answer,
			is_correct, direction, answered_at
		FROM quiz_answers
		WHERE session_id = $1
		ORDER BY answered_at
	`

	answers := make([]models.QuizAnswer, 0)
	if err := s.db.SelectContext(ctx, &answers, query, id); err != nil {
		return nil, fmt.Errorf("failed to load answers for session %s: %w", id, err)
	}

	return answers, nil
}

// OverallStats totals the recorded answers across every session.
func (s *SessionsR) OverallStats(ctx context.Context) (models.OverallStats, error) {
	query := `SELECT
		COUNT(*) AS total_count,
		COALESCE(SUM(CASE WHEN is_correct THEN 1 ELSE 0 END), 0) AS right_count
	FROM quiz_answers`

	var stats models.OverallStats
	if err := s.db.GetContext(ctx, &stats, query); err != nil {
		return models.OverallStats{}, fmt.Errorf("failed to load overall stats: %w", err)
	}

	stats.WrongCount = stats.TotalCount - stats.RightCount

	return stats, nil
}

const sessionSummaryColumns = `
	SELECT s.id, s.quiz_type, s.direction, s.total_questions, s.correct_answers,
		s.status, s.started_at, s.completed_at, s.duration_seconds,
		COALESCE(string_agg(l.name, ', ' ORDER BY l.name), '') AS list_names
	FROM quiz_sessions s
	LEFT JOIN quiz_session_lists sl ON sl.session_id = s.id
	LEFT JOIN lists l ON l.id = sl.list_id
`

// History lists finished sessions, newest first.
func (s *SessionsR) History(ctx context.Context, limit int) ([]models.SessionSummary, error) {
	query := sessionSummaryColumns + `
		WHERE s.status IN ($1, $2)
		GROUP BY s.id
		ORDER BY s.started_at DESC
		LIMIT $3
	`

	sessions := make([]models.SessionSummary, 0)
	err := s.db.SelectContext(ctx, &sessions, query, models.StatusCompleted, models.StatusAbandoned, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load quiz history: %w", err)
	}

	return sessions, nil
}

// IncompleteSessions lists sessions that can still be resumed.
func (s *SessionsR) IncompleteSessions(ctx context.Context) ([]models.SessionSummary, error) {
	query := sessionSummaryColumns + `
		WHERE s.status = $1
		GROUP BY s.id
		ORDER BY s.started_at DESC
	`

	sessions := make([]models.SessionSummary, 0)
	if err := s.db.SelectContext(ctx, &sessions, query, models.StatusInProgress); err != nil {
		return nil, fmt.Errorf("failed to load open sessions: %w", err)
	}

	return sessions, nil
}
