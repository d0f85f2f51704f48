package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

type Direction string

const (
	DirectionForward Direction = "forward"
	DirectionReverse Direction = "reverse"
	// DirectionRandom is a build policy only: each question is assigned
	// forward or reverse individually, never random itself.
	DirectionRandom Direction = "random"
)

type SessionStatus string

const (
	StatusInProgress SessionStatus = "in_progress"
	StatusCompleted  SessionStatus = "completed"
	StatusAbandoned  SessionStatus = "abandoned"
)

// Question pairs an entry with the direction it is asked in. The direction
// is fixed at build time and survives requeueing.
type Question struct {
	EntryID   int64     `json:"entry_id"`
	Direction Direction `json:"direction"`
}

// SessionState is the full resumable state of one quiz run. It is the
// unit the persistence layer snapshots, so every field must serialize.
type SessionState struct {
	ID             uuid.UUID     `json:"id"`
	ListIDs        []int64       `json:"list_ids"`
	ListNames      []string      `json:"list_names,omitempty"`
	SourceLanguage string        `json:"source_language"`
	TargetLanguage string        `json:"target_language"`
	Direction      Direction     `json:"direction"`
	Questions      []Question    `json:"questions"`
	Index          int           `json:"index"`
	Score          int           `json:"score"`
	Total          int           `json:"total"`
	Status         SessionStatus `json:"status"`
	StartedAt      time.Time     `json:"started_at"`
}

func (s *SessionState) IsComplete() bool {
	return s.Index >= len(s.Questions)
}

func (s *SessionState) Mixed() bool {
	return len(s.ListIDs) > 1
}

// ActiveQuestion is a live question ready for display.
type ActiveQuestion struct {
	Question Question
	Entry    Entry
	Prompt   string
	Expected string
	Progress string
}

type Evaluation struct {
	Accepted      bool
	Similarity    float64
	CorrectAnswer string
	Label         string
}

type QuizResults struct {
	Score int
	Total int
}

type QuizAnswer struct {
	ID            int64     `db:"id"`
	SessionID     uuid.UUID `db:"session_id"`
	EntryID       int64     `db:"entry_id"`
	UserAnswer    string    `db:"user_answer"`
	CorrectAnswer string    `db:"correct_answer"`
	IsCorrect     bool      `db:"is_correct"`
	Direction     Direction `db:"direction"`
	AnsweredAt    time.Time `db:"answered_at"`
}

type SessionSummary struct {
	ID              uuid.UUID     `db:"id"`
	QuizType        string        `db:"quiz_type"`
	Direction       Direction     `db:"direction"`
	TotalQuestions  int           `db:"total_questions"`
	CorrectAnswers  int           `db:"correct_answers"`
	Status          SessionStatus `db:"status"`
	StartedAt       time.Time     `db:"started_at"`
	CompletedAt     sql.NullTime  `db:"completed_at"`
	DurationSeconds sql.NullInt64 `db:"duration_seconds"`
	ListNames       string        `db:"list_names"`
}

// ScorePercentage reports the final score as 0-100.
func (s SessionSummary) ScorePercentage() float64 {
	if s.TotalQuestions == 0 {
		return 0
	}
	return float64(s.CorrectAnswers) / float64(s.TotalQuestions) * 100
}

// OverallStats aggregates every recorded answer across all sessions.
type OverallStats struct {
	TotalCount int `db:"total_count"`
	RightCount int `db:"right_count"`
	WrongCount int `db:"wrong_count"`
}

// Accuracy reports the share of correct answers as 0-100.
func (s OverallStats) Accuracy() float64 {
	if s.TotalCount == 0 {
		return 0
	}
	return float64(s.RightCount) / float64(s.TotalCount) * 100
}
