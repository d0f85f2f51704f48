package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/nsmeele/magistra/internal/models"
	"github.com/nsmeele/magistra/internal/repository"
)

func validSession(state *models.SessionState) bool {
	return state != nil && state.ID != uuid.Nil
}

// CurrentQuestion returns the question at the current position, skipping
// questions whose entries were deleted mid-quiz. Skips advance the index
// without touching the score. A (nil, nil) return means the quiz is
// complete; ErrQueueExhausted means deletions wiped out everything that
// was still left to ask.
func (q *QuizS) CurrentQuestion(ctx context.Context, state *models.SessionState) (*models.ActiveQuestion, error) {
	if !validSession(state) {
		return nil, ErrInvalidSession
	}

	skipped := false
	for state.Index < len(state.Questions) {
		question := state.Questions[state.Index]

		entry, err := q.entries.EntryByID(ctx, question.EntryID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				state.Index++
				skipped = true
				continue
			}
			return nil, err
		}

		prompt, expected := promptAndExpected(entry, question.Direction)
		return &models.ActiveQuestion{
			Question: question,
			Entry:    entry,
			Prompt:   prompt,
			Expected: expected,
			Progress: fmt.Sprintf("%d/%d", state.Index+1, len(state.Questions)),
		}, nil
	}

	if skipped {
		return nil, ErrQueueExhausted
	}

	return nil, nil
}

// Advance moves past the current question. A miss requeues a copy of the
// question, same entry and direction, at the end of the queue, so it has
// to be answered again before the session can finish.
func (q *QuizS) Advance(state *models.SessionState, wasCorrect bool) error {
	if !validSession(state) {
		return ErrInvalidSession
	}
	if state.IsComplete() {
		return nil
	}

	if wasCorrect {
		state.Score++
	} else {
		state.Questions = append(state.Questions, state.Questions[state.Index])
	}
	state.Index++

	return nil
}

func (q *QuizS) IsComplete(state *models.SessionState) bool {
	return validSession(state) && state.IsComplete()
}

// Results reports the final score against the build-time question count.
// Requeued misses grow the queue but never the denominator.
func (q *QuizS) Results(state *models.SessionState) models.QuizResults {
	if !validSession(state) {
		return models.QuizResults{}
	}
	return models.QuizResults{Score: state.Score, Total: state.Total}
}

// promptAndExpected splits an entry into the shown text and the text the
// user has to produce, based on the question direction.
func promptAndExpected(entry models.Entry, direction models.Direction) (string, string) {
	if direction == models.DirectionReverse {
		return entry.TargetWord, entry.SourceWord
	}
	return entry.SourceWord, entry.TargetWord
}
