package service

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/nsmeele/magistra/internal/models"
	"github.com/nsmeele/magistra/internal/repository"
	mock_service "github.com/nsmeele/magistra/internal/service/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSession(questions ...models.Question) *models.SessionState {
	return &models.SessionState{
		ID:             uuid.New(),
		ListIDs:        []int64{1},
		SourceLanguage: "nl",
		TargetLanguage: "en",
		Direction:      models.DirectionForward,
		Questions:      questions,
		Total:          len(questions),
		Status:         models.StatusInProgress,
	}
}

func TestQuizS_CurrentQuestion(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	huis := models.Entry{ID: 1, ListID: 1, SourceWord: "huis", TargetWord: "house"}
	kat := models.Entry{ID: 2, ListID: 1, SourceWord: "kat", TargetWord: "cat"}

	t.Run("returns forward prompt and progress", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		quiz := newQuizServiceMock(t, ctrl, func(mri *mock_service.MockRepositoryI) {
			mri.EXPECT().EntryByID(gomock.Any(), int64(1)).Return(huis, nil)
		})

		state := testSession(
			models.Question{EntryID: 1, Direction: models.DirectionForward},
			models.Question{EntryID: 2, Direction: models.DirectionForward},
		)

		got, err := quiz.CurrentQuestion(ctx, state)
		require.NoError(t, err)
		require.NotNil(t, got)

		assert.Equal(t, "huis", got.Prompt)
		assert.Equal(t, "house", got.Expected)
		assert.Equal(t, "1/2", got.Progress)
		assert.Equal(t, int64(1), got.Question.EntryID)
	})

	t.Run("reverse direction swaps prompt and expected", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		quiz := newQuizServiceMock(t, ctrl, func(mri *mock_service.MockRepositoryI) {
			mri.EXPECT().EntryByID(gomock.Any(), int64(1)).Return(huis, nil)
		})

		state := testSession(models.Question{EntryID: 1, Direction: models.DirectionReverse})

		got, err := quiz.CurrentQuestion(ctx, state)
		require.NoError(t, err)

		assert.Equal(t, "house", got.Prompt)
		assert.Equal(t, "huis", got.Expected)
	})

	t.Run("idempotent without an intervening answer", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		quiz := newQuizServiceMock(t, ctrl, func(mri *mock_service.MockRepositoryI) {
			mri.EXPECT().EntryByID(gomock.Any(), int64(1)).Return(huis, nil).Times(2)
		})

		state := testSession(
			models.Question{EntryID: 1, Direction: models.DirectionForward},
			models.Question{EntryID: 2, Direction: models.DirectionForward},
		)

		first, err := quiz.CurrentQuestion(ctx, state)
		require.NoError(t, err)
		second, err := quiz.CurrentQuestion(ctx, state)
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Equal(t, 0, state.Index)
	})

	t.Run("skips deleted entries without scoring", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		quiz := newQuizServiceMock(t, ctrl, func(mri *mock_service.MockRepositoryI) {
			mri.EXPECT().EntryByID(gomock.Any(), int64(1)).Return(models.Entry{}, repository.ErrNotFound)
			mri.EXPECT().EntryByID(gomock.Any(), int64(2)).Return(kat, nil)
		})

		state := testSession(
			models.Question{EntryID: 1, Direction: models.DirectionForward},
			models.Question{EntryID: 2, Direction: models.DirectionForward},
		)

		got, err := quiz.CurrentQuestion(ctx, state)
		require.NoError(t, err)

		assert.Equal(t, "kat", got.Prompt)
		assert.Equal(t, "2/2", got.Progress)
		assert.Equal(t, 1, state.Index)
		assert.Equal(t, 0, state.Score)
	})

	t.Run("queue exhausted by deletions", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		quiz := newQuizServiceMock(t, ctrl, func(mri *mock_service.MockRepositoryI) {
			mri.EXPECT().EntryByID(gomock.Any(), int64(1)).Return(models.Entry{}, repository.ErrNotFound)
			mri.EXPECT().EntryByID(gomock.Any(), int64(2)).Return(models.Entry{}, repository.ErrNotFound)
		})

		state := testSession(
			models.Question{EntryID: 1, Direction: models.DirectionForward},
			models.Question{EntryID: 2, Direction: models.DirectionForward},
		)

		got, err := quiz.CurrentQuestion(ctx, state)
		require.ErrorIs(t, err, ErrQueueExhausted)
		assert.Nil(t, got)
	})

	t.Run("completed queue yields nil", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		quiz := newQuizServiceMock(t, ctrl, nil)

		state := testSession(models.Question{EntryID: 1, Direction: models.DirectionForward})
		state.Index = 1

		got, err := quiz.CurrentQuestion(ctx, state)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("invalid session", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		quiz := newQuizServiceMock(t, ctrl, nil)

		_, err := quiz.CurrentQuestion(ctx, nil)
		require.ErrorIs(t, err, ErrInvalidSession)

		_, err = quiz.CurrentQuestion(ctx, &models.SessionState{})
		require.ErrorIs(t, err, ErrInvalidSession)
	})
}

func TestQuizS_Advance(t *testing.T) {
	t.Parallel()

	t.Run("correct answer scores and moves forward", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		quiz := newQuizServiceMock(t, ctrl, nil)

		state := testSession(
			models.Question{EntryID: 1, Direction: models.DirectionForward},
			models.Question{EntryID: 2, Direction: models.DirectionForward},
		)

		require.NoError(t, quiz.Advance(state, true))

		assert.Equal(t, 1, state.Index)
		assert.Equal(t, 1, state.Score)
		assert.Len(t, state.Questions, 2)
	})

	t.Run("miss requeues identical question at the end", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		quiz := newQuizServiceMock(t, ctrl, nil)

		missed := models.Question{EntryID: 2, Direction: models.DirectionReverse}
		state := testSession(
			missed,
			models.Question{EntryID: 1, Direction: models.DirectionForward},
		)

		require.NoError(t, quiz.Advance(state, false))

		assert.Equal(t, 1, state.Index)
		assert.Equal(t, 0, state.Score)
		require.Len(t, state.Questions, 3)
		assert.Equal(t, missed, state.Questions[2])
		assert.LessOrEqual(t, state.Index, len(state.Questions))
	})

	t.Run("no-op once complete", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		quiz := newQuizServiceMock(t, ctrl, nil)

		state := testSession(models.Question{EntryID: 1, Direction: models.DirectionForward})
		state.Index = 1
		state.Score = 1

		require.NoError(t, quiz.Advance(state, true))

		assert.Equal(t, 1, state.Index)
		assert.Equal(t, 1, state.Score)
	})

	t.Run("invalid session", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		quiz := newQuizServiceMock(t, ctrl, nil)

		require.ErrorIs(t, quiz.Advance(nil, true), ErrInvalidSession)
	})
}

func TestQuizS_Results(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	quiz := newQuizServiceMock(t, ctrl, nil)

	state := testSession(
		models.Question{EntryID: 1, Direction: models.DirectionForward},
		models.Question{EntryID: 2, Direction: models.DirectionForward},
	)

	require.NoError(t, quiz.Advance(state, true))
	require.NoError(t, quiz.Advance(state, false))
	require.NoError(t, quiz.Advance(state, true))

	assert.True(t, quiz.IsComplete(state))
	// one miss grew the queue to 3 but the denominator stays at 2
	assert.Len(t, state.Questions, 3)
	assert.Equal(t, models.QuizResults{Score: 2, Total: 2}, quiz.Results(state))

	assert.Equal(t, models.QuizResults{}, quiz.Results(nil))
}
