package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/nsmeele/magistra/internal/models"
	mock_repository "github.com/nsmeele/magistra/internal/repository/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSessionsMock(t *testing.T, ctrl *gomock.Controller, setupMock func(*mock_repository.MockQueryI)) *SessionsR {
	t.Helper()

	db := mock_repository.NewMockQueryI(ctrl)
	if setupMock != nil {
		setupMock(db)
	}

	return NewSessionsRepository(db)
}

func storedSession() *models.SessionState {
	return &models.SessionState{
		ID:             uuid.New(),
		ListIDs:        []int64{1, 2},
		ListNames:      []string{"Basics", "Animals"},
		SourceLanguage: "nl",
		TargetLanguage: "en",
		Direction:      models.DirectionForward,
		Questions: []models.Question{
			{EntryID: 1, Direction: models.DirectionForward},
			{EntryID: 2, Direction: models.DirectionReverse},
			{EntryID: 2, Direction: models.DirectionReverse},
		},
		Index:     1,
		Score:     1,
		Total:     2,
		Status:    models.StatusInProgress,
		StartedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestSessionsR_SaveSession(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		f       func(*mock_repository.MockQueryI)
		wantErr bool
	}{
		{
			name: "success writes session and link rows",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().ExecContext(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(execResult(1), nil)
				// one link row per list
				mqi.EXPECT().ExecContext(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(execResult(1), nil).Times(2)
			},
		},
		{
			name: "failed insert",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().ExecContext(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("db error"))
			},
			wantErr: true,
		},
		{
			name: "failed link row rolls the session back",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().ExecContext(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(execResult(1), nil)
				mqi.EXPECT().ExecContext(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("db error"))
				// the half-saved session must not stay resumable
				mqi.EXPECT().ExecContext(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, query string, args ...any) (sql.Result, error) {
						assert.Contains(t, query, "DELETE FROM quiz_sessions")
						return execResult(1), nil
					})
			},
			wantErr: true,
		},
		{
			name: "failed link row and failed cleanup",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().ExecContext(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(execResult(1), nil)
				mqi.EXPECT().ExecContext(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("db error"))
				mqi.EXPECT().ExecContext(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("db gone"))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			sessionsR := newSessionsMock(t, ctrl, tt.f)

			err := sessionsR.SaveSession(context.Background(), storedSession())
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
		})
	}
}

// Saving then loading must restore the exact state, requeued questions and
// position included.
func TestSessionsR_SaveLoadRoundTrip(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	state := storedSession()

	var snapshot []byte
	sessionsR := newSessionsMock(t, ctrl, func(mqi *mock_repository.MockQueryI) {
		mqi.EXPECT().ExecContext(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, query string, args ...any) (sql.Result, error) {
				// quiz_data is the last insert argument
				if data, ok := args[len(args)-1].([]byte); ok {
					snapshot = data
				}
				return execResult(1), nil
			})
		mqi.EXPECT().ExecContext(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(execResult(1), nil).Times(2)

		mqi.EXPECT().GetContext(gomock.Any(), gomock.AssignableToTypeOf(&sessionRow{}), gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
				*dest.(*sessionRow) = sessionRow{Status: state.Status, QuizData: snapshot}
				return nil
			})
	})

	require.NoError(t, sessionsR.SaveSession(context.Background(), state))
	require.NotEmpty(t, snapshot)

	loaded, err := sessionsR.LoadSession(context.Background(), state.ID)
	require.NoError(t, err)

	assert.Equal(t, state.ID, loaded.ID)
	assert.Equal(t, state.Questions, loaded.Questions)
	assert.Equal(t, state.Index, loaded.Index)
	assert.Equal(t, state.Score, loaded.Score)
	assert.Equal(t, state.Total, loaded.Total)
	assert.Equal(t, state.Status, loaded.Status)
	assert.True(t, state.StartedAt.Equal(loaded.StartedAt))
}

func TestSessionsR_LoadSession(t *testing.T) {
	t.Parallel()

	id := uuid.New()

	tests := []struct {
		name    string
		f       func(*mock_repository.MockQueryI)
		wantErr error
	}{
		{
			name: "unknown id maps to not found",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().GetContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(sql.ErrNoRows)
			},
			wantErr: ErrNotFound,
		},
		{
			name: "corrupt snapshot",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().GetContext(gomock.Any(), gomock.AssignableToTypeOf(&sessionRow{}), gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
						*dest.(*sessionRow) = sessionRow{Status: models.StatusInProgress, QuizData: []byte("{broken")}
						return nil
					})
			},
			wantErr: errors.New("failed to decode session"),
		},
		{
			name: "completed status overrides the snapshot",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().GetContext(gomock.Any(), gomock.AssignableToTypeOf(&sessionRow{}), gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
						*dest.(*sessionRow) = sessionRow{
							Status:   models.StatusCompleted,
							QuizData: []byte(`{"status":"in_progress","questions":[]}`),
						}
						return nil
					})
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			sessionsR := newSessionsMock(t, ctrl, tt.f)

			loaded, err := sessionsR.LoadSession(context.Background(), id)
			if tt.wantErr != nil {
				require.Error(t, err)
				if errors.Is(tt.wantErr, ErrNotFound) {
					assert.ErrorIs(t, err, ErrNotFound)
				}
				return
			}

			require.NoError(t, err)
			assert.Equal(t, models.StatusCompleted, loaded.Status)
		})
	}
}

func TestSessionsR_UpdateSession(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		f       func(*mock_repository.MockQueryI)
		wantErr error
	}{
		{
			name: "success",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().ExecContext(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(execResult(1), nil)
			},
		},
		{
			name: "session gone",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().ExecContext(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(execResult(0), nil)
			},
			wantErr: ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			sessionsR := newSessionsMock(t, ctrl, tt.f)

			err := sessionsR.UpdateSession(context.Background(), storedSession())
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestSessionsR_CompleteSession(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		f       func(*mock_repository.MockQueryI)
		wantErr error
	}{
		{
			name: "success",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().ExecContext(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(execResult(1), nil)
			},
		},
		{
			name: "session gone",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().ExecContext(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(execResult(0), nil)
			},
			wantErr: ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			sessionsR := newSessionsMock(t, ctrl, tt.f)

			err := sessionsR.CompleteSession(context.Background(), uuid.New(), 7)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestSessionsR_AbandonSession(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		f       func(*mock_repository.MockQueryI)
		wantErr error
	}{
		{
			name: "success",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().ExecContext(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(execResult(1), nil)
			},
		},
		{
			name: "not in progress",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().ExecContext(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(execResult(0), nil)
			},
			wantErr: ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			sessionsR := newSessionsMock(t, ctrl, tt.f)

			err := sessionsR.AbandonSession(context.Background(), uuid.New())
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestSessionsR_AddAnswer(t *testing.T) {
	t.Parallel()

	answer := models.QuizAnswer{
		SessionID:     uuid.New(),
		EntryID:       1,
		UserAnswer:    "house",
		CorrectAnswer: "house",
		IsCorrect:     true,
		Direction:     models.DirectionForward,
	}

	tests := []struct {
		name    string
		f       func(*mock_repository.MockQueryI)
		wantErr bool
	}{
		{
			name: "success",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().ExecContext(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(execResult(1), nil)
			},
		},
		{
			name: "failed insert",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().ExecContext(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("db error"))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			sessionsR := newSessionsMock(t, ctrl, tt.f)

			err := sessionsR.AddAnswer(context.Background(), answer)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestSessionsR_History(t *testing.T) {
	t.Parallel()

	expected := []models.SessionSummary{
		{ID: uuid.New(), QuizType: "single", TotalQuestions: 10, CorrectAnswers: 8, Status: models.StatusCompleted},
	}

	tests := []struct {
		name    string
		f       func(*mock_repository.MockQueryI)
		wantErr bool
	}{
		{
			name: "success",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().SelectContext(gomock.Any(), gomock.AssignableToTypeOf(&[]models.SessionSummary{}), gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
						*dest.(*[]models.SessionSummary) = expected
						return nil
					})
			},
		},
		{
			name: "db error",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().SelectContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("db error"))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			sessionsR := newSessionsMock(t, ctrl, tt.f)

			got, err := sessionsR.History(context.Background(), 20)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, expected, got)
		})
	}
}

func TestSessionsR_IncompleteSessions(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	expected := []models.SessionSummary{
		{ID: uuid.New(), QuizType: "mixed", Status: models.StatusInProgress},
	}

	sessionsR := newSessionsMock(t, ctrl, func(mqi *mock_repository.MockQueryI) {
		mqi.EXPECT().SelectContext(gomock.Any(), gomock.AssignableToTypeOf(&[]models.SessionSummary{}), gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
				*dest.(*[]models.SessionSummary) = expected
				return nil
			})
	})

	got, err := sessionsR.IncompleteSessions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, expected, got)
}

func TestSessionsR_OverallStats(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		f       func(*mock_repository.MockQueryI)
		want    models.OverallStats
		wantErr bool
	}{
		{
			name: "wrong count derived from totals",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().GetContext(gomock.Any(), gomock.AssignableToTypeOf(&models.OverallStats{}), gomock.Any()).
					DoAndReturn(func(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
						*dest.(*models.OverallStats) = models.OverallStats{TotalCount: 10, RightCount: 7}
						return nil
					})
			},
			want: models.OverallStats{TotalCount: 10, RightCount: 7, WrongCount: 3},
		},
		{
			name: "no answers yet",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().GetContext(gomock.Any(), gomock.AssignableToTypeOf(&models.OverallStats{}), gomock.Any()).
					Return(nil)
			},
			want: models.OverallStats{},
		},
		{
			name: "db error",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().GetContext(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("db error"))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			sessionsR := newSessionsMock(t, ctrl, tt.f)

			got, err := sessionsR.OverallStats(context.Background())
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
