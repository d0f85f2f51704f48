package repository

import (
	"context"
	"database/sql"
	"errors"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

type QueryI interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

type Repository struct {
	*LanguagesR
	*ListsR
	*EntriesR
	*SessionsR
}

func NewRepository(db QueryI) Repository {
	return Repository{
		LanguagesR: NewLanguagesRepository(db),
		ListsR:     NewListsRepository(db),
		EntriesR:   NewEntriesRepository(db),
		SessionsR:  NewSessionsRepository(db),
	}
}
