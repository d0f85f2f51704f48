package service

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptySelection is returned when a quiz is started without lists.
	ErrEmptySelection = errors.New("select at least one list")

	// ErrEmptyResult is returned when the selected lists hold no entries.
	ErrEmptyResult = errors.New("selected lists have no entries")

	// ErrInvalidSession is returned for operations on a session that was
	// never built or loaded.
	ErrInvalidSession = errors.New("quiz session is missing or invalid")

	// ErrSessionNotResumable is returned when resuming anything other than
	// an in-progress session with a stored snapshot.
	ErrSessionNotResumable = errors.New("quiz session can no longer be resumed")

	// ErrQueueExhausted is returned when every remaining question refers to
	// an entry that has been deleted mid-quiz.
	ErrQueueExhausted = errors.New("remaining quiz questions no longer exist")
)

type ListNotFoundError struct {
	ListID int64
}

func (e *ListNotFoundError) Error() string {
	return fmt.Sprintf("list %d not found", e.ListID)
}

// LanguageMismatchError reports a mixed quiz over lists whose language
// pairs disagree.
type LanguageMismatchError struct {
	ExpectedSource string
	ExpectedTarget string
	ListName       string
	Source         string
	Target         string
}

func (e *LanguageMismatchError) Error() string {
	return fmt.Sprintf("all lists must share one language pair: expected %s → %s, but %q is %s → %s",
		e.ExpectedSource, e.ExpectedTarget, e.ListName, e.Source, e.Target)
}
