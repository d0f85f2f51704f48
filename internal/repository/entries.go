package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/nsmeele/magistra/internal/models"
)

type EntriesR struct {
	db QueryI
}

func NewEntriesRepository(db QueryI) *EntriesR {
	return &EntriesR{db: db}
}

func (e *EntriesR) AddEntry(ctx context.Context, entry models.Entry) (int64, error) {
	query := `
		INSERT INTO entries (list_id, source_word, target_word, entry_type)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	entryType := entry.EntryType
	if entryType == "" {
		entryType = models.EntryTypeWord
	}

	var id int64
	err := e.db.GetContext(ctx, &id, query, entry.ListID, entry.SourceWord, entry.TargetWord, entryType)
	if err != nil {
		return 0, fmt.Errorf("failed to add entry to list %d: %w", entry.ListID, err)
	}

	return id, nil
}

func (e *EntriesR) EntryByID(ctx context.Context, id int64) (models.Entry, error) {
	query := `
		SELECT id, list_id, source_word, target_word, entry_type,
			correct_count, incorrect_count, created_at
		FROM entries
		WHERE id = $1
	`

	var entry models.Entry
	if err := e.db.GetContext(ctx, &entry, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Entry{}, ErrNotFound
		}
		return models.Entry{}, fmt.Errorf("failed to load entry %d: %w", id, err)
	}

	return entry, nil
}

func (e *EntriesR) EntriesByList(ctx context.Context, listID int64) ([]models.Entry, error) {
	query := `
		SELECT id, list_id, source_word, target_word, entry_type,
			correct_count, incorrect_count, created_at
		FROM entries
		WHERE list_id = $1
		ORDER BY created_at
	`

	entries := make([]models.Entry, 0)
	if err := e.db.SelectContext(ctx, &entries, query, listID); err != nil {
		return nil, fmt.Errorf("failed to load entries for list %d: %w", listID, err)
	}

	return entries, nil
}

// UpdateEntry overwrites the entry's text and type. The attempt counters
// are untouched: a corrected typo keeps its history.
func (e *EntriesR) UpdateEntry(ctx context.Context, entry models.Entry) error {
	query := `
		UPDATE entries
		SET source_word = $1, target_word = $2, entry_type = $3
		WHERE id = $4
	`

	res, err := e.db.ExecContext(ctx, query, entry.SourceWord, entry.TargetWord, entry.EntryType, entry.ID)
	if err != nil {
		return fmt.Errorf("failed to update entry %d: %w", entry.ID, err)
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

func (e *EntriesR) DeleteEntry(ctx context.Context, id int64) error {
	query := `DELETE FROM entries WHERE id = $1`

	res, err := e.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete entry %d: %w", id, err)
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

// UpdateScore bumps one of the attempt counters. The increment is a single
// statement so concurrent quizzes never lose an attempt.
func (e *EntriesR) UpdateScore(ctx context.Context, id int64, correct bool) error {
	query := `UPDATE entries SET incorrect_count = incorrect_count + 1 WHERE id = $1`
	if correct {
		query = `UPDATE entries SET correct_count = correct_count + 1 WHERE id = $1`
	}

	res, err := e.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to update score for entry %d: %w", id, err)
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
