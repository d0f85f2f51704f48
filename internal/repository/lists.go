package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/nsmeele/magistra/internal/models"
)

type ListsR struct {
	db QueryI
}

func NewListsRepository(db QueryI) *ListsR {
	return &ListsR{db: db}
}

func (l *ListsR) CreateList(ctx context.Context, list models.List) (int64, error) {
	query := `
		INSERT INTO lists (name, source_language_id, target_language_id)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	var id int64
	err := l.db.GetContext(ctx, &id, query, list.Name, list.SourceLanguageID, list.TargetLanguageID)
	if err != nil {
		return 0, fmt.Errorf("failed to create list %q: %w", list.Name, err)
	}

	return id, nil
}

func (l *ListsR) ListByID(ctx context.Context, id int64) (models.List, error) {
	query := `
		SELECT l.id, l.name, l.source_language_id, l.target_language_id,
			sl.code AS source_language, tl.code AS target_language,
			l.category_id, COALESCE(c.name, '') AS category,
			(SELECT COUNT(*) FROM entries e WHERE e.list_id = l.id) AS entry_count,
			l.created_at
		FROM lists l
		JOIN languages sl ON sl.id = l.source_language_id
		JOIN languages tl ON tl.id = l.target_language_id
		LEFT JOIN categories c ON c.id = l.category_id
		WHERE l.id = $1
	`

	var list models.List
	if err := l.db.GetContext(ctx, &list, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.List{}, ErrNotFound
		}
		return models.List{}, fmt.Errorf("failed to load list %d: %w", id, err)
	}

	return list, nil
}

func (l *ListsR) Lists(ctx context.Context) ([]models.List, error) {
	query := `
		SELECT l.id, l.name, l.source_language_id, l.target_language_id,
			sl.code AS source_language, tl.code AS target_language,
			l.category_id, COALESCE(c.name, '') AS category,
			(SELECT COUNT(*) FROM entries e WHERE e.list_id = l.id) AS entry_count,
			l.created_at
		FROM lists l
		JOIN languages sl ON sl.id = l.source_language_id
		JOIN languages tl ON tl.id = l.target_language_id
		LEFT JOIN categories c ON c.id = l.category_id
		ORDER BY l.created_at DESC
	`

	lists := make([]models.List, 0)
	if err := l.db.SelectContext(ctx, &lists, query); err != nil {
		return nil, fmt.Errorf("failed to load lists: %w", err)
	}

	return lists, nil
}

// UpdateList overwrites the mutable list columns: its name and category.
// Language pair is fixed at creation because entries depend on it.
func (l *ListsR) UpdateList(ctx context.Context, list models.List) error {
	query := `UPDATE lists SET name = $1, category_id = $2 WHERE id = $3`

	res, err := l.db.ExecContext(ctx, query, list.Name, list.CategoryID, list.ID)
	if err != nil {
		return fmt.Errorf("failed to update list %d: %w", list.ID, err)
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

// EnsureCategory returns the id of the named category, creating it on
// first use. The upsert keeps the call race-free under concurrent updates.
func (l *ListsR) EnsureCategory(ctx context.Context, name string) (int64, error) {
	query := `
		INSERT INTO categories (name)
		VALUES ($1)
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id
	`

	var id int64
	if err := l.db.GetContext(ctx, &id, query, name); err != nil {
		return 0, fmt.Errorf("failed to ensure category %q: %w", name, err)
	}

	return id, nil
}

func (l *ListsR) DeleteList(ctx context.Context, id int64) error {
	query := `DELETE FROM lists WHERE id = $1`

	res, err := l.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete list %d: %w", id, err)
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
