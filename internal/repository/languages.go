package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/nsmeele/magistra/internal/models"
)

type LanguagesR struct {
	db QueryI
}

func NewLanguagesRepository(db QueryI) *LanguagesR {
	return &LanguagesR{db: db}
}

func (l *LanguagesR) Languages(ctx context.Context) ([]models.Language, error) {
	query := `SELECT id, name, code FROM languages ORDER BY name`

	languages := make([]models.Language, 0)
	if err := l.db.SelectContext(ctx, &languages, query); err != nil {
		return nil, fmt.Errorf("failed to load languages: %w", err)
	}

	return languages, nil
}

func (l *LanguagesR) LanguageByCode(ctx context.Context, code string) (models.Language, error) {
	query := `SELECT id, name, code FROM languages WHERE code = $1`

	var lang models.Language
	if err := l.db.GetContext(ctx, &lang, query, code); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Language{}, ErrNotFound
		}
		return models.Language{}, fmt.Errorf("failed to load language %q: %w", code, err)
	}

	return lang, nil
}
