package service

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/nsmeele/magistra/internal/models"
	"go.uber.org/zap"
)

type ListRI interface {
	Languages(ctx context.Context) ([]models.Language, error)
	LanguageByCode(ctx context.Context, code string) (models.Language, error)
	CreateList(ctx context.Context, list models.List) (int64, error)
	ListByID(ctx context.Context, id int64) (models.List, error)
	Lists(ctx context.Context) ([]models.List, error)
	UpdateList(ctx context.Context, list models.List) error
	EnsureCategory(ctx context.Context, name string) (int64, error)
	DeleteList(ctx context.Context, id int64) error
	AddEntry(ctx context.Context, entry models.Entry) (int64, error)
	EntryByID(ctx context.Context, id int64) (models.Entry, error)
	EntriesByList(ctx context.Context, listID int64) ([]models.Entry, error)
	UpdateEntry(ctx context.Context, entry models.Entry) error
	DeleteEntry(ctx context.Context, id int64) error
}

type TranslateAPII interface {
	Translate(ctx context.Context, text, source, target string) (models.TranslationSuggestion, error)
}

type ListS struct {
	api  TranslateAPII
	repo ListRI
	log  *zap.Logger
}

func NewListService(api TranslateAPII, repo ListRI, log *zap.Logger) *ListS {
	return &ListS{
		api:  api,
		repo: repo,
		log:  log,
	}
}

func (l *ListS) Languages(ctx context.Context) ([]models.Language, error) {
	return l.repo.Languages(ctx)
}

func (l *ListS) CreateList(ctx context.Context, name, sourceCode, targetCode string) (models.List, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.List{}, fmt.Errorf("list name is required")
	}

	source, err := l.repo.LanguageByCode(ctx, sourceCode)
	if err != nil {
		return models.List{}, fmt.Errorf("unknown source language %q: %w", sourceCode, err)
	}
	target, err := l.repo.LanguageByCode(ctx, targetCode)
	if err != nil {
		return models.List{}, fmt.Errorf("unknown target language %q: %w", targetCode, err)
	}

	id, err := l.repo.CreateList(ctx, models.List{
		Name:             name,
		SourceLanguageID: source.ID,
		TargetLanguageID: target.ID,
	})
	if err != nil {
		return models.List{}, err
	}

	return l.repo.ListByID(ctx, id)
}

func (l *ListS) Lists(ctx context.Context) ([]models.List, error) {
	return l.repo.Lists(ctx)
}

func (l *ListS) RenameList(ctx context.Context, id int64, name string) (models.List, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.List{}, fmt.Errorf("list name is required")
	}

	list, err := l.repo.ListByID(ctx, id)
	if err != nil {
		return models.List{}, err
	}

	list.Name = name
	if err := l.repo.UpdateList(ctx, list); err != nil {
		return models.List{}, err
	}

	return l.repo.ListByID(ctx, id)
}

// SetListCategory tags a list with a named category, creating the category
// on first use. An empty name clears the tag.
func (l *ListS) SetListCategory(ctx context.Context, id int64, category string) (models.List, error) {
	list, err := l.repo.ListByID(ctx, id)
	if err != nil {
		return models.List{}, err
	}

	category = strings.TrimSpace(category)
	if category == "" {
		list.CategoryID = sql.NullInt64{}
	} else {
		categoryID, err := l.repo.EnsureCategory(ctx, category)
		if err != nil {
			return models.List{}, err
		}
		list.CategoryID = sql.NullInt64{Int64: categoryID, Valid: true}
	}

	if err := l.repo.UpdateList(ctx, list); err != nil {
		return models.List{}, err
	}

	return l.repo.ListByID(ctx, id)
}

func (l *ListS) ListDetail(ctx context.Context, id int64) (models.List, []models.Entry, error) {
	list, err := l.repo.ListByID(ctx, id)
	if err != nil {
		return models.List{}, nil, err
	}

	entries, err := l.repo.EntriesByList(ctx, id)
	if err != nil {
		return models.List{}, nil, err
	}

	return list, entries, nil
}

func (l *ListS) AddEntry(ctx context.Context, listID int64, sourceWord, targetWord, entryType string) (models.Entry, error) {
	sourceWord = strings.TrimSpace(sourceWord)
	targetWord = strings.TrimSpace(targetWord)
	if sourceWord == "" || targetWord == "" {
		return models.Entry{}, fmt.Errorf("both source and target text are required")
	}

	if entryType != models.EntryTypeSentence {
		entryType = models.EntryTypeWord
	}

	entry := models.Entry{
		ListID:     listID,
		SourceWord: sourceWord,
		TargetWord: targetWord,
		EntryType:  entryType,
	}

	id, err := l.repo.AddEntry(ctx, entry)
	if err != nil {
		return models.Entry{}, err
	}
	entry.ID = id

	return entry, nil
}

func (l *ListS) UpdateEntry(ctx context.Context, id int64, sourceWord, targetWord, entryType string) (models.Entry, error) {
	sourceWord = strings.TrimSpace(sourceWord)
	targetWord = strings.TrimSpace(targetWord)
	if sourceWord == "" || targetWord == "" {
		return models.Entry{}, fmt.Errorf("both source and target text are required")
	}

	if entryType != models.EntryTypeSentence {
		entryType = models.EntryTypeWord
	}

	entry, err := l.repo.EntryByID(ctx, id)
	if err != nil {
		return models.Entry{}, err
	}

	entry.SourceWord = sourceWord
	entry.TargetWord = targetWord
	entry.EntryType = entryType

	if err := l.repo.UpdateEntry(ctx, entry); err != nil {
		return models.Entry{}, err
	}

	return entry, nil
}

// SuggestTranslation asks the external translation provider for a target
// text to prefill when adding an entry. Unreliable suggestions are still
// returned; the caller decides whether to show them.
func (l *ListS) SuggestTranslation(ctx context.Context, list models.List, sourceWord string) (models.TranslationSuggestion, error) {
	suggestion, err := l.api.Translate(ctx, sourceWord, list.SourceLanguage, list.TargetLanguage)
	if err != nil {
		l.log.Warn("translation suggestion failed",
			zap.String("word", sourceWord),
			zap.String("pair", list.LanguagePair()),
			zap.Error(err))
		return models.TranslationSuggestion{}, err
	}

	return suggestion, nil
}

func (l *ListS) DeleteEntry(ctx context.Context, id int64) error {
	return l.repo.DeleteEntry(ctx, id)
}

func (l *ListS) DeleteList(ctx context.Context, id int64) error {
	return l.repo.DeleteList(ctx, id)
}
