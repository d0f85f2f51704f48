package models

import (
	"database/sql"
	"time"
)

type Language struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
	Code string `db:"code"`
}

type List struct {
	ID               int64         `db:"id"`
	Name             string        `db:"name"`
	SourceLanguageID int64         `db:"source_language_id"`
	TargetLanguageID int64         `db:"target_language_id"`
	SourceLanguage   string        `db:"source_language"`
	TargetLanguage   string        `db:"target_language"`
	CategoryID       sql.NullInt64 `db:"category_id"`
	Category         string        `db:"category"`
	EntryCount       int           `db:"entry_count"`
	CreatedAt        time.Time     `db:"created_at"`
}

// LanguagePair renders the list's languages as "nl → en".
func (l List) LanguagePair() string {
	return l.SourceLanguage + " → " + l.TargetLanguage
}
