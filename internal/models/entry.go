package models

import "time"

const (
	EntryTypeWord     = "word"
	EntryTypeSentence = "sentence"
)

type Entry struct {
	ID             int64     `db:"id"`
	ListID         int64     `db:"list_id"`
	SourceWord     string    `db:"source_word"`
	TargetWord     string    `db:"target_word"`
	EntryType      string    `db:"entry_type"`
	CorrectCount   int       `db:"correct_count"`
	IncorrectCount int       `db:"incorrect_count"`
	CreatedAt      time.Time `db:"created_at"`
}

func (e Entry) TotalAttempts() int {
	return e.CorrectCount + e.IncorrectCount
}

// SuccessRate returns the fraction of correct attempts in [0,1].
// The second value is false when the entry was never quizzed.
func (e Entry) SuccessRate() (float64, bool) {
	total := e.TotalAttempts()
	if total == 0 {
		return 0, false
	}
	return float64(e.CorrectCount) / float64(total), true
}
