package service

import (
	"strings"
	"unicode"

	"github.com/nsmeele/magistra/internal/models"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	MatchModeExact = "exact"
	MatchModeFuzzy = "fuzzy"

	// DefaultAcceptThreshold is the minimum similarity a fuzzy answer
	// needs to count as correct.
	DefaultAcceptThreshold = 0.75
)

const (
	LabelPerfect    = "perfect"
	LabelExcellent  = "excellent"
	LabelGood       = "good"
	LabelAcceptable = "acceptable"
	LabelIncorrect  = "incorrect"
)

// Evaluator scores a submitted answer against the expected text, either by
// exact comparison or by Levenshtein similarity over normalized strings.
type Evaluator struct {
	mode      string
	threshold float64
}

func NewEvaluator(mode string, threshold float64) *Evaluator {
	if mode != MatchModeExact {
		mode = MatchModeFuzzy
	}
	if threshold <= 0 || threshold > 1 {
		threshold = DefaultAcceptThreshold
	}
	return &Evaluator{mode: mode, threshold: threshold}
}

func (e *Evaluator) Evaluate(expected, answer string) models.Evaluation {
	eval := models.Evaluation{CorrectAnswer: expected}

	expectedNorm := Normalize(expected)
	answerNorm := Normalize(answer)

	if e.mode == MatchModeExact {
		if expectedNorm != "" && expectedNorm == answerNorm {
			eval.Accepted = true
			eval.Similarity = 1.0
		}
		eval.Label = similarityLabel(eval.Similarity)
		return eval
	}

	if expectedNorm == "" || answerNorm == "" {
		eval.Label = LabelIncorrect
		return eval
	}

	eval.Similarity = similarityRatio(expectedNorm, answerNorm)
	eval.Accepted = eval.Similarity >= e.threshold
	eval.Label = similarityLabel(eval.Similarity)

	return eval
}

func similarityLabel(similarity float64) string {
	switch {
	case similarity >= 1.0:
		return LabelPerfect
	case similarity >= 0.95:
		return LabelExcellent
	case similarity >= 0.85:
		return LabelGood
	case similarity >= 0.75:
		return LabelAcceptable
	default:
		return LabelIncorrect
	}
}

// Normalize prepares text for comparison: lowercase, strip accents via
// canonical decomposition, drop punctuation, collapse whitespace.
func Normalize(text string) string {
	text = strings.ToLower(text)

	stripMarks := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if stripped, _, err := transform.String(stripMarks, text); err == nil {
		text = stripped
	}

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) || r == '_' {
			b.WriteRune(r)
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

// similarityRatio computes the normalized indel similarity between two
// strings: 1.0 for identical, 0.0 for completely dissimilar. Substitutions
// weigh as a delete plus an insert, so the result matches the classic
// Levenshtein ratio.
func similarityRatio(a, b string) float64 {
	ra := []rune(a)
	rb := []rune(b)

	lensum := len(ra) + len(rb)
	if lensum == 0 {
		return 1.0
	}

	cols := len(rb) + 1
	prev := make([]int, cols)
	curr := make([]int, cols)

	for j := 0; j < cols; j++ {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j < cols; j++ {
			cost := 2
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(
				curr[j-1]+1,    // insertion
				prev[j]+1,      // deletion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}

	return float64(lensum-prev[cols-1]) / float64(lensum)
}
