package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "lowercases",
			in:   "Huis",
			want: "huis",
		},
		{
			name: "strips accents",
			in:   "café",
			want: "cafe",
		},
		{
			name: "strips punctuation",
			in:   "l'école, s'il vous plaît!",
			want: "lecole sil vous plait",
		},
		{
			name: "collapses whitespace",
			in:   "  het   huis \t is groot ",
			want: "het huis is groot",
		},
		{
			name: "empty",
			in:   "",
			want: "",
		},
		{
			name: "only punctuation",
			in:   "?!...",
			want: "",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestEvaluator_Evaluate_Fuzzy(t *testing.T) {
	t.Parallel()

	eval := NewEvaluator(MatchModeFuzzy, 0)

	tests := []struct {
		name           string
		expected       string
		answer         string
		wantAccepted   bool
		wantSimilarity float64
		wantLabel      string
	}{
		{
			name:           "identical",
			expected:       "huis",
			answer:         "huis",
			wantAccepted:   true,
			wantSimilarity: 1.0,
			wantLabel:      LabelPerfect,
		},
		{
			name:           "identical after normalization",
			expected:       "het café",
			answer:         "  Het Cafe! ",
			wantAccepted:   true,
			wantSimilarity: 1.0,
			wantLabel:      LabelPerfect,
		},
		{
			name:           "single missing letter",
			expected:       "hello",
			answer:         "helo",
			wantAccepted:   true,
			wantSimilarity: 8.0 / 9.0,
			wantLabel:      LabelGood,
		},
		{
			name:           "different word",
			expected:       "home",
			answer:         "house",
			wantAccepted:   false,
			wantSimilarity: 6.0 / 9.0,
			wantLabel:      LabelIncorrect,
		},
		{
			name:           "empty answer",
			expected:       "huis",
			answer:         "",
			wantAccepted:   false,
			wantSimilarity: 0,
			wantLabel:      LabelIncorrect,
		},
		{
			name:           "answer normalizes to empty",
			expected:       "huis",
			answer:         "?!",
			wantAccepted:   false,
			wantSimilarity: 0,
			wantLabel:      LabelIncorrect,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := eval.Evaluate(tt.expected, tt.answer)

			assert.Equal(t, tt.wantAccepted, got.Accepted)
			assert.InDelta(t, tt.wantSimilarity, got.Similarity, 0.001)
			assert.Equal(t, tt.wantLabel, got.Label)
			assert.Equal(t, tt.expected, got.CorrectAnswer)
		})
	}
}

func TestEvaluator_Evaluate_Exact(t *testing.T) {
	t.Parallel()

	eval := NewEvaluator(MatchModeExact, 0)

	tests := []struct {
		name         string
		expected     string
		answer       string
		wantAccepted bool
	}{
		{
			name:         "match after normalization",
			expected:     "huis",
			answer:       " HUIS ",
			wantAccepted: true,
		},
		{
			name:         "near miss is still wrong",
			expected:     "hello",
			answer:       "helo",
			wantAccepted: false,
		},
		{
			name:         "empty expected never matches",
			expected:     "",
			answer:       "",
			wantAccepted: false,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := eval.Evaluate(tt.expected, tt.answer)

			assert.Equal(t, tt.wantAccepted, got.Accepted)
			if tt.wantAccepted {
				assert.Equal(t, 1.0, got.Similarity)
				assert.Equal(t, LabelPerfect, got.Label)
			} else {
				assert.Equal(t, 0.0, got.Similarity)
				assert.Equal(t, LabelIncorrect, got.Label)
			}
		})
	}
}

func TestSimilarityLabel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		similarity float64
		want       string
	}{
		{1.0, LabelPerfect},
		{0.96, LabelExcellent},
		{0.95, LabelExcellent},
		{0.9, LabelGood},
		{0.85, LabelGood},
		{0.8, LabelAcceptable},
		{0.75, LabelAcceptable},
		{0.74, LabelIncorrect},
		{0, LabelIncorrect},
	}
	for _, tt := range tests {
		tt := tt
		assert.Equal(t, tt.want, similarityLabel(tt.similarity), "similarity %v", tt.similarity)
	}
}

func TestNewEvaluator_Defaults(t *testing.T) {
	t.Parallel()

	eval := NewEvaluator("", -1)

	require.Equal(t, MatchModeFuzzy, eval.mode)
	require.Equal(t, DefaultAcceptThreshold, eval.threshold)
}
