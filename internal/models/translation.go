package models

// TranslationSuggestion is what the external translation provider returns
// for a prefill lookup. Match is the provider's own confidence in [0,1].
type TranslationSuggestion struct {
	Text         string
	Match        float64
	Reliable     bool
	Alternatives []string
}
