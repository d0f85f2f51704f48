package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/nsmeele/magistra/internal/models"
)

type myMemoryResponse struct {
	ResponseBody struct {
		TranslatedText  string  `json:"translatedText"`
		Match           float64 `json:"match"`
		ResponseStatus  int     `json:"responseStatus"`
		ResponseDetails string  `json:"responseDetails"`
	} `json:"responseData"`

	Matches []struct {
		Translation string `json:"translation"`
	} `json:"matches"`
}

type MyMemoryAPI struct {
	client *http.Client
}

func NewMyMemoryAPI() *MyMemoryAPI {
	return &MyMemoryAPI{client: http.DefaultClient}
}

// Translate looks up a translation suggestion for any language pair the
// provider supports. Language arguments are ISO codes ("nl", "en", ...).
func (m *MyMemoryAPI) Translate(ctx context.Context, text, source, target string) (models.TranslationSuggestion, error) {
	endpoint := fmt.Sprintf(
		"https://api.mymemory.translated.net/get?q=%s&langpair=%s|%s",
		url.QueryEscape(text), url.QueryEscape(source), url.QueryEscape(target),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return models.TranslationSuggestion{}, err
	}
	resp, err := m.client.Do(req)
	if err != nil {
		return models.TranslationSuggestion{}, err
	}
	defer resp.Body.Close()

	var data myMemoryResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return models.TranslationSuggestion{}, err
	}

	if data.ResponseBody.ResponseStatus != http.StatusOK {
		return models.TranslationSuggestion{}, fmt.Errorf("translation lookup failed: %s", data.ResponseBody.ResponseDetails)
	}

	var alternatives []string
	for _, match := range data.Matches {
		if match.Translation != data.ResponseBody.TranslatedText {
			alternatives = append(alternatives, match.Translation)
		}
	}

	return models.TranslationSuggestion{
		Text:         data.ResponseBody.TranslatedText,
		Match:        data.ResponseBody.Match,
		Reliable:     data.ResponseBody.Match >= 0.8,
		Alternatives: alternatives,
	}, nil
}
