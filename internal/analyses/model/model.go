// Package model holds the analyses domain types that leaf packages such as
// export depend on without importing the full analyses package.
package model

import (
	"encoding/json"
	"time"
)

// Analysis is one submitted text with the detection API's verdict.
//
// Text is stored verbatim and never re-normalized: the offsets inside
// ResponseJSON are only valid against the exact original character sequence.
type Analysis struct {
	ID                 int64           `json:"id"`
	CreatedAt          time.Time       `json:"createdAt"`
	Text               string          `json:"text"`
	WordCount          int             `json:"wordCount"`
	Credits            int             `json:"credits"`
	Headline           string          `json:"headline,omitempty"`
	PredictionShort    string          `json:"predictionShort"`
	FractionAI         float64         `json:"fractionAi"`
	FractionAIAssisted float64         `json:"fractionAiAssisted"`
	FractionHuman      float64         `json:"fractionHuman"`
	RequestJSON        json.RawMessage `json:"request,omitempty"`
	ResponseJSON       json.RawMessage `json:"response,omitempty"`
}

// Preview returns the first n code points of the text with newlines
// flattened, for list views.
func (a Analysis) Preview(n int) string {
	runes := []rune(a.Text)
	truncated := false
	if len(runes) > n {
		runes = runes[:n]
		truncated = true
	}
	for i, r := range runes {
		if r == '\n' || r == '\r' || r == '\t' {
			runes[i] = ' '
		}
	}
	if truncated {
		return string(runes) + "..."
	}
	return string(runes)
}
