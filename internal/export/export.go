// Package export writes the analysis history to portable formats.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/mrexodia/pangram-webui/internal/analyses/model"
)

// record is the JSON export shape, matching the columns of the analyses table
// with the raw request/response payloads embedded as objects.
type record struct {
	ID        int64           `json:"id"`
	CreatedAt time.Time       `json:"created_at"`
	Text      string          `json:"text"`
	WordCount int             `json:"word_count"`
	Credits   int             `json:"credits"`
	Request   json.RawMessage `json:"request"`
	Response  json.RawMessage `json:"response"`
}

// WriteJSON writes the full history as an indented JSON array.
func WriteJSON(w io.Writer, items []model.Analysis) error {
	records := make([]record, 0, len(items))
	for _, a := range items {
		records = append(records, record{
			ID:        a.ID,
			CreatedAt: a.CreatedAt,
			Text:      a.Text,
			WordCount: a.WordCount,
			Credits:   a.Credits,
			Request:   rawOrNull(a.RequestJSON),
			Response:  rawOrNull(a.ResponseJSON),
		})
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal export: %w", err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	return nil
}

func rawOrNull(raw json.RawMessage) json.RawMessage {
	if len(raw) == 0 || !json.Valid(raw) {
		return json.RawMessage("null")
	}
	return raw
}
