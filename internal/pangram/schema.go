package pangram

import (
	"encoding/json"
	"fmt"

	"github.com/mrexodia/pangram-webui/internal/highlight"
)

// DetectionSegment is one labeled window of the analyzed text. Offsets are
// code-point indices into the submitted text. The API does not guarantee
// segments are ordered or non-overlapping; pointer offsets let us tell a
// missing field apart from zero and drop the segment instead of mislabeling
// the start of the text.
type DetectionSegment struct {
	StartIndex *int    `json:"start_index"`
	EndIndex   *int    `json:"end_index"`
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
}

// DetectionResponse is the subset of the API response the application reads.
// Unknown fields are tolerated; the full payload is persisted separately as
// response_json.
type DetectionResponse struct {
	Prediction         string             `json:"prediction"`
	PredictionShort    string             `json:"prediction_short"`
	Headline           string             `json:"headline"`
	AILikelihood       float64            `json:"ai_likelihood"`
	FractionAI         float64            `json:"fraction_ai"`
	FractionAIAssisted float64            `json:"fraction_ai_assisted"`
	FractionHuman      float64            `json:"fraction_human"`
	Segments           []DetectionSegment `json:"segments"`
}

// ParseResponse decodes a raw API payload and validates the required fields.
func ParseResponse(raw []byte) (DetectionResponse, error) {
	var resp DetectionResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return DetectionResponse{}, fmt.Errorf("decode detection response: %w", err)
	}
	if resp.PredictionShort == "" {
		return DetectionResponse{}, fmt.Errorf("detection response missing prediction_short")
	}
	return resp, nil
}

// Spans converts the response segments into annotator spans. Segments with
// missing offsets are dropped here; out-of-range offsets are left for the
// annotator, which validates them against the actual text length.
func (r DetectionResponse) Spans() []highlight.Span {
	spans := make([]highlight.Span, 0, len(r.Segments))
	for _, seg := range r.Segments {
		if seg.StartIndex == nil || seg.EndIndex == nil {
			continue
		}
		spans = append(spans, highlight.Span{
			Start:      *seg.StartIndex,
			End:        *seg.EndIndex,
			Label:      highlight.ParseLabel(seg.Label),
			Confidence: seg.Confidence,
		})
	}
	return spans
}
