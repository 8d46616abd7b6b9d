// Package highlight turns the labeled offset ranges returned by the
// detection API into an ordered, gap-free sequence of display segments
// over the submitted text.
package highlight

import "sort"

// Label classifies a portion of submitted text.
type Label string

const (
	LabelAI         Label = "ai"
	LabelAIAssisted Label = "ai_assisted"
	LabelHuman      Label = "human"
	// LabelUnlabeled covers text no span claimed.
	LabelUnlabeled Label = "unlabeled"
)

// Span is a labeled half-open range [Start, End) over the submitted text.
// Offsets are Unicode code-point indices, not bytes. Spans may arrive
// unordered, overlapping, or out of range.
type Span struct {
	Start      int
	End        int
	Label      Label
	Confidence float64
}

// Segment is a contiguous slice of the submitted text carrying exactly one
// label. The segments returned by Annotate partition the text: concatenating
// their Text fields in order reproduces the input exactly.
type Segment struct {
	Start      int     `json:"start"`
	End        int     `json:"end"`
	Text       string  `json:"text"`
	Label      Label   `json:"label"`
	Confidence float64 `json:"confidence,omitempty"`
}

// Annotate resolves spans into an ordered, non-overlapping, gap-free segment
// sequence covering the whole text. Spans are sorted by (start, end); where
// two spans contest a range the earlier-sorted span wins it. Spans with
// negative, reversed, or out-of-bounds offsets are dropped. Unclaimed text
// becomes unlabeled segments. Adjacent segments with the same label are
// merged.
func Annotate(text string, spans []Span) []Segment {
	runes := []rune(text)
	n := len(runes)
	if n == 0 {
		return nil
	}

	valid := make([]Span, 0, len(spans))
	for _, s := range spans {
		if s.Start < 0 || s.End > n || s.Start >= s.End {
			continue
		}
		if s.Label == "" {
			continue
		}
		valid = append(valid, s)
	}
	sort.SliceStable(valid, func(i, j int) bool {
		if valid[i].Start != valid[j].Start {
			return valid[i].Start < valid[j].Start
		}
		return valid[i].End < valid[j].End
	})

	// First-claim-wins at code-point granularity: a span only gets the
	// positions no earlier-sorted span claimed.
	labels := make([]Label, n)
	confs := make([]float64, n)
	for _, s := range valid {
		for i := s.Start; i < s.End; i++ {
			if labels[i] == "" {
				labels[i] = s.Label
				confs[i] = s.Confidence
			}
		}
	}

	var segs []Segment
	start := 0
	for i := 1; i <= n; i++ {
		if i < n && labels[i] == labels[start] {
			continue
		}
		label := labels[start]
		conf := confs[start]
		if label == "" {
			label = LabelUnlabeled
			conf = 0
		}
		segs = append(segs, Segment{
			Start:      start,
			End:        i,
			Text:       string(runes[start:i]),
			Label:      label,
			Confidence: conf,
		})
		start = i
	}
	return segs
}

// ParseLabel maps the label strings used by the detection API onto the fixed
// label set. Unknown labels fall back to unlabeled so a new API label never
// breaks rendering.
func ParseLabel(raw string) Label {
	switch raw {
	case "ai", "AI", "likely_ai", "Likely AI":
		return LabelAI
	case "ai_assisted", "AI-Assisted", "mixed", "Mixed":
		return LabelAIAssisted
	case "human", "Human", "likely_human", "Likely Human":
		return LabelHuman
	default:
		return LabelUnlabeled
	}
}
