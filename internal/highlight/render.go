package highlight

import (
	"fmt"
	"html/template"
	"strings"
)

// cssClass maps each label to the stylesheet class used by the web templates.
var cssClass = map[Label]string{
	LabelAI:         "seg-ai",
	LabelAIAssisted: "seg-ai-assisted",
	LabelHuman:      "seg-human",
	LabelUnlabeled:  "seg-unlabeled",
}

// displayName maps each label to its tooltip text.
var displayName = map[Label]string{
	LabelAI:         "AI",
	LabelAIAssisted: "AI-Assisted",
	LabelHuman:      "Human",
	LabelUnlabeled:  "Unclassified",
}

// HTML renders segments as a sequence of <span> elements with per-label CSS
// classes and a tooltip carrying the label and confidence. Segment text is
// escaped; the only markup in the output is the span wrappers themselves.
func HTML(segments []Segment) template.HTML {
	var b strings.Builder
	for _, seg := range segments {
		class := cssClass[seg.Label]
		if class == "" {
			class = cssClass[LabelUnlabeled]
		}
		b.WriteString(`<span class="`)
		b.WriteString(class)
		b.WriteString(`" title="`)
		b.WriteString(template.HTMLEscapeString(tooltip(seg)))
		b.WriteString(`">`)
		b.WriteString(template.HTMLEscapeString(seg.Text))
		b.WriteString(`</span>`)
	}
	return template.HTML(b.String())
}

func tooltip(seg Segment) string {
	name := displayName[seg.Label]
	if name == "" {
		name = displayName[LabelUnlabeled]
	}
	if seg.Label == LabelUnlabeled || seg.Confidence <= 0 {
		return name
	}
	return fmt.Sprintf("%s (%.0f%% confidence)", name, seg.Confidence*100)
}
