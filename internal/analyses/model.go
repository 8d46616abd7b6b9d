package analyses

import (
	"time"

	"github.com/mrexodia/pangram-webui/internal/analyses/model"
)

// Analysis is one submitted text with the detection API's verdict.
//
// The definition lives in the model subpackage so that leaf packages
// (export) can use it without importing this package; the alias keeps
// analyses.Analysis the same type everywhere.
type Analysis = model.Analysis

// Stats aggregates the whole history.
type Stats struct {
	TotalAnalyses int64      `json:"totalAnalyses"`
	TotalWords    int64      `json:"totalWords"`
	TotalCredits  int64      `json:"totalCredits"`
	TotalCost     float64    `json:"totalCost"`
	FirstAnalysis *time.Time `json:"firstAnalysis,omitempty"`
	LastAnalysis  *time.Time `json:"lastAnalysis,omitempty"`
}
