package analyses

import (
	"context"
	"strings"
	"time"

	"github.com/mrexodia/pangram-webui/internal/credits"
	"github.com/mrexodia/pangram-webui/internal/highlight"
	"github.com/mrexodia/pangram-webui/internal/pangram"
	"github.com/mrexodia/pangram-webui/internal/telemetry"
)

// DetectionClient is the outbound dependency on the detection API.
type DetectionClient interface {
	Detect(ctx context.Context, text string) (pangram.Detection, error)
}

// Service implements the analysis operations over a Repo and the detection
// client.
type Service struct {
	Repo      Repo
	Client    DetectionClient
	UnitPrice float64
}

// View is everything a render layer needs for one analysis: the stored
// record, the derived billing estimate, and the display segments.
type View struct {
	Analysis Analysis
	Estimate credits.Estimate
	Segments []highlight.Segment
}

// Analyze submits text to the detection API, persists the request/response
// pair, and returns the render-ready view.
func (s *Service) Analyze(ctx context.Context, text string) (View, error) {
	if strings.TrimSpace(text) == "" {
		return View{}, ErrEmptyText
	}
	if s.Client == nil {
		return View{}, ErrClientNotConfigured
	}

	est, err := credits.ForText(text, s.UnitPrice)
	if err != nil {
		return View{}, err
	}

	det, err := s.Client.Detect(ctx, text)
	if err != nil {
		return View{}, err
	}

	analysis := Analysis{
		CreatedAt:          time.Now().UTC(),
		Text:               text,
		WordCount:          est.WordCount,
		Credits:            est.Credits,
		Headline:           det.Response.Headline,
		PredictionShort:    det.Response.PredictionShort,
		FractionAI:         det.Response.FractionAI,
		FractionAIAssisted: det.Response.FractionAIAssisted,
		FractionHuman:      det.Response.FractionHuman,
		RequestJSON:        det.RawRequest,
		ResponseJSON:       det.RawResponse,
	}
	id, err := s.Repo.Create(ctx, analysis)
	if err != nil {
		return View{}, err
	}
	analysis.ID = id

	telemetry.Info("analysis.created", map[string]any{
		"analysis_id": id,
		"word_count":  est.WordCount,
		"credits":     est.Credits,
		"prediction":  det.Response.PredictionShort,
	})

	return View{
		Analysis: analysis,
		Estimate: est,
		Segments: highlight.Annotate(text, det.Response.Spans()),
	}, nil
}

// Get loads a stored analysis and replays its rendering from the persisted
// response payload. No API call is made; the segments are identical to the
// ones produced at submission time.
func (s *Service) Get(ctx context.Context, id int64) (View, error) {
	analysis, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return View{}, err
	}
	return s.view(analysis), nil
}

// List returns stored analyses newest first.
func (s *Service) List(ctx context.Context, limit, offset int) ([]Analysis, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.Repo.List(ctx, limit, offset)
}

// Search returns analyses whose text contains the query substring.
func (s *Service) Search(ctx context.Context, query string, limit int) ([]Analysis, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.Repo.Search(ctx, query, limit)
}

// Export returns the full history newest first.
func (s *Service) Export(ctx context.Context) ([]Analysis, error) {
	return s.Repo.ListAll(ctx)
}

// Delete removes an analysis. It reports whether the record existed.
func (s *Service) Delete(ctx context.Context, id int64) (bool, error) {
	deleted, err := s.Repo.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if deleted {
		telemetry.Info("analysis.deleted", map[string]any{"analysis_id": id})
	}
	return deleted, nil
}

// Stats aggregates the history and prices the accumulated credits.
func (s *Service) Stats(ctx context.Context) (Stats, error) {
	stats, err := s.Repo.Stats(ctx)
	if err != nil {
		return Stats{}, err
	}
	unitPrice := s.UnitPrice
	if unitPrice <= 0 {
		unitPrice = credits.DefaultUnitPrice
	}
	stats.TotalCost = float64(stats.TotalCredits) * unitPrice
	return stats, nil
}

// view derives the render view from a stored record. A response payload that
// no longer parses degrades to an unlabeled rendering rather than an error.
func (s *Service) view(analysis Analysis) View {
	unitPrice := s.UnitPrice
	if unitPrice <= 0 {
		unitPrice = credits.DefaultUnitPrice
	}
	v := View{
		Analysis: analysis,
		Estimate: credits.Estimate{
			WordCount: analysis.WordCount,
			Credits:   analysis.Credits,
			Cost:      float64(analysis.Credits) * unitPrice,
		},
	}
	resp, err := pangram.ParseResponse(analysis.ResponseJSON)
	if err != nil {
		telemetry.Error("analysis.replay_parse_failed", map[string]any{
			"analysis_id": analysis.ID,
			"error":       err.Error(),
		})
		v.Segments = highlight.Annotate(analysis.Text, nil)
		return v
	}
	v.Segments = highlight.Annotate(analysis.Text, resp.Spans())
	return v
}
