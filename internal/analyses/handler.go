package analyses

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrexodia/pangram-webui/internal/export"
	"github.com/mrexodia/pangram-webui/internal/server/respond"
)

// maxTextBytes caps a single submission. The external API bills per word;
// rejecting oversized bodies early avoids accidental multi-dollar requests.
const maxTextBytes = 1 << 20

// Handler wires HTTP handlers to the analyses service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches the JSON API routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/analyses", h.createAnalysis)
	rg.GET("/analyses", h.listAnalyses)
	rg.GET("/analyses/:id", h.getAnalysis)
	rg.DELETE("/analyses/:id", h.deleteAnalysis)
	rg.GET("/search", h.searchAnalyses)
	rg.GET("/stats", h.stats)
	rg.GET("/export", h.exportHistory)
}

type createRequest struct {
	Text string `json:"text"`
}

func (h *Handler) createAnalysis(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "request body must be JSON with a text field", nil)
		return
	}
	if len(req.Text) > maxTextBytes {
		respond.Error(c, http.StatusRequestEntityTooLarge, "validation_error", "text too large", nil)
		return
	}

	view, err := h.Svc.Analyze(c.Request.Context(), req.Text)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyText):
			respond.Error(c, http.StatusBadRequest, "validation_error", "text is required", nil)
		default:
			respond.Error(c, http.StatusBadGateway, "detection_failed", "failed to analyze text", nil)
		}
		return
	}
	c.Set("analysisId", view.Analysis.ID)

	respond.JSON(c, http.StatusCreated, viewPayload(view))
}

func (h *Handler) getAnalysis(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	view, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "analysis not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch analysis", nil)
		}
		return
	}
	respond.OK(c, viewPayload(view))
}

func (h *Handler) listAnalyses(c *gin.Context) {
	limit := queryInt(c, "limit", 20)
	offset := queryInt(c, "offset", 0)

	items, err := h.Svc.List(c.Request.Context(), limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list analyses", nil)
		return
	}
	respond.OK(c, listPayload(items))
}

func (h *Handler) searchAnalyses(c *gin.Context) {
	query := c.Query("q")
	if strings.TrimSpace(query) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "q is required", nil)
		return
	}
	items, err := h.Svc.Search(c.Request.Context(), query, queryInt(c, "limit", 20))
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "search failed", nil)
		return
	}
	respond.OK(c, listPayload(items))
}

func (h *Handler) deleteAnalysis(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	deleted, err := h.Svc.Delete(c.Request.Context(), id)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to delete analysis", nil)
		return
	}
	if !deleted {
		respond.Error(c, http.StatusNotFound, "not_found", "analysis not found", nil)
		return
	}
	respond.OK(c, gin.H{"deleted": true, "id": id})
}

func (h *Handler) stats(c *gin.Context) {
	stats, err := h.Svc.Stats(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to compute stats", nil)
		return
	}
	respond.OK(c, stats)
}

func (h *Handler) exportHistory(c *gin.Context) {
	items, err := h.Svc.Export(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to export history", nil)
		return
	}

	stamp := time.Now().UTC().Format("20060102")
	switch c.DefaultQuery("format", "json") {
	case "json":
		var buf bytes.Buffer
		if err := export.WriteJSON(&buf, items); err != nil {
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to export history", nil)
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=pangram_history_%s.json", stamp))
		c.Data(http.StatusOK, "application/json", buf.Bytes())
	case "xlsx":
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=pangram_history_%s.xlsx", stamp))
		if err := export.WriteXLSX(c.Writer, items); err != nil {
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to export history", nil)
		}
	default:
		respond.Error(c, http.StatusBadRequest, "validation_error", "format must be json or xlsx", nil)
	}
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		respond.Error(c, http.StatusBadRequest, "validation_error", "id must be a positive integer", nil)
		return 0, false
	}
	return id, true
}

func queryInt(c *gin.Context, key string, def int) int {
	if v := c.Query(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			return parsed
		}
	}
	return def
}

func viewPayload(v View) gin.H {
	return gin.H{
		"id":                 v.Analysis.ID,
		"createdAt":          v.Analysis.CreatedAt,
		"text":               v.Analysis.Text,
		"wordCount":          v.Estimate.WordCount,
		"credits":            v.Estimate.Credits,
		"cost":               v.Estimate.Cost,
		"headline":           v.Analysis.Headline,
		"predictionShort":    v.Analysis.PredictionShort,
		"fractionAi":         v.Analysis.FractionAI,
		"fractionAiAssisted": v.Analysis.FractionAIAssisted,
		"fractionHuman":      v.Analysis.FractionHuman,
		"segments":           v.Segments,
	}
}

func listPayload(items []Analysis) []gin.H {
	out := make([]gin.H, 0, len(items))
	for _, a := range items {
		out = append(out, gin.H{
			"id":              a.ID,
			"createdAt":       a.CreatedAt,
			"wordCount":       a.WordCount,
			"credits":         a.Credits,
			"predictionShort": a.PredictionShort,
			"fractionAi":      a.FractionAI,
			"preview":         a.Preview(60),
		})
	}
	return out
}
