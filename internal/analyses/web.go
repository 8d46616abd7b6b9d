package analyses

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mrexodia/pangram-webui/internal/extract"
	"github.com/mrexodia/pangram-webui/internal/highlight"
)

// WebHandler serves the server-rendered dashboard pages.
type WebHandler struct {
	Svc *Service
}

// NewWebHandler constructs a WebHandler.
func NewWebHandler(svc *Service) *WebHandler {
	return &WebHandler{Svc: svc}
}

// RegisterRoutes attaches the HTML routes to the engine root.
func (h *WebHandler) RegisterRoutes(r *gin.Engine) {
	r.GET("/", h.index)
	r.POST("/analyze", h.analyze)
	r.GET("/history", h.history)
	r.GET("/history/:id", h.detail)
}

func (h *WebHandler) index(c *gin.Context) {
	h.renderIndex(c, "")
}

func (h *WebHandler) renderIndex(c *gin.Context, errMsg string) {
	ctx := c.Request.Context()
	recent, err := h.Svc.List(ctx, 10, 0)
	if err != nil {
		recent = nil
	}
	stats, err := h.Svc.Stats(ctx)
	if err != nil {
		stats = Stats{}
	}
	status := http.StatusOK
	if errMsg != "" {
		status = http.StatusBadRequest
	}
	c.HTML(status, "index.html", gin.H{
		"Recent": recent,
		"Stats":  stats,
		"Error":  errMsg,
	})
}

func (h *WebHandler) analyze(c *gin.Context) {
	text, err := submittedText(c)
	if err != nil {
		h.renderIndex(c, err.Error())
		return
	}

	view, err := h.Svc.Analyze(c.Request.Context(), text)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyText):
			h.renderIndex(c, "Paste some text or upload a file first.")
		default:
			h.renderIndex(c, "Analysis failed: "+err.Error())
		}
		return
	}
	c.Set("analysisId", view.Analysis.ID)

	h.renderResult(c, view, false)
}

func (h *WebHandler) detail(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.HTML(http.StatusBadRequest, "error.html", gin.H{"Message": "Invalid analysis id."})
		return
	}
	view, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.HTML(http.StatusNotFound, "error.html", gin.H{"Message": fmt.Sprintf("Analysis %d not found.", id)})
			return
		}
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"Message": "Failed to load analysis."})
		return
	}
	h.renderResult(c, view, true)
}

func (h *WebHandler) renderResult(c *gin.Context, view View, replay bool) {
	c.HTML(http.StatusOK, "result.html", gin.H{
		"Analysis":    view.Analysis,
		"Estimate":    view.Estimate,
		"Highlighted": highlight.HTML(view.Segments),
		"Replay":      replay,
	})
}

func (h *WebHandler) history(c *gin.Context) {
	ctx := c.Request.Context()
	query := c.Query("q")

	var items []Analysis
	var err error
	if query != "" {
		items, err = h.Svc.Search(ctx, query, 50)
	} else {
		items, err = h.Svc.List(ctx, 50, 0)
	}
	if err != nil {
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"Message": "Failed to load history."})
		return
	}
	c.HTML(http.StatusOK, "history.html", gin.H{
		"Items": items,
		"Query": query,
	})
}

// submittedText returns the text to analyze from either the textarea or an
// uploaded file. The upload wins when both are present.
func submittedText(c *gin.Context) (string, error) {
	file, err := c.FormFile("file")
	if err != nil || file == nil {
		return c.PostForm("text"), nil
	}
	if file.Size > maxTextBytes {
		return "", fmt.Errorf("file %s is too large", file.Filename)
	}
	f, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()
	data, err := io.ReadAll(io.LimitReader(f, maxTextBytes+1))
	if err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}
	if len(data) > maxTextBytes {
		return "", fmt.Errorf("file %s is too large", file.Filename)
	}
	return extract.FromUpload(file.Filename, data)
}
