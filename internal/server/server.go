// Package server builds the gin engine, routes, and embedded web assets.
package server

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrexodia/pangram-webui/internal/analyses"
	"github.com/mrexodia/pangram-webui/internal/config"
	"github.com/mrexodia/pangram-webui/internal/server/middleware"
	"github.com/mrexodia/pangram-webui/internal/server/respond"
)

//go:embed templates/*.html static/*.css
var assets embed.FS

// RouterDeps bundles everything NewRouter needs.
type RouterDeps struct {
	Config          config.Config
	AnalysisHandler *analyses.Handler
	WebHandler      *analyses.WebHandler
}

var funcMap = template.FuncMap{
	"pct": func(fraction float64) string {
		return fmt.Sprintf("%.1f", fraction*100)
	},
	"money": func(amount float64) string {
		return fmt.Sprintf("$%.2f", amount)
	},
	"datetime": func(t time.Time) string {
		return t.Local().Format("2006-01-02 15:04:05")
	},
}

// NewRouter builds the gin engine with middleware, templates, and routes.
func NewRouter(deps RouterDeps) *gin.Engine {
	if deps.Config.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	tmpl := template.Must(template.New("").Funcs(funcMap).ParseFS(assets, "templates/*.html"))
	engine.SetHTMLTemplate(tmpl)

	staticFiles, err := fs.Sub(assets, "static")
	if err == nil {
		engine.StaticFS("/static", http.FS(staticFiles))
	}

	engine.GET("/health", func(c *gin.Context) {
		respond.OK(c, gin.H{"status": "ok"})
	})

	if deps.AnalysisHandler != nil {
		api := engine.Group("/api/v1")
		deps.AnalysisHandler.RegisterRoutes(api)
	}
	if deps.WebHandler != nil {
		deps.WebHandler.RegisterRoutes(engine)
	}

	return engine
}

// Addr returns a normalized listen address for the given port.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return fmt.Sprintf(":%s", port)
}
