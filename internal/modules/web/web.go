// Package web serves the browser screens: capture, payment-pending portal,
// reveal, and the static success fallback.
package web

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nightmare-ai/core/internal/config"
	"go.uber.org/zap"
)

//go:embed templates/*.html
var templateFS embed.FS

type Handler struct {
	cfg    *config.AppConfig
	logger *zap.Logger
	tmpl   *template.Template
}

func NewHandler(cfg *config.AppConfig, logger *zap.Logger) (*Handler, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Handler{cfg: cfg, logger: logger, tmpl: tmpl}, nil
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/", h.capture)
	r.GET("/portal", h.portal)
	r.GET("/reveal", h.reveal)
	r.GET("/success", h.success)
}

type pageData struct {
	SiteURL   string
	FreeLimit int
}

func (h *Handler) render(c *gin.Context, name string) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	data := pageData{SiteURL: h.cfg.SiteURL, FreeLimit: h.cfg.FreeDailyLimit}
	if err := h.tmpl.ExecuteTemplate(c.Writer, name, data); err != nil {
		h.logger.Error("render failed", zap.String("template", name), zap.Error(err))
		c.Status(http.StatusInternalServerError)
	}
}

func (h *Handler) capture(c *gin.Context) { h.render(c, "index.html") }
func (h *Handler) portal(c *gin.Context)  { h.render(c, "portal.html") }
func (h *Handler) reveal(c *gin.Context)  { h.render(c, "reveal.html") }
func (h *Handler) success(c *gin.Context) { h.render(c, "success.html") }
