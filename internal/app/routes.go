package app

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nightmare-ai/core/internal/middleware"
	"github.com/nightmare-ai/core/internal/modules/artwork"
	"github.com/nightmare-ai/core/internal/modules/checkout"
	"github.com/nightmare-ai/core/internal/modules/reading"
	"github.com/nightmare-ai/core/internal/modules/web"
	"github.com/nightmare-ai/core/internal/pkg/response"
)

func (a *App) registerRoutes() error {
	r := a.router

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c)
	})
	r.NoMethod(func(c *gin.Context) {
		response.MethodNotAllowed(c)
	})

	appInfo := gin.H{
		"name":    "nightmare-core",
		"version": "1.0.0",
	}

	// Browser screens
	webHandler, err := web.NewHandler(a.cfg, a.logger)
	if err != nil {
		return err
	}
	webHandler.RegisterRoutes(r)

	// JSON API
	api := r.Group("/api")
	api.Use(middleware.RateLimit())
	api.GET("", func(c *gin.Context) { c.PureJSON(http.StatusOK, appInfo) })
	api.GET("/ping", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"data": "pong"}) })
	api.GET("/uptime", func(c *gin.Context) {
		uptimeMs := time.Since(processStart).Milliseconds()
		c.JSON(http.StatusOK, gin.H{
			"timestamp": uptimeMs,
			"humanize":  humanizeDuration(time.Duration(uptimeMs) * time.Millisecond),
		})
	})

	readingSvc := reading.NewService(a.cfg, a.logger)
	reading.NewHandler(readingSvc, a.cfg, a.logger).RegisterRoutes(api)

	artworkSvc := artwork.NewService(a.cfg, a.logger)
	artwork.NewHandler(artworkSvc, a.logger).RegisterRoutes(api)

	checkoutSvc := checkout.NewService(a.cfg, a.logger)
	checkout.NewHandler(checkoutSvc, a.logger).RegisterRoutes(api)

	return nil
}

var processStart = time.Now()

func humanizeDuration(d time.Duration) string {
	if d < time.Minute {
		return d.Truncate(time.Second).String()
	}
	if d < time.Hour {
		return d.Truncate(time.Minute).String()
	}
	if d < 24*time.Hour {
		return d.Truncate(time.Hour).String()
	}
	return d.Truncate(24 * time.Hour).String()
}
