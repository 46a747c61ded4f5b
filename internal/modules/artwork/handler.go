package artwork

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/nightmare-ai/core/internal/middleware"
	"github.com/nightmare-ai/core/internal/pkg/response"
	"go.uber.org/zap"
)

type artworkService interface {
	GenerateImage(ctx context.Context, dream string) (string, error)
}

type Handler struct {
	svc    artworkService
	logger *zap.Logger
}

func NewHandler(svc artworkService, logger *zap.Logger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/image", h.generate)
}

type imageDTO struct {
	Dream string `json:"dream"`
}

// POST /api/image
func (h *Handler) generate(c *gin.Context) {
	var dto imageDTO
	if err := c.ShouldBindJSON(&dto); err != nil || strings.TrimSpace(dto.Dream) == "" {
		response.BadRequest(c, "Missing dream text.")
		return
	}

	b64, err := h.svc.GenerateImage(c.Request.Context(), dto.Dream)
	if err != nil {
		h.logger.Error("image generation failed", zap.String("request_id", middleware.RequestID(c)), zap.Error(err))
		response.InternalError(c, "Image generation failed.")
		return
	}

	c.Header("Cache-Control", "no-store")
	response.OK(c, gin.H{"b64": b64})
}
