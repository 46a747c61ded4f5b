package reading

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/nightmare-ai/core/internal/config"
	"github.com/nightmare-ai/core/internal/middleware"
	"github.com/nightmare-ai/core/internal/modules/quota"
	"github.com/nightmare-ai/core/internal/pkg/response"
	"go.uber.org/zap"
)

type readingService interface {
	ShortReading(ctx context.Context, dream string) (string, error)
	DeepReading(ctx context.Context, dream string) (string, Sections, error)
}

type Handler struct {
	svc    readingService
	cfg    *config.AppConfig
	logger *zap.Logger
}

func NewHandler(svc readingService, cfg *config.AppConfig, logger *zap.Logger) *Handler {
	return &Handler{svc: svc, cfg: cfg, logger: logger}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/interpret", h.interpret)
	rg.POST("/deep-interpret", h.deepInterpret)
}

// POST /api/interpret: free short reading, gated by the daily cookie counter.
func (h *Handler) interpret(c *gin.Context) {
	var dto dreamDTO
	if err := c.ShouldBindJSON(&dto); err != nil || strings.TrimSpace(dto.Dream) == "" {
		response.BadRequest(c, "No dream provided")
		return
	}

	rec := quota.Read(c)
	if quota.FreeLeft(rec.Count, h.cfg.FreeDailyLimit) <= 0 {
		response.TooManyRequests(c, "That’s all for today. Come back tomorrow.")
		return
	}

	text, err := h.svc.ShortReading(c.Request.Context(), dto.Dream)
	if err != nil {
		h.logger.Error("short reading failed", zap.String("request_id", middleware.RequestID(c)), zap.Error(err))
		response.InternalError(c, "AI request failed")
		return
	}

	quota.Write(c, rec.Count+1)
	response.OK(c, shortReadingResponse{Text: text})
}

// POST /api/deep-interpret: full reading; payment is verified by the reveal
// screen before it calls here, the endpoint itself only validates input.
func (h *Handler) deepInterpret(c *gin.Context) {
	var dto dreamDTO
	if err := c.ShouldBindJSON(&dto); err != nil || strings.TrimSpace(dto.Dream) == "" {
		response.BadRequest(c, "No dream provided")
		return
	}

	text, sections, err := h.svc.DeepReading(c.Request.Context(), dto.Dream)
	if err != nil {
		h.logger.Error("deep reading failed", zap.String("request_id", middleware.RequestID(c)), zap.Error(err))
		response.InternalError(c, "AI request failed")
		return
	}

	response.OK(c, deepReadingResponse{Text: text, Sections: sections})
}
