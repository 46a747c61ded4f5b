package checkout

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/nightmare-ai/core/internal/middleware"
	"github.com/nightmare-ai/core/internal/pkg/response"
	"go.uber.org/zap"
)

type checkoutService interface {
	Create(ctx context.Context, dream string) (string, error)
	Verify(ctx context.Context, sessionID string) (VerifyResult, error)
}

type Handler struct {
	svc    checkoutService
	logger *zap.Logger
}

func NewHandler(svc checkoutService, logger *zap.Logger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/payment", h.create)
	rg.GET("/payment", h.verify)
	rg.GET("/verify", h.verifyPaidOnly)
}

// POST /api/payment: create a hosted checkout session.
func (h *Handler) create(c *gin.Context) {
	var dto dreamDTO
	if err := c.ShouldBindJSON(&dto); err != nil || strings.TrimSpace(dto.Dream) == "" {
		response.BadRequest(c, "No dream provided")
		return
	}

	url, err := h.svc.Create(c.Request.Context(), dto.Dream)
	if err != nil {
		h.logger.Error("checkout session creation failed", zap.String("request_id", middleware.RequestID(c)), zap.Error(err))
		response.InternalError(c, "Stripe session creation failed")
		return
	}

	response.OK(c, createResponse{URL: url})
}

// GET /api/payment?session_id=: full verification with attached dream.
func (h *Handler) verify(c *gin.Context) {
	sessionID := c.Query("session_id")
	if sessionID == "" {
		response.BadRequest(c, "Missing session_id")
		return
	}

	result, err := h.svc.Verify(c.Request.Context(), sessionID)
	if err != nil {
		h.logger.Error("checkout verification failed", zap.String("request_id", middleware.RequestID(c)), zap.Error(err), zap.String("session_id", sessionID))
		response.InternalError(c, "Verify failed")
		return
	}

	response.OK(c, verifyResponse{
		Paid:        result.Paid,
		Dream:       result.Dream,
		Currency:    result.Currency,
		AmountTotal: result.AmountTotal,
	})
}

// GET /api/verify?session_id=: paid flag only, never errors to the client.
func (h *Handler) verifyPaidOnly(c *gin.Context) {
	sessionID := c.Query("session_id")
	if sessionID == "" {
		response.OK(c, paidOnlyResponse{Paid: false})
		return
	}

	result, err := h.svc.Verify(c.Request.Context(), sessionID)
	if err != nil {
		h.logger.Warn("paid-only verification failed", zap.String("request_id", middleware.RequestID(c)), zap.Error(err), zap.String("session_id", sessionID))
		response.OK(c, paidOnlyResponse{Paid: false})
		return
	}

	response.OK(c, paidOnlyResponse{Paid: result.Paid})
}
