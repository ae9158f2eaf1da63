package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"finsight/config"
	"finsight/models"
	ai "finsight/services/intelligence"
	"finsight/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ChatHandler serves the permission-scoped financial chat endpoint.
type ChatHandler struct {
	Assistant ai.AssistantService
}

// NewChatHandler returns a ChatHandler backed by the given assistant.
func NewChatHandler(svc ai.AssistantService) *ChatHandler {
	return &ChatHandler{Assistant: svc}
}

// HandleChat handles POST /api/chat.
func (h *ChatHandler) HandleChat(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid chat request", zap.Error(err), zap.String("requestID", c.GetString("requestID")))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	// The generation call is the only blocking operation, so the deadline
	// wraps just that path.
	timeout := time.Duration(config.AppConfig.ProviderTimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
	defer cancel()

	answer, err := h.Assistant.Answer(ctx, req.Query, req.Permissions)
	if err != nil {
		var invalidErr *ai.InvalidRequestError
		if errors.As(err, &invalidErr) {
			logger.Warn("Rejected chat request", zap.String("reason", invalidErr.Message))
			c.JSON(http.StatusBadRequest, gin.H{"error": invalidErr.Message})
			return
		}
		logger.Error("Chat generation failed", zap.Error(err), zap.String("requestID", c.GetString("requestID")))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate a response"})
		return
	}

	c.JSON(http.StatusOK, models.ChatResponse{Response: answer})
}
