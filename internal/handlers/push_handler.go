package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/thierrygoms/barberapp-server/internal/httperr"
	"github.com/thierrygoms/barberapp-server/internal/infra/repository"
	"github.com/thierrygoms/barberapp-server/internal/middleware"
	"github.com/thierrygoms/barberapp-server/internal/notify"
)

type PushHandler struct {
	tokens *repository.PushTokenGormRepository
}

func NewPushHandler(tokens *repository.PushTokenGormRepository) *PushHandler {
	return &PushHandler{tokens: tokens}
}

type RegisterTokenRequest struct {
	Token string `json:"token" binding:"required"`
}

// RegisterToken stores the device's Expo push token. Called on every app
// start, so the write is an upsert.
func (h *PushHandler) RegisterToken(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uuid.UUID)

	var req RegisterTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if err := notify.ValidateToken(req.Token); err != nil {
		httperr.BadRequest(c, "invalid_push_token", "Token de notificação inválido.")
		return
	}

	if err := h.tokens.Upsert(c.Request.Context(), userID, req.Token); err != nil {
		httperr.Internal(c, "failed_to_register_token", "Erro ao registrar o token.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"registered": true})
}
