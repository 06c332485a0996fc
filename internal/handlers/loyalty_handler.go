package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/thierrygoms/barberapp-server/internal/httperr"
	"github.com/thierrygoms/barberapp-server/internal/loyalty"
	"github.com/thierrygoms/barberapp-server/internal/middleware"
)

type LoyaltyHandler struct {
	svc *loyalty.Service
}

func NewLoyaltyHandler(svc *loyalty.Service) *LoyaltyHandler {
	return &LoyaltyHandler{svc: svc}
}

// Status returns the fidelity card: completed cuts since the last redeem
// and whether the free-cut prompt should show.
func (h *LoyaltyHandler) Status(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uuid.UUID)

	status, err := h.svc.Evaluate(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "failed_to_evaluate_loyalty", "Erro ao consultar fidelidade.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"loyalty": status})
}

func (h *LoyaltyHandler) Redeem(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uuid.UUID)

	status, err := h.svc.Redeem(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "failed_to_redeem_loyalty", "Erro ao resgatar recompensa.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"loyalty": status})
}
