package handlers

import (
	"crypto/subtle"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/angeroddy/sceno-app-sub001/internal/services"
	"github.com/angeroddy/sceno-app-sub001/pkg/apperrors"
)

// SweepHandler exposes the scheduled sweep as an HTTP trigger protected by a
// shared secret, so an external scheduler (or an operator) can run it.
type SweepHandler struct {
	*BaseHandler
	sweep  *services.SweepService
	secret string
}

func NewSweepHandler(base *BaseHandler, sweep *services.SweepService, secret string) *SweepHandler {
	return &SweepHandler{
		BaseHandler: base,
		sweep:       sweep,
		secret:      secret,
	}
}

// Run handles POST /cron/sweep.
func (h *SweepHandler) Run(c *gin.Context) {
	if h.secret == "" {
		apperrors.HandleError(c, apperrors.ConfigMissingError("sweep secret"))
		return
	}

	provided := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	if subtle.ConstantTimeCompare([]byte(provided), []byte(h.secret)) != 1 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid sweep secret"})
		return
	}

	report, err := h.sweep.Run(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, apperrors.PersistenceError(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":           true,
		"timestamp":         report.Timestamp.Format(time.RFC3339),
		"prevente_retirees": report.CompteDemotions(),
		"expirees":          report.CompteExpirees(),
	})
}
