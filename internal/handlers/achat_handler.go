package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/angeroddy/sceno-app-sub001/internal/middleware"
	"github.com/angeroddy/sceno-app-sub001/internal/services"
	"github.com/angeroddy/sceno-app-sub001/pkg/apperrors"
)

type AchatHandler struct {
	*BaseHandler
	achats *services.AchatService
}

func NewAchatHandler(base *BaseHandler, achats *services.AchatService) *AchatHandler {
	return &AchatHandler{BaseHandler: base, achats: achats}
}

func comedienID(c *gin.Context) (string, bool) {
	p := middleware.GetPrincipal(c)
	if p == nil || p.Comedien == nil {
		apperrors.HandleError(c, apperrors.NewForbiddenError("Profil comédien requis"))
		return "", false
	}
	return p.Comedien.ID, true
}

// Acheter handles POST /dashboard/opportunites/:opportuniteId/achats.
func (h *AchatHandler) Acheter(c *gin.Context) {
	id, ok := comedienID(c)
	if !ok {
		return
	}

	achat, err := h.achats.Acheter(c.Request.Context(), id, c.Param("opportuniteId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "achat": achat})
}

// ListMine handles GET /dashboard/achats.
func (h *AchatHandler) ListMine(c *gin.Context) {
	id, ok := comedienID(c)
	if !ok {
		return
	}

	list, err := h.achats.ListParComedien(c.Request.Context(), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "achats": list})
}
