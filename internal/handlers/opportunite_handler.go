package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/angeroddy/sceno-app-sub001/internal/middleware"
	"github.com/angeroddy/sceno-app-sub001/internal/services"
	"github.com/angeroddy/sceno-app-sub001/pkg/apperrors"
)

type OpportuniteHandler struct {
	*BaseHandler
	opportunites *services.OpportuniteService
}

func NewOpportuniteHandler(base *BaseHandler, opportunites *services.OpportuniteService) *OpportuniteHandler {
	return &OpportuniteHandler{
		BaseHandler:  base,
		opportunites: opportunites,
	}
}

// ListPubliques handles GET /opportunites (no auth, validated only).
func (h *OpportuniteHandler) ListPubliques(c *gin.Context) {
	list, err := h.opportunites.ListPubliques(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "opportunites": list})
}

// Get handles GET /opportunites/:opportuniteId.
func (h *OpportuniteHandler) Get(c *gin.Context) {
	o, err := h.opportunites.Get(c.Request.Context(), c.Param("opportuniteId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "opportunite": o})
}

// Create handles POST /annonceur/opportunites.
func (h *OpportuniteHandler) Create(c *gin.Context) {
	p := middleware.GetPrincipal(c)
	if p == nil || p.Annonceur == nil {
		apperrors.HandleError(c, apperrors.NewForbiddenError("Profil annonceur requis"))
		return
	}

	var req services.CreateOpportuniteRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	o, err := h.opportunites.Create(c.Request.Context(), p.Annonceur.ID, req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "opportunite": o})
}

// ListMine handles GET /annonceur/opportunites.
func (h *OpportuniteHandler) ListMine(c *gin.Context) {
	p := middleware.GetPrincipal(c)
	if p == nil || p.Annonceur == nil {
		apperrors.HandleError(c, apperrors.NewForbiddenError("Profil annonceur requis"))
		return
	}

	list, err := h.opportunites.ListParAnnonceur(c.Request.Context(), p.Annonceur.ID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "opportunites": list})
}

// Delete handles DELETE /annonceur/opportunites/:opportuniteId. Only an
// opportunity still awaiting moderation can go.
func (h *OpportuniteHandler) Delete(c *gin.Context) {
	p := middleware.GetPrincipal(c)
	if p == nil || p.Annonceur == nil {
		apperrors.HandleError(c, apperrors.NewForbiddenError("Profil annonceur requis"))
		return
	}

	if err := h.opportunites.Delete(c.Request.Context(), p.Annonceur.ID, c.Param("opportuniteId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
