package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/angeroddy/sceno-app-sub001/internal/middleware"
	"github.com/angeroddy/sceno-app-sub001/internal/services"
)

type ModerationHandler struct {
	*BaseHandler
	moderation   *services.ModerationService
	opportunites *services.OpportuniteService
}

func NewModerationHandler(base *BaseHandler, moderation *services.ModerationService, opportunites *services.OpportuniteService) *ModerationHandler {
	return &ModerationHandler{
		BaseHandler:  base,
		moderation:   moderation,
		opportunites: opportunites,
	}
}

// adminID returns the admin profile id behind the request. The admin
// middleware guarantees the principal is present and has one.
func adminID(c *gin.Context) string {
	p := middleware.GetPrincipal(c)
	if p == nil || p.Admin == nil {
		return ""
	}
	return p.Admin.ID
}

// DecideOpportunite handles POST /admin/moderation/opportunites.
func (h *ModerationHandler) DecideOpportunite(c *gin.Context) {
	var req services.DecisionOpportuniteRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	result, err := h.moderation.DecideOpportunite(c.Request.Context(), adminID(c), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	message := "Opportunité validée"
	if req.Action == services.ActionRefuser {
		message = "Opportunité refusée"
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"message":     message,
		"opportunite": result.Opportunite,
	})
}

// DecideAnnonceur handles POST /admin/moderation/annonceurs.
func (h *ModerationHandler) DecideAnnonceur(c *gin.Context) {
	var req services.DecisionAnnonceurRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	result, err := h.moderation.DecideAnnonceur(c.Request.Context(), adminID(c), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	message := "Annonceur validé"
	if req.Action == services.ActionRefuser {
		message = "Annonceur refusé"
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   message,
		"annonceur": result.Annonceur,
	})
}

type setStatutRequest struct {
	Statut string `json:"statut" binding:"required"`
}

// SetStatut handles PATCH /admin/opportunites/:opportuniteId/statut.
func (h *ModerationHandler) SetStatut(c *gin.Context) {
	var req setStatutRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	o, err := h.opportunites.SetStatut(c.Request.Context(), c.Param("opportuniteId"), req.Statut)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"opportunite": o,
	})
}

// ListAnnonceursNonVerifies handles GET /admin/moderation/annonceurs.
func (h *ModerationHandler) ListAnnonceursNonVerifies(c *gin.Context) {
	list, err := h.moderation.ListAnnonceursNonVerifies(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "annonceurs": list})
}

// ListEnAttente handles GET /admin/moderation/opportunites.
func (h *ModerationHandler) ListEnAttente(c *gin.Context) {
	list, err := h.opportunites.ListEnAttente(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "opportunites": list})
}
