package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/angeroddy/sceno-app-sub001/internal/services"
)

type BlocageHandler struct {
	*BaseHandler
	blocages *services.BlocageService
}

func NewBlocageHandler(base *BaseHandler, blocages *services.BlocageService) *BlocageHandler {
	return &BlocageHandler{BaseHandler: base, blocages: blocages}
}

// Bloquer handles POST /dashboard/blocages/:annonceurId.
func (h *BlocageHandler) Bloquer(c *gin.Context) {
	id, ok := comedienID(c)
	if !ok {
		return
	}

	if err := h.blocages.Bloquer(c.Request.Context(), id, c.Param("annonceurId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true})
}

// Debloquer handles DELETE /dashboard/blocages/:annonceurId.
func (h *BlocageHandler) Debloquer(c *gin.Context) {
	id, ok := comedienID(c)
	if !ok {
		return
	}

	if err := h.blocages.Debloquer(c.Request.Context(), id, c.Param("annonceurId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
