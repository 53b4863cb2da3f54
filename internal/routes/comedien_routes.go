package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/angeroddy/sceno-app-sub001/internal/handlers"
	"github.com/angeroddy/sceno-app-sub001/internal/identity"
	"github.com/angeroddy/sceno-app-sub001/internal/middleware"
	"github.com/angeroddy/sceno-app-sub001/internal/services"
)

func SetupComedienRoutes(api *gin.RouterGroup, h *handlers.Registry, verifier *identity.Verifier, principal *services.PrincipalService) {
	comedien := api.Group("/dashboard")
	comedien.Use(
		middleware.AuthMiddleware(verifier),
		middleware.ResolvePrincipal(principal),
		middleware.RequireComedien(),
	)
	{
		comedien.POST("/opportunites/:opportuniteId/achats", h.Achats.Acheter)
		comedien.GET("/achats", h.Achats.ListMine)
		comedien.POST("/blocages/:annonceurId", h.Blocages.Bloquer)
		comedien.DELETE("/blocages/:annonceurId", h.Blocages.Debloquer)
	}
}
