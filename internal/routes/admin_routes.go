package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/angeroddy/sceno-app-sub001/internal/handlers"
	"github.com/angeroddy/sceno-app-sub001/internal/identity"
	"github.com/angeroddy/sceno-app-sub001/internal/middleware"
	"github.com/angeroddy/sceno-app-sub001/internal/services"
)

func SetupAdminRoutes(api *gin.RouterGroup, h *handlers.Registry, verifier *identity.Verifier, principal *services.PrincipalService) {
	admin := api.Group("/admin")
	admin.Use(
		middleware.AuthMiddleware(verifier),
		middleware.ResolvePrincipal(principal),
		middleware.RequireAdmin(),
	)
	{
		admin.GET("/moderation/opportunites", h.Moderation.ListEnAttente)
		admin.POST("/moderation/opportunites", h.Moderation.DecideOpportunite)
		admin.GET("/moderation/annonceurs", h.Moderation.ListAnnonceursNonVerifies)
		admin.POST("/moderation/annonceurs", h.Moderation.DecideAnnonceur)
		admin.PATCH("/opportunites/:opportuniteId/statut", h.Moderation.SetStatut)
	}
}
