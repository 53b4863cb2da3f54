package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/angeroddy/sceno-app-sub001/internal/handlers"
	"github.com/angeroddy/sceno-app-sub001/internal/identity"
	"github.com/angeroddy/sceno-app-sub001/internal/middleware"
	"github.com/angeroddy/sceno-app-sub001/internal/services"
)

func SetupAnnonceurRoutes(api *gin.RouterGroup, h *handlers.Registry, verifier *identity.Verifier, principal *services.PrincipalService) {
	annonceur := api.Group("/annonceur")
	annonceur.Use(
		middleware.AuthMiddleware(verifier),
		middleware.ResolvePrincipal(principal),
		middleware.RequireAnnonceur(),
	)
	{
		annonceur.POST("/opportunites", h.Opportunites.Create)
		annonceur.GET("/opportunites", h.Opportunites.ListMine)
		annonceur.DELETE("/opportunites/:opportuniteId", h.Opportunites.Delete)
	}
}
