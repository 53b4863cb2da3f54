package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/angeroddy/sceno-app-sub001/internal/handlers"
	"github.com/angeroddy/sceno-app-sub001/internal/identity"
	"github.com/angeroddy/sceno-app-sub001/internal/middleware"
	"github.com/angeroddy/sceno-app-sub001/internal/services"
)

// Setup registers every route group on the engine. The page-path access
// gate runs globally; the API groups use the JSON auth middleware instead.
func Setup(r *gin.Engine, h *handlers.Registry, verifier *identity.Verifier, principal *services.PrincipalService) {
	r.Use(middleware.AccessGate(verifier, principal))

	api := r.Group("/api/v1")

	SetupPublicRoutes(api, h)
	SetupComedienRoutes(api, h, verifier, principal)
	SetupAnnonceurRoutes(api, h, verifier, principal)
	SetupAdminRoutes(api, h, verifier, principal)

	// Scheduled sweep trigger, shared-secret protected (no session).
	api.POST("/cron/sweep", h.Sweep.Run)
}
