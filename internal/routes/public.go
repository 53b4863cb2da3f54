package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/angeroddy/sceno-app-sub001/internal/handlers"
)

func SetupPublicRoutes(api *gin.RouterGroup, h *handlers.Registry) {
	public := api.Group("/opportunites")
	{
		public.GET("", h.Opportunites.ListPubliques)
		public.GET("/:opportuniteId", h.Opportunites.Get)
	}
}
