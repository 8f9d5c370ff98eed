package router

import (
	"github.com/gin-gonic/gin"

	"donorhub.app/api/internal/http/handler"
	"donorhub.app/api/internal/http/middleware"
)

// OrganizationRequestRouter requires a caller on every route. Listing, review and the
// organization re-trigger are staff only.
func OrganizationRequestRouter(rg *gin.RouterGroup, h *handler.OrganizationRequestHandler) {
	rg.Use(middleware.RequireUser())
	{
		rg.POST("", h.Submit)
		rg.GET("", h.List)
		rg.GET("/:id", h.Get)
		rg.PATCH("/:id", h.Review)
		rg.POST("/:id/organization", h.EnsureOrganization)
	}
}
