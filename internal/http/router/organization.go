package router

import (
	"github.com/gin-gonic/gin"

	"donorhub.app/api/internal/http/handler"
	"donorhub.app/api/internal/http/middleware"
)

func OrganizationRouter(rg *gin.RouterGroup, h *handler.OrganizationHandler) {
	rg.GET("", h.List)
	rg.GET("/:org_id", h.Get)
	rg.PATCH("/:org_id", middleware.RequireUser(), h.Update)
	rg.DELETE("/:org_id", middleware.RequireUser(), h.Delete)
}
