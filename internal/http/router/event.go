package router

import (
	"github.com/gin-gonic/gin"

	"donorhub.app/api/internal/http/handler"
	"donorhub.app/api/internal/http/middleware"
)

func EventRouter(rg *gin.RouterGroup, open *gin.RouterGroup, h *handler.EventHandler) {
	rg.GET("", h.List)
	rg.GET("/:id", h.Get)

	write := rg.Group("")
	write.Use(middleware.RequireUser())
	{
		write.POST("", h.Create)
		write.PATCH("/:id", h.Update)
	}

	open.GET("", h.ListOpen)
}
