package router

import (
	"github.com/gin-gonic/gin"

	"donorhub.app/api/internal/http/handler"
	"donorhub.app/api/internal/http/middleware"
)

func ActivityRouter(rg *gin.RouterGroup, feed *gin.RouterGroup, h *handler.ActivityHandler) {
	rg.GET("", h.List)
	rg.GET("/:id", h.Get)

	write := rg.Group("")
	write.Use(middleware.RequireUser())
	{
		write.POST("", h.Create)
		write.PATCH("/:id", h.Update)
		write.DELETE("/:id", h.Delete)
	}

	feed.GET("", h.ListAll)
}
