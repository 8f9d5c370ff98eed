package router

import (
	"github.com/gin-gonic/gin"

	"donorhub.app/api/internal/http/handler"
	"donorhub.app/api/internal/http/middleware"
)

func NotificationRouter(rg *gin.RouterGroup, h *handler.NotificationHandler) {
	rg.Use(middleware.RequireUser())
	{
		rg.GET("", h.List)
		rg.POST("/read-all", h.MarkAllRead)
		rg.POST("/:id/read", h.MarkRead)
	}
}
