package router

import (
	"github.com/gin-gonic/gin"

	"donorhub.app/api/internal/http/handler"
	"donorhub.app/api/internal/http/middleware"
)

func UserRouter(rg *gin.RouterGroup, h *handler.UserHandler) {
	rg.GET("/me", middleware.RequireUser(), h.Me)
}
