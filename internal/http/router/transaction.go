package router

import (
	"github.com/gin-gonic/gin"

	"donorhub.app/api/internal/http/handler"
	"donorhub.app/api/internal/http/middleware"
)

// TransactionRouter mounts the ledger of one organization and the caller's donation history.
func TransactionRouter(rg *gin.RouterGroup, mine *gin.RouterGroup, h *handler.TransactionHandler) {
	rg.GET("", h.List)
	rg.GET("/:id", h.Get)

	write := rg.Group("")
	write.Use(middleware.RequireUser())
	{
		write.POST("", h.Create)
		write.PATCH("/:id", h.Update)
		write.DELETE("/:id", h.Delete)
	}

	mine.GET("/history", middleware.RequireUser(), h.History)
}
