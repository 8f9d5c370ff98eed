package router

import (
	"github.com/gin-gonic/gin"

	"donorhub.app/api/internal/http/handler"
	"donorhub.app/api/internal/http/middleware"
)

// ChatRouter mounts the chats of one organization, the caller's chats and message edits.
// Every route needs a caller.
func ChatRouter(orgChats, chats, messages *gin.RouterGroup, h *handler.ChatHandler) {
	orgChats.Use(middleware.RequireUser())
	{
		orgChats.POST("", h.Start)
		orgChats.GET("", h.ListForOrganization)
	}

	chats.Use(middleware.RequireUser())
	{
		chats.GET("", h.ListMine)
		chats.GET("/:id", h.Get)
		chats.DELETE("/:id", h.Delete)
		chats.GET("/:id/messages", h.Messages)
		chats.POST("/:id/messages", h.Send)
	}

	messages.Use(middleware.RequireUser())
	{
		messages.PUT("/:id", h.EditMessage)
		messages.DELETE("/:id", h.DeleteMessage)
	}
}
