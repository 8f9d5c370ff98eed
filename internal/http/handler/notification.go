package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"donorhub.app/api/internal/http/dto"
	"donorhub.app/api/internal/http/middleware"
	"donorhub.app/api/internal/service"
)

type NotificationHandler struct {
	notifications service.NotificationService
}

func NewNotificationHandler(notifications service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

func (h *NotificationHandler) List(c *gin.Context) {
	page, err := pageQuery(c)
	if err != nil {
		respondError(c, err)
		return
	}
	unread, err := boolQuery(c, "unread")
	if err != nil {
		respondError(c, err)
		return
	}

	user := middleware.Actor(c)
	items, err := h.notifications.List(c.Request.Context(), user.ID, unread != nil && *unread, page)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewListResponse(items, page))
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id, ok := pathID(c, "id", "notification")
	if !ok {
		return
	}

	n, err := h.notifications.MarkRead(c.Request.Context(), middleware.Actor(c).ID, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, n)
}

func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	if err := h.notifications.MarkAllRead(c.Request.Context(), middleware.Actor(c).ID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
