package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"donorhub.app/api/internal/http/dto"
	"donorhub.app/api/internal/http/middleware"
	"donorhub.app/api/internal/service"
)

type ChatHandler struct {
	chats service.ChatService
}

func NewChatHandler(chats service.ChatService) *ChatHandler {
	return &ChatHandler{chats: chats}
}

// Start answers 201 when a chat was opened and 200 when it already existed.
func (h *ChatHandler) Start(c *gin.Context) {
	orgID, ok := pathID(c, "org_id", "organization")
	if !ok {
		return
	}

	chat, created, err := h.chats.Start(c.Request.Context(), middleware.Actor(c), orgID)
	if err != nil {
		respondError(c, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, chat)
}

func (h *ChatHandler) ListForOrganization(c *gin.Context) {
	orgID, ok := pathID(c, "org_id", "organization")
	if !ok {
		return
	}
	page, err := pageQuery(c)
	if err != nil {
		respondError(c, err)
		return
	}

	items, err := h.chats.ListForOrganization(c.Request.Context(), middleware.Actor(c), orgID, page)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewListResponse(items, page))
}

func (h *ChatHandler) ListMine(c *gin.Context) {
	page, err := pageQuery(c)
	if err != nil {
		respondError(c, err)
		return
	}

	items, err := h.chats.ListMine(c.Request.Context(), middleware.Actor(c), page)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewListResponse(items, page))
}

func (h *ChatHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id", "chat")
	if !ok {
		return
	}

	chat, err := h.chats.Get(c.Request.Context(), middleware.Actor(c), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, chat)
}

func (h *ChatHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id", "chat")
	if !ok {
		return
	}

	if err := h.chats.Delete(c.Request.Context(), middleware.Actor(c), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ChatHandler) Messages(c *gin.Context) {
	id, ok := pathID(c, "id", "chat")
	if !ok {
		return
	}
	page, err := pageQuery(c)
	if err != nil {
		respondError(c, err)
		return
	}

	items, err := h.chats.Messages(c.Request.Context(), middleware.Actor(c), id, page)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewListResponse(items, page))
}

func (h *ChatHandler) Send(c *gin.Context) {
	id, ok := pathID(c, "id", "chat")
	if !ok {
		return
	}

	var req dto.ChatMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	msg, err := h.chats.Send(c.Request.Context(), middleware.Actor(c), id, req.Content)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, msg)
}

func (h *ChatHandler) EditMessage(c *gin.Context) {
	id, ok := pathID(c, "id", "message")
	if !ok {
		return
	}

	var req dto.ChatMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	msg, err := h.chats.EditMessage(c.Request.Context(), middleware.Actor(c), id, req.Content)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, msg)
}

func (h *ChatHandler) DeleteMessage(c *gin.Context) {
	id, ok := pathID(c, "id", "message")
	if !ok {
		return
	}

	if err := h.chats.DeleteMessage(c.Request.Context(), middleware.Actor(c), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
