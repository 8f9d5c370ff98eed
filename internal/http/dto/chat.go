package dto

type ChatMessageRequest struct {
	Content string `json:"content" binding:"required"`
}
