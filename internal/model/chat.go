package model

import (
	"time"

	"github.com/google/uuid"
)

// Chat is the single conversation between a donor and an organization.
type Chat struct {
	ID             uuid.UUID `json:"id"`
	DonorID        uuid.UUID `json:"donor_id"`
	OrganizationID uuid.UUID `json:"organization_id"`
	CreatedAt      time.Time `json:"created_at"`
}

type ChatMessage struct {
	ID        uuid.UUID `json:"id"`
	ChatID    uuid.UUID `json:"chat_id"`
	SenderID  uuid.UUID `json:"sender_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
