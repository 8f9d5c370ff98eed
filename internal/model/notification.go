package model

import (
	"time"

	"github.com/google/uuid"
)

type NotificationType string

const (
	NotificationTypeInfo    NotificationType = "info"
	NotificationTypeSuccess NotificationType = "success"
	NotificationTypePending NotificationType = "pending"
	NotificationTypeWarning NotificationType = "warning"
	NotificationTypeFailure NotificationType = "failure"
	NotificationTypeError   NotificationType = "error"
)

type Notification struct {
	ID         uuid.UUID        `json:"id"`
	ReceiverID uuid.UUID        `json:"receiver_id"`
	SourceKind string           `json:"source_kind"`
	SourceID   uuid.UUID        `json:"source_id"`
	Title      string           `json:"title"`
	Highlight  *string          `json:"highlight,omitempty"`
	Message    string           `json:"message"`
	Type       NotificationType `json:"type"`
	IsRead     bool             `json:"is_read"`
	CreatedAt  time.Time        `json:"created_at"`
}
