package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type EventStatus string

const (
	EventStatusOpen   EventStatus = "open"
	EventStatusClosed EventStatus = "closed"
)

func (s EventStatus) Valid() bool {
	return s == EventStatusOpen || s == EventStatusClosed
}

// Event is a fundraising campaign donations can be tied to.
type Event struct {
	ID             uuid.UUID       `json:"id"`
	OrganizationID uuid.UUID       `json:"organization_id"`
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	Status         EventStatus     `json:"status"`
	TargetAmount   decimal.Decimal `json:"target_amount"`
	StartDate      time.Time       `json:"start_date"`
	EndDate        time.Time       `json:"end_date"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}
