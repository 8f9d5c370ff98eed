package model

import (
	"time"

	"github.com/google/uuid"
)

type Activity struct {
	ID             uuid.UUID `json:"id"`
	OrganizationID uuid.UUID `json:"organization_id"`
	Title          string    `json:"title"`
	Description    *string   `json:"description,omitempty"`
	Location       *string   `json:"location,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ActivityTransaction links one disbursement to the activity it was spent for.
type ActivityTransaction struct {
	ID            uuid.UUID `json:"id"`
	ActivityID    uuid.UUID `json:"activity_id"`
	TransactionID uuid.UUID `json:"transaction_id"`
	LinkedAt      time.Time `json:"linked_at"`
}
