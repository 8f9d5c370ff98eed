package model

import (
	"time"

	"github.com/google/uuid"
)

type OwnerKind string

const (
	OwnerKindOrganization        OwnerKind = "organization"
	OwnerKindOrganizationRequest OwnerKind = "organization_request"
	OwnerKindTransaction         OwnerKind = "transaction"
	OwnerKindActivity            OwnerKind = "activity"
	OwnerKindEvent               OwnerKind = "event"
)

func (k OwnerKind) Valid() bool {
	switch k {
	case OwnerKindOrganization, OwnerKindOrganizationRequest, OwnerKindTransaction, OwnerKindActivity, OwnerKindEvent:
		return true
	}
	return false
}

// Owner identifies the entity an attachment belongs to.
type Owner struct {
	Kind OwnerKind
	ID   uuid.UUID
}

func (o Owner) String() string {
	return string(o.Kind) + ":" + o.ID.String()
}

type Attachment struct {
	ID        uuid.UUID `json:"id"`
	OwnerKind OwnerKind `json:"owner_kind"`
	OwnerID   uuid.UUID `json:"owner_id"`
	File      string    `json:"file"`
	FileName  string    `json:"file_name"`
	CreatedAt time.Time `json:"created_at"`
}

func (a Attachment) Owner() Owner {
	return Owner{Kind: a.OwnerKind, ID: a.OwnerID}
}
