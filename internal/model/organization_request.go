package model

import (
	"time"

	"github.com/google/uuid"
)

type OrganizationRequestStatus string

const (
	OrganizationRequestStatusPending  OrganizationRequestStatus = "pending"
	OrganizationRequestStatusApproved OrganizationRequestStatus = "approved"
	OrganizationRequestStatusRejected OrganizationRequestStatus = "rejected"
)

func (s OrganizationRequestStatus) Valid() bool {
	switch s {
	case OrganizationRequestStatusPending, OrganizationRequestStatusApproved, OrganizationRequestStatusRejected:
		return true
	}
	return false
}

type OrganizationRequest struct {
	ID               uuid.UUID                 `json:"id"`
	SubmittedBy      uuid.UUID                 `json:"submitted_by"`
	OrganizationName string                    `json:"organization_name"`
	Type             string                    `json:"type"`
	Status           OrganizationRequestStatus `json:"status"`
	ApprovedBy       *uuid.UUID                `json:"approved_by,omitempty"`
	ApprovedAt       *time.Time                `json:"approved_at,omitempty"`
	CreatedAt        time.Time                 `json:"created_at"`
	UpdatedAt        time.Time                 `json:"updated_at"`
}

// IsFinal is true once the request was approved. Rejected requests may be reviewed again.
func (r *OrganizationRequest) IsFinal() bool {
	return r.Status == OrganizationRequestStatusApproved
}
