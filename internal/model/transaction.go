package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionTypeDonation     TransactionType = "donation"
	TransactionTypeDisbursement TransactionType = "disbursement"
)

func (t TransactionType) Valid() bool {
	return t == TransactionTypeDonation || t == TransactionTypeDisbursement
}

type TransactionStatus string

const (
	TransactionStatusPending  TransactionStatus = "pending"
	TransactionStatusApproved TransactionStatus = "approved"
	TransactionStatusRejected TransactionStatus = "rejected"
)

func (s TransactionStatus) Valid() bool {
	switch s {
	case TransactionStatusPending, TransactionStatusApproved, TransactionStatusRejected:
		return true
	}
	return false
}

func (s TransactionStatus) IsTerminal() bool {
	return s == TransactionStatusApproved || s == TransactionStatusRejected
}

type Transaction struct {
	ID             uuid.UUID         `json:"id"`
	OrganizationID uuid.UUID         `json:"organization_id"`
	ActorID        uuid.UUID         `json:"actor_id"`
	EventID        *uuid.UUID        `json:"event_id,omitempty"`
	Title          *string           `json:"title,omitempty"`
	Amount         decimal.Decimal   `json:"amount"`
	Type           TransactionType   `json:"type"`
	Status         TransactionStatus `json:"status"`
	ReviewRequired bool              `json:"review_required"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

// AttachmentLimit is how many uploaded files the transaction keeps. Zero means all.
func (t TransactionType) AttachmentLimit() int {
	if t == TransactionTypeDonation {
		return 1
	}
	return 0
}

type TransactionFilter struct {
	Type           *TransactionType
	Status         *TransactionStatus
	EventID        *uuid.UUID
	ReviewRequired *bool
	Unlinked       bool
	Search         *string
}
