package store

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"donorhub.app/api/internal/model"
)

// ErrNotFound is returned when a requested entity does not exist
var ErrNotFound = errors.New("not found")

// ErrConflict is returned when a write violates a uniqueness constraint.
var ErrConflict = errors.New("conflict")

// UserStore defines the contract for user data access
type UserStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	Upsert(ctx context.Context, user *model.User) error
}

// OrganizationRequestStore defines the contract for organization request data access
type OrganizationRequestStore interface {
	Create(ctx context.Context, req *model.OrganizationRequest) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.OrganizationRequest, error)
	// GetByIDForUpdate locks the request row until the surrounding transaction ends.
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*model.OrganizationRequest, error)
	UpdateStatus(ctx context.Context, req *model.OrganizationRequest) error
	List(ctx context.Context, status *model.OrganizationRequestStatus, search *string, page model.Page) ([]model.OrganizationRequest, error)
}

// OrganizationStore defines the contract for organization data access
type OrganizationStore interface {
	// Create returns ErrConflict when the request already produced an organization.
	Create(ctx context.Context, org *model.Organization) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Organization, error)
	GetByRequestID(ctx context.Context, requestID uuid.UUID) (*model.Organization, error)
	Update(ctx context.Context, org *model.Organization) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, search *string, page model.Page) ([]model.Organization, error)
	Stats(ctx context.Context, id uuid.UUID) (*model.OrganizationStats, error)
}

// EventStore defines the contract for fundraising event data access
type EventStore interface {
	Create(ctx context.Context, event *model.Event) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Event, error)
	Update(ctx context.Context, event *model.Event) error
	ListByOrganization(ctx context.Context, orgID uuid.UUID, status *model.EventStatus, page model.Page) ([]model.Event, error)
	ListOpen(ctx context.Context, page model.Page) ([]model.Event, error)
}

// TransactionStore defines the contract for ledger data access
type TransactionStore interface {
	Create(ctx context.Context, txn *model.Transaction) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Transaction, error)
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*model.Transaction, error)
	GetMany(ctx context.Context, ids []uuid.UUID) ([]model.Transaction, error)
	// GetManyForUpdate locks every existing row among ids. Missing ids are simply absent.
	GetManyForUpdate(ctx context.Context, ids []uuid.UUID) ([]model.Transaction, error)
	Update(ctx context.Context, txn *model.Transaction) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, orgID uuid.UUID, filter model.TransactionFilter, page model.Page) ([]model.Transaction, error)
	ListDonationsByActor(ctx context.Context, actorID uuid.UUID, page model.Page) ([]model.Transaction, error)
}

// ActivityStore defines the contract for activity and link data access
type ActivityStore interface {
	Create(ctx context.Context, activity *model.Activity) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Activity, error)
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*model.Activity, error)
	Update(ctx context.Context, activity *model.Activity) error
	Delete(ctx context.Context, id uuid.UUID) error
	// List filters by organization when orgID is non-nil.
	List(ctx context.Context, orgID *uuid.UUID, search *string, page model.Page) ([]model.Activity, error)

	// CreateLink returns ErrConflict when the transaction is already linked.
	CreateLink(ctx context.Context, link *model.ActivityTransaction) error
	ListLinks(ctx context.Context, activityID uuid.UUID) ([]model.ActivityTransaction, error)
	ListLinksByTransactions(ctx context.Context, transactionIDs []uuid.UUID) ([]model.ActivityTransaction, error)
	ListLinksByActivities(ctx context.Context, activityIDs []uuid.UUID) ([]model.ActivityTransaction, error)
	DeleteLinks(ctx context.Context, activityID uuid.UUID, transactionIDs []uuid.UUID) error
}

// AttachmentStore defines the contract for polymorphic attachment data access
type AttachmentStore interface {
	Create(ctx context.Context, att *model.Attachment) error
	ListByOwner(ctx context.Context, owner model.Owner) ([]model.Attachment, error)
	ListByOwners(ctx context.Context, kind model.OwnerKind, ids []uuid.UUID) ([]model.Attachment, error)
	// DeleteByOwner returns the deleted rows so their stored objects can be removed.
	DeleteByOwner(ctx context.Context, owner model.Owner) ([]model.Attachment, error)
	// DeleteByOrganization removes the organization's own attachments and those of
	// its transactions, activities and events.
	DeleteByOrganization(ctx context.Context, orgID uuid.UUID) ([]model.Attachment, error)
}

// NotificationStore defines the contract for notification data access
type NotificationStore interface {
	Create(ctx context.Context, n *model.Notification) error
	List(ctx context.Context, receiverID uuid.UUID, unreadOnly bool, page model.Page) ([]model.Notification, error)
	MarkRead(ctx context.Context, id, receiverID uuid.UUID) (*model.Notification, error)
	MarkAllRead(ctx context.Context, receiverID uuid.UUID) error
}

// ChatStore defines the contract for donor to organization chat data access
type ChatStore interface {
	Create(ctx context.Context, chat *model.Chat) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Chat, error)
	GetByParticipants(ctx context.Context, donorID, orgID uuid.UUID) (*model.Chat, error)
	ListByDonor(ctx context.Context, donorID uuid.UUID, page model.Page) ([]model.Chat, error)
	ListByOrganization(ctx context.Context, orgID uuid.UUID, page model.Page) ([]model.Chat, error)
	Delete(ctx context.Context, id uuid.UUID) error

	CreateMessage(ctx context.Context, msg *model.ChatMessage) error
	GetMessage(ctx context.Context, id uuid.UUID) (*model.ChatMessage, error)
	UpdateMessage(ctx context.Context, id uuid.UUID, content string) (*model.ChatMessage, error)
	DeleteMessage(ctx context.Context, id uuid.UUID) error
	ListMessages(ctx context.Context, chatID uuid.UUID, page model.Page) ([]model.ChatMessage, error)
}
