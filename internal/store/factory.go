package store

import (
	"donorhub.app/api/core/db/sqlc"
)

type Stores struct {
	queries *sqlc.Queries
}

func NewStores(queries *sqlc.Queries) *Stores {
	return &Stores{queries: queries}
}

func (s *Stores) Users() UserStore {
	return newUserStore(s.queries)
}

func (s *Stores) OrganizationRequests() OrganizationRequestStore {
	return newOrganizationRequestStore(s.queries)
}

func (s *Stores) Organizations() OrganizationStore {
	return newOrganizationStore(s.queries)
}

func (s *Stores) Events() EventStore {
	return newEventStore(s.queries)
}

func (s *Stores) Transactions() TransactionStore {
	return newTransactionStore(s.queries)
}

func (s *Stores) Activities() ActivityStore {
	return newActivityStore(s.queries)
}

func (s *Stores) Attachments() AttachmentStore {
	return newAttachmentStore(s.queries)
}

func (s *Stores) Notifications() NotificationStore {
	return newNotificationStore(s.queries)
}

func (s *Stores) Chats() ChatStore {
	return newChatStore(s.queries)
}
