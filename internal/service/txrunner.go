package service

import (
	"context"

	"donorhub.app/api/core/db"
	"donorhub.app/api/core/db/sqlc"
	"donorhub.app/api/internal/store"
)

// StoreProvider exposes the stores an operation works with.
// *store.Stores satisfies it both inside and outside a transaction.
type StoreProvider interface {
	Users() store.UserStore
	OrganizationRequests() store.OrganizationRequestStore
	Organizations() store.OrganizationStore
	Events() store.EventStore
	Transactions() store.TransactionStore
	Activities() store.ActivityStore
	Attachments() store.AttachmentStore
	Notifications() store.NotificationStore
	Chats() store.ChatStore
}

// TxRunner runs functions within a transaction and provides stores bound to that transaction.
type TxRunner interface {
	WithTx(ctx context.Context, fn func(stores StoreProvider) error) error
}

type dbTxRunner struct {
	db *db.DB
}

// NewTxRunner builds a TxRunner backed by the core DB.
func NewTxRunner(db *db.DB) TxRunner {
	return &dbTxRunner{db: db}
}

func (r *dbTxRunner) WithTx(ctx context.Context, fn func(stores StoreProvider) error) error {
	return r.db.WithTx(ctx, func(q *sqlc.Queries) error {
		return fn(store.NewStores(q))
	})
}
