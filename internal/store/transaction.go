package store

import (
	"context"

	"github.com/google/uuid"

	"donorhub.app/api/core/db/sqlc"
	"donorhub.app/api/internal/model"
)

type transactionStore struct {
	queries *sqlc.Queries
}

func newTransactionStore(queries *sqlc.Queries) TransactionStore {
	return &transactionStore{queries: queries}
}

func (s *transactionStore) Create(ctx context.Context, txn *model.Transaction) error {
	row, err := s.queries.CreateTransaction(ctx, sqlc.CreateTransactionParams{
		ID:             txn.ID,
		OrganizationID: txn.OrganizationID,
		ActorID:        txn.ActorID,
		EventID:        txn.EventID,
		Title:          txn.Title,
		Amount:         toNumeric(txn.Amount),
		Type:           string(txn.Type),
		ReviewRequired: txn.ReviewRequired,
	})
	if err != nil {
		return translate(err)
	}
	*txn = *toTransactionModel(row)
	return nil
}

func (s *transactionStore) GetByID(ctx context.Context, id uuid.UUID) (*model.Transaction, error) {
	row, err := s.queries.GetTransaction(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return toTransactionModel(row), nil
}

func (s *transactionStore) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*model.Transaction, error) {
	row, err := s.queries.GetTransactionForUpdate(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return toTransactionModel(row), nil
}

func (s *transactionStore) GetMany(ctx context.Context, ids []uuid.UUID) ([]model.Transaction, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := s.queries.GetTransactionsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	return toTransactionModels(rows), nil
}

func (s *transactionStore) GetManyForUpdate(ctx context.Context, ids []uuid.UUID) ([]model.Transaction, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := s.queries.GetTransactionsForUpdate(ctx, ids)
	if err != nil {
		return nil, err
	}
	return toTransactionModels(rows), nil
}

func (s *transactionStore) Update(ctx context.Context, txn *model.Transaction) error {
	row, err := s.queries.UpdateTransaction(ctx, sqlc.UpdateTransactionParams{
		ID:             txn.ID,
		Title:          txn.Title,
		Status:         string(txn.Status),
		ReviewRequired: txn.ReviewRequired,
	})
	if err != nil {
		return translate(err)
	}
	*txn = *toTransactionModel(row)
	return nil
}

func (s *transactionStore) Delete(ctx context.Context, id uuid.UUID) error {
	return s.queries.DeleteTransaction(ctx, id)
}

func (s *transactionStore) List(ctx context.Context, orgID uuid.UUID, filter model.TransactionFilter, page model.Page) ([]model.Transaction, error) {
	page = page.Normalize()
	rows, err := s.queries.ListTransactions(ctx, sqlc.ListTransactionsParams{
		OrganizationID: orgID,
		Type:           strPtr(filter.Type),
		Status:         strPtr(filter.Status),
		EventID:        filter.EventID,
		ReviewRequired: filter.ReviewRequired,
		Unlinked:       filter.Unlinked,
		Search:         filter.Search,
		Limit:          page.Limit,
		Offset:         page.Offset,
	})
	if err != nil {
		return nil, err
	}
	return toTransactionModels(rows), nil
}

func (s *transactionStore) ListDonationsByActor(ctx context.Context, actorID uuid.UUID, page model.Page) ([]model.Transaction, error) {
	page = page.Normalize()
	rows, err := s.queries.ListDonationsByActor(ctx, sqlc.ListDonationsByActorParams{
		ActorID: actorID,
		Limit:   page.Limit,
		Offset:  page.Offset,
	})
	if err != nil {
		return nil, err
	}
	return toTransactionModels(rows), nil
}

func toTransactionModel(row sqlc.Transaction) *model.Transaction {
	return &model.Transaction{
		ID:             row.ID,
		OrganizationID: row.OrganizationID,
		ActorID:        row.ActorID,
		EventID:        row.EventID,
		Title:          row.Title,
		Amount:         toDecimal(row.Amount),
		Type:           model.TransactionType(row.Type),
		Status:         model.TransactionStatus(row.Status),
		ReviewRequired: row.ReviewRequired,
		CreatedAt:      row.CreatedAt.Time,
		UpdatedAt:      row.UpdatedAt.Time,
	}
}

func toTransactionModels(rows []sqlc.Transaction) []model.Transaction {
	result := make([]model.Transaction, len(rows))
	for i, row := range rows {
		result[i] = *toTransactionModel(row)
	}
	return result
}
