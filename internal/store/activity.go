package store

import (
	"context"

	"github.com/google/uuid"

	"donorhub.app/api/core/db/sqlc"
	"donorhub.app/api/internal/model"
)

type activityStore struct {
	queries *sqlc.Queries
}

func newActivityStore(queries *sqlc.Queries) ActivityStore {
	return &activityStore{queries: queries}
}

func (s *activityStore) Create(ctx context.Context, activity *model.Activity) error {
	row, err := s.queries.CreateActivity(ctx, sqlc.CreateActivityParams{
		ID:             activity.ID,
		OrganizationID: activity.OrganizationID,
		Title:          activity.Title,
		Description:    activity.Description,
		Location:       activity.Location,
	})
	if err != nil {
		return translate(err)
	}
	*activity = *toActivityModel(row)
	return nil
}

func (s *activityStore) GetByID(ctx context.Context, id uuid.UUID) (*model.Activity, error) {
	row, err := s.queries.GetActivity(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return toActivityModel(row), nil
}

func (s *activityStore) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*model.Activity, error) {
	row, err := s.queries.GetActivityForUpdate(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return toActivityModel(row), nil
}

func (s *activityStore) Update(ctx context.Context, activity *model.Activity) error {
	row, err := s.queries.UpdateActivity(ctx, sqlc.UpdateActivityParams{
		ID:          activity.ID,
		Title:       activity.Title,
		Description: activity.Description,
		Location:    activity.Location,
	})
	if err != nil {
		return translate(err)
	}
	*activity = *toActivityModel(row)
	return nil
}

func (s *activityStore) Delete(ctx context.Context, id uuid.UUID) error {
	return s.queries.DeleteActivity(ctx, id)
}

func (s *activityStore) List(ctx context.Context, orgID *uuid.UUID, search *string, page model.Page) ([]model.Activity, error) {
	page = page.Normalize()
	rows, err := s.queries.ListActivities(ctx, sqlc.ListActivitiesParams{
		OrganizationID: orgID,
		Search:         search,
		Limit:          page.Limit,
		Offset:         page.Offset,
	})
	if err != nil {
		return nil, err
	}
	result := make([]model.Activity, len(rows))
	for i, row := range rows {
		result[i] = *toActivityModel(row)
	}
	return result, nil
}

func (s *activityStore) CreateLink(ctx context.Context, link *model.ActivityTransaction) error {
	row, err := s.queries.CreateActivityTransaction(ctx, sqlc.CreateActivityTransactionParams{
		ID:            link.ID,
		ActivityID:    link.ActivityID,
		TransactionID: link.TransactionID,
	})
	if err != nil {
		return translate(err)
	}
	*link = toLinkModel(row)
	return nil
}

func (s *activityStore) ListLinks(ctx context.Context, activityID uuid.UUID) ([]model.ActivityTransaction, error) {
	rows, err := s.queries.ListActivityTransactions(ctx, activityID)
	if err != nil {
		return nil, err
	}
	return toLinkModels(rows), nil
}

func (s *activityStore) ListLinksByTransactions(ctx context.Context, transactionIDs []uuid.UUID) ([]model.ActivityTransaction, error) {
	if len(transactionIDs) == 0 {
		return nil, nil
	}
	rows, err := s.queries.ListLinksByTransactions(ctx, transactionIDs)
	if err != nil {
		return nil, err
	}
	return toLinkModels(rows), nil
}

func (s *activityStore) ListLinksByActivities(ctx context.Context, activityIDs []uuid.UUID) ([]model.ActivityTransaction, error) {
	if len(activityIDs) == 0 {
		return nil, nil
	}
	rows, err := s.queries.ListLinksByActivities(ctx, activityIDs)
	if err != nil {
		return nil, err
	}
	return toLinkModels(rows), nil
}

func (s *activityStore) DeleteLinks(ctx context.Context, activityID uuid.UUID, transactionIDs []uuid.UUID) error {
	if len(transactionIDs) == 0 {
		return nil
	}
	return s.queries.DeleteActivityTransactions(ctx, sqlc.DeleteActivityTransactionsParams{
		ActivityID:     activityID,
		TransactionIds: transactionIDs,
	})
}

func toActivityModel(row sqlc.Activity) *model.Activity {
	return &model.Activity{
		ID:             row.ID,
		OrganizationID: row.OrganizationID,
		Title:          row.Title,
		Description:    row.Description,
		Location:       row.Location,
		CreatedAt:      row.CreatedAt.Time,
		UpdatedAt:      row.UpdatedAt.Time,
	}
}

func toLinkModel(row sqlc.ActivityTransaction) model.ActivityTransaction {
	return model.ActivityTransaction{
		ID:            row.ID,
		ActivityID:    row.ActivityID,
		TransactionID: row.TransactionID,
		LinkedAt:      row.LinkedAt.Time,
	}
}

func toLinkModels(rows []sqlc.ActivityTransaction) []model.ActivityTransaction {
	result := make([]model.ActivityTransaction, len(rows))
	for i, row := range rows {
		result[i] = toLinkModel(row)
	}
	return result
}
