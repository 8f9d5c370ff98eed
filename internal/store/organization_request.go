package store

import (
	"context"

	"github.com/google/uuid"

	"donorhub.app/api/core/db/sqlc"
	"donorhub.app/api/internal/model"
)

type organizationRequestStore struct {
	queries *sqlc.Queries
}

func newOrganizationRequestStore(queries *sqlc.Queries) OrganizationRequestStore {
	return &organizationRequestStore{queries: queries}
}

func (s *organizationRequestStore) Create(ctx context.Context, req *model.OrganizationRequest) error {
	row, err := s.queries.CreateOrganizationRequest(ctx, sqlc.CreateOrganizationRequestParams{
		ID:               req.ID,
		SubmittedBy:      req.SubmittedBy,
		OrganizationName: req.OrganizationName,
		Type:             req.Type,
	})
	if err != nil {
		return translate(err)
	}
	*req = *toOrganizationRequestModel(row)
	return nil
}

func (s *organizationRequestStore) GetByID(ctx context.Context, id uuid.UUID) (*model.OrganizationRequest, error) {
	row, err := s.queries.GetOrganizationRequest(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return toOrganizationRequestModel(row), nil
}

func (s *organizationRequestStore) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*model.OrganizationRequest, error) {
	row, err := s.queries.GetOrganizationRequestForUpdate(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return toOrganizationRequestModel(row), nil
}

func (s *organizationRequestStore) UpdateStatus(ctx context.Context, req *model.OrganizationRequest) error {
	row, err := s.queries.UpdateOrganizationRequestStatus(ctx, sqlc.UpdateOrganizationRequestStatusParams{
		ID:         req.ID,
		Status:     string(req.Status),
		ApprovedBy: req.ApprovedBy,
		ApprovedAt: toTimestamptzPtr(req.ApprovedAt),
	})
	if err != nil {
		return translate(err)
	}
	*req = *toOrganizationRequestModel(row)
	return nil
}

func (s *organizationRequestStore) List(ctx context.Context, status *model.OrganizationRequestStatus, search *string, page model.Page) ([]model.OrganizationRequest, error) {
	page = page.Normalize()
	rows, err := s.queries.ListOrganizationRequests(ctx, sqlc.ListOrganizationRequestsParams{
		Status: strPtr(status),
		Search: search,
		Limit:  page.Limit,
		Offset: page.Offset,
	})
	if err != nil {
		return nil, err
	}
	result := make([]model.OrganizationRequest, len(rows))
	for i, row := range rows {
		result[i] = *toOrganizationRequestModel(row)
	}
	return result, nil
}

func toOrganizationRequestModel(row sqlc.OrganizationRequest) *model.OrganizationRequest {
	return &model.OrganizationRequest{
		ID:               row.ID,
		SubmittedBy:      row.SubmittedBy,
		OrganizationName: row.OrganizationName,
		Type:             row.Type,
		Status:           model.OrganizationRequestStatus(row.Status),
		ApprovedBy:       row.ApprovedBy,
		ApprovedAt:       toTimePtr(row.ApprovedAt),
		CreatedAt:        row.CreatedAt.Time,
		UpdatedAt:        row.UpdatedAt.Time,
	}
}
