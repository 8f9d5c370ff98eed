package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"donorhub.app/api/core/db/sqlc"
	"donorhub.app/api/internal/model"
)

type organizationStore struct {
	queries *sqlc.Queries
}

func newOrganizationStore(queries *sqlc.Queries) OrganizationStore {
	return &organizationStore{queries: queries}
}

func (s *organizationStore) Create(ctx context.Context, org *model.Organization) error {
	row, err := s.queries.CreateOrganization(ctx, sqlc.CreateOrganizationParams{
		ID:                    org.ID,
		AdminID:               org.AdminID,
		Name:                  org.Name,
		Type:                  org.Type,
		OrganizationRequestID: org.OrganizationRequestID,
	})
	if err != nil {
		// ON CONFLICT DO NOTHING yields no row when the request already has an organization.
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrConflict
		}
		return translate(err)
	}
	*org = *toOrganizationModel(row)
	return nil
}

func (s *organizationStore) GetByID(ctx context.Context, id uuid.UUID) (*model.Organization, error) {
	row, err := s.queries.GetOrganization(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return toOrganizationModel(row), nil
}

func (s *organizationStore) GetByRequestID(ctx context.Context, requestID uuid.UUID) (*model.Organization, error) {
	row, err := s.queries.GetOrganizationByRequest(ctx, requestID)
	if err != nil {
		return nil, translate(err)
	}
	return toOrganizationModel(row), nil
}

func (s *organizationStore) Update(ctx context.Context, org *model.Organization) error {
	row, err := s.queries.UpdateOrganization(ctx, sqlc.UpdateOrganizationParams{
		ID:             org.ID,
		Description:    org.Description,
		PhoneNumber:    org.PhoneNumber,
		Email:          org.Email,
		AdditionalInfo: org.AdditionalInfo,
		KpayQrUrl:      org.KpayQrURL,
		KpayQrImage:    org.KpayQrImage,
	})
	if err != nil {
		return translate(err)
	}
	*org = *toOrganizationModel(row)
	return nil
}

func (s *organizationStore) Delete(ctx context.Context, id uuid.UUID) error {
	return s.queries.DeleteOrganization(ctx, id)
}

func (s *organizationStore) List(ctx context.Context, search *string, page model.Page) ([]model.Organization, error) {
	page = page.Normalize()
	rows, err := s.queries.ListOrganizations(ctx, sqlc.ListOrganizationsParams{
		Search: search,
		Limit:  page.Limit,
		Offset: page.Offset,
	})
	if err != nil {
		return nil, err
	}
	result := make([]model.Organization, len(rows))
	for i, row := range rows {
		result[i] = *toOrganizationModel(row)
	}
	return result, nil
}

func (s *organizationStore) Stats(ctx context.Context, id uuid.UUID) (*model.OrganizationStats, error) {
	row, err := s.queries.GetOrganizationStats(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	received := toDecimal(row.TotalReceived)
	expense := toDecimal(row.TotalExpense)
	return &model.OrganizationStats{
		TotalReceived:  received,
		TotalExpense:   expense,
		Balance:        received.Sub(expense),
		TotalDonations: row.TotalDonations,
		TotalDonors:    row.TotalDonors,
	}, nil
}

func toOrganizationModel(row sqlc.Organization) *model.Organization {
	return &model.Organization{
		ID:                    row.ID,
		AdminID:               row.AdminID,
		Name:                  row.Name,
		Type:                  row.Type,
		Description:           row.Description,
		PhoneNumber:           row.PhoneNumber,
		Email:                 row.Email,
		AdditionalInfo:        row.AdditionalInfo,
		KpayQrURL:             row.KpayQrUrl,
		KpayQrImage:           row.KpayQrImage,
		OrganizationRequestID: row.OrganizationRequestID,
		CreatedAt:             row.CreatedAt.Time,
		UpdatedAt:             row.UpdatedAt.Time,
	}
}
