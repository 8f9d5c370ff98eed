package store

import (
	"context"

	"github.com/google/uuid"

	"donorhub.app/api/core/db/sqlc"
	"donorhub.app/api/internal/model"
)

type eventStore struct {
	queries *sqlc.Queries
}

func newEventStore(queries *sqlc.Queries) EventStore {
	return &eventStore{queries: queries}
}

func (s *eventStore) Create(ctx context.Context, event *model.Event) error {
	row, err := s.queries.CreateEvent(ctx, sqlc.CreateEventParams{
		ID:             event.ID,
		OrganizationID: event.OrganizationID,
		Title:          event.Title,
		Description:    event.Description,
		Status:         string(event.Status),
		TargetAmount:   toNumeric(event.TargetAmount),
		StartDate:      toTimestamptz(event.StartDate),
		EndDate:        toTimestamptz(event.EndDate),
	})
	if err != nil {
		return translate(err)
	}
	*event = *toEventModel(row)
	return nil
}

func (s *eventStore) GetByID(ctx context.Context, id uuid.UUID) (*model.Event, error) {
	row, err := s.queries.GetEvent(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return toEventModel(row), nil
}

func (s *eventStore) Update(ctx context.Context, event *model.Event) error {
	row, err := s.queries.UpdateEvent(ctx, sqlc.UpdateEventParams{
		ID:           event.ID,
		Title:        event.Title,
		Description:  event.Description,
		Status:       string(event.Status),
		TargetAmount: toNumeric(event.TargetAmount),
		EndDate:      toTimestamptz(event.EndDate),
	})
	if err != nil {
		return translate(err)
	}
	*event = *toEventModel(row)
	return nil
}

func (s *eventStore) ListByOrganization(ctx context.Context, orgID uuid.UUID, status *model.EventStatus, page model.Page) ([]model.Event, error) {
	page = page.Normalize()
	rows, err := s.queries.ListEventsByOrganization(ctx, sqlc.ListEventsByOrganizationParams{
		OrganizationID: orgID,
		Status:         strPtr(status),
		Limit:          page.Limit,
		Offset:         page.Offset,
	})
	if err != nil {
		return nil, err
	}
	return toEventModels(rows), nil
}

func (s *eventStore) ListOpen(ctx context.Context, page model.Page) ([]model.Event, error) {
	page = page.Normalize()
	rows, err := s.queries.ListOpenEvents(ctx, sqlc.ListOpenEventsParams{
		Limit:  page.Limit,
		Offset: page.Offset,
	})
	if err != nil {
		return nil, err
	}
	return toEventModels(rows), nil
}

func toEventModel(row sqlc.Event) *model.Event {
	return &model.Event{
		ID:             row.ID,
		OrganizationID: row.OrganizationID,
		Title:          row.Title,
		Description:    row.Description,
		Status:         model.EventStatus(row.Status),
		TargetAmount:   toDecimal(row.TargetAmount),
		StartDate:      row.StartDate.Time,
		EndDate:        row.EndDate.Time,
		CreatedAt:      row.CreatedAt.Time,
		UpdatedAt:      row.UpdatedAt.Time,
	}
}

func toEventModels(rows []sqlc.Event) []model.Event {
	result := make([]model.Event, len(rows))
	for i, row := range rows {
		result[i] = *toEventModel(row)
	}
	return result
}
