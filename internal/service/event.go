package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"donorhub.app/api/internal/model"
)

type CreateEventInput struct {
	OrganizationID uuid.UUID
	Title          string
	Description    string
	TargetAmount   decimal.Decimal
	EndDate        time.Time
	Files          []FileUpload
}

type UpdateEventInput struct {
	Title        *string
	Description  *string
	Status       *model.EventStatus
	TargetAmount *decimal.Decimal
	EndDate      *time.Time
}

type EventDetail struct {
	model.Event
	Attachments []model.Attachment `json:"attachments"`
}

type EventService interface {
	Create(ctx context.Context, actor *model.User, in CreateEventInput) (*EventDetail, error)
	Update(ctx context.Context, actor *model.User, orgID, id uuid.UUID, in UpdateEventInput) (*EventDetail, error)
	Get(ctx context.Context, orgID, id uuid.UUID) (*EventDetail, error)
	List(ctx context.Context, orgID uuid.UUID, status *model.EventStatus, page model.Page) ([]EventDetail, error)
	ListOpen(ctx context.Context, page model.Page) ([]EventDetail, error)
}

type eventService struct {
	stores      StoreProvider
	txRunner    TxRunner
	attachments AttachmentService
	now         func() time.Time
}

func NewEventService(stores StoreProvider, txRunner TxRunner, attachments AttachmentService) EventService {
	return &eventService{
		stores:      stores,
		txRunner:    txRunner,
		attachments: attachments,
		now:         time.Now,
	}
}

func (s *eventService) Create(ctx context.Context, actor *model.User, in CreateEventInput) (*EventDetail, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, validationErr("title", "is required")
	}
	if err := validateAmount("target_amount", in.TargetAmount); err != nil {
		return nil, err
	}
	now := s.now().UTC()
	if !in.EndDate.After(now) {
		return nil, validationErr("end_date", "must be in the future")
	}

	org, err := adminOrganization(ctx, s.stores.Organizations(), in.OrganizationID, actor)
	if err != nil {
		return nil, err
	}
	if err := requirePaymentSetup(org); err != nil {
		return nil, err
	}

	stored, err := s.attachments.Upload(ctx, model.OwnerKindEvent, in.Files)
	if err != nil {
		return nil, err
	}

	event := &model.Event{
		ID:             uuid.New(),
		OrganizationID: org.ID,
		Title:          title,
		Description:    strings.TrimSpace(in.Description),
		Status:         model.EventStatusOpen,
		TargetAmount:   in.TargetAmount,
		StartDate:      now,
		EndDate:        in.EndDate,
	}

	var atts []model.Attachment
	err = s.txRunner.WithTx(ctx, func(sp StoreProvider) error {
		if err := sp.Events().Create(ctx, event); err != nil {
			return fmt.Errorf("creating event: %w", err)
		}
		created, err := s.attachments.Attach(ctx, sp.Attachments(), model.Owner{Kind: model.OwnerKindEvent, ID: event.ID}, stored)
		if err != nil {
			return err
		}
		atts = created
		return nil
	})
	if err != nil {
		s.attachments.Discard(ctx, storedURLs(stored))
		return nil, err
	}

	slog.InfoContext(ctx, "event created", "event_id", event.ID, "organization_id", org.ID)

	return &EventDetail{Event: *event, Attachments: atts}, nil
}

func (s *eventService) Update(ctx context.Context, actor *model.User, orgID, id uuid.UUID, in UpdateEventInput) (*EventDetail, error) {
	if in.Title != nil && isBlank(in.Title) {
		return nil, validationErr("title", "must not be blank")
	}
	if in.Status != nil && !in.Status.Valid() {
		return nil, validationErr("status", "must be open or closed")
	}
	if in.TargetAmount != nil {
		if err := validateAmount("target_amount", *in.TargetAmount); err != nil {
			return nil, err
		}
	}
	if in.EndDate != nil && !in.EndDate.After(s.now()) {
		return nil, validationErr("end_date", "must be in the future")
	}

	var event *model.Event
	err := s.txRunner.WithTx(ctx, func(sp StoreProvider) error {
		current, err := sp.Events().GetByID(ctx, id)
		if err != nil {
			return lookupErr("event", err)
		}
		if current.OrganizationID != orgID {
			return notFound("event")
		}
		if _, err := adminOrganization(ctx, sp.Organizations(), orgID, actor); err != nil {
			return notFound("event")
		}

		if in.Title != nil {
			current.Title = strings.TrimSpace(*in.Title)
		}
		if in.Description != nil {
			current.Description = strings.TrimSpace(*in.Description)
		}
		if in.Status != nil {
			current.Status = *in.Status
		}
		if in.TargetAmount != nil {
			current.TargetAmount = *in.TargetAmount
		}
		if in.EndDate != nil {
			current.EndDate = *in.EndDate
		}
		if err := sp.Events().Update(ctx, current); err != nil {
			return fmt.Errorf("updating event: %w", err)
		}
		event = current
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.detail(ctx, event)
}

func (s *eventService) Get(ctx context.Context, orgID, id uuid.UUID) (*EventDetail, error) {
	event, err := s.stores.Events().GetByID(ctx, id)
	if err != nil {
		return nil, lookupErr("event", err)
	}
	if event.OrganizationID != orgID {
		return nil, notFound("event")
	}
	return s.detail(ctx, event)
}

func (s *eventService) detail(ctx context.Context, event *model.Event) (*EventDetail, error) {
	atts, err := s.attachments.List(ctx, model.Owner{Kind: model.OwnerKindEvent, ID: event.ID})
	if err != nil {
		return nil, err
	}
	return &EventDetail{Event: *event, Attachments: atts}, nil
}

func (s *eventService) List(ctx context.Context, orgID uuid.UUID, status *model.EventStatus, page model.Page) ([]EventDetail, error) {
	if status != nil && !status.Valid() {
		return nil, validationErr("status", "must be open or closed")
	}
	events, err := s.stores.Events().ListByOrganization(ctx, orgID, status, page)
	if err != nil {
		return nil, fmt.Errorf("listing events: %w", err)
	}
	return s.details(ctx, events)
}

func (s *eventService) ListOpen(ctx context.Context, page model.Page) ([]EventDetail, error) {
	events, err := s.stores.Events().ListOpen(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("listing open events: %w", err)
	}
	return s.details(ctx, events)
}

func (s *eventService) details(ctx context.Context, events []model.Event) ([]EventDetail, error) {
	ids := make([]uuid.UUID, len(events))
	for i, e := range events {
		ids[i] = e.ID
	}
	atts, err := s.attachments.ListByOwners(ctx, model.OwnerKindEvent, ids)
	if err != nil {
		return nil, err
	}
	result := make([]EventDetail, len(events))
	for i, e := range events {
		result[i] = EventDetail{Event: e, Attachments: atts[e.ID]}
		if result[i].Attachments == nil {
			result[i].Attachments = []model.Attachment{}
		}
	}
	return result, nil
}
