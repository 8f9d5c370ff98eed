package store

import (
	"context"

	"github.com/google/uuid"

	"donorhub.app/api/core/db/sqlc"
	"donorhub.app/api/internal/model"
)

type notificationStore struct {
	queries *sqlc.Queries
}

func newNotificationStore(queries *sqlc.Queries) NotificationStore {
	return &notificationStore{queries: queries}
}

func (s *notificationStore) Create(ctx context.Context, n *model.Notification) error {
	row, err := s.queries.CreateNotification(ctx, sqlc.CreateNotificationParams{
		ID:         n.ID,
		ReceiverID: n.ReceiverID,
		SourceKind: n.SourceKind,
		SourceID:   n.SourceID,
		Title:      n.Title,
		Highlight:  n.Highlight,
		Message:    n.Message,
		Type:       string(n.Type),
	})
	if err != nil {
		return translate(err)
	}
	*n = *toNotificationModel(row)
	return nil
}

func (s *notificationStore) List(ctx context.Context, receiverID uuid.UUID, unreadOnly bool, page model.Page) ([]model.Notification, error) {
	page = page.Normalize()
	rows, err := s.queries.ListNotifications(ctx, sqlc.ListNotificationsParams{
		ReceiverID: receiverID,
		UnreadOnly: unreadOnly,
		Limit:      page.Limit,
		Offset:     page.Offset,
	})
	if err != nil {
		return nil, err
	}
	result := make([]model.Notification, len(rows))
	for i, row := range rows {
		result[i] = *toNotificationModel(row)
	}
	return result, nil
}

func (s *notificationStore) MarkRead(ctx context.Context, id, receiverID uuid.UUID) (*model.Notification, error) {
	row, err := s.queries.MarkNotificationRead(ctx, sqlc.MarkNotificationReadParams{
		ID:         id,
		ReceiverID: receiverID,
	})
	if err != nil {
		return nil, translate(err)
	}
	return toNotificationModel(row), nil
}

func (s *notificationStore) MarkAllRead(ctx context.Context, receiverID uuid.UUID) error {
	return s.queries.MarkAllNotificationsRead(ctx, receiverID)
}

func toNotificationModel(row sqlc.Notification) *model.Notification {
	return &model.Notification{
		ID:         row.ID,
		ReceiverID: row.ReceiverID,
		SourceKind: row.SourceKind,
		SourceID:   row.SourceID,
		Title:      row.Title,
		Highlight:  row.Highlight,
		Message:    row.Message,
		Type:       model.NotificationType(row.Type),
		IsRead:     row.IsRead,
		CreatedAt:  row.CreatedAt.Time,
	}
}
