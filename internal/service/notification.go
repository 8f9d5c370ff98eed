package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"donorhub.app/api/internal/model"
	"donorhub.app/api/internal/notify"
)

const notifyTimeout = 10 * time.Second

// NotificationInput describes a notification before it is persisted.
type NotificationInput struct {
	ReceiverID uuid.UUID
	SourceKind string
	SourceID   uuid.UUID
	Title      string
	Highlight  *string
	Message    string
	Type       model.NotificationType
}

type NotificationService interface {
	// Notify persists and publishes in the background. It never fails the caller.
	Notify(ctx context.Context, in NotificationInput)
	List(ctx context.Context, userID uuid.UUID, unreadOnly bool, page model.Page) ([]model.Notification, error)
	MarkRead(ctx context.Context, userID, id uuid.UUID) (*model.Notification, error)
	MarkAllRead(ctx context.Context, userID uuid.UUID) error
	// Wait blocks until in-flight deliveries finish.
	Wait()
}

type notificationService struct {
	stores        StoreProvider
	publisher     notify.Publisher
	channelPrefix string
	inflight      sync.WaitGroup
}

func NewNotificationService(stores StoreProvider, publisher notify.Publisher, channelPrefix string) NotificationService {
	return &notificationService{
		stores:        stores,
		publisher:     publisher,
		channelPrefix: channelPrefix,
	}
}

func (s *notificationService) Notify(ctx context.Context, in NotificationInput) {
	ctx = context.WithoutCancel(ctx)
	s.inflight.Add(1)
	go func() {
		defer s.inflight.Done()
		ctx, cancel := context.WithTimeout(ctx, notifyTimeout)
		defer cancel()

		if err := s.deliver(ctx, in); err != nil {
			slog.ErrorContext(ctx, "notification delivery failed",
				"receiver_id", in.ReceiverID,
				"source_kind", in.SourceKind,
				"source_id", in.SourceID,
				"error", err,
			)
		}
	}()
}

func (s *notificationService) deliver(ctx context.Context, in NotificationInput) error {
	n := &model.Notification{
		ID:         uuid.New(),
		ReceiverID: in.ReceiverID,
		SourceKind: in.SourceKind,
		SourceID:   in.SourceID,
		Title:      in.Title,
		Highlight:  in.Highlight,
		Message:    in.Message,
		Type:       in.Type,
	}
	if n.Type == "" {
		n.Type = model.NotificationTypeInfo
	}

	if err := s.stores.Notifications().Create(ctx, n); err != nil {
		return fmt.Errorf("saving notification: %w", err)
	}

	channel := notify.UserChannel(s.channelPrefix, in.ReceiverID)
	if err := s.publisher.Publish(ctx, channel, notify.Message{Kind: "notification", Payload: n}); err != nil {
		return err
	}

	slog.DebugContext(ctx, "notification delivered", "notification_id", n.ID, "channel", channel)
	return nil
}

func (s *notificationService) List(ctx context.Context, userID uuid.UUID, unreadOnly bool, page model.Page) ([]model.Notification, error) {
	items, err := s.stores.Notifications().List(ctx, userID, unreadOnly, page)
	if err != nil {
		return nil, fmt.Errorf("listing notifications: %w", err)
	}
	return items, nil
}

func (s *notificationService) MarkRead(ctx context.Context, userID, id uuid.UUID) (*model.Notification, error) {
	n, err := s.stores.Notifications().MarkRead(ctx, id, userID)
	if err != nil {
		return nil, lookupErr("notification", err)
	}
	return n, nil
}

func (s *notificationService) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	if err := s.stores.Notifications().MarkAllRead(ctx, userID); err != nil {
		return fmt.Errorf("marking notifications read: %w", err)
	}
	return nil
}

func (s *notificationService) Wait() {
	s.inflight.Wait()
}
