package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"donorhub.app/api/common/logger"
	"donorhub.app/api/internal/model"
	"donorhub.app/api/internal/notify"
	"donorhub.app/api/internal/store"
)

const maxChatMessageLength = 4000

// Kinds of messages published on a chat channel.
const (
	ChatMessageCreated = "chat_message"
	ChatMessageUpdated = "chat_message_updated"
	ChatMessageDeleted = "chat_message_deleted"
	ChatDeleted        = "chat_deleted"
)

// ChatService runs the donor to organization conversations. Only the donor and
// the organization admin can see a chat; everyone else gets a NotFoundError.
type ChatService interface {
	// Start returns the existing chat between actor and the organization, or opens one.
	// created reports whether a new chat was opened.
	Start(ctx context.Context, actor *model.User, orgID uuid.UUID) (chat *model.Chat, created bool, err error)
	ListMine(ctx context.Context, actor *model.User, page model.Page) ([]model.Chat, error)
	ListForOrganization(ctx context.Context, actor *model.User, orgID uuid.UUID, page model.Page) ([]model.Chat, error)
	Get(ctx context.Context, actor *model.User, id uuid.UUID) (*model.Chat, error)
	Delete(ctx context.Context, actor *model.User, id uuid.UUID) error

	Messages(ctx context.Context, actor *model.User, chatID uuid.UUID, page model.Page) ([]model.ChatMessage, error)
	Send(ctx context.Context, actor *model.User, chatID uuid.UUID, content string) (*model.ChatMessage, error)
	EditMessage(ctx context.Context, actor *model.User, id uuid.UUID, content string) (*model.ChatMessage, error)
	DeleteMessage(ctx context.Context, actor *model.User, id uuid.UUID) error
}

type chatService struct {
	stores        StoreProvider
	publisher     notify.Publisher
	channelPrefix string
}

func NewChatService(stores StoreProvider, publisher notify.Publisher, channelPrefix string) ChatService {
	return &chatService{
		stores:        stores,
		publisher:     publisher,
		channelPrefix: channelPrefix,
	}
}

func (s *chatService) Start(ctx context.Context, actor *model.User, orgID uuid.UUID) (*model.Chat, bool, error) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		OrganizationID: &orgID,
		Component:      "donorhub.service.chat",
	})

	org, err := s.stores.Organizations().GetByID(ctx, orgID)
	if err != nil {
		return nil, false, lookupErr("organization", err)
	}
	if org.IsAdmin(actor.ID) {
		return nil, false, validationErr("organization_id", "cannot start a chat with your own organization")
	}

	existing, err := s.stores.Chats().GetByParticipants(ctx, actor.ID, orgID)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, false, fmt.Errorf("getting chat: %w", err)
	}

	chat := &model.Chat{
		ID:             uuid.New(),
		DonorID:        actor.ID,
		OrganizationID: orgID,
	}
	if err := s.stores.Chats().Create(ctx, chat); err != nil {
		if !errors.Is(err, store.ErrConflict) {
			return nil, false, fmt.Errorf("creating chat: %w", err)
		}
		// Another request opened it first.
		existing, err := s.stores.Chats().GetByParticipants(ctx, actor.ID, orgID)
		if err != nil {
			return nil, false, lookupErr("chat", err)
		}
		return existing, false, nil
	}

	slog.InfoContext(ctx, "chat started", "chat_id", chat.ID, "donor_id", actor.ID)
	return chat, true, nil
}

func (s *chatService) ListMine(ctx context.Context, actor *model.User, page model.Page) ([]model.Chat, error) {
	chats, err := s.stores.Chats().ListByDonor(ctx, actor.ID, page)
	if err != nil {
		return nil, fmt.Errorf("listing chats: %w", err)
	}
	return chats, nil
}

func (s *chatService) ListForOrganization(ctx context.Context, actor *model.User, orgID uuid.UUID, page model.Page) ([]model.Chat, error) {
	org, err := s.stores.Organizations().GetByID(ctx, orgID)
	if err != nil {
		return nil, lookupErr("organization", err)
	}
	if !org.IsAdmin(actor.ID) {
		return nil, notFound("organization")
	}

	chats, err := s.stores.Chats().ListByOrganization(ctx, orgID, page)
	if err != nil {
		return nil, fmt.Errorf("listing chats: %w", err)
	}
	return chats, nil
}

func (s *chatService) Get(ctx context.Context, actor *model.User, id uuid.UUID) (*model.Chat, error) {
	return s.participantChat(ctx, actor, id)
}

// Delete is reserved to the donor who opened the chat.
func (s *chatService) Delete(ctx context.Context, actor *model.User, id uuid.UUID) error {
	ctx = logger.WithLogFields(ctx, logger.LogFields{ChatID: &id, Component: "donorhub.service.chat"})

	chat, err := s.participantChat(ctx, actor, id)
	if err != nil {
		return err
	}
	if chat.DonorID != actor.ID {
		return notFound("chat")
	}

	if err := s.stores.Chats().Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting chat: %w", err)
	}

	s.publish(ctx, chat.ID, ChatDeleted, map[string]any{"id": chat.ID})
	slog.InfoContext(ctx, "chat deleted", "actor_id", actor.ID)
	return nil
}

func (s *chatService) Messages(ctx context.Context, actor *model.User, chatID uuid.UUID, page model.Page) ([]model.ChatMessage, error) {
	if _, err := s.participantChat(ctx, actor, chatID); err != nil {
		return nil, err
	}

	messages, err := s.stores.Chats().ListMessages(ctx, chatID, page)
	if err != nil {
		return nil, fmt.Errorf("listing chat messages: %w", err)
	}
	return messages, nil
}

func (s *chatService) Send(ctx context.Context, actor *model.User, chatID uuid.UUID, content string) (*model.ChatMessage, error) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{ChatID: &chatID, Component: "donorhub.service.chat"})

	content, err := normalizeContent(content)
	if err != nil {
		return nil, err
	}
	if _, err := s.participantChat(ctx, actor, chatID); err != nil {
		return nil, err
	}

	msg := &model.ChatMessage{
		ID:       uuid.New(),
		ChatID:   chatID,
		SenderID: actor.ID,
		Content:  content,
	}
	if err := s.stores.Chats().CreateMessage(ctx, msg); err != nil {
		return nil, lookupErr("chat", err)
	}

	s.publish(ctx, chatID, ChatMessageCreated, msg)
	slog.DebugContext(ctx, "chat message sent", "message_id", msg.ID, "sender_id", actor.ID)
	return msg, nil
}

// EditMessage lets the sender rewrite their own message.
func (s *chatService) EditMessage(ctx context.Context, actor *model.User, id uuid.UUID, content string) (*model.ChatMessage, error) {
	content, err := normalizeContent(content)
	if err != nil {
		return nil, err
	}

	current, err := s.ownMessage(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	ctx = logger.WithLogFields(ctx, logger.LogFields{ChatID: &current.ChatID, Component: "donorhub.service.chat"})

	msg, err := s.stores.Chats().UpdateMessage(ctx, id, content)
	if err != nil {
		return nil, lookupErr("message", err)
	}

	s.publish(ctx, msg.ChatID, ChatMessageUpdated, msg)
	return msg, nil
}

func (s *chatService) DeleteMessage(ctx context.Context, actor *model.User, id uuid.UUID) error {
	current, err := s.ownMessage(ctx, actor, id)
	if err != nil {
		return err
	}
	ctx = logger.WithLogFields(ctx, logger.LogFields{ChatID: &current.ChatID, Component: "donorhub.service.chat"})

	if err := s.stores.Chats().DeleteMessage(ctx, id); err != nil {
		return fmt.Errorf("deleting chat message: %w", err)
	}

	s.publish(ctx, current.ChatID, ChatMessageDeleted, map[string]any{"id": current.ID, "chat_id": current.ChatID})
	return nil
}

// participantChat loads the chat when actor is its donor or the organization admin.
func (s *chatService) participantChat(ctx context.Context, actor *model.User, id uuid.UUID) (*model.Chat, error) {
	chat, err := s.stores.Chats().GetByID(ctx, id)
	if err != nil {
		return nil, lookupErr("chat", err)
	}
	if chat.DonorID == actor.ID {
		return chat, nil
	}

	org, err := s.stores.Organizations().GetByID(ctx, chat.OrganizationID)
	if err != nil {
		return nil, lookupErr("chat", err)
	}
	if !org.IsAdmin(actor.ID) {
		return nil, notFound("chat")
	}
	return chat, nil
}

func (s *chatService) ownMessage(ctx context.Context, actor *model.User, id uuid.UUID) (*model.ChatMessage, error) {
	msg, err := s.stores.Chats().GetMessage(ctx, id)
	if err != nil {
		return nil, lookupErr("message", err)
	}
	if msg.SenderID != actor.ID {
		return nil, notFound("message")
	}
	return msg, nil
}

// publish runs after the write committed. A failed publish is logged only:
// clients catch up through the message listing.
func (s *chatService) publish(ctx context.Context, chatID uuid.UUID, kind string, payload any) {
	channel := notify.ChatChannel(s.channelPrefix, chatID)
	if err := s.publisher.Publish(ctx, channel, notify.Message{Kind: kind, Payload: payload}); err != nil {
		slog.ErrorContext(ctx, "chat publish failed", "channel", channel, "kind", kind, "error", err)
	}
}

func normalizeContent(content string) (string, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return "", validationErr("content", "is required")
	}
	if utf8.RuneCountInString(content) > maxChatMessageLength {
		return "", validationErr("content", fmt.Sprintf("must be at most %d characters", maxChatMessageLength))
	}
	return content, nil
}
