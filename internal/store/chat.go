package store

import (
	"context"

	"github.com/google/uuid"

	"donorhub.app/api/core/db/sqlc"
	"donorhub.app/api/internal/model"
)

type chatStore struct {
	queries *sqlc.Queries
}

func newChatStore(queries *sqlc.Queries) ChatStore {
	return &chatStore{queries: queries}
}

func (s *chatStore) Create(ctx context.Context, chat *model.Chat) error {
	row, err := s.queries.CreateChat(ctx, sqlc.CreateChatParams{
		ID:             chat.ID,
		DonorID:        chat.DonorID,
		OrganizationID: chat.OrganizationID,
	})
	if err != nil {
		return translate(err)
	}
	*chat = *toChatModel(row)
	return nil
}

func (s *chatStore) GetByID(ctx context.Context, id uuid.UUID) (*model.Chat, error) {
	row, err := s.queries.GetChat(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return toChatModel(row), nil
}

func (s *chatStore) GetByParticipants(ctx context.Context, donorID, orgID uuid.UUID) (*model.Chat, error) {
	row, err := s.queries.GetChatByParticipants(ctx, sqlc.GetChatByParticipantsParams{
		DonorID:        donorID,
		OrganizationID: orgID,
	})
	if err != nil {
		return nil, translate(err)
	}
	return toChatModel(row), nil
}

func (s *chatStore) ListByDonor(ctx context.Context, donorID uuid.UUID, page model.Page) ([]model.Chat, error) {
	page = page.Normalize()
	rows, err := s.queries.ListChatsByDonor(ctx, sqlc.ListChatsByDonorParams{
		DonorID: donorID,
		Limit:   page.Limit,
		Offset:  page.Offset,
	})
	if err != nil {
		return nil, err
	}
	return toChatModels(rows), nil
}

func (s *chatStore) ListByOrganization(ctx context.Context, orgID uuid.UUID, page model.Page) ([]model.Chat, error) {
	page = page.Normalize()
	rows, err := s.queries.ListChatsByOrganization(ctx, sqlc.ListChatsByOrganizationParams{
		OrganizationID: orgID,
		Limit:          page.Limit,
		Offset:         page.Offset,
	})
	if err != nil {
		return nil, err
	}
	return toChatModels(rows), nil
}

// Delete removes the chat and, through the cascade, its messages.
func (s *chatStore) Delete(ctx context.Context, id uuid.UUID) error {
	return s.queries.DeleteChat(ctx, id)
}

func (s *chatStore) CreateMessage(ctx context.Context, msg *model.ChatMessage) error {
	row, err := s.queries.CreateChatMessage(ctx, sqlc.CreateChatMessageParams{
		ID:       msg.ID,
		ChatID:   msg.ChatID,
		SenderID: msg.SenderID,
		Content:  msg.Content,
	})
	if err != nil {
		return translate(err)
	}
	*msg = *toChatMessageModel(row)
	return nil
}

func (s *chatStore) GetMessage(ctx context.Context, id uuid.UUID) (*model.ChatMessage, error) {
	row, err := s.queries.GetChatMessage(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return toChatMessageModel(row), nil
}

func (s *chatStore) UpdateMessage(ctx context.Context, id uuid.UUID, content string) (*model.ChatMessage, error) {
	row, err := s.queries.UpdateChatMessage(ctx, sqlc.UpdateChatMessageParams{
		ID:      id,
		Content: content,
	})
	if err != nil {
		return nil, translate(err)
	}
	return toChatMessageModel(row), nil
}

func (s *chatStore) DeleteMessage(ctx context.Context, id uuid.UUID) error {
	return s.queries.DeleteChatMessage(ctx, id)
}

func (s *chatStore) ListMessages(ctx context.Context, chatID uuid.UUID, page model.Page) ([]model.ChatMessage, error) {
	page = page.Normalize()
	rows, err := s.queries.ListChatMessages(ctx, sqlc.ListChatMessagesParams{
		ChatID: chatID,
		Limit:  page.Limit,
		Offset: page.Offset,
	})
	if err != nil {
		return nil, err
	}
	result := make([]model.ChatMessage, len(rows))
	for i, row := range rows {
		result[i] = *toChatMessageModel(row)
	}
	return result, nil
}

func toChatModels(rows []sqlc.Chat) []model.Chat {
	result := make([]model.Chat, len(rows))
	for i, row := range rows {
		result[i] = *toChatModel(row)
	}
	return result
}

func toChatModel(row sqlc.Chat) *model.Chat {
	return &model.Chat{
		ID:             row.ID,
		DonorID:        row.DonorID,
		OrganizationID: row.OrganizationID,
		CreatedAt:      row.CreatedAt.Time,
	}
}

func toChatMessageModel(row sqlc.ChatMessage) *model.ChatMessage {
	return &model.ChatMessage{
		ID:        row.ID,
		ChatID:    row.ChatID,
		SenderID:  row.SenderID,
		Content:   row.Content,
		CreatedAt: row.CreatedAt.Time,
		UpdatedAt: row.UpdatedAt.Time,
	}
}
