package store

import (
	"context"

	"github.com/google/uuid"

	"donorhub.app/api/core/db/sqlc"
	"donorhub.app/api/internal/model"
)

type attachmentStore struct {
	queries *sqlc.Queries
}

func newAttachmentStore(queries *sqlc.Queries) AttachmentStore {
	return &attachmentStore{queries: queries}
}

func (s *attachmentStore) Create(ctx context.Context, att *model.Attachment) error {
	row, err := s.queries.CreateAttachment(ctx, sqlc.CreateAttachmentParams{
		ID:        att.ID,
		OwnerKind: string(att.OwnerKind),
		OwnerID:   att.OwnerID,
		File:      att.File,
		FileName:  att.FileName,
	})
	if err != nil {
		return translate(err)
	}
	*att = toAttachmentModel(row)
	return nil
}

func (s *attachmentStore) ListByOwner(ctx context.Context, owner model.Owner) ([]model.Attachment, error) {
	rows, err := s.queries.ListAttachmentsByOwner(ctx, sqlc.ListAttachmentsByOwnerParams{
		OwnerKind: string(owner.Kind),
		OwnerID:   owner.ID,
	})
	if err != nil {
		return nil, err
	}
	return toAttachmentModels(rows), nil
}

func (s *attachmentStore) ListByOwners(ctx context.Context, kind model.OwnerKind, ids []uuid.UUID) ([]model.Attachment, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := s.queries.ListAttachmentsByOwners(ctx, sqlc.ListAttachmentsByOwnersParams{
		OwnerKind: string(kind),
		OwnerIds:  ids,
	})
	if err != nil {
		return nil, err
	}
	return toAttachmentModels(rows), nil
}

func (s *attachmentStore) DeleteByOwner(ctx context.Context, owner model.Owner) ([]model.Attachment, error) {
	rows, err := s.queries.DeleteAttachmentsByOwner(ctx, sqlc.DeleteAttachmentsByOwnerParams{
		OwnerKind: string(owner.Kind),
		OwnerID:   owner.ID,
	})
	if err != nil {
		return nil, err
	}
	return toAttachmentModels(rows), nil
}

func (s *attachmentStore) DeleteByOrganization(ctx context.Context, orgID uuid.UUID) ([]model.Attachment, error) {
	rows, err := s.queries.DeleteOrganizationAttachments(ctx, orgID)
	if err != nil {
		return nil, err
	}
	return toAttachmentModels(rows), nil
}

func toAttachmentModel(row sqlc.Attachment) model.Attachment {
	return model.Attachment{
		ID:        row.ID,
		OwnerKind: model.OwnerKind(row.OwnerKind),
		OwnerID:   row.OwnerID,
		File:      row.File,
		FileName:  row.FileName,
		CreatedAt: row.CreatedAt.Time,
	}
}

func toAttachmentModels(rows []sqlc.Attachment) []model.Attachment {
	result := make([]model.Attachment, len(rows))
	for i, row := range rows {
		result[i] = toAttachmentModel(row)
	}
	return result
}
