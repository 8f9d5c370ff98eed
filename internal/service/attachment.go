package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"donorhub.app/api/internal/model"
	"donorhub.app/api/internal/storage"
	"donorhub.app/api/internal/store"
)

const defaultUploadParallelism = 4

// FileUpload is one file received from a client.
type FileUpload struct {
	FileName string
	Size     int64
	Open     func() (io.ReadCloser, error)
}

// StoredFile is an upload already written to object storage but not yet recorded.
type StoredFile struct {
	URL      string
	FileName string
}

// AttachmentService links stored files to their owners.
//
// Files are uploaded with Upload before the database transaction starts. Attach
// and DetachAll run inside the transaction. Discard removes objects that are no
// longer referenced: the uploads of a failed transaction, or the files of
// replaced attachments once the transaction committed.
type AttachmentService interface {
	Upload(ctx context.Context, kind model.OwnerKind, files []FileUpload) ([]StoredFile, error)
	Attach(ctx context.Context, attachments store.AttachmentStore, owner model.Owner, files []StoredFile) ([]model.Attachment, error)
	DetachAll(ctx context.Context, attachments store.AttachmentStore, owner model.Owner) ([]string, error)
	Discard(ctx context.Context, urls []string)
	List(ctx context.Context, owner model.Owner) ([]model.Attachment, error)
	ListByOwners(ctx context.Context, kind model.OwnerKind, ids []uuid.UUID) (map[uuid.UUID][]model.Attachment, error)
}

type attachmentService struct {
	stores      StoreProvider
	objects     storage.ObjectStorage
	parallelism int
	maxBytes    int64
}

func NewAttachmentService(stores StoreProvider, objects storage.ObjectStorage, parallelism int, maxBytes int64) AttachmentService {
	if parallelism <= 0 {
		parallelism = defaultUploadParallelism
	}
	return &attachmentService{
		stores:      stores,
		objects:     objects,
		parallelism: parallelism,
		maxBytes:    maxBytes,
	}
}

func (s *attachmentService) Upload(ctx context.Context, kind model.OwnerKind, files []FileUpload) ([]StoredFile, error) {
	if len(files) == 0 {
		return nil, nil
	}
	for _, f := range files {
		if err := s.checkPresent(f); err != nil {
			return nil, err
		}
	}

	stored := make([]StoredFile, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.parallelism)

	for i, f := range files {
		g.Go(func() error {
			url, err := s.put(gctx, kind, f)
			if err != nil {
				return err
			}
			stored[i] = StoredFile{URL: url, FileName: f.FileName}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		s.Discard(context.WithoutCancel(ctx), storedURLs(stored))
		return nil, fmt.Errorf("uploading attachments: %w", err)
	}

	return stored, nil
}

func (s *attachmentService) put(ctx context.Context, kind model.OwnerKind, f FileUpload) (string, error) {
	rc, err := f.Open()
	if err != nil {
		return "", fmt.Errorf("opening %q: %w", f.FileName, err)
	}
	defer rc.Close()

	url, err := s.objects.Put(ctx, storage.ObjectKey(string(kind), f.FileName), rc)
	if err != nil {
		return "", fmt.Errorf("storing %q: %w", f.FileName, err)
	}
	return url, nil
}

func (s *attachmentService) checkPresent(f FileUpload) error {
	if strings.TrimSpace(f.FileName) == "" || f.Size <= 0 || f.Open == nil {
		return validationErr("attachments", "file must be present")
	}
	if s.maxBytes > 0 && f.Size > s.maxBytes {
		return validationErr("attachments", fmt.Sprintf("%s exceeds the %d byte limit", f.FileName, s.maxBytes))
	}
	return nil
}

func (s *attachmentService) Attach(ctx context.Context, attachments store.AttachmentStore, owner model.Owner, files []StoredFile) ([]model.Attachment, error) {
	result := make([]model.Attachment, 0, len(files))
	for _, f := range files {
		att := &model.Attachment{
			ID:        uuid.New(),
			OwnerKind: owner.Kind,
			OwnerID:   owner.ID,
			File:      f.URL,
			FileName:  f.FileName,
		}
		if err := attachments.Create(ctx, att); err != nil {
			return nil, fmt.Errorf("creating attachment for %s: %w", owner, err)
		}
		result = append(result, *att)
	}
	return result, nil
}

func (s *attachmentService) DetachAll(ctx context.Context, attachments store.AttachmentStore, owner model.Owner) ([]string, error) {
	removed, err := attachments.DeleteByOwner(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("deleting attachments of %s: %w", owner, err)
	}
	urls := make([]string, len(removed))
	for i, att := range removed {
		urls[i] = att.File
	}
	return urls, nil
}

// Discard is best effort. Failures are logged and leave an orphaned object behind.
func (s *attachmentService) Discard(ctx context.Context, urls []string) {
	for _, url := range urls {
		if url == "" {
			continue
		}
		if err := s.objects.Delete(ctx, url); err != nil {
			slog.WarnContext(ctx, "failed to delete stored object", "url", url, "error", err)
		}
	}
}

func (s *attachmentService) List(ctx context.Context, owner model.Owner) ([]model.Attachment, error) {
	atts, err := s.stores.Attachments().ListByOwner(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("listing attachments of %s: %w", owner, err)
	}
	return atts, nil
}

func (s *attachmentService) ListByOwners(ctx context.Context, kind model.OwnerKind, ids []uuid.UUID) (map[uuid.UUID][]model.Attachment, error) {
	atts, err := s.stores.Attachments().ListByOwners(ctx, kind, ids)
	if err != nil {
		return nil, fmt.Errorf("listing %s attachments: %w", kind, err)
	}
	byOwner := make(map[uuid.UUID][]model.Attachment, len(ids))
	for _, att := range atts {
		byOwner[att.OwnerID] = append(byOwner[att.OwnerID], att)
	}
	return byOwner, nil
}

// keepFiles applies a per-owner count policy. limit 0 keeps everything.
func keepFiles(files []FileUpload, limit int) []FileUpload {
	if limit > 0 && len(files) > limit {
		return files[:limit]
	}
	return files
}

func storedURLs(files []StoredFile) []string {
	urls := make([]string, 0, len(files))
	for _, f := range files {
		if f.URL != "" {
			urls = append(urls, f.URL)
		}
	}
	return urls
}
