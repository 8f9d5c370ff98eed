package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"donorhub.app/api/internal/model"
	"donorhub.app/api/internal/store"
)

type SubmitRequestInput struct {
	OrganizationName string
	Type             string
	Files            []FileUpload
}

type OrganizationRequestDetail struct {
	model.OrganizationRequest
	Attachments    []model.Attachment `json:"attachments"`
	OrganizationID *uuid.UUID         `json:"organization_id,omitempty"`
}

type OrganizationRequestService interface {
	Submit(ctx context.Context, actor *model.User, in SubmitRequestInput) (*OrganizationRequestDetail, error)
	Review(ctx context.Context, reviewer *model.User, id uuid.UUID, status model.OrganizationRequestStatus) (*OrganizationRequestDetail, error)
	// EnsureOrganization creates the organization of an approved request unless it exists.
	// Staff use it to repair an approval whose organization went missing.
	EnsureOrganization(ctx context.Context, actor *model.User, requestID uuid.UUID) (*model.Organization, error)
	Get(ctx context.Context, actor *model.User, id uuid.UUID) (*OrganizationRequestDetail, error)
	List(ctx context.Context, actor *model.User, status *model.OrganizationRequestStatus, search *string, page model.Page) ([]model.OrganizationRequest, error)
}

type organizationRequestService struct {
	stores        StoreProvider
	txRunner      TxRunner
	attachments   AttachmentService
	notifications NotificationService
}

func NewOrganizationRequestService(stores StoreProvider, txRunner TxRunner, attachments AttachmentService, notifications NotificationService) OrganizationRequestService {
	return &organizationRequestService{
		stores:        stores,
		txRunner:      txRunner,
		attachments:   attachments,
		notifications: notifications,
	}
}

func (s *organizationRequestService) Submit(ctx context.Context, actor *model.User, in SubmitRequestInput) (*OrganizationRequestDetail, error) {
	name := strings.ToLower(strings.TrimSpace(in.OrganizationName))
	orgType := strings.ToLower(strings.TrimSpace(in.Type))
	if name == "" {
		return nil, validationErr("organization_name", "is required")
	}
	if orgType == "" {
		return nil, validationErr("type", "is required")
	}
	if len(in.Files) == 0 {
		return nil, validationErr("attachments", "at least one certificate is required")
	}

	stored, err := s.attachments.Upload(ctx, model.OwnerKindOrganizationRequest, in.Files)
	if err != nil {
		return nil, err
	}

	req := &model.OrganizationRequest{
		ID:               uuid.New(),
		SubmittedBy:      actor.ID,
		OrganizationName: name,
		Type:             orgType,
		Status:           model.OrganizationRequestStatusPending,
	}

	var atts []model.Attachment
	err = s.txRunner.WithTx(ctx, func(sp StoreProvider) error {
		if err := sp.OrganizationRequests().Create(ctx, req); err != nil {
			return fmt.Errorf("creating organization request: %w", err)
		}
		created, err := s.attachments.Attach(ctx, sp.Attachments(), model.Owner{Kind: model.OwnerKindOrganizationRequest, ID: req.ID}, stored)
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

	slog.InfoContext(ctx, "organization request submitted",
		"request_id", req.ID,
		"submitted_by", actor.ID,
		"organization_name", name,
	)

	return &OrganizationRequestDetail{OrganizationRequest: *req, Attachments: atts}, nil
}

func (s *organizationRequestService) Review(ctx context.Context, reviewer *model.User, id uuid.UUID, status model.OrganizationRequestStatus) (*OrganizationRequestDetail, error) {
	if !reviewer.IsStaff {
		return nil, notFound("organization request")
	}
	if status != model.OrganizationRequestStatusApproved && status != model.OrganizationRequestStatusRejected {
		return nil, validationErr("status", "must be approved or rejected")
	}

	var (
		req *model.OrganizationRequest
		org *model.Organization
	)
	err := s.txRunner.WithTx(ctx, func(sp StoreProvider) error {
		current, err := sp.OrganizationRequests().GetByIDForUpdate(ctx, id)
		if err != nil {
			return lookupErr("organization request", err)
		}
		if current.IsFinal() {
			return invalidState("organization request %s is already approved", id)
		}

		current.Status = status
		current.ApprovedBy = nil
		current.ApprovedAt = nil
		if status == model.OrganizationRequestStatusApproved {
			now := time.Now().UTC()
			current.ApprovedBy = &reviewer.ID
			current.ApprovedAt = &now
		}
		if err := sp.OrganizationRequests().UpdateStatus(ctx, current); err != nil {
			return fmt.Errorf("updating organization request: %w", err)
		}
		req = current

		if status == model.OrganizationRequestStatusApproved {
			org, err = ensureOrganization(ctx, sp, current)
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "organization request reviewed",
		"request_id", id,
		"status", status,
		"reviewer_id", reviewer.ID,
	)

	s.notifyReview(ctx, req)

	detail, err := s.detail(ctx, req)
	if err != nil {
		return nil, err
	}
	if org != nil {
		detail.OrganizationID = &org.ID
	}
	return detail, nil
}

func (s *organizationRequestService) notifyReview(ctx context.Context, req *model.OrganizationRequest) {
	in := NotificationInput{
		ReceiverID: req.SubmittedBy,
		SourceKind: string(model.OwnerKindOrganizationRequest),
		SourceID:   req.ID,
		Highlight:  &req.OrganizationName,
	}
	if req.Status == model.OrganizationRequestStatusApproved {
		in.Title = "Organization approved"
		in.Message = fmt.Sprintf("Your request to register %s has been approved.", req.OrganizationName)
		in.Type = model.NotificationTypeSuccess
	} else {
		in.Title = "Organization request rejected"
		in.Message = fmt.Sprintf("Your request to register %s has been rejected.", req.OrganizationName)
		in.Type = model.NotificationTypeFailure
	}
	s.notifications.Notify(ctx, in)
}

func (s *organizationRequestService) EnsureOrganization(ctx context.Context, actor *model.User, requestID uuid.UUID) (*model.Organization, error) {
	if !actor.IsStaff {
		return nil, notFound("organization request")
	}

	var org *model.Organization
	err := s.txRunner.WithTx(ctx, func(sp StoreProvider) error {
		req, err := sp.OrganizationRequests().GetByIDForUpdate(ctx, requestID)
		if err != nil {
			return lookupErr("organization request", err)
		}
		if req.Status != model.OrganizationRequestStatusApproved {
			return invalidState("organization request %s is not approved", requestID)
		}
		org, err = ensureOrganization(ctx, sp, req)
		return err
	})
	if err != nil {
		return nil, err
	}
	return org, nil
}

// ensureOrganization must run inside the transaction holding the request row lock.
// The unique constraint on organization_request_id is the final guard.
func ensureOrganization(ctx context.Context, sp StoreProvider, req *model.OrganizationRequest) (*model.Organization, error) {
	existing, err := sp.Organizations().GetByRequestID(ctx, req.ID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("looking up organization for request: %w", err)
	}

	org := &model.Organization{
		ID:                    uuid.New(),
		AdminID:               req.SubmittedBy,
		Name:                  strings.ToLower(req.OrganizationName),
		Type:                  strings.ToLower(req.Type),
		OrganizationRequestID: req.ID,
	}
	if err := sp.Organizations().Create(ctx, org); err != nil {
		if errors.Is(err, store.ErrConflict) {
			existing, err := sp.Organizations().GetByRequestID(ctx, req.ID)
			if err != nil {
				return nil, fmt.Errorf("loading concurrently created organization: %w", err)
			}
			return existing, nil
		}
		return nil, fmt.Errorf("creating organization: %w", err)
	}

	slog.InfoContext(ctx, "organization created", "organization_id", org.ID, "request_id", req.ID)
	return org, nil
}

func (s *organizationRequestService) Get(ctx context.Context, actor *model.User, id uuid.UUID) (*OrganizationRequestDetail, error) {
	req, err := s.stores.OrganizationRequests().GetByID(ctx, id)
	if err != nil {
		return nil, lookupErr("organization request", err)
	}
	if !actor.IsStaff && req.SubmittedBy != actor.ID {
		return nil, notFound("organization request")
	}
	detail, err := s.detail(ctx, req)
	if err != nil {
		return nil, err
	}
	if req.Status == model.OrganizationRequestStatusApproved {
		org, err := s.stores.Organizations().GetByRequestID(ctx, req.ID)
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("looking up organization for request: %w", err)
		}
		if org != nil {
			detail.OrganizationID = &org.ID
		}
	}
	return detail, nil
}

func (s *organizationRequestService) List(ctx context.Context, actor *model.User, status *model.OrganizationRequestStatus, search *string, page model.Page) ([]model.OrganizationRequest, error) {
	if !actor.IsStaff {
		return nil, notFound("organization requests")
	}
	if status != nil && !status.Valid() {
		return nil, validationErr("status", "unknown status")
	}
	reqs, err := s.stores.OrganizationRequests().List(ctx, status, search, page)
	if err != nil {
		return nil, fmt.Errorf("listing organization requests: %w", err)
	}
	return reqs, nil
}

func (s *organizationRequestService) detail(ctx context.Context, req *model.OrganizationRequest) (*OrganizationRequestDetail, error) {
	atts, err := s.attachments.List(ctx, model.Owner{Kind: model.OwnerKindOrganizationRequest, ID: req.ID})
	if err != nil {
		return nil, err
	}
	return &OrganizationRequestDetail{OrganizationRequest: *req, Attachments: atts}, nil
}
