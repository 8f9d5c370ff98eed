package service

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"donorhub.app/api/common/logger"
	"donorhub.app/api/internal/model"
	"donorhub.app/api/internal/store"
)

const maxOrganizationAttachments = 2

var phonePattern = regexp.MustCompile(`^[1-9][0-9]{7,9}$`)

type OrganizationDetail struct {
	model.Organization
	Stats       model.OrganizationStats `json:"stats"`
	Attachments []model.Attachment      `json:"attachments"`
}

// UpdateOrganizationInput carries a partial profile update. Nil fields are left untouched,
// an empty string clears the field. Files, when non-nil, replace the current attachments.
type UpdateOrganizationInput struct {
	Description    *string
	PhoneNumber    *string
	Email          *string
	AdditionalInfo *string
	KpayQrURL      *string
	Files          []FileUpload
	QrImage        *FileUpload
}

type OrganizationService interface {
	Get(ctx context.Context, id uuid.UUID) (*OrganizationDetail, error)
	List(ctx context.Context, search *string, page model.Page) ([]model.Organization, error)
	Update(ctx context.Context, actor *model.User, id uuid.UUID, in UpdateOrganizationInput) (*OrganizationDetail, error)
	Delete(ctx context.Context, actor *model.User, id uuid.UUID) error
	Stats(ctx context.Context, id uuid.UUID) (*model.OrganizationStats, error)
}

type organizationService struct {
	stores      StoreProvider
	txRunner    TxRunner
	attachments AttachmentService
}

func NewOrganizationService(stores StoreProvider, txRunner TxRunner, attachments AttachmentService) OrganizationService {
	return &organizationService{
		stores:      stores,
		txRunner:    txRunner,
		attachments: attachments,
	}
}

func (s *organizationService) Get(ctx context.Context, id uuid.UUID) (*OrganizationDetail, error) {
	org, err := s.stores.Organizations().GetByID(ctx, id)
	if err != nil {
		return nil, lookupErr("organization", err)
	}
	return s.detail(ctx, org)
}

func (s *organizationService) detail(ctx context.Context, org *model.Organization) (*OrganizationDetail, error) {
	stats, err := s.Stats(ctx, org.ID)
	if err != nil {
		return nil, err
	}
	atts, err := s.attachments.List(ctx, model.Owner{Kind: model.OwnerKindOrganization, ID: org.ID})
	if err != nil {
		return nil, err
	}
	return &OrganizationDetail{Organization: *org, Stats: *stats, Attachments: atts}, nil
}

func (s *organizationService) List(ctx context.Context, search *string, page model.Page) ([]model.Organization, error) {
	orgs, err := s.stores.Organizations().List(ctx, search, page)
	if err != nil {
		return nil, fmt.Errorf("listing organizations: %w", err)
	}
	return orgs, nil
}

func (s *organizationService) Stats(ctx context.Context, id uuid.UUID) (*model.OrganizationStats, error) {
	stats, err := s.stores.Organizations().Stats(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("computing organization stats: %w", err)
	}
	return stats, nil
}

func (s *organizationService) Update(ctx context.Context, actor *model.User, id uuid.UUID, in UpdateOrganizationInput) (*OrganizationDetail, error) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{OrganizationID: &id})

	if err := validateOrganizationInput(&in); err != nil {
		return nil, err
	}

	current, err := s.stores.Organizations().GetByID(ctx, id)
	if err != nil {
		return nil, lookupErr("organization", err)
	}
	if !current.IsAdmin(actor.ID) && !actor.IsStaff {
		return nil, notFound("organization")
	}

	var stored []StoredFile
	if in.Files != nil {
		stored, err = s.attachments.Upload(ctx, model.OwnerKindOrganization, keepFiles(in.Files, maxOrganizationAttachments))
		if err != nil {
			return nil, err
		}
	}
	var qr []StoredFile
	if in.QrImage != nil {
		qr, err = s.attachments.Upload(ctx, model.OwnerKindOrganization, []FileUpload{*in.QrImage})
		if err != nil {
			s.attachments.Discard(ctx, storedURLs(stored))
			return nil, err
		}
	}

	var (
		org      *model.Organization
		replaced []string
	)
	err = s.txRunner.WithTx(ctx, func(sp StoreProvider) error {
		fresh, err := sp.Organizations().GetByID(ctx, id)
		if err != nil {
			return lookupErr("organization", err)
		}
		org = fresh

		if in.Description != nil {
			org.Description = emptyToNil(in.Description)
		}
		if in.PhoneNumber != nil {
			org.PhoneNumber = emptyToNil(in.PhoneNumber)
		}
		if in.Email != nil {
			org.Email = emptyToNil(in.Email)
		}
		if in.AdditionalInfo != nil {
			org.AdditionalInfo = emptyToNil(in.AdditionalInfo)
		}
		if in.KpayQrURL != nil {
			org.KpayQrURL = emptyToNil(in.KpayQrURL)
		}
		if len(qr) == 1 {
			if org.KpayQrImage != nil {
				replaced = append(replaced, *org.KpayQrImage)
			}
			org.KpayQrImage = &qr[0].URL
		}

		if err := sp.Organizations().Update(ctx, org); err != nil {
			return fmt.Errorf("updating organization: %w", err)
		}

		if in.Files != nil {
			owner := model.Owner{Kind: model.OwnerKindOrganization, ID: id}
			old, err := s.attachments.DetachAll(ctx, sp.Attachments(), owner)
			if err != nil {
				return err
			}
			replaced = append(replaced, old...)
			if _, err := s.attachments.Attach(ctx, sp.Attachments(), owner, stored); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.attachments.Discard(ctx, append(storedURLs(stored), storedURLs(qr)...))
		return nil, err
	}
	s.attachments.Discard(ctx, replaced)

	slog.InfoContext(ctx, "organization updated", "actor_id", actor.ID, "payment_ready", org.HasPaymentSetup())

	return s.detail(ctx, org)
}

func (s *organizationService) Delete(ctx context.Context, actor *model.User, id uuid.UUID) error {
	if !actor.IsStaff {
		return notFound("organization")
	}

	var urls []string
	err := s.txRunner.WithTx(ctx, func(sp StoreProvider) error {
		org, err := sp.Organizations().GetByID(ctx, id)
		if err != nil {
			return lookupErr("organization", err)
		}

		removed, err := sp.Attachments().DeleteByOrganization(ctx, id)
		if err != nil {
			return fmt.Errorf("deleting organization attachments: %w", err)
		}
		for _, att := range removed {
			urls = append(urls, att.File)
		}
		if org.KpayQrImage != nil {
			urls = append(urls, *org.KpayQrImage)
		}

		if err := sp.Organizations().Delete(ctx, id); err != nil {
			return fmt.Errorf("deleting organization: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.attachments.Discard(ctx, urls)

	slog.InfoContext(ctx, "organization deleted", "organization_id", id, "actor_id", actor.ID)
	return nil
}

func validateOrganizationInput(in *UpdateOrganizationInput) error {
	if in.PhoneNumber != nil {
		phone := strings.TrimSpace(*in.PhoneNumber)
		if phone != "" && !phonePattern.MatchString(phone) {
			return validationErr("phone_number", "must be 8 to 10 digits and must not start with 0")
		}
		in.PhoneNumber = &phone
	}
	if in.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*in.Email))
		if email != "" && !strings.Contains(email, "@") {
			return validationErr("email", "must be a valid email address")
		}
		in.Email = &email
	}
	if in.KpayQrURL != nil {
		url := strings.TrimSpace(*in.KpayQrURL)
		in.KpayQrURL = &url
	}
	return nil
}

// requirePaymentSetup gates every flow that lets money move towards the organization.
func requirePaymentSetup(org *model.Organization) error {
	if !org.HasPaymentSetup() {
		return &ConfigurationError{Message: "organization must configure a KPay QR code and phone number first"}
	}
	return nil
}

// adminOrganization loads the organization and hides it from everyone but its admin.
func adminOrganization(ctx context.Context, orgs store.OrganizationStore, orgID uuid.UUID, actor *model.User) (*model.Organization, error) {
	org, err := orgs.GetByID(ctx, orgID)
	if err != nil {
		return nil, lookupErr("organization", err)
	}
	if !org.IsAdmin(actor.ID) {
		return nil, notFound("organization")
	}
	return org, nil
}

func emptyToNil(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}

func isBlank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}
