package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"donorhub.app/api/common/logger"
	"donorhub.app/api/internal/model"
	"donorhub.app/api/internal/store"
)

type CreateActivityInput struct {
	OrganizationID uuid.UUID
	Title          string
	Description    *string
	Location       *string
	TransactionIDs []uuid.UUID
	Files          []FileUpload
}

// UpdateActivityInput is a partial update. A nil TransactionIDs leaves the links alone,
// otherwise it is the desired final set of linked disbursements.
type UpdateActivityInput struct {
	Title          *string
	Description    *string
	Location       *string
	TransactionIDs []uuid.UUID
	Files          []FileUpload
}

type LinkedTransaction struct {
	model.Transaction
	LinkedAt time.Time `json:"linked_at"`
}

type ActivityDetail struct {
	model.Activity
	Transactions []LinkedTransaction `json:"transactions"`
	Attachments  []model.Attachment  `json:"attachments"`
}

type ActivityService interface {
	Create(ctx context.Context, actor *model.User, in CreateActivityInput) (*ActivityDetail, error)
	Update(ctx context.Context, actor *model.User, orgID, id uuid.UUID, in UpdateActivityInput) (*ActivityDetail, error)
	Delete(ctx context.Context, actor *model.User, orgID, id uuid.UUID) error
	Get(ctx context.Context, orgID, id uuid.UUID) (*ActivityDetail, error)
	List(ctx context.Context, orgID uuid.UUID, search *string, page model.Page) ([]ActivityDetail, error)
	ListAll(ctx context.Context, search *string, page model.Page) ([]ActivityDetail, error)
}

type activityService struct {
	stores      StoreProvider
	txRunner    TxRunner
	attachments AttachmentService
}

func NewActivityService(stores StoreProvider, txRunner TxRunner, attachments AttachmentService) ActivityService {
	return &activityService{
		stores:      stores,
		txRunner:    txRunner,
		attachments: attachments,
	}
}

func (s *activityService) Create(ctx context.Context, actor *model.User, in CreateActivityInput) (*ActivityDetail, error) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		OrganizationID: &in.OrganizationID,
		Component:      "donorhub.service.activity",
	})

	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, validationErr("title", "is required")
	}
	if len(in.TransactionIDs) == 0 {
		return nil, validationErr("transaction_ids", "at least one transaction is required")
	}
	if dups := duplicateIDs(in.TransactionIDs); len(dups) > 0 {
		return nil, validationErr("transaction_ids", "duplicate transaction ids", dups...)
	}

	org, err := adminOrganization(ctx, s.stores.Organizations(), in.OrganizationID, actor)
	if err != nil {
		return nil, err
	}
	if err := requirePaymentSetup(org); err != nil {
		return nil, err
	}
	if err := checkLinkable(ctx, s.stores, org.ID, uuid.Nil, in.TransactionIDs, false); err != nil {
		return nil, err
	}
	if len(in.Files) == 0 {
		return nil, validationErr("attachments", "at least one file is required")
	}

	stored, err := s.attachments.Upload(ctx, model.OwnerKindActivity, in.Files)
	if err != nil {
		return nil, err
	}

	activity := &model.Activity{
		ID:             uuid.New(),
		OrganizationID: org.ID,
		Title:          title,
		Description:    emptyToNil(in.Description),
		Location:       emptyToNil(in.Location),
	}

	err = s.txRunner.WithTx(ctx, func(sp StoreProvider) error {
		if err := checkLinkable(ctx, sp, org.ID, uuid.Nil, in.TransactionIDs, true); err != nil {
			return err
		}
		if err := sp.Activities().Create(ctx, activity); err != nil {
			return fmt.Errorf("creating activity: %w", err)
		}
		if err := link(ctx, sp.Activities(), activity.ID, in.TransactionIDs); err != nil {
			return err
		}
		_, err := s.attachments.Attach(ctx, sp.Attachments(), model.Owner{Kind: model.OwnerKindActivity, ID: activity.ID}, stored)
		return err
	})
	if err != nil {
		s.attachments.Discard(ctx, storedURLs(stored))
		return nil, err
	}

	slog.InfoContext(ctx, "activity created",
		"activity_id", activity.ID,
		"linked_transactions", len(in.TransactionIDs),
	)

	return s.detail(ctx, activity)
}

func (s *activityService) Update(ctx context.Context, actor *model.User, orgID, id uuid.UUID, in UpdateActivityInput) (*ActivityDetail, error) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		OrganizationID: &orgID,
		ActivityID:     &id,
		Component:      "donorhub.service.activity",
	})

	if in.Title != nil && isBlank(in.Title) {
		return nil, validationErr("title", "must not be blank")
	}
	if in.TransactionIDs != nil {
		if len(in.TransactionIDs) == 0 {
			return nil, validationErr("transaction_ids", "at least one transaction is required")
		}
		if dups := duplicateIDs(in.TransactionIDs); len(dups) > 0 {
			return nil, validationErr("transaction_ids", "duplicate transaction ids", dups...)
		}
	}

	if _, err := s.owned(ctx, s.stores, actor, orgID, id, false); err != nil {
		return nil, err
	}

	stored, err := s.attachments.Upload(ctx, model.OwnerKindActivity, in.Files)
	if err != nil {
		return nil, err
	}

	var (
		activity       *model.Activity
		replaced       []string
		added, removed []uuid.UUID
	)
	err = s.txRunner.WithTx(ctx, func(sp StoreProvider) error {
		locked, err := s.owned(ctx, sp, actor, orgID, id, true)
		if err != nil {
			return err
		}

		if in.TransactionIDs != nil {
			current, err := sp.Activities().ListLinks(ctx, id)
			if err != nil {
				return fmt.Errorf("listing activity links: %w", err)
			}
			currentIDs := make([]uuid.UUID, len(current))
			for i, l := range current {
				currentIDs[i] = l.TransactionID
			}

			removed = difference(currentIDs, in.TransactionIDs)
			added = difference(in.TransactionIDs, currentIDs)

			if len(added) > 0 {
				if err := checkLinkable(ctx, sp, orgID, id, added, true); err != nil {
					return err
				}
			}
			if err := sp.Activities().DeleteLinks(ctx, id, removed); err != nil {
				return fmt.Errorf("removing activity links: %w", err)
			}
			if err := link(ctx, sp.Activities(), id, added); err != nil {
				return err
			}
		}

		if in.Title != nil {
			locked.Title = strings.TrimSpace(*in.Title)
		}
		if in.Description != nil {
			locked.Description = emptyToNil(in.Description)
		}
		if in.Location != nil {
			locked.Location = emptyToNil(in.Location)
		}
		if err := sp.Activities().Update(ctx, locked); err != nil {
			return fmt.Errorf("updating activity: %w", err)
		}
		activity = locked

		if len(stored) > 0 {
			owner := model.Owner{Kind: model.OwnerKindActivity, ID: id}
			replaced, err = s.attachments.DetachAll(ctx, sp.Attachments(), owner)
			if err != nil {
				return err
			}
			if _, err := s.attachments.Attach(ctx, sp.Attachments(), owner, stored); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.attachments.Discard(ctx, storedURLs(stored))
		return nil, err
	}
	s.attachments.Discard(ctx, replaced)

	slog.InfoContext(ctx, "activity updated",
		"links_added", len(added),
		"links_removed", len(removed),
		"attachments_replaced", len(stored) > 0,
	)

	return s.detail(ctx, activity)
}

func (s *activityService) Delete(ctx context.Context, actor *model.User, orgID, id uuid.UUID) error {
	ctx = logger.WithLogFields(ctx, logger.LogFields{OrganizationID: &orgID, ActivityID: &id})

	var urls []string
	err := s.txRunner.WithTx(ctx, func(sp StoreProvider) error {
		if _, err := s.owned(ctx, sp, actor, orgID, id, true); err != nil {
			return err
		}
		var err error
		urls, err = s.attachments.DetachAll(ctx, sp.Attachments(), model.Owner{Kind: model.OwnerKindActivity, ID: id})
		if err != nil {
			return err
		}
		if err := sp.Activities().Delete(ctx, id); err != nil {
			return fmt.Errorf("deleting activity: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.attachments.Discard(ctx, urls)

	slog.InfoContext(ctx, "activity deleted", "actor_id", actor.ID)
	return nil
}

// owned loads an activity of orgID, visible only to the organization admin.
func (s *activityService) owned(ctx context.Context, sp StoreProvider, actor *model.User, orgID, id uuid.UUID, lock bool) (*model.Activity, error) {
	var (
		activity *model.Activity
		err      error
	)
	if lock {
		activity, err = sp.Activities().GetByIDForUpdate(ctx, id)
	} else {
		activity, err = sp.Activities().GetByID(ctx, id)
	}
	if err != nil {
		return nil, lookupErr("activity", err)
	}
	if activity.OrganizationID != orgID {
		return nil, notFound("activity")
	}
	if _, err := adminOrganization(ctx, sp.Organizations(), orgID, actor); err != nil {
		return nil, notFound("activity")
	}
	return activity, nil
}

// checkLinkable verifies every id is a disbursement of orgID that is not linked to an
// activity other than activityID. With lock set the transaction rows stay locked until commit.
func checkLinkable(ctx context.Context, sp StoreProvider, orgID, activityID uuid.UUID, ids []uuid.UUID, lock bool) error {
	var (
		txns []model.Transaction
		err  error
	)
	if lock {
		txns, err = sp.Transactions().GetManyForUpdate(ctx, ids)
	} else {
		txns, err = sp.Transactions().GetMany(ctx, ids)
	}
	if err != nil {
		return fmt.Errorf("loading transactions: %w", err)
	}

	byID := make(map[uuid.UUID]model.Transaction, len(txns))
	for _, t := range txns {
		byID[t.ID] = t
	}

	links, err := sp.Activities().ListLinksByTransactions(ctx, ids)
	if err != nil {
		return fmt.Errorf("loading activity links: %w", err)
	}
	linkedTo := make(map[uuid.UUID]uuid.UUID, len(links))
	for _, l := range links {
		linkedTo[l.TransactionID] = l.ActivityID
	}

	var foreign, notDisbursement, linked []uuid.UUID
	for _, id := range ids {
		t, ok := byID[id]
		switch {
		case !ok || t.OrganizationID != orgID:
			foreign = append(foreign, id)
		case t.Type != model.TransactionTypeDisbursement:
			notDisbursement = append(notDisbursement, id)
		default:
			if owner, ok := linkedTo[id]; ok && owner != activityID {
				linked = append(linked, id)
			}
		}
	}

	// Every offending id is reported at once, grouped by reason in this order.
	var (
		reasons   []string
		offending []uuid.UUID
	)
	if len(foreign) > 0 {
		reasons = append(reasons, "transactions do not belong to this organization")
		offending = append(offending, foreign...)
	}
	if len(notDisbursement) > 0 {
		reasons = append(reasons, "only disbursements can be linked to an activity")
		offending = append(offending, notDisbursement...)
	}
	if len(linked) > 0 {
		reasons = append(reasons, "transactions are already linked to another activity")
		offending = append(offending, linked...)
	}
	if len(reasons) > 0 {
		return validationErr("transaction_ids", strings.Join(reasons, "; "), offending...)
	}
	return nil
}

func link(ctx context.Context, activities store.ActivityStore, activityID uuid.UUID, ids []uuid.UUID) error {
	for _, txnID := range ids {
		l := &model.ActivityTransaction{ID: uuid.New(), ActivityID: activityID, TransactionID: txnID}
		if err := activities.CreateLink(ctx, l); err != nil {
			if errors.Is(err, store.ErrConflict) {
				return conflictErr(fmt.Sprintf("transaction %s was linked to another activity concurrently", txnID), err)
			}
			return fmt.Errorf("linking transaction %s: %w", txnID, err)
		}
	}
	return nil
}

func (s *activityService) Get(ctx context.Context, orgID, id uuid.UUID) (*ActivityDetail, error) {
	activity, err := s.stores.Activities().GetByID(ctx, id)
	if err != nil {
		return nil, lookupErr("activity", err)
	}
	if activity.OrganizationID != orgID {
		return nil, notFound("activity")
	}
	return s.detail(ctx, activity)
}

func (s *activityService) detail(ctx context.Context, activity *model.Activity) (*ActivityDetail, error) {
	details, err := s.details(ctx, []model.Activity{*activity})
	if err != nil {
		return nil, err
	}
	return &details[0], nil
}

func (s *activityService) List(ctx context.Context, orgID uuid.UUID, search *string, page model.Page) ([]ActivityDetail, error) {
	activities, err := s.stores.Activities().List(ctx, &orgID, search, page)
	if err != nil {
		return nil, fmt.Errorf("listing activities: %w", err)
	}
	return s.details(ctx, activities)
}

func (s *activityService) ListAll(ctx context.Context, search *string, page model.Page) ([]ActivityDetail, error) {
	activities, err := s.stores.Activities().List(ctx, nil, search, page)
	if err != nil {
		return nil, fmt.Errorf("listing activities: %w", err)
	}
	return s.details(ctx, activities)
}

// details batch-loads the linked transactions and attachments of activities.
func (s *activityService) details(ctx context.Context, activities []model.Activity) ([]ActivityDetail, error) {
	if len(activities) == 0 {
		return []ActivityDetail{}, nil
	}

	ids := make([]uuid.UUID, len(activities))
	for i, a := range activities {
		ids[i] = a.ID
	}

	links, err := s.stores.Activities().ListLinksByActivities(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("listing activity links: %w", err)
	}
	txnIDs := make([]uuid.UUID, len(links))
	for i, l := range links {
		txnIDs[i] = l.TransactionID
	}
	txns, err := s.stores.Transactions().GetMany(ctx, txnIDs)
	if err != nil {
		return nil, fmt.Errorf("loading linked transactions: %w", err)
	}
	byID := make(map[uuid.UUID]model.Transaction, len(txns))
	for _, t := range txns {
		byID[t.ID] = t
	}
	linked := make(map[uuid.UUID][]LinkedTransaction, len(activities))
	for _, l := range links {
		if t, ok := byID[l.TransactionID]; ok {
			linked[l.ActivityID] = append(linked[l.ActivityID], LinkedTransaction{Transaction: t, LinkedAt: l.LinkedAt})
		}
	}

	atts, err := s.attachments.ListByOwners(ctx, model.OwnerKindActivity, ids)
	if err != nil {
		return nil, err
	}

	result := make([]ActivityDetail, len(activities))
	for i, a := range activities {
		result[i] = ActivityDetail{Activity: a, Transactions: linked[a.ID], Attachments: atts[a.ID]}
		if result[i].Transactions == nil {
			result[i].Transactions = []LinkedTransaction{}
		}
		if result[i].Attachments == nil {
			result[i].Attachments = []model.Attachment{}
		}
	}
	return result, nil
}

func duplicateIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]int, len(ids))
	var dups []uuid.UUID
	for _, id := range ids {
		seen[id]++
		if seen[id] == 2 {
			dups = append(dups, id)
		}
	}
	return dups
}

// difference returns the ids of a missing from b, in a's order.
func difference(a, b []uuid.UUID) []uuid.UUID {
	in := make(map[uuid.UUID]struct{}, len(b))
	for _, id := range b {
		in[id] = struct{}{}
	}
	var out []uuid.UUID
	for _, id := range a {
		if _, ok := in[id]; !ok {
			out = append(out, id)
		}
	}
	return out
}
