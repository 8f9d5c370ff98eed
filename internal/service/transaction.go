package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"donorhub.app/api/common/logger"
	"donorhub.app/api/internal/model"
	"donorhub.app/api/internal/store"
)

// NUMERIC(10,2)
var maxAmount = decimal.New(1, 8)

type CreateTransactionInput struct {
	OrganizationID uuid.UUID
	Type           model.TransactionType
	Amount         decimal.Decimal
	Title          *string
	EventID        *uuid.UUID
	ReviewRequired bool
	Files          []FileUpload
}

// UpdateTransactionInput is a partial update. Files, when non-empty, replace the attachments.
type UpdateTransactionInput struct {
	Title          *string
	Status         *model.TransactionStatus
	ReviewRequired *bool
	Files          []FileUpload
}

type TransactionDetail struct {
	model.Transaction
	Attachments []model.Attachment `json:"attachments"`
	ActivityID  *uuid.UUID         `json:"activity_id,omitempty"`
}

type TransactionService interface {
	Create(ctx context.Context, actor *model.User, in CreateTransactionInput) (*TransactionDetail, error)
	Update(ctx context.Context, actor *model.User, orgID, id uuid.UUID, in UpdateTransactionInput) (*TransactionDetail, error)
	Delete(ctx context.Context, actor *model.User, orgID, id uuid.UUID) error
	Get(ctx context.Context, actor *model.User, orgID, id uuid.UUID) (*TransactionDetail, error)
	List(ctx context.Context, actor *model.User, orgID uuid.UUID, filter model.TransactionFilter, page model.Page) ([]TransactionDetail, error)
	DonationHistory(ctx context.Context, actor *model.User, page model.Page) ([]TransactionDetail, error)
}

type transactionService struct {
	stores        StoreProvider
	txRunner      TxRunner
	attachments   AttachmentService
	notifications NotificationService
}

func NewTransactionService(stores StoreProvider, txRunner TxRunner, attachments AttachmentService, notifications NotificationService) TransactionService {
	return &transactionService{
		stores:        stores,
		txRunner:      txRunner,
		attachments:   attachments,
		notifications: notifications,
	}
}

func (s *transactionService) Create(ctx context.Context, actor *model.User, in CreateTransactionInput) (*TransactionDetail, error) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		OrganizationID: &in.OrganizationID,
		Component:      "donorhub.service.ledger",
	})

	if !in.Type.Valid() {
		return nil, validationErr("type", "must be donation or disbursement")
	}
	if err := validateAmount("amount", in.Amount); err != nil {
		return nil, err
	}
	if len(in.Files) == 0 {
		return nil, validationErr("attachments", "at least one file is required")
	}

	org, err := s.stores.Organizations().GetByID(ctx, in.OrganizationID)
	if err != nil {
		return nil, lookupErr("organization", err)
	}

	title := in.Title
	switch in.Type {
	case model.TransactionTypeDisbursement:
		if !org.IsAdmin(actor.ID) {
			return nil, validationErr("type", "not authorized to create disbursement transactions")
		}
		if in.EventID != nil {
			return nil, validationErr("event", "disbursements cannot be tied to an event")
		}
		if isBlank(title) {
			return nil, validationErr("title", "is required for disbursements")
		}
		title = emptyToNil(title)
	case model.TransactionTypeDonation:
		if err := requirePaymentSetup(org); err != nil {
			return nil, err
		}
		if in.EventID != nil {
			if err := s.checkEvent(ctx, org.ID, *in.EventID); err != nil {
				return nil, err
			}
		}
		if isBlank(title) {
			generated := fmt.Sprintf("%s donated %s", actor.Username, in.Amount.StringFixed(2))
			title = &generated
		} else {
			title = emptyToNil(title)
		}
	}

	stored, err := s.attachments.Upload(ctx, model.OwnerKindTransaction, keepFiles(in.Files, in.Type.AttachmentLimit()))
	if err != nil {
		return nil, err
	}

	txn := &model.Transaction{
		ID:             uuid.New(),
		OrganizationID: org.ID,
		ActorID:        actor.ID,
		EventID:        in.EventID,
		Title:          title,
		Amount:         in.Amount,
		Type:           in.Type,
		Status:         model.TransactionStatusPending,
		ReviewRequired: in.ReviewRequired,
	}

	var atts []model.Attachment
	err = s.txRunner.WithTx(ctx, func(sp StoreProvider) error {
		if err := sp.Transactions().Create(ctx, txn); err != nil {
			return fmt.Errorf("creating transaction: %w", err)
		}
		created, err := s.attachments.Attach(ctx, sp.Attachments(), model.Owner{Kind: model.OwnerKindTransaction, ID: txn.ID}, stored)
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

	slog.InfoContext(ctx, "transaction created",
		"transaction_id", txn.ID,
		"type", txn.Type,
		"amount", txn.Amount.String(),
		"attachments", len(atts),
	)

	return &TransactionDetail{Transaction: *txn, Attachments: atts}, nil
}

func (s *transactionService) checkEvent(ctx context.Context, orgID, eventID uuid.UUID) error {
	event, err := s.stores.Events().GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return validationErr("event", "event does not exist", eventID)
		}
		return fmt.Errorf("getting event: %w", err)
	}
	if event.OrganizationID != orgID {
		return validationErr("event", "event does not belong to this organization", eventID)
	}
	return nil
}

func (s *transactionService) Update(ctx context.Context, actor *model.User, orgID, id uuid.UUID, in UpdateTransactionInput) (*TransactionDetail, error) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		OrganizationID: &orgID,
		TransactionID:  &id,
		Component:      "donorhub.service.ledger",
	})

	if in.Status != nil && !in.Status.Valid() {
		return nil, validationErr("status", "must be pending, approved or rejected")
	}

	// Checked again under lock below. Failing here avoids uploading files for a doomed update.
	current, err := s.editable(ctx, s.stores, actor, orgID, id, false)
	if err != nil {
		return nil, err
	}
	if in.Title != nil && isBlank(in.Title) && current.Type == model.TransactionTypeDisbursement {
		return nil, validationErr("title", "is required for disbursements")
	}

	var stored []StoredFile
	if len(in.Files) > 0 {
		stored, err = s.attachments.Upload(ctx, model.OwnerKindTransaction, keepFiles(in.Files, current.Type.AttachmentLimit()))
		if err != nil {
			return nil, err
		}
	}

	var (
		txn      *model.Transaction
		atts     []model.Attachment
		replaced []string
		previous model.TransactionStatus
	)
	err = s.txRunner.WithTx(ctx, func(sp StoreProvider) error {
		locked, err := s.editable(ctx, sp, actor, orgID, id, true)
		if err != nil {
			return err
		}
		previous = locked.Status

		if in.Title != nil {
			locked.Title = emptyToNil(in.Title)
		}
		if in.Status != nil {
			locked.Status = *in.Status
		}
		if in.ReviewRequired != nil {
			locked.ReviewRequired = *in.ReviewRequired
		}
		if err := sp.Transactions().Update(ctx, locked); err != nil {
			return fmt.Errorf("updating transaction: %w", err)
		}
		txn = locked

		owner := model.Owner{Kind: model.OwnerKindTransaction, ID: id}
		if len(stored) > 0 {
			replaced, err = s.attachments.DetachAll(ctx, sp.Attachments(), owner)
			if err != nil {
				return err
			}
			if atts, err = s.attachments.Attach(ctx, sp.Attachments(), owner, stored); err != nil {
				return err
			}
			return nil
		}
		atts, err = sp.Attachments().ListByOwner(ctx, owner)
		return err
	})
	if err != nil {
		s.attachments.Discard(ctx, storedURLs(stored))
		return nil, err
	}
	s.attachments.Discard(ctx, replaced)

	slog.InfoContext(ctx, "transaction updated",
		"from_status", previous,
		"to_status", txn.Status,
		"attachments_replaced", len(stored) > 0,
	)

	if previous != txn.Status && txn.Status.IsTerminal() {
		s.notifyStatus(ctx, txn)
	}

	return &TransactionDetail{Transaction: *txn, Attachments: atts}, nil
}

// editable loads a transaction the actor administers and that is still pending.
func (s *transactionService) editable(ctx context.Context, sp StoreProvider, actor *model.User, orgID, id uuid.UUID, lock bool) (*model.Transaction, error) {
	var (
		txn *model.Transaction
		err error
	)
	if lock {
		txn, err = sp.Transactions().GetByIDForUpdate(ctx, id)
	} else {
		txn, err = sp.Transactions().GetByID(ctx, id)
	}
	if err != nil {
		return nil, lookupErr("transaction", err)
	}
	if txn.OrganizationID != orgID {
		return nil, notFound("transaction")
	}
	if _, err := adminOrganization(ctx, sp.Organizations(), orgID, actor); err != nil {
		return nil, notFound("transaction")
	}
	if txn.Status.IsTerminal() {
		return nil, invalidState("transaction %s is %s and can no longer change", id, txn.Status)
	}
	return txn, nil
}

func (s *transactionService) notifyStatus(ctx context.Context, txn *model.Transaction) {
	in := NotificationInput{
		ReceiverID: txn.ActorID,
		SourceKind: string(model.OwnerKindTransaction),
		SourceID:   txn.ID,
		Title:      statusHeadline(txn),
		Highlight:  txn.Title,
		Message:    fmt.Sprintf("Your %s of %s has been %s.", txn.Type, txn.Amount.StringFixed(2), txn.Status),
		Type:       model.NotificationTypeSuccess,
	}
	if txn.Status == model.TransactionStatusRejected {
		in.Type = model.NotificationTypeFailure
	}
	s.notifications.Notify(ctx, in)
}

func statusHeadline(txn *model.Transaction) string {
	kind := "Donation"
	if txn.Type == model.TransactionTypeDisbursement {
		kind = "Disbursement"
	}
	return kind + " " + string(txn.Status)
}

func (s *transactionService) Delete(ctx context.Context, actor *model.User, orgID, id uuid.UUID) error {
	ctx = logger.WithLogFields(ctx, logger.LogFields{OrganizationID: &orgID, TransactionID: &id})

	var urls []string
	err := s.txRunner.WithTx(ctx, func(sp StoreProvider) error {
		txn, err := sp.Transactions().GetByIDForUpdate(ctx, id)
		if err != nil {
			return lookupErr("transaction", err)
		}
		if txn.OrganizationID != orgID {
			return notFound("transaction")
		}
		if _, err := adminOrganization(ctx, sp.Organizations(), orgID, actor); err != nil {
			return notFound("transaction")
		}
		if txn.Type == model.TransactionTypeDonation {
			return invalidState("donations cannot be deleted")
		}
		if txn.Status.IsTerminal() {
			return invalidState("transaction %s is %s and cannot be deleted", id, txn.Status)
		}

		urls, err = s.attachments.DetachAll(ctx, sp.Attachments(), model.Owner{Kind: model.OwnerKindTransaction, ID: id})
		if err != nil {
			return err
		}
		if err := sp.Transactions().Delete(ctx, id); err != nil {
			return fmt.Errorf("deleting transaction: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.attachments.Discard(ctx, urls)

	slog.InfoContext(ctx, "transaction deleted", "actor_id", actor.ID)
	return nil
}

func (s *transactionService) Get(ctx context.Context, actor *model.User, orgID, id uuid.UUID) (*TransactionDetail, error) {
	txn, err := s.stores.Transactions().GetByID(ctx, id)
	if err != nil {
		return nil, lookupErr("transaction", err)
	}
	if txn.OrganizationID != orgID {
		return nil, notFound("transaction")
	}
	if !s.canSeeAll(ctx, actor, orgID) && txn.ActorID != actor.ID && txn.Status != model.TransactionStatusApproved {
		return nil, notFound("transaction")
	}

	details, err := s.details(ctx, []model.Transaction{*txn})
	if err != nil {
		return nil, err
	}
	return &details[0], nil
}

// List shows non-admins approved transactions only.
func (s *transactionService) List(ctx context.Context, actor *model.User, orgID uuid.UUID, filter model.TransactionFilter, page model.Page) ([]TransactionDetail, error) {
	if filter.Type != nil && !filter.Type.Valid() {
		return nil, validationErr("type", "must be donation or disbursement")
	}
	if filter.Status != nil && !filter.Status.Valid() {
		return nil, validationErr("status", "must be pending, approved or rejected")
	}
	if _, err := s.stores.Organizations().GetByID(ctx, orgID); err != nil {
		return nil, lookupErr("organization", err)
	}
	if !s.canSeeAll(ctx, actor, orgID) {
		approved := model.TransactionStatusApproved
		filter.Status = &approved
	}

	txns, err := s.stores.Transactions().List(ctx, orgID, filter, page)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}
	return s.details(ctx, txns)
}

func (s *transactionService) DonationHistory(ctx context.Context, actor *model.User, page model.Page) ([]TransactionDetail, error) {
	txns, err := s.stores.Transactions().ListDonationsByActor(ctx, actor.ID, page)
	if err != nil {
		return nil, fmt.Errorf("listing donation history: %w", err)
	}
	return s.details(ctx, txns)
}

func (s *transactionService) canSeeAll(ctx context.Context, actor *model.User, orgID uuid.UUID) bool {
	if actor.IsStaff {
		return true
	}
	_, err := adminOrganization(ctx, s.stores.Organizations(), orgID, actor)
	return err == nil
}

func (s *transactionService) details(ctx context.Context, txns []model.Transaction) ([]TransactionDetail, error) {
	ids := make([]uuid.UUID, len(txns))
	for i, t := range txns {
		ids[i] = t.ID
	}

	atts, err := s.attachments.ListByOwners(ctx, model.OwnerKindTransaction, ids)
	if err != nil {
		return nil, err
	}
	links, err := s.stores.Activities().ListLinksByTransactions(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("listing activity links: %w", err)
	}
	activityOf := make(map[uuid.UUID]uuid.UUID, len(links))
	for _, l := range links {
		activityOf[l.TransactionID] = l.ActivityID
	}

	result := make([]TransactionDetail, len(txns))
	for i, t := range txns {
		result[i] = TransactionDetail{Transaction: t, Attachments: atts[t.ID]}
		if result[i].Attachments == nil {
			result[i].Attachments = []model.Attachment{}
		}
		if activityID, ok := activityOf[t.ID]; ok {
			result[i].ActivityID = &activityID
		}
	}
	return result, nil
}

func validateAmount(field string, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return validationErr(field, "must not be negative")
	}
	if !amount.Equal(amount.Round(2)) {
		return validationErr(field, "must have at most two decimal places")
	}
	if amount.GreaterThanOrEqual(maxAmount) {
		return validationErr(field, "is too large")
	}
	return nil
}
