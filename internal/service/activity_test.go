package service_test

import (
	"context"
	"errors"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"donorhub.app/api/internal/model"
	"donorhub.app/api/internal/service"
	"donorhub.app/api/internal/store"
)

var _ = Describe("ActivityService", func() {
	var (
		ctx        context.Context
		h          *harness
		svc        service.ActivityService
		admin      *model.User
		org        *model.Organization
		d1, d2, d3 *model.Transaction
	)

	BeforeEach(func() {
		ctx = context.Background()
		h = newHarness()
		svc = h.activities()
		admin = h.db.addUser("admin", false)
		org = h.db.addOrganization(admin, true)
		d1 = h.db.addTransaction(org, admin, model.TransactionTypeDisbursement, model.TransactionStatusPending, "100")
		d2 = h.db.addTransaction(org, admin, model.TransactionTypeDisbursement, model.TransactionStatusPending, "200")
		d3 = h.db.addTransaction(org, admin, model.TransactionTypeDisbursement, model.TransactionStatusApproved, "300")
	})

	create := func(title string, ids ...uuid.UUID) (*service.ActivityDetail, error) {
		return svc.Create(ctx, admin, service.CreateActivityInput{
			OrganizationID: org.ID,
			Title:          title,
			TransactionIDs: ids,
			Files:          uploads("photo.jpg"),
		})
	}

	Describe("Create", func() {
		It("links the given disbursements", func() {
			detail, err := create("Food Drive", d1.ID, d2.ID)

			Expect(err).NotTo(HaveOccurred())
			Expect(detail.Title).To(Equal("Food Drive"))
			Expect(detail.Transactions).To(HaveLen(2))
			Expect(detail.Attachments).To(HaveLen(1))
			Expect(h.db.linksOf(detail.ID)).To(HaveLen(2))
		})

		It("refuses a disbursement that already belongs to another activity", func() {
			first, err := create("Food Drive", d1.ID, d2.ID)
			Expect(err).NotTo(HaveOccurred())
			writes := h.db.writeCount()

			_, err = create("Other", d1.ID)

			var vErr *service.ValidationError
			Expect(errors.As(err, &vErr)).To(BeTrue())
			Expect(vErr.IDs).To(Equal([]uuid.UUID{d1.ID}))
			Expect(h.db.count("activities")).To(Equal(1))
			Expect(h.db.linksOf(first.ID)).To(HaveKey(d1.ID))
			Expect(h.db.writeCount()).To(Equal(writes))
		})

		It("fails on duplicate ids before any write or upload", func() {
			_, err := create("Food Drive", d1.ID, d2.ID, d1.ID)

			var vErr *service.ValidationError
			Expect(errors.As(err, &vErr)).To(BeTrue())
			Expect(vErr.IDs).To(Equal([]uuid.UUID{d1.ID}))
			Expect(h.db.writeCount()).To(Equal(0))
			Expect(h.objects.putCount()).To(Equal(0))
		})

		It("names the ids that belong to another organization", func() {
			other := h.db.addOrganization(admin, true)
			foreign := h.db.addTransaction(other, admin, model.TransactionTypeDisbursement, model.TransactionStatusPending, "50")

			_, err := create("Food Drive", d1.ID, foreign.ID)

			var vErr *service.ValidationError
			Expect(errors.As(err, &vErr)).To(BeTrue())
			Expect(vErr.IDs).To(Equal([]uuid.UUID{foreign.ID}))
			Expect(vErr.Error()).To(ContainSubstring(foreign.ID.String()))
			Expect(h.db.count("activities")).To(Equal(0))
		})

		It("treats unknown ids as foreign", func() {
			missing := uuid.New()

			_, err := create("Food Drive", missing)

			var vErr *service.ValidationError
			Expect(errors.As(err, &vErr)).To(BeTrue())
			Expect(vErr.IDs).To(Equal([]uuid.UUID{missing}))
		})

		It("refuses to link donations", func() {
			donor := h.db.addUser("donor", false)
			donation := h.db.addTransaction(org, donor, model.TransactionTypeDonation, model.TransactionStatusApproved, "10")

			_, err := create("Food Drive", donation.ID)

			var vErr *service.ValidationError
			Expect(errors.As(err, &vErr)).To(BeTrue())
			Expect(vErr.Message).To(Equal("only disbursements can be linked to an activity"))
		})

		It("reports every offending id in one error", func() {
			_, err := create("Food Drive", d3.ID)
			Expect(err).NotTo(HaveOccurred())
			other := h.db.addOrganization(admin, true)
			foreign := h.db.addTransaction(other, admin, model.TransactionTypeDisbursement, model.TransactionStatusPending, "5")
			donor := h.db.addUser("donor", false)
			donation := h.db.addTransaction(org, donor, model.TransactionTypeDonation, model.TransactionStatusApproved, "10")

			_, err = create("Other", d1.ID, foreign.ID, donation.ID, d3.ID)

			var vErr *service.ValidationError
			Expect(errors.As(err, &vErr)).To(BeTrue())
			Expect(vErr.IDs).To(Equal([]uuid.UUID{foreign.ID, donation.ID, d3.ID}))
			Expect(vErr.Message).To(ContainSubstring("do not belong to this organization"))
			Expect(vErr.Message).To(ContainSubstring("only disbursements"))
			Expect(vErr.Message).To(ContainSubstring("already linked"))
			Expect(h.db.count("activities")).To(Equal(1))
		})

		It("requires at least one file", func() {
			_, err := svc.Create(ctx, admin, service.CreateActivityInput{
				OrganizationID: org.ID,
				Title:          "Food Drive",
				TransactionIDs: []uuid.UUID{d1.ID},
			})

			var vErr *service.ValidationError
			Expect(errors.As(err, &vErr)).To(BeTrue())
			Expect(vErr.Field).To(Equal("attachments"))
			Expect(h.db.writeCount()).To(Equal(0))
			Expect(h.objects.putCount()).To(Equal(0))
		})

		It("requires payment setup", func() {
			unready := h.db.addOrganization(admin, false)
			spent := h.db.addTransaction(unready, admin, model.TransactionTypeDisbursement, model.TransactionStatusPending, "10")

			_, err := svc.Create(ctx, admin, service.CreateActivityInput{
				OrganizationID: unready.ID,
				Title:          "Food Drive",
				TransactionIDs: []uuid.UUID{spent.ID},
			})

			var cfgErr *service.ConfigurationError
			Expect(errors.As(err, &cfgErr)).To(BeTrue())
		})

		It("hides the organization from non-admins", func() {
			stranger := h.db.addUser("stranger", false)

			_, err := svc.Create(ctx, stranger, service.CreateActivityInput{
				OrganizationID: org.ID,
				Title:          "Food Drive",
				TransactionIDs: []uuid.UUID{d1.ID},
			})

			Expect(errors.Is(err, store.ErrNotFound)).To(BeTrue())
		})

		It("surfaces a concurrent link as a conflict and rolls back", func() {
			h.db.failOn("activities.CreateLink", store.ErrConflict)

			_, err := create("Food Drive", d1.ID)

			var conflict *service.ConflictError
			Expect(errors.As(err, &conflict)).To(BeTrue())
			Expect(errors.Is(err, store.ErrConflict)).To(BeTrue())
			Expect(h.db.count("activities")).To(Equal(0))
			Expect(h.db.count("attachments")).To(Equal(0))
			Expect(h.objects.count()).To(Equal(0))
		})
	})

	Describe("Update", func() {
		var activity *service.ActivityDetail

		BeforeEach(func() {
			var err error
			activity, err = create("Food Drive", d1.ID, d2.ID)
			Expect(err).NotTo(HaveOccurred())
		})

		It("diffs the desired set and keeps surviving links untouched", func() {
			before := h.db.linksOf(activity.ID)

			detail, err := svc.Update(ctx, admin, org.ID, activity.ID, service.UpdateActivityInput{
				TransactionIDs: []uuid.UUID{d2.ID, d3.ID},
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(detail.Transactions).To(HaveLen(2))
			after := h.db.linksOf(activity.ID)
			Expect(after).To(HaveLen(2))
			Expect(after).NotTo(HaveKey(d1.ID))
			Expect(after).To(HaveKey(d3.ID))
			Expect(after[d2.ID]).To(Equal(before[d2.ID]))

			again, err := create("Second Drive", d1.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(h.db.linksOf(again.ID)).To(HaveKey(d1.ID))
		})

		It("leaves links alone when no ids are given", func() {
			title := "Food Drive 2024"

			detail, err := svc.Update(ctx, admin, org.ID, activity.ID, service.UpdateActivityInput{Title: &title})

			Expect(err).NotTo(HaveOccurred())
			Expect(detail.Title).To(Equal("Food Drive 2024"))
			Expect(h.db.linksOf(activity.ID)).To(HaveLen(2))
		})

		It("rejects an explicitly empty set", func() {
			_, err := svc.Update(ctx, admin, org.ID, activity.ID, service.UpdateActivityInput{
				TransactionIDs: []uuid.UUID{},
			})

			var vErr *service.ValidationError
			Expect(errors.As(err, &vErr)).To(BeTrue())
		})

		It("refuses a disbursement linked elsewhere and changes nothing", func() {
			taken := h.db.addTransaction(org, admin, model.TransactionTypeDisbursement, model.TransactionStatusPending, "75")
			_, err := create("Other", taken.ID)
			Expect(err).NotTo(HaveOccurred())
			title := "renamed"

			_, err = svc.Update(ctx, admin, org.ID, activity.ID, service.UpdateActivityInput{
				Title:          &title,
				TransactionIDs: []uuid.UUID{d1.ID, taken.ID},
			})

			var vErr *service.ValidationError
			Expect(errors.As(err, &vErr)).To(BeTrue())
			Expect(vErr.IDs).To(Equal([]uuid.UUID{taken.ID}))
			links := h.db.linksOf(activity.ID)
			Expect(links).To(HaveKey(d1.ID))
			Expect(links).To(HaveKey(d2.ID))
			reloaded, err := svc.Get(ctx, org.ID, activity.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(reloaded.Title).To(Equal("Food Drive"))
		})

		It("replaces the attachments when files are given", func() {
			oldURL := activity.Attachments[0].File

			detail, err := svc.Update(ctx, admin, org.ID, activity.ID, service.UpdateActivityInput{
				Files: uploads("after.jpg", "crowd.jpg"),
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(detail.Attachments).To(HaveLen(2))
			Expect(h.objects.wasDeleted(oldURL)).To(BeTrue())
		})
	})

	Describe("Delete", func() {
		It("removes the activity with its links and files", func() {
			activity, err := create("Food Drive", d1.ID)
			Expect(err).NotTo(HaveOccurred())
			url := activity.Attachments[0].File

			Expect(svc.Delete(ctx, admin, org.ID, activity.ID)).To(Succeed())

			Expect(h.db.count("activities")).To(Equal(0))
			Expect(h.db.count("links")).To(Equal(0))
			Expect(h.objects.wasDeleted(url)).To(BeTrue())
			_, exists := h.db.transaction(d1.ID)
			Expect(exists).To(BeTrue())
		})

		It("hides activities of other organizations", func() {
			activity, err := create("Food Drive", d1.ID)
			Expect(err).NotTo(HaveOccurred())
			other := h.db.addOrganization(admin, true)

			err = svc.Delete(ctx, admin, other.ID, activity.ID)

			Expect(errors.Is(err, store.ErrNotFound)).To(BeTrue())
			Expect(h.db.count("activities")).To(Equal(1))
		})
	})

	Describe("List", func() {
		It("returns the linked disbursements of each activity", func() {
			first, err := create("Food Drive", d1.ID, d2.ID)
			Expect(err).NotTo(HaveOccurred())
			second, err := create("Blanket Run", d3.ID)
			Expect(err).NotTo(HaveOccurred())
			links := h.db.linksOf(first.ID)

			items, err := svc.List(ctx, org.ID, nil, model.Page{})

			Expect(err).NotTo(HaveOccurred())
			Expect(items).To(HaveLen(2))
			byID := map[uuid.UUID]service.ActivityDetail{}
			for _, item := range items {
				byID[item.ID] = item
			}
			Expect(byID[first.ID].Transactions).To(HaveLen(2))
			for _, linked := range byID[first.ID].Transactions {
				Expect(linked.LinkedAt).To(Equal(links[linked.ID].LinkedAt))
			}
			Expect(byID[second.ID].Transactions).To(HaveLen(1))
			Expect(byID[second.ID].Transactions[0].ID).To(Equal(d3.ID))
			Expect(byID[second.ID].Attachments).To(HaveLen(1))
		})

		It("searches titles across organizations", func() {
			_, err := create("Food Drive", d1.ID)
			Expect(err).NotTo(HaveOccurred())
			_, err = create("Blanket Run", d2.ID)
			Expect(err).NotTo(HaveOccurred())
			search := "food"

			items, err := svc.ListAll(ctx, &search, model.Page{})

			Expect(err).NotTo(HaveOccurred())
			Expect(items).To(HaveLen(1))
			Expect(items[0].Title).To(Equal("Food Drive"))
		})
	})
})
