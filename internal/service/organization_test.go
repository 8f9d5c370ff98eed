package service_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"donorhub.app/api/internal/model"
	"donorhub.app/api/internal/service"
	"donorhub.app/api/internal/store"
)

func strRef(s string) *string { return &s }

var _ = Describe("OrganizationService", func() {
	var (
		ctx   context.Context
		h     *harness
		svc   service.OrganizationService
		admin *model.User
		staff *model.User
		org   *model.Organization
	)

	BeforeEach(func() {
		ctx = context.Background()
		h = newHarness()
		svc = h.organizations()
		admin = h.db.addUser("admin", false)
		staff = h.db.addUser("staff", true)
		org = h.db.addOrganization(admin, false)
	})

	Describe("Update", func() {
		It("completes the payment setup", func() {
			qr := upload("qr.png", "qr-bytes")

			detail, err := svc.Update(ctx, admin, org.ID, service.UpdateOrganizationInput{
				PhoneNumber: strRef(" 91234567 "),
				KpayQrURL:   strRef("https://kpay.example/qr/1"),
				QrImage:     &qr,
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(*detail.PhoneNumber).To(Equal("91234567"))
			Expect(detail.HasPaymentSetup()).To(BeTrue())
			Expect(detail.KpayQrImage).NotTo(BeNil())
			content, ok := h.objects.content(*detail.KpayQrImage)
			Expect(ok).To(BeTrue())
			Expect(content).To(Equal("qr-bytes"))
		})

		DescribeTable("validates phone numbers",
			func(phone string, valid bool) {
				_, err := svc.Update(ctx, admin, org.ID, service.UpdateOrganizationInput{PhoneNumber: &phone})

				if valid {
					Expect(err).NotTo(HaveOccurred())
					return
				}
				var vErr *service.ValidationError
				Expect(errors.As(err, &vErr)).To(BeTrue())
				Expect(vErr.Field).To(Equal("phone_number"))
			},
			Entry("eight digits", "91234567", true),
			Entry("ten digits", "9123456789", true),
			Entry("empty clears the field", "", true),
			Entry("leading zero", "01234567", false),
			Entry("too short", "9123456", false),
			Entry("too long", "91234567890", false),
			Entry("letters", "9123abcd", false),
		)

		It("keeps at most two attachments and discards the replaced ones", func() {
			oldURL := "mem://organization/old.pdf"
			h.db.addAttachment(model.Owner{Kind: model.OwnerKindOrganization, ID: org.ID}, oldURL)

			detail, err := svc.Update(ctx, admin, org.ID, service.UpdateOrganizationInput{
				Files: uploads("a.pdf", "b.pdf", "c.pdf"),
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(detail.Attachments).To(HaveLen(2))
			Expect(h.objects.wasDeleted(oldURL)).To(BeTrue())
		})

		It("lets staff edit any organization", func() {
			detail, err := svc.Update(ctx, staff, org.ID, service.UpdateOrganizationInput{
				Description: strRef("community kitchen"),
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(*detail.Description).To(Equal("community kitchen"))
		})

		It("hides the organization from other users", func() {
			stranger := h.db.addUser("stranger", false)

			_, err := svc.Update(ctx, stranger, org.ID, service.UpdateOrganizationInput{
				Description: strRef("hijacked"),
			})

			Expect(errors.Is(err, store.ErrNotFound)).To(BeTrue())
		})
	})

	Describe("Get", func() {
		It("aggregates approved transactions only", func() {
			donor := h.db.addUser("donor", false)
			other := h.db.addUser("other", false)
			h.db.addTransaction(org, donor, model.TransactionTypeDonation, model.TransactionStatusApproved, "100")
			h.db.addTransaction(org, donor, model.TransactionTypeDonation, model.TransactionStatusApproved, "50")
			h.db.addTransaction(org, other, model.TransactionTypeDonation, model.TransactionStatusApproved, "25")
			h.db.addTransaction(org, other, model.TransactionTypeDonation, model.TransactionStatusPending, "1000")
			h.db.addTransaction(org, admin, model.TransactionTypeDisbursement, model.TransactionStatusApproved, "75")
			h.db.addTransaction(org, admin, model.TransactionTypeDisbursement, model.TransactionStatusRejected, "500")

			detail, err := svc.Get(ctx, org.ID)

			Expect(err).NotTo(HaveOccurred())
			Expect(detail.Stats.TotalReceived.String()).To(Equal("175"))
			Expect(detail.Stats.TotalExpense.String()).To(Equal("75"))
			Expect(detail.Stats.Balance.String()).To(Equal("100"))
			Expect(detail.Stats.TotalDonations).To(Equal(int64(3)))
			Expect(detail.Stats.TotalDonors).To(Equal(int64(2)))
		})
	})

	Describe("Delete", func() {
		It("is reserved for staff", func() {
			err := svc.Delete(ctx, admin, org.ID)

			Expect(errors.Is(err, store.ErrNotFound)).To(BeTrue())
			Expect(h.db.count("organizations")).To(Equal(1))
		})

		It("removes the organization with its ledger and stored files", func() {
			donor := h.db.addUser("donor", false)
			txn := h.db.addTransaction(org, donor, model.TransactionTypeDonation, model.TransactionStatusApproved, "10")
			orgFile := "mem://organization/cert.pdf"
			txnFile := "mem://transaction/receipt.jpg"
			h.db.addAttachment(model.Owner{Kind: model.OwnerKindOrganization, ID: org.ID}, orgFile)
			h.db.addAttachment(model.Owner{Kind: model.OwnerKindTransaction, ID: txn.ID}, txnFile)

			Expect(svc.Delete(ctx, staff, org.ID)).To(Succeed())

			Expect(h.db.count("organizations")).To(Equal(0))
			Expect(h.db.count("transactions")).To(Equal(0))
			Expect(h.db.count("attachments")).To(Equal(0))
			Expect(h.objects.wasDeleted(orgFile)).To(BeTrue())
			Expect(h.objects.wasDeleted(txnFile)).To(BeTrue())
		})
	})
})
