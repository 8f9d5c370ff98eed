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

var _ = Describe("NotificationService", func() {
	var (
		ctx  context.Context
		h    *harness
		user *model.User
	)

	BeforeEach(func() {
		ctx = context.Background()
		h = newHarness()
		user = h.db.addUser("donor", false)
	})

	notify := func() {
		h.notifications.Notify(ctx, service.NotificationInput{
			ReceiverID: user.ID,
			SourceKind: "transaction",
			SourceID:   uuid.New(),
			Title:      "Donation approved",
			Message:    "Your donation of 10.00 has been approved.",
		})
		h.notifications.Wait()
	}

	It("persists and publishes to the receiver's channel", func() {
		notify()

		items, err := h.notifications.List(ctx, user.ID, false, model.Page{})
		Expect(err).NotTo(HaveOccurred())
		Expect(items).To(HaveLen(1))
		Expect(items[0].Type).To(Equal(model.NotificationTypeInfo))
		Expect(h.publisher.channels()).To(ConsistOf("user_" + user.ID.String()))
	})

	It("keeps the notification when publishing fails", func() {
		h.publisher.err = errors.New("redis down")

		notify()

		Expect(h.db.count("notifications")).To(Equal(1))
	})

	It("marks a single notification read for its receiver only", func() {
		notify()
		items, _ := h.notifications.List(ctx, user.ID, true, model.Page{})
		Expect(items).To(HaveLen(1))
		stranger := h.db.addUser("stranger", false)

		_, err := h.notifications.MarkRead(ctx, stranger.ID, items[0].ID)
		Expect(errors.Is(err, store.ErrNotFound)).To(BeTrue())

		read, err := h.notifications.MarkRead(ctx, user.ID, items[0].ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(read.IsRead).To(BeTrue())
	})

	It("marks everything read", func() {
		notify()
		notify()

		Expect(h.notifications.MarkAllRead(ctx, user.ID)).To(Succeed())

		unread, err := h.notifications.List(ctx, user.ID, true, model.Page{})
		Expect(err).NotTo(HaveOccurred())
		Expect(unread).To(BeEmpty())
	})
})
