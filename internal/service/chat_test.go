package service_test

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"donorhub.app/api/internal/model"
	"donorhub.app/api/internal/service"
	"donorhub.app/api/internal/store"
)

var _ = Describe("ChatService", func() {
	var (
		ctx      context.Context
		h        *harness
		svc      service.ChatService
		admin    *model.User
		donor    *model.User
		stranger *model.User
		org      *model.Organization
	)

	BeforeEach(func() {
		ctx = context.Background()
		h = newHarness()
		svc = h.chats()
		admin = h.db.addUser("admin", false)
		donor = h.db.addUser("donor", false)
		stranger = h.db.addUser("stranger", false)
		org = h.db.addOrganization(admin, true)
	})

	start := func() *model.Chat {
		chat, _, err := svc.Start(ctx, donor, org.ID)
		Expect(err).NotTo(HaveOccurred())
		return chat
	}

	Describe("Start", func() {
		It("opens one chat per donor and organization", func() {
			first, created, err := svc.Start(ctx, donor, org.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(created).To(BeTrue())
			Expect(first.DonorID).To(Equal(donor.ID))
			Expect(first.OrganizationID).To(Equal(org.ID))

			again, created, err := svc.Start(ctx, donor, org.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(created).To(BeFalse())
			Expect(again.ID).To(Equal(first.ID))
			Expect(h.db.count("chats")).To(Equal(1))
		})

		It("refuses a chat between an admin and their own organization", func() {
			_, _, err := svc.Start(ctx, admin, org.ID)

			var vErr *service.ValidationError
			Expect(errors.As(err, &vErr)).To(BeTrue())
			Expect(vErr.Field).To(Equal("organization_id"))
			Expect(h.db.count("chats")).To(Equal(0))
		})

		It("returns not found for an unknown organization", func() {
			_, _, err := svc.Start(ctx, donor, uuid.New())

			Expect(errors.Is(err, store.ErrNotFound)).To(BeTrue())
		})

		It("surfaces a failed insert", func() {
			h.db.failOn("chats.Create", errors.New("connection reset"))

			_, _, err := svc.Start(ctx, donor, org.ID)

			Expect(err).To(MatchError(ContainSubstring("connection reset")))
		})
	})

	Describe("visibility", func() {
		It("lets both participants read the chat", func() {
			chat := start()

			for _, u := range []*model.User{donor, admin} {
				got, err := svc.Get(ctx, u, chat.ID)
				Expect(err).NotTo(HaveOccurred())
				Expect(got.ID).To(Equal(chat.ID))
			}
		})

		It("hides the chat from everyone else", func() {
			chat := start()

			_, err := svc.Get(ctx, stranger, chat.ID)
			Expect(errors.Is(err, store.ErrNotFound)).To(BeTrue())

			_, err = svc.Messages(ctx, stranger, chat.ID, model.Page{})
			Expect(errors.Is(err, store.ErrNotFound)).To(BeTrue())

			_, err = svc.Send(ctx, stranger, chat.ID, "hello")
			Expect(errors.Is(err, store.ErrNotFound)).To(BeTrue())
			Expect(h.db.count("chat_messages")).To(Equal(0))
		})

		It("lists the donor's chats and the organization's chats", func() {
			chat := start()
			other := h.db.addOrganization(stranger, false)
			_, _, err := svc.Start(ctx, donor, other.ID)
			Expect(err).NotTo(HaveOccurred())

			mine, err := svc.ListMine(ctx, donor, model.Page{})
			Expect(err).NotTo(HaveOccurred())
			Expect(mine).To(HaveLen(2))

			forOrg, err := svc.ListForOrganization(ctx, admin, org.ID, model.Page{})
			Expect(err).NotTo(HaveOccurred())
			Expect(forOrg).To(HaveLen(1))
			Expect(forOrg[0].ID).To(Equal(chat.ID))
		})

		It("keeps an organization's chats to its admin", func() {
			start()

			_, err := svc.ListForOrganization(ctx, donor, org.ID, model.Page{})

			Expect(errors.Is(err, store.ErrNotFound)).To(BeTrue())
		})
	})

	Describe("Send", func() {
		It("stores the message and publishes it on the chat channel", func() {
			chat := start()

			msg, err := svc.Send(ctx, donor, chat.ID, "  when does the drive start?  ")

			Expect(err).NotTo(HaveOccurred())
			Expect(msg.Content).To(Equal("when does the drive start?"))
			Expect(msg.SenderID).To(Equal(donor.ID))
			Expect(h.publisher.channels()).To(Equal([]string{"chat_" + chat.ID.String()}))
			Expect(h.publisher.messages[0].msg.Kind).To(Equal(service.ChatMessageCreated))
			Expect(h.publisher.messages[0].msg.Payload).To(Equal(msg))
		})

		It("returns messages oldest first", func() {
			chat := start()
			_, err := svc.Send(ctx, donor, chat.ID, "hi")
			Expect(err).NotTo(HaveOccurred())
			_, err = svc.Send(ctx, admin, chat.ID, "hello, how can we help?")
			Expect(err).NotTo(HaveOccurred())

			messages, err := svc.Messages(ctx, admin, chat.ID, model.Page{})

			Expect(err).NotTo(HaveOccurred())
			Expect(messages).To(HaveLen(2))
			Expect(messages[0].Content).To(Equal("hi"))
			Expect(messages[1].SenderID).To(Equal(admin.ID))
		})

		DescribeTable("rejects unusable content",
			func(content string) {
				chat := start()

				_, err := svc.Send(ctx, donor, chat.ID, content)

				var vErr *service.ValidationError
				Expect(errors.As(err, &vErr)).To(BeTrue())
				Expect(vErr.Field).To(Equal("content"))
				Expect(h.db.count("chat_messages")).To(Equal(0))
				Expect(h.publisher.channels()).To(BeEmpty())
			},
			Entry("empty", ""),
			Entry("blank", " \n\t "),
			Entry("too long", strings.Repeat("a", 4001)),
		)

		It("keeps the message when publishing fails", func() {
			chat := start()
			h.publisher.err = errors.New("redis down")

			msg, err := svc.Send(ctx, donor, chat.ID, "still there?")

			Expect(err).NotTo(HaveOccurred())
			Expect(msg.ID).NotTo(Equal(uuid.Nil))
			Expect(h.db.count("chat_messages")).To(Equal(1))
		})
	})

	Describe("editing and deleting messages", func() {
		var (
			chat *model.Chat
			msg  *model.ChatMessage
		)

		BeforeEach(func() {
			chat = start()
			var err error
			msg, err = svc.Send(ctx, donor, chat.ID, "typo hre")
			Expect(err).NotTo(HaveOccurred())
		})

		It("lets the sender edit the message", func() {
			edited, err := svc.EditMessage(ctx, donor, msg.ID, "typo here")

			Expect(err).NotTo(HaveOccurred())
			Expect(edited.Content).To(Equal("typo here"))
			Expect(edited.UpdatedAt).To(BeTemporally(">", msg.UpdatedAt))
			Expect(h.publisher.messages).To(HaveLen(2))
			Expect(h.publisher.messages[1].msg.Kind).To(Equal(service.ChatMessageUpdated))
		})

		It("does not let the other participant edit or delete it", func() {
			_, err := svc.EditMessage(ctx, admin, msg.ID, "rewritten")
			Expect(errors.Is(err, store.ErrNotFound)).To(BeTrue())

			err = svc.DeleteMessage(ctx, admin, msg.ID)
			Expect(errors.Is(err, store.ErrNotFound)).To(BeTrue())
			Expect(h.db.count("chat_messages")).To(Equal(1))
		})

		It("deletes the message and announces it", func() {
			err := svc.DeleteMessage(ctx, donor, msg.ID)

			Expect(err).NotTo(HaveOccurred())
			Expect(h.db.count("chat_messages")).To(Equal(0))
			last := h.publisher.messages[len(h.publisher.messages)-1]
			Expect(last.channel).To(Equal("chat_" + chat.ID.String()))
			Expect(last.msg.Kind).To(Equal(service.ChatMessageDeleted))
		})
	})

	Describe("Delete", func() {
		It("removes the chat with its messages", func() {
			chat := start()
			_, err := svc.Send(ctx, admin, chat.ID, "welcome")
			Expect(err).NotTo(HaveOccurred())

			Expect(svc.Delete(ctx, donor, chat.ID)).To(Succeed())

			Expect(h.db.count("chats")).To(Equal(0))
			Expect(h.db.count("chat_messages")).To(Equal(0))
		})

		It("is reserved to the donor", func() {
			chat := start()

			err := svc.Delete(ctx, admin, chat.ID)

			Expect(errors.Is(err, store.ErrNotFound)).To(BeTrue())
			Expect(h.db.count("chats")).To(Equal(1))
		})

		It("goes away with the organization", func() {
			chat := start()
			_, err := svc.Send(ctx, donor, chat.ID, "hi")
			Expect(err).NotTo(HaveOccurred())

			Expect(h.organizations().Delete(ctx, h.db.addUser("staff", true), org.ID)).To(Succeed())

			Expect(h.db.count("chats")).To(Equal(0))
			Expect(h.db.count("chat_messages")).To(Equal(0))
		})
	})
})
