package service_test

import (
	"context"
	"errors"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"donorhub.app/api/internal/service"
)

var _ = Describe("UserService", func() {
	var (
		ctx context.Context
		db  *memDB
		svc service.UserService
	)

	BeforeEach(func() {
		ctx = context.Background()
		db = newMemDB()
		svc = service.NewUserService(db.Users())
	})

	It("mirrors the identity and keeps the original creation time", func() {
		id := uuid.New()

		first, err := svc.Sync(ctx, service.Identity{UserID: id, Username: "mya", Email: "Mya@Example.com"})
		Expect(err).NotTo(HaveOccurred())
		Expect(first.Email).To(Equal("mya@example.com"))

		second, err := svc.Sync(ctx, service.Identity{UserID: id, Username: "mya", Email: "mya@example.com", IsStaff: true})
		Expect(err).NotTo(HaveOccurred())
		Expect(second.IsStaff).To(BeTrue())
		Expect(second.CreatedAt).To(Equal(first.CreatedAt))
	})

	It("falls back to the email when the username is blank", func() {
		user, err := svc.Sync(ctx, service.Identity{UserID: uuid.New(), Email: "kyaw@example.com"})

		Expect(err).NotTo(HaveOccurred())
		Expect(user.Username).To(Equal("kyaw@example.com"))
	})

	It("requires a subject", func() {
		_, err := svc.Sync(ctx, service.Identity{Username: "ghost"})

		var vErr *service.ValidationError
		Expect(errors.As(err, &vErr)).To(BeTrue())
	})
})
