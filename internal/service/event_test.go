package service_test

import (
	"context"
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"

	"donorhub.app/api/internal/model"
	"donorhub.app/api/internal/service"
	"donorhub.app/api/internal/store"
)

func futureDate() time.Time {
	return time.Now().UTC().Add(30 * 24 * time.Hour)
}

var _ = Describe("EventService", func() {
	var (
		ctx   context.Context
		h     *harness
		svc   service.EventService
		admin *model.User
		org   *model.Organization
	)

	BeforeEach(func() {
		ctx = context.Background()
		h = newHarness()
		svc = h.events()
		admin = h.db.addUser("admin", false)
		org = h.db.addOrganization(admin, true)
	})

	newEvent := func() *service.EventDetail {
		event, err := svc.Create(ctx, admin, service.CreateEventInput{
			OrganizationID: org.ID,
			Title:          "Winter Drive",
			Description:    "blankets for the north",
			TargetAmount:   decimal.RequireFromString("5000"),
			EndDate:        futureDate(),
			Files:          uploads("poster.jpg"),
		})
		Expect(err).NotTo(HaveOccurred())
		return event
	}

	It("opens new events", func() {
		event := newEvent()

		Expect(event.Status).To(Equal(model.EventStatusOpen))
		Expect(event.Attachments).To(HaveLen(1))
	})

	It("requires an end date in the future", func() {
		_, err := svc.Create(ctx, admin, service.CreateEventInput{
			OrganizationID: org.ID,
			Title:          "Too Late",
			TargetAmount:   decimal.RequireFromString("10"),
			EndDate:        time.Now().Add(-time.Hour),
		})

		var vErr *service.ValidationError
		Expect(errors.As(err, &vErr)).To(BeTrue())
		Expect(vErr.Field).To(Equal("end_date"))
	})

	It("requires payment setup", func() {
		unready := h.db.addOrganization(admin, false)

		_, err := svc.Create(ctx, admin, service.CreateEventInput{
			OrganizationID: unready.ID,
			Title:          "Winter Drive",
			TargetAmount:   decimal.RequireFromString("10"),
			EndDate:        futureDate(),
		})

		var cfgErr *service.ConfigurationError
		Expect(errors.As(err, &cfgErr)).To(BeTrue())
	})

	It("closes an event and drops it from the open list", func() {
		event := newEvent()
		closed := model.EventStatusClosed

		updated, err := svc.Update(ctx, admin, org.ID, event.ID, service.UpdateEventInput{Status: &closed})
		Expect(err).NotTo(HaveOccurred())
		Expect(updated.Status).To(Equal(model.EventStatusClosed))

		open, err := svc.ListOpen(ctx, model.Page{})
		Expect(err).NotTo(HaveOccurred())
		Expect(open).To(BeEmpty())
	})

	It("hides events behind the wrong organization", func() {
		event := newEvent()
		other := h.db.addOrganization(admin, true)

		_, err := svc.Get(ctx, other.ID, event.ID)

		Expect(errors.Is(err, store.ErrNotFound)).To(BeTrue())
	})
})
