package handler_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"donorhub.app/api/internal/http/handler"
	"donorhub.app/api/internal/model"
	"donorhub.app/api/internal/service"
)

var _ = Describe("OrganizationRequestHandler", func() {
	var (
		router *gin.Engine
		svc    *mockOrganizationRequestService
		staff  *model.User
	)

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		router = gin.New()
		svc = &mockOrganizationRequestService{}
		staff = &model.User{ID: uuid.New(), IsStaff: true}
		h := handler.NewOrganizationRequestHandler(svc)

		rg := router.Group("/organization-requests", asUser(staff))
		rg.POST("", h.Submit)
		rg.PATCH("/:id", h.Review)
		rg.POST("/:id/organization", h.EnsureOrganization)
	})

	It("forwards certificates on submit", func() {
		var got service.SubmitRequestInput
		svc.submitFn = func(_ context.Context, _ *model.User, in service.SubmitRequestInput) (*service.OrganizationRequestDetail, error) {
			got = in
			return &service.OrganizationRequestDetail{}, nil
		}

		req := multipartRequest(http.MethodPost, "/organization-requests", map[string][]string{
			"organization_name": {"Helping Hands"},
			"type":              {"charity"},
		},
			formFile{field: "attachments", name: "cert-1.pdf", content: "a"},
			formFile{field: "attachments", name: "cert-2.pdf", content: "b"},
		)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusCreated))
		Expect(got.OrganizationName).To(Equal("Helping Hands"))
		Expect(got.Files).To(HaveLen(2))
	})

	It("passes the review decision through", func() {
		var got model.OrganizationRequestStatus
		svc.reviewFn = func(_ context.Context, reviewer *model.User, _ uuid.UUID, status model.OrganizationRequestStatus) (*service.OrganizationRequestDetail, error) {
			Expect(reviewer.IsStaff).To(BeTrue())
			got = status
			return &service.OrganizationRequestDetail{}, nil
		}

		req := httptest.NewRequest(http.MethodPatch, "/organization-requests/"+uuid.NewString(), bytes.NewBufferString(`{"status":"approved"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(got).To(Equal(model.OrganizationRequestStatusApproved))
	})

	It("rejects an unknown review status at the edge", func() {
		req := httptest.NewRequest(http.MethodPatch, "/organization-requests/"+uuid.NewString(), bytes.NewBufferString(`{"status":"pending"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("re-triggers organization creation for a request", func() {
		requestID := uuid.New()
		org := &model.Organization{ID: uuid.New(), Name: "helping hands", OrganizationRequestID: requestID}
		svc.ensureFn = func(_ context.Context, actor *model.User, id uuid.UUID) (*model.Organization, error) {
			Expect(actor).To(Equal(staff))
			Expect(id).To(Equal(requestID))
			return org, nil
		}

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/organization-requests/"+requestID.String()+"/organization", nil))

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(ContainSubstring(org.ID.String()))
	})

	It("maps a re-trigger on a pending request to 409", func() {
		svc.ensureFn = func(context.Context, *model.User, uuid.UUID) (*model.Organization, error) {
			return nil, &service.InvalidStateError{Message: "not approved"}
		}

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/organization-requests/"+uuid.NewString()+"/organization", nil))

		Expect(w.Code).To(Equal(http.StatusConflict))
		Expect(w.Body.String()).To(ContainSubstring("invalid_state"))
	})

	It("maps a second approval to 409", func() {
		svc.reviewFn = func(context.Context, *model.User, uuid.UUID, model.OrganizationRequestStatus) (*service.OrganizationRequestDetail, error) {
			return nil, &service.InvalidStateError{Message: "already approved"}
		}

		req := httptest.NewRequest(http.MethodPatch, "/organization-requests/"+uuid.NewString(), bytes.NewBufferString(`{"status":"approved"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusConflict))
	})
})
