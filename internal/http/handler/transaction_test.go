package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
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

var _ = Describe("TransactionHandler", func() {
	var (
		router *gin.Engine
		svc    *mockTransactionService
		user   *model.User
		orgID  uuid.UUID
	)

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		router = gin.New()
		svc = &mockTransactionService{}
		user = &model.User{ID: uuid.New(), Username: "donor"}
		orgID = uuid.New()
		h := handler.NewTransactionHandler(svc)

		rg := router.Group("/organizations/:org_id/transactions", asUser(user))
		rg.POST("", h.Create)
		rg.GET("", h.List)
		rg.PATCH("/:id", h.Update)
		rg.DELETE("/:id", h.Delete)
	})

	base := func() string {
		return "/organizations/" + orgID.String() + "/transactions"
	}

	decode := func(w *httptest.ResponseRecorder) map[string]any {
		var resp map[string]any
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		return resp
	}

	Describe("Create", func() {
		It("passes the parsed form and files to the service", func() {
			var got service.CreateTransactionInput
			svc.createFn = func(_ context.Context, actor *model.User, in service.CreateTransactionInput) (*service.TransactionDetail, error) {
				Expect(actor.ID).To(Equal(user.ID))
				got = in
				rc, err := in.Files[0].Open()
				Expect(err).NotTo(HaveOccurred())
				defer rc.Close()
				content, _ := io.ReadAll(rc)
				Expect(string(content)).To(Equal("png-bytes"))
				return &service.TransactionDetail{Transaction: model.Transaction{ID: uuid.New(), Type: in.Type, Status: model.TransactionStatusPending}}, nil
			}

			req := multipartRequest(http.MethodPost, base(), map[string][]string{
				"type":   {"donation"},
				"amount": {"12.50"},
			}, formFile{field: "attachments", name: "receipt.png", content: "png-bytes"})
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusCreated))
			Expect(got.OrganizationID).To(Equal(orgID))
			Expect(got.Type).To(Equal(model.TransactionTypeDonation))
			Expect(got.Amount.String()).To(Equal("12.5"))
			Expect(got.Files).To(HaveLen(1))
			Expect(got.Files[0].FileName).To(Equal("receipt.png"))
			Expect(decode(w)["status"]).To(Equal("pending"))
		})

		It("returns 400 for a malformed amount", func() {
			req := multipartRequest(http.MethodPost, base(), map[string][]string{
				"type":   {"donation"},
				"amount": {"ten"},
			})
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(decode(w)["field"]).To(Equal("amount"))
		})

		It("returns 422 when the organization cannot take payments", func() {
			svc.createFn = func(context.Context, *model.User, service.CreateTransactionInput) (*service.TransactionDetail, error) {
				return nil, &service.ConfigurationError{Message: "payment setup missing"}
			}

			req := multipartRequest(http.MethodPost, base(), map[string][]string{
				"type":   {"donation"},
				"amount": {"5"},
			}, formFile{field: "attachments", name: "r.png", content: "x"})
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusUnprocessableEntity))
			Expect(decode(w)["code"]).To(Equal("payment_setup_required"))
		})
	})

	Describe("Update", func() {
		It("returns 409 invalid_state for a terminal transaction", func() {
			svc.updateFn = func(context.Context, *model.User, uuid.UUID, uuid.UUID, service.UpdateTransactionInput) (*service.TransactionDetail, error) {
				return nil, &service.InvalidStateError{Message: "transaction is approved"}
			}

			req := multipartRequest(http.MethodPatch, base()+"/"+uuid.NewString(), map[string][]string{"status": {"rejected"}})
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusConflict))
			Expect(decode(w)["code"]).To(Equal("invalid_state"))
		})

		It("only sets the fields that were sent", func() {
			var got service.UpdateTransactionInput
			svc.updateFn = func(_ context.Context, _ *model.User, _, _ uuid.UUID, in service.UpdateTransactionInput) (*service.TransactionDetail, error) {
				got = in
				return &service.TransactionDetail{}, nil
			}

			req := multipartRequest(http.MethodPatch, base()+"/"+uuid.NewString(), map[string][]string{"status": {"approved"}})
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(*got.Status).To(Equal(model.TransactionStatusApproved))
			Expect(got.Title).To(BeNil())
			Expect(got.ReviewRequired).To(BeNil())
			Expect(got.Files).To(BeNil())
		})
	})

	Describe("Delete", func() {
		It("returns 204 on success", func() {
			req := httptest.NewRequest(http.MethodDelete, base()+"/"+uuid.NewString(), nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusNoContent))
		})

		It("returns 404 for a malformed id without calling the service", func() {
			called := false
			svc.deleteFn = func(context.Context, *model.User, uuid.UUID, uuid.UUID) error {
				called = true
				return nil
			}

			req := httptest.NewRequest(http.MethodDelete, base()+"/not-a-uuid", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusNotFound))
			Expect(called).To(BeFalse())
		})

		It("returns 404 when the service hides the transaction", func() {
			svc.deleteFn = func(context.Context, *model.User, uuid.UUID, uuid.UUID) error {
				return &service.NotFoundError{Resource: "transaction"}
			}

			req := httptest.NewRequest(http.MethodDelete, base()+"/"+uuid.NewString(), nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusNotFound))
			Expect(decode(w)["error"]).To(Equal("transaction not found"))
		})

		It("returns 500 without leaking infrastructure errors", func() {
			svc.deleteFn = func(context.Context, *model.User, uuid.UUID, uuid.UUID) error {
				return errors.New("connection reset by peer")
			}

			req := httptest.NewRequest(http.MethodDelete, base()+"/"+uuid.NewString(), nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusInternalServerError))
			Expect(w.Body.String()).NotTo(ContainSubstring("connection reset"))
		})
	})

	Describe("List", func() {
		It("parses filters and paging", func() {
			var (
				gotFilter model.TransactionFilter
				gotPage   model.Page
			)
			svc.listFn = func(_ context.Context, _ *model.User, _ uuid.UUID, filter model.TransactionFilter, page model.Page) ([]service.TransactionDetail, error) {
				gotFilter = filter
				gotPage = page
				return nil, nil
			}

			req := httptest.NewRequest(http.MethodGet, base()+"?type=disbursement&unlinked=true&limit=5&offset=10&search=rice", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(*gotFilter.Type).To(Equal(model.TransactionTypeDisbursement))
			Expect(gotFilter.Unlinked).To(BeTrue())
			Expect(*gotFilter.Search).To(Equal("rice"))
			Expect(gotFilter.EventID).To(BeNil())
			Expect(gotPage).To(Equal(model.Page{Limit: 5, Offset: 10}))
			Expect(decode(w)["items"]).To(BeEmpty())
		})

		It("rejects a malformed boolean filter", func() {
			req := httptest.NewRequest(http.MethodGet, base()+"?unlinked=maybe", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})
})
