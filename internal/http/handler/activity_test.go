package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"donorhub.app/api/internal/http/handler"
	"donorhub.app/api/internal/model"
	"donorhub.app/api/internal/service"
	"donorhub.app/api/internal/store"
)

var _ = Describe("ActivityHandler", func() {
	var (
		router *gin.Engine
		svc    *mockActivityService
		orgID  uuid.UUID
	)

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		router = gin.New()
		svc = &mockActivityService{}
		orgID = uuid.New()
		h := handler.NewActivityHandler(svc)

		rg := router.Group("/organizations/:org_id/activities", asUser(&model.User{ID: uuid.New()}))
		rg.POST("", h.Create)
		rg.PATCH("/:id", h.Update)
	})

	jsonRequest := func(method, target string, body any) *http.Request {
		raw, _ := json.Marshal(body)
		req := httptest.NewRequest(method, target, bytes.NewBuffer(raw))
		req.Header.Set("Content-Type", "application/json")
		return req
	}

	target := func(suffix string) string {
		return "/organizations/" + orgID.String() + "/activities" + suffix
	}

	It("returns 400 naming the offending ids", func() {
		d1 := uuid.New()
		svc.createFn = func(context.Context, *model.User, service.CreateActivityInput) (*service.ActivityDetail, error) {
			return nil, &service.ValidationError{Field: "transaction_ids", Message: "transactions are already linked to another activity", IDs: []uuid.UUID{d1}}
		}

		w := httptest.NewRecorder()
		router.ServeHTTP(w, jsonRequest(http.MethodPost, target(""), map[string]any{
			"title":           "Other",
			"transaction_ids": []string{d1.String()},
		}))

		Expect(w.Code).To(Equal(http.StatusBadRequest))
		var resp map[string]any
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp["field"]).To(Equal("transaction_ids"))
		Expect(resp["ids"]).To(ConsistOf(d1.String()))
	})

	It("accepts ids as repeated or comma separated form values", func() {
		d1, d2, d3 := uuid.New(), uuid.New(), uuid.New()
		var got []uuid.UUID
		svc.createFn = func(_ context.Context, _ *model.User, in service.CreateActivityInput) (*service.ActivityDetail, error) {
			got = in.TransactionIDs
			return &service.ActivityDetail{}, nil
		}

		req := multipartRequest(http.MethodPost, target(""), map[string][]string{
			"title":           {"Food Drive"},
			"transaction_ids": {d1.String(), d2.String() + "," + d3.String()},
		})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusCreated))
		Expect(got).To(Equal([]uuid.UUID{d1, d2, d3}))
	})

	It("returns 409 conflict when a concurrent link won", func() {
		svc.createFn = func(context.Context, *model.User, service.CreateActivityInput) (*service.ActivityDetail, error) {
			return nil, &service.ConflictError{Message: "linked concurrently", Err: store.ErrConflict}
		}

		w := httptest.NewRecorder()
		router.ServeHTTP(w, jsonRequest(http.MethodPost, target(""), map[string]any{
			"title":           "Food Drive",
			"transaction_ids": []string{uuid.NewString()},
		}))

		Expect(w.Code).To(Equal(http.StatusConflict))
		var resp map[string]any
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp["code"]).To(Equal("conflict"))
	})

	It("leaves links alone when transaction_ids is omitted", func() {
		var got service.UpdateActivityInput
		svc.updateFn = func(_ context.Context, _ *model.User, _, _ uuid.UUID, in service.UpdateActivityInput) (*service.ActivityDetail, error) {
			got = in
			return &service.ActivityDetail{}, nil
		}

		w := httptest.NewRecorder()
		router.ServeHTTP(w, jsonRequest(http.MethodPatch, target("/"+uuid.NewString()), map[string]any{"title": "Renamed"}))

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(*got.Title).To(Equal("Renamed"))
		Expect(got.TransactionIDs).To(BeNil())
	})

	It("passes an explicit empty set through for the service to reject", func() {
		var got service.UpdateActivityInput
		svc.updateFn = func(_ context.Context, _ *model.User, _, _ uuid.UUID, in service.UpdateActivityInput) (*service.ActivityDetail, error) {
			got = in
			return &service.ActivityDetail{}, nil
		}

		w := httptest.NewRecorder()
		router.ServeHTTP(w, jsonRequest(http.MethodPatch, target("/"+uuid.NewString()), map[string]any{"transaction_ids": []string{}}))

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(got.TransactionIDs).NotTo(BeNil())
		Expect(got.TransactionIDs).To(BeEmpty())
	})

	It("rejects malformed ids", func() {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, jsonRequest(http.MethodPost, target(""), map[string]any{
			"title":           "Food Drive",
			"transaction_ids": []string{"D1"},
		}))

		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})
})
