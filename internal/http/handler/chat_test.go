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

var _ = Describe("ChatHandler", func() {
	var (
		router *gin.Engine
		svc    *mockChatService
		donor  *model.User
	)

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		router = gin.New()
		svc = &mockChatService{}
		donor = &model.User{ID: uuid.New()}
		h := handler.NewChatHandler(svc)

		router.POST("/organizations/:org_id/chats", asUser(donor), h.Start)
		chats := router.Group("/chats", asUser(donor))
		chats.DELETE("/:id", h.Delete)
		chats.POST("/:id/messages", h.Send)
	})

	postJSON := func(target, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, target, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	It("answers 201 when a chat is opened and 200 when it existed", func() {
		orgID := uuid.New()
		created := true
		svc.startFn = func(_ context.Context, actor *model.User, id uuid.UUID) (*model.Chat, bool, error) {
			Expect(actor.ID).To(Equal(donor.ID))
			Expect(id).To(Equal(orgID))
			return &model.Chat{ID: uuid.New(), DonorID: actor.ID, OrganizationID: id}, created, nil
		}

		w := postJSON("/organizations/"+orgID.String()+"/chats", "")
		Expect(w.Code).To(Equal(http.StatusCreated))

		created = false
		w = postJSON("/organizations/"+orgID.String()+"/chats", "")
		Expect(w.Code).To(Equal(http.StatusOK))
	})

	It("passes the message content through", func() {
		chatID := uuid.New()
		var got string
		svc.sendFn = func(_ context.Context, _ *model.User, id uuid.UUID, content string) (*model.ChatMessage, error) {
			Expect(id).To(Equal(chatID))
			got = content
			return &model.ChatMessage{ID: uuid.New(), ChatID: id, Content: content}, nil
		}

		w := postJSON("/chats/"+chatID.String()+"/messages", `{"content":"is the drive still open?"}`)

		Expect(w.Code).To(Equal(http.StatusCreated))
		Expect(got).To(Equal("is the drive still open?"))
		Expect(w.Body.String()).To(ContainSubstring(chatID.String()))
	})

	It("rejects a message without content at the edge", func() {
		called := false
		svc.sendFn = func(context.Context, *model.User, uuid.UUID, string) (*model.ChatMessage, error) {
			called = true
			return nil, nil
		}

		w := postJSON("/chats/"+uuid.NewString()+"/messages", `{}`)

		Expect(w.Code).To(Equal(http.StatusBadRequest))
		Expect(called).To(BeFalse())
	})

	It("maps a chat the caller cannot see to 404", func() {
		svc.deleteFn = func(context.Context, *model.User, uuid.UUID) error {
			return &service.NotFoundError{Resource: "chat"}
		}

		req := httptest.NewRequest(http.MethodDelete, "/chats/"+uuid.NewString(), nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusNotFound))
	})

	It("treats a malformed chat id as not found", func() {
		w := postJSON("/chats/not-an-id/messages", `{"content":"hi"}`)

		Expect(w.Code).To(Equal(http.StatusNotFound))
	})
})
