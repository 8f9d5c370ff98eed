package handler_test

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"donorhub.app/api/internal/http/middleware"
	"donorhub.app/api/internal/model"
	"donorhub.app/api/internal/service"
)

type mockTransactionService struct {
	createFn  func(ctx context.Context, actor *model.User, in service.CreateTransactionInput) (*service.TransactionDetail, error)
	updateFn  func(ctx context.Context, actor *model.User, orgID, id uuid.UUID, in service.UpdateTransactionInput) (*service.TransactionDetail, error)
	deleteFn  func(ctx context.Context, actor *model.User, orgID, id uuid.UUID) error
	getFn     func(ctx context.Context, actor *model.User, orgID, id uuid.UUID) (*service.TransactionDetail, error)
	listFn    func(ctx context.Context, actor *model.User, orgID uuid.UUID, filter model.TransactionFilter, page model.Page) ([]service.TransactionDetail, error)
	historyFn func(ctx context.Context, actor *model.User, page model.Page) ([]service.TransactionDetail, error)
}

func (m *mockTransactionService) Create(ctx context.Context, actor *model.User, in service.CreateTransactionInput) (*service.TransactionDetail, error) {
	if m.createFn != nil {
		return m.createFn(ctx, actor, in)
	}
	return nil, nil
}

func (m *mockTransactionService) Update(ctx context.Context, actor *model.User, orgID, id uuid.UUID, in service.UpdateTransactionInput) (*service.TransactionDetail, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, actor, orgID, id, in)
	}
	return nil, nil
}

func (m *mockTransactionService) Delete(ctx context.Context, actor *model.User, orgID, id uuid.UUID) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, actor, orgID, id)
	}
	return nil
}

func (m *mockTransactionService) Get(ctx context.Context, actor *model.User, orgID, id uuid.UUID) (*service.TransactionDetail, error) {
	if m.getFn != nil {
		return m.getFn(ctx, actor, orgID, id)
	}
	return nil, nil
}

func (m *mockTransactionService) List(ctx context.Context, actor *model.User, orgID uuid.UUID, filter model.TransactionFilter, page model.Page) ([]service.TransactionDetail, error) {
	if m.listFn != nil {
		return m.listFn(ctx, actor, orgID, filter, page)
	}
	return nil, nil
}

func (m *mockTransactionService) DonationHistory(ctx context.Context, actor *model.User, page model.Page) ([]service.TransactionDetail, error) {
	if m.historyFn != nil {
		return m.historyFn(ctx, actor, page)
	}
	return nil, nil
}

type mockActivityService struct {
	createFn func(ctx context.Context, actor *model.User, in service.CreateActivityInput) (*service.ActivityDetail, error)
	updateFn func(ctx context.Context, actor *model.User, orgID, id uuid.UUID, in service.UpdateActivityInput) (*service.ActivityDetail, error)
}

func (m *mockActivityService) Create(ctx context.Context, actor *model.User, in service.CreateActivityInput) (*service.ActivityDetail, error) {
	if m.createFn != nil {
		return m.createFn(ctx, actor, in)
	}
	return nil, nil
}

func (m *mockActivityService) Update(ctx context.Context, actor *model.User, orgID, id uuid.UUID, in service.UpdateActivityInput) (*service.ActivityDetail, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, actor, orgID, id, in)
	}
	return nil, nil
}

func (m *mockActivityService) Delete(context.Context, *model.User, uuid.UUID, uuid.UUID) error {
	return nil
}

func (m *mockActivityService) Get(context.Context, uuid.UUID, uuid.UUID) (*service.ActivityDetail, error) {
	return nil, nil
}

func (m *mockActivityService) List(context.Context, uuid.UUID, *string, model.Page) ([]service.ActivityDetail, error) {
	return nil, nil
}

func (m *mockActivityService) ListAll(context.Context, *string, model.Page) ([]service.ActivityDetail, error) {
	return nil, nil
}

type mockOrganizationRequestService struct {
	submitFn func(ctx context.Context, actor *model.User, in service.SubmitRequestInput) (*service.OrganizationRequestDetail, error)
	reviewFn func(ctx context.Context, reviewer *model.User, id uuid.UUID, status model.OrganizationRequestStatus) (*service.OrganizationRequestDetail, error)
	ensureFn func(ctx context.Context, actor *model.User, requestID uuid.UUID) (*model.Organization, error)
}

func (m *mockOrganizationRequestService) Submit(ctx context.Context, actor *model.User, in service.SubmitRequestInput) (*service.OrganizationRequestDetail, error) {
	if m.submitFn != nil {
		return m.submitFn(ctx, actor, in)
	}
	return nil, nil
}

func (m *mockOrganizationRequestService) Review(ctx context.Context, reviewer *model.User, id uuid.UUID, status model.OrganizationRequestStatus) (*service.OrganizationRequestDetail, error) {
	if m.reviewFn != nil {
		return m.reviewFn(ctx, reviewer, id, status)
	}
	return nil, nil
}

func (m *mockOrganizationRequestService) EnsureOrganization(ctx context.Context, actor *model.User, requestID uuid.UUID) (*model.Organization, error) {
	if m.ensureFn != nil {
		return m.ensureFn(ctx, actor, requestID)
	}
	return nil, nil
}

func (m *mockOrganizationRequestService) Get(context.Context, *model.User, uuid.UUID) (*service.OrganizationRequestDetail, error) {
	return nil, nil
}

func (m *mockOrganizationRequestService) List(context.Context, *model.User, *model.OrganizationRequestStatus, *string, model.Page) ([]model.OrganizationRequest, error) {
	return nil, nil
}

type mockChatService struct {
	startFn  func(ctx context.Context, actor *model.User, orgID uuid.UUID) (*model.Chat, bool, error)
	sendFn   func(ctx context.Context, actor *model.User, chatID uuid.UUID, content string) (*model.ChatMessage, error)
	deleteFn func(ctx context.Context, actor *model.User, id uuid.UUID) error
}

func (m *mockChatService) Start(ctx context.Context, actor *model.User, orgID uuid.UUID) (*model.Chat, bool, error) {
	if m.startFn != nil {
		return m.startFn(ctx, actor, orgID)
	}
	return &model.Chat{}, false, nil
}

func (m *mockChatService) ListMine(context.Context, *model.User, model.Page) ([]model.Chat, error) {
	return nil, nil
}

func (m *mockChatService) ListForOrganization(context.Context, *model.User, uuid.UUID, model.Page) ([]model.Chat, error) {
	return nil, nil
}

func (m *mockChatService) Get(context.Context, *model.User, uuid.UUID) (*model.Chat, error) {
	return nil, nil
}

func (m *mockChatService) Delete(ctx context.Context, actor *model.User, id uuid.UUID) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, actor, id)
	}
	return nil
}

func (m *mockChatService) Messages(context.Context, *model.User, uuid.UUID, model.Page) ([]model.ChatMessage, error) {
	return nil, nil
}

func (m *mockChatService) Send(ctx context.Context, actor *model.User, chatID uuid.UUID, content string) (*model.ChatMessage, error) {
	if m.sendFn != nil {
		return m.sendFn(ctx, actor, chatID, content)
	}
	return &model.ChatMessage{}, nil
}

func (m *mockChatService) EditMessage(context.Context, *model.User, uuid.UUID, string) (*model.ChatMessage, error) {
	return nil, nil
}

func (m *mockChatService) DeleteMessage(context.Context, *model.User, uuid.UUID) error {
	return nil
}

// asUser stands in for the authentication middleware.
func asUser(user *model.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		middleware.SetUser(c, user)
		c.Next()
	}
}

type formFile struct {
	field, name, content string
}

func multipartRequest(method, target string, fields map[string][]string, files ...formFile) *http.Request {
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for name, values := range fields {
		for _, v := range values {
			_ = w.WriteField(name, v)
		}
	}
	for _, f := range files {
		part, _ := w.CreateFormFile(f.field, f.name)
		_, _ = part.Write([]byte(f.content))
	}
	_ = w.Close()

	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}
