package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"donorhub.app/api/internal/http/dto"
	"donorhub.app/api/internal/http/middleware"
	"donorhub.app/api/internal/model"
	"donorhub.app/api/internal/service"
)

type OrganizationRequestHandler struct {
	requests service.OrganizationRequestService
}

func NewOrganizationRequestHandler(requests service.OrganizationRequestService) *OrganizationRequestHandler {
	return &OrganizationRequestHandler{requests: requests}
}

func (h *OrganizationRequestHandler) Submit(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.SubmitOrganizationRequest
	if err := c.ShouldBind(&req); err != nil {
		badRequest(c, err)
		return
	}

	detail, err := h.requests.Submit(ctx, middleware.Actor(c), service.SubmitRequestInput{
		OrganizationName: req.OrganizationName,
		Type:             req.Type,
		Files:            formFiles(c, attachmentsField),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, detail)
}

func (h *OrganizationRequestHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	page, err := pageQuery(c)
	if err != nil {
		respondError(c, err)
		return
	}
	var status *model.OrganizationRequestStatus
	if v := c.Query("status"); v != "" {
		s := model.OrganizationRequestStatus(v)
		status = &s
	}

	items, err := h.requests.List(ctx, middleware.Actor(c), status, searchQuery(c), page)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewListResponse(items, page))
}

func (h *OrganizationRequestHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id", "organization request")
	if !ok {
		return
	}

	detail, err := h.requests.Get(c.Request.Context(), middleware.Actor(c), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

// EnsureOrganization re-runs organization creation for an approved request. It is
// idempotent and answers with the request's organization.
func (h *OrganizationRequestHandler) EnsureOrganization(c *gin.Context) {
	id, ok := pathID(c, "id", "organization request")
	if !ok {
		return
	}

	org, err := h.requests.EnsureOrganization(c.Request.Context(), middleware.Actor(c), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, org)
}

func (h *OrganizationRequestHandler) Review(c *gin.Context) {
	id, ok := pathID(c, "id", "organization request")
	if !ok {
		return
	}

	var req dto.ReviewOrganizationRequest
	if err := c.ShouldBind(&req); err != nil {
		badRequest(c, err)
		return
	}

	detail, err := h.requests.Review(c.Request.Context(), middleware.Actor(c), id, model.OrganizationRequestStatus(req.Status))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}
