package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"donorhub.app/api/internal/http/dto"
	"donorhub.app/api/internal/http/middleware"
	"donorhub.app/api/internal/service"
)

type OrganizationHandler struct {
	organizations service.OrganizationService
}

func NewOrganizationHandler(organizations service.OrganizationService) *OrganizationHandler {
	return &OrganizationHandler{organizations: organizations}
}

func (h *OrganizationHandler) List(c *gin.Context) {
	page, err := pageQuery(c)
	if err != nil {
		respondError(c, err)
		return
	}

	orgs, err := h.organizations.List(c.Request.Context(), searchQuery(c), page)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewListResponse(orgs, page))
}

func (h *OrganizationHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "org_id", "organization")
	if !ok {
		return
	}

	detail, err := h.organizations.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

func (h *OrganizationHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "org_id", "organization")
	if !ok {
		return
	}

	var req dto.UpdateOrganizationRequest
	if err := c.ShouldBind(&req); err != nil {
		badRequest(c, err)
		return
	}

	detail, err := h.organizations.Update(c.Request.Context(), middleware.Actor(c), id, service.UpdateOrganizationInput{
		Description:    req.Description,
		PhoneNumber:    req.PhoneNumber,
		Email:          req.Email,
		AdditionalInfo: req.AdditionalInfo,
		KpayQrURL:      req.KpayQrURL,
		Files:          formFiles(c, attachmentsField),
		QrImage:        formFile(c, qrImageField),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

func (h *OrganizationHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "org_id", "organization")
	if !ok {
		return
	}

	if err := h.organizations.Delete(c.Request.Context(), middleware.Actor(c), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
