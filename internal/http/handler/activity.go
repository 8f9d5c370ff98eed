package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"donorhub.app/api/internal/http/dto"
	"donorhub.app/api/internal/http/middleware"
	"donorhub.app/api/internal/service"
)

type ActivityHandler struct {
	activities service.ActivityService
}

func NewActivityHandler(activities service.ActivityService) *ActivityHandler {
	return &ActivityHandler{activities: activities}
}

func (h *ActivityHandler) Create(c *gin.Context) {
	orgID, ok := pathID(c, "org_id", "organization")
	if !ok {
		return
	}

	var req dto.CreateActivityRequest
	if err := c.ShouldBind(&req); err != nil {
		badRequest(c, err)
		return
	}
	ids, err := parseUUIDs("transaction_ids", req.TransactionIDs)
	if err != nil {
		respondError(c, err)
		return
	}

	detail, err := h.activities.Create(c.Request.Context(), middleware.Actor(c), service.CreateActivityInput{
		OrganizationID: orgID,
		Title:          req.Title,
		Description:    req.Description,
		Location:       req.Location,
		TransactionIDs: ids,
		Files:          formFiles(c, attachmentsField),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, detail)
}

func (h *ActivityHandler) Update(c *gin.Context) {
	orgID, ok := pathID(c, "org_id", "organization")
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "activity")
	if !ok {
		return
	}

	var req dto.UpdateActivityRequest
	if err := c.ShouldBind(&req); err != nil {
		badRequest(c, err)
		return
	}
	ids, err := parseUUIDs("transaction_ids", req.TransactionIDs)
	if err != nil {
		respondError(c, err)
		return
	}

	detail, err := h.activities.Update(c.Request.Context(), middleware.Actor(c), orgID, id, service.UpdateActivityInput{
		Title:          req.Title,
		Description:    req.Description,
		Location:       req.Location,
		TransactionIDs: ids,
		Files:          formFiles(c, attachmentsField),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

func (h *ActivityHandler) Delete(c *gin.Context) {
	orgID, ok := pathID(c, "org_id", "organization")
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "activity")
	if !ok {
		return
	}

	if err := h.activities.Delete(c.Request.Context(), middleware.Actor(c), orgID, id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ActivityHandler) Get(c *gin.Context) {
	orgID, ok := pathID(c, "org_id", "organization")
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "activity")
	if !ok {
		return
	}

	detail, err := h.activities.Get(c.Request.Context(), orgID, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

func (h *ActivityHandler) List(c *gin.Context) {
	orgID, ok := pathID(c, "org_id", "organization")
	if !ok {
		return
	}
	page, err := pageQuery(c)
	if err != nil {
		respondError(c, err)
		return
	}

	items, err := h.activities.List(c.Request.Context(), orgID, searchQuery(c), page)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewListResponse(items, page))
}

// ListAll is the public feed across organizations.
func (h *ActivityHandler) ListAll(c *gin.Context) {
	page, err := pageQuery(c)
	if err != nil {
		respondError(c, err)
		return
	}

	items, err := h.activities.ListAll(c.Request.Context(), searchQuery(c), page)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewListResponse(items, page))
}
