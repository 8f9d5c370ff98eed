package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"donorhub.app/api/internal/http/dto"
	"donorhub.app/api/internal/http/middleware"
	"donorhub.app/api/internal/model"
	"donorhub.app/api/internal/service"
)

type EventHandler struct {
	events service.EventService
}

func NewEventHandler(events service.EventService) *EventHandler {
	return &EventHandler{events: events}
}

func (h *EventHandler) Create(c *gin.Context) {
	orgID, ok := pathID(c, "org_id", "organization")
	if !ok {
		return
	}

	var req dto.CreateEventRequest
	if err := c.ShouldBind(&req); err != nil {
		badRequest(c, err)
		return
	}
	target, err := parseAmount("target_amount", req.TargetAmount)
	if err != nil {
		respondError(c, err)
		return
	}
	endDate, err := parseDate("end_date", req.EndDate)
	if err != nil {
		respondError(c, err)
		return
	}

	detail, err := h.events.Create(c.Request.Context(), middleware.Actor(c), service.CreateEventInput{
		OrganizationID: orgID,
		Title:          req.Title,
		Description:    req.Description,
		TargetAmount:   target,
		EndDate:        endDate,
		Files:          formFiles(c, attachmentsField),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, detail)
}

func (h *EventHandler) Update(c *gin.Context) {
	orgID, ok := pathID(c, "org_id", "organization")
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "event")
	if !ok {
		return
	}

	var req dto.UpdateEventRequest
	if err := c.ShouldBind(&req); err != nil {
		badRequest(c, err)
		return
	}

	in := service.UpdateEventInput{
		Title:       req.Title,
		Description: req.Description,
	}
	if req.Status != nil {
		status := model.EventStatus(*req.Status)
		in.Status = &status
	}
	if req.TargetAmount != nil {
		target, err := parseAmount("target_amount", *req.TargetAmount)
		if err != nil {
			respondError(c, err)
			return
		}
		in.TargetAmount = &target
	}
	if req.EndDate != nil {
		endDate, err := parseDate("end_date", *req.EndDate)
		if err != nil {
			respondError(c, err)
			return
		}
		in.EndDate = &endDate
	}

	detail, err := h.events.Update(c.Request.Context(), middleware.Actor(c), orgID, id, in)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

func (h *EventHandler) Get(c *gin.Context) {
	orgID, ok := pathID(c, "org_id", "organization")
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "event")
	if !ok {
		return
	}

	detail, err := h.events.Get(c.Request.Context(), orgID, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

func (h *EventHandler) List(c *gin.Context) {
	orgID, ok := pathID(c, "org_id", "organization")
	if !ok {
		return
	}
	page, err := pageQuery(c)
	if err != nil {
		respondError(c, err)
		return
	}
	var status *model.EventStatus
	if v := c.Query("status"); v != "" {
		s := model.EventStatus(v)
		status = &s
	}

	items, err := h.events.List(c.Request.Context(), orgID, status, page)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewListResponse(items, page))
}

// ListOpen lists open events of every organization.
func (h *EventHandler) ListOpen(c *gin.Context) {
	page, err := pageQuery(c)
	if err != nil {
		respondError(c, err)
		return
	}

	items, err := h.events.ListOpen(c.Request.Context(), page)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewListResponse(items, page))
}
