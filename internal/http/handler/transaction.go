package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"donorhub.app/api/internal/http/dto"
	"donorhub.app/api/internal/http/middleware"
	"donorhub.app/api/internal/model"
	"donorhub.app/api/internal/service"
)

type TransactionHandler struct {
	transactions service.TransactionService
}

func NewTransactionHandler(transactions service.TransactionService) *TransactionHandler {
	return &TransactionHandler{transactions: transactions}
}

func (h *TransactionHandler) Create(c *gin.Context) {
	orgID, ok := pathID(c, "org_id", "organization")
	if !ok {
		return
	}

	var req dto.CreateTransactionRequest
	if err := c.ShouldBind(&req); err != nil {
		badRequest(c, err)
		return
	}
	amount, err := parseAmount("amount", req.Amount)
	if err != nil {
		respondError(c, err)
		return
	}
	eventID, err := parseOptionalUUID("event_id", req.EventID)
	if err != nil {
		respondError(c, err)
		return
	}

	detail, err := h.transactions.Create(c.Request.Context(), middleware.Actor(c), service.CreateTransactionInput{
		OrganizationID: orgID,
		Type:           model.TransactionType(req.Type),
		Amount:         amount,
		Title:          req.Title,
		EventID:        eventID,
		ReviewRequired: req.ReviewRequired,
		Files:          formFiles(c, attachmentsField),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, detail)
}

func (h *TransactionHandler) List(c *gin.Context) {
	orgID, ok := pathID(c, "org_id", "organization")
	if !ok {
		return
	}

	page, err := pageQuery(c)
	if err != nil {
		respondError(c, err)
		return
	}
	filter, err := transactionFilter(c)
	if err != nil {
		respondError(c, err)
		return
	}

	items, err := h.transactions.List(c.Request.Context(), middleware.Actor(c), orgID, filter, page)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewListResponse(items, page))
}

func transactionFilter(c *gin.Context) (model.TransactionFilter, error) {
	var filter model.TransactionFilter
	if v := c.Query("type"); v != "" {
		t := model.TransactionType(v)
		filter.Type = &t
	}
	if v := c.Query("status"); v != "" {
		s := model.TransactionStatus(v)
		filter.Status = &s
	}
	eventID := c.Query("event_id")
	id, err := parseOptionalUUID("event_id", &eventID)
	if err != nil {
		return filter, err
	}
	filter.EventID = id
	if filter.ReviewRequired, err = boolQuery(c, "review_required"); err != nil {
		return filter, err
	}
	unlinked, err := boolQuery(c, "unlinked")
	if err != nil {
		return filter, err
	}
	filter.Unlinked = unlinked != nil && *unlinked
	filter.Search = searchQuery(c)
	return filter, nil
}

func (h *TransactionHandler) Get(c *gin.Context) {
	orgID, ok := pathID(c, "org_id", "organization")
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "transaction")
	if !ok {
		return
	}

	detail, err := h.transactions.Get(c.Request.Context(), middleware.Actor(c), orgID, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

func (h *TransactionHandler) Update(c *gin.Context) {
	orgID, ok := pathID(c, "org_id", "organization")
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "transaction")
	if !ok {
		return
	}

	var req dto.UpdateTransactionRequest
	if err := c.ShouldBind(&req); err != nil {
		badRequest(c, err)
		return
	}
	var status *model.TransactionStatus
	if req.Status != nil {
		s := model.TransactionStatus(*req.Status)
		status = &s
	}

	detail, err := h.transactions.Update(c.Request.Context(), middleware.Actor(c), orgID, id, service.UpdateTransactionInput{
		Title:          req.Title,
		Status:         status,
		ReviewRequired: req.ReviewRequired,
		Files:          formFiles(c, attachmentsField),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

func (h *TransactionHandler) Delete(c *gin.Context) {
	orgID, ok := pathID(c, "org_id", "organization")
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "transaction")
	if !ok {
		return
	}

	if err := h.transactions.Delete(c.Request.Context(), middleware.Actor(c), orgID, id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *TransactionHandler) History(c *gin.Context) {
	page, err := pageQuery(c)
	if err != nil {
		respondError(c, err)
		return
	}

	items, err := h.transactions.DonationHistory(c.Request.Context(), middleware.Actor(c), page)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewListResponse(items, page))
}
