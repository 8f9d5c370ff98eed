package dto

type CreateTransactionRequest struct {
	Type           string  `form:"type" json:"type" binding:"required,oneof=donation disbursement"`
	Amount         string  `form:"amount" json:"amount" binding:"required"`
	Title          *string `form:"title" json:"title" binding:"omitempty,max=255"`
	EventID        *string `form:"event_id" json:"event_id"`
	ReviewRequired bool    `form:"review_required" json:"review_required"`
}

type UpdateTransactionRequest struct {
	Title          *string `form:"title" json:"title" binding:"omitempty,max=255"`
	Status         *string `form:"status" json:"status"`
	ReviewRequired *bool   `form:"review_required" json:"review_required"`
}
