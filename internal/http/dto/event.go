package dto

type CreateEventRequest struct {
	Title        string `form:"title" json:"title" binding:"required,max=255"`
	Description  string `form:"description" json:"description"`
	TargetAmount string `form:"target_amount" json:"target_amount" binding:"required"`
	EndDate      string `form:"end_date" json:"end_date" binding:"required"`
}

type UpdateEventRequest struct {
	Title        *string `form:"title" json:"title" binding:"omitempty,max=255"`
	Description  *string `form:"description" json:"description"`
	Status       *string `form:"status" json:"status" binding:"omitempty,oneof=open closed"`
	TargetAmount *string `form:"target_amount" json:"target_amount"`
	EndDate      *string `form:"end_date" json:"end_date"`
}
