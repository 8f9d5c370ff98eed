package dto

type CreateActivityRequest struct {
	Title          string   `form:"title" json:"title" binding:"required,max=255"`
	Description    *string  `form:"description" json:"description"`
	Location       *string  `form:"location" json:"location" binding:"omitempty,max=255"`
	TransactionIDs []string `form:"transaction_ids" json:"transaction_ids" binding:"required"`
}

// UpdateActivityRequest leaves the links untouched when TransactionIDs is omitted.
type UpdateActivityRequest struct {
	Title          *string  `form:"title" json:"title" binding:"omitempty,max=255"`
	Description    *string  `form:"description" json:"description"`
	Location       *string  `form:"location" json:"location" binding:"omitempty,max=255"`
	TransactionIDs []string `form:"transaction_ids" json:"transaction_ids"`
}
