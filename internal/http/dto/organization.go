package dto

// SubmitOrganizationRequest is sent as multipart form data together with the certificates.
type SubmitOrganizationRequest struct {
	OrganizationName string `form:"organization_name" json:"organization_name" binding:"required,max=255"`
	Type             string `form:"type" json:"type" binding:"required,max=100"`
}

type ReviewOrganizationRequest struct {
	Status string `form:"status" json:"status" binding:"required,oneof=approved rejected"`
}

type UpdateOrganizationRequest struct {
	Description    *string `form:"description" json:"description"`
	PhoneNumber    *string `form:"phone_number" json:"phone_number"`
	Email          *string `form:"email" json:"email" binding:"omitempty,max=255"`
	AdditionalInfo *string `form:"additional_info" json:"additional_info"`
	KpayQrURL      *string `form:"kpay_qr_url" json:"kpay_qr_url" binding:"omitempty,max=2048"`
}
