package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Organization struct {
	ID                    uuid.UUID `json:"id"`
	AdminID               uuid.UUID `json:"admin_id"`
	Name                  string    `json:"name"`
	Type                  string    `json:"type"`
	Description           *string   `json:"description,omitempty"`
	PhoneNumber           *string   `json:"phone_number,omitempty"`
	Email                 *string   `json:"email,omitempty"`
	AdditionalInfo        *string   `json:"additional_info,omitempty"`
	KpayQrURL             *string   `json:"kpay_qr_url,omitempty"`
	KpayQrImage           *string   `json:"kpay_qr_image,omitempty"`
	OrganizationRequestID uuid.UUID `json:"organization_request_id"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

// HasPaymentSetup reports whether donors can pay the organization.
func (o *Organization) HasPaymentSetup() bool {
	return nonBlank(o.KpayQrURL) && nonBlank(o.PhoneNumber)
}

func (o *Organization) IsAdmin(userID uuid.UUID) bool {
	return o.AdminID == userID
}

// OrganizationStats only counts approved transactions.
type OrganizationStats struct {
	TotalReceived  decimal.Decimal `json:"total_received"`
	TotalExpense   decimal.Decimal `json:"total_expense"`
	Balance        decimal.Decimal `json:"balance"`
	TotalDonations int64           `json:"total_donations"`
	TotalDonors    int64           `json:"total_donors"`
}

func nonBlank(s *string) bool {
	if s == nil {
		return false
	}
	return strings.TrimSpace(*s) != ""
}
