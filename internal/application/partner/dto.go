package partner

import (
	"time"

	"github.com/google/uuid"
	"github.com/invoicing/backend/internal/domain/partner"
)

// ClientRequest is the payload for creating or updating a client
type ClientRequest struct {
	Name            string `json:"name" binding:"required"`
	Email           string `json:"email" binding:"omitempty,email"`
	Phone           string `json:"phone"`
	GSTIN           string `json:"gstin"`
	BillingAddress  string `json:"billing_address"`
	ShippingAddress string `json:"shipping_address"`
	Currency        string `json:"currency"`
	Notes           string `json:"notes"`
}

// ClientResponse is the outgoing client shape
type ClientResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email,omitempty"`
	Phone           string    `json:"phone,omitempty"`
	GSTIN           string    `json:"gstin,omitempty"`
	BillingAddress  string    `json:"billing_address,omitempty"`
	ShippingAddress string    `json:"shipping_address,omitempty"`
	Currency        string    `json:"currency,omitempty"`
	Notes           string    `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ToClientResponse maps a domain client to its response shape
func ToClientResponse(c *partner.Client) ClientResponse {
	return ClientResponse{
		ID:              c.ID,
		Name:            c.Name,
		Email:           c.Email,
		Phone:           c.Phone,
		GSTIN:           c.GSTIN,
		BillingAddress:  c.BillingAddress,
		ShippingAddress: c.ShippingAddress,
		Currency:        c.Currency,
		Notes:           c.Notes,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}
