package partner

import (
	"time"

	"github.com/invoicing/backend/internal/domain/shared"
)

// Client is a customer record. Documents reference clients by id but the
// reference is optional: walk-in sales carry no client at all.
type Client struct {
	shared.BaseEntity
	Name            string
	Email           string
	Phone           string
	GSTIN           string
	BillingAddress  string
	ShippingAddress string
	Currency        string
	Notes           string
}

// TableName returns the database table name for clients
func (Client) TableName() string {
	return "clients"
}

// NewClient creates a new client record
func NewClient(name, email, phone, gstin string) (*Client, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Client name cannot be empty")
	}

	return &Client{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Email:      email,
		Phone:      phone,
		GSTIN:      gstin,
	}, nil
}

// Update replaces the mutable fields of the client
func (c *Client) Update(name, email, phone, gstin, billingAddress, shippingAddress, currency, notes string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Client name cannot be empty")
	}
	c.Name = name
	c.Email = email
	c.Phone = phone
	c.GSTIN = gstin
	c.BillingAddress = billingAddress
	c.ShippingAddress = shippingAddress
	c.Currency = currency
	c.Notes = notes
	c.UpdatedAt = time.Now()
	return nil
}
