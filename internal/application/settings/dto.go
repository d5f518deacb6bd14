package settings

import (
	"time"

	"github.com/google/uuid"
	"github.com/invoicing/backend/internal/domain/settings"
)

// BusinessProfileRequest is the payload for saving the business profile
type BusinessProfileRequest struct {
	Name                string `json:"name" binding:"required"`
	GSTIN               string `json:"gstin"`
	Address             string `json:"address"`
	Email               string `json:"email" binding:"omitempty,email"`
	Phone               string `json:"phone"`
	Currency            string `json:"currency"`
	InvoicePrefix       string `json:"invoice_prefix"`
	QuotationPrefix     string `json:"quotation_prefix"`
	CreditNotePrefix    string `json:"credit_note_prefix"`
	AutoDeductInventory bool   `json:"auto_deduct_inventory"`
	SMTPHost            string `json:"smtp_host"`
	SMTPPort            int    `json:"smtp_port"`
	SMTPUser            string `json:"smtp_user"`
	SMTPPassword        string `json:"smtp_password"`
	SMTPFrom            string `json:"smtp_from"`
}

// BusinessProfileResponse is the outgoing profile shape. The SMTP password
// never leaves the server.
type BusinessProfileResponse struct {
	ID                  uuid.UUID `json:"id"`
	Name                string    `json:"name"`
	GSTIN               string    `json:"gstin,omitempty"`
	Address             string    `json:"address,omitempty"`
	Email               string    `json:"email,omitempty"`
	Phone               string    `json:"phone,omitempty"`
	Currency            string    `json:"currency"`
	InvoicePrefix       string    `json:"invoice_prefix,omitempty"`
	QuotationPrefix     string    `json:"quotation_prefix,omitempty"`
	CreditNotePrefix    string    `json:"credit_note_prefix,omitempty"`
	AutoDeductInventory bool      `json:"auto_deduct_inventory"`
	SMTPHost            string    `json:"smtp_host,omitempty"`
	SMTPPort            int       `json:"smtp_port,omitempty"`
	SMTPUser            string    `json:"smtp_user,omitempty"`
	SMTPFrom            string    `json:"smtp_from,omitempty"`
	SMTPConfigured      bool      `json:"smtp_configured"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// ToBusinessProfileResponse maps a profile to its response shape
func ToBusinessProfileResponse(p *settings.BusinessProfile) BusinessProfileResponse {
	return BusinessProfileResponse{
		ID:                  p.ID,
		Name:                p.Name,
		GSTIN:               p.GSTIN,
		Address:             p.Address,
		Email:               p.Email,
		Phone:               p.Phone,
		Currency:            p.Currency,
		InvoicePrefix:       p.InvoicePrefix,
		QuotationPrefix:     p.QuotationPrefix,
		CreditNotePrefix:    p.CreditNotePrefix,
		AutoDeductInventory: p.AutoDeductInventory,
		SMTPHost:            p.SMTPHost,
		SMTPPort:            p.SMTPPort,
		SMTPUser:            p.SMTPUser,
		SMTPFrom:            p.SMTPFrom,
		SMTPConfigured:      p.SMTPHost != "" && p.SMTPFrom != "",
		UpdatedAt:           p.UpdatedAt,
	}
}
