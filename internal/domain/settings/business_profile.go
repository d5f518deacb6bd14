package settings

import (
	"github.com/invoicing/backend/internal/domain/billing"
	"github.com/invoicing/backend/internal/domain/shared"
)

// BusinessProfile holds the single business-wide configuration record:
// identity shown on documents, number prefixes, the inventory auto-deduct
// switch and SMTP delivery settings. The table holds at most one row.
type BusinessProfile struct {
	shared.BaseEntity
	Name             string
	GSTIN            string
	Address          string
	Email            string
	Phone            string
	Currency         string
	InvoicePrefix    string
	QuotationPrefix  string
	CreditNotePrefix string
	// AutoDeductInventory gates automatic stock deduction when a document
	// first turns Paid. Re-read on every deduction, never cached.
	AutoDeductInventory bool
	SMTPHost            string
	SMTPPort            int
	SMTPUser            string
	SMTPPassword        string
	SMTPFrom            string
}

// TableName returns the database table name for the business profile
func (BusinessProfile) TableName() string {
	return "business_profile"
}

// NewBusinessProfile creates a profile with sensible defaults
func NewBusinessProfile(name string) *BusinessProfile {
	return &BusinessProfile{
		BaseEntity:          shared.NewBaseEntity(),
		Name:                name,
		Currency:            "INR",
		AutoDeductInventory: true,
	}
}

// PrefixFor resolves the configured number prefix for a document type,
// falling back to the hard defaults when unset. Safe to call on a nil
// profile: document creation must never block on missing configuration.
func (p *BusinessProfile) PrefixFor(docType billing.DocumentType) string {
	if p == nil {
		return billing.DefaultPrefix(docType)
	}
	var prefix string
	switch docType {
	case billing.TypeQuotation:
		prefix = p.QuotationPrefix
	case billing.TypeCreditNote:
		prefix = p.CreditNotePrefix
	default:
		prefix = p.InvoicePrefix
	}
	if prefix == "" {
		return billing.DefaultPrefix(docType)
	}
	return prefix
}

// DeductsInventory reports whether automatic stock deduction is enabled.
// A missing profile deducts by default, matching the behavior of a fresh
// installation.
func (p *BusinessProfile) DeductsInventory() bool {
	if p == nil {
		return true
	}
	return p.AutoDeductInventory
}
