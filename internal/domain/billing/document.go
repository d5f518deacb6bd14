package billing

import (
	"time"

	"github.com/google/uuid"
	"github.com/invoicing/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// DocumentType identifies which numbering sequence and default status a
// document uses. All three types share the same structural shape.
type DocumentType string

const (
	TypeInvoice    DocumentType = "Invoice"
	TypeQuotation  DocumentType = "Quotation"
	TypeCreditNote DocumentType = "Credit Note"
)

// IsValid checks if the type is a valid DocumentType
func (t DocumentType) IsValid() bool {
	switch t {
	case TypeInvoice, TypeQuotation, TypeCreditNote:
		return true
	}
	return false
}

// String returns the string representation of DocumentType
func (t DocumentType) String() string {
	return string(t)
}

// DefaultStatus returns the status a freshly created document of this type
// receives when the caller does not supply one. Quotations start as drafts,
// invoices and credit notes are considered sent on creation.
func (t DocumentType) DefaultStatus() DocumentStatus {
	if t == TypeQuotation {
		return StatusDraft
	}
	return StatusSent
}

// LineItem is one row of a document. Items are value objects owned entirely
// by their parent document: updates replace the whole set, so items have no
// identity or lifecycle outside the aggregate.
type LineItem struct {
	ID              uuid.UUID
	DocumentID      uuid.UUID
	Position        int
	Description     string
	ProductID       *uuid.UUID
	HSNCode         string
	Quantity        decimal.Decimal
	Rate            decimal.Decimal
	TaxPercent      decimal.Decimal
	DiscountPercent decimal.Decimal
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName returns the database table name for line items
func (LineItem) TableName() string {
	return "document_items"
}

// NewLineItem creates a line item. Quantities and rates may be zero (the
// system is deliberately lenient about half-filled rows) but never negative,
// and a description is always required.
func NewLineItem(description string, productID *uuid.UUID, hsnCode string, quantity, rate, taxPercent, discountPercent decimal.Decimal) (*LineItem, error) {
	if description == "" {
		return nil, shared.NewDomainError("INVALID_DESCRIPTION", "Line item description cannot be empty")
	}
	if quantity.IsNegative() {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity cannot be negative")
	}
	if rate.IsNegative() {
		return nil, shared.NewDomainError("INVALID_RATE", "Rate cannot be negative")
	}
	if taxPercent.IsNegative() || discountPercent.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PERCENTAGE", "Tax and discount percentages cannot be negative")
	}

	now := time.Now()
	return &LineItem{
		ID:              uuid.New(),
		Description:     description,
		ProductID:       productID,
		HSNCode:         hsnCode,
		Quantity:        quantity,
		Rate:            rate,
		TaxPercent:      taxPercent,
		DiscountPercent: discountPercent,
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}

// Document is the aggregate root for invoices, quotations and credit notes.
// The human-readable number is assigned once at creation and never changes.
type Document struct {
	shared.BaseEntity
	DocType         DocumentType `gorm:"uniqueIndex:idx_documents_type_number"`
	Number          string       `gorm:"uniqueIndex:idx_documents_type_number"`
	ClientID        *uuid.UUID
	Date            time.Time
	DueDate         *time.Time
	Status          DocumentStatus
	Currency        string
	Notes           string
	Terms           string
	ConvertedFromID *uuid.UUID
	Items           []LineItem `gorm:"foreignKey:DocumentID;constraint:OnDelete:CASCADE"`
}

// TableName returns the database table name for documents
func (Document) TableName() string {
	return "documents"
}

// NewDocument creates a document with its number pre-assigned by the caller.
// An empty status falls back to the type's default; an unknown status is
// rejected outright.
func NewDocument(docType DocumentType, number string, status DocumentStatus, date time.Time) (*Document, error) {
	if !docType.IsValid() {
		return nil, shared.NewDomainError("INVALID_DOCUMENT_TYPE", "Unknown document type")
	}
	if number == "" {
		return nil, shared.NewDomainError("INVALID_NUMBER", "Document number cannot be empty")
	}
	if status == "" {
		status = docType.DefaultStatus()
	}
	if !status.IsValid() {
		return nil, shared.NewDomainError("INVALID_STATUS", "Unknown document status")
	}
	if date.IsZero() {
		date = time.Now()
	}

	return &Document{
		BaseEntity: shared.NewBaseEntity(),
		DocType:    docType,
		Number:     number,
		Status:     status,
		Date:       date,
		Items:      make([]LineItem, 0),
	}, nil
}

// ReplaceItems swaps the full item set. Updates are replace-not-merge: the
// previous rows are discarded and the new set takes their place.
func (d *Document) ReplaceItems(items []LineItem) {
	for i := range items {
		items[i].DocumentID = d.ID
		items[i].Position = i
	}
	d.Items = items
	d.UpdatedAt = time.Now()
}

// SetStatus changes the document status
func (d *Document) SetStatus(status DocumentStatus) error {
	if !status.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", "Unknown document status")
	}
	if !d.Status.CanTransitionTo(status) {
		return shared.NewDomainError("INVALID_STATE", "Status transition not allowed")
	}
	d.Status = status
	d.UpdatedAt = time.Now()
	return nil
}

// Totals computes the document totals from its current items
func (d *Document) Totals() Totals {
	return CalculateTotals(d.Items)
}
