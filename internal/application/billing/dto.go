package billing

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/invoicing/backend/internal/domain/billing"
	"github.com/shopspring/decimal"
)

// LenientDecimal is a decimal that never fails to unmarshal. Numbers and
// numeric strings parse normally; null, empty and malformed values coerce
// to zero so one half-filled row degrades gracefully instead of aborting
// the whole request.
type LenientDecimal struct {
	decimal.Decimal
}

// UnmarshalJSON implements json.Unmarshaler
func (d *LenientDecimal) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	s = strings.Trim(s, `"`)
	if s == "" || s == "null" {
		d.Decimal = decimal.Zero
		return nil
	}
	v, err := decimal.NewFromString(s)
	if err != nil {
		d.Decimal = decimal.Zero
		return nil
	}
	d.Decimal = v
	return nil
}

// MarshalJSON implements json.Marshaler
func (d LenientDecimal) MarshalJSON() ([]byte, error) {
	return d.Decimal.MarshalJSON()
}

// LineItemRequest is one incoming document row
type LineItemRequest struct {
	Description     string         `json:"description" binding:"required"`
	ProductID       *uuid.UUID     `json:"product_id"`
	HSNCode         string         `json:"hsn_code"`
	Quantity        LenientDecimal `json:"quantity"`
	Rate            LenientDecimal `json:"rate"`
	TaxPercent      LenientDecimal `json:"tax_percent"`
	DiscountPercent LenientDecimal `json:"discount_percent"`
}

// CreateDocumentRequest is the payload for creating a document
type CreateDocumentRequest struct {
	Type     billing.DocumentType   `json:"type" binding:"required"`
	ClientID *uuid.UUID             `json:"client_id"`
	Date     string                 `json:"date"`
	DueDate  string                 `json:"due_date"`
	Status   billing.DocumentStatus `json:"status"`
	Currency string                 `json:"currency"`
	Notes    string                 `json:"notes"`
	Terms    string                 `json:"terms"`
	Items    []LineItemRequest      `json:"items"`
}

// UpdateDocumentRequest is the payload for updating a document. Any number
// sent by the client is ignored: numbers are immutable once assigned.
type UpdateDocumentRequest struct {
	ClientID *uuid.UUID             `json:"client_id"`
	Date     string                 `json:"date"`
	DueDate  string                 `json:"due_date"`
	Status   billing.DocumentStatus `json:"status"`
	Currency string                 `json:"currency"`
	Notes    string                 `json:"notes"`
	Terms    string                 `json:"terms"`
	Items    []LineItemRequest      `json:"items"`
}

// EmailDocumentRequest is the payload for emailing a document
type EmailDocumentRequest struct {
	To string `json:"to" binding:"required,email"`
}

// LineItemResponse is one outgoing document row with derived amounts
type LineItemResponse struct {
	ID              uuid.UUID           `json:"id"`
	Description     string              `json:"description"`
	ProductID       *uuid.UUID          `json:"product_id,omitempty"`
	HSNCode         string              `json:"hsn_code,omitempty"`
	Quantity        decimal.Decimal     `json:"quantity"`
	Rate            decimal.Decimal     `json:"rate"`
	TaxPercent      decimal.Decimal     `json:"tax_percent"`
	DiscountPercent decimal.Decimal     `json:"discount_percent"`
	Amounts         billing.LineAmounts `json:"amounts"`
}

// DocumentResponse is the outgoing representation of a document
type DocumentResponse struct {
	ID              uuid.UUID              `json:"id"`
	Type            billing.DocumentType   `json:"type"`
	Number          string                 `json:"number"`
	ClientID        *uuid.UUID             `json:"client_id,omitempty"`
	Date            time.Time              `json:"date"`
	DueDate         *time.Time             `json:"due_date,omitempty"`
	Status          billing.DocumentStatus `json:"status"`
	Currency        string                 `json:"currency,omitempty"`
	Notes           string                 `json:"notes,omitempty"`
	Terms           string                 `json:"terms,omitempty"`
	ConvertedFromID *uuid.UUID             `json:"converted_from_id,omitempty"`
	Items           []LineItemResponse     `json:"items"`
	Totals          billing.Totals         `json:"totals"`
	CreatedAt       time.Time              `json:"created_at"`
	UpdatedAt       time.Time              `json:"updated_at"`
}

// ToDocumentResponse maps a domain document to its response shape
func ToDocumentResponse(doc *billing.Document) DocumentResponse {
	items := make([]LineItemResponse, 0, len(doc.Items))
	for _, item := range doc.Items {
		items = append(items, LineItemResponse{
			ID:              item.ID,
			Description:     item.Description,
			ProductID:       item.ProductID,
			HSNCode:         item.HSNCode,
			Quantity:        item.Quantity,
			Rate:            item.Rate,
			TaxPercent:      item.TaxPercent,
			DiscountPercent: item.DiscountPercent,
			Amounts:         billing.CalculateLine(item),
		})
	}
	return DocumentResponse{
		ID:              doc.ID,
		Type:            doc.DocType,
		Number:          doc.Number,
		ClientID:        doc.ClientID,
		Date:            doc.Date,
		DueDate:         doc.DueDate,
		Status:          doc.Status,
		Currency:        doc.Currency,
		Notes:           doc.Notes,
		Terms:           doc.Terms,
		ConvertedFromID: doc.ConvertedFromID,
		Items:           items,
		Totals:          doc.Totals(),
		CreatedAt:       doc.CreatedAt,
		UpdatedAt:       doc.UpdatedAt,
	}
}

// parseDate accepts the date formats clients actually send: bare calendar
// dates and full RFC 3339 timestamps. Empty input yields the zero time.
func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// toLineItems converts request rows into domain items, preserving order
func toLineItems(rows []LineItemRequest) ([]billing.LineItem, error) {
	items := make([]billing.LineItem, 0, len(rows))
	for _, row := range rows {
		item, err := billing.NewLineItem(
			row.Description,
			row.ProductID,
			row.HSNCode,
			row.Quantity.Decimal,
			row.Rate.Decimal,
			row.TaxPercent.Decimal,
			row.DiscountPercent.Decimal,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	return items, nil
}
