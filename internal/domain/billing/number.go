package billing

import "fmt"

// Default number prefixes used when the business profile does not configure
// one. The sequencer must keep working before any profile exists, so these
// are hard fallbacks rather than configuration defaults.
const (
	DefaultInvoicePrefix    = "INV-"
	DefaultQuotationPrefix  = "QT-"
	DefaultCreditNotePrefix = "CN-"
)

// DefaultPrefix returns the fallback number prefix for a document type
func DefaultPrefix(docType DocumentType) string {
	switch docType {
	case TypeQuotation:
		return DefaultQuotationPrefix
	case TypeCreditNote:
		return DefaultCreditNotePrefix
	default:
		return DefaultInvoicePrefix
	}
}

// FormatNumber renders a counter value as a human-readable document number,
// zero-padded to four digits (INV-0001, QT-0042, ...).
func FormatNumber(prefix string, value int64) string {
	return fmt.Sprintf("%s%04d", prefix, value)
}

// DocumentCounter is one row of the per-type numbering sequence. The value
// stored is the last committed number; the next document gets value+1.
type DocumentCounter struct {
	DocType      DocumentType `gorm:"primaryKey"`
	CurrentValue int64
}

// TableName returns the database table name for document counters
func (DocumentCounter) TableName() string {
	return "doc_counters"
}
