package billing

import "strings"

// DocumentStatus represents the lifecycle status of a document.
// The full enum is shared across all document types; not every value is
// meaningful for every type (a quotation is never Partial), which mirrors
// how the statuses are used in practice.
type DocumentStatus string

const (
	StatusDraft     DocumentStatus = "Draft"
	StatusSent      DocumentStatus = "Sent"
	StatusPaid      DocumentStatus = "Paid"
	StatusPartial   DocumentStatus = "Partial"
	StatusOverdue   DocumentStatus = "Overdue"
	StatusCancelled DocumentStatus = "Cancelled"
	StatusAccepted  DocumentStatus = "Accepted"
	StatusExpired   DocumentStatus = "Expired"
	StatusDeclined  DocumentStatus = "Declined"
)

// IsValid checks if the status is a valid DocumentStatus
func (s DocumentStatus) IsValid() bool {
	switch s {
	case StatusDraft, StatusSent, StatusPaid, StatusPartial, StatusOverdue,
		StatusCancelled, StatusAccepted, StatusExpired, StatusDeclined:
		return true
	}
	return false
}

// String returns the string representation of DocumentStatus
func (s DocumentStatus) String() string {
	return string(s)
}

// IsPaid reports whether the status means the document has been paid.
// Comparison is case-insensitive to tolerate clients that send "paid".
func (s DocumentStatus) IsPaid() bool {
	return strings.EqualFold(string(s), string(StatusPaid))
}

// CanTransitionTo checks if the status may be changed to the target status.
// Any status may currently be edited into any other status; tightening the
// transition graph later only requires changing this function.
func (s DocumentStatus) CanTransitionTo(target DocumentStatus) bool {
	return target.IsValid()
}
