package finance

import (
	"time"

	"github.com/google/uuid"
	"github.com/invoicing/backend/internal/domain/finance"
	"github.com/shopspring/decimal"
)

// ExpenseRequest is the payload for creating or updating an expense
type ExpenseRequest struct {
	Date          string          `json:"date"`
	Category      string          `json:"category"`
	Description   string          `json:"description" binding:"required"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"payment_method"`
	Reference     string          `json:"reference"`
	Notes         string          `json:"notes"`
}

// ExpenseResponse is the outgoing expense shape
type ExpenseResponse struct {
	ID            uuid.UUID       `json:"id"`
	Date          time.Time       `json:"date"`
	Category      string          `json:"category,omitempty"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"payment_method,omitempty"`
	Reference     string          `json:"reference,omitempty"`
	Notes         string          `json:"notes,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ToExpenseResponse maps a domain expense to its response shape
func ToExpenseResponse(e *finance.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:            e.ID,
		Date:          e.Date,
		Category:      e.Category,
		Description:   e.Description,
		Amount:        e.Amount,
		PaymentMethod: e.PaymentMethod,
		Reference:     e.Reference,
		Notes:         e.Notes,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}
