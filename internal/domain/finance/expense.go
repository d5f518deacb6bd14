package finance

import (
	"time"

	"github.com/invoicing/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Expense is a flat business expense record
type Expense struct {
	shared.BaseEntity
	Date          time.Time
	Category      string
	Description   string
	Amount        decimal.Decimal
	PaymentMethod string
	Reference     string
	Notes         string
}

// TableName returns the database table name for expenses
func (Expense) TableName() string {
	return "expenses"
}

// NewExpense creates a new expense record
func NewExpense(date time.Time, category, description string, amount decimal.Decimal, paymentMethod string) (*Expense, error) {
	if description == "" {
		return nil, shared.NewDomainError("INVALID_DESCRIPTION", "Expense description cannot be empty")
	}
	if amount.IsNegative() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Expense amount cannot be negative")
	}
	if date.IsZero() {
		date = time.Now()
	}

	return &Expense{
		BaseEntity:    shared.NewBaseEntity(),
		Date:          date,
		Category:      category,
		Description:   description,
		Amount:        amount,
		PaymentMethod: paymentMethod,
	}, nil
}

// Update replaces the mutable fields of the expense
func (e *Expense) Update(date time.Time, category, description string, amount decimal.Decimal, paymentMethod, reference, notes string) error {
	if description == "" {
		return shared.NewDomainError("INVALID_DESCRIPTION", "Expense description cannot be empty")
	}
	if amount.IsNegative() {
		return shared.NewDomainError("INVALID_AMOUNT", "Expense amount cannot be negative")
	}
	if !date.IsZero() {
		e.Date = date
	}
	e.Category = category
	e.Description = description
	e.Amount = amount
	e.PaymentMethod = paymentMethod
	e.Reference = reference
	e.Notes = notes
	e.UpdatedAt = time.Now()
	return nil
}
