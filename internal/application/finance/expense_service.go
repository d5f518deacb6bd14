package finance

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/invoicing/backend/internal/domain/finance"
	"github.com/invoicing/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// ExpenseService handles expense CRUD
type ExpenseService struct {
	expenseRepo finance.ExpenseRepository
	logger      *zap.Logger
}

// NewExpenseService creates a new ExpenseService
func NewExpenseService(expenseRepo finance.ExpenseRepository, logger *zap.Logger) *ExpenseService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExpenseService{
		expenseRepo: expenseRepo,
		logger:      logger,
	}
}

// Create records a new expense
func (s *ExpenseService) Create(ctx context.Context, req ExpenseRequest) (*ExpenseResponse, error) {
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_DATE", "Date must be YYYY-MM-DD or RFC 3339")
	}

	expense, err := finance.NewExpense(date, req.Category, req.Description, req.Amount, req.PaymentMethod)
	if err != nil {
		return nil, err
	}
	expense.Reference = req.Reference
	expense.Notes = req.Notes

	if err := s.expenseRepo.Save(ctx, expense); err != nil {
		return nil, err
	}

	s.logger.Info("Expense recorded",
		zap.String("category", expense.Category),
		zap.String("amount", expense.Amount.String()),
	)
	resp := ToExpenseResponse(expense)
	return &resp, nil
}

// Update replaces the mutable fields of an expense
func (s *ExpenseService) Update(ctx context.Context, id uuid.UUID, req ExpenseRequest) (*ExpenseResponse, error) {
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_DATE", "Date must be YYYY-MM-DD or RFC 3339")
	}

	expense, err := s.expenseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := expense.Update(date, req.Category, req.Description, req.Amount, req.PaymentMethod, req.Reference, req.Notes); err != nil {
		return nil, err
	}
	if err := s.expenseRepo.Save(ctx, expense); err != nil {
		return nil, err
	}

	resp := ToExpenseResponse(expense)
	return &resp, nil
}

// GetByID retrieves a single expense
func (s *ExpenseService) GetByID(ctx context.Context, id uuid.UUID) (*ExpenseResponse, error) {
	expense, err := s.expenseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToExpenseResponse(expense)
	return &resp, nil
}

// List retrieves expenses with pagination, newest first
func (s *ExpenseService) List(ctx context.Context, filter shared.Filter) ([]ExpenseResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 50
	}

	expenses, err := s.expenseRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.expenseRepo.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]ExpenseResponse, 0, len(expenses))
	for i := range expenses {
		responses = append(responses, ToExpenseResponse(&expenses[i]))
	}
	return responses, total, nil
}

// Delete removes an expense
func (s *ExpenseService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.expenseRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Expense deleted", zap.String("id", id.String()))
	return nil
}

func parseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}
