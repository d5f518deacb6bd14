package inventory

import (
	"context"

	"github.com/google/uuid"
	"github.com/invoicing/backend/internal/domain/inventory"
	"github.com/invoicing/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// InventoryService handles manual stock adjustments and ledger queries
type InventoryService struct {
	scope        TransactionScope
	movementRepo inventory.StockMovementRepository
	logger       *zap.Logger
}

// NewInventoryService creates a new InventoryService
func NewInventoryService(scope TransactionScope, movementRepo inventory.StockMovementRepository, logger *zap.Logger) *InventoryService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InventoryService{
		scope:        scope,
		movementRepo: movementRepo,
		logger:       logger,
	}
}

// Adjust applies a manual stock movement to a product and appends the
// matching ledger entry in one transaction. The product row is locked for
// the duration so concurrent adjustments serialize; stock may go negative.
func (s *InventoryService) Adjust(ctx context.Context, req AdjustStockRequest) (*AdjustStockResponse, error) {
	if !req.Type.IsValid() {
		return nil, shared.NewDomainError("INVALID_MOVEMENT_TYPE", "Unknown movement type")
	}
	if req.Quantity.IsNegative() {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity cannot be negative")
	}

	var resp *AdjustStockResponse
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		product, err := repos.Products().FindByIDForUpdate(ctx, req.ProductID)
		if err != nil {
			return err
		}

		newLevel := product.ApplyStockDelta(req.Type.StockDelta(req.Quantity))
		if err := repos.Products().Save(ctx, product); err != nil {
			return err
		}

		movement, err := inventory.NewStockMovement(product.ID, req.Type, req.Quantity, req.Note, "")
		if err != nil {
			return err
		}
		if err := repos.Movements().Append(ctx, movement); err != nil {
			return err
		}

		resp = &AdjustStockResponse{
			ProductID:     product.ID,
			NewStockLevel: newLevel,
			MovementID:    movement.ID,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Stock adjusted",
		zap.String("product_id", resp.ProductID.String()),
		zap.String("type", req.Type.String()),
		zap.String("quantity", req.Quantity.String()),
		zap.String("new_level", resp.NewStockLevel.String()),
	)
	return resp, nil
}

// ListMovements returns ledger entries newest first
func (s *InventoryService) ListMovements(ctx context.Context, filter shared.Filter) ([]MovementResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 50
	}

	movements, err := s.movementRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.movementRepo.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]MovementResponse, 0, len(movements))
	for i := range movements {
		responses = append(responses, ToMovementResponse(&movements[i]))
	}
	return responses, total, nil
}

// ListMovementsByProduct returns ledger entries for one product
func (s *InventoryService) ListMovementsByProduct(ctx context.Context, productID uuid.UUID, filter shared.Filter) ([]MovementResponse, error) {
	movements, err := s.movementRepo.FindByProduct(ctx, productID, filter)
	if err != nil {
		return nil, err
	}
	responses := make([]MovementResponse, 0, len(movements))
	for i := range movements {
		responses = append(responses, ToMovementResponse(&movements[i]))
	}
	return responses, nil
}
