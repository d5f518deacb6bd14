package inventory

import (
	"time"

	"github.com/google/uuid"
	"github.com/invoicing/backend/internal/domain/inventory"
	"github.com/shopspring/decimal"
)

// AdjustStockRequest is the payload for a manual stock adjustment
type AdjustStockRequest struct {
	ProductID uuid.UUID              `json:"product_id" binding:"required"`
	Type      inventory.MovementType `json:"type" binding:"required"`
	Quantity  decimal.Decimal        `json:"quantity" binding:"required"`
	Note      string                 `json:"note"`
}

// AdjustStockResponse reports the outcome of an adjustment
type AdjustStockResponse struct {
	ProductID     uuid.UUID       `json:"product_id"`
	NewStockLevel decimal.Decimal `json:"new_stock_level"`
	MovementID    uuid.UUID       `json:"movement_id"`
}

// MovementResponse is one outgoing ledger entry
type MovementResponse struct {
	ID              uuid.UUID              `json:"id"`
	ProductID       uuid.UUID              `json:"product_id"`
	Type            inventory.MovementType `json:"type"`
	Quantity        decimal.Decimal        `json:"quantity"`
	OccurredAt      time.Time              `json:"occurred_at"`
	Note            string                 `json:"note,omitempty"`
	ReferenceNumber string                 `json:"reference_number,omitempty"`
}

// ToMovementResponse maps a domain movement to its response shape
func ToMovementResponse(m *inventory.StockMovement) MovementResponse {
	return MovementResponse{
		ID:              m.ID,
		ProductID:       m.ProductID,
		Type:            m.MovementType,
		Quantity:        m.Quantity,
		OccurredAt:      m.OccurredAt,
		Note:            m.Note,
		ReferenceNumber: m.ReferenceNumber,
	}
}
