package inventory

import (
	"time"

	"github.com/google/uuid"
	"github.com/invoicing/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// MovementType classifies a stock movement
type MovementType string

const (
	MovementIn         MovementType = "IN"
	MovementOut        MovementType = "OUT"
	MovementAdjustment MovementType = "ADJUSTMENT"
)

// IsValid checks if the type is a valid MovementType
func (t MovementType) IsValid() bool {
	switch t {
	case MovementIn, MovementOut, MovementAdjustment:
		return true
	}
	return false
}

// String returns the string representation of MovementType
func (t MovementType) String() string {
	return string(t)
}

// StockDelta converts an unsigned movement quantity into the signed delta
// applied to the product stock level. IN movements add; everything else
// subtracts.
func (t MovementType) StockDelta(quantity decimal.Decimal) decimal.Decimal {
	if t == MovementIn {
		return quantity
	}
	return quantity.Neg()
}

// StockMovement is one append-only ledger entry. Movements are never
// updated or deleted; the product stock level is the running sum the
// ledger explains.
type StockMovement struct {
	shared.BaseEntity
	ProductID       uuid.UUID
	MovementType    MovementType
	Quantity        decimal.Decimal
	OccurredAt      time.Time
	Note            string
	ReferenceNumber string
}

// TableName returns the database table name for stock movements
func (StockMovement) TableName() string {
	return "inventory_transactions"
}

// NewStockMovement creates a ledger entry. Quantity is stored unsigned;
// the movement type carries the direction.
func NewStockMovement(productID uuid.UUID, movementType MovementType, quantity decimal.Decimal, note, referenceNumber string) (*StockMovement, error) {
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	if !movementType.IsValid() {
		return nil, shared.NewDomainError("INVALID_MOVEMENT_TYPE", "Unknown movement type")
	}
	if quantity.IsNegative() {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Movement quantity cannot be negative")
	}

	return &StockMovement{
		BaseEntity:      shared.NewBaseEntity(),
		ProductID:       productID,
		MovementType:    movementType,
		Quantity:        quantity,
		OccurredAt:      time.Now(),
		Note:            note,
		ReferenceNumber: referenceNumber,
	}, nil
}
