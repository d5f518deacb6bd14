package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/invoicing/backend/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// ProductRequest is the payload for creating or updating a product
type ProductRequest struct {
	Name              string          `json:"name" binding:"required"`
	SKU               string          `json:"sku"`
	Unit              string          `json:"unit"`
	HSNCode           string          `json:"hsn_code"`
	DefaultRate       decimal.Decimal `json:"default_rate"`
	DefaultTax        decimal.Decimal `json:"default_tax"`
	TrackInventory    bool            `json:"track_inventory"`
	LowStockThreshold decimal.Decimal `json:"low_stock_threshold"`
}

// ProductResponse is the outgoing product shape
type ProductResponse struct {
	ID                uuid.UUID       `json:"id"`
	Name              string          `json:"name"`
	SKU               string          `json:"sku,omitempty"`
	Unit              string          `json:"unit,omitempty"`
	HSNCode           string          `json:"hsn_code,omitempty"`
	DefaultRate       decimal.Decimal `json:"default_rate"`
	DefaultTax        decimal.Decimal `json:"default_tax"`
	TrackInventory    bool            `json:"track_inventory"`
	StockLevel        decimal.Decimal `json:"stock_level"`
	LowStockThreshold decimal.Decimal `json:"low_stock_threshold"`
	LowStock          bool            `json:"low_stock"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// ToProductResponse maps a domain product to its response shape
func ToProductResponse(p *catalog.Product) ProductResponse {
	return ProductResponse{
		ID:                p.ID,
		Name:              p.Name,
		SKU:               p.SKU,
		Unit:              p.Unit,
		HSNCode:           p.HSNCode,
		DefaultRate:       p.DefaultRate,
		DefaultTax:        p.DefaultTax,
		TrackInventory:    p.TrackInventory,
		StockLevel:        p.StockLevel,
		LowStockThreshold: p.LowStockThreshold,
		LowStock:          p.IsLowStock(),
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}
