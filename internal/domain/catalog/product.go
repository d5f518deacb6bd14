package catalog

import (
	"time"

	"github.com/invoicing/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Product is a catalog item. StockLevel is only authoritative when
// TrackInventory is set; untracked products keep whatever value was last
// written and are skipped by automatic deductions.
type Product struct {
	shared.BaseEntity
	Name              string
	SKU               string
	Unit              string
	HSNCode           string
	DefaultRate       decimal.Decimal
	DefaultTax        decimal.Decimal
	TrackInventory    bool
	StockLevel        decimal.Decimal
	LowStockThreshold decimal.Decimal
}

// TableName returns the database table name for products
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new catalog product
func NewProduct(name, sku, unit, hsnCode string, defaultRate, defaultTax decimal.Decimal, trackInventory bool) (*Product, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if defaultRate.IsNegative() {
		return nil, shared.NewDomainError("INVALID_RATE", "Default rate cannot be negative")
	}
	if defaultTax.IsNegative() {
		return nil, shared.NewDomainError("INVALID_TAX", "Default tax cannot be negative")
	}

	return &Product{
		BaseEntity:     shared.NewBaseEntity(),
		Name:           name,
		SKU:            sku,
		Unit:           unit,
		HSNCode:        hsnCode,
		DefaultRate:    defaultRate,
		DefaultTax:     defaultTax,
		TrackInventory: trackInventory,
		StockLevel:     decimal.Zero,
	}, nil
}

// ApplyStockDelta adjusts the stock level by a signed delta. Stock is
// allowed to go negative: the ledger records what happened, it does not
// refuse sales the warehouse already made.
func (p *Product) ApplyStockDelta(delta decimal.Decimal) decimal.Decimal {
	p.StockLevel = p.StockLevel.Add(delta)
	p.UpdatedAt = time.Now()
	return p.StockLevel
}

// IsLowStock reports whether a tracked product has fallen to or below its
// reorder threshold
func (p *Product) IsLowStock() bool {
	return p.TrackInventory && p.StockLevel.LessThanOrEqual(p.LowStockThreshold)
}
