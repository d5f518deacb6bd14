package catalog

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/invoicing/backend/internal/domain/catalog"
	"github.com/invoicing/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// ProductService handles catalog CRUD. Stock changes do not go through
// here; they belong to the inventory service so every change leaves a
// ledger entry.
type ProductService struct {
	productRepo catalog.ProductRepository
	logger      *zap.Logger
}

// NewProductService creates a new ProductService
func NewProductService(productRepo catalog.ProductRepository, logger *zap.Logger) *ProductService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProductService{
		productRepo: productRepo,
		logger:      logger,
	}
}

// Create adds a product to the catalog
func (s *ProductService) Create(ctx context.Context, req ProductRequest) (*ProductResponse, error) {
	if req.SKU != "" {
		existing, err := s.productRepo.FindBySKU(ctx, req.SKU)
		if err != nil && !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
		if existing != nil {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "A product with this SKU already exists")
		}
	}

	product, err := catalog.NewProduct(req.Name, req.SKU, req.Unit, req.HSNCode, req.DefaultRate, req.DefaultTax, req.TrackInventory)
	if err != nil {
		return nil, err
	}
	product.LowStockThreshold = req.LowStockThreshold

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	s.logger.Info("Product created", zap.String("name", product.Name), zap.String("sku", product.SKU))
	resp := ToProductResponse(product)
	return &resp, nil
}

// Update replaces the mutable fields of a product. The stock level is
// deliberately not part of the request.
func (s *ProductService) Update(ctx context.Context, id uuid.UUID, req ProductRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.DefaultRate.IsNegative() {
		return nil, shared.NewDomainError("INVALID_RATE", "Default rate cannot be negative")
	}
	if req.DefaultTax.IsNegative() {
		return nil, shared.NewDomainError("INVALID_TAX", "Default tax cannot be negative")
	}

	product.Name = req.Name
	product.SKU = req.SKU
	product.Unit = req.Unit
	product.HSNCode = req.HSNCode
	product.DefaultRate = req.DefaultRate
	product.DefaultTax = req.DefaultTax
	product.TrackInventory = req.TrackInventory
	product.LowStockThreshold = req.LowStockThreshold
	product.UpdatedAt = time.Now()

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	resp := ToProductResponse(product)
	return &resp, nil
}

// GetByID retrieves a single product
func (s *ProductService) GetByID(ctx context.Context, id uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToProductResponse(product)
	return &resp, nil
}

// List retrieves products with pagination
func (s *ProductService) List(ctx context.Context, filter shared.Filter) ([]ProductResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 50
	}

	products, err := s.productRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.productRepo.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]ProductResponse, 0, len(products))
	for i := range products {
		responses = append(responses, ToProductResponse(&products[i]))
	}
	return responses, total, nil
}

// ListLowStock returns tracked products at or below their reorder threshold
func (s *ProductService) ListLowStock(ctx context.Context) ([]ProductResponse, error) {
	products, err := s.productRepo.FindLowStock(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]ProductResponse, 0, len(products))
	for i := range products {
		responses = append(responses, ToProductResponse(&products[i]))
	}
	return responses, nil
}

// Delete removes a product. Existing documents keep their line items; the
// product reference on those lines simply stops resolving.
func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.productRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Product deleted", zap.String("id", id.String()))
	return nil
}
