package importer

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/invoicing/backend/internal/domain/catalog"
	"github.com/invoicing/backend/internal/domain/shared"
	csvimport "github.com/invoicing/backend/internal/infrastructure/import"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ProductImportService imports catalog products from a CSV upload
type ProductImportService struct {
	productRepo catalog.ProductRepository
	logger      *zap.Logger
}

// NewProductImportService creates a new ProductImportService
func NewProductImportService(productRepo catalog.ProductRepository, logger *zap.Logger) *ProductImportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProductImportService{
		productRepo: productRepo,
		logger:      logger,
	}
}

// Import reads product rows from the CSV stream. The only required column
// is the name; SKU collisions are resolved per the conflict mode.
func (s *ProductImportService) Import(ctx context.Context, r io.Reader, mode ConflictMode) (*Summary, error) {
	if !mode.IsValid() {
		mode = ConflictSkip
	}

	parser, err := csvimport.NewCSVParser(r)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_INPUT", err.Error())
	}

	nameCol, ok := parser.ResolveColumn("name", "product_name", "product", "item")
	if !ok {
		return nil, shared.NewDomainError("INVALID_INPUT", "CSV must contain a name column")
	}
	skuCol, _ := parser.ResolveColumn("sku", "code", "product_code")
	unitCol, _ := parser.ResolveColumn("unit", "uom")
	hsnCol, _ := parser.ResolveColumn("hsn_code", "hsn")
	rateCol, _ := parser.ResolveColumn("default_rate", "rate", "price", "unit_price")
	taxCol, _ := parser.ResolveColumn("default_tax", "tax", "tax_percent", "gst")
	stockCol, _ := parser.ResolveColumn("stock_level", "stock", "quantity", "qty")
	trackCol, _ := parser.ResolveColumn("track_inventory", "tracked")

	rows, err := parser.ReadAllRows()
	if err != nil {
		return nil, shared.NewDomainError("INVALID_INPUT", err.Error())
	}

	summary := &Summary{TotalRows: len(rows)}
	for _, row := range rows {
		if err := s.importRow(ctx, row, mode, summary,
			nameCol, skuCol, unitCol, hsnCol, rateCol, taxCol, stockCol, trackCol); err != nil {
			return nil, err
		}
	}

	s.logger.Info("Product import finished",
		zap.Int("total", summary.TotalRows),
		zap.Int("imported", summary.Imported),
		zap.Int("updated", summary.Updated),
		zap.Int("skipped", summary.Skipped),
		zap.Int("failed", summary.Failed),
	)
	return summary, nil
}

func (s *ProductImportService) importRow(
	ctx context.Context, row *csvimport.Row, mode ConflictMode, summary *Summary,
	nameCol, skuCol, unitCol, hsnCol, rateCol, taxCol, stockCol, trackCol string,
) error {
	name := row.Get(nameCol)
	if name == "" {
		summary.addError(csvimport.NewRowError(row.LineNumber, nameCol, "name is required"))
		return nil
	}

	rate, err := parseDecimal(row.Get(rateCol))
	if err != nil {
		summary.addError(csvimport.NewRowError(row.LineNumber, rateCol, "invalid rate"))
		return nil
	}
	taxPct, err := parseDecimal(row.Get(taxCol))
	if err != nil {
		summary.addError(csvimport.NewRowError(row.LineNumber, taxCol, "invalid tax"))
		return nil
	}
	stock, err := parseDecimal(row.Get(stockCol))
	if err != nil {
		summary.addError(csvimport.NewRowError(row.LineNumber, stockCol, "invalid stock level"))
		return nil
	}

	sku := row.Get(skuCol)
	var existing *catalog.Product
	if sku != "" {
		existing, err = s.productRepo.FindBySKU(ctx, sku)
		if err != nil && !errors.Is(err, shared.ErrNotFound) {
			return err
		}
	}

	if existing != nil {
		switch mode {
		case ConflictFail:
			return shared.NewDomainError("ALREADY_EXISTS", "SKU '"+sku+"' already exists")
		case ConflictSkip:
			summary.Skipped++
			return nil
		case ConflictUpdate:
			existing.Name = name
			existing.Unit = row.GetOrDefault(unitCol, existing.Unit)
			existing.HSNCode = row.GetOrDefault(hsnCol, existing.HSNCode)
			existing.DefaultRate = rate
			existing.DefaultTax = taxPct
			if err := s.productRepo.Save(ctx, existing); err != nil {
				return err
			}
			summary.Updated++
			return nil
		}
	}

	product, err := catalog.NewProduct(name, sku, row.Get(unitCol), row.Get(hsnCol), rate, taxPct, parseBool(row.Get(trackCol)))
	if err != nil {
		summary.addError(csvimport.NewRowError(row.LineNumber, nameCol, err.Error()))
		return nil
	}
	product.StockLevel = stock
	if err := s.productRepo.Save(ctx, product); err != nil {
		return err
	}
	summary.Imported++
	return nil
}

func parseDecimal(value string) (decimal.Decimal, error) {
	if value == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(value)
}

func parseBool(value string) bool {
	switch strings.ToLower(value) {
	case "true", "1", "yes", "y":
		return true
	}
	return false
}
