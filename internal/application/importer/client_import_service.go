package importer

import (
	"context"
	"errors"
	"io"

	"github.com/invoicing/backend/internal/domain/partner"
	"github.com/invoicing/backend/internal/domain/shared"
	"github.com/invoicing/backend/internal/domain/tax"
	csvimport "github.com/invoicing/backend/internal/infrastructure/import"
	"go.uber.org/zap"
)

// ClientImportService imports client records from a CSV upload
type ClientImportService struct {
	clientRepo partner.ClientRepository
	logger     *zap.Logger
}

// NewClientImportService creates a new ClientImportService
func NewClientImportService(clientRepo partner.ClientRepository, logger *zap.Logger) *ClientImportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ClientImportService{
		clientRepo: clientRepo,
		logger:     logger,
	}
}

// Import reads client rows from the CSV stream. Clients collide on name;
// collisions are resolved per the conflict mode. A GSTIN that fails the
// checksum fails its row, not the whole import.
func (s *ClientImportService) Import(ctx context.Context, r io.Reader, mode ConflictMode) (*Summary, error) {
	if !mode.IsValid() {
		mode = ConflictSkip
	}

	parser, err := csvimport.NewCSVParser(r)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_INPUT", err.Error())
	}

	nameCol, ok := parser.ResolveColumn("name", "client_name", "client", "customer", "customer_name")
	if !ok {
		return nil, shared.NewDomainError("INVALID_INPUT", "CSV must contain a name column")
	}
	emailCol, _ := parser.ResolveColumn("email", "email_address")
	phoneCol, _ := parser.ResolveColumn("phone", "mobile", "phone_number")
	gstinCol, _ := parser.ResolveColumn("gstin", "gst_number", "gst")
	billingCol, _ := parser.ResolveColumn("billing_address", "address")
	shippingCol, _ := parser.ResolveColumn("shipping_address")
	currencyCol, _ := parser.ResolveColumn("currency")

	rows, err := parser.ReadAllRows()
	if err != nil {
		return nil, shared.NewDomainError("INVALID_INPUT", err.Error())
	}

	summary := &Summary{TotalRows: len(rows)}
	for _, row := range rows {
		name := row.Get(nameCol)
		if name == "" {
			summary.addError(csvimport.NewRowError(row.LineNumber, nameCol, "name is required"))
			continue
		}

		gstin := row.Get(gstinCol)
		if gstin != "" {
			if result := tax.Validate(gstin); !result.Valid {
				summary.addError(csvimport.NewRowError(row.LineNumber, gstinCol, result.Message))
				continue
			}
		}

		existing, err := s.clientRepo.FindByName(ctx, name)
		if err != nil && !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}

		if existing != nil {
			switch mode {
			case ConflictFail:
				return nil, shared.NewDomainError("ALREADY_EXISTS", "Client '"+name+"' already exists")
			case ConflictSkip:
				summary.Skipped++
				continue
			case ConflictUpdate:
				if err := existing.Update(name,
					row.GetOrDefault(emailCol, existing.Email),
					row.GetOrDefault(phoneCol, existing.Phone),
					gstin,
					row.GetOrDefault(billingCol, existing.BillingAddress),
					row.GetOrDefault(shippingCol, existing.ShippingAddress),
					row.GetOrDefault(currencyCol, existing.Currency),
					existing.Notes,
				); err != nil {
					summary.addError(csvimport.NewRowError(row.LineNumber, nameCol, err.Error()))
					continue
				}
				if err := s.clientRepo.Save(ctx, existing); err != nil {
					return nil, err
				}
				summary.Updated++
				continue
			}
		}

		client, err := partner.NewClient(name, row.Get(emailCol), row.Get(phoneCol), gstin)
		if err != nil {
			summary.addError(csvimport.NewRowError(row.LineNumber, nameCol, err.Error()))
			continue
		}
		client.BillingAddress = row.Get(billingCol)
		client.ShippingAddress = row.Get(shippingCol)
		client.Currency = row.Get(currencyCol)
		if err := s.clientRepo.Save(ctx, client); err != nil {
			return nil, err
		}
		summary.Imported++
	}

	s.logger.Info("Client import finished",
		zap.Int("total", summary.TotalRows),
		zap.Int("imported", summary.Imported),
		zap.Int("updated", summary.Updated),
		zap.Int("skipped", summary.Skipped),
		zap.Int("failed", summary.Failed),
	)
	return summary, nil
}
