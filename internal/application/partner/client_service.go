package partner

import (
	"context"

	"github.com/google/uuid"
	"github.com/invoicing/backend/internal/domain/partner"
	"github.com/invoicing/backend/internal/domain/shared"
	"github.com/invoicing/backend/internal/domain/tax"
	"go.uber.org/zap"
)

// ClientService handles client CRUD
type ClientService struct {
	clientRepo partner.ClientRepository
	logger     *zap.Logger
}

// NewClientService creates a new ClientService
func NewClientService(clientRepo partner.ClientRepository, logger *zap.Logger) *ClientService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ClientService{
		clientRepo: clientRepo,
		logger:     logger,
	}
}

// Create adds a new client. A GSTIN, when given, must pass checksum
// validation; an empty GSTIN is fine.
func (s *ClientService) Create(ctx context.Context, req ClientRequest) (*ClientResponse, error) {
	if err := validateGSTIN(req.GSTIN); err != nil {
		return nil, err
	}

	client, err := partner.NewClient(req.Name, req.Email, req.Phone, req.GSTIN)
	if err != nil {
		return nil, err
	}
	client.BillingAddress = req.BillingAddress
	client.ShippingAddress = req.ShippingAddress
	client.Currency = req.Currency
	client.Notes = req.Notes

	if err := s.clientRepo.Save(ctx, client); err != nil {
		return nil, err
	}

	s.logger.Info("Client created", zap.String("name", client.Name))
	resp := ToClientResponse(client)
	return &resp, nil
}

// Update replaces the mutable fields of a client
func (s *ClientService) Update(ctx context.Context, id uuid.UUID, req ClientRequest) (*ClientResponse, error) {
	if err := validateGSTIN(req.GSTIN); err != nil {
		return nil, err
	}

	client, err := s.clientRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := client.Update(req.Name, req.Email, req.Phone, req.GSTIN, req.BillingAddress, req.ShippingAddress, req.Currency, req.Notes); err != nil {
		return nil, err
	}
	if err := s.clientRepo.Save(ctx, client); err != nil {
		return nil, err
	}

	resp := ToClientResponse(client)
	return &resp, nil
}

// GetByID retrieves a single client
func (s *ClientService) GetByID(ctx context.Context, id uuid.UUID) (*ClientResponse, error) {
	client, err := s.clientRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToClientResponse(client)
	return &resp, nil
}

// List retrieves clients with pagination
func (s *ClientService) List(ctx context.Context, filter shared.Filter) ([]ClientResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 50
	}

	clients, err := s.clientRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.clientRepo.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]ClientResponse, 0, len(clients))
	for i := range clients {
		responses = append(responses, ToClientResponse(&clients[i]))
	}
	return responses, total, nil
}

// Delete removes a client. Documents referencing the client keep their
// client id; lookups on it simply stop resolving.
func (s *ClientService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.clientRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Client deleted", zap.String("id", id.String()))
	return nil
}

func validateGSTIN(gstin string) error {
	if gstin == "" {
		return nil
	}
	result := tax.Validate(gstin)
	if !result.Valid {
		return shared.NewDomainError("INVALID_GSTIN", result.Message)
	}
	return nil
}
