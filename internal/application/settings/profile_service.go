package settings

import (
	"context"
	"time"

	"github.com/invoicing/backend/internal/domain/settings"
	"github.com/invoicing/backend/internal/domain/shared"
	"github.com/invoicing/backend/internal/domain/tax"
	"go.uber.org/zap"
)

// SMTPVerifier checks that the stored SMTP settings can actually reach
// the mail server
type SMTPVerifier interface {
	Verify(ctx context.Context, profile *settings.BusinessProfile) error
}

// ProfileService handles the single business profile record
type ProfileService struct {
	profileRepo settings.BusinessProfileRepository
	verifier    SMTPVerifier
	logger      *zap.Logger
}

// NewProfileService creates a new ProfileService
func NewProfileService(profileRepo settings.BusinessProfileRepository, verifier SMTPVerifier, logger *zap.Logger) *ProfileService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProfileService{
		profileRepo: profileRepo,
		verifier:    verifier,
		logger:      logger,
	}
}

// Get returns the profile, or (nil, nil) when none has been saved yet
func (s *ProfileService) Get(ctx context.Context) (*BusinessProfileResponse, error) {
	profile, err := s.profileRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, nil
	}
	resp := ToBusinessProfileResponse(profile)
	return &resp, nil
}

// Save creates the profile on first call and updates it afterwards. An
// empty SMTP password on update keeps the stored one, so the UI can
// round-trip the profile without ever seeing the secret.
func (s *ProfileService) Save(ctx context.Context, req BusinessProfileRequest) (*BusinessProfileResponse, error) {
	if req.GSTIN != "" {
		if result := tax.Validate(req.GSTIN); !result.Valid {
			return nil, shared.NewDomainError("INVALID_GSTIN", result.Message)
		}
	}

	profile, err := s.profileRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		profile = settings.NewBusinessProfile(req.Name)
	}

	profile.Name = req.Name
	profile.GSTIN = req.GSTIN
	profile.Address = req.Address
	profile.Email = req.Email
	profile.Phone = req.Phone
	if req.Currency != "" {
		profile.Currency = req.Currency
	}
	profile.InvoicePrefix = req.InvoicePrefix
	profile.QuotationPrefix = req.QuotationPrefix
	profile.CreditNotePrefix = req.CreditNotePrefix
	profile.AutoDeductInventory = req.AutoDeductInventory
	profile.SMTPHost = req.SMTPHost
	profile.SMTPPort = req.SMTPPort
	profile.SMTPUser = req.SMTPUser
	if req.SMTPPassword != "" {
		profile.SMTPPassword = req.SMTPPassword
	}
	profile.SMTPFrom = req.SMTPFrom
	profile.UpdatedAt = time.Now()

	if err := s.profileRepo.Save(ctx, profile); err != nil {
		return nil, err
	}

	s.logger.Info("Business profile saved", zap.String("name", profile.Name))
	resp := ToBusinessProfileResponse(profile)
	return &resp, nil
}

// TestSMTP verifies the stored SMTP settings by connecting to the server
func (s *ProfileService) TestSMTP(ctx context.Context) error {
	if s.verifier == nil {
		return shared.NewDomainError("INVALID_STATE", "Mail delivery is not configured")
	}
	profile, err := s.profileRepo.Get(ctx)
	if err != nil {
		return err
	}
	if profile == nil || profile.SMTPHost == "" {
		return shared.NewDomainError("INVALID_STATE", "SMTP settings are not configured")
	}
	return s.verifier.Verify(ctx, profile)
}
