package billing

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/invoicing/backend/internal/domain/billing"
	"github.com/invoicing/backend/internal/domain/inventory"
	"github.com/invoicing/backend/internal/domain/settings"
	"github.com/invoicing/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// DocumentMailer delivers a finished document to a recipient using the
// business profile's SMTP settings
type DocumentMailer interface {
	SendDocument(ctx context.Context, profile *settings.BusinessProfile, to string, doc *billing.Document) error
}

// DocumentService orchestrates the document lifecycle. It is the one place
// that ties numbering, storage and inventory deduction into a single atomic
// operation.
type DocumentService struct {
	scope        TransactionScope
	documentRepo billing.DocumentRepository
	counterRepo  billing.DocumentCounterRepository
	profileRepo  settings.BusinessProfileRepository
	mailer       DocumentMailer
	logger       *zap.Logger
}

// NewDocumentService creates a new DocumentService
func NewDocumentService(
	scope TransactionScope,
	documentRepo billing.DocumentRepository,
	counterRepo billing.DocumentCounterRepository,
	profileRepo settings.BusinessProfileRepository,
	mailer DocumentMailer,
	logger *zap.Logger,
) *DocumentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DocumentService{
		scope:        scope,
		documentRepo: documentRepo,
		counterRepo:  counterRepo,
		profileRepo:  profileRepo,
		mailer:       mailer,
		logger:       logger,
	}
}

// PeekNextNumber returns the number the next document of the given type
// would receive. Pure read: callers may peek as often as they like without
// consuming a number.
func (s *DocumentService) PeekNextNumber(ctx context.Context, docType billing.DocumentType) (string, error) {
	if !docType.IsValid() {
		return "", shared.NewDomainError("INVALID_DOCUMENT_TYPE", "Unknown document type")
	}
	profile, err := s.profileRepo.Get(ctx)
	if err != nil {
		return "", err
	}
	current, err := s.counterRepo.Current(ctx, docType)
	if err != nil {
		return "", err
	}
	return billing.FormatNumber(profile.PrefixFor(docType), current+1), nil
}

// Create persists a new document. The number assignment, header and item
// insert, counter commit and any Paid-triggered stock deduction share one
// transaction: a failure anywhere rolls back everything.
func (s *DocumentService) Create(ctx context.Context, req CreateDocumentRequest) (*DocumentResponse, error) {
	if !req.Type.IsValid() {
		return nil, shared.NewDomainError("INVALID_DOCUMENT_TYPE", "Unknown document type")
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_DATE", "Date must be YYYY-MM-DD or RFC 3339")
	}
	dueDate, err := parseDate(req.DueDate)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_DATE", "Due date must be YYYY-MM-DD or RFC 3339")
	}
	items, err := toLineItems(req.Items)
	if err != nil {
		return nil, err
	}

	var doc *billing.Document
	err = s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		profile, err := repos.Profile().Get(ctx)
		if err != nil {
			return err
		}
		next, err := repos.Counters().Increment(ctx, req.Type)
		if err != nil {
			return err
		}
		number := billing.FormatNumber(profile.PrefixFor(req.Type), next)

		doc, err = billing.NewDocument(req.Type, number, req.Status, date)
		if err != nil {
			return err
		}
		doc.ClientID = req.ClientID
		doc.Currency = req.Currency
		doc.Notes = req.Notes
		doc.Terms = req.Terms
		if !dueDate.IsZero() {
			doc.DueDate = &dueDate
		}
		doc.ReplaceItems(items)

		if err := repos.Documents().Save(ctx, doc); err != nil {
			return err
		}

		if doc.Status.IsPaid() {
			return s.deductForDocument(ctx, repos, doc)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Document created",
		zap.String("type", doc.DocType.String()),
		zap.String("number", doc.Number),
		zap.String("status", doc.Status.String()),
	)

	resp := ToDocumentResponse(doc)
	return &resp, nil
}

// Update replaces the header fields and the full item set. Stock is
// deducted only on the first transition into Paid; editing a document that
// is already Paid never deducts again, even when quantities changed.
func (s *DocumentService) Update(ctx context.Context, id uuid.UUID, req UpdateDocumentRequest) (*DocumentResponse, error) {
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_DATE", "Date must be YYYY-MM-DD or RFC 3339")
	}
	dueDate, err := parseDate(req.DueDate)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_DATE", "Due date must be YYYY-MM-DD or RFC 3339")
	}
	items, err := toLineItems(req.Items)
	if err != nil {
		return nil, err
	}

	var doc *billing.Document
	err = s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		doc, err = repos.Documents().FindByID(ctx, id)
		if err != nil {
			return err
		}
		wasPaid := doc.Status.IsPaid()

		if req.Status != "" {
			if err := doc.SetStatus(req.Status); err != nil {
				return err
			}
		}
		doc.ClientID = req.ClientID
		doc.Currency = req.Currency
		doc.Notes = req.Notes
		doc.Terms = req.Terms
		if !date.IsZero() {
			doc.Date = date
		}
		if dueDate.IsZero() {
			doc.DueDate = nil
		} else {
			doc.DueDate = &dueDate
		}
		doc.ReplaceItems(items)
		doc.UpdatedAt = time.Now()

		if err := repos.Documents().Save(ctx, doc); err != nil {
			return err
		}

		if !wasPaid && doc.Status.IsPaid() {
			return s.deductForDocument(ctx, repos, doc)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp := ToDocumentResponse(doc)
	return &resp, nil
}

// GetByID retrieves a document with its items
func (s *DocumentService) GetByID(ctx context.Context, id uuid.UUID) (*DocumentResponse, error) {
	doc, err := s.documentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToDocumentResponse(doc)
	return &resp, nil
}

// List retrieves documents of a type ordered by date descending. An empty
// type lists every document.
func (s *DocumentService) List(ctx context.Context, docType billing.DocumentType, status billing.DocumentStatus, filter shared.Filter) ([]DocumentResponse, int64, error) {
	if docType != "" && !docType.IsValid() {
		return nil, 0, shared.NewDomainError("INVALID_DOCUMENT_TYPE", "Unknown document type")
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	if filter.Filters == nil {
		filter.Filters = make(map[string]interface{})
	}
	if status != "" {
		filter.Filters["status"] = status.String()
	}

	docs, err := s.documentRepo.FindAll(ctx, docType, filter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.documentRepo.Count(ctx, docType, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]DocumentResponse, 0, len(docs))
	for i := range docs {
		responses = append(responses, ToDocumentResponse(&docs[i]))
	}
	return responses, total, nil
}

// Delete removes a document and its items. Deletion is unconditional: it
// does not restore deducted stock and does not roll the counter back.
func (s *DocumentService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.documentRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Document deleted", zap.String("id", id.String()))
	return nil
}

// ConvertToInvoice creates a new draft invoice from a quotation. The
// invoice gets a fresh number and today's date; the quotation itself is
// left untouched.
func (s *DocumentService) ConvertToInvoice(ctx context.Context, quotationID uuid.UUID) (*DocumentResponse, error) {
	source, err := s.documentRepo.FindByID(ctx, quotationID)
	if err != nil {
		return nil, err
	}
	if source.DocType != billing.TypeQuotation {
		return nil, shared.NewDomainError("INVALID_STATE", "Only quotations can be converted to invoices")
	}

	var doc *billing.Document
	err = s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		profile, err := repos.Profile().Get(ctx)
		if err != nil {
			return err
		}
		next, err := repos.Counters().Increment(ctx, billing.TypeInvoice)
		if err != nil {
			return err
		}
		number := billing.FormatNumber(profile.PrefixFor(billing.TypeInvoice), next)

		doc, err = billing.NewDocument(billing.TypeInvoice, number, billing.StatusDraft, time.Now())
		if err != nil {
			return err
		}
		doc.ClientID = source.ClientID
		doc.Currency = source.Currency
		doc.Notes = source.Notes
		doc.Terms = source.Terms
		doc.ConvertedFromID = &source.ID

		items := make([]billing.LineItem, 0, len(source.Items))
		for _, item := range source.Items {
			copied, err := billing.NewLineItem(
				item.Description, item.ProductID, item.HSNCode,
				item.Quantity, item.Rate, item.TaxPercent, item.DiscountPercent,
			)
			if err != nil {
				return err
			}
			items = append(items, *copied)
		}
		doc.ReplaceItems(items)

		return repos.Documents().Save(ctx, doc)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Quotation converted to invoice",
		zap.String("quotation", source.Number),
		zap.String("invoice", doc.Number),
	)

	resp := ToDocumentResponse(doc)
	return &resp, nil
}

// Email sends a document summary to the given recipient using the SMTP
// settings from the business profile
func (s *DocumentService) Email(ctx context.Context, id uuid.UUID, req EmailDocumentRequest) error {
	if s.mailer == nil {
		return shared.NewDomainError("INVALID_STATE", "Mail delivery is not configured")
	}
	doc, err := s.documentRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	profile, err := s.profileRepo.Get(ctx)
	if err != nil {
		return err
	}
	return s.mailer.SendDocument(ctx, profile, req.To, doc)
}

// deductForDocument walks the document items and deducts stock for every
// line linked to a tracked product. Items without a product link, or whose
// product no longer exists or has tracking disabled, are silently skipped.
// The business-wide auto-deduct flag is re-read inside the transaction on
// every call.
func (s *DocumentService) deductForDocument(ctx context.Context, repos TransactionalRepositories, doc *billing.Document) error {
	profile, err := repos.Profile().Get(ctx)
	if err != nil {
		return err
	}
	if !profile.DeductsInventory() {
		return nil
	}

	for _, item := range doc.Items {
		if item.ProductID == nil {
			continue
		}
		product, err := repos.Products().FindByIDForUpdate(ctx, *item.ProductID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				continue
			}
			return err
		}
		if !product.TrackInventory {
			continue
		}

		product.ApplyStockDelta(inventory.MovementOut.StockDelta(item.Quantity))
		if err := repos.Products().Save(ctx, product); err != nil {
			return err
		}

		movement, err := inventory.NewStockMovement(
			product.ID, inventory.MovementOut, item.Quantity,
			"Auto for "+doc.Number, doc.Number,
		)
		if err != nil {
			return err
		}
		if err := repos.Movements().Append(ctx, movement); err != nil {
			return err
		}

		s.logger.Debug("Stock deducted for document",
			zap.String("product", product.Name),
			zap.String("quantity", item.Quantity.String()),
			zap.String("document", doc.Number),
		)
	}
	return nil
}
