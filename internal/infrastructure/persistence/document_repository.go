package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/invoicing/backend/internal/domain/billing"
	"github.com/invoicing/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormDocumentRepository implements DocumentRepository using GORM
type GormDocumentRepository struct {
	db *gorm.DB
}

// NewGormDocumentRepository creates a new GormDocumentRepository
func NewGormDocumentRepository(db *gorm.DB) *GormDocumentRepository {
	return &GormDocumentRepository{db: db}
}

// FindByID finds a document with its items
func (r *GormDocumentRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.Document, error) {
	var doc billing.Document
	if err := r.db.WithContext(ctx).
		Preload("Items").
		First(&doc, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &doc, nil
}

// FindAll finds documents of a type ordered by document date, newest first.
// An empty docType matches every type.
func (r *GormDocumentRepository) FindAll(ctx context.Context, docType billing.DocumentType, filter shared.Filter) ([]billing.Document, error) {
	var docs []billing.Document
	query := r.db.WithContext(ctx).Model(&billing.Document{}).Preload("Items")
	if docType != "" {
		query = query.Where("doc_type = ?", docType)
	}
	query = r.applyFilter(query, filter)

	if err := query.Find(&docs).Error; err != nil {
		return nil, err
	}
	return docs, nil
}

// Count counts documents of a type matching the filter
func (r *GormDocumentRepository) Count(ctx context.Context, docType billing.DocumentType, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&billing.Document{})
	if docType != "" {
		query = query.Where("doc_type = ?", docType)
	}
	query = r.applyFilterWithoutPagination(query, filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates the document header and replaces its item set.
// Items removed from the document are deleted, the rest are upserted.
func (r *GormDocumentRepository) Save(ctx context.Context, doc *billing.Document) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Items").Save(doc).Error; err != nil {
			return err
		}

		currentItemIDs := make([]uuid.UUID, len(doc.Items))
		for i, item := range doc.Items {
			currentItemIDs[i] = item.ID
		}

		if len(currentItemIDs) > 0 {
			if err := tx.Where("document_id = ? AND id NOT IN ?", doc.ID, currentItemIDs).
				Delete(&billing.LineItem{}).Error; err != nil {
				return err
			}
		} else {
			if err := tx.Where("document_id = ?", doc.ID).
				Delete(&billing.LineItem{}).Error; err != nil {
				return err
			}
		}

		for i := range doc.Items {
			doc.Items[i].DocumentID = doc.ID
			if err := tx.Save(&doc.Items[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete removes the document and its items
func (r *GormDocumentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("document_id = ?", id).Delete(&billing.LineItem{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&billing.Document{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

func (r *GormDocumentRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	if filter.OrderBy != "" {
		sortField := ValidateSortField(filter.OrderBy, DocumentSortFields, "date")
		query = query.Order(sortField + " " + ValidateSortOrder(filter.OrderDir))
	} else {
		query = query.Order("date DESC, created_at DESC")
	}

	return query
}

func (r *GormDocumentRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(number) LIKE ?", searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "client_id":
			query = query.Where("client_id = ?", value)
		}
	}

	return query
}

// Ensure GormDocumentRepository implements DocumentRepository
var _ billing.DocumentRepository = (*GormDocumentRepository)(nil)
