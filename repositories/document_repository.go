package repositories

import (
	"context"

	"github.com/simplethings/baubuero-api/models"
	"gorm.io/gorm"
)

// DocumentRepository provides access to site document references.
type DocumentRepository struct {
	db *gorm.DB
}

func NewDocumentRepository(db *gorm.DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

// Create inserts a new document reference.
func (r *DocumentRepository) Create(ctx context.Context, document *models.Document) error {
	return r.db.WithContext(ctx).Create(document).Error
}

// GetByID fetches a document by primary key.
func (r *DocumentRepository) GetByID(ctx context.Context, id uint) (*models.Document, error) {
	var document models.Document
	if err := r.db.WithContext(ctx).First(&document, id).Error; err != nil {
		return nil, err
	}
	return &document, nil
}

// ListBySite returns all documents attached to a site, newest upload first.
func (r *DocumentRepository) ListBySite(ctx context.Context, siteID uint) ([]models.Document, error) {
	var documents []models.Document
	err := r.db.WithContext(ctx).
		Where("site_id = ?", siteID).
		Order("uploaded_at DESC").
		Find(&documents).Error
	if err != nil {
		return nil, err
	}
	return documents, nil
}

// Delete removes a document row.
func (r *DocumentRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Document{}, id).Error
}

// CountBySite returns the number of documents attached to a site.
func (r *DocumentRepository) CountBySite(ctx context.Context, siteID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Document{}).
		Where("site_id = ?", siteID).
		Count(&count).Error
	return count, err
}
