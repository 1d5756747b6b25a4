package repositories

import (
	"context"

	"github.com/simplethings/baubuero-api/models"
	"gorm.io/gorm"
)

// SiteRepository provides access to construction sites.
type SiteRepository struct {
	db *gorm.DB
}

func NewSiteRepository(db *gorm.DB) *SiteRepository {
	return &SiteRepository{db: db}
}

// Create inserts a new site.
func (r *SiteRepository) Create(ctx context.Context, site *models.Site) error {
	return r.db.WithContext(ctx).Create(site).Error
}

// GetByID fetches a site with its owning company.
func (r *SiteRepository) GetByID(ctx context.Context, id uint) (*models.Site, error) {
	var site models.Site
	if err := r.db.WithContext(ctx).Preload("Company").First(&site, id).Error; err != nil {
		return nil, err
	}
	return &site, nil
}

// List returns all sites with their owning companies.
func (r *SiteRepository) List(ctx context.Context) ([]models.Site, error) {
	var sites []models.Site
	if err := r.db.WithContext(ctx).Preload("Company").Find(&sites).Error; err != nil {
		return nil, err
	}
	return sites, nil
}

// Update persists all fields of an existing site.
func (r *SiteRepository) Update(ctx context.Context, site *models.Site) error {
	return r.db.WithContext(ctx).Save(site).Error
}

// Delete removes a site row. Dependent documents must be checked by the
// caller first.
func (r *SiteRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Site{}, id).Error
}

// CountByCompany returns the number of sites owned by a company.
func (r *SiteRepository) CountByCompany(ctx context.Context, companyID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Site{}).
		Where("company_id = ?", companyID).
		Count(&count).Error
	return count, err
}
