package repositories

import (
	"context"

	"github.com/simplethings/baubuero-api/models"
	"gorm.io/gorm"
)

// OrderRepository provides access to purchase orders.
type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// Create inserts a new order.
func (r *OrderRepository) Create(ctx context.Context, order *models.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

// GetByID fetches an order with its material.
func (r *OrderRepository) GetByID(ctx context.Context, id uint) (*models.Order, error) {
	var order models.Order
	if err := r.db.WithContext(ctx).Preload("Material").First(&order, id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// ListByMaterial returns all orders placed for one material, newest first.
func (r *OrderRepository) ListByMaterial(ctx context.Context, materialID uint) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.WithContext(ctx).
		Where("material_id = ?", materialID).
		Order("ordered_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// CountByMaterial returns the number of orders referencing a material.
func (r *OrderRepository) CountByMaterial(ctx context.Context, materialID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("material_id = ?", materialID).
		Count(&count).Error
	return count, err
}
