package models

import (
	"time"
)

// Order statuses. Status is a free-text label set once at creation; no code
// path transitions it.
const (
	OrderStatusNew = "new"
)

// Order represents a purchase order (Bestellung) for additional material
// stock.
type Order struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	MaterialID uint      `gorm:"not null;index" json:"material_id"`
	Material   Material  `gorm:"foreignKey:MaterialID" json:"material"`
	Quantity   int       `gorm:"not null;check:quantity > 0" json:"menge"`
	OrderedAt  time.Time `gorm:"not null" json:"bestelldatum"`
	Status     string    `gorm:"not null;default:'new'" json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TableName specifies the table name for the Order model
func (Order) TableName() string {
	return "orders"
}
