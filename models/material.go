package models

import (
	"time"
)

// Material represents an inventory item. Quantity is the on-hand stock and
// is independent of pending orders; placing an order never adjusts it.
type Material struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	ArticleNumber   string    `gorm:"uniqueIndex;not null" json:"artikelnummer"`
	Name            string    `gorm:"not null" json:"name"`
	Description     string    `json:"beschreibung"`
	Quantity        int       `gorm:"not null" json:"menge"`
	Unit            string    `gorm:"not null" json:"einheit"`
	MinStock        int       `gorm:"not null;default:0" json:"mindestbestand"`
	Supplier        string    `json:"lieferant"`
	SupplierContact string    `json:"lieferant_kontakt"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// TableName specifies the table name for the Material model
func (Material) TableName() string {
	return "materials"
}
