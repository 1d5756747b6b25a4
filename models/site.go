package models

import (
	"time"
)

// SiteStatusActive is the status a site starts in. Like order status it is
// a plain label with no transition workflow.
const SiteStatusActive = "active"

// Site represents a construction site (Baustelle) belonging to a company.
type Site struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Name        string     `gorm:"not null" json:"name"`
	Address     string     `gorm:"not null" json:"adresse"`
	CompanyID   uint       `gorm:"not null;index" json:"gesellschaft_id"`
	Company     Company    `gorm:"foreignKey:CompanyID" json:"gesellschaft"`
	Status      string     `gorm:"not null;default:'active'" json:"status"`
	StartDate   time.Time  `gorm:"not null" json:"start_datum"`
	EndDate     *time.Time `json:"end_datum"`
	Description string     `json:"beschreibung"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// TableName specifies the table name for the Site model
func (Site) TableName() string {
	return "sites"
}
