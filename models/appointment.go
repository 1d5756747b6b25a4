package models

import (
	"time"
)

// Appointment represents a dated reminder (Termin), optionally tied to a
// construction site.
type Appointment struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"not null" json:"titel"`
	Description string    `json:"beschreibung"`
	Date        time.Time `gorm:"not null;index" json:"datum"`
	SiteID      *uint     `gorm:"index" json:"baustelle_id"`
	Site        *Site     `gorm:"foreignKey:SiteID" json:"baustelle,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName specifies the table name for the Appointment model
func (Appointment) TableName() string {
	return "appointments"
}
