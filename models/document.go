package models

import (
	"time"
)

// Document types. Only photos and PDFs are accepted.
const (
	DocumentTypePhoto = "photo"
	DocumentTypePDF   = "pdf"
)

// Document represents a file reference attached to a site. Only the
// metadata is stored; the file itself lives outside this system.
type Document struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	SiteID      uint      `gorm:"not null;index" json:"baustelle_id"`
	Site        Site      `gorm:"foreignKey:SiteID" json:"-"`
	DocType     string    `gorm:"not null" json:"typ"`
	Filename    string    `gorm:"not null" json:"dateiname"`
	UploadedAt  time.Time `gorm:"not null" json:"upload_datum"`
	Description string    `json:"beschreibung"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName specifies the table name for the Document model
func (Document) TableName() string {
	return "documents"
}
