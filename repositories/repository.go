package repositories

import (
	"gorm.io/gorm"
)

// Repositories bundles one repository per entity. Handlers receive this
// bundle instead of reaching for a global ORM session.
type Repositories struct {
	Users        *UserRepository
	Companies    *CompanyRepository
	Materials    *MaterialRepository
	Orders       *OrderRepository
	Sites        *SiteRepository
	Documents    *DocumentRepository
	Appointments *AppointmentRepository
}

// New creates the repository bundle on top of a database handle.
func New(db *gorm.DB) *Repositories {
	return &Repositories{
		Users:        NewUserRepository(db),
		Companies:    NewCompanyRepository(db),
		Materials:    NewMaterialRepository(db),
		Orders:       NewOrderRepository(db),
		Sites:        NewSiteRepository(db),
		Documents:    NewDocumentRepository(db),
		Appointments: NewAppointmentRepository(db),
	}
}
