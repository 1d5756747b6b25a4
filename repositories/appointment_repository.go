package repositories

import (
	"context"
	"time"

	"github.com/simplethings/baubuero-api/models"
	"gorm.io/gorm"
)

// AppointmentRepository provides access to appointments.
type AppointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) *AppointmentRepository {
	return &AppointmentRepository{db: db}
}

// Create inserts a new appointment.
func (r *AppointmentRepository) Create(ctx context.Context, appointment *models.Appointment) error {
	return r.db.WithContext(ctx).Create(appointment).Error
}

// GetByID fetches an appointment by primary key.
func (r *AppointmentRepository) GetByID(ctx context.Context, id uint) (*models.Appointment, error) {
	var appointment models.Appointment
	if err := r.db.WithContext(ctx).First(&appointment, id).Error; err != nil {
		return nil, err
	}
	return &appointment, nil
}

// List returns all appointments ordered by date ascending.
func (r *AppointmentRepository) List(ctx context.Context) ([]models.Appointment, error) {
	var appointments []models.Appointment
	if err := r.db.WithContext(ctx).Order("date ASC").Find(&appointments).Error; err != nil {
		return nil, err
	}
	return appointments, nil
}

// ListByDate returns all appointments falling on the given calendar day.
// The day is taken in the caller's zone, the window is built in UTC because
// the date form fields parse to UTC midnight.
func (r *AppointmentRepository) ListByDate(ctx context.Context, day time.Time) ([]models.Appointment, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 1)

	var appointments []models.Appointment
	err := r.db.WithContext(ctx).
		Where("date >= ? AND date < ?", start, end).
		Order("date ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

// Update persists all fields of an existing appointment.
func (r *AppointmentRepository) Update(ctx context.Context, appointment *models.Appointment) error {
	return r.db.WithContext(ctx).Save(appointment).Error
}

// Delete removes an appointment row.
func (r *AppointmentRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Appointment{}, id).Error
}

// DetachSite clears the optional site link on every appointment that
// references the given site. Used when the site itself is deleted.
func (r *AppointmentRepository) DetachSite(ctx context.Context, siteID uint) error {
	return r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("site_id = ?", siteID).
		Update("site_id", nil).Error
}
