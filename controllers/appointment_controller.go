package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/simplethings/baubuero-api/logger"
	"github.com/simplethings/baubuero-api/metrics"
	"github.com/simplethings/baubuero-api/models"
	"github.com/simplethings/baubuero-api/repositories"
	"go.uber.org/zap"
)

// DateLayout is the calendar-date format used by all date form fields.
const DateLayout = "2006-01-02"

// AppointmentForm represents the appointment create/edit form submission
type AppointmentForm struct {
	Title       string `form:"titel" binding:"required"`
	Description string `form:"beschreibung"`
	Date        string `form:"datum" binding:"required"`
	SiteID      *uint  `form:"baustelle_id"`
}

// AppointmentController handles the appointment routes.
type AppointmentController struct {
	appointments *repositories.AppointmentRepository
	sites        *repositories.SiteRepository
}

func NewAppointmentController(appointments *repositories.AppointmentRepository, sites *repositories.SiteRepository) *AppointmentController {
	return &AppointmentController{appointments: appointments, sites: sites}
}

// List handles GET /termine - lists all appointments, earliest date first
func (ac *AppointmentController) List(c *gin.Context) {
	appointments, err := ac.appointments.List(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load appointments")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    appointments,
	})
}

// Create handles POST /termine - creates an appointment and redirects to
// the list. An unparseable date aborts before anything is persisted.
func (ac *AppointmentController) Create(c *gin.Context) {
	var form AppointmentForm
	if err := c.ShouldBind(&form); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	date, err := time.Parse(DateLayout, form.Date)
	if err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid date, expected YYYY-MM-DD")
		return
	}

	if form.SiteID != nil {
		if _, err := ac.sites.GetByID(c.Request.Context(), *form.SiteID); err != nil {
			respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Referenced construction site does not exist")
			return
		}
	}

	appointment := models.Appointment{
		Title:       form.Title,
		Description: form.Description,
		Date:        date,
		SiteID:      form.SiteID,
	}

	if err := ac.appointments.Create(c.Request.Context(), &appointment); err != nil {
		logger.FromContext(c).Error("Failed to create appointment", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to create appointment")
		return
	}

	metrics.RecordOperation("appointment", "create")
	c.Redirect(http.StatusFound, "/termine")
}

// Edit handles GET /termine/edit/:id - returns the appointment to edit
func (ac *AppointmentController) Edit(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	appointment, err := ac.appointments.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, http.StatusNotFound, "NOT_FOUND", "Appointment not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    appointment,
	})
}

// Update handles POST /termine/edit/:id - overwrites all appointment fields
func (ac *AppointmentController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	appointment, err := ac.appointments.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, http.StatusNotFound, "NOT_FOUND", "Appointment not found")
		return
	}

	var form AppointmentForm
	if err := c.ShouldBind(&form); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	date, err := time.Parse(DateLayout, form.Date)
	if err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid date, expected YYYY-MM-DD")
		return
	}

	if form.SiteID != nil {
		if _, err := ac.sites.GetByID(c.Request.Context(), *form.SiteID); err != nil {
			respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Referenced construction site does not exist")
			return
		}
	}

	appointment.Title = form.Title
	appointment.Description = form.Description
	appointment.Date = date
	appointment.SiteID = form.SiteID

	if err := ac.appointments.Update(c.Request.Context(), appointment); err != nil {
		logger.FromContext(c).Error("Failed to update appointment", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to update appointment")
		return
	}

	metrics.RecordOperation("appointment", "update")
	c.Redirect(http.StatusFound, "/termine")
}

// Delete handles POST /termine/delete/:id - deletes an appointment
func (ac *AppointmentController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	appointment, err := ac.appointments.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, http.StatusNotFound, "NOT_FOUND", "Appointment not found")
		return
	}

	if err := ac.appointments.Delete(c.Request.Context(), appointment.ID); err != nil {
		logger.FromContext(c).Error("Failed to delete appointment", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to delete appointment")
		return
	}

	metrics.RecordOperation("appointment", "delete")
	c.Redirect(http.StatusFound, "/termine")
}
