package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/simplethings/baubuero-api/middleware"
	"github.com/simplethings/baubuero-api/repositories"
)

// DashboardController renders the reminder overview.
type DashboardController struct {
	appointments *repositories.AppointmentRepository

	// now is swappable so tests can pin "today"
	now func() time.Time
}

func NewDashboardController(appointments *repositories.AppointmentRepository) *DashboardController {
	return &DashboardController{appointments: appointments, now: time.Now}
}

// Dashboard handles GET /dashboard - lists reminders for every appointment
// scheduled today. Read-only.
func (dc *DashboardController) Dashboard(c *gin.Context) {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "No authenticated user")
		return
	}

	today := dc.now()
	appointments, err := dc.appointments.ListByDate(c.Request.Context(), today)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load appointments")
		return
	}

	reminders := make([]string, 0, len(appointments))
	for _, appointment := range appointments {
		reminders = append(reminders, fmt.Sprintf("Appointment %q is due today.", appointment.Title))
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"benutzer":  user.Username,
			"reminders": reminders,
		},
	})
}
