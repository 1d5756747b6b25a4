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

// SiteForm represents the site create/edit form submission. Status is
// optional; new sites start "active".
type SiteForm struct {
	Name        string `form:"name" binding:"required"`
	Address     string `form:"adresse" binding:"required"`
	CompanyID   *uint  `form:"gesellschaft_id" binding:"required"`
	Status      string `form:"status"`
	StartDate   string `form:"start_datum" binding:"required"`
	EndDate     string `form:"end_datum"`
	Description string `form:"beschreibung"`
}

// SiteController handles the construction-site routes.
type SiteController struct {
	sites        *repositories.SiteRepository
	companies    *repositories.CompanyRepository
	documents    *repositories.DocumentRepository
	appointments *repositories.AppointmentRepository
}

func NewSiteController(
	sites *repositories.SiteRepository,
	companies *repositories.CompanyRepository,
	documents *repositories.DocumentRepository,
	appointments *repositories.AppointmentRepository,
) *SiteController {
	return &SiteController{
		sites:        sites,
		companies:    companies,
		documents:    documents,
		appointments: appointments,
	}
}

// List handles GET /baustellen - lists all sites with their companies
func (sc *SiteController) List(c *gin.Context) {
	sites, err := sc.sites.List(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load sites")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    sites,
	})
}

// Create handles POST /baustellen - creates a site and redirects to the list
func (sc *SiteController) Create(c *gin.Context) {
	var form SiteForm
	if err := c.ShouldBind(&form); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	startDate, endDate, ok := sc.parseDates(c, &form)
	if !ok {
		return
	}

	if _, err := sc.companies.GetByID(c.Request.Context(), *form.CompanyID); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Referenced company does not exist")
		return
	}

	status := form.Status
	if status == "" {
		status = models.SiteStatusActive
	}

	site := models.Site{
		Name:        form.Name,
		Address:     form.Address,
		CompanyID:   *form.CompanyID,
		Status:      status,
		StartDate:   startDate,
		EndDate:     endDate,
		Description: form.Description,
	}

	if err := sc.sites.Create(c.Request.Context(), &site); err != nil {
		logger.FromContext(c).Error("Failed to create site", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to create site")
		return
	}

	metrics.RecordOperation("site", "create")
	c.Redirect(http.StatusFound, "/baustellen")
}

// Edit handles GET /baustellen/edit/:id - returns the site to edit
func (sc *SiteController) Edit(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	site, err := sc.sites.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, http.StatusNotFound, "NOT_FOUND", "Site not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    site,
	})
}

// Update handles POST /baustellen/edit/:id - overwrites all site fields.
// An empty status falls back to "active", same as Create.
func (sc *SiteController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	site, err := sc.sites.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, http.StatusNotFound, "NOT_FOUND", "Site not found")
		return
	}

	var form SiteForm
	if err := c.ShouldBind(&form); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	startDate, endDate, ok := sc.parseDates(c, &form)
	if !ok {
		return
	}

	if _, err := sc.companies.GetByID(c.Request.Context(), *form.CompanyID); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Referenced company does not exist")
		return
	}

	status := form.Status
	if status == "" {
		status = models.SiteStatusActive
	}

	site.Name = form.Name
	site.Address = form.Address
	site.CompanyID = *form.CompanyID
	site.Status = status
	site.StartDate = startDate
	site.EndDate = endDate
	site.Description = form.Description

	if err := sc.sites.Update(c.Request.Context(), site); err != nil {
		logger.FromContext(c).Error("Failed to update site", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to update site")
		return
	}

	metrics.RecordOperation("site", "update")
	c.Redirect(http.StatusFound, "/baustellen")
}

// Delete handles POST /baustellen/delete/:id - deletes a site. Sites with
// attached documents cannot be deleted; appointments merely pointing at the
// site keep existing with the link cleared.
func (sc *SiteController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	site, err := sc.sites.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, http.StatusNotFound, "NOT_FOUND", "Site not found")
		return
	}

	documentCount, err := sc.documents.CountBySite(c.Request.Context(), site.ID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to check attached documents")
		return
	}
	if documentCount > 0 {
		respondError(c, http.StatusConflict, "CONFLICT", "Site still has attached documents")
		return
	}

	if err := sc.appointments.DetachSite(c.Request.Context(), site.ID); err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to detach appointments")
		return
	}

	if err := sc.sites.Delete(c.Request.Context(), site.ID); err != nil {
		logger.FromContext(c).Error("Failed to delete site", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to delete site")
		return
	}

	metrics.RecordOperation("site", "delete")
	c.Redirect(http.StatusFound, "/baustellen")
}

// parseDates validates the start and optional end date of a site form.
func (sc *SiteController) parseDates(c *gin.Context, form *SiteForm) (time.Time, *time.Time, bool) {
	startDate, err := time.Parse(DateLayout, form.StartDate)
	if err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid start date, expected YYYY-MM-DD")
		return time.Time{}, nil, false
	}

	var endDate *time.Time
	if form.EndDate != "" {
		parsed, err := time.Parse(DateLayout, form.EndDate)
		if err != nil {
			respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid end date, expected YYYY-MM-DD")
			return time.Time{}, nil, false
		}
		endDate = &parsed
	}

	return startDate, endDate, true
}
