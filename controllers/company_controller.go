package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/simplethings/baubuero-api/logger"
	"github.com/simplethings/baubuero-api/metrics"
	"github.com/simplethings/baubuero-api/models"
	"github.com/simplethings/baubuero-api/repositories"
	"go.uber.org/zap"
)

// CompanyForm represents the company create/edit form submission
type CompanyForm struct {
	Name    string `form:"name" binding:"required"`
	Address string `form:"adresse" binding:"required"`
	Email   string `form:"email" binding:"required,email"`
	Phone   string `form:"telefon" binding:"required"`
}

// CompanyController handles the partner-company routes.
type CompanyController struct {
	companies *repositories.CompanyRepository
	sites     *repositories.SiteRepository
}

func NewCompanyController(companies *repositories.CompanyRepository, sites *repositories.SiteRepository) *CompanyController {
	return &CompanyController{companies: companies, sites: sites}
}

// List handles GET /gesellschaften - lists all companies
func (cc *CompanyController) List(c *gin.Context) {
	companies, err := cc.companies.List(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load companies")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    companies,
	})
}

// Create handles POST /gesellschaften - creates a company and redirects to
// the list
func (cc *CompanyController) Create(c *gin.Context) {
	var form CompanyForm
	if err := c.ShouldBind(&form); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	company := models.Company{
		Name:    form.Name,
		Address: form.Address,
		Email:   form.Email,
		Phone:   form.Phone,
	}

	if err := cc.companies.Create(c.Request.Context(), &company); err != nil {
		logger.FromContext(c).Error("Failed to create company", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to create company")
		return
	}

	metrics.RecordOperation("company", "create")
	c.Redirect(http.StatusFound, "/gesellschaften")
}

// Edit handles GET /gesellschaften/edit/:id - returns the company to edit
func (cc *CompanyController) Edit(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	company, err := cc.companies.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, http.StatusNotFound, "NOT_FOUND", "Company not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    company,
	})
}

// Update handles POST /gesellschaften/edit/:id - overwrites all company
// fields
func (cc *CompanyController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	company, err := cc.companies.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, http.StatusNotFound, "NOT_FOUND", "Company not found")
		return
	}

	var form CompanyForm
	if err := c.ShouldBind(&form); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	company.Name = form.Name
	company.Address = form.Address
	company.Email = form.Email
	company.Phone = form.Phone

	if err := cc.companies.Update(c.Request.Context(), company); err != nil {
		logger.FromContext(c).Error("Failed to update company", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to update company")
		return
	}

	metrics.RecordOperation("company", "update")
	c.Redirect(http.StatusFound, "/gesellschaften")
}

// Delete handles POST /gesellschaften/delete/:id - deletes a company.
// Companies that still own sites cannot be deleted; the sites have to be
// removed or reassigned first.
func (cc *CompanyController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	company, err := cc.companies.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, http.StatusNotFound, "NOT_FOUND", "Company not found")
		return
	}

	siteCount, err := cc.sites.CountByCompany(c.Request.Context(), company.ID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to check dependent sites")
		return
	}
	if siteCount > 0 {
		respondError(c, http.StatusConflict, "CONFLICT", "Company still owns construction sites")
		return
	}

	if err := cc.companies.Delete(c.Request.Context(), company.ID); err != nil {
		logger.FromContext(c).Error("Failed to delete company", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to delete company")
		return
	}

	metrics.RecordOperation("company", "delete")
	c.Redirect(http.StatusFound, "/gesellschaften")
}
