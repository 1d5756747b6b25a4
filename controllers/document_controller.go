package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/simplethings/baubuero-api/logger"
	"github.com/simplethings/baubuero-api/metrics"
	"github.com/simplethings/baubuero-api/models"
	"github.com/simplethings/baubuero-api/repositories"
	"github.com/simplethings/baubuero-api/utils"
	"go.uber.org/zap"
)

// DocumentForm represents the document create form submission
type DocumentForm struct {
	DocType     string `form:"typ" binding:"required"`
	Filename    string `form:"dateiname" binding:"required"`
	Description string `form:"beschreibung"`
}

// DocumentController handles the per-site document routes. Only the file
// reference is managed here; the bytes live in external storage.
type DocumentController struct {
	documents *repositories.DocumentRepository
	sites     *repositories.SiteRepository
}

func NewDocumentController(documents *repositories.DocumentRepository, sites *repositories.SiteRepository) *DocumentController {
	return &DocumentController{documents: documents, sites: sites}
}

// List handles GET /baustellen/dokumente/:id - lists a site's documents
func (dc *DocumentController) List(c *gin.Context) {
	site, ok := dc.loadSite(c)
	if !ok {
		return
	}

	documents, err := dc.documents.ListBySite(c.Request.Context(), site.ID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load documents")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    documents,
	})
}

// Create handles POST /baustellen/dokumente/:id - attaches a document
// reference to a site
func (dc *DocumentController) Create(c *gin.Context) {
	site, ok := dc.loadSite(c)
	if !ok {
		return
	}

	var form DocumentForm
	if err := c.ShouldBind(&form); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	if err := utils.ValidateDocumentReference(form.DocType, form.Filename); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	document := models.Document{
		SiteID:      site.ID,
		DocType:     form.DocType,
		Filename:    form.Filename,
		UploadedAt:  time.Now(),
		Description: form.Description,
	}

	if err := dc.documents.Create(c.Request.Context(), &document); err != nil {
		logger.FromContext(c).Error("Failed to create document", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to create document")
		return
	}

	metrics.RecordOperation("document", "create")
	c.Redirect(http.StatusFound, fmt.Sprintf("/baustellen/dokumente/%d", site.ID))
}

// Delete handles POST /baustellen/dokumente/:id/delete/:docID - removes a
// document reference from a site
func (dc *DocumentController) Delete(c *gin.Context) {
	site, ok := dc.loadSite(c)
	if !ok {
		return
	}

	docID, ok := parseIDParam(c, "docID")
	if !ok {
		return
	}

	document, err := dc.documents.GetByID(c.Request.Context(), docID)
	if err != nil || document.SiteID != site.ID {
		respondError(c, http.StatusNotFound, "NOT_FOUND", "Document not found")
		return
	}

	if err := dc.documents.Delete(c.Request.Context(), document.ID); err != nil {
		logger.FromContext(c).Error("Failed to delete document", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to delete document")
		return
	}

	metrics.RecordOperation("document", "delete")
	c.Redirect(http.StatusFound, fmt.Sprintf("/baustellen/dokumente/%d", site.ID))
}

// loadSite resolves the :id parameter into a site or answers 404.
func (dc *DocumentController) loadSite(c *gin.Context) (*models.Site, bool) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return nil, false
	}

	site, err := dc.sites.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, http.StatusNotFound, "NOT_FOUND", "Site not found")
		return nil, false
	}

	return site, true
}
