package controllers

import (
	"context"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/simplethings/baubuero-api/models"
	"github.com/simplethings/baubuero-api/repositories"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func setupDocumentRouter(t *testing.T) (*gin.Engine, *repositories.Repositories) {
	t.Helper()

	repos := setupTestRepos(t)
	controller := NewDocumentController(repos.Documents, repos.Sites)

	router := setupTestRouter()
	router.GET("/baustellen/dokumente/:id", controller.List)
	router.POST("/baustellen/dokumente/:id", controller.Create)
	router.POST("/baustellen/dokumente/:id/delete/:docID", controller.Delete)

	return router, repos
}

func seedSiteWithCompany(t *testing.T, repos *repositories.Repositories) *models.Site {
	t.Helper()

	company := seedCompany(t, repos)
	return seedSite(t, repos, company.ID)
}

func TestDocumentCreate(t *testing.T) {
	router, repos := setupDocumentRouter(t)
	site := seedSiteWithCompany(t, repos)

	w := postForm(router, "/baustellen/dokumente/1", url.Values{
		"typ":          {models.DocumentTypePhoto},
		"dateiname":    {"fassade.jpg"},
		"beschreibung": {"Fassade Nordseite"},
	})
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/baustellen/dokumente/1", w.Header().Get("Location"))

	documents, err := repos.Documents.ListBySite(context.Background(), site.ID)
	assert.NoError(t, err)
	assert.Len(t, documents, 1)
	assert.Equal(t, models.DocumentTypePhoto, documents[0].DocType)
	assert.Equal(t, "fassade.jpg", documents[0].Filename)
	assert.Equal(t, "Fassade Nordseite", documents[0].Description)
	assert.False(t, documents[0].UploadedAt.IsZero())
}

func TestDocumentCreateValidation(t *testing.T) {
	router, repos := setupDocumentRouter(t)
	site := seedSiteWithCompany(t, repos)

	tests := []struct {
		name     string
		docType  string
		filename string
	}{
		{"unknown type", "video", "clip.mp4"},
		{"photo with pdf extension", models.DocumentTypePhoto, "plan.pdf"},
		{"pdf with photo extension", models.DocumentTypePDF, "foto.jpg"},
		{"filename without extension", models.DocumentTypePhoto, "fassade"},
		{"missing filename", models.DocumentTypePhoto, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postForm(router, "/baustellen/dokumente/1", url.Values{
				"typ":       {tt.docType},
				"dateiname": {tt.filename},
			})
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}

	documents, err := repos.Documents.ListBySite(context.Background(), site.ID)
	assert.NoError(t, err)
	assert.Empty(t, documents)
}

func TestDocumentListNewestFirst(t *testing.T) {
	router, repos := setupDocumentRouter(t)
	ctx := context.Background()
	site := seedSiteWithCompany(t, repos)

	older := &models.Document{
		SiteID:     site.ID,
		DocType:    models.DocumentTypePDF,
		Filename:   "vertrag.pdf",
		UploadedAt: time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC),
	}
	newer := &models.Document{
		SiteID:     site.ID,
		DocType:    models.DocumentTypePhoto,
		Filename:   "fassade.jpg",
		UploadedAt: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
	}
	assert.NoError(t, repos.Documents.Create(ctx, older))
	assert.NoError(t, repos.Documents.Create(ctx, newer))

	status, response := getJSON(t, router, "/baustellen/dokumente/1")
	assert.Equal(t, http.StatusOK, status)

	data := response["data"].([]interface{})
	assert.Len(t, data, 2)
	first := data[0].(map[string]interface{})
	assert.Equal(t, "fassade.jpg", first["dateiname"])
}

func TestDocumentListUnknownSite(t *testing.T) {
	router, _ := setupDocumentRouter(t)

	status, _ := getJSON(t, router, "/baustellen/dokumente/999")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestDocumentDelete(t *testing.T) {
	router, repos := setupDocumentRouter(t)
	ctx := context.Background()
	site := seedSiteWithCompany(t, repos)

	document := &models.Document{
		SiteID:     site.ID,
		DocType:    models.DocumentTypePDF,
		Filename:   "vertrag.pdf",
		UploadedAt: time.Now(),
	}
	assert.NoError(t, repos.Documents.Create(ctx, document))

	w := postForm(router, "/baustellen/dokumente/1/delete/1", nil)
	assert.Equal(t, http.StatusFound, w.Code)

	_, err := repos.Documents.GetByID(ctx, document.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDocumentDeleteWrongSite(t *testing.T) {
	router, repos := setupDocumentRouter(t)
	ctx := context.Background()
	site := seedSiteWithCompany(t, repos)

	other := &models.Site{
		Name:      "Altbau West",
		Address:   "Ring 9",
		CompanyID: site.CompanyID,
		Status:    models.SiteStatusActive,
		StartDate: time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
	}
	assert.NoError(t, repos.Sites.Create(ctx, other))

	document := &models.Document{
		SiteID:     other.ID,
		DocType:    models.DocumentTypePhoto,
		Filename:   "dach.png",
		UploadedAt: time.Now(),
	}
	assert.NoError(t, repos.Documents.Create(ctx, document))

	// Deleting through the wrong site must not touch the document
	w := postForm(router, "/baustellen/dokumente/1/delete/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NOT_FOUND", errorCode(t, w.Body.Bytes()))

	_, err := repos.Documents.GetByID(ctx, document.ID)
	assert.NoError(t, err)
}
