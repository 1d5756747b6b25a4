package acceptance

import (
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/simplethings/baubuero-api/controllers"
	"github.com/simplethings/baubuero-api/middleware"
	"github.com/simplethings/baubuero-api/repositories"
	"github.com/simplethings/baubuero-api/services"
	"github.com/simplethings/baubuero-api/tests/testutil"
)

const (
	testAdminEmail    = "admin@simplethings.de"
	testAdminPassword = "admin123"
)

// buildTestServer starts a real HTTP server with the login flow and the
// protected back-office routes, backed by an in-memory database seeded with
// one admin account.
func buildTestServer(t *testing.T) (*httptest.Server, *repositories.Repositories) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := testutil.OpenTestDB()
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	repos := repositories.New(db)

	if _, err := testutil.CreateUser(db, "admin", testAdminEmail, testAdminPassword); err != nil {
		t.Fatalf("Failed to seed admin user: %v", err)
	}

	sessions := services.NewSessionService("acceptance-test-secret")

	authController := controllers.NewAuthController(repos.Users, sessions, false)
	dashboardController := controllers.NewDashboardController(repos.Appointments)
	companyController := controllers.NewCompanyController(repos.Companies, repos.Sites)
	materialController := controllers.NewMaterialController(repos.Materials, repos.Orders)
	siteController := controllers.NewSiteController(repos.Sites, repos.Companies, repos.Documents, repos.Appointments)
	documentController := controllers.NewDocumentController(repos.Documents, repos.Sites)

	router := gin.New()
	router.GET("/login", authController.ShowLogin)
	router.POST("/login", authController.Login)

	protected := router.Group("/")
	protected.Use(middleware.RequireAuth(sessions, repos.Users))
	{
		protected.GET("/logout", authController.Logout)
		protected.GET("/dashboard", dashboardController.Dashboard)
		protected.GET("/gesellschaften", companyController.List)
		protected.POST("/gesellschaften", companyController.Create)
		protected.GET("/material", materialController.List)
		protected.POST("/material", materialController.Create)
		protected.GET("/material/bestellen/:id", materialController.ShowOrderForm)
		protected.POST("/material/bestellen/:id", materialController.PlaceOrder)
		protected.GET("/baustellen", siteController.List)
		protected.POST("/baustellen", siteController.Create)
		protected.POST("/baustellen/delete/:id", siteController.Delete)
		protected.GET("/baustellen/dokumente/:id", documentController.List)
		protected.POST("/baustellen/dokumente/:id", documentController.Create)
	}

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server, repos
}

// newBrowserClient returns a client that keeps cookies like a browser would.
func newBrowserClient(t *testing.T) *http.Client {
	t.Helper()

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("Failed to create cookie jar: %v", err)
	}
	return &http.Client{Jar: jar}
}

// login posts the credentials and leaves the session cookie in the client jar.
func login(t *testing.T, client *http.Client, serverURL, email, password string) *http.Response {
	t.Helper()

	resp, err := client.PostForm(serverURL+"/login", url.Values{
		"email":    {email},
		"passwort": {password},
	})
	if err != nil {
		t.Fatalf("Login request failed: %v", err)
	}
	resp.Body.Close()
	return resp
}
