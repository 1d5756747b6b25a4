package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/simplethings/baubuero-api/config"
	"github.com/simplethings/baubuero-api/controllers"
	"github.com/simplethings/baubuero-api/middleware"
	"github.com/simplethings/baubuero-api/repositories"
	"github.com/simplethings/baubuero-api/services"
)

// setupRouter assembles the full HTTP surface. Everything except the
// landing page, login, health and metrics sits behind the session gate.
func setupRouter(cfg *config.Config, repos *repositories.Repositories) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())
	router.Use(cors.Default())

	sessions := services.NewSessionService(cfg.SessionSecret)

	authController := controllers.NewAuthController(repos.Users, sessions, cfg.IsProduction())
	dashboardController := controllers.NewDashboardController(repos.Appointments)
	companyController := controllers.NewCompanyController(repos.Companies, repos.Sites)
	materialController := controllers.NewMaterialController(repos.Materials, repos.Orders)
	appointmentController := controllers.NewAppointmentController(repos.Appointments, repos.Sites)
	siteController := controllers.NewSiteController(repos.Sites, repos.Companies, repos.Documents, repos.Appointments)
	documentController := controllers.NewDocumentController(repos.Documents, repos.Sites)

	// Public routes
	router.GET("/", landingPage)
	router.GET("/healthz", healthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/login", authController.ShowLogin)
	router.POST("/login", authController.Login)

	// Protected routes
	protected := router.Group("/")
	protected.Use(middleware.RequireAuth(sessions, repos.Users))
	{
		protected.GET("/logout", authController.Logout)
		protected.GET("/dashboard", dashboardController.Dashboard)

		protected.GET("/gesellschaften", companyController.List)
		protected.POST("/gesellschaften", companyController.Create)
		protected.GET("/gesellschaften/edit/:id", companyController.Edit)
		protected.POST("/gesellschaften/edit/:id", companyController.Update)
		protected.POST("/gesellschaften/delete/:id", companyController.Delete)

		protected.GET("/material", materialController.List)
		protected.POST("/material", materialController.Create)
		protected.GET("/material/edit/:id", materialController.Edit)
		protected.POST("/material/edit/:id", materialController.Update)
		protected.GET("/material/bestellen/:id", materialController.ShowOrderForm)
		protected.POST("/material/bestellen/:id", materialController.PlaceOrder)
		protected.POST("/material/delete/:id", materialController.Delete)

		protected.GET("/termine", appointmentController.List)
		protected.POST("/termine", appointmentController.Create)
		protected.GET("/termine/edit/:id", appointmentController.Edit)
		protected.POST("/termine/edit/:id", appointmentController.Update)
		protected.POST("/termine/delete/:id", appointmentController.Delete)

		protected.GET("/baustellen", siteController.List)
		protected.POST("/baustellen", siteController.Create)
		protected.GET("/baustellen/edit/:id", siteController.Edit)
		protected.POST("/baustellen/edit/:id", siteController.Update)
		protected.POST("/baustellen/delete/:id", siteController.Delete)

		protected.GET("/baustellen/dokumente/:id", documentController.List)
		protected.POST("/baustellen/dokumente/:id", documentController.Create)
		protected.POST("/baustellen/dokumente/:id/delete/:docID", documentController.Delete)
	}

	return router
}
