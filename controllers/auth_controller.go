package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/simplethings/baubuero-api/logger"
	"github.com/simplethings/baubuero-api/metrics"
	"github.com/simplethings/baubuero-api/middleware"
	"github.com/simplethings/baubuero-api/repositories"
	"github.com/simplethings/baubuero-api/services"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// LoginRequest represents the login form submission
type LoginRequest struct {
	Email    string `form:"email" binding:"required"`
	Password string `form:"passwort" binding:"required"`
}

// AuthController handles login and logout.
type AuthController struct {
	users    *repositories.UserRepository
	sessions *services.SessionService

	// secureCookies marks the session cookie HTTPS-only in production
	secureCookies bool
}

func NewAuthController(users *repositories.UserRepository, sessions *services.SessionService, secureCookies bool) *AuthController {
	return &AuthController{users: users, sessions: sessions, secureCookies: secureCookies}
}

// ShowLogin handles GET /login - describes the login form
func (ac *AuthController) ShowLogin(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"action": "/login",
			"method": "POST",
			"fields": []string{"email", "passwort"},
		},
	})
}

// Login handles POST /login - authenticates a user and establishes a session.
// Unknown email and wrong password answer identically so accounts cannot be
// enumerated.
func (ac *AuthController) Login(c *gin.Context) {
	log := logger.FromContext(c)
	metrics.LoginCounter.Inc()

	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	user, err := ac.users.GetByEmail(c.Request.Context(), req.Email)
	if err != nil {
		log.Info("Login failed", zap.String("email", req.Email))
		metrics.RecordAuthError("invalid_credentials")
		respondError(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid email or password")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		log.Info("Login failed", zap.String("email", req.Email))
		metrics.RecordAuthError("invalid_credentials")
		respondError(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid email or password")
		return
	}

	token, err := ac.sessions.IssueToken(user.ID, user.Email)
	if err != nil {
		log.Error("Failed to issue session token", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "SESSION_ERROR", "Failed to establish session")
		return
	}

	log.Info("User logged in", zap.String("email", user.Email))
	c.SetCookie(middleware.SessionCookieName, token, int(services.SessionDuration.Seconds()), "/", "", ac.secureCookies, true)
	c.Redirect(http.StatusFound, "/dashboard")
}

// Logout handles GET /logout - ends the session and returns to the login page
func (ac *AuthController) Logout(c *gin.Context) {
	if user, err := middleware.CurrentUser(c); err == nil {
		logger.FromContext(c).Info("User logged out", zap.String("email", user.Email))
	}

	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", ac.secureCookies, true)
	c.Redirect(http.StatusFound, "/login")
}
