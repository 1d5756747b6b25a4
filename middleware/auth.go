package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/simplethings/baubuero-api/logger"
	"github.com/simplethings/baubuero-api/metrics"
	"github.com/simplethings/baubuero-api/models"
	"github.com/simplethings/baubuero-api/repositories"
	"github.com/simplethings/baubuero-api/services"
	"go.uber.org/zap"
)

// SessionCookieName is the cookie carrying the signed session token.
const SessionCookieName = "baubuero_session"

const currentUserKey = "current_user"

// RequireAuth gates protected routes. It reads the session cookie,
// validates the token and loads the user behind it into the request
// context. Anything short of a valid session is answered with a redirect
// to the login page.
func RequireAuth(sessions *services.SessionService, users *repositories.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(SessionCookieName)
		if err != nil {
			metrics.RecordAuthError("missing_session")
			redirectToLogin(c)
			return
		}

		claims, err := sessions.ValidateToken(tokenString)
		if err != nil {
			metrics.RecordAuthError("invalid_session")
			logger.FromContext(c).Debug("Rejected session token", zap.Error(err))
			redirectToLogin(c)
			return
		}

		// The token only names the user; the account itself is looked up
		// fresh so deleted users lose access immediately.
		user, err := users.GetByID(c.Request.Context(), claims.UserID)
		if err != nil {
			metrics.RecordAuthError("unknown_user")
			redirectToLogin(c)
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}

func redirectToLogin(c *gin.Context) {
	c.Redirect(http.StatusFound, "/login")
	c.Abort()
}

// CurrentUser returns the authenticated user placed in the context by
// RequireAuth.
func CurrentUser(c *gin.Context) (*models.User, error) {
	v, exists := c.Get(currentUserKey)
	if !exists {
		return nil, &AuthError{Code: "MISSING_USER", Message: "No authenticated user in context"}
	}

	user, ok := v.(*models.User)
	if !ok {
		return nil, &AuthError{Code: "INVALID_USER", Message: "Context user has unexpected type"}
	}

	return user, nil
}

// SetCurrentUser stashes a user in the gin context the same way RequireAuth
// does. Exposed for handler tests.
func SetCurrentUser(c *gin.Context, user *models.User) {
	c.Set(currentUserKey, user)
}

// AuthError represents an authentication error
type AuthError struct {
	Code    string
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}
