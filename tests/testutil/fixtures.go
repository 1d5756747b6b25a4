package testutil

import (
	"context"
	"net/http"

	"github.com/simplethings/baubuero-api/middleware"
	"github.com/simplethings/baubuero-api/models"
	"github.com/simplethings/baubuero-api/services"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// OpenTestDB opens an in-memory database with the full schema migrated.
func OpenTestDB() (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Company{},
		&models.Material{},
		&models.Order{},
		&models.Site{},
		&models.Document{},
		&models.Appointment{},
	)
	if err != nil {
		return nil, err
	}

	return db, nil
}

// CreateUser inserts a user with a bcrypt password hash.
func CreateUser(db *gorm.DB, username, email, password string) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := db.WithContext(context.Background()).Create(user).Error; err != nil {
		return nil, err
	}

	return user, nil
}

// SessionCookie issues a valid session token for the user and wraps it in
// the cookie the auth middleware expects.
func SessionCookie(sessions *services.SessionService, user *models.User) (*http.Cookie, error) {
	token, err := sessions.IssueToken(user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	return &http.Cookie{Name: middleware.SessionCookieName, Value: token}, nil
}
