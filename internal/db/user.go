package db

import (
	"errors"

	"gorm.io/gorm"

	"sleepapi/internal/logger"
)

// CreateUser inserts a new user. Username collisions come back as
// ErrDuplicateUser via the unique index on username.
func CreateUser(db *gorm.DB, username string) (*User, error) {
	user := &User{Username: username}
	if err := db.Create(user).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateUser
		}
		logger.Get().Debugw("user insert failed", "username", username, "error", err)
		return nil, ErrStorage
	}
	return user, nil
}

// FindUserByUsername returns the user with the given username, or ErrNotFound.
func FindUserByUsername(db *gorm.DB, username string) (*User, error) {
	var user User
	err := db.Where("username = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		logger.Get().Debugw("user lookup failed", "username", username, "error", err)
		return nil, ErrStorage
	}
	return &user, nil
}
