package db

import (
	"errors"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"sleepapi/internal/config"
	"sleepapi/internal/logger"
)

// Connect opens a GORM database connection using APP_DATABASE_URL (PostgreSQL URL).
func Connect(cfg *config.Config) (*gorm.DB, error) {
	dsn := strings.TrimSpace(cfg.DatabaseURL)
	if dsn == "" {
		return nil, errors.New("APP_DATABASE_URL is required (PostgreSQL URL)")
	}
	if !strings.HasPrefix(dsn, "postgres://") && !strings.HasPrefix(dsn, "postgresql://") {
		return nil, errors.New("APP_DATABASE_URL must be a postgres:// or postgresql:// URL")
	}

	// PrepareStmt: true prevents the GORM postgres migrator from forcing simple protocol
	// for "SELECT * FROM table LIMIT 1", which would otherwise trigger "insufficient arguments".
	// TranslateError lets duplicate-key faults surface as gorm.ErrDuplicatedKey.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{PrepareStmt: true, TranslateError: true})
	if err != nil {
		return nil, err
	}

	// Auto-migrate the core tables.
	if err := db.AutoMigrate(&User{}, &SleepLog{}); err != nil {
		return nil, err
	}

	return db, nil
}

// EnsureSeedUser makes sure the configured seed user exists so a fresh
// deployment has an account to record sleep against. An existing user
// with that username is left as-is.
func EnsureSeedUser(db *gorm.DB, cfg *config.Config) error {
	if cfg.SeedUsername == "" {
		return nil
	}

	var count int64
	if err := db.Model(&User{}).Where("username = ?", cfg.SeedUsername).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	if _, err := CreateUser(db, cfg.SeedUsername); err != nil {
		// Lost a race against a concurrent boot; the user exists either way.
		if errors.Is(err, ErrDuplicateUser) {
			return nil
		}
		return err
	}

	logger.Get().Infow("seed user created", "username", cfg.SeedUsername)
	return nil
}
