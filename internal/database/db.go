package database

import (
	"fmt"
	"os"
	"time"

	"prodcrew/internal/models"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Open connects with a bounded retry so the service survives the store
// coming up after it (compose startup ordering).
func Open(dsn string) (*gorm.DB, error) {
	const maxAttempts = 10

	var db *gorm.DB
	var err error
	for i := 1; i <= maxAttempts; i++ {
		logrus.Infof("connecting to DB (attempt %d/%d)", i, maxAttempts)

		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err == nil {
			logrus.Info("connected to DB")
			return db, nil
		}

		logrus.WithError(err).Warn("DB connection failed")
		time.Sleep(2 * time.Second)
	}

	return nil, fmt.Errorf("connect to db after %d attempts: %w", maxAttempts, err)
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Equipment{},
		&models.Event{},
		&models.PickListItem{},
		&models.StagePlan{},
		&models.CrewAssignment{},
	)
}

// SeedAdmin creates the bootstrap admin account when no user with that
// username exists yet. Safe to run on every start.
func SeedAdmin(db *gorm.DB) error {
	username := os.Getenv("ADMIN_USERNAME")
	if username == "" {
		username = "admin"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}

	var count int64
	if err := db.Model(&models.User{}).
		Where("username = ?", username).
		Count(&count).Error; err != nil {
		return fmt.Errorf("check admin user: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	admin := models.User{
		Username:     username,
		PasswordHash: string(hash),
		IsAdmin:      true,
	}
	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("create admin user: %w", err)
	}

	logrus.Infof("created default admin user %q", username)
	return nil
}
