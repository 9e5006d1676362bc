package service

import (
	"testing"

	"puntadas/config"
	"puntadas/internal/database"
	"puntadas/internal/models"
	"puntadas/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an in-memory sqlite database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.AutoMigrate(db))
	return db
}

// disabledNotifier returns a notification service with no webhook
// configured, so every dispatch is a recorded no-op.
func disabledNotifier() *NotificationService {
	return NewNotificationService(&config.NotifyConfig{})
}

func seedCustomer(t *testing.T, db *gorm.DB, email string) *models.Customer {
	t.Helper()
	c := &models.Customer{
		FirstName:    "Ana",
		LastName:     "García",
		Email:        email,
		Phone:        "3124915127",
		ReferralCode: "REF-TEST-" + email,
	}
	require.NoError(t, repository.NewCustomerRepository(db).Create(c))
	return c
}
