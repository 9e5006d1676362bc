package database

import (
	"log"
	"os"

	"puntadas/config"
	"puntadas/internal/domain"
	"puntadas/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(cfg.DSN), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	})
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	return db, nil
}

// AutoMigrate runs Gorm auto-migration for all models.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Customer{},
		&models.Request{},
		&models.Payment{},
		&models.Communication{},
		&models.QRCodeTracking{},
		&models.CompletionNotification{},
		&models.GalleryCategory{},
		&models.GalleryItem{},
		&models.Promotion{},
		&models.AdminCredential{},
	)
}

// SeedAdmin creates the initial super_admin account when the credentials
// table is empty. Password comes from ADMIN_SEED_PASSWORD; nothing is
// seeded when that variable is unset.
func SeedAdmin(db *gorm.DB) {
	var count int64
	if err := db.Model(&models.AdminCredential{}).Count(&count).Error; err != nil || count > 0 {
		return
	}
	password := os.Getenv("ADMIN_SEED_PASSWORD")
	if password == "" {
		log.Printf("[seed] no admin accounts and ADMIN_SEED_PASSWORD unset; skipping seed")
		return
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("[seed] hash failed: %v", err)
		return
	}
	admin := &models.AdminCredential{
		Username:     env("ADMIN_SEED_USERNAME", "mechis"),
		PasswordHash: string(hash),
		Role:         domain.RoleSuperAdmin,
		IsActive:     true,
	}
	if err := db.Create(admin).Error; err != nil {
		log.Printf("[seed] create admin failed: %v", err)
		return
	}
	log.Printf("[seed] created super_admin %q", admin.Username)
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
