package database

import (
	"errors"
	"log"

	"nuvita/config"
	"nuvita/internal/domain"
	"nuvita/internal/models"
	"nuvita/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(cfg.DSN), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error), // Only log errors, not every SQL query
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

// AutoMigrate runs Gorm auto-migration for all models. The unique indexes
// created here carry the catalog and admin uniqueness invariants.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Package{},
		&models.PackageProduct{},
		&models.Admin{},
		&models.AdminSession{},
		&models.SiteSetting{},
		&models.Inquiry{},
		&models.AuditLog{},
	)
}

// SeedSuperAdmin creates the bootstrap super-admin account if it does not
// exist yet. An existing account is never overwritten.
func SeedSuperAdmin(db *gorm.DB, cfg *config.AdminConfig) error {
	var existing models.Admin
	err := db.Where("email = ?", cfg.SuperAdminEmail).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.SuperAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := &models.Admin{
		Email:        cfg.SuperAdminEmail,
		Name:         cfg.SuperAdminName,
		PasswordHash: string(hash),
	}
	if err := db.Create(admin).Error; err != nil {
		return err
	}
	log.Printf("[bootstrap] super admin created: %s", cfg.SuperAdminEmail)
	return nil
}

// SeedSettings inserts the landing-page setting defaults once.
func SeedSettings(db *gorm.DB) error {
	return repository.NewSettingRepository(db).SeedDefaults(map[string]string{
		domain.SettingHeroTitle:    "건강한 구독 생활의 시작",
		domain.SettingHeroSubtitle: "매달 집으로 찾아오는 맞춤 건강기능식품",
		domain.SettingContactPhone: "",
		domain.SettingContactEmail: "",
		domain.SettingKakaoChannel: "",
	})
}
