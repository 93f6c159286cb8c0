package service

import (
	"path/filepath"
	"testing"
	"time"

	"nuvita/config"
	"nuvita/internal/models"
	"nuvita/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Package{},
		&models.PackageProduct{},
		&models.Admin{},
		&models.AdminSession{},
		&models.SiteSetting{},
		&models.Inquiry{},
		&models.AuditLog{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newTestConfig() *config.Config {
	return &config.Config{
		Session: config.SessionConfig{
			CookieName: "nuvita_admin_session",
			TTL:        24 * time.Hour,
		},
		Admin: config.AdminConfig{
			SuperAdminEmail:    "super@nuvita.kr",
			SuperAdminName:     "관리자",
			SuperAdminPassword: "super-secret-pw",
		},
	}
}

func newCatalogService(t *testing.T) (*CatalogService, *gorm.DB) {
	db := newTestDB(t)
	return NewCatalogService(repository.NewPackageRepository(db), repository.NewProductRepository(db)), db
}

func newAuthService(t *testing.T) (*AuthService, *gorm.DB) {
	db := newTestDB(t)
	cfg := newTestConfig()
	return NewAuthService(cfg, repository.NewAdminRepository(db), repository.NewSessionRepository(db)), db
}
