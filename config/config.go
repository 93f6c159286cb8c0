package config

import (
	"os"
	"time"
)

type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Session    SessionConfig
	Admin      AdminConfig
	Cloudinary CloudinaryConfig
	Notify     NotifyConfig
}

type ServerConfig struct {
	Port         string
	Env          string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	DSN             string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
}

type SessionConfig struct {
	CookieName string
	TTL        time.Duration
	Secure     bool // Secure cookie flag; off in development (no TLS)
}

// AdminConfig holds the bootstrap super-admin credentials. The super-admin
// email is the only identity allowed to delete other admin accounts.
type AdminConfig struct {
	SuperAdminEmail    string
	SuperAdminName     string
	SuperAdminPassword string
}

type CloudinaryConfig struct {
	CloudName string
	APIKey    string
	APISecret string
}

// NotifyConfig points at the webhook that receives contact-form submissions
// (Google Apps Script endpoint feeding a sheet). Best-effort only.
type NotifyConfig struct {
	ContactWebhookURL string
	Timeout           time.Duration
}

func Load() *Config {
	env := getenv("APP_ENV", "development")
	return &Config{
		Server: ServerConfig{
			Port:         getenv("PORT", "8080"),
			Env:          env,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
		},
		Database: DatabaseConfig{
			DSN:             getenv("DATABASE_DSN", "nuvita:nuvita@tcp(localhost:3306)/nuvita?charset=utf8mb4&parseTime=True&loc=Local"),
			MaxIdleConns:    10,
			MaxOpenConns:    100,
			ConnMaxLifetime: time.Hour,
		},
		Session: SessionConfig{
			CookieName: "nuvita_admin_session",
			TTL:        24 * time.Hour,
			Secure:     env == "production",
		},
		Admin: AdminConfig{
			SuperAdminEmail:    getenv("SUPER_ADMIN_EMAIL", "admin@nuvita.kr"),
			SuperAdminName:     getenv("SUPER_ADMIN_NAME", "관리자"),
			SuperAdminPassword: getenv("SUPER_ADMIN_PASSWORD", "change-me-in-production"),
		},
		Cloudinary: CloudinaryConfig{
			CloudName: os.Getenv("CLOUDINARY_CLOUD_NAME"),
			APIKey:    os.Getenv("CLOUDINARY_API_KEY"),
			APISecret: os.Getenv("CLOUDINARY_API_SECRET"),
		},
		Notify: NotifyConfig{
			ContactWebhookURL: os.Getenv("CONTACT_WEBHOOK_URL"),
			Timeout:           10 * time.Second,
		},
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
