package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	JWT        JWTConfig
	Cloudinary CloudinaryConfig
	Bold       BoldConfig
	Notify     NotifyConfig
	Redis      RedisConfig
	Tracking   TrackingConfig
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

type JWTConfig struct {
	Secret string
	Expiry time.Duration
	Issuer string
}

type CloudinaryConfig struct {
	CloudName string
	APIKey    string
	APISecret string
}

// BoldConfig holds credentials for the Bold hosted checkout.
// WebhookSecret signs webhook payloads with HMAC-SHA256; when empty,
// signature verification is skipped (local development only).
type BoldConfig struct {
	CheckoutBaseURL string
	APIKey          string
	WebhookSecret   string
}

// NotifyConfig points at the owner-notification webhook. Dispatch is
// best-effort: a failed or slow call never blocks a business operation.
type NotifyConfig struct {
	WebhookURL string
	Timeout    time.Duration
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	CacheTTL time.Duration
}

// TrackingConfig controls the public tracking URL embedded in QR codes.
type TrackingConfig struct {
	PublicBaseURL string
}

func Load() *Config {
	_ = godotenv.Load()
	return &Config{
		Server: ServerConfig{
			Port:         env("APP_PORT", "8080"),
			Env:          env("APP_ENV", "development"),
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
		},
		Database: DatabaseConfig{
			DSN:             env("DB_DSN", "root:@tcp(localhost:3306)/puntadas?charset=utf8mb4&parseTime=True&loc=Local"),
			MaxIdleConns:    envInt("DB_MAX_IDLE_CONNS", 10),
			MaxOpenConns:    envInt("DB_MAX_OPEN_CONNS", 100),
			ConnMaxLifetime: time.Hour,
		},
		JWT: JWTConfig{
			Secret: env("JWT_SECRET", "change-me-in-production"),
			Expiry: 24 * time.Hour,
			Issuer: "puntadas",
		},
		Cloudinary: CloudinaryConfig{
			CloudName: os.Getenv("CLOUDINARY_CLOUD_NAME"),
			APIKey:    os.Getenv("CLOUDINARY_API_KEY"),
			APISecret: os.Getenv("CLOUDINARY_API_SECRET"),
		},
		Bold: BoldConfig{
			CheckoutBaseURL: env("BOLD_CHECKOUT_BASE_URL", "https://checkout.bold.co"),
			APIKey:          os.Getenv("BOLD_API_KEY"),
			WebhookSecret:   os.Getenv("BOLD_WEBHOOK_SECRET"),
		},
		Notify: NotifyConfig{
			WebhookURL: os.Getenv("OWNER_NOTIFY_WEBHOOK_URL"),
			Timeout:    5 * time.Second,
		},
		Redis: RedisConfig{
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       envInt("REDIS_DB", 0),
			CacheTTL: time.Duration(envInt("REDIS_CACHE_TTL_SEC", 300)) * time.Second,
		},
		Tracking: TrackingConfig{
			PublicBaseURL: env("TRACKING_PUBLIC_BASE_URL", "https://puntadas-de-mechis.com"),
		},
	}
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
