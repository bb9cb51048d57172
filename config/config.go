package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// Config holds all runtime configuration. It is loaded once at startup from
// environment variables and treated as immutable afterwards.
type Config struct {
	// Server
	Port         string
	AllowOrigins string

	// Database. Empty means the app runs in degraded mode: reads return
	// empty results and writes are not attempted.
	DatabaseURL string

	// Session
	JWTSecret         string
	SessionCookieName string

	// The external identity that is auto-promoted to admin on sign-in.
	OwnerOpenID string

	// Cache
	RedisAddr string

	// Notifications
	SMTPHost    string
	SMTPPort    int
	SMTPUser    string
	SMTPPass    string
	NotifyEmail string

	// Uploads
	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string
}

// Load reads the configuration from the environment. A missing .env file is
// not an error; the process environment is used directly.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using environment variables directly")
	}

	smtpPort, _ := strconv.Atoi(os.Getenv("SMTP_PORT"))

	return &Config{
		Port:         getenv("PORT", "8000"),
		AllowOrigins: getenv("CORS_ALLOW_ORIGINS", "*"),

		DatabaseURL: os.Getenv("DATABASE_URL"),

		JWTSecret:         getenv("JWT_SECRET", "solid_secret_key"), // Replace with secure key in production
		SessionCookieName: getenv("SESSION_COOKIE_NAME", "studio_session"),

		OwnerOpenID: os.Getenv("OWNER_OPEN_ID"),

		RedisAddr: os.Getenv("REDIS_ADDR"),

		SMTPHost:    os.Getenv("SMTP_HOST"),
		SMTPPort:    smtpPort,
		SMTPUser:    os.Getenv("EMAIL_USER"),
		SMTPPass:    os.Getenv("EMAIL_PASS"),
		NotifyEmail: os.Getenv("NOTIFY_EMAIL"),

		CloudinaryCloudName: os.Getenv("CLOUDINARY_CLOUD_NAME"),
		CloudinaryAPIKey:    os.Getenv("CLOUDINARY_API_KEY"),
		CloudinaryAPISecret: os.Getenv("CLOUDINARY_API_SECRET"),
	}
}

// IsOwner reports whether the given external identity is the configured
// studio owner. An unset owner id never matches.
func (c *Config) IsOwner(openID string) bool {
	return c.OwnerOpenID != "" && openID == c.OwnerOpenID
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
