package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultHTTPAddr  = ":8080"
	defaultDSN       = "furnex.db"
	defaultJWTTTL    = "24h"
	defaultJWTSecret = "change-me-jwt-secret"
	defaultUploadDir = "./uploads"
)

type Config struct {
	AppEnv       string
	HTTPAddr     string
	DatabaseDSN  string
	JWTSecret    string
	JWTAccessTTL time.Duration
	UploadDir    string
}

// Load reads configuration from the environment, after loading .env if one is
// present. DATABASE_URL wins; otherwise the discrete DATABASE_HOST/USER/
// PASSWORD/NAME variables are assembled into a postgres DSN, and with neither
// set a local SQLite file is used.
func Load() (*Config, error) {
	if _, err := os.Stat(".env"); err == nil {
		_ = godotenv.Load()
	}

	cfg := &Config{
		AppEnv:      strings.ToLower(strings.TrimSpace(getEnv("APP_ENV", "dev"))),
		HTTPAddr:    getEnv("HTTP_ADDR", defaultHTTPAddr),
		DatabaseDSN: databaseDSN(),
		JWTSecret:   strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret)),
		UploadDir:   getEnv("UPLOAD_DIR", defaultUploadDir),
	}

	ttl, err := parseDurationEnv("JWT_ACCESS_TTL", defaultJWTTTL)
	if err != nil {
		return nil, err
	}
	cfg.JWTAccessTTL = ttl

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func databaseDSN() string {
	if dsn := strings.TrimSpace(os.Getenv("DATABASE_URL")); dsn != "" {
		return dsn
	}

	host := strings.TrimSpace(os.Getenv("DATABASE_HOST"))
	if host == "" {
		return defaultDSN
	}

	user := url.UserPassword(
		os.Getenv("DATABASE_USER"),
		os.Getenv("DATABASE_PASSWORD"),
	)
	return fmt.Sprintf("postgres://%s@%s/%s", user.String(), host, os.Getenv("DATABASE_NAME"))
}

func validate(cfg *Config) error {
	if cfg.JWTAccessTTL <= 0 {
		return fmt.Errorf("JWT_ACCESS_TTL must be > 0")
	}
	if isProdLike(cfg.AppEnv) && cfg.JWTSecret == defaultJWTSecret {
		return fmt.Errorf("in prod/release JWT_SECRET must be set and not default")
	}
	return nil
}

func isProdLike(env string) bool {
	return env == "prod" || env == "production" || env == "release"
}

func parseDurationEnv(name, fallback string) (time.Duration, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
