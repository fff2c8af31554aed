package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	defaultPort         = "8080"
	defaultDatabaseURL  = "gamesocio.db"
	defaultJWTSecret    = "change-me-jwt-secret"
	defaultJWTAccessTTL = "24h"
	defaultUploadFolder = "portfolio-files"
)

// Config carries everything cmd/api needs to wire the service. Values come
// from the environment; .env is loaded by the entrypoint before this runs.
type Config struct {
	AppEnv       string
	Port         string
	DatabaseURL  string
	JWTSecret    string
	JWTAccessTTL time.Duration

	// Cloudinary credentials for portfolio attachment storage.
	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string
	UploadFolder        string
}

func Load() (*Config, error) {
	cfg := &Config{
		AppEnv:              strings.ToLower(getEnv("APP_ENV", "dev")),
		Port:                getEnv("PORT", defaultPort),
		DatabaseURL:         getEnv("DATABASE_URL", defaultDatabaseURL),
		JWTSecret:           strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret)),
		CloudinaryCloudName: strings.TrimSpace(os.Getenv("CLOUDINARY_CLOUD_NAME")),
		CloudinaryAPIKey:    strings.TrimSpace(os.Getenv("CLOUDINARY_API_KEY")),
		CloudinaryAPISecret: strings.TrimSpace(os.Getenv("CLOUDINARY_API_SECRET")),
		UploadFolder:        getEnv("UPLOAD_FOLDER", defaultUploadFolder),
	}

	ttl, err := parseDurationEnv("JWT_ACCESS_TTL", defaultJWTAccessTTL)
	if err != nil {
		return nil, err
	}
	cfg.JWTAccessTTL = ttl

	if cfg.AppEnv == "prod" && cfg.JWTSecret == defaultJWTSecret {
		return nil, fmt.Errorf("JWT_SECRET must be set in prod")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseDurationEnv(key, fallback string) (time.Duration, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		raw = fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
