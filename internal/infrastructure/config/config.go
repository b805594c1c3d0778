package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"workshop_jobs/internal/domain/entities"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

const (
	StoreDynamoDB = "dynamodb"
	StoreSQL      = "sql"

	devJWTSecret = "dev-secret-change-me"
)

var ErrMissingJWTSecret = errors.New("missing JWT_SECRET")

// Config holds every runtime setting. It is read once at startup.
type Config struct {
	Env         string
	Port        int
	StoreDriver string
	DatabaseURL string

	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	DynamoDBEndpoint   string
	TablePrefix        string
	CreateTables       bool

	JWTSecret  string
	SessionTTL time.Duration
	BcryptCost int

	CORSOrigins     []string
	StatusPolicy    entities.StatusPolicy
	LogLevel        logrus.Level
	DefaultCurrency string
}

// Load reads the configuration from the environment.
//
// Supported env vars:
//   - APP_ENV (default: production; "development" allows a built-in JWT secret)
//   - PORT (default: 8080)
//   - STORE_DRIVER: dynamodb | sql (default: dynamodb)
//   - DATABASE_URL (sql store; postgres:// selects PostgreSQL, anything else SQLite)
//   - AWS_REGION, AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY, DYNAMODB_ENDPOINT
//   - DYNAMODB_TABLE_PREFIX (default: workshop_), DYNAMODB_CREATE_TABLES
//   - JWT_SECRET, SESSION_TTL (default: 168h), BCRYPT_COST
//   - CORS_ORIGINS (comma separated, default: *)
//   - JOB_STATUS_POLICY: permissive | strict
//   - LOG_LEVEL (default: info), DEFAULT_CURRENCY (default: INR)
func Load() (Config, error) {
	cfg := Config{
		Env:                strings.ToLower(getenvDefault("APP_ENV", "production")),
		StoreDriver:        strings.ToLower(getenvDefault("STORE_DRIVER", StoreDynamoDB)),
		DatabaseURL:        getenvDefault("DATABASE_URL", "file:workshop.db?cache=shared"),
		AWSRegion:          getenvDefault("AWS_REGION", "us-east-1"),
		AWSAccessKeyID:     getenvDefault("AWS_ACCESS_KEY_ID", "local"),
		AWSSecretAccessKey: getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
		DynamoDBEndpoint:   os.Getenv("DYNAMODB_ENDPOINT"),
		TablePrefix:        getenvDefault("DYNAMODB_TABLE_PREFIX", "workshop_"),
		JWTSecret:          os.Getenv("JWT_SECRET"),
		CORSOrigins:        splitList(getenvDefault("CORS_ORIGINS", "*")),
		DefaultCurrency:    strings.ToUpper(getenvDefault("DEFAULT_CURRENCY", entities.DefaultCurrency)),
	}

	var err error
	if cfg.Port, err = strconv.Atoi(getenvDefault("PORT", "8080")); err != nil || cfg.Port <= 0 {
		return Config{}, fmt.Errorf("invalid PORT %q", os.Getenv("PORT"))
	}
	if cfg.CreateTables, err = parseBool(os.Getenv("DYNAMODB_CREATE_TABLES")); err != nil {
		return Config{}, fmt.Errorf("invalid DYNAMODB_CREATE_TABLES: %w", err)
	}
	if cfg.SessionTTL, err = time.ParseDuration(getenvDefault("SESSION_TTL", "168h")); err != nil || cfg.SessionTTL <= 0 {
		return Config{}, fmt.Errorf("invalid SESSION_TTL %q", os.Getenv("SESSION_TTL"))
	}
	if cfg.BcryptCost, err = strconv.Atoi(getenvDefault("BCRYPT_COST", strconv.Itoa(bcrypt.DefaultCost))); err != nil ||
		cfg.BcryptCost < bcrypt.MinCost || cfg.BcryptCost > bcrypt.MaxCost {
		return Config{}, fmt.Errorf("invalid BCRYPT_COST %q", os.Getenv("BCRYPT_COST"))
	}
	if cfg.LogLevel, err = logrus.ParseLevel(getenvDefault("LOG_LEVEL", "info")); err != nil {
		return Config{}, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	policy, ok := entities.ParseStatusPolicy(os.Getenv("JOB_STATUS_POLICY"))
	if !ok {
		return Config{}, fmt.Errorf("invalid JOB_STATUS_POLICY %q", os.Getenv("JOB_STATUS_POLICY"))
	}
	cfg.StatusPolicy = policy

	switch cfg.StoreDriver {
	case StoreDynamoDB, StoreSQL:
	default:
		return Config{}, fmt.Errorf("invalid STORE_DRIVER %q", cfg.StoreDriver)
	}

	if cfg.JWTSecret == "" {
		if cfg.Env != "development" {
			return Config{}, ErrMissingJWTSecret
		}
		cfg.JWTSecret = devJWTSecret
	}

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func parseBool(v string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "0", "false", "no", "off":
		return false, nil
	case "1", "true", "yes", "on":
		return true, nil
	}
	return false, fmt.Errorf("unrecognized boolean %q", v)
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
