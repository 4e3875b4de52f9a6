package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultJWTTTL            = "24h"
	defaultEmailDomain       = "@kamk.fi"
	defaultInventoryURL      = "http://localhost:8082"
	defaultInventoryTimeout  = "3s"
	defaultReconcileInterval = "30s"

	defaultAuthPort      = "8081"
	defaultInventoryPort = "8082"
	defaultRentalPort    = "8083"
)

// Common holds the settings every service needs. The structs are built once
// at startup and passed down; nothing reads the environment after Load.
type Common struct {
	Port        string
	DatabaseURL string
	JWTSecret   string
	JWTTTL      time.Duration
}

type AuthConfig struct {
	Common
	EmailDomain string
}

type InventoryConfig struct {
	Common
	InternalToken string
}

type RentalConfig struct {
	Common
	InventoryURL      string
	InventoryTimeout  time.Duration
	ReconcileInterval time.Duration
	InternalToken     string
}

func LoadAuth() (*AuthConfig, error) {
	common, err := loadCommon(defaultAuthPort)
	if err != nil {
		return nil, err
	}

	cfg := &AuthConfig{
		Common:      *common,
		EmailDomain: strings.TrimSpace(getEnv("EMAIL_DOMAIN", defaultEmailDomain)),
	}
	if !strings.HasPrefix(cfg.EmailDomain, "@") {
		return nil, fmt.Errorf("EMAIL_DOMAIN must start with '@', got %q", cfg.EmailDomain)
	}
	return cfg, nil
}

func LoadInventory() (*InventoryConfig, error) {
	common, err := loadCommon(defaultInventoryPort)
	if err != nil {
		return nil, err
	}

	return &InventoryConfig{
		Common:        *common,
		InternalToken: strings.TrimSpace(os.Getenv("INTERNAL_TOKEN")),
	}, nil
}

func LoadRental() (*RentalConfig, error) {
	common, err := loadCommon(defaultRentalPort)
	if err != nil {
		return nil, err
	}

	cfg := &RentalConfig{
		Common:        *common,
		InventoryURL:  strings.TrimRight(strings.TrimSpace(getEnv("INVENTORY_URL", defaultInventoryURL)), "/"),
		InternalToken: strings.TrimSpace(os.Getenv("INTERNAL_TOKEN")),
	}

	cfg.InventoryTimeout, err = parseDurationEnv("INVENTORY_TIMEOUT", defaultInventoryTimeout)
	if err != nil {
		return nil, err
	}
	cfg.ReconcileInterval, err = parseDurationEnv("RECONCILE_INTERVAL", defaultReconcileInterval)
	if err != nil {
		return nil, err
	}

	if cfg.InventoryURL == "" {
		return nil, fmt.Errorf("INVENTORY_URL must not be empty")
	}
	return cfg, nil
}

func loadCommon(defaultPort string) (*Common, error) {
	// Optional .env for local development; ignored when absent.
	_ = godotenv.Load()

	cfg := &Common{
		Port:        strings.TrimSpace(getEnv("PORT", defaultPort)),
		DatabaseURL: strings.TrimSpace(os.Getenv("DATABASE_URL")),
		JWTSecret:   strings.TrimSpace(os.Getenv("JWT_SECRET")),
	}

	var err error
	cfg.JWTTTL, err = parseDurationEnv("JWT_TTL", defaultJWTTTL)
	if err != nil {
		return nil, err
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is empty")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is empty")
	}
	if cfg.JWTTTL <= 0 {
		return nil, fmt.Errorf("JWT_TTL must be > 0")
	}
	return cfg, nil
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
