package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Drivers de storage soportados.
const (
	DriverJSON     = "json"
	DriverPostgres = "postgres"
)

// Config agrupa la configuración necesaria para correr la aplicación.
type Config struct {
	Port          string
	StorageDriver string
	DataDir       string
	DatabaseURL   string
	JWTSecret     string
	JWTTTL        time.Duration
	AdminUsername string
	AdminPassword string
}

// Load lee variables de entorno y valida lo mínimo indispensable.
func Load() (Config, error) {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}
	// Normalizamos por si alguien manda ":8080"
	port = strings.TrimPrefix(port, ":")

	driver := strings.TrimSpace(os.Getenv("STORAGE_DRIVER"))
	if driver == "" {
		driver = DriverJSON
	}
	if driver != DriverJSON && driver != DriverPostgres {
		return Config{}, fmt.Errorf("unknown STORAGE_DRIVER %q (want %q or %q)", driver, DriverJSON, DriverPostgres)
	}

	dataDir := strings.TrimSpace(os.Getenv("DATA_DIR"))
	if dataDir == "" {
		dataDir = "./data/items"
	}

	databaseURL := strings.TrimSpace(os.Getenv("DATABASE_URL"))
	if driver == DriverPostgres && databaseURL == "" {
		return Config{}, fmt.Errorf("missing required env var: DATABASE_URL")
	}

	secret := strings.TrimSpace(os.Getenv("JWT_SECRET"))
	if secret == "" {
		return Config{}, fmt.Errorf("missing required env var: JWT_SECRET")
	}
	// Un secreto corto hace trivial el brute force del HMAC.
	if len(secret) < 16 {
		return Config{}, fmt.Errorf("JWT_SECRET must be at least 16 characters")
	}

	ttl := time.Hour
	if value := strings.TrimSpace(os.Getenv("JWT_TTL")); value != "" {
		parsed, err := time.ParseDuration(value)
		if err != nil || parsed <= 0 {
			return Config{}, fmt.Errorf("invalid JWT_TTL %q", value)
		}
		ttl = parsed
	}

	adminUsername := strings.TrimSpace(os.Getenv("ADMIN_USERNAME"))
	if adminUsername == "" {
		adminUsername = "admin"
	}
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "adminpass"
	}

	return Config{
		Port:          port,
		StorageDriver: driver,
		DataDir:       dataDir,
		DatabaseURL:   databaseURL,
		JWTSecret:     secret,
		JWTTTL:        ttl,
		AdminUsername: adminUsername,
		AdminPassword: adminPassword,
	}, nil
}
