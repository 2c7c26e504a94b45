package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"anoa.com/casetrack/pkg/database"
	"github.com/joho/godotenv"
)

const Version = "1.0.0"

type Config struct {
	AppEnv         string
	Port           string
	AllowedOrigins []string

	DBDriver    string
	DatabaseURL string
	RedisURL    string

	MeiliSearchHost string
	MeiliMasterKey  string

	JWTSecret string
	JWTTTL    time.Duration

	LoginMaxAttempts   int
	LoginLockoutWindow time.Duration

	GeocoderURL     string
	GeocoderTimeout time.Duration
	GeocodeCacheTTL time.Duration

	ReportStrictDates bool

	SeedAdminEmail    string
	SeedAdminPassword string
}

func Load() (*Config, error) {
	// Don't fail if .env doesn't exist (might be prod env vars)
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:         getEnv("APP_ENV", "development"),
		Port:           getEnv("PORT", "8080"),
		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:5173")),

		DBDriver:    getEnv("DB_DRIVER", database.DriverPostgres),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		RedisURL:    os.Getenv("REDIS_URL"),

		MeiliSearchHost: os.Getenv("MEILISEARCH_HOST"),
		MeiliMasterKey:  os.Getenv("MEILI_MASTER_KEY"),

		JWTSecret: getEnv("JWT_SECRET", "please-change-me"),

		GeocoderURL: getEnv("GEOCODER_URL", "https://nominatim.openstreetmap.org"),

		SeedAdminEmail:    os.Getenv("SEED_ADMIN_EMAIL"),
		SeedAdminPassword: os.Getenv("SEED_ADMIN_PASSWORD"),
	}

	if cfg.DatabaseURL == "" {
		switch cfg.DBDriver {
		case database.DriverSQLite:
			cfg.DatabaseURL = "casetrack.db"
		case database.DriverPostgres:
			cfg.DatabaseURL = database.PostgresDSN(
				getEnv("DB_HOST", "localhost"),
				getEnv("DB_USER", "postgres"),
				os.Getenv("DB_PASS"),
				getEnv("DB_NAME", "casetrack"),
				getEnv("DB_PORT", "5432"),
			)
		default:
			return nil, fmt.Errorf("DATABASE_URL is required for DB_DRIVER=%s", cfg.DBDriver)
		}
	}

	var err error
	if cfg.JWTTTL, err = parseDuration("JWT_TTL", "8h"); err != nil {
		return nil, err
	}
	if cfg.LoginLockoutWindow, err = parseDuration("LOGIN_LOCKOUT_WINDOW", "15m"); err != nil {
		return nil, err
	}
	if cfg.GeocoderTimeout, err = parseDuration("GEOCODER_TIMEOUT", "8s"); err != nil {
		return nil, err
	}
	if cfg.GeocodeCacheTTL, err = parseDuration("GEOCODE_CACHE_TTL", "24h"); err != nil {
		return nil, err
	}

	cfg.LoginMaxAttempts, err = strconv.Atoi(getEnv("LOGIN_MAX_ATTEMPTS", "5"))
	if err != nil {
		return nil, fmt.Errorf("invalid LOGIN_MAX_ATTEMPTS: %w", err)
	}

	cfg.ReportStrictDates, err = strconv.ParseBool(getEnv("REPORT_STRICT_DATES", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid REPORT_STRICT_DATES: %w", err)
	}

	return cfg, nil
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}

func parseDuration(key, fallback string) (time.Duration, error) {
	d, err := time.ParseDuration(getEnv(key, fallback))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
