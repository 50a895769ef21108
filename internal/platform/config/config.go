package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Store drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Pricing modes.
const (
	// PricingOracle re-fetches the execution price server-side and ignores the client price.
	PricingOracle = "oracle"
	// PricingClient trusts the price sent with the order.
	PricingClient = "client"
)

// Config holds application configuration.
type Config struct {
	DBDriver      string
	DatabaseURL   string
	SQLitePath    string
	Port          string
	IsProduction  bool
	EnableDBCheck bool
	RunMigrations bool

	JWTSecret string
	JWTIssuer string

	CORSAllowedOrigins []string
	RateLimit          string

	PosthogAPIKey   string
	PosthogEndpoint string
	MetricsEnabled  bool

	PricingMode        string
	PriceCacheTTL      time.Duration
	PriceOracleTimeout time.Duration
	YahooBaseURL       string

	LedgerMaxRetries int
	HalalCacheTTL    time.Duration
	HalalSeedFile    string

	ShutdownTimeout time.Duration
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	cfg := &Config{
		DBDriver:           strings.ToLower(v.GetString("DB_DRIVER")),
		DatabaseURL:        v.GetString("PGSQL_URL"),
		SQLitePath:         v.GetString("SQLITE_PATH"),
		Port:               v.GetString("PORT"),
		IsProduction:       v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:      v.GetBool("ENABLE_DB_CHECK"),
		RunMigrations:      v.GetBool("RUN_MIGRATIONS"),
		JWTSecret:          v.GetString("JWT_SECRET"),
		JWTIssuer:          v.GetString("JWT_ISSUER"),
		CORSAllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		RateLimit:          v.GetString("RATE_LIMIT"),
		PosthogAPIKey:      v.GetString("POSTHOG_API_KEY"),
		PosthogEndpoint:    v.GetString("POSTHOG_ENDPOINT"),
		MetricsEnabled:     v.GetBool("METRICS_ENABLED"),
		PricingMode:        strings.ToLower(v.GetString("PRICING_MODE")),
		YahooBaseURL:       v.GetString("YAHOO_BASE_URL"),
		LedgerMaxRetries:   v.GetInt("LEDGER_MAX_RETRIES"),
		HalalSeedFile:      v.GetString("HALAL_SEED_FILE"),
	}

	cfg.PriceCacheTTL = durationOrDefault(v, "PRICE_CACHE_TTL", time.Minute)
	cfg.PriceOracleTimeout = durationOrDefault(v, "PRICE_ORACLE_TIMEOUT", 8*time.Second)
	cfg.HalalCacheTTL = durationOrDefault(v, "HALAL_CACHE_TTL", time.Minute)
	cfg.ShutdownTimeout = durationOrDefault(v, "SHUTDOWN_TIMEOUT", 10*time.Second)

	if cfg.Port == "" {
		cfg.Port = "8080"
		slog.Warn("PORT not set, defaulting", slog.String("port", cfg.Port))
	}
	if cfg.LedgerMaxRetries < 1 {
		slog.Warn("LEDGER_MAX_RETRIES must be at least 1, defaulting to 3", slog.Int("value", cfg.LedgerMaxRetries))
		cfg.LedgerMaxRetries = 3
	}
	if cfg.JWTSecret == defaultJWTSecret {
		slog.Warn("JWT_SECRET not set. Using default insecure key.")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

const defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"

func setDefaults(v *viper.Viper) {
	v.SetDefault("DB_DRIVER", DriverPostgres)
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("SQLITE_PATH", "amanah.db")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("RUN_MIGRATIONS", true)
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("JWT_ISSUER", "")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("RATE_LIMIT", "120-M")
	v.SetDefault("POSTHOG_API_KEY", "")
	v.SetDefault("POSTHOG_ENDPOINT", "")
	v.SetDefault("METRICS_ENABLED", true)
	v.SetDefault("PRICING_MODE", PricingOracle)
	v.SetDefault("PRICE_CACHE_TTL", "60s")
	v.SetDefault("PRICE_ORACLE_TIMEOUT", "8s")
	v.SetDefault("YAHOO_BASE_URL", "https://query2.finance.yahoo.com")
	v.SetDefault("LEDGER_MAX_RETRIES", 3)
	v.SetDefault("HALAL_CACHE_TTL", "60s")
	v.SetDefault("HALAL_SEED_FILE", "")
	v.SetDefault("SHUTDOWN_TIMEOUT", "10s")
}

// Validate rejects settings the service cannot run with.
func (c *Config) Validate() error {
	switch c.DBDriver {
	case DriverPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("PGSQL_URL is required when DB_DRIVER=%s", DriverPostgres)
		}
	case DriverSQLite:
		if c.SQLitePath == "" {
			return fmt.Errorf("SQLITE_PATH is required when DB_DRIVER=%s", DriverSQLite)
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	switch c.PricingMode {
	case PricingOracle, PricingClient:
	default:
		return fmt.Errorf("unsupported PRICING_MODE %q", c.PricingMode)
	}
	if c.IsProduction && c.JWTSecret == defaultJWTSecret {
		return fmt.Errorf("JWT_SECRET must be set in production")
	}
	return nil
}

func durationOrDefault(v *viper.Viper, key string, def time.Duration) time.Duration {
	raw := v.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		if raw != "" {
			slog.Warn("Invalid duration, using default", slog.String("key", key), slog.String("value", raw), slog.Duration("default", def))
		}
		return def
	}
	return d
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
