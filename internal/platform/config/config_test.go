package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("SQLITE_PATH", "test.db")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, DriverSQLite, cfg.DBDriver)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, PricingOracle, cfg.PricingMode)
	assert.Equal(t, 3, cfg.LedgerMaxRetries)
	assert.Equal(t, time.Minute, cfg.PriceCacheTTL)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSAllowedOrigins)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("PGSQL_URL", "postgres://localhost/amanah")
	t.Setenv("PRICING_MODE", "CLIENT")
	t.Setenv("LEDGER_MAX_RETRIES", "5")
	t.Setenv("PRICE_CACHE_TTL", "not-a-duration")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, PricingClient, cfg.PricingMode)
	assert.Equal(t, 5, cfg.LedgerMaxRetries)
	assert.Equal(t, time.Minute, cfg.PriceCacheTTL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{name: "postgres without url", cfg: Config{DBDriver: DriverPostgres, PricingMode: PricingOracle}, wantErr: "PGSQL_URL"},
		{name: "unknown driver", cfg: Config{DBDriver: "mysql", PricingMode: PricingOracle}, wantErr: "DB_DRIVER"},
		{name: "unknown pricing", cfg: Config{DBDriver: DriverSQLite, SQLitePath: "x.db", PricingMode: "free"}, wantErr: "PRICING_MODE"},
		{name: "default secret in production", cfg: Config{DBDriver: DriverSQLite, SQLitePath: "x.db", PricingMode: PricingClient, IsProduction: true, JWTSecret: defaultJWTSecret}, wantErr: "JWT_SECRET"},
		{name: "valid", cfg: Config{DBDriver: DriverSQLite, SQLitePath: "x.db", PricingMode: PricingClient}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
