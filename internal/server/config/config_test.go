package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	assert.Equal(t, ":3000", cfg.Address)
	assert.NotEmpty(t, cfg.DatabaseDSN)
	assert.Empty(t, cfg.SecretKey)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
}

func TestValidate(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	err := cfg.Validate()
	require.Error(t, err, "missing secret must fail validation")

	cfg.SecretKey = "secret"
	assert.NoError(t, cfg.Validate())

	cfg.DatabaseDSN = ""
	assert.Error(t, cfg.Validate())
}

func TestParseEnv(t *testing.T) {
	t.Setenv("ADDRESS", ":9090")
	t.Setenv("DATABASE_DSN", "postgres://env/dsn")
	t.Setenv("SECRET", "env-secret")
	t.Setenv("TOKEN_TTL_MINUTES", "15")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, ":9090", cfg.Address)
	assert.Equal(t, "postgres://env/dsn", cfg.DatabaseDSN)
	assert.Equal(t, "env-secret", cfg.SecretKey)
	assert.Equal(t, 15*time.Minute, cfg.TokenTTL)
}

func TestParseEnv_InvalidTTLIgnored(t *testing.T) {
	t.Setenv("TOKEN_TTL_MINUTES", "not-a-number")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
}

func TestLoadConfig_MissingSecret(t *testing.T) {
	_, err := LoadConfig()
	require.Error(t, err)
}

func TestLoadConfig_SecretFromEnv(t *testing.T) {
	t.Setenv("SECRET", "env-secret")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "env-secret", cfg.SecretKey)
}
