package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"auth": map[string]any{
			"jwtSecret": "",
			"otpTTL":    "10m",
		},
		"redis": map[string]any{
			"categoryTTL": "5m",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "AUTH_JWTSECRET", want: "auth.jwtSecret"},
		{envKey: "AUTH_OTPTTL", want: "auth.otpTTL"},
		{envKey: "REDIS_CATEGORYTTL", want: "redis.categoryTTL"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.Redis = &RedisConfig{Addr: "localhost:6379"}

	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	require.NotNil(t, cfg.Auth)
	assert.Equal(t, 7*24*time.Hour, cfg.Auth.JWTExpiry)
	assert.Equal(t, 10, cfg.Auth.BcryptCost)
	assert.Equal(t, 10*time.Minute, cfg.Auth.OTPTTL)
	assert.Equal(t, defaultCategoryTTL, cfg.Redis.CategoryTTL)
	require.NotNil(t, cfg.Seed)
	assert.Equal(t, "+237600000000", cfg.Seed.AdminPhone)
	assert.Equal(t, "admin123", cfg.Seed.AdminPassword)
	assert.Equal(t, "Super Admin", cfg.Seed.AdminName)
	assert.Equal(t, "admin@favelamarket.com", cfg.Seed.AdminEmail)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Auth: &AuthConfig{JWTExpiry: time.Hour, BcryptCost: 4, OTPTTL: time.Minute},
		Seed: &SeedConfig{AdminPhone: "+237699999999"},
	}

	applyDefaults(cfg)

	assert.Equal(t, time.Hour, cfg.Auth.JWTExpiry)
	assert.Equal(t, 4, cfg.Auth.BcryptCost)
	assert.Equal(t, time.Minute, cfg.Auth.OTPTTL)
	assert.Equal(t, "+237699999999", cfg.Seed.AdminPhone)
	assert.Nil(t, cfg.Redis)
}

func TestLoadWithEnv_YAMLEnvAndDotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	yamlContent := `
env:
  env: development
  serviceName: market
http:
  port: 8080
auth:
  jwtSecret: from-yaml
  jwtExpiry: 24h
seed:
  adminName: Yaml Admin
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yamlContent), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("SEED_ADMINNAME=Dotenv Admin\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("SEED_ADMINNAME") })

	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("AUTH_JWTSECRET", "from-env")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, "market", cfg.Env.ServiceName)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	require.NotNil(t, cfg.Auth)
	assert.Equal(t, "from-env", cfg.Auth.JWTSecret)
	assert.Equal(t, 24*time.Hour, cfg.Auth.JWTExpiry)
	require.NotNil(t, cfg.Seed)
	assert.Equal(t, "Dotenv Admin", cfg.Seed.AdminName)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("config")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config.yaml not found")
}

func TestConfig_IsProduction(t *testing.T) {
	cfg := &Config{}
	assert.False(t, cfg.IsProduction())

	cfg.Env.Env = "Production"
	assert.True(t, cfg.IsProduction())
}
