package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	origFee := os.Getenv("BORROW_FEE_PER_DAY")
	defer os.Setenv("BORROW_FEE_PER_DAY", origFee)

	os.Setenv("BORROW_FEE_PER_DAY", "2500")
	os.Setenv("APP_SEED_DEMO", "true")
	os.Setenv("MINIO_USE_SSL", "true")
	defer os.Unsetenv("APP_SEED_DEMO")
	defer os.Unsetenv("MINIO_USE_SSL")

	cfg := Load()

	assert.Equal(t, int64(2500), cfg.FeePerDay)
	assert.True(t, cfg.SeedDemo)
	assert.True(t, cfg.MinIO.UseSSL)
}

func TestLoadDefaults(t *testing.T) {
	os.Unsetenv("BORROW_FEE_PER_DAY")
	os.Unsetenv("APP_SEED_DEMO")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, int64(1000), cfg.FeePerDay)
	assert.False(t, cfg.SeedDemo)
	assert.Empty(t, cfg.MinIO.Endpoint)
}

func TestGetEnv(t *testing.T) {
	key := "TEST_ENV_VAR"
	os.Setenv(key, "value")
	defer os.Unsetenv(key)

	assert.Equal(t, "value", getEnv(key, "default"))
	assert.Equal(t, "default", getEnv("NON_EXISTENT", "default"))
}

func TestGetEnvBool(t *testing.T) {
	key := "TEST_BOOL_VAR"

	os.Setenv(key, "true")
	assert.True(t, getEnvBool(key, false))

	os.Setenv(key, "false")
	assert.False(t, getEnvBool(key, true))

	os.Setenv(key, "invalid")
	assert.True(t, getEnvBool(key, true))

	os.Unsetenv(key)
	assert.True(t, getEnvBool(key, true))
}

func TestGetEnvInt(t *testing.T) {
	key := "TEST_INT_VAR"

	os.Setenv(key, "123")
	assert.Equal(t, 123, getEnvInt(key, 0))

	os.Setenv(key, "invalid")
	assert.Equal(t, 10, getEnvInt(key, 10))

	os.Unsetenv(key)
	assert.Equal(t, 10, getEnvInt(key, 10))
}
