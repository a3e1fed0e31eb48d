package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("TEST_STRING_KEY", "value")

	assert.Equal(t, "value", GetEnv("TEST_STRING_KEY", "fallback"))
	assert.Equal(t, "fallback", GetEnv("TEST_MISSING_KEY", "fallback"))
}

func TestGetEnvAsInt(t *testing.T) {
	t.Setenv("TEST_INT_KEY", "42")
	t.Setenv("TEST_BAD_INT_KEY", "not-a-number")

	assert.Equal(t, 42, GetEnvAsInt("TEST_INT_KEY", 7))
	assert.Equal(t, 7, GetEnvAsInt("TEST_MISSING_KEY", 7))
	assert.Equal(t, 7, GetEnvAsInt("TEST_BAD_INT_KEY", 7))
}

func TestGetEnvAsBool(t *testing.T) {
	t.Setenv("TEST_BOOL_KEY", "true")
	t.Setenv("TEST_BAD_BOOL_KEY", "maybe")

	assert.True(t, GetEnvAsBool("TEST_BOOL_KEY", false))
	assert.False(t, GetEnvAsBool("TEST_MISSING_KEY", false))
	assert.True(t, GetEnvAsBool("TEST_BAD_BOOL_KEY", true))
}

func TestInitConfig_Defaults(t *testing.T) {
	// Point at a nonexistent env file so only process env and defaults apply.
	cfg := InitConfig(filepath.Join(t.TempDir(), "missing.env"))

	assert.Equal(t, "authcore", cfg.App.Name)
	assert.Equal(t, 15, cfg.JWT.AccessExpiration)
	assert.Equal(t, 450, cfg.JWT.RefreshExpiration)
	assert.Equal(t, 180, cfg.OTP.ExpirySeconds)
	assert.Equal(t, 60, cfg.OTP.CooldownSeconds)
	assert.Equal(t, 3, cfg.OTP.MaxRequests)
	assert.Equal(t, 600, cfg.OTP.RequestWindowSeconds)
	assert.Equal(t, 3, cfg.OTP.MaxRetries)
	assert.Equal(t, 600, cfg.OTP.BlockSeconds)
	assert.Equal(t, 100, cfg.OTP.IPDailyLimit)
	assert.Equal(t, "starttls", cfg.Mail.Encryption)
	assert.Equal(t, "info", cfg.Logger.Level)
}

func TestInitConfig_EnvFile(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	content := "JWT_ISSUER=authcore-file\nOTP_EXPIRY_SECONDS=240\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0o600))

	t.Setenv("APP_ENV", "local")
	// godotenv does not override variables already set in the process, so
	// clear the keys the file is expected to provide. t.Setenv first so the
	// original values are restored when the test ends.
	t.Setenv("JWT_ISSUER", "")
	t.Setenv("OTP_EXPIRY_SECONDS", "")
	os.Unsetenv("JWT_ISSUER")
	os.Unsetenv("OTP_EXPIRY_SECONDS")

	cfg := InitConfig(envFile)

	assert.Equal(t, "authcore-file", cfg.JWT.Issuer)
	assert.Equal(t, 240, cfg.OTP.ExpirySeconds)
}
