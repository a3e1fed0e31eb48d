package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/vndocs/authcore/internal/pkg/models"
)

func InitConfig(configPath string) *models.Config {
	local := GetEnv("APP_ENV", "local")
	if local == "local" {
		// Load config from file
		err := godotenv.Load(configPath)
		if err != nil {
			log.Println("error loading config from file", err)
		}
	}
	// Create config from environment variables
	return loadConfigFromEnv()
}

func loadConfigFromEnv() *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = GetEnv("APP_NAME", "authcore")
	configs.App.Environment = GetEnv("APP_ENV", "")
	configs.App.Debug = GetEnvAsBool("APP_DEBUG", true)

	// Database config
	configs.Database.Host = GetEnv("DB_HOST", "")
	configs.Database.Port = GetEnvAsInt("DB_PORT", 5432)
	configs.Database.Username = GetEnv("DB_USERNAME", "")
	configs.Database.Password = GetEnv("DB_PASSWORD", "")
	configs.Database.Database = GetEnv("DB_DATABASE", "")
	configs.Database.SSLMode = GetEnv("DB_SSL_MODE", "disable")
	configs.Database.MaxConns = GetEnvAsInt("DB_MAX_CONNS", 0)
	configs.Database.IdleConns = GetEnvAsInt("DB_IDLE_CONNS", 0)

	// Redis config
	configs.Redis.Host = GetEnv("REDIS_HOST", "")
	configs.Redis.Port = GetEnvAsInt("REDIS_PORT", 6379)
	configs.Redis.Password = GetEnv("REDIS_PASSWORD", "")
	configs.Redis.DB = GetEnvAsInt("REDIS_DB", 0)
	configs.Redis.PoolSize = GetEnvAsInt("REDIS_POOL_SIZE", 0)

	// JWT config
	configs.JWT.Secret = GetEnv("JWT_SECRET", "")
	configs.JWT.Issuer = GetEnv("JWT_ISSUER", "")
	configs.JWT.PrivateKeyPath = GetEnv("JWT_PRIVATE_KEY_PATH", "")
	configs.JWT.PublicKeyPath = GetEnv("JWT_PUBLIC_KEY_PATH", "")
	configs.JWT.AccessExpiration = GetEnvAsInt("JWT_ACCESS_EXPIRATION", 15)
	configs.JWT.RefreshExpiration = GetEnvAsInt("JWT_REFRESH_EXPIRATION", 450)

	// OTP config
	configs.OTP.ExpirySeconds = GetEnvAsInt("OTP_EXPIRY_SECONDS", 180)
	configs.OTP.CooldownSeconds = GetEnvAsInt("OTP_COOLDOWN_SECONDS", 60)
	configs.OTP.MaxRequests = GetEnvAsInt("OTP_MAX_REQUESTS", 3)
	configs.OTP.RequestWindowSeconds = GetEnvAsInt("OTP_REQUEST_WINDOW_SECONDS", 600)
	configs.OTP.MaxRetries = GetEnvAsInt("OTP_MAX_RETRIES", 3)
	configs.OTP.BlockSeconds = GetEnvAsInt("OTP_BLOCK_SECONDS", 600)
	configs.OTP.IPDailyLimit = GetEnvAsInt("OTP_IP_DAILY_LIMIT", 100)
	configs.OTP.SignKeyTTLSeconds = GetEnvAsInt("SIGN_KEY_TTL_SECONDS", 600)

	// Mail config
	configs.Mail.Host = GetEnv("MAIL_HOST", "")
	configs.Mail.Port = GetEnvAsInt("MAIL_PORT", 587)
	configs.Mail.Username = GetEnv("MAIL_USERNAME", "")
	configs.Mail.Password = GetEnv("MAIL_PASSWORD", "")
	configs.Mail.FromAddress = GetEnv("MAIL_FROM_ADDRESS", "")
	configs.Mail.Encryption = GetEnv("MAIL_ENCRYPTION", "starttls")

	// Logger config
	configs.Logger.Level = GetEnv("LOG_LEVEL", "info")

	return configs
}

// Helper functions to get environment variables with different types
func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean value for %s, using default: %t", key, defaultValue)
		return defaultValue
	}

	return value
}
