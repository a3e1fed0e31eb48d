package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
	OTP      OTPConfig
	Mail     MailConfig
	Logger   LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// JWTConfig contains token signing configuration. When both key paths are
// set the issuer runs in RS256 mode; otherwise it falls back to HS256 with
// Secret.
type JWTConfig struct {
	Secret            string
	Issuer            string
	PrivateKeyPath    string
	PublicKeyPath     string
	AccessExpiration  int // in minutes
	RefreshExpiration int // in minutes
}

// OTPConfig contains the phone-verification thresholds and windows.
type OTPConfig struct {
	ExpirySeconds        int // code lifetime
	CooldownSeconds      int // gap between requests for one phone
	MaxRequests          int // per-phone requests per window
	RequestWindowSeconds int // per-phone counter window
	MaxRetries           int // wrong codes before lockout
	BlockSeconds         int // lockout duration
	IPDailyLimit         int // per-IP requests per day
	SignKeyTTLSeconds    int // sign key lifetime
}

// MailConfig contains SMTP configuration
type MailConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	Encryption  string
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level string
}
