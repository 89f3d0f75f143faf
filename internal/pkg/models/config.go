package models

// Config holds all configuration for the application
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NSQ      NSQConfig
	JWT      JWTConfig
	Auth     AuthConfig
	Logger   LoggerConfig
}

// AppConfig holds application-level configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig holds PostgreSQL configuration
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

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NSQConfig holds NSQ producer configuration
type NSQConfig struct {
	Address  string
	SMSTopic string
}

// JWTConfig holds token signing configuration
type JWTConfig struct {
	Secret            string
	Expiration        int // access token lifetime in minutes
	RefreshExpiration int // refresh token lifetime in minutes
	Issuer            string
}

// AuthConfig holds OTP and registration policy configuration
type AuthConfig struct {
	// OTPSentinel, when non-empty, replaces the random code for constrained
	// deployments without a delivery channel.
	OTPSentinel string

	// ForcePasswordReset marks lazily provisioned accounts as requiring a
	// password change on first login.
	ForcePasswordReset bool

	// EchoCode returns the issued code in the registration response. Never
	// enabled in production.
	EchoCode bool
}

// LoggerConfig holds logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
