package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment  string
	Server       ServerConfig
	Database     DatabaseConfig
	Mongo        MongoConfig
	Redis        RedisConfig
	RabbitMQ     RabbitMQConfig
	Auth         AuthConfig
	OTP          OTPConfig
	Service      ServiceConfig
	Notification NotificationConfig
	Internal     InternalConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type DatabaseConfig struct {
	Driver          string
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type MongoConfig struct {
	URI      string
	DB       string
	User     string
	Password string
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type RabbitMQConfig struct {
	Host     string
	Port     int
	User     string
	Password string
}

type AuthConfig struct {
	JWTSecret      string
	JWTExpiration  time.Duration
	SessionExpTime time.Duration
}

type OTPConfig struct {
	TTL            time.Duration
	ResendCooldown time.Duration
	MaxAttempts    int
	CodeSecret     string
}

type ServiceConfig struct {
	VerificationPolicy string
	UnverifiedGrace    time.Duration
	TerminalRetention  time.Duration
	SweepInterval      time.Duration
	DefaultLocale      string
}

type NotificationConfig struct {
	Timeout           time.Duration
	GmailClientID     string
	GmailClientSecret string
	GmailRefreshToken string
	GmailSender       string
	TwilioAccountSID  string
	TwilioAuthToken   string
	TwilioFrom        string
}

type InternalConfig struct {
	APIKey string
	APIURL string
}

// Load reads configuration from the environment, loading .env first when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			ReadTimeout:  getEnvAsDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getEnvAsDuration("SERVER_WRITE_TIMEOUT", 15*time.Second),
			IdleTimeout:  getEnvAsDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
		},
		Database: DatabaseConfig{
			Driver:          getEnv("DB_DRIVER", "mysql"),
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnvAsInt("DB_PORT", 3306),
			User:            getEnv("DB_USER", "root"),
			Password:        getEnv("DB_PASSWORD", ""),
			Name:            getEnv("DB_NAME", "home_service"),
			MaxOpenConns:    getEnvAsInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getEnvAsInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getEnvAsDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),
		},
		Mongo: MongoConfig{
			URI:      getEnv("MONGO_URI", "mongodb://localhost:27017"),
			DB:       getEnv("MONGO_DB", "home_service"),
			User:     getEnv("MONGO_USER", ""),
			Password: getEnv("MONGO_PASSWORD", ""),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnvAsInt("REDIS_PORT", 6379),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		RabbitMQ: RabbitMQConfig{
			Host:     getEnv("RABBITMQ_HOST", "localhost"),
			Port:     getEnvAsInt("RABBITMQ_PORT", 5672),
			User:     getEnv("RABBITMQ_USER", "guest"),
			Password: getEnv("RABBITMQ_PASSWORD", "guest"),
		},
		Auth: AuthConfig{
			JWTSecret:      getEnv("JWT_SECRET", "change-me"),
			JWTExpiration:  getEnvAsDuration("JWT_EXPIRATION", 24*time.Hour),
			SessionExpTime: getEnvAsDuration("SESSION_EXPIRATION", 24*time.Hour),
		},
		OTP: OTPConfig{
			TTL:            getEnvAsDuration("OTP_TTL", 10*time.Minute),
			ResendCooldown: getEnvAsDuration("OTP_RESEND_COOLDOWN", 60*time.Second),
			MaxAttempts:    getEnvAsInt("OTP_MAX_ATTEMPTS", 5),
			CodeSecret:     getEnv("CODE_SECRET", "change-me"),
		},
		Service: ServiceConfig{
			VerificationPolicy: getEnv("VERIFICATION_POLICY", "any"),
			UnverifiedGrace:    getEnvAsDuration("UNVERIFIED_GRACE", 30*time.Minute),
			TerminalRetention:  getEnvAsDuration("TERMINAL_RETENTION", 60*24*time.Hour),
			SweepInterval:      getEnvAsDuration("SWEEP_INTERVAL", time.Hour),
			DefaultLocale:      getEnv("DEFAULT_LOCALE", "en"),
		},
		Notification: NotificationConfig{
			Timeout:           getEnvAsDuration("NOTIFICATION_TIMEOUT", 10*time.Second),
			GmailClientID:     getEnv("GMAIL_CLIENT_ID", ""),
			GmailClientSecret: getEnv("GMAIL_CLIENT_SECRET", ""),
			GmailRefreshToken: getEnv("GMAIL_REFRESH_TOKEN", ""),
			GmailSender:       getEnv("GMAIL_SENDER", "me"),
			TwilioAccountSID:  getEnv("TWILIO_ACCOUNT_SID", ""),
			TwilioAuthToken:   getEnv("TWILIO_AUTH_TOKEN", ""),
			TwilioFrom:        getEnv("TWILIO_FROM", ""),
		},
		Internal: InternalConfig{
			APIKey: getEnv("INTERNAL_API_KEY", ""),
			APIURL: getEnv("INTERNAL_API_URL", "http://localhost:8080"),
		},
	}
}

// GetDSN builds the MySQL data source name
func (c *Config) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&loc=UTC&clientFoundRows=true",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
	)
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	if v, err := strconv.Atoi(getEnv(key, "")); err == nil {
		return v
	}
	return fallback
}

// getEnvAsDuration accepts Go duration strings ("90s") or a bare number of seconds.
func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(raw); err == nil {
		return time.Duration(secs) * time.Second
	}
	return fallback
}
