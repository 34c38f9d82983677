package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	envPort                  = "PORT"
	envServerReadTimeout     = "SERVER_READ_TIMEOUT"
	envServerWriteTimeout    = "SERVER_WRITE_TIMEOUT"
	envServerShutdownTimeout = "SERVER_SHUTDOWN_TIMEOUT"
	envDBHost                = "DB_HOST"
	envDBPort                = "DB_PORT"
	envDBName                = "DB_NAME"
	envDBUser                = "DB_USER"
	envDBPassword            = "DB_PASSWORD"
	envDBSSLMode             = "DB_SSL_MODE"
	envDBMaxConns            = "DB_MAX_CONNS"
	envDBMinConns            = "DB_MIN_CONNS"
	envAWSRegion             = "REGION"
	envAWSAccessKeyID        = "AWS_ACCESS_KEY_ID"
	envAWSSecretAccessKey    = "AWS_SECRET_ACCESS_KEY"
	envUploadBucket          = "UPLOAD_BUCKET"
	envJWTSecret             = "JWT_SECRET"
	envJWTExpiry             = "JWT_EXPIRY_MINUTES"
	envAdminUsername         = "ADMIN_USERNAME"
	envAdminPasswordHash     = "ADMIN_PASSWORD_HASH"
	envMailAPIKey            = "MAIL_API_KEY"
	envMailFrom              = "MAIL_FROM"
	envListenChannel         = "LISTEN_CHANNEL"
	envRefreshDebounce       = "REFRESH_DEBOUNCE_MS"
)

const (
	defaultServerPort         = "8080"
	defaultServerReadTimeout  = 10 * time.Second
	defaultServerWriteTimeout = 10 * time.Second
	defaultServerShutdown     = 10 * time.Second
	defaultDBHost             = "localhost"
	defaultDBPort             = 5432
	defaultDBName             = "modelhub"
	defaultDBUser             = "modelhub_app"
	defaultDBSSLMode          = "disable"
	defaultDBMaxConns         = 25
	defaultDBMinConns         = 5
	defaultJWTExpiry          = 60 * time.Minute
	defaultAdminUsername      = "admin"
	defaultMailFrom           = "contact@perfectmodels.ga"
	defaultListenChannel      = "data_changed"
	defaultRefreshDebounce    = 300 * time.Millisecond
	minJWTSecretLength        = 32

	errDBPasswordRequiredFmt   = "DB_PASSWORD must be set"
	errJWTSecretRequiredFmt    = "JWT_SECRET must be set"
	errJWTSecretMinLengthFmt   = "JWT_SECRET must be at least %d characters"
	errInvalidConfigurationFmt = "invalid configuration: %w"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	AWS      AWSConfig
	JWT      JWTConfig
	Admin    AdminConfig
	Mail     MailConfig
	Store    StoreConfig
}

// AdminConfig holds the back-office login. An empty PasswordHash disables
// admin login altogether.
type AdminConfig struct {
	Username     string
	PasswordHash string
}

type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

type DatabaseConfig struct {
	Host     string
	Port     int
	Database string
	User     string
	Password string
	SSLMode  string
	MaxConns int
	MinConns int
}

type AWSConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	UploadBucket    string
}

type JWTConfig struct {
	Secret         string
	ExpiryDuration time.Duration
}

// MailConfig carries the outbound email provider credentials. An empty APIKey
// switches the mailer into its silent no-op mode.
type MailConfig struct {
	APIKey string
	From   string
}

type StoreConfig struct {
	ListenChannel   string
	RefreshDebounce time.Duration
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d dbname=%s user=%s password=%s sslmode=%s",
		c.Host, c.Port, c.Database, c.User, c.Password, c.SSLMode,
	)
}

// Load reads configuration from the environment, applying defaults and
// validating the required secrets.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv(envPort, defaultServerPort),
			ReadTimeout:     getDuration(envServerReadTimeout, defaultServerReadTimeout),
			WriteTimeout:    getDuration(envServerWriteTimeout, defaultServerWriteTimeout),
			ShutdownTimeout: getDuration(envServerShutdownTimeout, defaultServerShutdown),
		},
		Database: DatabaseConfig{
			Host:     getEnv(envDBHost, defaultDBHost),
			Port:     getInt(envDBPort, defaultDBPort),
			Database: getEnv(envDBName, defaultDBName),
			User:     getEnv(envDBUser, defaultDBUser),
			Password: os.Getenv(envDBPassword),
			SSLMode:  getEnv(envDBSSLMode, defaultDBSSLMode),
			MaxConns: getInt(envDBMaxConns, defaultDBMaxConns),
			MinConns: getInt(envDBMinConns, defaultDBMinConns),
		},
		AWS: AWSConfig{
			Region:          os.Getenv(envAWSRegion),
			AccessKeyID:     os.Getenv(envAWSAccessKeyID),
			SecretAccessKey: os.Getenv(envAWSSecretAccessKey),
			UploadBucket:    os.Getenv(envUploadBucket),
		},
		JWT: JWTConfig{
			Secret:         os.Getenv(envJWTSecret),
			ExpiryDuration: getMinutes(envJWTExpiry, defaultJWTExpiry),
		},
		Admin: AdminConfig{
			Username:     getEnv(envAdminUsername, defaultAdminUsername),
			PasswordHash: os.Getenv(envAdminPasswordHash),
		},
		Mail: MailConfig{
			APIKey: os.Getenv(envMailAPIKey),
			From:   getEnv(envMailFrom, defaultMailFrom),
		},
		Store: StoreConfig{
			ListenChannel:   getEnv(envListenChannel, defaultListenChannel),
			RefreshDebounce: getMillis(envRefreshDebounce, defaultRefreshDebounce),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf(errInvalidConfigurationFmt, err)
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf(errDBPasswordRequiredFmt)
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf(errJWTSecretRequiredFmt)
	}
	if len(c.JWT.Secret) < minJWTSecretLength {
		return fmt.Errorf(errJWTSecretMinLengthFmt, minJWTSecretLength)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func getMinutes(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return time.Duration(n) * time.Minute
		}
	}
	return fallback
}

func getMillis(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return time.Duration(n) * time.Millisecond
		}
	}
	return fallback
}
