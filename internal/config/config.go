package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	DB     DBConfig
	JWT    JWTConfig
	S3     S3Config
	Email  EmailConfig
	CORS   CORSConfig
	Log    LogConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// JWTConfig holds session token signing and cookie settings. The session
// token travels in an HTTP-only cookie rather than an Authorization header.
type JWTConfig struct {
	Secret        string        `mapstructure:"secret"`
	SessionExpiry time.Duration `mapstructure:"session_expiry"`
	Issuer        string        `mapstructure:"issuer"`
	CookieName    string        `mapstructure:"cookie_name"`
	CookieSecure  bool          `mapstructure:"cookie_secure"`
}

// S3Config holds object storage settings for logo/stamp/signature uploads.
type S3Config struct {
	Region        string `mapstructure:"region"`
	Bucket        string `mapstructure:"bucket"`
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	MaxFileSizeMB int64  `mapstructure:"max_file_size_mb"`
	PresignExpiry int64  `mapstructure:"presign_expiry"`
}

// EmailConfig holds email delivery settings.
type EmailConfig struct {
	Provider    string `mapstructure:"provider"`
	Region      string `mapstructure:"region"`
	FromAddress string `mapstructure:"from_address"`
	FromName    string `mapstructure:"from_name"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Load reads configuration from environment variables with the GSTBILL_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("GSTBILL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "gstbill")
	v.SetDefault("db.password", "gstbill_secret")
	v.SetDefault("db.name", "gstbill_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// JWT defaults
	v.SetDefault("jwt.secret", "change-me-in-production")
	v.SetDefault("jwt.session_expiry", "720h")
	v.SetDefault("jwt.issuer", "gstbill")
	v.SetDefault("jwt.cookie_name", "gstbill_session")
	v.SetDefault("jwt.cookie_secure", false)

	// S3 defaults
	v.SetDefault("s3.region", "ap-south-1")
	v.SetDefault("s3.bucket", "gstbill-uploads")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.max_file_size_mb", 5)
	v.SetDefault("s3.presign_expiry", 3600)

	// Email defaults
	v.SetDefault("email.provider", "noop")
	v.SetDefault("email.region", "ap-south-1")
	v.SetDefault("email.from_address", "noreply@gstbill.local")
	v.SetDefault("email.from_name", "GSTBill")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000,http://localhost:5173,http://127.0.0.1:5173")

	// Log defaults
	v.SetDefault("log.level", "debug")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":          "GSTBILL_SERVER_PORT",
		"server.read_timeout":  "GSTBILL_SERVER_READ_TIMEOUT",
		"server.write_timeout": "GSTBILL_SERVER_WRITE_TIMEOUT",
		"server.environment":   "GSTBILL_SERVER_ENVIRONMENT",
		"db.host":              "GSTBILL_DB_HOST",
		"db.port":              "GSTBILL_DB_PORT",
		"db.user":              "GSTBILL_DB_USER",
		"db.password":          "GSTBILL_DB_PASSWORD",
		"db.name":              "GSTBILL_DB_NAME",
		"db.sslmode":           "GSTBILL_DB_SSLMODE",
		"db.max_open":          "GSTBILL_DB_MAX_OPEN",
		"db.max_idle":          "GSTBILL_DB_MAX_IDLE",
		"jwt.secret":           "GSTBILL_JWT_SECRET",
		"jwt.session_expiry":   "GSTBILL_JWT_SESSION_EXPIRY",
		"jwt.issuer":           "GSTBILL_JWT_ISSUER",
		"jwt.cookie_name":      "GSTBILL_JWT_COOKIE_NAME",
		"jwt.cookie_secure":    "GSTBILL_JWT_COOKIE_SECURE",
		"s3.region":            "GSTBILL_S3_REGION",
		"s3.bucket":            "GSTBILL_S3_BUCKET",
		"s3.endpoint":          "GSTBILL_S3_ENDPOINT",
		"s3.access_key":        "GSTBILL_S3_ACCESS_KEY",
		"s3.secret_key":        "GSTBILL_S3_SECRET_KEY",
		"s3.max_file_size_mb":  "GSTBILL_S3_MAX_FILE_SIZE_MB",
		"s3.presign_expiry":    "GSTBILL_S3_PRESIGN_EXPIRY",
		"email.provider":       "GSTBILL_EMAIL_PROVIDER",
		"email.region":         "GSTBILL_EMAIL_REGION",
		"email.from_address":   "GSTBILL_EMAIL_FROM_ADDRESS",
		"email.from_name":      "GSTBILL_EMAIL_FROM_NAME",
		"cors.allowed_origins": "GSTBILL_CORS_ALLOWED_ORIGINS",
		"log.level":            "GSTBILL_LOG_LEVEL",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if GSTBILL_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("GSTBILL_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.JWT = JWTConfig{
		Secret:        v.GetString("jwt.secret"),
		SessionExpiry: v.GetDuration("jwt.session_expiry"),
		Issuer:        v.GetString("jwt.issuer"),
		CookieName:    v.GetString("jwt.cookie_name"),
		CookieSecure:  v.GetBool("jwt.cookie_secure"),
	}
	cfg.S3 = S3Config{
		Region:        v.GetString("s3.region"),
		Bucket:        v.GetString("s3.bucket"),
		Endpoint:      v.GetString("s3.endpoint"),
		AccessKey:     v.GetString("s3.access_key"),
		SecretKey:     v.GetString("s3.secret_key"),
		MaxFileSizeMB: v.GetInt64("s3.max_file_size_mb"),
		PresignExpiry: v.GetInt64("s3.presign_expiry"),
	}
	cfg.Email = EmailConfig{
		Provider:    v.GetString("email.provider"),
		Region:      v.GetString("email.region"),
		FromAddress: v.GetString("email.from_address"),
		FromName:    v.GetString("email.from_name"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{AllowedOrigins: corsOrigins}

	cfg.Log = LogConfig{Level: v.GetString("log.level")}

	return cfg, nil
}
