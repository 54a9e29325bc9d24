package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration.
type Config struct {
	// Server
	ServerAddr      string
	ServerPort      int
	Debug           bool
	ShutdownTimeout time.Duration

	// SecretKey is read for parity with the previous deployment; nothing signs with it.
	SecretKey string

	// Database placeholders. Read but never consulted by any handler.
	DBServer   string
	DBName     string
	DBUsername string
	DBPassword string

	// HTTP
	CORS            CORSConfig
	SecurityHeaders SecurityHeadersConfig
	MetricsEnabled  bool
}

// CORSConfig holds cross-origin settings for the dashboard frontend.
type CORSConfig struct {
	AllowedOrigins []string
	MaxAge         int
}

// SecurityHeadersConfig holds the response security header values.
type SecurityHeadersConfig struct {
	Enabled            bool
	CSP                string
	HSTSMaxAge         int
	FrameOptions       string
	ContentTypeOptions string
	ReferrerPolicy     string
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		// Server defaults. FLASK_* names are accepted as fallbacks.
		ServerAddr:      getEnv("SERVER_ADDR", getEnv("FLASK_HOST", "127.0.0.1")),
		ServerPort:      getEnvInt("SERVER_PORT", getEnvInt("FLASK_PORT", 5000)),
		Debug:           getEnvBool("DEBUG", getEnvBool("FLASK_DEBUG", false)),
		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 30*time.Second),

		SecretKey: getEnv("SECRET_KEY", getEnv("FLASK_SECRET_KEY", "change-me")),

		DBServer:   getEnv("DB_SERVER", ""),
		DBName:     getEnv("DB_NAME", ""),
		DBUsername: getEnv("DB_USERNAME", ""),
		DBPassword: getEnv("DB_PASSWORD", ""),

		CORS: CORSConfig{
			AllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS", []string{"*"}),
			MaxAge:         getEnvInt("CORS_MAX_AGE", 300),
		},
		SecurityHeaders: SecurityHeadersConfig{
			Enabled:            getEnvBool("SECURITY_HEADERS_ENABLED", true),
			CSP:                getEnv("SECURITY_CSP", "default-src 'self'"),
			HSTSMaxAge:         getEnvInt("SECURITY_HSTS_MAX_AGE", 0),
			FrameOptions:       getEnv("SECURITY_FRAME_OPTIONS", "DENY"),
			ContentTypeOptions: getEnv("SECURITY_CONTENT_TYPE_OPTIONS", "nosniff"),
			ReferrerPolicy:     getEnv("SECURITY_REFERRER_POLICY", "strict-origin-when-cross-origin"),
		},
		MetricsEnabled: getEnvBool("METRICS_ENABLED", true),
	}

	if cfg.ServerPort < 1 || cfg.ServerPort > 65535 {
		return nil, fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.ServerPort)
	}

	return cfg, nil
}

// Addr returns the host:port the server listens on.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.ServerAddr, c.ServerPort)
}

// HasDatabase returns true if any database placeholder is set.
func (c *Config) HasDatabase() bool {
	return c.DBServer != "" || c.DBName != "" || c.DBUsername != "" || c.DBPassword != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

// getEnvBool accepts 1/0 as well as the strconv.ParseBool spellings.
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
