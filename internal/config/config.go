package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Mobile Safari identity presented to YouTube on outbound requests. The set
// of formats YouTube serves depends on the client it thinks it is talking to.
const DefaultUserAgent = "Mozilla/5.0 (iPhone; CPU iPhone OS 14_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/14.0 Mobile/15E148 Safari/604.1"

type Config struct {
	Server    ServerConfig
	Extractor ExtractorConfig
	CORS      CORSConfig
}

type ServerConfig struct {
	Host     string
	Port     int
	Debug    bool
	LogLevel string
}

type ExtractorConfig struct {
	// Backend selects the extraction implementation: "ytdlp" or "native".
	Backend   string
	YtdlpPath string
	MaxHeight int
	UserAgent string
	Timeout   time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
	MaxAge         int
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found, using environment variables")
	}

	cfg := &Config{}

	// Server configuration
	cfg.Server.Host = getEnv("HOST", "0.0.0.0")
	cfg.Server.Port = getEnvInt("PORT", 5000)
	cfg.Server.Debug = getEnvBool("DEBUG", false)
	cfg.Server.LogLevel = getEnv("LOG_LEVEL", "info")

	// Extractor configuration
	cfg.Extractor.Backend = getEnv("EXTRACTOR_BACKEND", "ytdlp")
	if cfg.Extractor.Backend != "ytdlp" && cfg.Extractor.Backend != "native" {
		return nil, fmt.Errorf("invalid EXTRACTOR_BACKEND: %s", cfg.Extractor.Backend)
	}
	cfg.Extractor.YtdlpPath = getEnv("YTDLP_PATH", "yt-dlp")
	cfg.Extractor.MaxHeight = getEnvInt("MAX_HEIGHT", 720)
	cfg.Extractor.UserAgent = getEnv("USER_AGENT", DefaultUserAgent)
	timeout, err := time.ParseDuration(getEnv("EXTRACT_TIMEOUT", "60s"))
	if err != nil {
		return nil, fmt.Errorf("invalid EXTRACT_TIMEOUT: %w", err)
	}
	cfg.Extractor.Timeout = timeout

	// CORS configuration: cross-origin requests from any origin on all routes
	cfg.CORS.AllowedOrigins = getEnvStringSlice("CORS_ALLOWED_ORIGINS", []string{"*"})
	cfg.CORS.AllowedMethods = getEnvStringSlice("CORS_ALLOWED_METHODS", []string{
		"GET", "POST", "OPTIONS",
	})
	cfg.CORS.AllowedHeaders = getEnvStringSlice("CORS_ALLOWED_HEADERS", []string{
		"Origin", "Content-Type", "Accept",
	})
	cfg.CORS.MaxAge = getEnvInt("CORS_MAX_AGE", 3600)

	return cfg, nil
}

// Addr returns the host:port pair the server listens on.
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvStringSlice(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		return strings.Split(strings.TrimSpace(value), ",")
	}
	return defaultValue
}
