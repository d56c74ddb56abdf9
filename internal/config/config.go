// Package config provides configuration management for the greeting service.
package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rateLimit"`
	Log       LogConfig       `yaml:"log"`
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port    string `yaml:"port"`
	Mode    string `yaml:"mode"` // Gin mode: "debug", "release" or "test"
	Version string `yaml:"version"`

	// TrustedProxies lists proxy IPs or CIDRs whose forwarding headers are
	// honored when resolving the client IP. Empty means none are trusted.
	TrustedProxies []string `yaml:"trustedProxies"`
}

// CORSConfig holds cross-origin configuration
type CORSConfig struct {
	AllowOrigins []string `yaml:"allowOrigins"`
}

// RateLimitConfig holds the per-IP request limit
type RateLimitConfig struct {
	Limit  int64         `yaml:"limit"`
	Period time.Duration `yaml:"period"`
}

// LogConfig holds request logging configuration
type LogConfig struct {
	Requests bool `yaml:"requests"`
}

// Default returns the configuration used when nothing is overridden
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:    "8080",
			Mode:    gin.ReleaseMode,
			Version: "1.0.0",
		},
		CORS: CORSConfig{
			AllowOrigins: []string{"*"},
		},
		RateLimit: RateLimitConfig{
			Limit:  100,
			Period: time.Minute,
		},
		Log: LogConfig{
			Requests: true,
		},
	}
}

// Load loads configuration from the YAML file named by CONFIG_FILE, if any,
// then applies environment variable overrides
func Load() (*Config, error) {
	cfg := Default()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	cfg.Server.Port = getEnv("PORT", cfg.Server.Port)
	cfg.Server.Mode = getEnv("GIN_MODE", cfg.Server.Mode)
	cfg.Server.Version = getEnv("APP_VERSION", cfg.Server.Version)
	cfg.Server.TrustedProxies = getEnvAsList("TRUSTED_PROXIES", cfg.Server.TrustedProxies)
	cfg.CORS.AllowOrigins = getEnvAsList("CORS_ALLOW_ORIGINS", cfg.CORS.AllowOrigins)
	cfg.RateLimit.Limit = getEnvAsInt64("RATE_LIMIT", cfg.RateLimit.Limit)
	cfg.RateLimit.Period = getEnvAsDuration("RATE_LIMIT_PERIOD", cfg.RateLimit.Period)
	cfg.Log.Requests = getEnvAsBool("LOG_REQUESTS", cfg.Log.Requests)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadFile overlays the YAML file at path onto c
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("PORT must not be empty")
	}
	switch c.Server.Mode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		return fmt.Errorf("GIN_MODE must be one of debug, release or test, got %q", c.Server.Mode)
	}
	for _, proxy := range c.Server.TrustedProxies {
		if net.ParseIP(proxy) != nil {
			continue
		}
		if _, _, err := net.ParseCIDR(proxy); err != nil {
			return fmt.Errorf("TRUSTED_PROXIES entry %q is not an IP or CIDR", proxy)
		}
	}
	if len(c.CORS.AllowOrigins) == 0 {
		return errors.New("CORS_ALLOW_ORIGINS must list at least one origin")
	}
	for _, origin := range c.CORS.AllowOrigins {
		if origin != "*" && !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
			return fmt.Errorf("CORS origin %q must be \"*\" or start with http:// or https://", origin)
		}
	}
	if c.RateLimit.Limit <= 0 {
		return errors.New("RATE_LIMIT must be positive")
	}
	if c.RateLimit.Period <= 0 {
		return errors.New("RATE_LIMIT_PERIOD must be positive")
	}
	return nil
}

// Addr returns the listen address for the server
func (s *ServerConfig) Addr() string {
	return ":" + s.Port
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvAsInt64 gets an environment variable as an integer or returns a default value
func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseInt(valueStr, 10, 64)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsBool gets an environment variable as a boolean or returns a default value
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration gets an environment variable as a duration or returns a default value
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsList gets a comma separated environment variable or returns a default value
func getEnvAsList(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	var values []string
	for _, v := range strings.Split(valueStr, ",") {
		if v = strings.TrimSpace(v); v != "" {
			values = append(values, v)
		}
	}
	if len(values) == 0 {
		return defaultValue
	}
	return values
}
