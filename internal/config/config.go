package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server         ServerConfig
	Log            LogConfig
	OpenWeatherMap OpenWeatherMapConfig
	RateLimit      RateLimitConfig
	Widget         WidgetConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port          int
	GinMode       string // debug, release, test
	SecureCookies bool   // set when clients reach the server over TLS
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, text
}

// OpenWeatherMapConfig holds the upstream weather API settings.
// APIKey is required and must only ever come from the environment or a config file.
type OpenWeatherMapConfig struct {
	APIKey  string
	BaseURL string
	IconURL string
	Timeout time.Duration
}

// RateLimitConfig bounds outbound calls to the weather API.
// An RPS of zero disables limiting.
type RateLimitConfig struct {
	RPS   float64
	Burst int
}

// WidgetConfig holds settings for browser widget sessions.
// A MaxSessions of zero leaves the session count unbounded.
type WidgetConfig struct {
	SessionTTL  time.Duration
	MaxSessions int
}

// Load reads configuration from .env, config file and environment variables
func Load() (*Config, error) {
	// A missing .env file is fine, real deployments set the environment directly
	_ = godotenv.Load()

	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("$HOME/.skycast")

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.ginmode", "release")
	v.SetDefault("server.securecookies", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("openweathermap.apikey", "")
	v.SetDefault("openweathermap.baseurl", "https://api.openweathermap.org/data/2.5")
	v.SetDefault("openweathermap.iconurl", "https://openweathermap.org/img/wn")
	v.SetDefault("openweathermap.timeout", 10*time.Second)
	v.SetDefault("ratelimit.rps", 1.0)
	v.SetDefault("ratelimit.burst", 5)
	v.SetDefault("widget.sessionttl", 30*time.Minute)
	v.SetDefault("widget.maxsessions", 10000)

	// SKYCAST_OPENWEATHERMAP_APIKEY overrides openweathermap.apikey
	v.SetEnvPrefix("SKYCAST")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// It's okay if config file doesn't exist, we have defaults
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// Validate reports the first setting that would prevent the service from starting
func (c *Config) Validate() error {
	if strings.TrimSpace(c.OpenWeatherMap.APIKey) == "" {
		return errors.New("openweathermap.apikey is required (set SKYCAST_OPENWEATHERMAP_APIKEY)")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d is out of range", c.Server.Port)
	}
	if c.OpenWeatherMap.Timeout <= 0 {
		return fmt.Errorf("openweathermap.timeout must be positive, got %s", c.OpenWeatherMap.Timeout)
	}
	if c.RateLimit.RPS < 0 {
		return fmt.Errorf("ratelimit.rps must not be negative, got %v", c.RateLimit.RPS)
	}
	if c.RateLimit.RPS > 0 && c.RateLimit.Burst < 1 {
		return fmt.Errorf("ratelimit.burst must be at least 1 when rate limiting is enabled, got %d", c.RateLimit.Burst)
	}
	if c.Widget.MaxSessions < 0 {
		return fmt.Errorf("widget.maxsessions must not be negative, got %d", c.Widget.MaxSessions)
	}
	return nil
}

// GetServerAddr returns the server address in the format ":port"
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

// NewLogger creates a new slog.Logger based on the configuration
func (c *Config) NewLogger() *slog.Logger {
	var level slog.Level
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var handler slog.Handler
	switch strings.ToLower(c.Log.Format) {
	case "json":
		handler = slog.NewJSONHandler(os.Stdout, opts)
	default: // "text" or anything else
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
