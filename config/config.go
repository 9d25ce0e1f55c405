package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Engine    EngineConfig
	Matching  MatchingConfig
	Cache     CacheConfig
	RateLimit RateLimitConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// EngineConfig holds parsing engine configuration
type EngineConfig struct {
	DefaultLanguage  string `mapstructure:"default_language"`
	FallbackLanguage string `mapstructure:"fallback_language"`
}

// MatchingConfig holds step-ingredient matching configuration
type MatchingConfig struct {
	EnableDebugLogging      bool `mapstructure:"enable_debug_logging"`
	IncludeExtraInformation bool `mapstructure:"include_extra_information"`
}

// CacheConfig holds cache-related configuration
type CacheConfig struct {
	TTL           time.Duration `mapstructure:"ttl"`
	SweepInterval time.Duration `mapstructure:"sweep_interval"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	PerIP float64 `mapstructure:"per_ip"`
	Burst int     `mapstructure:"burst"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/platewise/")

	// Environment variable settings
	v.SetEnvPrefix("PLATEWISE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"app://*", "http://localhost:*"})

	// Engine defaults
	v.SetDefault("engine.default_language", "en")
	v.SetDefault("engine.fallback_language", "en")

	// Matching defaults
	v.SetDefault("matching.enable_debug_logging", false)
	v.SetDefault("matching.include_extra_information", false)

	// Cache defaults
	v.SetDefault("cache.ttl", "720h") // 30 days
	v.SetDefault("cache.sweep_interval", "10m")

	// Rate limit defaults
	v.SetDefault("ratelimit.per_ip", 20)
	v.SetDefault("ratelimit.burst", 40)
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}

	if config.Engine.DefaultLanguage == "" {
		return fmt.Errorf("engine default language is required")
	}

	if config.Cache.TTL < 0 {
		return fmt.Errorf("cache TTL must not be negative, got: %s", config.Cache.TTL)
	}

	if config.RateLimit.PerIP < 0 {
		return fmt.Errorf("rate limit per IP must not be negative, got: %f", config.RateLimit.PerIP)
	}

	return nil
}
