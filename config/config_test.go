package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	// Clean up environment before tests
	cleanupEnv := func() {
		os.Unsetenv("PLATEWISE_SERVER_PORT")
		os.Unsetenv("PLATEWISE_SERVER_ENVIRONMENT")
		os.Unsetenv("PLATEWISE_SERVER_ALLOWED_ORIGINS")
		os.Unsetenv("PLATEWISE_ENGINE_DEFAULT_LANGUAGE")
		os.Unsetenv("PLATEWISE_ENGINE_FALLBACK_LANGUAGE")
		os.Unsetenv("PLATEWISE_MATCHING_ENABLE_DEBUG_LOGGING")
		os.Unsetenv("PLATEWISE_CACHE_TTL")
		os.Unsetenv("PLATEWISE_CACHE_SWEEP_INTERVAL")
		os.Unsetenv("PLATEWISE_RATELIMIT_PER_IP")
		os.Unsetenv("PLATEWISE_RATELIMIT_BURST")
	}

	t.Run("loads with defaults when no env vars set", func(t *testing.T) {
		cleanupEnv()
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		if cfg.Server.Port != "8080" {
			t.Errorf("Server.Port = %s, want 8080", cfg.Server.Port)
		}
		if cfg.Server.Environment != "development" {
			t.Errorf("Server.Environment = %s, want development", cfg.Server.Environment)
		}
		if cfg.Engine.DefaultLanguage != "en" {
			t.Errorf("Engine.DefaultLanguage = %s, want en", cfg.Engine.DefaultLanguage)
		}
		if cfg.Engine.FallbackLanguage != "en" {
			t.Errorf("Engine.FallbackLanguage = %s, want en", cfg.Engine.FallbackLanguage)
		}
		if cfg.Cache.TTL != 720*time.Hour {
			t.Errorf("Cache.TTL = %v, want 720h", cfg.Cache.TTL)
		}
		if cfg.Cache.SweepInterval != 10*time.Minute {
			t.Errorf("Cache.SweepInterval = %v, want 10m", cfg.Cache.SweepInterval)
		}
		if cfg.RateLimit.PerIP != 20 {
			t.Errorf("RateLimit.PerIP = %v, want 20", cfg.RateLimit.PerIP)
		}
		if cfg.RateLimit.Burst != 40 {
			t.Errorf("RateLimit.Burst = %d, want 40", cfg.RateLimit.Burst)
		}
	})

	t.Run("loads custom values from environment variables", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("PLATEWISE_SERVER_PORT", "9090")
		os.Setenv("PLATEWISE_SERVER_ENVIRONMENT", "production")
		os.Setenv("PLATEWISE_ENGINE_DEFAULT_LANGUAGE", "en-US")
		os.Setenv("PLATEWISE_CACHE_TTL", "24h")
		os.Setenv("PLATEWISE_RATELIMIT_PER_IP", "5")
		os.Setenv("PLATEWISE_RATELIMIT_BURST", "10")
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		if cfg.Server.Port != "9090" {
			t.Errorf("Server.Port = %s, want 9090", cfg.Server.Port)
		}
		if cfg.Server.Environment != "production" {
			t.Errorf("Server.Environment = %s, want production", cfg.Server.Environment)
		}
		if cfg.Engine.DefaultLanguage != "en-US" {
			t.Errorf("Engine.DefaultLanguage = %s, want en-US", cfg.Engine.DefaultLanguage)
		}
		if cfg.Cache.TTL != 24*time.Hour {
			t.Errorf("Cache.TTL = %v, want 24h", cfg.Cache.TTL)
		}
		if cfg.RateLimit.PerIP != 5 {
			t.Errorf("RateLimit.PerIP = %v, want 5", cfg.RateLimit.PerIP)
		}
		if cfg.RateLimit.Burst != 10 {
			t.Errorf("RateLimit.Burst = %d, want 10", cfg.RateLimit.Burst)
		}
	})
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server: ServerConfig{Port: "8080"},
			Engine: EngineConfig{DefaultLanguage: "en"},
			Cache:  CacheConfig{TTL: time.Hour},
		}
	}

	t.Run("validates successfully with all required fields", func(t *testing.T) {
		if err := validate(valid()); err != nil {
			t.Errorf("validate() error = %v, want nil", err)
		}
	})

	t.Run("fails when port is empty", func(t *testing.T) {
		cfg := valid()
		cfg.Server.Port = ""
		if err := validate(cfg); err == nil {
			t.Error("validate() error = nil, want error for empty port")
		}
	})

	t.Run("fails when default language is empty", func(t *testing.T) {
		cfg := valid()
		cfg.Engine.DefaultLanguage = ""
		if err := validate(cfg); err == nil {
			t.Error("validate() error = nil, want error for empty default language")
		}
	})

	t.Run("fails for negative TTL", func(t *testing.T) {
		cfg := valid()
		cfg.Cache.TTL = -time.Hour
		if err := validate(cfg); err == nil {
			t.Error("validate() error = nil, want error for negative TTL")
		}
	})

	t.Run("fails for negative rate limit", func(t *testing.T) {
		cfg := valid()
		cfg.RateLimit.PerIP = -1
		if err := validate(cfg); err == nil {
			t.Error("validate() error = nil, want error for negative rate limit")
		}
	})
}
