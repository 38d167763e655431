package config

import (
	"context"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
)

func loadFrom(t *testing.T, env map[string]string) *Config {
	t.Helper()
	var cfg Config
	err := envconfig.ProcessWith(context.Background(), &envconfig.Config{
		Target:   &cfg,
		Lookuper: envconfig.MapLookuper(env),
	})
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	return &cfg
}

func TestConfig_Defaults(t *testing.T) {
	cfg := loadFrom(t, map[string]string{})

	if cfg.Port != "4000" {
		t.Errorf("port default: %q", cfg.Port)
	}
	if cfg.TokenTTL != 24*time.Hour {
		t.Errorf("token ttl default: %v", cfg.TokenTTL)
	}
	if cfg.PasswordMinLen != 8 || cfg.BcryptCost != 10 {
		t.Errorf("password policy defaults: min=%d cost=%d", cfg.PasswordMinLen, cfg.BcryptCost)
	}
	if cfg.Redis.Addr != "localhost:6379" {
		t.Errorf("redis addr default: %q", cfg.Redis.Addr)
	}
	if cfg.Production() {
		t.Errorf("development must not count as production")
	}
}

func TestConfig_Overrides(t *testing.T) {
	cfg := loadFrom(t, map[string]string{
		"PORT":      "8080",
		"ENV":       "production",
		"TOKEN_TTL": "30m",
		"S3_BUCKET": "my-bucket",
	})

	if cfg.Port != "8080" {
		t.Errorf("port override: %q", cfg.Port)
	}
	if cfg.TokenTTL != 30*time.Minute {
		t.Errorf("token ttl override: %v", cfg.TokenTTL)
	}
	if cfg.S3.Bucket != "my-bucket" {
		t.Errorf("bucket override: %q", cfg.S3.Bucket)
	}
	if !cfg.Production() {
		t.Errorf("production env not detected")
	}
}
