package config

import (
	"errors"
	"testing"
	"time"
)

// TestNewConfig verifies that NewConfig returns a Config with all expected default values.
func TestNewConfig(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()

	t.Run("default MaxDepth is 5", func(t *testing.T) {
		t.Parallel()
		if cfg.MaxDepth != 5 {
			t.Errorf("expected MaxDepth to be 5, got %d", cfg.MaxDepth)
		}
	})

	t.Run("default Workers is 2", func(t *testing.T) {
		t.Parallel()
		if cfg.Workers != 2 {
			t.Errorf("expected Workers to be 2, got %d", cfg.Workers)
		}
	})

	t.Run("default Timeout is 30 seconds", func(t *testing.T) {
		t.Parallel()
		if cfg.Timeout != 30*time.Second {
			t.Errorf("expected Timeout to be 30s, got %v", cfg.Timeout)
		}
	})

	t.Run("default MaxBodySize is 10MB", func(t *testing.T) {
		t.Parallel()
		if cfg.MaxBodySize != 10*1024*1024 {
			t.Errorf("expected MaxBodySize to be 10MB, got %d", cfg.MaxBodySize)
		}
	})

	t.Run("default UserAgent is a desktop browser", func(t *testing.T) {
		t.Parallel()
		if cfg.UserAgent != DefaultUserAgent {
			t.Errorf("unexpected UserAgent %q", cfg.UserAgent)
		}
	})

	t.Run("TLS verification is on by default", func(t *testing.T) {
		t.Parallel()
		if cfg.SkipTLSVerify {
			t.Error("expected SkipTLSVerify to be false")
		}
	})

	t.Run("no keywords means defaults", func(t *testing.T) {
		t.Parallel()
		if len(cfg.Keywords) != 0 {
			t.Errorf("expected no explicit keywords, got %v", cfg.Keywords)
		}
	})
}

// TestConfigValidate tests the Validate method.
func TestConfigValidate(t *testing.T) {
	t.Parallel()

	validConfig := func() *Config {
		cfg := NewConfig()
		cfg.Targets = []string{"https://example.com"}
		return cfg
	}

	t.Run("valid config returns nil", func(t *testing.T) {
		t.Parallel()
		if err := validConfig().Validate(); err != nil {
			t.Errorf("expected no error, got %v", err)
		}
	})

	t.Run("target list alone is valid", func(t *testing.T) {
		t.Parallel()
		cfg := validConfig()
		cfg.Targets = nil
		cfg.TargetListFile = "targets.txt"
		if err := cfg.Validate(); err != nil {
			t.Errorf("expected no error, got %v", err)
		}
	})

	t.Run("depth zero is valid", func(t *testing.T) {
		t.Parallel()
		cfg := validConfig()
		cfg.MaxDepth = 0
		if err := cfg.Validate(); err != nil {
			t.Errorf("expected no error, got %v", err)
		}
	})

	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"no targets", func(c *Config) { c.Targets = nil }, ErrNoTarget},
		{"URLs and list", func(c *Config) { c.TargetListFile = "targets.txt" }, ErrConflictingTargets},
		{"negative depth", func(c *Config) { c.MaxDepth = -1 }, ErrInvalidDepth},
		{"zero workers", func(c *Config) { c.Workers = 0 }, ErrInvalidWorkers},
		{"zero timeout", func(c *Config) { c.Timeout = 0 }, ErrInvalidTimeout},
		{"negative timeout", func(c *Config) { c.Timeout = -time.Second }, ErrInvalidTimeout},
		{"json and markdown", func(c *Config) { c.JSONReport, c.MarkdownReport = true, true }, ErrConflictingReportFormats},
		{"negative body size", func(c *Config) { c.MaxBodySize = -1 }, ErrInvalidMaxBodySize},
		{"bad proxy", func(c *Config) { c.ProxyAddress = "localhost" }, ErrInvalidProxyAddress},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := validConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

// TestXDGConfigDir tests the XDG config directory.
func TestXDGConfigDir(t *testing.T) {
	t.Parallel()

	if dir := XDGConfigDir(); dir == "" {
		t.Error("expected non-empty XDG config dir")
	}
}
