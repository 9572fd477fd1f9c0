package config

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the settings file name looked up in the current
// and home directories.
const DefaultConfigFile = ".cloudscraper"

// xdgConfigFile is the settings file name inside XDGConfigDir.
const xdgConfigFile = "config.yaml"

// ErrConfigNotFound is returned when the settings file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// Settings is the structure of the YAML settings file. Unset keys leave
// the corresponding Config field alone.
type Settings struct {
	// Depth overrides the max crawl depth.
	Depth *int `yaml:"depth,omitempty"`

	// Workers overrides the number of concurrent fetches.
	Workers *int `yaml:"workers,omitempty"`

	// Timeout overrides the per-request timeout, e.g. "45s".
	Timeout time.Duration `yaml:"timeout,omitempty"`

	// UserAgent overrides the User-Agent header.
	UserAgent string `yaml:"userAgent,omitempty"`

	// SkipTLSVerify disables certificate verification.
	SkipTLSVerify bool `yaml:"skipTLSVerify,omitempty"`

	// Proxy routes requests through a SOCKS5 proxy (host:port).
	Proxy string `yaml:"proxy,omitempty"`

	// MaxBodySize overrides the response body cap in bytes.
	MaxBodySize int64 `yaml:"maxBodySize,omitempty"`

	// Keywords replaces the default cloud storage domains.
	Keywords []string `yaml:"keywords,omitempty"`
}

// Flag names consulted by Apply. A value from the settings file is only
// used when the matching flag was not set explicitly.
const (
	FlagDepth       = "depth"
	FlagWorkers     = "workers"
	FlagTimeout     = "timeout"
	FlagUserAgent   = "user-agent"
	FlagNoVerify    = "no-verify"
	FlagProxy       = "proxy"
	FlagMaxBodySize = "max-body-size"
	FlagKeyword     = "keyword"
	FlagKeywordFile = "keywords-file"
)

// Apply copies the settings into cfg. isSet reports whether a flag was
// given on the command line; explicit flags always win.
func (s *Settings) Apply(cfg *Config, isSet func(flag string) bool) {
	if isSet == nil {
		isSet = func(string) bool { return false }
	}

	if s.Depth != nil && !isSet(FlagDepth) {
		cfg.MaxDepth = *s.Depth
	}
	if s.Workers != nil && !isSet(FlagWorkers) {
		cfg.Workers = *s.Workers
	}
	if s.Timeout != 0 && !isSet(FlagTimeout) {
		cfg.Timeout = s.Timeout
	}
	if s.UserAgent != "" && !isSet(FlagUserAgent) {
		cfg.UserAgent = s.UserAgent
	}
	if s.SkipTLSVerify && !isSet(FlagNoVerify) {
		cfg.SkipTLSVerify = true
	}
	if s.Proxy != "" && !isSet(FlagProxy) {
		cfg.ProxyAddress = s.Proxy
	}
	if s.MaxBodySize != 0 && !isSet(FlagMaxBodySize) {
		cfg.MaxBodySize = s.MaxBodySize
	}
	if len(s.Keywords) > 0 && !isSet(FlagKeyword) && !isSet(FlagKeywordFile) {
		cfg.Keywords = append([]string(nil), s.Keywords...)
	}
}

// LoadSettingsFile loads settings from a YAML file.
// If the file does not exist, it returns ErrConfigNotFound.
func LoadSettingsFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, err
	}

	return &s, nil
}

// FindSettingsFile searches for the settings file in the following order:
//  1. configPath, if specified
//  2. .cloudscraper in the current directory
//  3. config.yaml in XDGConfigDir()
//  4. .cloudscraper in the user's home directory
//
// It returns the path of the first file that exists, or "" if none does.
func FindSettingsFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	candidates := make([]string, 0, 3)
	if cwd, err := os.Getwd(); err == nil {
		candidates = append(candidates, filepath.Join(cwd, DefaultConfigFile))
	}
	candidates = append(candidates, filepath.Join(XDGConfigDir(), xdgConfigFile))
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, DefaultConfigFile))
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
