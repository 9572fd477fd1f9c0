package config

import (
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/nao1215/cloudscraper/internal/crawler"
	"github.com/nao1215/cloudscraper/internal/transport"
)

// Default configuration values.
const (
	// DefaultMaxDepth bounds how many path segments a fetched URL may have.
	DefaultMaxDepth = crawler.DefaultMaxDepth

	// DefaultWorkers is the number of concurrent fetches per round.
	DefaultWorkers = crawler.DefaultWorkers

	// DefaultTimeout bounds a single request, redirects and body included.
	DefaultTimeout = transport.DefaultTimeout

	// DefaultUserAgent is sent with every request.
	DefaultUserAgent = crawler.DefaultUserAgent

	// DefaultMaxBodySize limits how much of a response is read.
	DefaultMaxBodySize = crawler.DefaultMaxBodySize

	// AppName is the application name used for XDG directory paths.
	AppName = "cloudscraper"
)

// Config holds all configuration options for CloudScraper.
// It is populated from CLI flags and the settings file, validated once,
// and then passed to constructors.
type Config struct {
	// Targets are seed URLs given on the command line, already normalized.
	Targets []string

	// TargetListFile is a newline-delimited file of seed URLs.
	// Mutually exclusive with Targets.
	TargetListFile string

	// MaxDepth bounds the crawl by URL shape: a URL with more than
	// MaxDepth+2 slashes is recorded but never fetched.
	MaxDepth int

	// Workers is the number of concurrent fetches within a round.
	Workers int

	// Verbose enables debug logging and prints network errors.
	Verbose bool

	// SkipTLSVerify disables certificate verification.
	SkipTLSVerify bool

	// Keywords are the substrings a URL must contain to be reported.
	// Empty means the default cloud storage domains.
	Keywords []string

	// KeywordsFile is a newline-delimited keyword file. When set, its
	// contents replace Keywords.
	KeywordsFile string

	// Timeout is the per-request timeout.
	Timeout time.Duration

	// UserAgent is the User-Agent header sent with requests.
	UserAgent string

	// MaxBodySize is the maximum response body size in bytes to read.
	// Set to 0 to use the default.
	MaxBodySize int64

	// ProxyAddress is an optional SOCKS5 proxy in "host:port" format.
	ProxyAddress string

	// ConfigFilePath is an explicit settings file path.
	ConfigFilePath string

	// JSONReport selects JSON output. Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport selects Markdown output. Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile is the output file path for the report.
	// When set, the report is written to this file instead of stdout.
	ReportFile string
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		MaxDepth:    DefaultMaxDepth,
		Workers:     DefaultWorkers,
		Timeout:     DefaultTimeout,
		UserAgent:   DefaultUserAgent,
		MaxBodySize: DefaultMaxBodySize,
	}
}

// XDGConfigDir returns the XDG config directory for CloudScraper.
// On Linux: ~/.config/cloudscraper
// On macOS: ~/Library/Application Support/cloudscraper
// On Windows: %APPDATA%\cloudscraper
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid and returns the first
// problem found.
func (c *Config) Validate() error {
	if len(c.Targets) == 0 && c.TargetListFile == "" {
		return ErrNoTarget
	}

	if len(c.Targets) > 0 && c.TargetListFile != "" {
		return ErrConflictingTargets
	}

	if c.MaxDepth < 0 {
		return ErrInvalidDepth
	}

	if c.Workers <= 0 {
		return ErrInvalidWorkers
	}

	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}

	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}

	if c.MaxBodySize < 0 {
		return ErrInvalidMaxBodySize
	}

	if c.ProxyAddress != "" && !transport.IsValidProxyAddress(c.ProxyAddress) {
		return ErrInvalidProxyAddress
	}

	return nil
}
