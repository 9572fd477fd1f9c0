package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and the file loaders.
// Callers use errors.Is() to tell them apart; the CLI reports any of them
// as a configuration error and exits before crawling.
var (
	// ErrNoTarget is returned when neither a URL nor a target list is given.
	ErrNoTarget = errors.New("no target specified: provide a URL or use --list")

	// ErrConflictingTargets is returned when URLs and --list are both given.
	ErrConflictingTargets = errors.New("conflicting targets: URLs and --list cannot be used together")

	// ErrInvalidDepth is returned when the max depth is negative.
	ErrInvalidDepth = errors.New("invalid depth: must be non-negative")

	// ErrInvalidWorkers is returned when the worker count is not positive.
	ErrInvalidWorkers = errors.New("invalid workers: must be positive")

	// ErrInvalidTimeout is returned when the timeout is not positive.
	ErrInvalidTimeout = errors.New("invalid timeout: must be positive")

	// ErrConflictingReportFormats is returned when both --json and --markdown
	// are specified. Only one output format can be used at a time.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")

	// ErrInvalidMaxBodySize is returned when the max body size is negative.
	// Use 0 for the default limit.
	ErrInvalidMaxBodySize = errors.New("invalid max body size: must be non-negative")

	// ErrEmptyKeywords is returned when a keywords file contains no keywords.
	ErrEmptyKeywords = errors.New("keywords file contains no keywords")

	// ErrInvalidProxyAddress is returned when --proxy is not host:port.
	ErrInvalidProxyAddress = errors.New("invalid proxy address format: expected host:port")
)
