// Package config provides configuration structures and utilities for
// CloudScraper. It defines crawl bounds, fetch settings, keyword and target
// sources, and report preferences, and loads the optional YAML settings
// file.
package config
