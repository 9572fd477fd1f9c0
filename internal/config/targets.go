package config

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// NormalizeTarget trims whitespace and prefixes "https://" when raw has no
// scheme. A target that already names a scheme is returned as is.
func NormalizeTarget(raw string) string {
	target := strings.TrimSpace(raw)
	if target == "" {
		return ""
	}
	if strings.Contains(target, "://") {
		return target
	}
	return "https://" + target
}

// LoadTargetList reads newline-delimited seed URLs from path, normalizing
// each one. Blank lines are skipped. A list with no targets is
// ErrNoTarget.
func LoadTargetList(path string) ([]string, error) {
	lines, err := readLines(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read target list: %w", err)
	}

	targets := make([]string, 0, len(lines))
	for _, line := range lines {
		targets = append(targets, NormalizeTarget(line))
	}

	if len(targets) == 0 {
		return nil, fmt.Errorf("%w: %s is empty", ErrNoTarget, path)
	}
	return targets, nil
}

// LoadKeywordFile reads newline-delimited keywords from path. Each line is
// trimmed and blank lines are skipped. A file with no keywords is
// ErrEmptyKeywords.
func LoadKeywordFile(path string) ([]string, error) {
	keywords, err := readLines(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read keywords file: %w", err)
	}

	if len(keywords) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyKeywords, path)
	}
	return keywords, nil
}

// readLines returns the trimmed, non-blank lines of a file.
func readLines(path string) ([]string, error) {
	f, err := os.Open(path) //nolint:gosec // User-provided path is intentional
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
