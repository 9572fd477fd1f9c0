package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

// TestNormalizeTarget tests scheme coercion.
func TestNormalizeTarget(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want string
	}{
		{"example.com", "https://example.com"},
		{"  example.com/path \n", "https://example.com/path"},
		{"https://example.com", "https://example.com"},
		{"http://example.com", "http://example.com"},
		{"httpbin.org", "https://httpbin.org"},
		{"", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		if got := NormalizeTarget(tt.raw); got != tt.want {
			t.Errorf("NormalizeTarget(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

// TestLoadTargetList tests reading seed URLs from a file.
func TestLoadTargetList(t *testing.T) {
	t.Parallel()

	t.Run("normalizes and skips blank lines", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "targets.txt", "example.com\n\nhttp://test.example.org\r\n  \nhttps://third.example.net/\n")
		got, err := LoadTargetList(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := []string{"https://example.com", "http://test.example.org", "https://third.example.net/"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("empty file is ErrNoTarget", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "targets.txt", "\n\n")
		if _, err := LoadTargetList(path); !errors.Is(err, ErrNoTarget) {
			t.Errorf("expected ErrNoTarget, got %v", err)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := LoadTargetList(filepath.Join(t.TempDir(), "missing.txt"))
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("expected not-exist error, got %v", err)
		}
	})
}

// TestLoadKeywordFile tests reading keywords from a file.
func TestLoadKeywordFile(t *testing.T) {
	t.Parallel()

	t.Run("trims and skips blank lines", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "keywords.txt", "amazonaws.com\n\n  example.net  \n")
		got, err := LoadKeywordFile(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := []string{"amazonaws.com", "example.net"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("empty file is ErrEmptyKeywords", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "keywords.txt", "\n   \n")
		if _, err := LoadKeywordFile(path); !errors.Is(err, ErrEmptyKeywords) {
			t.Errorf("expected ErrEmptyKeywords, got %v", err)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := LoadKeywordFile(filepath.Join(t.TempDir(), "missing.txt"))
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("expected not-exist error, got %v", err)
		}
	})
}
