package match

import (
	"reflect"
	"testing"
)

// TestDefaultKeywords tests the built-in keyword list.
func TestDefaultKeywords(t *testing.T) {
	t.Parallel()

	want := []string{
		"amazonaws.com",
		"digitaloceanspaces.com",
		"windows.net",
		"storage.googleapis.com",
		"aliyuncs.com",
	}
	got := DefaultKeywords()
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DefaultKeywords() = %v, want %v", got, want)
	}

	got[0] = "mutated"
	if DefaultKeywords()[0] != "amazonaws.com" {
		t.Error("expected DefaultKeywords to return a copy")
	}
}

// TestProviderFor tests provider lookup.
func TestProviderFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		keyword string
		want    string
	}{
		{"amazonaws.com", "Amazon Web Services"},
		{"digitaloceanspaces.com", "DigitalOcean Spaces"},
		{"windows.net", "Microsoft Azure"},
		{"storage.googleapis.com", "Google Cloud Storage"},
		{"aliyuncs.com", "Alibaba Cloud OSS"},
		{"example.net", ""},
		{"AMAZONAWS.COM", ""},
	}

	for _, tt := range tests {
		if got := ProviderFor(tt.keyword); got != tt.want {
			t.Errorf("ProviderFor(%q) = %q, want %q", tt.keyword, got, tt.want)
		}
	}
}

// TestMatcher tests keyword filtering.
func TestMatcher(t *testing.T) {
	t.Parallel()

	t.Run("selects URLs containing a default keyword", func(t *testing.T) {
		t.Parallel()

		visited := []string{
			"https://a.s3.amazonaws.com/x",
			"https://example.com/about",
			"https://b.blob.core.windows.net/y",
		}

		got := NewMatcher(nil).Match(visited)
		if len(got) != 2 {
			t.Fatalf("got %d matches, expected 2: %v", len(got), got)
		}
		if got[0].URL != "https://a.s3.amazonaws.com/x" || got[1].URL != "https://b.blob.core.windows.net/y" {
			t.Errorf("unexpected matches: %v", got)
		}
		if got[0].Keyword != "amazonaws.com" || got[0].Provider != "Amazon Web Services" {
			t.Errorf("unexpected annotation: %+v", got[0])
		}
		if got[1].Keyword != "windows.net" || got[1].Provider != "Microsoft Azure" {
			t.Errorf("unexpected annotation: %+v", got[1])
		}
		if got[0].Service != "Amazon S3" || got[1].Service != "Azure Blob Storage" {
			t.Errorf("unexpected services: %q, %q", got[0].Service, got[1].Service)
		}
	})

	t.Run("custom keywords replace the defaults", func(t *testing.T) {
		t.Parallel()

		m := NewMatcher([]string{"example.net"})
		got := m.Match([]string{"https://a.s3.amazonaws.com/x", "https://cdn.example.net/z"})
		if len(got) != 1 || got[0].URL != "https://cdn.example.net/z" {
			t.Fatalf("unexpected matches: %v", got)
		}
		if got[0].Provider != "" {
			t.Errorf("expected no provider for custom keyword, got %q", got[0].Provider)
		}
	})

	t.Run("matching is case-sensitive", func(t *testing.T) {
		t.Parallel()

		got := NewMatcher(nil).Match([]string{"https://A.S3.AMAZONAWS.COM/x"})
		if len(got) != 0 {
			t.Errorf("expected no match, got %v", got)
		}
	})

	t.Run("keyword anywhere in the URL", func(t *testing.T) {
		t.Parallel()

		got := NewMatcher(nil).Match([]string{"https://example.com/redirect?to=bucket.s3.amazonaws.com"})
		if len(got) != 1 {
			t.Errorf("expected a match on the query string, got %v", got)
		}
	})

	t.Run("first configured keyword wins", func(t *testing.T) {
		t.Parallel()

		m := NewMatcher([]string{"windows.net", "core"})
		got := m.Match([]string{"https://b.blob.core.windows.net/y"})
		if len(got) != 1 || got[0].Keyword != "windows.net" {
			t.Errorf("unexpected matches: %v", got)
		}
	})

	t.Run("duplicates are collapsed", func(t *testing.T) {
		t.Parallel()

		got := NewMatcher(nil).Match([]string{
			"https://a.s3.amazonaws.com/x",
			"https://a.s3.amazonaws.com/x",
		})
		if len(got) != 1 {
			t.Errorf("got %d matches, expected 1", len(got))
		}
	})

	t.Run("empty keywords fall back to defaults", func(t *testing.T) {
		t.Parallel()

		m := NewMatcher([]string{"", ""})
		if !reflect.DeepEqual(m.Keywords(), DefaultKeywords()) {
			t.Errorf("Keywords() = %v", m.Keywords())
		}
	})

	t.Run("no input", func(t *testing.T) {
		t.Parallel()

		got := NewMatcher(nil).Match(nil)
		if got == nil || len(got) != 0 {
			t.Errorf("expected empty non-nil slice, got %#v", got)
		}
	})
}

// TestResourceName tests registrable name extraction.
func TestResourceName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want string
	}{
		{"https://www.example.co.uk/path", "example.co.uk"},
		{"https://WWW.Example.com/x", "example.com"},
		{"https://example.com:8443/x", "example.com"},
		{"https://127.0.0.1/x", "127.0.0.1"},
		{"not a url", ""},
	}

	for _, tt := range tests {
		if got := ResourceName(tt.raw); got != tt.want {
			t.Errorf("ResourceName(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}
