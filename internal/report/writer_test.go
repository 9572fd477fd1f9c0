package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/nao1215/cloudscraper/internal/model"
)

func sampleReport() *model.ScanReport {
	r := model.NewScanReport("https://example.com")
	r.Authority = "example.com"
	r.DateScanned = time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	r.Duration = 1500 * time.Millisecond
	r.InitialLinks = 3
	r.Rounds = []model.RoundSummary{
		{Round: 1, Frontier: 3, Fetched: 3, Discovered: 6, Appended: 2, NextFrontier: 1},
		{Round: 2, Frontier: 1, Fetched: 1, Appended: 0},
	}
	r.Links = []string{
		"https://example.com/a",
		"https://bucket.s3.amazonaws.com/logo.png",
		"https://cdn.example.net/app.js",
		"https://example.com/b",
		"https://example.com/c",
	}
	r.Keywords = []string{"amazonaws.com", "example.net"}
	r.Matches = []model.Match{
		{URL: "https://bucket.s3.amazonaws.com/logo.png", Keyword: "amazonaws.com", Provider: "Amazon Web Services", Service: "Amazon S3", Resource: "bucket.s3.amazonaws.com"},
		{URL: "https://cdn.example.net/app.js", Keyword: "example.net", Resource: "example.net"},
	}
	r.PerformedSteps = []string{"crawl", "match"}
	return r
}

// TestSimpleWriter tests the plain text report.
func TestSimpleWriter(t *testing.T) {
	t.Parallel()

	t.Run("writes counts and matches", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		n, err := NewSimpleWriter(&buf).Write(sampleReport())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n != buf.Len() {
			t.Errorf("returned %d bytes, buffer has %d", n, buf.Len())
		}

		out := buf.String()
		for _, want := range []string{
			"Results for https://example.com",
			"Initial links: 3",
			"Urls appended: 2 in 2 rounds",
			"Parsing results...",
			"Total links: 5",
			"There were 2 matches for this search!",
			"https://bucket.s3.amazonaws.com/logo.png\n",
			"https://cdn.example.net/app.js\n",
		} {
			if !strings.Contains(out, want) {
				t.Errorf("output missing %q:\n%s", want, out)
			}
		}
		if strings.Contains(out, "\x1b[") {
			t.Error("expected no ANSI escapes by default")
		}
		// Per-round progress is printed live by the console, not repeated here.
		if strings.Contains(out, "New urls appended") || strings.Contains(out, "round 1:") {
			t.Errorf("expected no per-round lines by default:\n%s", out)
		}
	})

	t.Run("no matches message", func(t *testing.T) {
		t.Parallel()

		r := sampleReport()
		r.Matches = nil

		var buf bytes.Buffer
		if _, err := NewSimpleWriter(&buf).Write(r); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), "There were no matches!") {
			t.Errorf("expected no-match message:\n%s", buf.String())
		}
	})

	t.Run("groups large numbers", func(t *testing.T) {
		t.Parallel()

		r := sampleReport()
		r.InitialLinks = 12345

		var buf bytes.Buffer
		if _, err := NewSimpleWriter(&buf).Write(r); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), "Initial links: 12,345") {
			t.Errorf("expected grouped number:\n%s", buf.String())
		}
	})

	t.Run("shows round statistics", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewSimpleWriter(&buf, WithShowRounds(true)).Write(sampleReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		out := buf.String()
		for _, want := range []string{
			"  round 1: 2 new, fetched 3, skipped 0, failed 0",
			"  round 2: 0 new, fetched 1, skipped 0, failed 0",
		} {
			if !strings.Contains(out, want) {
				t.Errorf("output missing %q:\n%s", want, out)
			}
		}
	})

	t.Run("verbose shows providers", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewSimpleWriter(&buf, WithVerbose(true)).Write(sampleReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		out := buf.String()
		if !strings.Contains(out, "(Amazon Web Services, Amazon S3)") || !strings.Contains(out, "(example.net)") {
			t.Errorf("expected provider labels:\n%s", out)
		}
	})

	t.Run("color adds escapes", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewSimpleWriter(&buf, WithColor(true)).Write(sampleReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), "\x1b[") {
			t.Error("expected ANSI escapes")
		}
	})

	t.Run("shows interrupted status", func(t *testing.T) {
		t.Parallel()

		r := sampleReport()
		r.Cancelled = true
		r.Matches = nil

		var buf bytes.Buffer
		if _, err := NewSimpleWriter(&buf).Write(r); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), "Status: interrupted") {
			t.Errorf("expected interrupted status:\n%s", buf.String())
		}
	})

	t.Run("shows error status", func(t *testing.T) {
		t.Parallel()

		r := sampleReport()
		r.SetError(errors.New("connection refused"))

		var buf bytes.Buffer
		if _, err := NewSimpleWriter(&buf).Write(r); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), "Status: error - connection refused") {
			t.Errorf("expected error status:\n%s", buf.String())
		}
	})
}

// TestMarkdownWriter tests the Markdown report.
func TestMarkdownWriter(t *testing.T) {
	t.Parallel()

	t.Run("writes sections", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewMarkdownWriter(&buf).Write(sampleReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		out := buf.String()
		for _, want := range []string{
			"# CloudScraper Report",
			"`https://example.com`",
			"Appended Links",
			"## Crawl Rounds",
			"## Cloud Resources",
			"### Amazon Web Services (1)",
			"### example.net (1)",
			"bucket.s3.amazonaws.com",
			"Amazon S3",
			"Complete",
		} {
			if !strings.Contains(out, want) {
				t.Errorf("output missing %q:\n%s", want, out)
			}
		}
	})

	t.Run("no matches", func(t *testing.T) {
		t.Parallel()

		r := sampleReport()
		r.Matches = nil
		r.Rounds = nil

		var buf bytes.Buffer
		if _, err := NewMarkdownWriter(&buf).Write(r); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		out := buf.String()
		if !strings.Contains(out, "There were no matches!") {
			t.Errorf("expected no-match tip:\n%s", out)
		}
		if !strings.Contains(out, "The seed page was not expanded.") {
			t.Errorf("expected empty rounds text:\n%s", out)
		}
	})

	t.Run("interrupted scan", func(t *testing.T) {
		t.Parallel()

		r := sampleReport()
		r.Cancelled = true

		var buf bytes.Buffer
		if _, err := NewMarkdownWriter(&buf).Write(r); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), "Interrupted") {
			t.Errorf("expected interrupted status:\n%s", buf.String())
		}
	})
}

// TestJSONWriter tests JSON output.
func TestJSONWriter(t *testing.T) {
	t.Parallel()

	t.Run("compact output decodes", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf).Write(sampleReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if strings.Count(buf.String(), "\n") != 1 {
			t.Errorf("expected a single line, got:\n%s", buf.String())
		}

		var decoded model.ScanReport
		if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
			t.Fatalf("invalid JSON: %v", err)
		}
		if decoded.Target != "https://example.com" || len(decoded.Matches) != 2 {
			t.Errorf("unexpected decoded report: %+v", decoded)
		}
	})

	t.Run("pretty print indents", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf, WithPrettyPrint()).Write(sampleReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), "\n  \"target\": ") {
			t.Errorf("expected indented output:\n%s", buf.String())
		}
	})

	t.Run("error message is serialized", func(t *testing.T) {
		t.Parallel()

		r := sampleReport()
		r.SetError(errors.New("boom"))

		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf).Write(r); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), `"error":"boom"`) {
			t.Errorf("expected error field: %s", buf.String())
		}
	})
}

// TestFullJSONWriter tests the versioned wrapper.
func TestFullJSONWriter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if _, err := NewFullJSONWriter(&buf, "1.2.3").Write(sampleReport()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded JSONReport
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if decoded.Version != "1.2.3" {
		t.Errorf("got version %q", decoded.Version)
	}
	if decoded.MatchCount != 2 || decoded.TotalLinks != 5 {
		t.Errorf("unexpected counts: %+v", decoded)
	}
	if decoded.Report == nil || decoded.Report.Target != "https://example.com" {
		t.Error("expected wrapped report")
	}
}

// TestTruncateString tests truncation with ellipsis.
func TestTruncateString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		maxLen int
		want   string
	}{
		{"short", "abc", 10, "abc"},
		{"exact", "abcde", 5, "abcde"},
		{"long", "abcdefghij", 6, "abc..."},
		{"tiny limit", "abcdef", 2, "ab"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := truncateString(tt.input, tt.maxLen); got != tt.want {
				t.Errorf("got %q, expected %q", got, tt.want)
			}
		})
	}
}
