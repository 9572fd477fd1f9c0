package log

import (
	"context"
	"io"
	"log/slog"
	"regexp"
	"strings"
)

// sensitiveKeys contains attribute keys whose values are always masked.
var sensitiveKeys = map[string]bool{
	"authorization":        true,
	"proxy-authorization":  true,
	"cookie":               true,
	"set-cookie":           true,
	"x-api-key":            true,
	"x-amz-security-token": true,
	"password":             true,
	"secret":               true,
	"token":                true,
	"api_key":              true,
	"access_key":           true,
	"access_token":         true,
	"secret_key":           true,
	"session":              true,
	"session_id":           true,
	"credential":           true,
	"credentials":          true,
}

// sensitiveKeywords mark a key as sensitive when they appear anywhere in it.
// The bare word "key" is left out; it matches too much ("keyword").
var sensitiveKeywords = []string{
	"password", "secret", "token", "auth", "credential", "private",
}

// sensitivePatterns match whole string values that look like credentials.
var sensitivePatterns = []*regexp.Regexp{
	// JWT
	regexp.MustCompile(`^eyJ[A-Za-z0-9_-]*\.eyJ[A-Za-z0-9_-]*\.[A-Za-z0-9_-]*$`),
	regexp.MustCompile(`(?i)^bearer\s+.+`),
	regexp.MustCompile(`(?i)^basic\s+[A-Za-z0-9+/=]+$`),
	// AWS access key ID
	regexp.MustCompile(`^(AKIA|ASIA)[0-9A-Z]{16}$`),
	regexp.MustCompile(`(?i)-----BEGIN.*(PRIVATE|SECRET).*KEY-----`),
}

// MaskValue is the string used to replace sensitive values.
const MaskValue = "***REDACTED***"

// SecureHandler wraps an slog.Handler and sanitizes every attribute before
// passing the record on.
type SecureHandler struct {
	handler slog.Handler
}

// NewSecureHandler creates a new SecureHandler wrapping the given handler.
// If handler is nil, slog.Default().Handler() is used.
func NewSecureHandler(handler slog.Handler) *SecureHandler {
	if handler == nil {
		handler = slog.Default().Handler()
	}
	return &SecureHandler{handler: handler}
}

// Enabled delegates to the underlying handler.
func (h *SecureHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle sanitizes the record's message and attributes and passes it on.
func (h *SecureHandler) Handle(ctx context.Context, r slog.Record) error {
	sanitized := slog.NewRecord(r.Time, r.Level, redactURLs(r.Message), r.PC)

	r.Attrs(func(a slog.Attr) bool {
		sanitized.AddAttrs(sanitizeAttr(a))
		return true
	})

	return h.handler.Handle(ctx, sanitized)
}

// WithAttrs returns a new handler with the given attributes sanitized and added.
func (h *SecureHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	sanitizedAttrs := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		sanitizedAttrs[i] = sanitizeAttr(a)
	}
	return &SecureHandler{handler: h.handler.WithAttrs(sanitizedAttrs)}
}

// WithGroup returns a new handler with the given group name.
func (h *SecureHandler) WithGroup(name string) slog.Handler {
	return &SecureHandler{handler: h.handler.WithGroup(name)}
}

// sanitizeAttr sanitizes a single attribute, recursing into groups.
func sanitizeAttr(a slog.Attr) slog.Attr {
	a.Value = a.Value.Resolve()

	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		sanitizedAttrs := make([]slog.Attr, len(attrs))
		for i, groupAttr := range attrs {
			sanitizedAttrs[i] = sanitizeAttr(groupAttr)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(sanitizedAttrs...)}
	}

	if isSensitiveKey(a.Key) {
		return slog.String(a.Key, MaskValue)
	}

	switch a.Value.Kind() {
	case slog.KindString:
		value := a.Value.String()
		if isSensitiveValue(value) {
			return slog.String(a.Key, MaskValue)
		}
		if redacted := redactURLs(value); redacted != value {
			return slog.String(a.Key, redacted)
		}
	case slog.KindAny:
		// Errors from the fetcher embed the URL they failed on.
		if err, ok := a.Value.Any().(error); ok {
			msg := err.Error()
			if redacted := redactURLs(msg); redacted != msg {
				return slog.String(a.Key, redacted)
			}
		}
	}

	return a
}

func isSensitiveKey(key string) bool {
	key = strings.ToLower(key)
	if sensitiveKeys[key] {
		return true
	}
	for _, keyword := range sensitiveKeywords {
		if strings.Contains(key, keyword) {
			return true
		}
	}
	return false
}

func isSensitiveValue(value string) bool {
	for _, pattern := range sensitivePatterns {
		if pattern.MatchString(value) {
			return true
		}
	}
	return false
}

// NewSecureLogger creates a text slog.Logger that sanitizes its output.
// verbose selects Debug level; otherwise only warnings and errors are
// written.
func NewSecureLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	textHandler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(NewSecureHandler(textHandler))
}
