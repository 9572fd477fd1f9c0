package crawler

import (
	"net/url"
	"strings"
)

// invalidURIChars are ASCII characters that may not appear anywhere in a URI.
const invalidURIChars = " \"<>\\^`{|}"

// IsAbsoluteURL reports whether raw is a well-formed absolute URI, that is
// one with both a scheme and an authority. Malformed input is rejected,
// never reported as an error.
func IsAbsoluteURL(raw string) bool {
	if raw == "" || strings.ContainsAny(raw, invalidURIChars) || hasControlChar(raw) || !validPercentEncoding(raw) {
		return false
	}

	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	if u.Scheme == "" || u.Opaque != "" || u.Host == "" {
		return false
	}

	authority, ok := rawAuthority(raw)
	if !ok || authority == "" {
		return false
	}

	// Brackets are only legal around an IPv6 literal in the host.
	_, rest, _ := strings.Cut(raw, "://")
	return !strings.ContainsAny(rest[len(authority):], "[]")
}

// Authority returns the authority component of raw exactly as written
// (userinfo@host:port). ok is false when raw is not an absolute URL.
func Authority(raw string) (string, bool) {
	if !IsAbsoluteURL(raw) {
		return "", false
	}
	return rawAuthority(raw)
}

// InScope reports whether the authority of raw contains targetAuthority.
// Containment is a plain substring test, so subdomains of the target are in
// scope and so is any host that merely embeds the target's name.
func InScope(raw, targetAuthority string) bool {
	authority, ok := Authority(raw)
	if !ok {
		return false
	}
	return strings.Contains(authority, targetAuthority)
}

// ExceedsDepth reports whether raw is beyond maxDepth. Depth is
// approximated by the number of '/' characters in the URL: the two slashes
// of "scheme://" plus one per path segment.
func ExceedsDepth(raw string, maxDepth int) bool {
	return strings.Count(raw, "/") > maxDepth+2
}

// rawAuthority slices the authority out of raw without re-encoding it.
func rawAuthority(raw string) (string, bool) {
	_, rest, found := strings.Cut(raw, "://")
	if !found {
		return "", false
	}
	if end := strings.IndexAny(rest, "/?#"); end >= 0 {
		rest = rest[:end]
	}
	return rest, true
}

func hasControlChar(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] == 0x7f {
			return true
		}
	}
	return false
}

// validPercentEncoding reports whether every '%' in s starts a %XX octet.
func validPercentEncoding(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != '%' {
			continue
		}
		if i+2 >= len(s) || !isHex(s[i+1]) || !isHex(s[i+2]) {
			return false
		}
		i += 2
	}
	return true
}

func isHex(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}
