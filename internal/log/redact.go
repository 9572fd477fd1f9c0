package log

import (
	"regexp"
	"strings"
)

// sensitiveQueryParams are query parameter names whose values grant access
// to a resource. Comparison is case-insensitive.
var sensitiveQueryParams = map[string]bool{
	"x-amz-signature":      true,
	"x-amz-credential":     true,
	"x-amz-security-token": true,
	"x-goog-signature":     true,
	"x-goog-credential":    true,
	"sig":                  true,
	"signature":            true,
	"token":                true,
	"access_token":         true,
}

// urlInText finds URLs embedded in free text such as error messages.
var urlInText = regexp.MustCompile(`https?://[^\s"'<>]+`)

// RedactURL masks the values of sensitive query parameters in rawURL.
// Everything else, including parameter order and encoding, is kept as
// written.
func RedactURL(rawURL string) string {
	base, query, found := strings.Cut(rawURL, "?")
	if !found {
		return rawURL
	}

	fragment := ""
	if i := strings.IndexByte(query, '#'); i >= 0 {
		query, fragment = query[:i], query[i:]
	}

	params := strings.Split(query, "&")
	changed := false
	for i, p := range params {
		name, _, hasValue := strings.Cut(p, "=")
		if !hasValue || !sensitiveQueryParams[strings.ToLower(name)] {
			continue
		}
		params[i] = name + "=" + MaskValue
		changed = true
	}
	if !changed {
		return rawURL
	}

	return base + "?" + strings.Join(params, "&") + fragment
}

// redactURLs applies RedactURL to every URL found in text.
func redactURLs(text string) string {
	if !strings.Contains(text, "://") {
		return text
	}
	return urlInText.ReplaceAllStringFunc(text, RedactURL)
}
