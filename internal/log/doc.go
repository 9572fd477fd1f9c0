// Package log provides secure logging functionality with automatic sanitization
// of sensitive information, built on top of the standard slog package.
//
// Crawls routinely discover presigned object-store URLs whose query string
// is a bearer credential. The SecureHandler masks those query parameters
// wherever a URL appears in a log attribute, including inside error
// messages, and masks values of credential-like attribute keys.
//
// # Usage
//
//	logger := log.NewSecureLogger(os.Stderr, verbose)
//	logger.Debug("links found", "url", u, "count", n)
package log
