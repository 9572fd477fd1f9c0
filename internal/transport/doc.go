// Package transport builds the HTTP client used to fetch pages.
//
// The client carries everything that is a property of the connection
// rather than of a single request: the per-request timeout, the redirect
// limit, TLS certificate verification and an optional SOCKS5 proxy.
// Callers create one Client per scan and share its *http.Client across
// all workers.
package transport
