package transport

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/net/proxy"
)

// Defaults for a Client.
const (
	DefaultTimeout      = 30 * time.Second
	DefaultMaxRedirects = 30
)

// checkProxyTimeout bounds the SOCKS5 greeting in CheckProxy.
const checkProxyTimeout = 2 * time.Second

// SOCKS5 greeting bytes.
const (
	socks5Version  = 0x05
	socks5AuthNone = 0x00
)

// Client holds connection-level settings for page fetches.
type Client struct {
	// timeout bounds a whole request including redirects and body read.
	timeout time.Duration

	// maxRedirects is the number of redirects followed before giving up.
	maxRedirects int

	// skipTLSVerify disables certificate verification.
	skipTLSVerify bool

	// proxyAddress is an optional SOCKS5 proxy in "host:port" form.
	proxyAddress string

	// dialer routes connections through the proxy when one is configured.
	dialer proxy.Dialer
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithMaxRedirects sets the redirect limit.
func WithMaxRedirects(n int) Option {
	return func(c *Client) {
		if n >= 0 {
			c.maxRedirects = n
		}
	}
}

// WithSkipTLSVerify disables TLS certificate verification.
func WithSkipTLSVerify(skip bool) Option {
	return func(c *Client) {
		c.skipTLSVerify = skip
	}
}

// WithProxy routes every connection through the SOCKS5 proxy at address.
// An empty address means a direct connection.
func WithProxy(address string) Option {
	return func(c *Client) {
		c.proxyAddress = address
	}
}

// NewClient creates a Client. It validates the proxy address but does not
// connect to the proxy; call CheckProxy for that.
func NewClient(opts ...Option) (*Client, error) {
	c := &Client{
		timeout:      DefaultTimeout,
		maxRedirects: DefaultMaxRedirects,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.proxyAddress != "" {
		if !IsValidProxyAddress(c.proxyAddress) {
			return nil, ErrInvalidProxyAddress
		}

		dialer, err := proxy.SOCKS5("tcp", c.proxyAddress, nil, proxy.Direct)
		if err != nil {
			return nil, fmt.Errorf("failed to create SOCKS5 dialer: %w", err)
		}
		c.dialer = dialer
	}

	return c, nil
}

// IsValidProxyAddress reports whether address is in "host:port" form with
// a non-empty host and a port between 1 and 65535. IPv6 hosts must be
// bracketed, as in "[::1]:9050".
func IsValidProxyAddress(address string) bool {
	host, port, err := net.SplitHostPort(address)
	if err != nil || host == "" {
		return false
	}

	portNum, err := strconv.ParseUint(port, 10, 16)
	return err == nil && portNum >= 1
}

// HTTPClient returns an *http.Client configured with the Client's settings.
// The returned client is safe for concurrent use by all crawl workers.
func (c *Client) HTTPClient() *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()

	if c.skipTLSVerify {
		transport.TLSClientConfig = &tls.Config{
			InsecureSkipVerify: true, //nolint:gosec // opt-in via --no-verify
		}
	}

	if c.dialer != nil {
		dialer := c.dialer
		transport.Proxy = nil
		transport.DialContext = func(ctx context.Context, network, addr string) (net.Conn, error) {
			if cd, ok := dialer.(proxy.ContextDialer); ok {
				return cd.DialContext(ctx, network, addr)
			}
			return dialer.Dial(network, addr)
		}
	}

	maxRedirects := c.maxRedirects
	return &http.Client{
		Transport: transport,
		Timeout:   c.timeout,
		CheckRedirect: func(_ *http.Request, via []*http.Request) error {
			if len(via) > maxRedirects {
				return fmt.Errorf("%w: stopped after %d", ErrTooManyRedirects, maxRedirects)
			}
			return nil
		},
	}
}

// CheckProxy verifies that the configured proxy speaks SOCKS5 by performing
// the method negotiation handshake. Without a proxy it returns
// ProxyStatusOK.
func (c *Client) CheckProxy(ctx context.Context) ProxyStatus {
	if c.proxyAddress == "" {
		return ProxyStatusOK
	}

	ctx, cancel := context.WithTimeout(ctx, checkProxyTimeout)
	defer cancel()

	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", c.proxyAddress)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return ProxyStatusTimeout
		}
		return ProxyStatusCannotConnect
	}
	defer conn.Close()

	if err := conn.SetDeadline(time.Now().Add(checkProxyTimeout)); err != nil {
		return ProxyStatusCannotConnect
	}

	if _, err := conn.Write([]byte{socks5Version, 0x01, socks5AuthNone}); err != nil {
		return ProxyStatusCannotConnect
	}

	resp := make([]byte, 2)
	if _, err := io.ReadFull(conn, resp); err != nil {
		var netErr net.Error
		if errors.As(err, &netErr) && netErr.Timeout() {
			return ProxyStatusTimeout
		}
		return ProxyStatusWrongType
	}

	if resp[0] != socks5Version || resp[1] != socks5AuthNone {
		return ProxyStatusWrongType
	}
	return ProxyStatusOK
}
