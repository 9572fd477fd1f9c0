package transport

import "errors"

var (
	// ErrInvalidProxyAddress is returned when the proxy address is not in
	// "host:port" form.
	ErrInvalidProxyAddress = errors.New("invalid proxy address format: expected host:port")

	// ErrTooManyRedirects is returned when a request exceeds the redirect limit.
	ErrTooManyRedirects = errors.New("too many redirects")

	// ErrProxyNotSOCKS5 is returned when the proxy answers but does not speak SOCKS5.
	ErrProxyNotSOCKS5 = errors.New("proxy is not a SOCKS5 proxy")

	// ErrProxyCannotConnect is returned when the proxy address refuses connections.
	ErrProxyCannotConnect = errors.New("cannot connect to proxy")

	// ErrProxyTimeout is returned when the proxy does not answer in time.
	ErrProxyTimeout = errors.New("timeout connecting to proxy")
)

// ProxyStatus is the result of probing the configured proxy.
type ProxyStatus int

const (
	// ProxyStatusOK means the proxy completed a SOCKS5 greeting.
	ProxyStatusOK ProxyStatus = iota

	// ProxyStatusWrongType means something answered, but not SOCKS5.
	ProxyStatusWrongType

	// ProxyStatusCannotConnect means the TCP connection failed.
	ProxyStatusCannotConnect

	// ProxyStatusTimeout means the probe ran out of time.
	ProxyStatusTimeout
)

// String returns a human-readable description of the proxy status.
func (s ProxyStatus) String() string {
	switch s {
	case ProxyStatusOK:
		return "OK"
	case ProxyStatusWrongType:
		return "wrong type (not SOCKS5)"
	case ProxyStatusCannotConnect:
		return "cannot connect"
	case ProxyStatusTimeout:
		return "timeout"
	default:
		return "unknown"
	}
}

// Error returns the matching sentinel error, or nil if OK.
func (s ProxyStatus) Error() error {
	switch s {
	case ProxyStatusOK:
		return nil
	case ProxyStatusWrongType:
		return ErrProxyNotSOCKS5
	case ProxyStatusCannotConnect:
		return ErrProxyCannotConnect
	case ProxyStatusTimeout:
		return ErrProxyTimeout
	default:
		return errors.New("unknown proxy status")
	}
}
