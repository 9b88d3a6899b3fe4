package httpx

import (
	"crypto/tls"
	"net/http"
	"time"
)

// Default values for the HTTP client options
const (
	DefaultTimeout         = 120 * time.Second
	DefaultMaxIdleConns    = 64
	DefaultIdleConnTimeout = 90 * time.Second
)

// Client is the minimal HTTP transport contract used by the SDK.
// *http.Client satisfies it, as does any test double.
type Client interface {
	Do(req *http.Request) (*http.Response, error)
}

// Options contains configuration for the default HTTP client
type Options struct {
	// Timeout is the maximum duration for the entire request (read + write)
	Timeout time.Duration

	// InsecureSkipVerify controls whether to skip TLS certificate verification
	InsecureSkipVerify bool

	// MaxIdleConns is the maximum number of idle connections kept open
	MaxIdleConns int

	// IdleConnTimeout is the maximum duration for keeping idle connections open
	IdleConnTimeout time.Duration
}

// Option is a function that configures Options
type Option func(*Options)

// WithTimeout sets the overall request timeout
func WithTimeout(timeout time.Duration) Option {
	return func(o *Options) {
		o.Timeout = timeout
	}
}

// WithInsecureSkipVerify sets whether to skip TLS certificate verification
func WithInsecureSkipVerify(skip bool) Option {
	return func(o *Options) {
		o.InsecureSkipVerify = skip
	}
}

// WithMaxIdleConns sets the maximum number of idle connections
func WithMaxIdleConns(n int) Option {
	return func(o *Options) {
		o.MaxIdleConns = n
	}
}

// WithIdleConnTimeout sets the maximum idle connection duration
func WithIdleConnTimeout(d time.Duration) Option {
	return func(o *Options) {
		o.IdleConnTimeout = d
	}
}

// NewHTTPClient creates a net/http based Client with the given options.
// If no options are provided, sensible defaults are used.
//
// Automatic transport-level decompression is disabled: the SDK negotiates
// Accept-Encoding itself and decodes response bodies with DecodeChain, so
// all supported encodings (gzip, zstd, br, deflate) go through one path.
func NewHTTPClient(opts ...Option) Client {
	options := &Options{
		Timeout:         DefaultTimeout,
		MaxIdleConns:    DefaultMaxIdleConns,
		IdleConnTimeout: DefaultIdleConnTimeout,
	}

	for _, opt := range opts {
		opt(options)
	}

	transport := &http.Transport{
		MaxIdleConns:       options.MaxIdleConns,
		IdleConnTimeout:    options.IdleConnTimeout,
		DisableCompression: true,
	}

	if options.InsecureSkipVerify {
		transport.TLSClientConfig = &tls.Config{
			InsecureSkipVerify: true, //nolint:gosec // intentionally configurable
		}
	}

	return &http.Client{
		Timeout:   options.Timeout,
		Transport: transport,
	}
}
