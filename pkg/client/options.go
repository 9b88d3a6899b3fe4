package client

import (
	"time"

	"github.com/aleph-alpha/aleph-alpha-go/pkg/infra/httpx"
	"github.com/sirupsen/logrus"
)

// Option is a function that configures a Client
type Option func(*Client)

// WithToken authenticates with a static API token.
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

// WithCredentials authenticates with email and password; a token is
// fetched lazily on the first authenticated call.
func WithCredentials(email, password string) Option {
	return func(c *Client) {
		c.email = email
		c.password = password
	}
}

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(client httpx.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithLogger sets a custom logger
func WithLogger(logger *logrus.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithCircuitBreaker guards every API call with the given breaker.
func WithCircuitBreaker(breaker httpx.CircuitBreaker) Option {
	return func(c *Client) {
		c.breaker = breaker
	}
}

// WithMaxRetries sets how many times a transient failure is retried.
// Zero disables retries.
func WithMaxRetries(n int) Option {
	return func(c *Client) {
		if n >= 0 {
			c.maxRetries = n
		}
	}
}

// WithRetryDelay sets the base delay between retries; the delay grows
// linearly with the attempt number.
func WithRetryDelay(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.retryDelay = d
		}
	}
}
