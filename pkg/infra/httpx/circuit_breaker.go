package httpx

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sony/gobreaker"
)

// CircuitBreaker guards HTTP round trips. Transport failures and 5xx
// responses count against the breaker; other responses pass through
// untouched.
type CircuitBreaker interface {
	Execute(fn func() (*http.Response, error)) (*http.Response, error)
}

// errDegraded marks a 5xx response inside the breaker so it is counted
// as a failure without being surfaced as an error.
var errDegraded = errors.New("upstream degraded")

type circuitBreakerWrapper struct {
	breaker *gobreaker.CircuitBreaker
}

func NewCircuitBreaker(name string, timeout time.Duration, maxFailures uint32) CircuitBreaker {
	settings := gobreaker.Settings{
		Name:        name,
		MaxRequests: 5,
		Timeout:     timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
	}
	return &circuitBreakerWrapper{
		breaker: gobreaker.NewCircuitBreaker(settings),
	}
}

func (g *circuitBreakerWrapper) Execute(fn func() (*http.Response, error)) (*http.Response, error) {
	v, err := g.breaker.Execute(func() (interface{}, error) {
		resp, callErr := fn()
		if callErr != nil {
			return nil, callErr
		}
		if resp.StatusCode >= http.StatusInternalServerError {
			return resp, errDegraded
		}
		return resp, nil
	})
	resp, _ := v.(*http.Response)
	if err == nil || errors.Is(err, errDegraded) {
		return resp, nil
	}
	return nil, fmt.Errorf("breaker (%s): %w", g.breaker.Name(), err)
}

// IsCircuitOpen reports whether err came from an open breaker rather
// than from the guarded call itself.
func IsCircuitOpen(err error) bool {
	return errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests)
}
