// Package client implements the HTTP binding to the Aleph Alpha API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/aleph-alpha/aleph-alpha-go/pkg/domain/completion"
	"github.com/aleph-alpha/aleph-alpha-go/pkg/domain/embedding"
	"github.com/aleph-alpha/aleph-alpha-go/pkg/domain/evaluation"
	"github.com/aleph-alpha/aleph-alpha-go/pkg/domain/explanation"
	"github.com/aleph-alpha/aleph-alpha-go/pkg/domain/hosting"
	"github.com/aleph-alpha/aleph-alpha-go/pkg/domain/qa"
	"github.com/aleph-alpha/aleph-alpha-go/pkg/domain/tokenization"
	"github.com/aleph-alpha/aleph-alpha-go/pkg/infra/httpx"
	"github.com/aleph-alpha/aleph-alpha-go/pkg/infra/logger"
	"github.com/aleph-alpha/aleph-alpha-go/pkg/infra/metrics"
	"github.com/aleph-alpha/aleph-alpha-go/pkg/version"
)

const (
	defaultMaxRetries = 3
	defaultRetryDelay = time.Second

	// expectedAPIRelease is the major API release this client targets.
	expectedAPIRelease = "1"
)

// ModelInfo describes one entry of the model listing.
type ModelInfo struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Hostings    []string `json:"hostings,omitempty"`
}

// Client talks to a hosted API endpoint. Construct it with New; the
// zero value is not usable.
type Client struct {
	host       string
	httpClient httpx.Client
	logger     *logrus.Logger
	breaker    httpx.CircuitBreaker
	maxRetries int
	retryDelay time.Duration

	email    string
	password string

	tokenMu    sync.RWMutex
	token      string
	tokenGroup singleflight.Group
}

// New creates a Client for the API at host. Authentication requires
// either WithToken or WithCredentials.
func New(host string, opts ...Option) (*Client, error) {
	if host == "" {
		return nil, fmt.Errorf("host is required")
	}
	host = strings.TrimRight(host, "/") + "/"

	c := &Client{
		host:       host,
		maxRetries: defaultMaxRetries,
		retryDelay: defaultRetryDelay,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.token == "" && (c.email == "" || c.password == "") {
		return nil, fmt.Errorf("either a token or email and password are required")
	}
	if c.httpClient == nil {
		c.httpClient = httpx.NewHTTPClient()
	}
	if c.logger == nil {
		c.logger = logger.NewLogger()
	}

	return c, nil
}

// Host returns the normalized base URL the client talks to.
func (c *Client) Host() string {
	return c.host
}

// Version returns the version string reported by the API.
func (c *Client) Version(ctx context.Context) (string, error) {
	raw, _, err := c.roundTrip(ctx, http.MethodGet, "version", nil, false, "version")
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// CheckVersion fetches the API version and logs a warning when the
// server is outside the release this client targets. It returns an
// error only when the version could not be fetched.
func (c *Client) CheckVersion(ctx context.Context) error {
	v, err := c.Version(ctx)
	if err != nil {
		return err
	}
	if !strings.HasPrefix(v, expectedAPIRelease) {
		c.logger.WithField("api_version", v).
			Warnf("expected API version %s.x.x, please update the client", expectedAPIRelease)
	}
	return nil
}

// AvailableModels queries all models which are currently available.
func (c *Client) AvailableModels(ctx context.Context) ([]ModelInfo, error) {
	var out []ModelInfo
	if err := c.do(ctx, http.MethodGet, "models_available", nil, &out, "models_available"); err != nil {
		return nil, err
	}
	return out, nil
}

type tokenizeBody struct {
	Model string `json:"model"`
	tokenization.Request
}

// Tokenize tokenizes the given prompt for the given model.
func (c *Client) Tokenize(ctx context.Context, model string, req tokenization.Request) (*tokenization.Response, error) {
	if model == "" {
		return nil, fmt.Errorf("model is required")
	}
	var out tokenization.Response
	if err := c.do(ctx, http.MethodPost, "tokenize", tokenizeBody{Model: model, Request: req}, &out, "tokenize"); err != nil {
		return nil, err
	}
	return &out, nil
}

type detokenizeBody struct {
	Model string `json:"model"`
	tokenization.DetokenizationRequest
}

// Detokenize turns token ids back into text.
func (c *Client) Detokenize(ctx context.Context, model string, req tokenization.DetokenizationRequest) (*tokenization.DetokenizationResponse, error) {
	if model == "" {
		return nil, fmt.Errorf("model is required")
	}
	var out tokenization.DetokenizationResponse
	if err := c.do(ctx, http.MethodPost, "detokenize", detokenizeBody{Model: model, DetokenizationRequest: req}, &out, "detokenize"); err != nil {
		return nil, err
	}
	return &out, nil
}

type completeBody struct {
	Model string `json:"model"`
	completion.Request
}

// Complete generates samples from a prompt.
func (c *Client) Complete(ctx context.Context, model string, req completion.Request) (*completion.Response, error) {
	if model == "" {
		return nil, fmt.Errorf("model is required")
	}
	if req.Hosting == "" {
		req.Hosting = hosting.Default
	}
	var out completion.Response
	if err := c.do(ctx, http.MethodPost, "complete", completeBody{Model: model, Request: req}, &out, "complete"); err != nil {
		return nil, err
	}
	if len(out.OptimizedPrompt) > 0 {
		c.logger.Info("the prompt was optimized before sampling; pass DisableOptimizations to keep it untouched")
	}
	return &out, nil
}

type embedBody struct {
	Model string `json:"model"`
	embedding.Request
}

// Embed returns vector representations of a prompt for downstream
// tasks such as semantic similarity.
func (c *Client) Embed(ctx context.Context, model string, req embedding.Request) (*embedding.Response, error) {
	if model == "" {
		return nil, fmt.Errorf("model is required")
	}
	if req.Hosting == "" {
		req.Hosting = hosting.Default
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	var out embedding.Response
	if err := c.do(ctx, http.MethodPost, "embed", embedBody{Model: model, Request: req}, &out, "embed"); err != nil {
		return nil, err
	}
	return &out, nil
}

type evaluateBody struct {
	Model string `json:"model"`
	evaluation.Request
}

// Evaluate scores the model's likelihood to produce the expected
// completion given a prompt.
func (c *Client) Evaluate(ctx context.Context, model string, req evaluation.Request) (*evaluation.Response, error) {
	if model == "" {
		return nil, fmt.Errorf("model is required")
	}
	if req.Hosting == "" {
		req.Hosting = hosting.Default
	}
	var out evaluation.Response
	if err := c.do(ctx, http.MethodPost, "evaluate", evaluateBody{Model: model, Request: req}, &out, "evaluate"); err != nil {
		return nil, err
	}
	return &out, nil
}

type qaBody struct {
	Model string `json:"model"`
	qa.Request
}

// Qa answers a question about a set of documents.
func (c *Client) Qa(ctx context.Context, model string, req qa.Request) (*qa.Response, error) {
	if model == "" {
		return nil, fmt.Errorf("model is required")
	}
	if req.Hosting == "" {
		req.Hosting = hosting.Default
	}
	var out qa.Response
	if err := c.do(ctx, http.MethodPost, "qa", qaBody{Model: model, Request: req}, &out, "qa"); err != nil {
		return nil, err
	}
	return &out, nil
}

type explainBody struct {
	Model   string `json:"model"`
	Hosting string `json:"hosting,omitempty"`
	explanation.Request
}

// Explain attributes the generation of a target to the prompt tokens.
// The endpoint is experimental; the raw response body is returned.
func (c *Client) Explain(ctx context.Context, model, hosting string, req explanation.Request) (json.RawMessage, error) {
	if model == "" {
		return nil, fmt.Errorf("model is required")
	}
	raw, _, err := c.roundTrip(ctx, http.MethodPost, "explain", explainBody{Model: model, Hosting: hosting, Request: req}, true, "explain")
	if err != nil {
		return nil, err
	}
	return json.RawMessage(raw), nil
}

// do runs one JSON request/response round trip.
func (c *Client) do(ctx context.Context, method, path string, payload, out interface{}, op string) error {
	raw, _, err := c.roundTrip(ctx, method, path, payload, true, op)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to parse %s response: %w", op, err)
	}
	return nil
}

// roundTrip sends the request, retrying transient failures, and returns
// the decoded response body.
func (c *Client) roundTrip(
	ctx context.Context,
	method, path string,
	payload interface{},
	authed bool,
	op string,
) ([]byte, int, error) {
	var body []byte
	if payload != nil {
		var err error
		body, err = json.Marshal(payload)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to marshal %s request: %w", op, err)
		}
	}

	start := time.Now()
	var lastErr error
	status := 0

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			metrics.ObserveRetry(op)
			select {
			case <-time.After(c.retryDelay * time.Duration(attempt)):
			case <-ctx.Done():
				return nil, status, ctx.Err()
			}
		}

		raw, st, err := c.attempt(ctx, method, path, body, authed, op)
		if st != 0 {
			status = st
		}
		if err == nil {
			metrics.ObserveRequest(op, st, time.Since(start))
			return raw, st, nil
		}
		lastErr = err

		if !isTransient(err) {
			break
		}
		if attempt < c.maxRetries {
			c.logger.WithError(err).WithField("attempt", attempt+1).Warn("transient API error, retrying")
		}
	}

	metrics.ObserveRequest(op, status, time.Since(start))
	return nil, status, lastErr
}

// attempt runs a single HTTP exchange.
func (c *Client) attempt(
	ctx context.Context,
	method, path string,
	body []byte,
	authed bool,
	op string,
) ([]byte, int, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.host+path, reader)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create %s request: %w", op, err)
	}

	requestID := uuid.NewString()
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept-Encoding", httpx.AcceptEncoding)
	req.Header.Set("User-Agent", version.UserAgent())
	req.Header.Set("X-Request-Id", requestID)

	if authed {
		token, err := c.resolveToken(ctx)
		if err != nil {
			return nil, 0, err
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	var resp *http.Response
	if c.breaker != nil {
		resp, err = c.breaker.Execute(func() (*http.Response, error) {
			return c.httpClient.Do(req)
		})
	} else {
		resp, err = c.httpClient.Do(req)
	}
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, 0, err
		}
		c.logger.WithError(err).WithField("request_id", requestID).Error("API request failed")
		return nil, 0, fmt.Errorf("%s request failed: %w", op, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("failed to read %s response: %w", op, err)
	}
	decoded, _, err := httpx.DecodeChain(resp.Header, raw)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("failed to decode %s response body: %w", op, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.WithFields(logrus.Fields{
			"status_code": resp.StatusCode,
			"request_id":  requestID,
			"operation":   op,
		}).Error("non-OK response from API")
		return nil, resp.StatusCode, translateError(resp.StatusCode, decoded, requestID)
	}

	return decoded, resp.StatusCode, nil
}

// isTransient determines if an error should trigger a retry.
func isTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	if httpx.IsCircuitOpen(err) {
		return false
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode >= 500
	}
	// remaining failures are transport-level (DNS, resets, timeouts)
	return true
}

// resolveToken returns the static token or fetches one with the
// configured credentials, collapsing concurrent fetches.
func (c *Client) resolveToken(ctx context.Context) (string, error) {
	c.tokenMu.RLock()
	token := c.token
	c.tokenMu.RUnlock()
	if token != "" {
		return token, nil
	}

	v, err, _ := c.tokenGroup.Do("token", func() (interface{}, error) {
		c.tokenMu.RLock()
		cached := c.token
		c.tokenMu.RUnlock()
		if cached != "" {
			return cached, nil
		}

		fetched, err := c.fetchToken(ctx)
		if err != nil {
			return nil, err
		}

		c.tokenMu.Lock()
		c.token = fetched
		c.tokenMu.Unlock()
		return fetched, nil
	})
	if err != nil {
		return "", err
	}
	token, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("unexpected token type %T", v)
	}
	return token, nil
}

func (c *Client) fetchToken(ctx context.Context) (string, error) {
	payload, err := json.Marshal(map[string]string{
		"email":    c.email,
		"password": c.password,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal token request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.host+"get_token", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", version.UserAgent())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("token request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read token response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		c.logger.WithField("status_code", resp.StatusCode).Error("token endpoint returned non-200 status")
		return "", fmt.Errorf("cannot get token: %w", translateError(resp.StatusCode, raw, ""))
	}

	var out struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("invalid token response: %w", err)
	}
	if out.Token == "" {
		return "", fmt.Errorf("token response contained no token")
	}
	return out.Token, nil
}
