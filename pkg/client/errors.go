package client

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/valyala/fastjson"
)

// Sentinel errors matched against API status codes. Use errors.Is to
// branch on them; the concrete *APIError carries the decoded detail.
var (
	ErrBadRequest     = errors.New("bad request")
	ErrUnauthorized   = errors.New("not authorized")
	ErrQuotaExceeded  = errors.New("quota exceeded")
	ErrRequestTimeout = errors.New("request timed out")
	ErrServer         = errors.New("server error")
)

// APIError is a non-2xx response from the API.
type APIError struct {
	StatusCode int
	Message    string
	RequestID  string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error: status %d", e.StatusCode)
	}
	return fmt.Sprintf("api error: status %d: %s", e.StatusCode, e.Message)
}

func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case 400:
		return ErrBadRequest
	case 401:
		return ErrUnauthorized
	case 402:
		return ErrQuotaExceeded
	case 408:
		return ErrRequestTimeout
	default:
		return ErrServer
	}
}

func translateError(statusCode int, body []byte, requestID string) error {
	return &APIError{
		StatusCode: statusCode,
		Message:    errorMessage(body),
		RequestID:  requestID,
	}
}

const maxErrorDetailLen = 256

// errorMessage pulls a human readable message out of an error body
// without unmarshalling the whole document. Bodies that are not JSON are
// returned truncated as-is.
func errorMessage(body []byte) string {
	v, err := fastjson.ParseBytes(body)
	if err != nil {
		return truncate(string(body))
	}
	for _, key := range []string{"error", "message", "detail"} {
		field := v.Get(key)
		if field == nil {
			continue
		}
		if field.Type() == fastjson.TypeString {
			return truncate(string(field.GetStringBytes()))
		}
		return truncate(field.String())
	}
	return truncate(string(body))
}

func truncate(s string) string {
	if len(s) <= maxErrorDetailLen {
		return s
	}
	// back up to a rune boundary so the cut never splits a character
	cut := maxErrorDetailLen
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
