// Package api provides typed request/response wrappers around the remote
// resume-analysis HTTP API. The gateway maps each operation to one HTTP call
// and folds transport failures on read/delete operations into the server's
// own {status:false, message} shape, so callers handle business rejections
// and network faults identically. It performs no response normalization;
// the reports synchronizer owns that.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// userAgent identifies the client to the API.
const userAgent = "resume-dash/1.0"

// Error represents a transport-level failure talking to the API.
type Error struct {
	Op      string
	URL     string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("api error in %s for %s: %s: %v", e.Op, e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("api error in %s for %s: %s", e.Op, e.URL, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Options configures the gateway.
type Options struct {
	Timeout time.Duration
	Logger  *zap.Logger
}

// DefaultOptions returns sensible defaults.
func DefaultOptions() *Options {
	return &Options{Timeout: DefaultTimeout}
}

// Gateway issues HTTP calls against one API base URL.
type Gateway struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

// NewGateway creates a gateway for the given base URL.
func NewGateway(baseURL string, opts *Options) *Gateway {
	if opts == nil {
		opts = DefaultOptions()
	}
	if opts.Timeout == 0 {
		opts.Timeout = DefaultTimeout
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Gateway{
		baseURL: baseURL,
		client:  &http.Client{Timeout: opts.Timeout},
		logger:  logger,
	}
}

// do executes one request and returns the response body. Every call is
// stamped with a fresh X-Request-ID so client logs can be correlated with
// server logs. A non-2xx status is returned as *Error with the status code
// in the message, body still included when present.
func (g *Gateway) do(ctx context.Context, op, method, path string, body io.Reader, contentType string) ([]byte, error) {
	fullURL := g.baseURL + path
	req, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return nil, &Error{Op: op, URL: fullURL, Message: "failed to create request", Cause: err}
	}

	requestID := uuid.NewString()
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("X-Request-ID", requestID)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	g.logger.Debug("api request",
		zap.String("op", op),
		zap.String("method", method),
		zap.String("url", fullURL),
		zap.String("request_id", requestID))

	resp, err := g.client.Do(req)
	if err != nil {
		g.logger.Warn("api request failed",
			zap.String("op", op), zap.String("request_id", requestID), zap.Error(err))
		return nil, &Error{Op: op, URL: fullURL, Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Op: op, URL: fullURL, Message: "failed to read response body", Cause: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		g.logger.Warn("api returned non-2xx",
			zap.String("op", op),
			zap.Int("status", resp.StatusCode),
			zap.String("request_id", requestID))
		return payload, &Error{
			Op:      op,
			URL:     fullURL,
			Message: fmt.Sprintf("HTTP error! status: %d", resp.StatusCode),
		}
	}

	return payload, nil
}

// postJSON marshals v and POSTs it to path.
func (g *Gateway) postJSON(ctx context.Context, op, path string, v any) ([]byte, error) {
	encoded, err := json.Marshal(v)
	if err != nil {
		return nil, &Error{Op: op, URL: g.baseURL + path, Message: "failed to encode request body", Cause: err}
	}
	return g.do(ctx, op, http.MethodPost, path, bytes.NewReader(encoded), "application/json")
}

// escape path-escapes one URL segment (emails appear in paths).
func escape(segment string) string {
	return url.PathEscape(segment)
}
