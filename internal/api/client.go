package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/homeveda/portal-client/internal/metrics"
	"github.com/homeveda/portal-client/internal/utils"
)

// Client talks to the portal backend. Every call is stateless: the caller
// passes the bearer token it read from its AuthContext at the start of the
// operation.
type Client struct {
	BaseURL      *url.URL // nil when no backend is configured
	HTTPClient   *http.Client
	MaxRetries   int           // how many times to retry on 429
	RetryInitial time.Duration // initial backoff
}

// NewClient builds a client for baseURL. An empty baseURL is accepted; every
// call then fails with utils.ErrBackendNotConfigured before doing any I/O.
func NewClient(baseURL string, timeout time.Duration, maxRetries int, retryInitial time.Duration) (*Client, error) {
	var parsed *url.URL
	if baseURL = strings.TrimSpace(baseURL); baseURL != "" {
		u, err := url.Parse(strings.TrimRight(baseURL, "/"))
		if err != nil {
			return nil, fmt.Errorf("invalid baseURL: %w", err)
		}
		if u.Scheme == "" || u.Host == "" {
			return nil, fmt.Errorf("invalid baseURL: %q needs scheme and host", baseURL)
		}
		parsed = u
	}
	if maxRetries < 0 {
		maxRetries = 0
	}
	if retryInitial <= 0 {
		retryInitial = 500 * time.Millisecond
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		BaseURL:      parsed,
		HTTPClient:   &http.Client{Timeout: timeout},
		MaxRetries:   maxRetries,
		RetryInitial: retryInitial,
	}, nil
}

// Configured reports whether a backend URL is set.
func (c *Client) Configured() bool {
	return c != nil && c.BaseURL != nil
}

// call describes one logical request. route is the path template used as
// the metrics label, e.g. "/catelog/:name".
type call struct {
	method string
	path   string
	route  string
	token  string
	body   any
	form   *multipartForm
	out    any
}

// doRequest executes c with backoff on 429 and returns the final status.
func (c *Client) doRequest(ctx context.Context, req call) (int, error) {
	if !c.Configured() {
		return 0, utils.ErrBackendNotConfigured
	}

	attempt := 0
	backoff := c.RetryInitial
	for {
		status, err := c.doOnce(ctx, req)
		if err == nil {
			return status, nil
		}
		if errors.Is(err, utils.ErrRateLimitExceeded) && attempt < c.MaxRetries {
			attempt++
			select {
			case <-ctx.Done():
				return status, ctx.Err()
			case <-time.After(backoff):
			}
			backoff *= 2
			continue
		}
		return status, err
	}
}

// doOnce performs a single attempt. Multipart bodies are rebuilt every time.
func (c *Client) doOnce(ctx context.Context, req call) (int, error) {
	fullURL := strings.TrimRight(c.BaseURL.String(), "/") + req.path

	var reqBody io.Reader
	contentType := ""
	switch {
	case req.form != nil:
		buf, ct, err := req.form.encode()
		if err != nil {
			return 0, fmt.Errorf("failed to encode multipart body: %w", err)
		}
		reqBody, contentType = buf, ct
	case req.body != nil:
		jsonBytes, err := json.Marshal(req.body)
		if err != nil {
			return 0, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody, contentType = bytes.NewReader(jsonBytes), "application/json"
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, fullURL, reqBody)
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}
	httpReq.Header.Set("Accept", "application/json")
	if req.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+req.token)
	}
	requestID := uuid.NewString()
	httpReq.Header.Set("X-Request-Id", requestID)

	logger := utils.Logger.WithFields(logrus.Fields{
		"method":     req.method,
		"route":      req.route,
		"request_id": requestID,
	})
	logger.Debug("Sending backend request")

	started := time.Now()
	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		metrics.RecordAPICall(req.method, req.route, 0, time.Since(started))
		logger.WithError(err).Warn("Backend request failed")
		return 0, &utils.APIError{Code: utils.ErrCodeTransport, Err: fmt.Errorf("failed to make request: %w", err)}
	}
	defer resp.Body.Close()
	metrics.RecordAPICall(req.method, req.route, resp.StatusCode, time.Since(started))
	logger = logger.WithField("status", resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := c.handleHTTPError(resp)
		logger.WithError(apiErr).Warn("Backend returned an error")
		return resp.StatusCode, apiErr
	}
	logger.Debug("Backend request succeeded")

	if req.out == nil {
		io.Copy(io.Discard, resp.Body)
		return resp.StatusCode, nil
	}
	if err := json.NewDecoder(resp.Body).Decode(req.out); err != nil && !errors.Is(err, io.EOF) {
		return resp.StatusCode, fmt.Errorf("failed to decode response: %w", err)
	}
	return resp.StatusCode, nil
}

// errorBody is the error shape the backend uses: {"message": "..."} or {"error": "..."}.
type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// handleHTTPError maps a non-2xx response to *utils.APIError carrying the
// server message when the body has one.
func (c *Client) handleHTTPError(resp *http.Response) *utils.APIError {
	bodyBytes, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))

	var body errorBody
	message := ""
	if err := json.Unmarshal(bodyBytes, &body); err == nil {
		message = utils.FirstNonEmpty(body.Message, body.Error)
	}
	return utils.NewAPIError(resp.StatusCode, message)
}

// decodeList accepts either a bare JSON array or an object wrapping the array
// under key.
func decodeList[T any](raw json.RawMessage, key string) ([]T, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return []T{}, nil
	}
	if trimmed[0] == '[' {
		var out []T
		if err := json.Unmarshal(trimmed, &out); err != nil {
			return nil, fmt.Errorf("failed to decode list: %w", err)
		}
		return out, nil
	}
	var wrapped map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &wrapped); err != nil {
		return nil, fmt.Errorf("failed to decode list: %w", err)
	}
	inner, ok := wrapped[key]
	if !ok {
		return []T{}, nil
	}
	return decodeList[T](inner, key)
}
