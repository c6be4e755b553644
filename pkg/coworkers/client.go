package coworkers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultBaseURL is where the coworker API listens in local setups.
const DefaultBaseURL = "http://localhost:8000"

const (
	opListCoworkers   = "list coworkers"
	opListDepartments = "list departments"
	opCreateCoworker  = "create coworker"
)

// Client calls the coworker API over HTTP/JSON. Any non-2xx response is a
// failure; error bodies are discarded.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
	timeout    *time.Duration
}

// Option customizes a Client.
type Option func(*Client)

// WithBaseURL overrides DefaultBaseURL.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if baseURL = strings.TrimSpace(baseURL); baseURL != "" {
			c.baseURL = strings.TrimRight(baseURL, "/")
		}
	}
}

// WithHTTPClient replaces the default 10s-timeout client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout sets the per-request timeout. A client passed through
// WithHTTPClient is copied first and never modified.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = &d
	}
}

// WithLogger attaches a logger; requests are logged at debug level.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewClient builds a Client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.timeout != nil {
		hc := *c.httpClient
		hc.Timeout = *c.timeout
		c.httpClient = &hc
	}
	return c
}

// ListCoworkers issues GET /coworkers. Empty criteria fields are omitted
// from the query string.
func (c *Client) ListCoworkers(ctx context.Context, criteria Criteria) ([]Record, error) {
	query := url.Values{}
	if criteria.SearchText != "" {
		query.Set("search", criteria.SearchText)
	}
	if criteria.Department != AllDepartments {
		query.Set("department", criteria.Department)
	}

	var records []Record
	if err := c.do(ctx, FetchFailed, opListCoworkers, http.MethodGet, "/coworkers", query, nil, &records); err != nil {
		return nil, err
	}
	if records == nil {
		records = []Record{}
	}
	return records, nil
}

// ListDepartments issues GET /departments.
func (c *Client) ListDepartments(ctx context.Context) ([]string, error) {
	var body struct {
		Departments []string `json:"departments"`
	}
	if err := c.do(ctx, FetchFailed, opListDepartments, http.MethodGet, "/departments", nil, nil, &body); err != nil {
		return nil, err
	}
	if body.Departments == nil {
		body.Departments = []string{}
	}
	return body.Departments, nil
}

// CreateCoworker issues POST /coworkers. The created record is returned when
// the response body decodes; a 2xx with an unreadable body still succeeds
// and yields a nil record.
func (c *Client) CreateCoworker(ctx context.Context, req CreateRequest) (*Record, error) {
	var created Record
	err := c.do(ctx, CreateFailed, opCreateCoworker, http.MethodPost, "/coworkers", nil, req, &created)
	if err != nil {
		var de *decodeError
		if errors.As(err, &de) {
			c.logger.Debug("create response not decoded", zap.Error(de.err))
			return nil, nil
		}
		return nil, err
	}
	return &created, nil
}

type decodeError struct{ err error }

func (e *decodeError) Error() string { return "decode response: " + e.err.Error() }
func (e *decodeError) Unwrap() error { return e.err }

func (c *Client) do(ctx context.Context, kind Kind, op, method, path string, query url.Values, in, out any) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return &SyncError{Kind: kind, Op: op, Err: err}
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return &SyncError{Kind: kind, Op: op, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("coworker api request failed",
			zap.String("op", op),
			zap.String("request_id", requestID),
			zap.Error(err))
		return &SyncError{Kind: kind, Op: op, Err: err}
	}
	defer resp.Body.Close()

	c.logger.Debug("coworker api response",
		zap.String("op", op),
		zap.String("method", method),
		zap.String("url", target),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
		zap.String("request_id", requestID))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return &SyncError{Kind: kind, Op: op, StatusCode: resp.StatusCode}
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if kind == CreateFailed {
			return &decodeError{err: err}
		}
		return &SyncError{Kind: kind, Op: op, Err: &decodeError{err: err}}
	}
	return nil
}
