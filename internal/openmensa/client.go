package openmensa

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/five82/mensa/internal/cache"
)

// Fetcher defines the read operations the rest of the app needs from OpenMensa.
// It is implemented by *Client and can be faked in tests.
type Fetcher interface {
	FetchDays(ctx context.Context, canteenID int) ([]Day, error)
	FetchMeals(ctx context.Context, canteenID int, date string) ([]Meal, error)
}

// Ensure Client implements Fetcher at compile time.
var _ Fetcher = (*Client)(nil)

// ErrNotFound is returned when the API answers 404, e.g. for an unknown canteen
// or a day without a published menu.
var ErrNotFound = errors.New("not found")

// StatusError reports any other HTTP error status.
type StatusError struct {
	Path string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("api %s returned status %d", e.Path, e.Code)
}

// Client talks to the OpenMensa v2 HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
	cache     *cache.Cache
	logger    *zap.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithCache stores successful responses and serves them when a request fails.
func WithCache(c *cache.Cache) Option {
	return func(cl *Client) { cl.cache = c }
}

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(cl *Client) {
		if h != nil {
			cl.http = h
		}
	}
}

// WithLogger sets the logger used for cache fallbacks and request tracing.
func WithLogger(l *zap.Logger) Option {
	return func(cl *Client) {
		if l != nil {
			cl.logger = l
		}
	}
}

const (
	DefaultBaseURL   = "https://openmensa.org/api/v2"
	defaultUserAgent = "mensa/0.1"
	requestTimeout   = 10 * time.Second
)

// NewClient builds a Client for the API rooted at baseURL.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	c := &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// FetchDays lists the upcoming days of a canteen.
func (c *Client) FetchDays(ctx context.Context, canteenID int) ([]Day, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	if canteenID <= 0 {
		return nil, fmt.Errorf("canteen id required")
	}
	var payload []Day
	if err := c.do(ctx, "/canteens/"+strconv.Itoa(canteenID)+"/days", &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// FetchMeals lists the meals a canteen serves on date (YYYY-MM-DD).
func (c *Client) FetchMeals(ctx context.Context, canteenID int, date string) ([]Meal, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	if canteenID <= 0 {
		return nil, fmt.Errorf("canteen id required")
	}
	if _, err := time.Parse(dateLayout, date); err != nil {
		return nil, fmt.Errorf("invalid date %q", date)
	}
	var payload []Meal
	path := "/canteens/" + strconv.Itoa(canteenID) + "/days/" + date + "/meals"
	if err := c.do(ctx, path, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

func (c *Client) do(ctx context.Context, path string, dest any) error {
	body, err := c.get(ctx, path)
	if err != nil {
		cached, ok := c.cached(ctx, path, err)
		if !ok {
			return err
		}
		if err := json.Unmarshal(cached, dest); err != nil {
			return fmt.Errorf("decode cached response: %w", err)
		}
		return nil
	}
	if err := json.Unmarshal(body, dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	c.store(ctx, path, body)
	return nil
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	reqURL := c.baseURL.JoinPath(strings.TrimPrefix(path, "/"))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	c.logger.Debug("api request", zap.String("path", path))
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("api %s: %w", path, ErrNotFound)
	}
	if resp.StatusCode >= 400 {
		return nil, &StatusError{Path: path, Code: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	return body, nil
}

// cached returns the stored body for path when cause is a transient failure
// (network or 5xx). Client errors are never masked.
func (c *Client) cached(ctx context.Context, path string, cause error) ([]byte, bool) {
	if c.cache == nil || !transient(cause) {
		return nil, false
	}
	entry, ok, err := c.cache.Get(ctx, path)
	if err != nil {
		c.logger.Warn("cache lookup failed", zap.String("path", path), zap.Error(err))
		return nil, false
	}
	if !ok {
		return nil, false
	}
	c.logger.Warn("serving cached response",
		zap.String("path", path),
		zap.Time("fetched_at", entry.FetchedAt),
		zap.Error(cause),
	)
	return entry.Body, true
}

func (c *Client) store(ctx context.Context, path string, body []byte) {
	if c.cache == nil {
		return
	}
	if err := c.cache.Put(ctx, path, body); err != nil {
		c.logger.Warn("cache store failed", zap.String("path", path), zap.Error(err))
	}
}

func transient(err error) bool {
	if errors.Is(err, ErrNotFound) {
		return false
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Code >= 500
	}
	return true
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = DefaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api_url %q: %w", raw, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse api_url %q: missing host", raw)
	}
	u.Path = strings.TrimRight(u.Path, "/")
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
