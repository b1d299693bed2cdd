// Package ratefeed fetches daily exchange-rate snapshots from a CBR-style JSON feed.
package ratefeed

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/SscSPs/currency_rates_app/internal/apperrors"
	"golang.org/x/time/rate"
)

const (
	DefaultDailyURL       = "https://www.cbr-xml-daily.ru/daily_json.js"
	DefaultArchiveBaseURL = "https://www.cbr-xml-daily.ru/archive"
	DefaultArchiveSuffix  = "daily_json.js"
	DefaultCurrencyKey    = "Valute"
	DefaultTimeout        = 10 * time.Second
	DefaultRateLimit      = 2 // requests per second

	// maxBodyBytes bounds how much of a response is read.
	maxBodyBytes = 4 << 20
)

// FetchResult is either a Snapshot or the reason none could be obtained.
// Exactly one of the two fields is set.
type FetchResult struct {
	Snapshot *Snapshot
	Err      error
}

// OK reports whether the fetch produced a snapshot.
func (r FetchResult) OK() bool {
	return r.Err == nil && r.Snapshot != nil
}

func failed(url string, format string, args ...any) FetchResult {
	return FetchResult{Err: fmt.Errorf("%w: %s: %s", apperrors.ErrUpstreamFetch, url, fmt.Sprintf(format, args...))}
}

// Client fetches snapshots from the feed.
type Client struct {
	dailyURL       string
	archiveBaseURL string
	archiveSuffix  string
	currencyKey    string
	httpClient     *http.Client
	limiter        *rate.Limiter
	logger         *slog.Logger
}

// ClientOption configures the client
type ClientOption func(*Client)

// WithDailyURL sets the URL of the latest snapshot.
func WithDailyURL(url string) ClientOption {
	return func(c *Client) {
		c.dailyURL = url
	}
}

// WithArchive sets the archive URL scheme {base}/{YYYY}/{MM}/{DD}/{suffix}.
func WithArchive(baseURL, suffix string) ClientOption {
	return func(c *Client) {
		c.archiveBaseURL = strings.TrimRight(baseURL, "/")
		c.archiveSuffix = strings.TrimLeft(suffix, "/")
	}
}

// WithCurrencyKey sets the top-level key holding the per-currency map.
func WithCurrencyKey(key string) ClientOption {
	return func(c *Client) {
		c.currencyKey = key
	}
}

// WithTimeout sets the HTTP timeout
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithRateLimit sets the rate limit
func WithRateLimit(requestsPerSecond float64) ClientOption {
	return func(c *Client) {
		burst := int(requestsPerSecond)
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), burst)
	}
}

// WithHTTPClient replaces the underlying HTTP client. Its timeout is kept as is.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger sets the logger
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a feed client with CBR defaults.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		dailyURL:       DefaultDailyURL,
		archiveBaseURL: DefaultArchiveBaseURL,
		archiveSuffix:  DefaultArchiveSuffix,
		currencyKey:    DefaultCurrencyKey,
		httpClient:     &http.Client{Timeout: DefaultTimeout},
		limiter:        rate.NewLimiter(rate.Limit(DefaultRateLimit), DefaultRateLimit),
		logger:         slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	c.logger = c.logger.With(slog.String("component", "ratefeed"))
	return c
}

// ArchiveURL formats the archive location of date.
func (c *Client) ArchiveURL(date time.Time) string {
	return fmt.Sprintf("%s/%s/%s", c.archiveBaseURL, date.Format("2006/01/02"), c.archiveSuffix)
}

// FetchDaily fetches the latest published snapshot.
func (c *Client) FetchDaily(ctx context.Context) FetchResult {
	return c.fetch(ctx, c.dailyURL)
}

// FetchArchive fetches the snapshot published for date.
func (c *Client) FetchArchive(ctx context.Context, date time.Time) FetchResult {
	return c.fetch(ctx, c.ArchiveURL(date))
}

func (c *Client) fetch(ctx context.Context, url string) FetchResult {
	if err := c.limiter.Wait(ctx); err != nil {
		return failed(url, "rate limit wait: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return failed(url, "build request: %v", err)
	}
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("Fetching rate snapshot", slog.String("url", url))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return failed(url, "request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return failed(url, "unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return failed(url, "read body: %v", err)
	}

	snapshot, err := ParseSnapshot(body, c.currencyKey)
	if err != nil {
		return failed(url, "%v", err)
	}
	for _, code := range snapshot.Skipped {
		c.logger.Warn("Skipping unusable currency entry", slog.String("url", url), slog.String("charcode", code))
	}
	return FetchResult{Snapshot: snapshot}
}
