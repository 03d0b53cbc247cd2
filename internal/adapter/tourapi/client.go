package tourapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/tour-search/tour-search-and-booking-system/internal/domain"
	"github.com/tour-search/tour-search-and-booking-system/internal/infrastructure/retry"
)

// Remote endpoint paths, as exposed by the tour backend.
const (
	pathTourList        = "/get-tour-list"
	pathFilterTours     = "/filter-tour/by-query"
	pathTourDetail      = "/get-tour"
	pathCreateBooking   = "/tour-booking/create-tour-booking"
	pathUserBookings    = "/tour-booking/get-users-booking"
	defaultHTTPTimeout  = 10 * time.Second
	defaultRateLimitRPS = 10
)

// Config holds the client configuration options.
type Config struct {
	// BaseURL is the root of the remote tour API
	BaseURL string

	// Timeout bounds each HTTP request
	Timeout time.Duration

	// RateLimitRPS caps outbound requests per second
	RateLimitRPS float64

	// Retry configures the backoff applied to idempotent reads
	Retry retry.Config
}

// DefaultConfig returns the default client configuration for the given base URL.
func DefaultConfig(baseURL string) Config {
	return Config{
		BaseURL:      baseURL,
		Timeout:      defaultHTTPTimeout,
		RateLimitRPS: defaultRateLimitRPS,
		Retry:        retry.UpstreamConfig,
	}
}

// Client talks to the remote tour API. Reads are retried with backoff and
// all calls pass through an outbound rate limiter; booking creation is never
// retried because it is not idempotent.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	retryCfg   retry.Config
	log        zerolog.Logger
}

// New creates a Client from the given configuration.
func New(cfg Config, log zerolog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}
	rps := cfg.RateLimitRPS
	if rps <= 0 {
		rps = defaultRateLimitRPS
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		limiter:    rate.NewLimiter(rate.Limit(rps), int(rps)),
		retryCfg:   cfg.Retry,
		log:        log,
	}
}

// ListTours fetches the unfiltered tour list.
func (c *Client) ListTours(ctx context.Context) ([]domain.Tour, error) {
	raw, err := c.getWithRetry(ctx, "list-tours", c.baseURL+pathTourList, nil)
	if err != nil {
		return nil, err
	}
	return DecodeList[domain.Tour](raw), nil
}

// FilterTours fetches the tour list matching the given query payload.
// An empty payload is equivalent to ListTours.
func (c *Client) FilterTours(ctx context.Context, payload domain.QueryPayload) ([]domain.Tour, error) {
	if payload.IsEmpty() {
		return c.ListTours(ctx)
	}

	raw, err := c.getWithRetry(ctx, "filter-tours", c.baseURL+pathFilterTours, payload.Values())
	if err != nil {
		return nil, err
	}
	return DecodeList[domain.Tour](raw), nil
}

// GetTour fetches a single tour by its identifier.
func (c *Client) GetTour(ctx context.Context, id string) (domain.Tour, error) {
	if strings.TrimSpace(id) == "" {
		return domain.Tour{}, fmt.Errorf("%w: tour id is required", domain.ErrInvalidRequest)
	}

	raw, err := c.getWithRetry(ctx, "get-tour", c.baseURL+pathTourDetail+"/"+url.PathEscape(id), nil)
	if err != nil {
		return domain.Tour{}, err
	}

	tour, ok := DecodeItem[domain.Tour](raw)
	if !ok || tour.ID == "" {
		return domain.Tour{}, fmt.Errorf("%w: tour %s", domain.ErrNotFound, id)
	}
	return tour, nil
}

// CreateBooking submits a new tour booking. The request must already be
// validated; this call is not retried.
func (c *Client) CreateBooking(ctx context.Context, req domain.BookingRequest) (domain.Booking, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("marshal booking request: %w", err)
	}

	raw, err := c.do(ctx, "create-booking", http.MethodPost, c.baseURL+pathCreateBooking, nil, bytes.NewReader(body))
	if err != nil {
		return domain.Booking{}, err
	}

	booking, ok := DecodeItem[domain.Booking](raw)
	if !ok {
		return domain.Booking{}, domain.NewUpstreamError("create-booking", fmt.Errorf("unexpected response shape"))
	}
	return booking, nil
}

// ListUserBookings fetches the bookings belonging to the given user.
func (c *Client) ListUserBookings(ctx context.Context, userID string) ([]domain.Booking, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, fmt.Errorf("%w: userId is required", domain.ErrInvalidRequest)
	}

	query := url.Values{}
	query.Set("userId", userID)

	raw, err := c.getWithRetry(ctx, "list-user-bookings", c.baseURL+pathUserBookings, query)
	if err != nil {
		return nil, err
	}
	return DecodeList[domain.Booking](raw), nil
}

// getWithRetry performs a GET with the configured backoff. Client-side
// failures (4xx) are permanent and short-circuit the retry loop.
func (c *Client) getWithRetry(ctx context.Context, op, rawURL string, query url.Values) ([]byte, error) {
	return retry.DoWithResult(ctx, func() ([]byte, error) {
		return c.do(ctx, op, http.MethodGet, rawURL, query, nil)
	}, c.retryCfg)
}

// do executes a single HTTP request and maps failures onto the domain error
// taxonomy.
func (c *Client) do(ctx context.Context, op, method, rawURL string, query url.Values, body io.Reader) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	if len(query) > 0 {
		rawURL = rawURL + "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return nil, retry.NewPermanent(domain.NewUpstreamError(op, err))
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn().Str("op", op).Err(err).Msg("Tour API request failed")
		return nil, domain.NewRetryableUpstreamError(op, fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domain.NewRetryableUpstreamError(op, fmt.Errorf("%w: read body: %v", domain.ErrUpstreamUnavailable, err))
	}

	c.log.Debug().
		Str("op", op).
		Int("status", resp.StatusCode).
		Int64("duration_ms", time.Since(start).Milliseconds()).
		Msg("Tour API request")

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return raw, nil
	case resp.StatusCode == http.StatusNotFound:
		return nil, retry.NewPermanent(fmt.Errorf("%w: %s", domain.ErrNotFound, decodeMessage(raw, "resource not found")))
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return nil, retry.NewPermanent(fmt.Errorf("%w: %s", domain.ErrInvalidRequest, decodeMessage(raw, "request rejected by tour service")))
	default:
		return nil, domain.NewRetryableUpstreamError(op,
			fmt.Errorf("%w: %s", domain.ErrUpstreamUnavailable, decodeMessage(raw, resp.Status)))
	}
}
