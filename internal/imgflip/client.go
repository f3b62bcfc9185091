package imgflip

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"memegrip/internal/domain"
)

// DefaultUserAgent is sent with every listing request
const DefaultUserAgent = "memegrip/1"

// Client fetches the template listing from the Imgflip endpoint
type Client struct {
	endpoint   string
	httpClient *http.Client
	userAgent  string
	logger     *zap.Logger
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the default http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout sets the http.Client timeout. Zero leaves it to the transport.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// WithUserAgent overrides the User-Agent header
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// WithLogger sets the logger
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) { c.logger = l.Named("imgflip") }
}

// NewClient creates a client for the given listing endpoint
func NewClient(endpoint string, opts ...Option) *Client {
	c := &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{},
		userAgent:  DefaultUserAgent,
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// listing is the wire shape of the endpoint response
type listing struct {
	Success      *bool  `json:"success"`
	ErrorMessage string `json:"error_message"`
	Data         *struct {
		Memes *[]domain.Template `json:"memes"`
	} `json:"data"`
}

// FetchTemplates issues one GET to the listing endpoint and returns the
// templates in the order the endpoint lists them
func (c *Client) FetchTemplates(ctx context.Context) ([]domain.Template, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, &FetchError{Err: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("listing request failed", zap.String("endpoint", c.endpoint), zap.Error(err))
		return nil, &FetchError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		c.logger.Warn("listing returned non-2xx", zap.Int("status", resp.StatusCode))
		return nil, &FetchError{StatusCode: resp.StatusCode}
	}

	templates, err := decodeListing(resp.Body)
	if err != nil {
		c.logger.Warn("listing rejected", zap.Error(err))
		return nil, err
	}

	c.logger.Info("listing fetched",
		zap.Int("count", len(templates)),
		zap.Duration("took", time.Since(start)))
	return templates, nil
}

func decodeListing(r io.Reader) ([]domain.Template, error) {
	var body listing
	if err := json.NewDecoder(r).Decode(&body); err != nil {
		return nil, &PayloadError{Reason: "invalid JSON", Err: err}
	}

	if body.Success == nil || !*body.Success {
		reason := "success flag not set"
		if body.ErrorMessage != "" {
			reason = fmt.Sprintf("%s (%s)", reason, body.ErrorMessage)
		}
		return nil, &PayloadError{Reason: reason}
	}
	if body.Data == nil || body.Data.Memes == nil {
		return nil, &PayloadError{Reason: "memes array missing"}
	}

	return *body.Data.Memes, nil
}
