package golemio

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"pidboard/pkg/dlog"

	"github.com/pkg/errors"
)

const (
	// DefaultBaseURL is the PID section of the Golemio v2 API.
	DefaultBaseURL = "https://api.golemio.cz/v2/pid"
	// DefaultLimit is how many departures one board request asks for.
	DefaultLimit = 10

	departureBoardsPath = "/departureboards/"
)

// Client talks to the Golemio departure-board endpoint
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     *dlog.Logger
}

// ClientOption customizes a Client built by NewClient.
type ClientOption func(*Client)

// WithBaseURL points the client at another API root, e.g. a test server.
func WithBaseURL(u string) ClientOption {
	return func(c *Client) {
		if u != "" {
			c.baseURL = u
		}
	}
}

func WithHTTPClient(h *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = h
	}
}

func WithLogger(l *dlog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = l
	}
}

// NewClient creates a client that sends apiKey as X-Access-Token.
func NewClient(apiKey string, opts ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    DefaultBaseURL,
		apiKey:     apiKey,
		logger:     dlog.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchBoard gets the departure board for a single stop ID. Failures are
// always returned as *Error.
func (c *Client) FetchBoard(ctx context.Context, stopID string, limit int) (*BoardResponse, error) {
	reqURL := fmt.Sprintf("%s%s?ids=%s&limit=%d", c.baseURL, departureBoardsPath, url.QueryEscape(stopID), limit)
	c.logger.Debugf("GET %s", reqURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, &Error{Kind: KindTransport, Err: errors.Wrap(err, "cannot create departure board request")}
	}
	// Golemio ignores it on a GET, but the board has always sent it
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Access-Token", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &Error{Kind: KindTransport, Err: errors.Wrap(err, "failed to fetch departures")}
	}
	defer resp.Body.Close()

	c.logger.Debugf("departure board responded %d", resp.StatusCode)

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, &Error{Kind: KindUnauthorized, StatusCode: resp.StatusCode}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &Error{Kind: KindHTTP, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Kind: KindTransport, Err: errors.Wrap(err, "failed to read departure board body")}
	}

	var board BoardResponse
	if err := json.Unmarshal(body, &board); err != nil {
		return nil, &Error{Kind: KindParse, Err: errors.Wrap(err, "failed to decode departure board JSON")}
	}

	return &board, nil
}
