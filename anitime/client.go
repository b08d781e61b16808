package anitime

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// DefaultBaseURL is the production service address.
const DefaultBaseURL = "https://www.anissia.net/anitime"

// Client performs requests against the schedule service.
// It holds no per-call state and is safe for concurrent use.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at another address, e.g. a local stand-in.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = u
	}
}

// WithHTTPClient sets the transport handle used for every request.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// New creates a client for DefaultBaseURL unless overridden by opts.
func New(opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.baseURL = strings.TrimRight(c.baseURL, "/")
	return c
}

// BaseURL returns the address requests are sent to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Schedule fetches the broadcast table for day.
func (c *Client) Schedule(ctx context.Context, day Day) ([]Anime, error) {
	if !day.Valid() {
		return nil, fmt.Errorf("anitime list: invalid day %d", int(day))
	}

	var animes []Anime
	err := c.post(ctx, "list", url.Values{"w": {strconv.Itoa(day.Code())}}, &animes)
	if err != nil {
		return nil, err
	}
	return animes, nil
}

// Captions fetches the subtitle releases for the anime with the given ID,
// as found in Anime.ID.
func (c *Client) Captions(ctx context.Context, animeID int) ([]Caption, error) {
	var captions []Caption
	err := c.post(ctx, "cap", url.Values{"i": {strconv.Itoa(animeID)}}, &captions)
	if err != nil {
		return nil, err
	}
	return captions, nil
}

// post sends form to {base}/{op} and decodes the JSON body into v.
func (c *Client) post(ctx context.Context, op string, form url.Values, v any) error {
	endpoint := c.baseURL + "/" + op

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return &RequestError{Op: op, URL: endpoint, Err: err}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &RequestError{Op: op, URL: endpoint, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return &RequestError{Op: op, URL: endpoint, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &RequestError{Op: op, URL: endpoint, Err: fmt.Errorf("read body: %w", err)}
	}

	if err := json.Unmarshal(body, v); err != nil {
		return &DecodeError{Op: op, Err: err}
	}

	return nil
}
