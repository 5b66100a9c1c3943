package youtube

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"
)

const defaultBaseURL = "https://www.googleapis.com"

// maxPerPage is the largest page size the API accepts.
const maxPerPage = 50

// HTTPClient interface for making HTTP requests (allows injection for testing).
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// ClientOption configures the Client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient HTTPClient) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithBaseURL sets a custom base URL (useful for testing).
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithParts sets the default part string sent with every query that doesn't
// specify its own. Broader part strings return more data per item but cost
// more quota; the default is "id", the cheapest possible.
func WithParts(parts ...string) ClientOption {
	return func(c *Client) {
		if len(parts) > 0 {
			c.part = joinParts(parts)
		}
	}
}

// WithLogger sets the logger used for request-level debug output.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithRateLimit paces outgoing requests to at most rps per second. The
// service enforces quota server-side and this client does no retrying, so
// pacing is the one throttle available; a blocked Wait honours the request
// context and its error propagates unchanged.
func WithRateLimit(rps float64) ClientOption {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

// WithResultCap sets the hard cap on items any cursor created by this client
// will yield.
func WithResultCap(n int) ClientOption {
	return func(c *Client) {
		if n > 0 {
			c.resultCap = n
		}
	}
}

// Client is the interface to the YouTube Data API: it turns high-level
// operations into queries and wraps their results in cursors and lazy
// resources.
type Client struct {
	key        string
	part       string
	baseURL    string
	httpClient HTTPClient
	limiter    *rate.Limiter
	logger     *slog.Logger
	resultCap  int
}

// NewClient creates a client authenticated with the given developer API key.
// The key is mandatory; resolution from environment or config files is the
// caller's concern (see internal/config for the CLI's resolver).
func NewClient(key string, opts ...ClientOption) (*Client, error) {
	if key == "" {
		return nil, ErrMissingCredential
	}

	c := &Client{
		key:        key,
		part:       "id",
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{},
		logger:     slog.Default(),
		resultCap:  DefaultResultCap,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// SearchOptions narrows a search query.
type SearchOptions struct {
	// Query is the free-text search term.
	Query string
	// Type restricts results to one resource type ("video", "channel",
	// "playlist"). Empty returns a mix of kinds.
	Type string
	// PerPage is the page size to request, capped at 50 by the service.
	PerPage int
	// PublishedAfter limits results to resources published after this time.
	PublishedAfter time.Time
	// Extra parameters are passed through verbatim and win over the ones
	// built from the fields above.
	Extra url.Values
}

// Search builds a search cursor. No network traffic happens until the first
// item is pulled.
func (c *Client) Search(opts SearchOptions) (*Cursor, error) {
	params := url.Values{}
	if opts.Query != "" {
		params.Set("q", opts.Query)
	}
	if opts.Type != "" {
		params.Set("type", opts.Type)
	}
	if opts.PerPage > 0 {
		perPage := opts.PerPage
		if perPage > maxPerPage {
			c.logger.Warn("cannot fetch more than 50 results per page", "requested", perPage)
			perPage = maxPerPage
		}
		params.Set("maxResults", strconv.Itoa(perPage))
	}
	if !opts.PublishedAfter.IsZero() {
		params.Set("publishedAfter", opts.PublishedAfter.UTC().Format(time.RFC3339))
	}
	for key, vals := range opts.Extra {
		params[key] = vals
	}

	q, err := c.Query("search", params)
	if err != nil {
		return nil, err
	}
	return NewCursor(q), nil
}

// Video fetches a single video by id.
func (c *Client) Video(ctx context.Context, id string) (*Video, error) {
	r, err := c.lookup(ctx, "videos", id)
	if err != nil {
		return nil, err
	}
	v, ok := r.(*Video)
	if !ok {
		return nil, fmt.Errorf("videos %q returned kind %q: %w", id, r.Kind(), ErrMalformedResponse)
	}
	return v, nil
}

// VideoFromURL fetches a single video from a watch-page, short or embed URL.
func (c *Client) VideoFromURL(ctx context.Context, rawURL string) (*Video, error) {
	id := VideoIDFromURL(rawURL)
	if id == "" {
		return nil, fmt.Errorf("no video id in url %q: %w", rawURL, ErrNotFound)
	}
	return c.Video(ctx, id)
}

// Channel fetches a single channel by id.
func (c *Client) Channel(ctx context.Context, id string) (*Channel, error) {
	r, err := c.lookup(ctx, "channels", id)
	if err != nil {
		return nil, err
	}
	ch, ok := r.(*Channel)
	if !ok {
		return nil, fmt.Errorf("channels %q returned kind %q: %w", id, r.Kind(), ErrMalformedResponse)
	}
	return ch, nil
}

// Playlist fetches a single playlist by id.
func (c *Client) Playlist(ctx context.Context, id string) (*Playlist, error) {
	r, err := c.lookup(ctx, "playlists", id)
	if err != nil {
		return nil, err
	}
	p, ok := r.(*Playlist)
	if !ok {
		return nil, fmt.Errorf("playlists %q returned kind %q: %w", id, r.Kind(), ErrMalformedResponse)
	}
	return p, nil
}

// lookup runs an id-scoped list query and returns its first item.
func (c *Client) lookup(ctx context.Context, endpoint, id string) (Resource, error) {
	q, err := c.Query(endpoint, url.Values{"id": []string{id}})
	if err != nil {
		return nil, err
	}

	r, err := NewCursor(q).First(ctx)
	if errors.Is(err, ErrDone) {
		return nil, fmt.Errorf("%s %q: %w", endpoint, id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return r, nil
}

// do performs one GET against the API and returns the response body.
func (c *Client) do(ctx context.Context, path string, params url.Values) ([]byte, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	c.logger.Debug("youtube api request", "path", path, "params", params.Encode())

	// the key is appended after logging so it never reaches the log stream
	query := url.Values{}
	for key, vals := range params {
		query[key] = vals
	}
	query.Set("key", c.key)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, c.handleAPIError(resp.StatusCode)
	}

	return body, nil
}

func (c *Client) handleAPIError(statusCode int) error {
	switch statusCode {
	case http.StatusBadRequest:
		return fmt.Errorf("youtube api rejected the request (status 400) - check query parameters")
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("youtube api access denied (status %d) - check the developer key and quota", statusCode)
	case http.StatusTooManyRequests:
		return fmt.Errorf("youtube api rate limit exceeded - please try again later")
	case http.StatusInternalServerError, http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return fmt.Errorf("youtube api server error (status %d) - please try again later", statusCode)
	default:
		return fmt.Errorf("youtube api error (status %d)", statusCode)
	}
}

func joinParts(parts []string) string {
	result := ""
	for i, p := range parts {
		if i > 0 {
			result += ","
		}
		result += p
	}
	return result
}
