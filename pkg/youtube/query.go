package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// endpointPaths is the registry of supported list operations. Anything else
// is rejected at query construction time.
var endpointPaths = map[string]string{
	"search":    "/youtube/v3/search",
	"videos":    "/youtube/v3/videos",
	"channels":  "/youtube/v3/channels",
	"playlists": "/youtube/v3/playlists",
}

// Query binds an endpoint to a base parameter set. The base parameters are
// fixed after construction; per-call overrides (the page token, in practice)
// are merged at execution time.
type Query struct {
	client   *Client
	endpoint string
	params   url.Values
}

// Query builds a query against a named endpoint, validating the endpoint
// against the registry of supported operations. The default part string is
// applied when params carry none.
func (c *Client) Query(endpoint string, params url.Values) (*Query, error) {
	if _, ok := endpointPaths[endpoint]; !ok {
		return nil, fmt.Errorf("endpoint %q: %w", endpoint, ErrUnknownEndpoint)
	}

	base := url.Values{}
	for key, vals := range params {
		base[key] = vals
	}
	if base.Get("part") == "" {
		base.Set("part", c.part)
	}

	return &Query{client: c, endpoint: endpoint, params: base}, nil
}

// Endpoint returns the endpoint name this query targets.
func (q *Query) Endpoint() string { return q.endpoint }

// Execute performs the remote call. Overrides are merged over the base
// parameters, override winning key for key; there is no deep merge. Nothing
// is cached at this layer - every call is a real request.
func (q *Query) Execute(ctx context.Context, overrides url.Values) (*listResponse, error) {
	merged := url.Values{}
	for key, vals := range q.params {
		merged[key] = vals
	}
	for key, vals := range overrides {
		merged[key] = vals
	}

	body, err := q.client.do(ctx, endpointPaths[q.endpoint], merged)
	if err != nil {
		return nil, err
	}

	var resp listResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse %s response: %w", q.endpoint, err)
	}
	return &resp, nil
}

// listResponse is the raw shape every list endpoint returns. Items may be
// absent entirely on an empty result; that is not a contract violation.
type listResponse struct {
	Kind          string           `json:"kind"`
	Etag          string           `json:"etag"`
	NextPageToken string           `json:"nextPageToken"`
	PageInfo      *pageInfo        `json:"pageInfo"`
	Items         []map[string]any `json:"items"`
}

// pageInfo carries the service's best-effort size figures. Both are rough
// estimates and must never be used to bound iteration.
type pageInfo struct {
	TotalResults   *flexInt `json:"totalResults"`
	ResultsPerPage *flexInt `json:"resultsPerPage"`
}

// flexInt decodes from either a JSON number or a numeric string; the service
// has been observed sending both for pageInfo figures.
type flexInt int

func (f *flexInt) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		*f = 0
		return nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		fl, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil {
			return fmt.Errorf("cannot parse page info figure %q", s)
		}
		n = int64(fl)
	}
	*f = flexInt(n)
	return nil
}
