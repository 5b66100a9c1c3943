package youtube

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

// newTestClient builds a client pointed at a mock server.
func newTestClient(t *testing.T, handler http.Handler, opts ...ClientOption) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient("test-key", append([]ClientOption{WithBaseURL(server.URL)}, opts...)...)
	require.NoError(t, err)
	return client
}

func writeJSON(t *testing.T, w http.ResponseWriter, body map[string]any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	require.NoError(t, json.NewEncoder(w).Encode(body))
}

// searchHit builds a search-result wrapper item around a video id.
func searchHit(id string) map[string]any {
	return map[string]any{
		"kind": "youtube#searchResult",
		"id":   map[string]any{"kind": "youtube#video", "videoId": id},
		"snippet": map[string]any{
			"title": "video " + id,
		},
	}
}

// pagedSearchHandler serves total search hits in pages of pageSize, chained
// by "page-<offset>" tokens, and counts requests through calls.
func pagedSearchHandler(t *testing.T, pageSize, total int, calls *int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		*calls++

		start := 0
		if tok := r.URL.Query().Get("pageToken"); tok != "" {
			_, err := fmt.Sscanf(tok, "page-%d", &start)
			require.NoError(t, err)
		}
		end := start + pageSize
		if end > total {
			end = total
		}

		items := make([]map[string]any, 0, end-start)
		for i := start; i < end; i++ {
			items = append(items, searchHit(fmt.Sprintf("v%03d", i)))
		}

		resp := map[string]any{
			"kind": "youtube#searchListResponse",
			"pageInfo": map[string]any{
				"totalResults":   total,
				"resultsPerPage": pageSize,
			},
			"items": items,
		}
		if end < total {
			resp["nextPageToken"] = fmt.Sprintf("page-%d", end)
		}
		writeJSON(t, w, resp)
	}
}
