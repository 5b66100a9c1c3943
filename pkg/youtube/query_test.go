package youtube

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuery_UnknownEndpointIsRejected(t *testing.T) {
	client := newBareClient(t)

	_, err := client.Query("subscriptions", nil)
	require.ErrorIs(t, err, ErrUnknownEndpoint)

	_, err = client.Query("", nil)
	require.ErrorIs(t, err, ErrUnknownEndpoint)
}

func TestQuery_AppliesDefaultPart(t *testing.T) {
	var gotPart string
	handler := func(w http.ResponseWriter, r *http.Request) {
		gotPart = r.URL.Query().Get("part")
		writeJSON(t, w, map[string]any{"kind": "youtube#videoListResponse"})
	}
	client := newTestClient(t, http.HandlerFunc(handler), WithParts("id", "snippet"))

	q, err := client.Query("videos", url.Values{"id": []string{"v1"}})
	require.NoError(t, err)

	_, err = q.Execute(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "id,snippet", gotPart)
}

func TestQuery_ExplicitPartWinsOverDefault(t *testing.T) {
	var gotPart string
	handler := func(w http.ResponseWriter, r *http.Request) {
		gotPart = r.URL.Query().Get("part")
		writeJSON(t, w, map[string]any{"kind": "youtube#videoListResponse"})
	}
	client := newTestClient(t, http.HandlerFunc(handler), WithParts("id", "snippet"))

	q, err := client.Query("videos", url.Values{"part": []string{"id,statistics"}})
	require.NoError(t, err)

	_, err = q.Execute(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "id,statistics", gotPart)
}

func TestQuery_OverridesWinKeyForKey(t *testing.T) {
	var got url.Values
	handler := func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		writeJSON(t, w, map[string]any{"kind": "youtube#searchListResponse"})
	}
	client := newTestClient(t, http.HandlerFunc(handler))

	q, err := client.Query("search", url.Values{
		"q":          []string{"cats"},
		"maxResults": []string{"10"},
	})
	require.NoError(t, err)

	_, err = q.Execute(context.Background(), url.Values{
		"maxResults": []string{"25"},
		"pageToken":  []string{"tok"},
	})
	require.NoError(t, err)

	assert.Equal(t, "cats", got.Get("q"), "base params survive")
	assert.Equal(t, "25", got.Get("maxResults"), "override wins key for key")
	assert.Equal(t, "tok", got.Get("pageToken"))

	// the override must not mutate the base parameter set
	_, err = q.Execute(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "10", got.Get("maxResults"))
	assert.Empty(t, got.Get("pageToken"))
}

func TestFlexInt_AcceptsNumbersAndStrings(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want int
	}{
		{"number", `42`, 42},
		{"string", `"42"`, 42},
		{"float", `1.5`, 1},
		{"null", `null`, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var f flexInt
			require.NoError(t, f.UnmarshalJSON([]byte(tc.in)))
			assert.Equal(t, tc.want, int(f))
		})
	}

	var f flexInt
	require.Error(t, f.UnmarshalJSON([]byte(`"not a number"`)))
}
