package youtube

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBareClient(t *testing.T) *Client {
	t.Helper()
	client, err := NewClient("test-key")
	require.NoError(t, err)
	return client
}

func TestFactory_SearchResultUnwrapsToVideo(t *testing.T) {
	client := newBareClient(t)

	r, err := client.newResource(map[string]any{
		"kind": "youtube#searchResult",
		"id":   map[string]any{"kind": "youtube#video", "videoId": "X"},
	})
	require.NoError(t, err)

	video, ok := r.(*Video)
	require.True(t, ok, "expected *Video, got %T", r)
	assert.Equal(t, KindVideo, video.Kind())
	assert.Equal(t, "X", video.ID())
}

func TestFactory_SearchResultUnwrapsToChannelAndPlaylist(t *testing.T) {
	client := newBareClient(t)

	r, err := client.newResource(map[string]any{
		"kind": "youtube#searchResult",
		"id":   map[string]any{"kind": "youtube#channel", "channelId": "C"},
	})
	require.NoError(t, err)
	require.IsType(t, &Channel{}, r)
	assert.Equal(t, "C", r.ID())

	r, err = client.newResource(map[string]any{
		"kind": "youtube#searchResult",
		"id":   map[string]any{"kind": "youtube#playlist", "playlistId": "P"},
	})
	require.NoError(t, err)
	require.IsType(t, &Playlist{}, r)
	assert.Equal(t, "P", r.ID())
}

func TestFactory_DirectItemUsesTopLevelID(t *testing.T) {
	client := newBareClient(t)

	r, err := client.newResource(map[string]any{
		"kind": "youtube#channel",
		"id":   "Y",
	})
	require.NoError(t, err)

	channel, ok := r.(*Channel)
	require.True(t, ok, "expected *Channel, got %T", r)
	assert.Equal(t, KindChannel, channel.Kind())
	assert.Equal(t, "Y", channel.ID())
}

func TestFactory_UnsupportedKind(t *testing.T) {
	client := newBareClient(t)

	_, err := client.newResource(map[string]any{
		"kind": "youtube#commentThread",
		"id":   "Z",
	})
	require.ErrorIs(t, err, ErrUnsupportedResourceKind)

	_, err = client.newResource(map[string]any{
		"kind": "youtube#searchResult",
		"id":   map[string]any{"kind": "youtube#commentThread", "commentThreadId": "Z"},
	})
	require.ErrorIs(t, err, ErrUnsupportedResourceKind)
}

func TestFactory_SearchResultWithoutIDObject(t *testing.T) {
	client := newBareClient(t)

	_, err := client.newResource(map[string]any{
		"kind": "youtube#searchResult",
	})
	require.ErrorIs(t, err, ErrMalformedResponse)
}
