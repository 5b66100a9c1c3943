package youtube

import (
	"context"
	"fmt"
	"net/url"
	"time"
)

// Kind discriminates the resource types this package understands.
type Kind string

const (
	KindVideo    Kind = "video"
	KindChannel  Kind = "channel"
	KindPlaylist Kind = "playlist"
)

// Resource is a typed view over a partially-populated API item. A resource
// is identified by (kind, id); its attribute values come from whichever data
// partitions the originating query happened to request, and accessing an
// attribute whose partition is missing triggers one supplemental fetch
// scoped to just that partition.
type Resource interface {
	Kind() Kind
	ID() string

	// Get resolves a named attribute. Names outside the kind's schema fail
	// with ErrUnknownAttribute; names the schema allows but the service has
	// no value for, even after a supplemental fetch, fail with
	// ErrAttributeUnavailable.
	Get(ctx context.Context, name string) (any, error)
}

// resourceData is the state shared by every concrete resource type: the raw
// partition store, the derived attribute cache, and the schema for its kind.
// The store is private so no caller can observe a half-merged state.
type resourceData struct {
	client   *Client
	kind     Kind
	endpoint string
	id       string
	defs     map[string]AttributeDef

	// data maps partition names ("snippet", "statistics", ...) to raw field
	// sub-maps. Merges are additive: re-fetching a partition may refresh
	// values, but a key once stored is never removed.
	data  map[string]any
	attrs map[string]any
}

func (r *resourceData) Kind() Kind { return r.kind }

func (r *resourceData) ID() string { return r.id }

func (r *resourceData) Get(ctx context.Context, name string) (any, error) {
	if v, ok := r.attrs[name]; ok {
		return v, nil
	}

	def, ok := r.defs[name]
	if !ok {
		return nil, fmt.Errorf("attribute %q of kind %q: %w", name, r.kind, ErrUnknownAttribute)
	}

	if err := r.fetchPart(ctx, def.Part); err != nil {
		return nil, err
	}

	if v, ok := r.attrs[name]; ok {
		return v, nil
	}
	return nil, fmt.Errorf("attribute %q of kind %q: %w", name, r.kind, ErrAttributeUnavailable)
}

// fetchPart issues one supplemental query scoped to this resource's id and
// the given partition, merges the returned item into the store and
// re-derives that partition's attributes.
func (r *resourceData) fetchPart(ctx context.Context, part string) error {
	q, err := r.client.Query(r.endpoint, url.Values{
		"part": []string{"id," + part},
		"id":   []string{r.id},
	})
	if err != nil {
		return err
	}

	resp, err := q.Execute(ctx, nil)
	if err != nil {
		return err
	}
	if len(resp.Items) == 0 {
		return fmt.Errorf("%s %q: %w", r.endpoint, r.id, ErrNotFound)
	}

	r.merge(resp.Items[0])
	return r.derivePart(part)
}

// merge overlays a raw item onto the store. New partitions are added and
// fields inside an existing partition are overwritten key for key; nothing
// already stored is ever deleted, so a partition only grows.
func (r *resourceData) merge(item map[string]any) {
	for key, val := range item {
		incoming, ok := val.(map[string]any)
		if !ok {
			r.data[key] = val
			continue
		}
		existing, ok := r.data[key].(map[string]any)
		if !ok {
			r.data[key] = incoming
			continue
		}
		for k, v := range incoming {
			existing[k] = v
		}
	}
}

// deriveAll derives typed values for every attribute whose partition is
// already in the store. Absent partitions are skipped, not fetched; they
// stay lazy until someone asks.
func (r *resourceData) deriveAll() error {
	for name, def := range r.defs {
		if err := r.derive(name, def); err != nil {
			return err
		}
	}
	return nil
}

func (r *resourceData) derivePart(part string) error {
	for name, def := range r.defs {
		if def.Part != part {
			continue
		}
		if err := r.derive(name, def); err != nil {
			return err
		}
	}
	return nil
}

func (r *resourceData) derive(name string, def AttributeDef) error {
	raw := r.lookupRaw(def.Part, def.Key)
	if raw == nil {
		return nil
	}
	v, err := coerce(raw, def.Type)
	if err != nil {
		return fmt.Errorf("attribute %q of kind %q: %w", name, r.kind, err)
	}
	r.attrs[name] = v
	return nil
}

// lookupRaw walks nested keys through the store, returning nil as soon as a
// level is absent.
func (r *resourceData) lookupRaw(keys ...string) any {
	var cur any = r.data
	for _, key := range keys {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		if cur, ok = m[key]; !ok {
			return nil
		}
	}
	return cur
}

// typed accessor plumbing

func (r *resourceData) stringAttr(ctx context.Context, name string) (string, error) {
	v, err := r.Get(ctx, name)
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("attribute %q of kind %q: unexpected type %T", name, r.kind, v)
	}
	return s, nil
}

func (r *resourceData) intAttr(ctx context.Context, name string) (int64, error) {
	v, err := r.Get(ctx, name)
	if err != nil {
		return 0, err
	}
	n, ok := v.(int64)
	if !ok {
		return 0, fmt.Errorf("attribute %q of kind %q: unexpected type %T", name, r.kind, v)
	}
	return n, nil
}

func (r *resourceData) timeAttr(ctx context.Context, name string) (time.Time, error) {
	v, err := r.Get(ctx, name)
	if err != nil {
		return time.Time{}, err
	}
	t, ok := v.(time.Time)
	if !ok {
		return time.Time{}, fmt.Errorf("attribute %q of kind %q: unexpected type %T", name, r.kind, v)
	}
	return t, nil
}

func (r *resourceData) durationAttr(ctx context.Context, name string) (time.Duration, error) {
	v, err := r.Get(ctx, name)
	if err != nil {
		return 0, err
	}
	d, ok := v.(time.Duration)
	if !ok {
		return 0, fmt.Errorf("attribute %q of kind %q: unexpected type %T", name, r.kind, v)
	}
	return d, nil
}

func (r *resourceData) listAttr(ctx context.Context, name string) ([]any, error) {
	v, err := r.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	l, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("attribute %q of kind %q: unexpected type %T", name, r.kind, v)
	}
	return l, nil
}

// Video is a single YouTube video.
type Video struct {
	resourceData
}

func (v *Video) Title(ctx context.Context) (string, error) { return v.stringAttr(ctx, "title") }

func (v *Video) Description(ctx context.Context) (string, error) {
	return v.stringAttr(ctx, "description")
}

func (v *Video) PublishedAt(ctx context.Context) (time.Time, error) {
	return v.timeAttr(ctx, "publishedAt")
}

// Tags returns the uploader's tag list in the order the service stores it.
func (v *Video) Tags(ctx context.Context) ([]string, error) {
	raw, err := v.listAttr(ctx, "tags")
	if err != nil {
		return nil, err
	}
	tags := make([]string, 0, len(raw))
	for _, t := range raw {
		s, ok := t.(string)
		if !ok {
			s = fmt.Sprint(t)
		}
		tags = append(tags, s)
	}
	return tags, nil
}

func (v *Video) ChannelID(ctx context.Context) (string, error) {
	return v.stringAttr(ctx, "channelId")
}

func (v *Video) ChannelTitle(ctx context.Context) (string, error) {
	return v.stringAttr(ctx, "channelTitle")
}

// Duration returns the video length. ISO 8601 calendar units are converted
// with fixed-length approximations; see parseISODuration.
func (v *Video) Duration(ctx context.Context) (time.Duration, error) {
	return v.durationAttr(ctx, "duration")
}

func (v *Video) License(ctx context.Context) (string, error) { return v.stringAttr(ctx, "license") }

// IsCreativeCommons reports whether the video is published under the
// Creative Commons license rather than the standard YouTube one.
func (v *Video) IsCreativeCommons(ctx context.Context) (bool, error) {
	license, err := v.License(ctx)
	if err != nil {
		return false, err
	}
	return license == "creativeCommon", nil
}

func (v *Video) ViewCount(ctx context.Context) (int64, error) { return v.intAttr(ctx, "viewCount") }

func (v *Video) LikeCount(ctx context.Context) (int64, error) { return v.intAttr(ctx, "likeCount") }

func (v *Video) DislikeCount(ctx context.Context) (int64, error) {
	return v.intAttr(ctx, "dislikeCount")
}

func (v *Video) FavoriteCount(ctx context.Context) (int64, error) {
	return v.intAttr(ctx, "favoriteCount")
}

func (v *Video) CommentCount(ctx context.Context) (int64, error) {
	return v.intAttr(ctx, "commentCount")
}

// URL returns the watch-page URL for the video.
func (v *Video) URL() string {
	return "https://www.youtube.com/watch?v=" + url.QueryEscape(v.id)
}

func (v *Video) String() string {
	if title, ok := v.attrs["title"].(string); ok {
		return fmt.Sprintf("<Video %s %q>", v.id, title)
	}
	return fmt.Sprintf("<Video %s>", v.id)
}

// Channel is a single YouTube channel.
type Channel struct {
	resourceData
}

func (c *Channel) Title(ctx context.Context) (string, error) { return c.stringAttr(ctx, "title") }

func (c *Channel) Description(ctx context.Context) (string, error) {
	return c.stringAttr(ctx, "description")
}

func (c *Channel) PublishedAt(ctx context.Context) (time.Time, error) {
	return c.timeAttr(ctx, "publishedAt")
}

func (c *Channel) Country(ctx context.Context) (string, error) {
	return c.stringAttr(ctx, "country")
}

func (c *Channel) ViewCount(ctx context.Context) (int64, error) {
	return c.intAttr(ctx, "viewCount")
}

func (c *Channel) SubscriberCount(ctx context.Context) (int64, error) {
	return c.intAttr(ctx, "subscriberCount")
}

func (c *Channel) VideoCount(ctx context.Context) (int64, error) {
	return c.intAttr(ctx, "videoCount")
}

func (c *Channel) String() string {
	if title, ok := c.attrs["title"].(string); ok {
		return fmt.Sprintf("<Channel %s %q>", c.id, title)
	}
	return fmt.Sprintf("<Channel %s>", c.id)
}

// Playlist is a single YouTube playlist.
type Playlist struct {
	resourceData
}

func (p *Playlist) Title(ctx context.Context) (string, error) { return p.stringAttr(ctx, "title") }

func (p *Playlist) Description(ctx context.Context) (string, error) {
	return p.stringAttr(ctx, "description")
}

func (p *Playlist) PublishedAt(ctx context.Context) (time.Time, error) {
	return p.timeAttr(ctx, "publishedAt")
}

func (p *Playlist) ChannelID(ctx context.Context) (string, error) {
	return p.stringAttr(ctx, "channelId")
}

func (p *Playlist) ChannelTitle(ctx context.Context) (string, error) {
	return p.stringAttr(ctx, "channelTitle")
}

func (p *Playlist) ItemCount(ctx context.Context) (int64, error) {
	return p.intAttr(ctx, "itemCount")
}

func (p *Playlist) PrivacyStatus(ctx context.Context) (string, error) {
	return p.stringAttr(ctx, "privacyStatus")
}

func (p *Playlist) String() string {
	if title, ok := p.attrs["title"].(string); ok {
		return fmt.Sprintf("<Playlist %s %q>", p.id, title)
	}
	return fmt.Sprintf("<Playlist %s>", p.id)
}
