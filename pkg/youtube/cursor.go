package youtube

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// DefaultResultCap bounds how many items a cursor will yield before it stops
// regardless of how many pages the service still has. Override per client
// with WithResultCap.
const DefaultResultCap = 2000

// Cursor walks a query's result set one page at a time. Pages are chained by
// opaque, forward-only tokens, so the cursor supports a single forward pass;
// indexed access (At, Slice) replays the walk from the beginning and costs
// O(n) in the target index. A Cursor is not safe for concurrent use.
type Cursor struct {
	query *Query
	cap   int

	// page metadata, recorded from the first successful fetch only
	kind        string
	total       int
	perPage     int
	haveTotal   bool
	havePerPage bool

	pageToken string
	page      []map[string]any
	pageIndex int
	pages     int
	yielded   int
	started   bool
	exhausted bool
}

// NewCursor wraps a query in a fresh cursor. No network traffic happens
// until the first item is requested.
func NewCursor(q *Query) *Cursor {
	return &Cursor{query: q, cap: q.client.resultCap}
}

// Next returns the next item in the sequence, fetching the next page when
// the current one is consumed. It returns ErrDone once no further items
// exist or the result cap is reached; after that every subsequent call
// returns ErrDone without touching the network.
func (cur *Cursor) Next(ctx context.Context) (Resource, error) {
	if cur.yielded >= cur.cap {
		return nil, ErrDone
	}

	for !cur.started || cur.pageIndex >= len(cur.page) {
		if err := cur.fetchNextPage(ctx); err != nil {
			return nil, err
		}
	}

	item := cur.page[cur.pageIndex]
	cur.pageIndex++
	cur.yielded++
	return cur.query.client.newResource(item)
}

// fetchNextPage pulls the next page of the token chain into the cursor.
func (cur *Cursor) fetchNextPage(ctx context.Context) error {
	if cur.exhausted {
		return ErrDone
	}

	overrides := url.Values{}
	if cur.pageToken != "" {
		overrides.Set("pageToken", cur.pageToken)
	}

	raw, err := cur.query.Execute(ctx, overrides)
	if err != nil {
		return err
	}

	if !cur.started {
		// A first page without a kind is a broken contract, not an empty
		// result. Items, by contrast, may legitimately be absent.
		if raw.Kind == "" {
			return fmt.Errorf("first %s page missing kind: %w", cur.query.endpoint, ErrMalformedResponse)
		}
		// The service repeats these figures on every page; only the first
		// fetch records them.
		cur.kind = strings.TrimPrefix(raw.Kind, kindPrefix)
		if raw.PageInfo != nil {
			if raw.PageInfo.TotalResults != nil {
				cur.total = int(*raw.PageInfo.TotalResults)
				cur.haveTotal = true
			}
			if raw.PageInfo.ResultsPerPage != nil {
				cur.perPage = int(*raw.PageInfo.ResultsPerPage)
				cur.havePerPage = true
			}
		}
	}

	cur.started = true
	cur.pageToken = raw.NextPageToken
	if raw.NextPageToken == "" {
		cur.exhausted = true
	}

	cur.page = raw.Items
	cur.pageIndex = 0
	cur.pages++
	return nil
}

// reset returns the cursor to its unstarted state. Random access over a
// forward-only token chain is only possible by replaying from the first
// page, so every operation needing an absolute position funnels through
// here.
func (cur *Cursor) reset() {
	cur.kind = ""
	cur.total, cur.perPage = 0, 0
	cur.haveTotal, cur.havePerPage = false, false
	cur.pageToken = ""
	cur.page = nil
	cur.pageIndex = 0
	cur.pages = 0
	cur.yielded = 0
	cur.started = false
	cur.exhausted = false
}

// First resets the cursor and returns the first item of the sequence.
func (cur *Cursor) First(ctx context.Context) (Resource, error) {
	cur.reset()
	return cur.Next(ctx)
}

// FirstPage resets the cursor and returns every item physically present on
// the first page the service sends back - however many that turns out to be.
func (cur *Cursor) FirstPage(ctx context.Context) ([]Resource, error) {
	cur.reset()
	if err := cur.fetchNextPage(ctx); err != nil {
		return nil, err
	}

	items := make([]Resource, 0, len(cur.page))
	for cur.pageIndex < len(cur.page) && cur.yielded < cur.cap {
		item := cur.page[cur.pageIndex]
		cur.pageIndex++
		cur.yielded++
		r, err := cur.query.client.newResource(item)
		if err != nil {
			return nil, err
		}
		items = append(items, r)
	}
	return items, nil
}

// At returns the item at the given index, replaying the sequence from the
// beginning; cost is proportional to index, not O(1). Negative indices are
// rejected.
func (cur *Cursor) At(ctx context.Context, index int) (Resource, error) {
	if index < 0 {
		return nil, fmt.Errorf("negative index %d not supported", index)
	}

	cur.reset()
	var r Resource
	for i := 0; i <= index; i++ {
		var err error
		if r, err = cur.Next(ctx); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Slice returns the items in [start, stop), replaying the sequence from the
// beginning; cost is proportional to stop, not to the window size. A stop
// past the end of the result set truncates. Negative bounds are rejected,
// and strides other than one are not supported.
func (cur *Cursor) Slice(ctx context.Context, start, stop int) ([]Resource, error) {
	if start < 0 || stop < 0 {
		return nil, fmt.Errorf("negative slice bounds [%d:%d] not supported", start, stop)
	}
	if start > stop {
		return nil, fmt.Errorf("invalid slice bounds [%d:%d]", start, stop)
	}

	cur.reset()
	items := make([]Resource, 0, stop-start)
	for i := 0; i < stop; i++ {
		r, err := cur.Next(ctx)
		if errors.Is(err, ErrDone) {
			break
		}
		if err != nil {
			return nil, err
		}
		if i >= start {
			items = append(items, r)
		}
	}
	return items, nil
}

// Kind reports the list kind from the first fetched page, with the service
// prefix trimmed ("searchListResponse", "videoListResponse", ...). Empty
// until a page has been fetched.
func (cur *Cursor) Kind() string { return cur.kind }

// TotalResults reports the service's estimate of the result set size. The
// figure can be a rough pre-filter estimate; treat it as informational and
// never use it to bound iteration. ok is false until a first page carrying
// the figure has been fetched.
func (cur *Cursor) TotalResults() (n int, ok bool) { return cur.total, cur.haveTotal }

// ResultsPerPage reports the page size the service settled on, with the
// same best-effort caveats as TotalResults.
func (cur *Cursor) ResultsPerPage() (n int, ok bool) { return cur.perPage, cur.havePerPage }

// Pages reports how many pages the current walk has fetched.
func (cur *Cursor) Pages() int { return cur.pages }

// Yielded reports how many items the current walk has produced.
func (cur *Cursor) Yielded() int { return cur.yielded }
