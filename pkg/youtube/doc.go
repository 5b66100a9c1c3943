// Package youtube is a thin access layer over the YouTube Data API v3.
//
// The package translates high-level queries (search, lookup by id) into API
// calls, walks multi-page result sets lazily through an opaque page-token
// chain, and returns partially-populated resources that fetch missing data
// partitions on demand. Because quota cost grows with the breadth of "part"
// strings requested, nothing is downloaded until it is asked for.
//
// A Cursor walks pages strictly forward; the service offers no random seek,
// so indexed access (Cursor.At, Cursor.Slice) is implemented by resetting
// the cursor and replaying from the first page. The cost of reading index n
// is therefore O(n), not O(1).
//
// All calls are synchronous and blocking. Neither Cursor nor the resource
// types are safe for concurrent use; callers sharing an instance across
// goroutines must serialize access themselves. Item order within and across
// pages is the order the service returned; a replay reproduces that order
// only as long as the underlying result set is stable between calls, which
// the service does not guarantee for time-sensitive queries.
package youtube
