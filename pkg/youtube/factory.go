package youtube

import (
	"fmt"
	"strings"
)

// kindPrefix is the namespace the service prepends to every kind string.
const kindPrefix = "youtube#"

// kindSearchResult marks the wrapper the search endpoint puts around hits;
// the actual resource kind and id sit one level deeper.
const kindSearchResult = Kind("searchResult")

// kindEndpoints maps each resource kind to the endpoint used for
// supplemental fetches of that kind.
var kindEndpoints = map[Kind]string{
	KindVideo:    "videos",
	KindChannel:  "channels",
	KindPlaylist: "playlists",
}

// newResource classifies one raw response item by its kind discriminator and
// constructs the matching typed resource. A search hit nests the real kind
// and id inside its id object, under a "<kind>Id" key derived from the kind
// string; everything else carries its id at the top level. Kinds outside the
// registered set fail with ErrUnsupportedResourceKind.
func (c *Client) newResource(item map[string]any) (Resource, error) {
	if item == nil {
		item = map[string]any{}
	}

	kindStr, _ := item["kind"].(string)
	kind := Kind(strings.TrimPrefix(kindStr, kindPrefix))

	var id string
	if kind == kindSearchResult {
		idObj, ok := item["id"].(map[string]any)
		if !ok {
			return nil, fmt.Errorf("search result item without id object: %w", ErrMalformedResponse)
		}
		innerKind, _ := idObj["kind"].(string)
		kind = Kind(strings.TrimPrefix(innerKind, kindPrefix))
		id, _ = idObj[string(kind)+"Id"].(string)
	} else {
		id, _ = item["id"].(string)
	}

	defs, ok := attributeDefsByKind[kind]
	if !ok {
		return nil, fmt.Errorf("kind %q: %w", kind, ErrUnsupportedResourceKind)
	}

	base := resourceData{
		client:   c,
		kind:     kind,
		endpoint: kindEndpoints[kind],
		id:       id,
		defs:     defs,
		data:     item,
		attrs:    make(map[string]any),
	}
	if err := base.deriveAll(); err != nil {
		return nil, err
	}

	switch kind {
	case KindVideo:
		return &Video{base}, nil
	case KindChannel:
		return &Channel{base}, nil
	case KindPlaylist:
		return &Playlist{base}, nil
	}
	// attributeDefsByKind and this switch cover the same closed set
	return nil, fmt.Errorf("kind %q: %w", kind, ErrUnsupportedResourceKind)
}
