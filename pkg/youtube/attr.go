package youtube

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// AttrType tags how a raw JSON value is coerced when an attribute is derived.
type AttrType string

const (
	// TypeRaw passes the value through unmodified.
	TypeRaw      AttrType = ""
	TypeString   AttrType = "string"
	TypeInt      AttrType = "integer"
	TypeFloat    AttrType = "float"
	TypeList     AttrType = "list"
	TypeTime     AttrType = "datetime"
	TypeDuration AttrType = "duration"
)

// AttributeDef locates one attribute within an API response item: the data
// partition ("part") holding it, the key inside that partition, and the type
// it coerces to. Defs are registered once per kind at package init and shared
// read-only across all instances of that kind.
type AttributeDef struct {
	Part string
	Key  string
	Type AttrType
}

// videoAttributeDefs maps attribute names to their location in a videos
// endpoint item. Statistics arrive as decimal strings on the wire; the
// integer coercion covers both representations.
var videoAttributeDefs = map[string]AttributeDef{
	// snippet
	"title":        {Part: "snippet", Key: "title", Type: TypeString},
	"description":  {Part: "snippet", Key: "description", Type: TypeString},
	"publishedAt":  {Part: "snippet", Key: "publishedAt", Type: TypeTime},
	"tags":         {Part: "snippet", Key: "tags", Type: TypeList},
	"channelId":    {Part: "snippet", Key: "channelId", Type: TypeString},
	"channelTitle": {Part: "snippet", Key: "channelTitle", Type: TypeString},

	// contentDetails
	"duration": {Part: "contentDetails", Key: "duration", Type: TypeDuration},

	// status
	"license": {Part: "status", Key: "license", Type: TypeString},

	// statistics
	"viewCount":     {Part: "statistics", Key: "viewCount", Type: TypeInt},
	"likeCount":     {Part: "statistics", Key: "likeCount", Type: TypeInt},
	"dislikeCount":  {Part: "statistics", Key: "dislikeCount", Type: TypeInt},
	"favoriteCount": {Part: "statistics", Key: "favoriteCount", Type: TypeInt},
	"commentCount":  {Part: "statistics", Key: "commentCount", Type: TypeInt},
}

var channelAttributeDefs = map[string]AttributeDef{
	// snippet
	"title":       {Part: "snippet", Key: "title", Type: TypeString},
	"description": {Part: "snippet", Key: "description", Type: TypeString},
	"publishedAt": {Part: "snippet", Key: "publishedAt", Type: TypeTime},
	"country":     {Part: "snippet", Key: "country", Type: TypeString},

	// statistics
	"viewCount":       {Part: "statistics", Key: "viewCount", Type: TypeInt},
	"subscriberCount": {Part: "statistics", Key: "subscriberCount", Type: TypeInt},
	"videoCount":      {Part: "statistics", Key: "videoCount", Type: TypeInt},
}

var playlistAttributeDefs = map[string]AttributeDef{
	// snippet
	"title":        {Part: "snippet", Key: "title", Type: TypeString},
	"description":  {Part: "snippet", Key: "description", Type: TypeString},
	"publishedAt":  {Part: "snippet", Key: "publishedAt", Type: TypeTime},
	"channelId":    {Part: "snippet", Key: "channelId", Type: TypeString},
	"channelTitle": {Part: "snippet", Key: "channelTitle", Type: TypeString},

	// contentDetails
	"itemCount": {Part: "contentDetails", Key: "itemCount", Type: TypeInt},

	// status
	"privacyStatus": {Part: "status", Key: "privacyStatus", Type: TypeString},
}

var attributeDefsByKind = map[Kind]map[string]AttributeDef{
	KindVideo:    videoAttributeDefs,
	KindChannel:  channelAttributeDefs,
	KindPlaylist: playlistAttributeDefs,
}

// coerce converts a raw JSON value according to a def's type tag.
func coerce(raw any, typ AttrType) (any, error) {
	switch typ {
	case TypeRaw:
		return raw, nil

	case TypeString:
		if s, ok := raw.(string); ok {
			return s, nil
		}
		return fmt.Sprint(raw), nil

	case TypeInt:
		n, err := coerceInt(raw)
		if err != nil {
			return nil, err
		}
		return n, nil

	case TypeFloat:
		switch v := raw.(type) {
		case float64:
			return v, nil
		case string:
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return nil, fmt.Errorf("cannot coerce %q to float", v)
			}
			return f, nil
		case json.Number:
			return v.Float64()
		}
		return nil, fmt.Errorf("cannot coerce %T to float", raw)

	case TypeList:
		items, ok := raw.([]any)
		if !ok {
			return nil, fmt.Errorf("cannot coerce %T to list", raw)
		}
		out := make([]any, len(items))
		copy(out, items)
		return out, nil

	case TypeTime:
		s, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("cannot coerce %T to datetime", raw)
		}
		return parseTimestamp(s)

	case TypeDuration:
		s, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("cannot coerce %T to duration", raw)
		}
		secs, err := parseISODuration(s)
		if err != nil {
			return nil, err
		}
		return time.Duration(secs) * time.Second, nil
	}

	// unreachable: init validates every registered type tag
	return nil, fmt.Errorf("unrecognised type tag %q", typ)
}

// coerceInt accepts the numeric representations the API mixes freely: JSON
// numbers for counts like itemCount, decimal strings for statistics.
func coerceInt(raw any) (int64, error) {
	switch v := raw.(type) {
	case float64:
		return int64(v), nil
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("cannot coerce %q to integer", v)
		}
		return n, nil
	case json.Number:
		return v.Int64()
	}
	return 0, fmt.Errorf("cannot coerce %T to integer", raw)
}

// A bad type tag in a registry is a programming error, so registration fails
// fast at init rather than surfacing as a runtime condition on first access.
func init() {
	for kind, defs := range attributeDefsByKind {
		for name, def := range defs {
			switch def.Type {
			case TypeRaw, TypeString, TypeInt, TypeFloat, TypeList, TypeTime, TypeDuration:
			default:
				panic(fmt.Sprintf("youtube: attribute %q of kind %q has unrecognised type tag %q", name, kind, def.Type))
			}
		}
	}
}
