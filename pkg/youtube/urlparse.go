package youtube

import (
	"net/url"
	"regexp"
)

var videoIDPattern = regexp.MustCompile(`((?:(?:v|V)/)|(?:be/)|(?:[?&]v=)|(?:embed/))([\w-]+)`)

// VideoIDFromURL extracts a video id from a watch-page, short or embed URL.
// It returns "" when no id can be found.
func VideoIDFromURL(rawURL string) string {
	unquoted, err := url.QueryUnescape(rawURL)
	if err != nil {
		unquoted = rawURL
	}

	if u, err := url.Parse(unquoted); err == nil {
		if v := u.Query().Get("v"); v != "" {
			return v
		}
	}

	// youtu.be and embed forms carry the id in the path
	if match := videoIDPattern.FindStringSubmatch(unquoted); match != nil {
		return match[2]
	}
	return ""
}
