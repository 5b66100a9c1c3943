package youtube

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// ISO 8601 duration, e.g. "PT4M13S", "P1DT2H", "P2W".
var iso8601Duration = regexp.MustCompile(
	`^P(?:(\d+)Y)?(?:(\d+)M)?(?:(\d+)W)?(?:(\d+)D)?(?:T(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?)?$`)

// Seconds per calendar unit. The calendar units use fixed-length
// approximations (1 year = 365 days, 1 month = 30 days, 1 week = 7 days);
// video durations never reach them in practice, and exact calendar
// arithmetic would need a reference date the duration string doesn't carry.
var durationUnitSeconds = [7]int64{
	365 * 24 * 60 * 60, // years
	30 * 24 * 60 * 60,  // months
	7 * 24 * 60 * 60,   // weeks
	24 * 60 * 60,       // days
	60 * 60,            // hours
	60,                 // minutes
	1,                  // seconds
}

// parseISODuration converts an ISO 8601 duration string to whole seconds.
func parseISODuration(value string) (int64, error) {
	match := iso8601Duration.FindStringSubmatch(value)
	if match == nil {
		return 0, fmt.Errorf("cannot parse duration %q", value)
	}

	var total int64
	for i, group := range match[1:] {
		if group == "" {
			continue
		}
		n, err := strconv.ParseInt(group, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("cannot parse duration %q: %w", value, err)
		}
		total += n * durationUnitSeconds[i]
	}
	return total, nil
}

// Timestamps are documented as RFC 3339 but have been observed without the
// fractional-seconds part and, rarely, as bare dates.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// parseTimestamp parses a timestamp string from an API response.
func parseTimestamp(value string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse timestamp %q", value)
}
