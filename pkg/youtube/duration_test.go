package youtube

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseISODuration(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"PT19S", 19},
		{"PT4M13S", 253},
		{"PT1H2M3S", 3723},
		{"PT2H", 7200},
		{"P1DT2H", 93600},
		{"P2W", 1209600},
		// calendar units use fixed-length approximations:
		// 1 year = 365 days, 1 month = 30 days
		{"P1Y", 365 * 24 * 60 * 60},
		{"P1M", 30 * 24 * 60 * 60},
		{"P1Y2M3DT4H5M6S", 365*86400 + 2*30*86400 + 3*86400 + 4*3600 + 5*60 + 6},
		{"PT", 0},
		{"P", 0},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := parseISODuration(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseISODuration_RejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "banana", "19 seconds", "T19S"} {
		_, err := parseISODuration(in)
		assert.Error(t, err, "input %q", in)
	}
}

func TestParseTimestamp(t *testing.T) {
	got, err := parseTimestamp("2005-04-24T03:31:52Z")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2005, time.April, 24, 3, 31, 52, 0, time.UTC), got.UTC())

	got, err = parseTimestamp("2005-04-24T03:31:52.123456Z")
	require.NoError(t, err)
	assert.Equal(t, 123456000, got.Nanosecond())

	got, err = parseTimestamp("2005-04-24")
	require.NoError(t, err)
	assert.Equal(t, time.April, got.Month())

	_, err = parseTimestamp("yesterday")
	require.Error(t, err)
}
