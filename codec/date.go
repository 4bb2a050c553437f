package codec

import (
	"fmt"
	"math"
	"time"
)

// dateLayout is the millisecond-precision, UTC ISO-8601 layout LLSD dates
// are formatted and parsed in: YYYY-MM-DDThh:mm:ss.sssZ.
const dateLayout = "2006-01-02T15:04:05.000Z"

// FormatDate renders seconds-since-Unix-epoch as an LLSD date string.
func FormatDate(seconds float64) string {
	ms := int64(math.Round(seconds * 1000))
	return time.UnixMilli(ms).UTC().Format(dateLayout)
}

// ParseDate parses an LLSD ISO-8601 date string into seconds since the
// Unix epoch, preserving millisecond precision.
func ParseDate(s string) (float64, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return 0, fmt.Errorf("codec: malformed date %q: %w", s, err)
	}
	return float64(t.UnixMilli()) / 1000.0, nil
}
