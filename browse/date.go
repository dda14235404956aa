package browse

import (
	"strings"
	"time"
)

var releaseLayouts = []string{
	time.DateOnly,
	time.RFC3339,
	"2006-01",
	"2006",
}

// ParseReleaseDate interprets release date text as a calendar date.
func ParseReleaseDate(raw string) (time.Time, bool) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return time.Time{}, false
	}
	for _, layout := range releaseLayouts {
		if d, err := time.Parse(layout, v); err == nil {
			return d, true
		}
	}
	return time.Time{}, false
}
