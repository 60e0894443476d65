// Package biztime centralises the clock. Storage and transport are UTC; the
// configured zone is only used when rendering dates for people.
package biztime

import (
	"fmt"
	"sync"
	"time"
)

const DefaultTimezone = "UTC"

var (
	mu       sync.RWMutex
	location = time.UTC
)

// Init sets the display timezone. Empty means UTC.
func Init(tz string) error {
	if tz == "" {
		tz = DefaultTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return fmt.Errorf("failed to load timezone %q: %w", tz, err)
	}
	mu.Lock()
	location = loc
	mu.Unlock()
	return nil
}

// Location returns the display timezone.
func Location() *time.Location {
	mu.RLock()
	defer mu.RUnlock()
	return location
}

// NowUTC returns the current time in UTC truncated to milliseconds, the
// precision timestamps are stored with.
func NowUTC() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

// FromMillis converts a stored epoch-millisecond value back to UTC.
func FromMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

// FormatLocal renders t in the display timezone as RFC 3339.
func FormatLocal(t time.Time) string {
	return t.In(Location()).Format(time.RFC3339)
}
