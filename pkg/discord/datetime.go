package discord

import (
	"strings"
	"time"
)

// FormatDateRange renders an event's free-form dates. A missing end date
// shows the start only.
func FormatDateRange(start, end string) string {
	start = strings.TrimSpace(start)
	end = strings.TrimSpace(end)
	switch {
	case start == "" && end == "":
		return "-"
	case end == "" || end == start:
		return start
	case start == "":
		return "→ " + end
	default:
		return start + " → " + end
	}
}

// FormatTimestamp renders t the way Discord expects embed timestamps.
// The zero time renders as "" so that Discord omits it.
func FormatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
