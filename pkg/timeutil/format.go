// Package timeutil provides time formatting utilities for splitr.
//
// Journal timestamps are stored as Unix nanoseconds (int64). This package
// converts them to human-readable forms for the TUI and reports.
package timeutil

import (
	"fmt"
	"time"
)

// FromNano converts a Unix nanosecond timestamp to time.Time.
func FromNano(ns int64) time.Time {
	return time.Unix(0, ns)
}

// NowNano returns the current time as Unix nanoseconds.
func NowNano() int64 {
	return time.Now().UnixNano()
}

// FormatTimestamp formats a Unix nanosecond timestamp as "HH:MM:SS".
func FormatTimestamp(ns int64) string {
	return FromNano(ns).Format("15:04:05")
}

// FormatTimestampFull formats a Unix nanosecond timestamp with date.
// Format: "2006-01-02 15:04:05"
func FormatTimestampFull(ns int64) string {
	return FromNano(ns).Format("2006-01-02 15:04:05")
}

// RelativeTime returns a human-readable relative time string.
// Examples: "just now", "5s ago", "2m ago", "1h ago"
func RelativeTime(ns int64) string {
	return relativeTo(FromNano(ns), time.Now())
}

func relativeTo(t, now time.Time) string {
	diff := now.Sub(t)

	switch {
	case diff < time.Second:
		return "just now"
	case diff < time.Minute:
		return fmt.Sprintf("%ds ago", int(diff.Seconds()))
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	default:
		days := int(diff.Hours() / 24)
		return fmt.Sprintf("%dd ago", days)
	}
}
