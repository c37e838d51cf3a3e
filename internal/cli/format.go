// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
)

// FormatAmount formats a money figure as the raw number with a dollar sign.
// e.g., 30 -> "$30", 12.5 -> "$12.5", -4 -> "-$4"
func FormatAmount(v float64) string {
	if v < 0 {
		return "-$" + strconv.FormatFloat(-v, 'f', -1, 64)
	}
	return "$" + strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	return humanize.Comma(n)
}

// FormatPercent formats a 0-1 float as a percentage string.
func FormatPercent(f float64) string {
	return strconv.FormatFloat(f*100, 'f', 0, 64) + "%"
}

// FormatAgo renders a timestamp relative to now, e.g. "3 hours ago".
func FormatAgo(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return humanize.Time(t)
}

// Pluralize returns "1 expense" / "3 expenses".
func Pluralize(n int, singular, plural string) string {
	if n == 1 {
		return "1 " + singular
	}
	return FormatNumber(int64(n)) + " " + plural
}
