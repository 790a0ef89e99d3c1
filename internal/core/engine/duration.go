package engine

import (
	"strconv"
	"strings"
)

// FormatDuration renders minutes in words: 125 -> "2 hours and 5 minutes",
// 60 -> "1 hour", 45 -> "45 minutes". Negative input is treated as zero.
func FormatDuration(minutes int) string {
	if minutes < 0 {
		minutes = 0
	}
	hours, mins := minutes/60, minutes%60

	switch {
	case hours == 0:
		return pluralize(mins, "minute")
	case mins == 0:
		return pluralize(hours, "hour")
	default:
		return pluralize(hours, "hour") + " and " + pluralize(mins, "minute")
	}
}

// FormatHours renders minutes as decimal hours rounded to one place,
// without a trailing ".0": 90 -> "1.5", 60 -> "1", 100 -> "1.7".
func FormatHours(minutes int) string {
	tenths := (minutes*10 + 30) / 60
	s := strconv.Itoa(tenths/10) + "." + strconv.Itoa(tenths%10)
	return strings.TrimSuffix(s, ".0")
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
