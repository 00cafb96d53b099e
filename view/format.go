package view

import (
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/medivac/portal/service"
)

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// StatusLabel capitalises the first letter of a backend status.
func StatusLabel(status string) string {
	first, size := utf8.DecodeRuneInString(status)
	if size == 0 {
		return ""
	}
	return string(unicode.ToUpper(first)) + status[size:]
}

// CanCancel reports whether a booking in status may be cancelled. Only pending
// bookings qualify; the backend remains the authority.
func CanCancel(status string) bool {
	return strings.EqualFold(status, service.BookingPending)
}

// Money formats an amount as dollars with two decimals.
func Money(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}

// DateTime formats a backend timestamp as "Jan 2, 2006, 03:04 PM". Unparseable
// values are returned unchanged.
func DateTime(value string) string {
	return reformat(value, "Jan 2, 2006, 03:04 PM")
}

// Date formats a backend timestamp as "Jan 2, 2006".
func Date(value string) string {
	return reformat(value, "Jan 2, 2006")
}

// LongDateTime formats a backend timestamp as "January 2, 2006 at 03:04 PM".
func LongDateTime(value string) string {
	return reformat(value, "January 2, 2006 at 03:04 PM")
}

func reformat(value, layout string) string {
	ts, ok := parseTime(value)
	if !ok {
		return value
	}
	return ts.Format(layout)
}

func parseTime(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	for _, candidate := range timeLayouts {
		if ts, err := time.Parse(candidate, value); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}
