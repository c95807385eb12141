package model

import (
	"fmt"
	"math"
	"strings"
	"time"

	"horizon/shared/constant"
)

// ParseDate parses a YYYY-MM-DD or RFC 3339 value into a UTC midnight time.
// A timestamped input loses its clock part, stay dates are whole days.
func ParseDate(value string) (time.Time, error) {
	trimmed := strings.TrimSpace(value)

	parsed, err := time.Parse(constant.DateOnlyFormat, trimmed)
	if err != nil {
		parsed, err = time.Parse(time.RFC3339, trimmed)
	}

	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse date %q: %w", value, err)
	}

	return NormalizeDate(parsed), nil
}

// NormalizeDate truncates a time to UTC midnight. Stay dates are whole days,
// keeping clock parts around would break the overlap arithmetic.
func NormalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Today returns the current date at UTC midnight.
func Today() time.Time {
	return NormalizeDate(time.Now().UTC())
}

// Nights returns the billable night count for a stay, never below one.
func Nights(checkIn, checkOut time.Time) int {
	nights := int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
	if nights < 1 {
		nights = 1
	}

	return nights
}

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect. Touching endpoints, checkout day equals the next
// checkin day, do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}
