package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// HoursPerDay is the width of the timeline, in hours.
const HoursPerDay = 24

// ParseHour parses a whole hour typed by a user. Empty, non-numeric and
// fractional input are errors.
func ParseHour(raw string) (int, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, fmt.Errorf("hour is required")
	}
	h, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("hour %q is not a whole number", raw)
	}
	return h, nil
}

// FormatHour renders an hour as "HH:00".
func FormatHour(hour int) string {
	return fmt.Sprintf("%02d:00", hour)
}

// DayPercent converts a number of hours into a percentage of the day.
func DayPercent(hours int) float64 {
	return float64(hours) / HoursPerDay * 100
}
