package planner

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Unreachable is the arrival time reported when no itinerary exists.
var Unreachable = math.Inf(1)

// ParseClock converts an HH:MM or HH:MM:SS clock string into minutes since
// midnight. Hours of 24 and beyond are accepted for post-midnight service.
func ParseClock(clock string) (float64, error) {
	parts := strings.Split(strings.TrimSpace(clock), ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("invalid clock value %q", clock)
	}

	vals := make([]int64, len(parts))
	for idx, part := range parts {
		val, err := strconv.ParseInt(part, 10, 32)
		if err != nil {
			return 0, fmt.Errorf("invalid clock value %q: %w", clock, err)
		}
		if val < 0 || (idx > 0 && val > 59) {
			return 0, fmt.Errorf("invalid clock value %q", clock)
		}
		vals[idx] = val
	}

	minutes := float64(vals[0])*60 + float64(vals[1])
	if len(vals) == 3 {
		minutes += float64(vals[2]) / 60
	}
	return minutes, nil
}

// FormatClock renders minutes since midnight as an HH:MM clock string,
// discarding any fractional seconds.
func FormatClock(minutes float64) string {
	if math.IsInf(minutes, 1) {
		return "unreachable"
	}

	h := int(minutes) / 60
	m := int(minutes) % 60
	return fmt.Sprintf("%02d:%02d", h, m)
}
