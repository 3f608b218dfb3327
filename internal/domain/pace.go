package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseDurationMinutes converts a free-form duration string to minutes.
// "28:30" is minutes:seconds, "25" or "25.5" is decimal minutes. Returns
// ok=false for empty or unparsable input; malformed input is "no data",
// never an error.
func ParseDurationMinutes(text string) (float64, bool) {
	s := strings.TrimSpace(text)
	if s == "" {
		return 0, false
	}

	if strings.Contains(s, ":") {
		parts := strings.Split(s, ":")
		mins, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
		if err != nil || math.IsInf(mins, 0) || math.IsNaN(mins) {
			return 0, false
		}
		secStr := "0"
		if len(parts) > 1 && strings.TrimSpace(parts[1]) != "" {
			secStr = strings.TrimSpace(parts[1])
		}
		secs, err := strconv.ParseFloat(secStr, 64)
		if err != nil || math.IsInf(secs, 0) || math.IsNaN(secs) {
			return 0, false
		}
		return mins + secs/60, true
	}

	n, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(n, 0) || math.IsNaN(n) {
		return 0, false
	}
	return n, true
}

// Pace computes a "m:ss /km" pace string from a distance in km and a
// duration string. Returns "" when either input is missing or invalid;
// callers treat empty as "unavailable". Distance must be strictly positive.
func Pace(distance, durationText string) string {
	dist, err := strconv.ParseFloat(strings.TrimSpace(distance), 64)
	if err != nil || math.IsInf(dist, 0) || math.IsNaN(dist) || dist <= 0 {
		return ""
	}

	mins, ok := ParseDurationMinutes(durationText)
	if !ok {
		return ""
	}

	perKm := mins / dist
	m := math.Floor(perKm)
	s := math.Round((perKm - m) * 60)
	return fmt.Sprintf("%d:%02d /km", int(m), int(s))
}
