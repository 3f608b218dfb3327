package domain

import (
	"fmt"
	"math"
)

// MaxSuggestionSets bounds the per-exercise scan of the suggestion engine.
// It is a scan limit, not validated against the exercise's configured set
// count: sets 7+ of an exercise configured with more are ignored.
const MaxSuggestionSets = 6

// Progression increments in kg. Hitting the target rep average earns the
// full step, being within one rep earns the half step, anything below
// changes nothing. The suggestion never decreases on underperformance.
const (
	incrementFull = 2.5
	incrementHalf = 1.25
)

// LoggedSet is one recorded set whose weight and reps both parsed as finite
// numbers. Sets with malformed or missing values never reach this type.
type LoggedSet struct {
	Weight float64
	Reps   float64
}

// SuggestNextWeight derives the next working weight from this cycle's logged
// sets using a simple double-progression rule over the averages. Returns ""
// when nothing is logged: no suggestion is ever made from no data.
func SuggestNextWeight(logged []LoggedSet, targetReps float64) string {
	if len(logged) == 0 {
		return ""
	}

	var sumWeight, sumReps float64
	for _, s := range logged {
		sumWeight += s.Weight
		sumReps += s.Reps
	}
	avgWeight := sumWeight / float64(len(logged))
	avgReps := sumReps / float64(len(logged))

	var increment float64
	switch {
	case avgReps >= targetReps:
		increment = incrementFull
	case avgReps >= targetReps-1:
		increment = incrementHalf
	}

	// Round half away from zero so 51.25 formats as "51.3".
	return fmt.Sprintf("%.1f", math.Round((avgWeight+increment)*10)/10)
}
