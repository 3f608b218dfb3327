package domain

import "fmt"

// Storage key derivation. Every draft field and pointer lives in the
// key-value store under a deterministic name; these functions are the only
// place those names are built.

// Set entry fields.
const (
	FieldWeight = "w"
	FieldReps   = "r"
)

// Date-scoped draft domains (key prefixes).
const (
	PrefixRun       = "run"
	PrefixNutrition = "nutri"
	PrefixBody      = "body"
)

// Pointer keys: the current program day and the active date per domain.
const (
	KeyCurrentDay    = "currentTrainingDay"
	KeyRunDate       = "run_date"
	KeyNutritionDate = "nutri_date"
	KeyBodyDate      = "body_date"
)

// SetKey returns the draft key for one field of one set of one exercise,
// e.g. "d2-e1-s3-w". Keys are per day index, not per date: the next cycle
// through the same day reuses them, so stale values from the previous cycle
// remain visible until overwritten.
func SetKey(dayIndex, exerciseIndex, setNumber int, field string) string {
	return fmt.Sprintf("d%d-e%d-s%d-%s", dayIndex, exerciseIndex, setNumber, field)
}

// DateKey returns the draft key for one field of a date-scoped domain,
// e.g. "run_2024-01-15_distance".
func DateKey(prefix, date, field string) string {
	return fmt.Sprintf("%s_%s_%s", prefix, date, field)
}

// RunDoneKey returns the key of the durable run completion marker for a
// date. The marker survives clearing the run draft.
func RunDoneKey(date string) string {
	return DateKey(PrefixRun, date, "done")
}
