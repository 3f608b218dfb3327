package domain

import (
	"encoding/json"
	"fmt"
)

// LogDomain identifies one of the four independent history sequences.
type LogDomain string

const (
	LogSets      LogDomain = "sets"
	LogRuns      LogDomain = "runs"
	LogNutrition LogDomain = "nutrition"
	LogBody      LogDomain = "body"
)

// HistoryRow is the positional wire tuple stored in a history log and sent
// to the coach sheet. The first element is always the RowID, the upsert key
// within one domain's log. Set number and target reps travel as numbers to
// match the sheet's expectations; everything else is a string.
type HistoryRow []any

// ID returns the RowID of a wire tuple, or "" for a malformed one.
func (r HistoryRow) ID() string {
	if len(r) == 0 {
		return ""
	}
	id, _ := r[0].(string)
	return id
}

// SetRow is one logged strength set.
// Wire order: RowID | Timestamp | Athlete | DayName | Exercise | Set | TargetReps | Weight | Reps
type SetRow struct {
	Athlete    string
	Date       string // YYYY-MM-DD
	DayIndex   int
	DayName    string
	Exercise   string
	SetNumber  int
	TargetReps int
	Timestamp  string // RFC 3339
	Weight     string
	Reps       string
}

// RowID is date-scoped: re-syncing the same day on the same date overwrites.
func (r SetRow) RowID() string {
	return fmt.Sprintf("%s|%s|D%d|%s|%s|set%d",
		r.Athlete, r.Date, r.DayIndex, r.DayName, r.Exercise, r.SetNumber)
}

// Fields returns the wire tuple in the fixed external order.
func (r SetRow) Fields() HistoryRow {
	return HistoryRow{r.RowID(), r.Timestamp, r.Athlete, r.DayName, r.Exercise,
		r.SetNumber, r.TargetReps, r.Weight, r.Reps}
}

// RunRow is one logged run.
// Wire order: RowID | Timestamp | Athlete | DistanceKm | Time | Effort | Notes | Pace
type RunRow struct {
	Athlete   string
	Timestamp string
	Distance  string
	Time      string
	Effort    string
	Notes     string
	Pace      string
}

// RowID is timestamp-scoped: unlike the other domains, every sync of a run
// produces a new historical row. Whether runs were meant to accumulate
// multiple-per-day or this is an oversight in the original protocol is an
// open product question; the behavior is preserved as-is.
func (r RunRow) RowID() string {
	return fmt.Sprintf("%s|RUN|%s", r.Athlete, r.Timestamp)
}

func (r RunRow) Fields() HistoryRow {
	return HistoryRow{r.RowID(), r.Timestamp, r.Athlete, r.Distance, r.Time,
		r.Effort, r.Notes, r.Pace}
}

// NutritionRow is one day's nutrition check.
// Wire order: RowID | Date | Athlete | Protein | Water | Veg | Steps | StepsCount | Energy | Notes | Timestamp
type NutritionRow struct {
	Athlete    string
	Date       string
	Protein    string // "Yes"/"No"
	Water      string
	Veg        string
	Steps      string
	StepsCount string
	Energy     string
	Notes      string
	Timestamp  string
}

func (r NutritionRow) RowID() string {
	return fmt.Sprintf("%s|NUTRITION|%s", r.Athlete, r.Date)
}

func (r NutritionRow) Fields() HistoryRow {
	return HistoryRow{r.RowID(), r.Date, r.Athlete, r.Protein, r.Water, r.Veg,
		r.Steps, r.StepsCount, r.Energy, r.Notes, r.Timestamp}
}

// BodyRow is one day's body metrics.
// Wire order: RowID | Date | Athlete | WeightKg | WaistCm | HipsCm | Notes | Timestamp
type BodyRow struct {
	Athlete   string
	Date      string
	Weight    string
	Waist     string
	Hips      string
	Notes     string
	Timestamp string
}

func (r BodyRow) RowID() string {
	return fmt.Sprintf("%s|BODY|%s", r.Athlete, r.Date)
}

func (r BodyRow) Fields() HistoryRow {
	return HistoryRow{r.RowID(), r.Date, r.Athlete, r.Weight, r.Waist, r.Hips,
		r.Notes, r.Timestamp}
}

// Batch is one outbound submission to the coach sheet. All four families are
// always present; a sync populates exactly one of them.
type Batch struct {
	SetRows       []HistoryRow `json:"setRows"`
	RunRows       []HistoryRow `json:"runRows"`
	NutritionRows []HistoryRow `json:"nutritionRows"`
	BodyRows      []HistoryRow `json:"bodyRows"`
}

// NewBatch returns a batch with all four families non-nil so they serialize
// as empty arrays, not null.
func NewBatch() Batch {
	return Batch{
		SetRows:       []HistoryRow{},
		RunRows:       []HistoryRow{},
		NutritionRows: []HistoryRow{},
		BodyRows:      []HistoryRow{},
	}
}

// EncodePayload serializes the batch to the JSON document the sheet endpoint
// expects as its "payload" form field.
func (b Batch) EncodePayload() (string, error) {
	data, err := json.Marshal(b)
	if err != nil {
		return "", fmt.Errorf("failed to encode payload: %w", err)
	}
	return string(data), nil
}
