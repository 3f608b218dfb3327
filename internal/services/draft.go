package services

import (
	"context"
	"fmt"
	"time"

	"github.com/renato0307/ferro/internal/domain"
	"github.com/renato0307/ferro/internal/ports"
)

// DateFormat is the calendar date layout used for all date-scoped keys.
const DateFormat = "2006-01-02"

// RunDraft is the scratch state of the run screen for one date.
type RunDraft struct {
	Distance string
	Time     string
	Effort   string
	Notes    string
}

// NutritionDraft is the scratch state of the nutrition screen for one date.
// The four habit flags read "Yes" or "No"; an unset flag reads "No".
type NutritionDraft struct {
	Protein    string
	Water      string
	Veg        string
	Steps      string
	StepsCount string
	Energy     string
	Notes      string
}

// BodyDraft is the scratch state of the body screen for one date.
type BodyDraft struct {
	Weight string
	Waist  string
	Hips   string
	Notes  string
}

// DraftService owns every draft field and date pointer in the key-value
// store. Writes accept any string verbatim; numeric interpretation happens
// only at the point of use (suggestions, pace, sync row building), so
// partial input survives across sessions without loss.
type DraftService struct {
	store ports.KVStore
	now   func() time.Time
}

// NewDraftService creates a new DraftService
func NewDraftService(store ports.KVStore) *DraftService {
	return &DraftService{store: store, now: time.Now}
}

// SetNow overrides the clock, for tests.
func (s *DraftService) SetNow(now func() time.Time) { s.now = now }

// TodayDate returns today's calendar date string.
func (s *DraftService) TodayDate() string {
	return s.now().UTC().Format(DateFormat)
}

// --- strength set entries, keyed by (day, exercise, set) ---

// SetEntry returns the draft weight and reps for one set. Missing fields
// read as empty strings.
func (s *DraftService) SetEntry(ctx context.Context, dayIndex, exerciseIndex, setNumber int) (weight, reps string, err error) {
	weight, err = s.store.Get(ctx, domain.SetKey(dayIndex, exerciseIndex, setNumber, domain.FieldWeight))
	if err != nil {
		return "", "", fmt.Errorf("failed to read set draft: %w", err)
	}
	reps, err = s.store.Get(ctx, domain.SetKey(dayIndex, exerciseIndex, setNumber, domain.FieldReps))
	if err != nil {
		return "", "", fmt.Errorf("failed to read set draft: %w", err)
	}
	return weight, reps, nil
}

// SaveSetField stores one field of one set, overwriting any previous value.
func (s *DraftService) SaveSetField(ctx context.Context, dayIndex, exerciseIndex, setNumber int, field, value string) error {
	return s.store.Set(ctx, domain.SetKey(dayIndex, exerciseIndex, setNumber, field), value)
}

// --- active date pointers ---

func (s *DraftService) activeDate(ctx context.Context, key string) (string, error) {
	date, err := s.store.Get(ctx, key)
	if err != nil {
		return "", err
	}
	if date == "" {
		return s.TodayDate(), nil
	}
	return date, nil
}

// ActiveRunDate returns the date the run screen is pointed at, today when unset.
func (s *DraftService) ActiveRunDate(ctx context.Context) (string, error) {
	return s.activeDate(ctx, domain.KeyRunDate)
}

// SetActiveRunDate repoints the run screen.
func (s *DraftService) SetActiveRunDate(ctx context.Context, date string) error {
	return s.store.Set(ctx, domain.KeyRunDate, date)
}

// ActiveNutritionDate returns the date the nutrition screen is pointed at.
func (s *DraftService) ActiveNutritionDate(ctx context.Context) (string, error) {
	return s.activeDate(ctx, domain.KeyNutritionDate)
}

// SetActiveNutritionDate repoints the nutrition screen.
func (s *DraftService) SetActiveNutritionDate(ctx context.Context, date string) error {
	return s.store.Set(ctx, domain.KeyNutritionDate, date)
}

// ActiveBodyDate returns the date the body screen is pointed at.
func (s *DraftService) ActiveBodyDate(ctx context.Context) (string, error) {
	return s.activeDate(ctx, domain.KeyBodyDate)
}

// SetActiveBodyDate repoints the body screen.
func (s *DraftService) SetActiveBodyDate(ctx context.Context, date string) error {
	return s.store.Set(ctx, domain.KeyBodyDate, date)
}

// --- run draft ---

// RunDraftFor reads the run draft for a date.
func (s *DraftService) RunDraftFor(ctx context.Context, date string) (RunDraft, error) {
	var d RunDraft
	fields := []struct {
		name string
		dst  *string
	}{
		{"distance", &d.Distance},
		{"time", &d.Time},
		{"effort", &d.Effort},
		{"notes", &d.Notes},
	}
	for _, f := range fields {
		v, err := s.store.Get(ctx, domain.DateKey(domain.PrefixRun, date, f.name))
		if err != nil {
			return RunDraft{}, fmt.Errorf("failed to read run draft: %w", err)
		}
		*f.dst = v
	}
	return d, nil
}

// SaveRunField stores one run draft field for a date.
func (s *DraftService) SaveRunField(ctx context.Context, date, field, value string) error {
	return s.store.Set(ctx, domain.DateKey(domain.PrefixRun, date, field), value)
}

// ClearRunDraft removes the run draft fields for a date. The completion
// marker is a separate key and is left alone.
func (s *DraftService) ClearRunDraft(ctx context.Context, date string) error {
	for _, field := range []string{"distance", "time", "effort", "notes"} {
		if err := s.store.Remove(ctx, domain.DateKey(domain.PrefixRun, date, field)); err != nil {
			return fmt.Errorf("failed to clear run draft: %w", err)
		}
	}
	return nil
}

// MarkRunDone sets the durable completion marker for a date. It is the
// authoritative "today's run is satisfied" signal and survives draft clears.
func (s *DraftService) MarkRunDone(ctx context.Context, date string) error {
	return s.store.Set(ctx, domain.RunDoneKey(date), "1")
}

// IsRunDone reports whether the completion marker is set for a date.
func (s *DraftService) IsRunDone(ctx context.Context, date string) (bool, error) {
	v, err := s.store.Get(ctx, domain.RunDoneKey(date))
	if err != nil {
		return false, err
	}
	return v == "1", nil
}

// --- nutrition draft ---

// NutritionDraftFor reads the nutrition draft for a date. Unset habit flags
// read as "No".
func (s *DraftService) NutritionDraftFor(ctx context.Context, date string) (NutritionDraft, error) {
	var d NutritionDraft
	fields := []struct {
		name  string
		dst   *string
		habit bool
	}{
		{"protein", &d.Protein, true},
		{"water", &d.Water, true},
		{"veg", &d.Veg, true},
		{"steps", &d.Steps, true},
		{"stepsCount", &d.StepsCount, false},
		{"energy", &d.Energy, false},
		{"notes", &d.Notes, false},
	}
	for _, f := range fields {
		v, err := s.store.Get(ctx, domain.DateKey(domain.PrefixNutrition, date, f.name))
		if err != nil {
			return NutritionDraft{}, fmt.Errorf("failed to read nutrition draft: %w", err)
		}
		if v == "" && f.habit {
			v = "No"
		}
		*f.dst = v
	}
	return d, nil
}

// SaveNutritionField stores one nutrition draft field for a date.
func (s *DraftService) SaveNutritionField(ctx context.Context, date, field, value string) error {
	return s.store.Set(ctx, domain.DateKey(domain.PrefixNutrition, date, field), value)
}

// ToggleNutritionFlag flips a habit flag between "Yes" and "No".
func (s *DraftService) ToggleNutritionFlag(ctx context.Context, date, field string) error {
	key := domain.DateKey(domain.PrefixNutrition, date, field)
	cur, err := s.store.Get(ctx, key)
	if err != nil {
		return err
	}
	next := "Yes"
	if cur == "Yes" {
		next = "No"
	}
	return s.store.Set(ctx, key, next)
}

// --- body draft ---

// BodyDraftFor reads the body draft for a date.
func (s *DraftService) BodyDraftFor(ctx context.Context, date string) (BodyDraft, error) {
	var d BodyDraft
	fields := []struct {
		name string
		dst  *string
	}{
		{"weight", &d.Weight},
		{"waist", &d.Waist},
		{"hips", &d.Hips},
		{"notes", &d.Notes},
	}
	for _, f := range fields {
		v, err := s.store.Get(ctx, domain.DateKey(domain.PrefixBody, date, f.name))
		if err != nil {
			return BodyDraft{}, fmt.Errorf("failed to read body draft: %w", err)
		}
		*f.dst = v
	}
	return d, nil
}

// SaveBodyField stores one body draft field for a date.
func (s *DraftService) SaveBodyField(ctx context.Context, date, field, value string) error {
	return s.store.Set(ctx, domain.DateKey(domain.PrefixBody, date, field), value)
}
