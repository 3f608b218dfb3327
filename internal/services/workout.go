package services

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/renato0307/ferro/internal/domain"
	"github.com/renato0307/ferro/internal/logging"
	"github.com/renato0307/ferro/internal/ports"
)

// WorkoutService owns the day cursor, the run completion gate, and
// progression suggestions. It replaces the ambient "current day" global of
// older revisions with explicit reads from storage on each operation.
type WorkoutService struct {
	drafts *DraftService
	store  ports.KVStore
}

// NewWorkoutService creates a new WorkoutService
func NewWorkoutService(store ports.KVStore, drafts *DraftService) *WorkoutService {
	return &WorkoutService{drafts: drafts, store: store}
}

// CurrentDayIndex returns the persisted cursor into the program cycle,
// initializing it to 0 on first access. A garbled stored value also reads
// as 0 rather than failing.
func (s *WorkoutService) CurrentDayIndex(ctx context.Context) (int, error) {
	v, err := s.store.Get(ctx, domain.KeyCurrentDay)
	if err != nil {
		return 0, fmt.Errorf("failed to read day cursor: %w", err)
	}
	if v == "" {
		if err := s.store.Set(ctx, domain.KeyCurrentDay, "0"); err != nil {
			return 0, fmt.Errorf("failed to initialize day cursor: %w", err)
		}
		return 0, nil
	}

	idx, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || idx < 0 {
		logging.Logger.Warn("Resetting garbled day cursor", "value", v)
		return 0, nil
	}
	return idx % len(domain.Program), nil
}

// CurrentDay returns the cursor and the training day it points at.
func (s *WorkoutService) CurrentDay(ctx context.Context) (int, domain.TrainingDay, error) {
	idx, err := s.CurrentDayIndex(ctx)
	if err != nil {
		return 0, domain.TrainingDay{}, err
	}
	return idx, domain.DayAt(idx), nil
}

// RunGate evaluates the run completion gate for the current day and the
// active run date.
func (s *WorkoutService) RunGate(ctx context.Context) (domain.RunGateState, error) {
	_, day, err := s.CurrentDay(ctx)
	if err != nil {
		return domain.GatePending, err
	}

	requiresRun := domain.RequiresRun(day)
	if !requiresRun {
		return domain.GateNotRequired, nil
	}

	date, err := s.drafts.ActiveRunDate(ctx)
	if err != nil {
		return domain.GatePending, err
	}
	markerSet, err := s.drafts.IsRunDone(ctx, date)
	if err != nil {
		return domain.GatePending, err
	}
	draft, err := s.drafts.RunDraftFor(ctx, date)
	if err != nil {
		return domain.GatePending, err
	}

	return domain.EvaluateRunGate(requiresRun, markerSet, draft.Distance, draft.Time), nil
}

// FinishDay advances the day cursor, wrapping modulo the program length.
// It is the only cursor mutator and refuses to move while the run gate is
// pending.
func (s *WorkoutService) FinishDay(ctx context.Context) (int, error) {
	gate, err := s.RunGate(ctx)
	if err != nil {
		return 0, err
	}
	if !gate.Open() {
		return 0, domain.ErrRunNotLogged
	}

	idx, err := s.CurrentDayIndex(ctx)
	if err != nil {
		return 0, err
	}
	next := (idx + 1) % len(domain.Program)
	if err := s.store.Set(ctx, domain.KeyCurrentDay, strconv.Itoa(next)); err != nil {
		return 0, fmt.Errorf("failed to advance day cursor: %w", err)
	}

	logging.Logger.Info("Finished training day",
		"day_index", idx,
		"day_name", domain.DayAt(idx).Name,
		"next_index", next)
	return next, nil
}

// Suggest computes the next-weight suggestion for an exercise of a day from
// this cycle's logged sets. Malformed numbers are excluded from the
// aggregate, never surfaced as errors; "" means no suggestion.
func (s *WorkoutService) Suggest(ctx context.Context, dayIndex, exerciseIndex int) (string, error) {
	day := domain.DayAt(dayIndex % len(domain.Program))
	if exerciseIndex < 0 || exerciseIndex >= len(day.Exercises) {
		return "", nil
	}
	ex := day.Exercises[exerciseIndex]
	if ex.IsRunPlaceholder {
		return "", nil
	}

	var logged []domain.LoggedSet
	for set := 1; set <= domain.MaxSuggestionSets; set++ {
		weight, reps, err := s.drafts.SetEntry(ctx, dayIndex, exerciseIndex, set)
		if err != nil {
			return "", err
		}
		w, errW := strconv.ParseFloat(strings.TrimSpace(weight), 64)
		r, errR := strconv.ParseFloat(strings.TrimSpace(reps), 64)
		if errW != nil || errR != nil || math.IsNaN(w) || math.IsNaN(r) {
			continue
		}
		logged = append(logged, domain.LoggedSet{Weight: w, Reps: r})
	}

	return domain.SuggestNextWeight(logged, float64(ex.Reps)), nil
}
