package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/renato0307/ferro/internal/domain"
	"github.com/renato0307/ferro/internal/logging"
	"github.com/renato0307/ferro/internal/ports"
)

// SyncResult reports what one sync flow did.
type SyncResult struct {
	Domain   domain.LogDomain
	RowCount int
}

// SyncService assembles history rows from draft state and the program
// catalog, upserts them into the local history logs, and pushes the batch
// to the coach sink. Local durability always happens before transmission:
// a transport failure leaves the upserted history and all drafts exactly as
// they were, so a retry is always safe.
type SyncService struct {
	athlete string
	drafts  *DraftService
	now     func() time.Time
	sink    ports.CoachSink
	store   ports.Store
	workout *WorkoutService
}

// NewSyncService creates a new SyncService
func NewSyncService(store ports.Store, sink ports.CoachSink, drafts *DraftService, workout *WorkoutService, athlete string) *SyncService {
	return &SyncService{
		athlete: athlete,
		drafts:  drafts,
		now:     time.Now,
		sink:    sink,
		store:   store,
		workout: workout,
	}
}

// SetNow overrides the clock, for tests.
func (s *SyncService) SetNow(now func() time.Time) { s.now = now }

func (s *SyncService) timestamp() string {
	return s.now().UTC().Format(time.RFC3339)
}

// SyncSets syncs the current day's logged sets. Only sets with a weight or
// reps value produce rows; a day with nothing logged is a no-op sync, not
// an error. RowIDs are date-scoped, so re-syncing the same day on the same
// date overwrites instead of duplicating.
func (s *SyncService) SyncSets(ctx context.Context) (SyncResult, error) {
	ts := s.timestamp()
	date := ts[:len(DateFormat)]

	dayIndex, day, err := s.workout.CurrentDay(ctx)
	if err != nil {
		return SyncResult{}, err
	}

	var rows []domain.HistoryRow
	for exIndex, ex := range day.Exercises {
		if ex.IsRunPlaceholder {
			continue
		}
		for set := 1; set <= ex.Sets; set++ {
			weight, reps, err := s.drafts.SetEntry(ctx, dayIndex, exIndex, set)
			if err != nil {
				return SyncResult{}, err
			}
			weight = strings.TrimSpace(weight)
			reps = strings.TrimSpace(reps)
			if weight == "" && reps == "" {
				continue
			}
			row := domain.SetRow{
				Athlete:    s.athlete,
				Date:       date,
				DayIndex:   dayIndex,
				DayName:    day.Name,
				Exercise:   ex.Name,
				SetNumber:  set,
				TargetReps: ex.Reps,
				Timestamp:  ts,
				Weight:     weight,
				Reps:       reps,
			}
			rows = append(rows, row.Fields())
		}
	}

	batch := domain.NewBatch()
	batch.SetRows = rows
	if err := s.dispatch(ctx, domain.LogSets, rows, batch); err != nil {
		return SyncResult{}, err
	}
	return SyncResult{Domain: domain.LogSets, RowCount: len(rows)}, nil
}

// SyncRun syncs the active date's run draft. Both distance and time are
// required; the flow aborts before any state change without them. On
// successful transmission the completion marker is set first and the draft
// cleared second — that ordering is what keeps the day unlockable if the
// process dies between the two steps.
func (s *SyncService) SyncRun(ctx context.Context) (SyncResult, error) {
	date, err := s.drafts.ActiveRunDate(ctx)
	if err != nil {
		return SyncResult{}, err
	}
	draft, err := s.drafts.RunDraftFor(ctx, date)
	if err != nil {
		return SyncResult{}, err
	}

	distance := strings.TrimSpace(draft.Distance)
	timeText := strings.TrimSpace(draft.Time)
	if distance == "" || timeText == "" {
		return SyncResult{}, domain.ErrRunDraftIncomplete
	}

	ts := s.timestamp()
	row := domain.RunRow{
		Athlete:   s.athlete,
		Timestamp: ts,
		Distance:  distance,
		Time:      timeText,
		Effort:    strings.TrimSpace(draft.Effort),
		Notes:     strings.TrimSpace(draft.Notes),
		Pace:      domain.Pace(distance, timeText),
	}
	rows := []domain.HistoryRow{row.Fields()}

	batch := domain.NewBatch()
	batch.RunRows = rows
	if err := s.dispatch(ctx, domain.LogRuns, rows, batch); err != nil {
		return SyncResult{}, err
	}

	// Marker before clear: the marker is the durable unlock signal.
	if err := s.drafts.MarkRunDone(ctx, date); err != nil {
		return SyncResult{}, fmt.Errorf("failed to mark run done: %w", err)
	}
	if err := s.drafts.ClearRunDraft(ctx, date); err != nil {
		return SyncResult{}, err
	}

	return SyncResult{Domain: domain.LogRuns, RowCount: 1}, nil
}

// SyncNutrition syncs the active date's nutrition draft. There is no
// precondition: unset flags sync as "No". The RowID is date-scoped, so a
// later sync of the same day overwrites.
func (s *SyncService) SyncNutrition(ctx context.Context) (SyncResult, error) {
	date, err := s.drafts.ActiveNutritionDate(ctx)
	if err != nil {
		return SyncResult{}, err
	}
	draft, err := s.drafts.NutritionDraftFor(ctx, date)
	if err != nil {
		return SyncResult{}, err
	}

	row := domain.NutritionRow{
		Athlete:    s.athlete,
		Date:       date,
		Protein:    draft.Protein,
		Water:      draft.Water,
		Veg:        draft.Veg,
		Steps:      draft.Steps,
		StepsCount: strings.TrimSpace(draft.StepsCount),
		Energy:     strings.TrimSpace(draft.Energy),
		Notes:      strings.TrimSpace(draft.Notes),
		Timestamp:  s.timestamp(),
	}
	rows := []domain.HistoryRow{row.Fields()}

	batch := domain.NewBatch()
	batch.NutritionRows = rows
	if err := s.dispatch(ctx, domain.LogNutrition, rows, batch); err != nil {
		return SyncResult{}, err
	}
	return SyncResult{Domain: domain.LogNutrition, RowCount: 1}, nil
}

// SyncBody syncs the active date's body draft. The flow refuses to build a
// row when weight, waist, hips, and notes are all empty.
func (s *SyncService) SyncBody(ctx context.Context) (SyncResult, error) {
	date, err := s.drafts.ActiveBodyDate(ctx)
	if err != nil {
		return SyncResult{}, err
	}
	draft, err := s.drafts.BodyDraftFor(ctx, date)
	if err != nil {
		return SyncResult{}, err
	}

	weight := strings.TrimSpace(draft.Weight)
	waist := strings.TrimSpace(draft.Waist)
	hips := strings.TrimSpace(draft.Hips)
	notes := strings.TrimSpace(draft.Notes)
	if weight == "" && waist == "" && hips == "" && notes == "" {
		return SyncResult{}, domain.ErrBodyDraftEmpty
	}

	row := domain.BodyRow{
		Athlete:   s.athlete,
		Date:      date,
		Weight:    weight,
		Waist:     waist,
		Hips:      hips,
		Notes:     notes,
		Timestamp: s.timestamp(),
	}
	rows := []domain.HistoryRow{row.Fields()}

	batch := domain.NewBatch()
	batch.BodyRows = rows
	if err := s.dispatch(ctx, domain.LogBody, rows, batch); err != nil {
		return SyncResult{}, err
	}
	return SyncResult{Domain: domain.LogBody, RowCount: 1}, nil
}

// dispatch upserts the rows into local history, then transmits the batch.
// An empty row set skips transmission entirely (a no-op sync).
func (s *SyncService) dispatch(ctx context.Context, d domain.LogDomain, rows []domain.HistoryRow, batch domain.Batch) error {
	if len(rows) == 0 {
		logging.Logger.Debug("Nothing to sync", "log_domain", d)
		return nil
	}

	for _, row := range rows {
		if err := s.store.Upsert(ctx, d, row); err != nil {
			return fmt.Errorf("failed to record %s history: %w", d, err)
		}
	}

	if err := s.sink.Push(ctx, batch); err != nil {
		logging.Logger.Error("Sync transmission failed", "log_domain", d, "error", err)
		return fmt.Errorf("sync failed: %w", err)
	}

	logging.Logger.Info("Synced to coach", "log_domain", d, "rows", len(rows))
	return nil
}
