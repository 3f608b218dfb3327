package services

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/renato0307/ferro/internal/domain"
	"github.com/renato0307/ferro/internal/ports"
)

// RunPacePoint is one run's pace, keyed by the run's calendar date.
type RunPacePoint struct {
	Date     string
	MinPerKm float64
}

// StrengthPoint is one date's average logged weight for an exercise.
type StrengthPoint struct {
	Date      string
	AvgWeight float64
}

// ProgressService derives chart series from the local history logs. Rows
// with malformed numbers are skipped, not errors; charts only need the
// points that parse.
type ProgressService struct {
	history ports.HistoryReader
}

// NewProgressService creates a new ProgressService
func NewProgressService(history ports.HistoryReader) *ProgressService {
	return &ProgressService{history: history}
}

// RunPaceSeries returns one pace point per stored run row, in log order.
func (s *ProgressService) RunPaceSeries(ctx context.Context) ([]RunPacePoint, error) {
	rows, err := s.history.LoadLog(ctx, domain.LogRuns)
	if err != nil {
		return nil, err
	}

	var points []RunPacePoint
	for _, row := range rows {
		// Run row wire order: RowID, Timestamp, Athlete, DistanceKm, Time, ...
		date := datePart(fieldString(row, 1))
		dist, err := strconv.ParseFloat(fieldString(row, 3), 64)
		if err != nil || dist <= 0 {
			continue
		}
		mins, ok := domain.ParseDurationMinutes(fieldString(row, 4))
		if !ok {
			continue
		}
		points = append(points, RunPacePoint{Date: date, MinPerKm: mins / dist})
	}
	return points, nil
}

// StrengthSeries returns the average logged weight per date for one
// exercise, sorted by date.
func (s *ProgressService) StrengthSeries(ctx context.Context, exercise string) ([]StrengthPoint, error) {
	rows, err := s.history.LoadLog(ctx, domain.LogSets)
	if err != nil {
		return nil, err
	}

	type acc struct {
		sum   float64
		count int
	}
	byDate := make(map[string]*acc)
	for _, row := range rows {
		// Set row wire order: RowID, Timestamp, Athlete, DayName, Exercise, Set, TargetReps, Weight, Reps
		if fieldString(row, 4) != exercise {
			continue
		}
		date := datePart(fieldString(row, 1))
		w, err := strconv.ParseFloat(fieldString(row, 7), 64)
		if date == "" || err != nil {
			continue
		}
		if byDate[date] == nil {
			byDate[date] = &acc{}
		}
		byDate[date].sum += w
		byDate[date].count++
	}

	dates := make([]string, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	points := make([]StrengthPoint, 0, len(dates))
	for _, date := range dates {
		a := byDate[date]
		points = append(points, StrengthPoint{Date: date, AvgWeight: a.sum / float64(a.count)})
	}
	return points, nil
}

// ExerciseNames lists the chartable exercises of the program: run
// placeholders and single-set entries (mobility work) are excluded.
func (s *ProgressService) ExerciseNames() []string {
	var names []string
	seen := make(map[string]bool)
	for _, day := range domain.Program {
		for _, ex := range day.Exercises {
			if ex.IsRunPlaceholder || ex.Sets <= 1 || seen[ex.Name] {
				continue
			}
			seen[ex.Name] = true
			names = append(names, ex.Name)
		}
	}
	return names
}

// fieldString renders a wire tuple element as a string. Numbers survive the
// JSON round-trip as float64.
func fieldString(row domain.HistoryRow, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	switch v := row[i].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}

// datePart truncates a timestamp to its calendar date.
func datePart(ts string) string {
	if len(ts) < len(DateFormat) {
		return ts
	}
	return ts[:len(DateFormat)]
}
