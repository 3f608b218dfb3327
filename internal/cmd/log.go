package cmd

import (
	"context"
	"fmt"

	"github.com/renato0307/ferro/internal/domain"
)

// LogCmd records weight and reps for one set of the current day.
type LogCmd struct {
	Exercise int    `arg:"" help:"Exercise number as shown by 'ferro today' (1-based)"`
	Set      int    `arg:"" help:"Set number (1-based)"`
	Weight   string `help:"Weight in kg" short:"w"`
	Reps     string `help:"Reps performed" short:"r"`
}

// Run executes the log command
func (l *LogCmd) Run(cli *CLI) error {
	ctx := context.Background()

	idx, day, err := cli.Container.Workout.CurrentDay(ctx)
	if err != nil {
		return err
	}

	exIndex := l.Exercise - 1
	if exIndex < 0 || exIndex >= len(day.Exercises) {
		return fmt.Errorf("exercise %d out of range for %s (1-%d)", l.Exercise, day.Name, len(day.Exercises))
	}
	ex := day.Exercises[exIndex]
	if ex.IsRunPlaceholder {
		return fmt.Errorf("%s is a run session, use 'ferro run' instead", ex.Name)
	}
	if l.Set < 1 || l.Set > ex.Sets {
		return fmt.Errorf("set %d out of range for %s (1-%d)", l.Set, ex.Name, ex.Sets)
	}
	if l.Weight == "" && l.Reps == "" {
		return fmt.Errorf("nothing to record, pass --weight and/or --reps")
	}

	if l.Weight != "" {
		if err := cli.Container.Drafts.SaveSetField(ctx, idx, exIndex, l.Set, domain.FieldWeight, l.Weight); err != nil {
			return err
		}
	}
	if l.Reps != "" {
		if err := cli.Container.Drafts.SaveSetField(ctx, idx, exIndex, l.Set, domain.FieldReps, l.Reps); err != nil {
			return err
		}
	}

	fmt.Printf("%s set %d recorded\n", ex.Name, l.Set)
	return nil
}
