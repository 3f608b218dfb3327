package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/renato0307/ferro/internal/domain"
)

// FinishCmd finishes the current day and advances the cursor.
type FinishCmd struct{}

// Run executes the finish command
func (f *FinishCmd) Run(cli *CLI) error {
	ctx := context.Background()

	next, err := cli.Container.Workout.FinishDay(ctx)
	if errors.Is(err, domain.ErrRunNotLogged) {
		return fmt.Errorf("today has a run that is not logged yet, sync it with 'ferro sync run' first")
	}
	if err != nil {
		return err
	}

	day := domain.DayAt(next)
	fmt.Printf("Day complete. Next up: day %d (%s)\n", next+1, day.Name)
	return nil
}
