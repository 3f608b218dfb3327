package cmd

import (
	"context"
	"fmt"
)

// SuggestCmd shows next-weight suggestions for the current day.
type SuggestCmd struct{}

// Run executes the suggest command
func (s *SuggestCmd) Run(cli *CLI) error {
	ctx := context.Background()

	idx, day, err := cli.Container.Workout.CurrentDay(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Suggestions for day %d (%s)\n", idx+1, day.Name)

	any := false
	for e, ex := range day.Exercises {
		if ex.IsRunPlaceholder {
			continue
		}
		suggestion, err := cli.Container.Workout.Suggest(ctx, idx, e)
		if err != nil {
			return err
		}
		if suggestion == "" {
			continue
		}
		any = true
		fmt.Printf("  %s: %s kg\n", ex.Name, suggestion)
	}

	if !any {
		fmt.Println("  No history yet. Suggestions appear after the first synced session.")
	}
	return nil
}
