package cmd

import (
	"context"
	"fmt"

	"github.com/renato0307/ferro/internal/domain"
)

// TodayCmd prints the current training day with its drafted sets.
type TodayCmd struct{}

// Run executes the today command
func (t *TodayCmd) Run(cli *CLI) error {
	ctx := context.Background()

	idx, day, err := cli.Container.Workout.CurrentDay(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Day %d: %s\n", idx+1, day.Name)

	gate, err := cli.Container.Workout.RunGate(ctx)
	if err != nil {
		return err
	}
	switch gate {
	case domain.GatePending:
		fmt.Println("Run: pending (log it before finishing the day)")
	case domain.GateSatisfied:
		fmt.Println("Run: logged")
	}
	fmt.Println()

	for e, ex := range day.Exercises {
		if ex.IsRunPlaceholder {
			fmt.Printf("%d. %s (see 'ferro run')\n", e+1, ex.Name)
			continue
		}
		fmt.Printf("%d. %s (%d×%d)", e+1, ex.Name, ex.Sets, ex.Reps)
		if s, err := cli.Container.Workout.Suggest(ctx, idx, e); err == nil && s != "" {
			fmt.Printf("  next: %s kg", s)
		}
		fmt.Println()

		for set := 1; set <= ex.Sets; set++ {
			w, r, err := cli.Container.Drafts.SetEntry(ctx, idx, e, set)
			if err != nil {
				return err
			}
			if w == "" && r == "" {
				fmt.Printf("   set %d: -\n", set)
			} else {
				fmt.Printf("   set %d: %s kg × %s\n", set, w, r)
			}
		}
	}

	return nil
}
