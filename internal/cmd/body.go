package cmd

import (
	"context"
	"fmt"
)

// BodyCmd shows or updates the body check-in draft for the active date.
type BodyCmd struct {
	Date   string `help:"Repoint the body screen at a date (YYYY-MM-DD)"`
	Weight string `help:"Weight in kg"`
	Waist  string `help:"Waist in cm"`
	Hips   string `help:"Hips in cm"`
	Notes  string `help:"Free-form notes"`
}

// Run executes the body command
func (b *BodyCmd) Run(cli *CLI) error {
	ctx := context.Background()
	drafts := cli.Container.Drafts

	if b.Date != "" {
		if err := drafts.SetActiveBodyDate(ctx, b.Date); err != nil {
			return err
		}
	}

	date, err := drafts.ActiveBodyDate(ctx)
	if err != nil {
		return err
	}

	updates := map[string]string{
		"weight": b.Weight,
		"waist":  b.Waist,
		"hips":   b.Hips,
		"notes":  b.Notes,
	}
	for field, value := range updates {
		if value == "" {
			continue
		}
		if err := drafts.SaveBodyField(ctx, date, field, value); err != nil {
			return err
		}
	}

	draft, err := drafts.BodyDraftFor(ctx, date)
	if err != nil {
		return err
	}

	fmt.Printf("Body draft for %s\n", date)
	fmt.Printf("  weight: %s\n", dashIfEmpty(draft.Weight))
	fmt.Printf("  waist:  %s\n", dashIfEmpty(draft.Waist))
	fmt.Printf("  hips:   %s\n", dashIfEmpty(draft.Hips))
	fmt.Printf("  notes:  %s\n", dashIfEmpty(draft.Notes))
	return nil
}
