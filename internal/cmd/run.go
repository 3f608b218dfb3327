package cmd

import (
	"context"
	"fmt"

	"github.com/renato0307/ferro/internal/domain"
)

// RunCmd shows or updates the run draft for the active date.
type RunCmd struct {
	Date     string `help:"Repoint the run screen at a date (YYYY-MM-DD)"`
	Distance string `help:"Distance in km"`
	Time     string `help:"Time as mm:ss or minutes"`
	Effort   string `help:"Perceived effort"`
	Notes    string `help:"Free-form notes"`
}

// Run executes the run command
func (r *RunCmd) Run(cli *CLI) error {
	ctx := context.Background()
	drafts := cli.Container.Drafts

	if r.Date != "" {
		if err := drafts.SetActiveRunDate(ctx, r.Date); err != nil {
			return err
		}
	}

	date, err := drafts.ActiveRunDate(ctx)
	if err != nil {
		return err
	}

	updates := map[string]string{
		"distance": r.Distance,
		"time":     r.Time,
		"effort":   r.Effort,
		"notes":    r.Notes,
	}
	for field, value := range updates {
		if value == "" {
			continue
		}
		if err := drafts.SaveRunField(ctx, date, field, value); err != nil {
			return err
		}
	}

	draft, err := drafts.RunDraftFor(ctx, date)
	if err != nil {
		return err
	}
	done, err := drafts.IsRunDone(ctx, date)
	if err != nil {
		return err
	}

	fmt.Printf("Run draft for %s\n", date)
	fmt.Printf("  distance: %s\n", dashIfEmpty(draft.Distance))
	fmt.Printf("  time:     %s\n", dashIfEmpty(draft.Time))
	fmt.Printf("  effort:   %s\n", dashIfEmpty(draft.Effort))
	fmt.Printf("  notes:    %s\n", dashIfEmpty(draft.Notes))
	if pace := domain.Pace(draft.Distance, draft.Time); pace != "" {
		fmt.Printf("  pace:     %s\n", pace)
	}
	if done {
		fmt.Println("  state:    logged")
	} else {
		fmt.Println("  state:    draft")
	}
	return nil
}

func dashIfEmpty(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
