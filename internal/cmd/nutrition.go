package cmd

import (
	"context"
	"fmt"
)

// NutritionCmd shows or updates the nutrition draft for the active date.
type NutritionCmd struct {
	Date       string   `help:"Repoint the nutrition screen at a date (YYYY-MM-DD)"`
	Toggle     []string `help:"Toggle habit flags (protein, water, veg, steps)" enum:"protein,water,veg,steps" sep:","`
	StepsCount string   `help:"Step count for the day"`
	Energy     string   `help:"Energy level (1-5)"`
	Notes      string   `help:"Free-form notes"`
}

// Run executes the nutrition command
func (n *NutritionCmd) Run(cli *CLI) error {
	ctx := context.Background()
	drafts := cli.Container.Drafts

	if n.Date != "" {
		if err := drafts.SetActiveNutritionDate(ctx, n.Date); err != nil {
			return err
		}
	}

	date, err := drafts.ActiveNutritionDate(ctx)
	if err != nil {
		return err
	}

	for _, flag := range n.Toggle {
		if err := drafts.ToggleNutritionFlag(ctx, date, flag); err != nil {
			return err
		}
	}

	updates := map[string]string{
		"stepsCount": n.StepsCount,
		"energy":     n.Energy,
		"notes":      n.Notes,
	}
	for field, value := range updates {
		if value == "" {
			continue
		}
		if err := drafts.SaveNutritionField(ctx, date, field, value); err != nil {
			return err
		}
	}

	draft, err := drafts.NutritionDraftFor(ctx, date)
	if err != nil {
		return err
	}

	targets := cli.Container.Settings.NutritionOrDefault()
	fmt.Printf("Nutrition draft for %s\n", date)
	fmt.Printf("  [%s] protein %dg+\n", habitMark(draft.Protein), targets.ProteinGrams)
	fmt.Printf("  [%s] water %.1f-%.1fL\n", habitMark(draft.Water), targets.WaterLitersMin, targets.WaterLitersMax)
	fmt.Printf("  [%s] %d veg/fruit serves\n", habitMark(draft.Veg), targets.VegServes)
	fmt.Printf("  [%s] %d steps\n", habitMark(draft.Steps), targets.Steps)
	fmt.Printf("  steps:  %s\n", dashIfEmpty(draft.StepsCount))
	fmt.Printf("  energy: %s\n", dashIfEmpty(draft.Energy))
	fmt.Printf("  notes:  %s\n", dashIfEmpty(draft.Notes))
	return nil
}

func habitMark(v string) string {
	if v == "Yes" {
		return "x"
	}
	return " "
}
