package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/renato0307/ferro/internal/domain"
	"github.com/renato0307/ferro/internal/services"
)

// SyncCmd pushes drafts to the coach sheet.
type SyncCmd struct {
	Sets      SyncSetsCmd      `cmd:"sets" help:"Push today's logged sets"`
	Run       SyncRunCmd       `cmd:"run" help:"Push the run draft and mark the run done"`
	Nutrition SyncNutritionCmd `cmd:"nutrition" help:"Push the nutrition draft"`
	Body      SyncBodyCmd      `cmd:"body" help:"Push the body check-in draft"`
	All       SyncAllCmd       `cmd:"all" help:"Push every draft that has content"`
}

func reportSync(result services.SyncResult) {
	if result.RowCount == 0 {
		fmt.Printf("%s: nothing to sync\n", result.Domain)
		return
	}
	fmt.Printf("%s: %d row(s) synced\n", result.Domain, result.RowCount)
}

// SyncSetsCmd pushes the set draft
type SyncSetsCmd struct{}

// Run executes the sync sets command
func (s *SyncSetsCmd) Run(cli *CLI) error {
	result, err := cli.Container.Sync.SyncSets(context.Background())
	if err != nil {
		return err
	}
	reportSync(result)
	return nil
}

// SyncRunCmd pushes the run draft
type SyncRunCmd struct{}

// Run executes the sync run command
func (s *SyncRunCmd) Run(cli *CLI) error {
	result, err := cli.Container.Sync.SyncRun(context.Background())
	if err != nil {
		return err
	}
	reportSync(result)
	return nil
}

// SyncNutritionCmd pushes the nutrition draft
type SyncNutritionCmd struct{}

// Run executes the sync nutrition command
func (s *SyncNutritionCmd) Run(cli *CLI) error {
	result, err := cli.Container.Sync.SyncNutrition(context.Background())
	if err != nil {
		return err
	}
	reportSync(result)
	return nil
}

// SyncBodyCmd pushes the body draft
type SyncBodyCmd struct{}

// Run executes the sync body command
func (s *SyncBodyCmd) Run(cli *CLI) error {
	result, err := cli.Container.Sync.SyncBody(context.Background())
	if err != nil {
		return err
	}
	reportSync(result)
	return nil
}

// SyncAllCmd pushes every draft, skipping the ones with preconditions that
// do not hold.
type SyncAllCmd struct{}

// Run executes the sync all command
func (s *SyncAllCmd) Run(cli *CLI) error {
	ctx := context.Background()

	result, err := cli.Container.Sync.SyncSets(ctx)
	if err != nil {
		return err
	}
	reportSync(result)

	result, err = cli.Container.Sync.SyncRun(ctx)
	switch {
	case errors.Is(err, domain.ErrRunDraftIncomplete):
		fmt.Println("runs: skipped (draft incomplete)")
	case err != nil:
		return err
	default:
		reportSync(result)
	}

	result, err = cli.Container.Sync.SyncNutrition(ctx)
	if err != nil {
		return err
	}
	reportSync(result)

	result, err = cli.Container.Sync.SyncBody(ctx)
	switch {
	case errors.Is(err, domain.ErrBodyDraftEmpty):
		fmt.Println("body: skipped (draft empty)")
	case err != nil:
		return err
	default:
		reportSync(result)
	}

	return nil
}
