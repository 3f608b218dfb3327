package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/renato0307/ferro/internal/config"
)

// SettingsCmd displays the settings file location and an example
type SettingsCmd struct {
	Format string `help:"Output format: text or json" enum:"text,json" default:"text"`
}

// Run executes the settings command
func (s *SettingsCmd) Run(cli *CLI) error {
	settingsPath := config.GetSettingsPath()
	targets := config.DefaultNutritionTargets()
	example := config.Settings{
		Athlete:   config.DefaultAthlete,
		Nutrition: &targets,
		SheetURL:  config.DefaultSheetURL,
	}

	if s.Format == "json" {
		output := map[string]any{
			"settings_file": settingsPath,
			"example":       example,
		}
		data, err := json.MarshalIndent(output, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("Settings file: %s\n\n", settingsPath)
	fmt.Println("Example settings.json:")
	data, err := json.MarshalIndent(example, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(string(data))
	fmt.Println()
	fmt.Println("All settings are optional and have sensible defaults.")
	return nil
}
