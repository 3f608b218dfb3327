package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Defaults applied when settings.json leaves a field unset.
const (
	DefaultAthlete  = "Alana"
	DefaultSheetURL = "https://script.google.com/macros/s/AKfycbw5jJ4Zk0TtCp9etm2ImxxsSqsxiLoCxZ_U50tZwE1LdqPbkw3hEan8r1YgUCgs7vJaTA/exec"
)

// NutritionTargets are the daily targets shown on the nutrition screen.
type NutritionTargets struct {
	ProteinGrams   int     `json:"protein_g,omitempty"`
	WaterLitersMin float64 `json:"water_l_min,omitempty"`
	WaterLitersMax float64 `json:"water_l_max,omitempty"`
	VegServes      int     `json:"veg_serves,omitempty"`
	Steps          int     `json:"steps,omitempty"`
}

// DefaultNutritionTargets returns the coach-prescribed daily targets.
func DefaultNutritionTargets() NutritionTargets {
	return NutritionTargets{
		ProteinGrams:   110,
		WaterLitersMin: 2.5,
		WaterLitersMax: 3.0,
		VegServes:      5,
		Steps:          10000,
	}
}

// Settings represents the structure of $FERRO_HOME/settings.json
type Settings struct {
	Athlete     string            `json:"athlete,omitempty"`
	Debug       *bool             `json:"debug,omitempty"`
	MaxLogFiles *int              `json:"max_log_files,omitempty"`
	Nutrition   *NutritionTargets `json:"nutrition,omitempty"`
	SheetURL    string            `json:"sheet_url,omitempty"`
}

// AthleteOrDefault returns the configured athlete tag or the default.
func (s *Settings) AthleteOrDefault() string {
	if s != nil && s.Athlete != "" {
		return s.Athlete
	}
	return DefaultAthlete
}

// SheetURLOrDefault returns the configured coach sheet endpoint or the default.
func (s *Settings) SheetURLOrDefault() string {
	if s != nil && s.SheetURL != "" {
		return s.SheetURL
	}
	return DefaultSheetURL
}

// NutritionOrDefault returns the configured targets or the defaults.
func (s *Settings) NutritionOrDefault() NutritionTargets {
	if s != nil && s.Nutrition != nil {
		return *s.Nutrition
	}
	return DefaultNutritionTargets()
}

// LoadSettings loads settings from $FERRO_HOME/settings.json.
// Returns empty Settings if the file doesn't exist (not an error).
func LoadSettings() (*Settings, error) {
	path := GetSettingsPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil // Not an error, use defaults
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	return &settings, nil
}

// SaveSettings saves settings to $FERRO_HOME/settings.json
func SaveSettings(settings *Settings) error {
	path := GetSettingsPath()
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}
