package cmd

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/ferro/internal/config"
	"github.com/renato0307/ferro/internal/logging"
	"github.com/renato0307/ferro/internal/ui"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`

	Tui       TuiCmd       `cmd:"" help:"Open the training log TUI (default)" default:"1"`
	Today     TodayCmd     `cmd:"today" help:"Show the current training day"`
	Log       LogCmd       `cmd:"log" help:"Record weight and reps for a set"`
	Run       RunCmd       `cmd:"run" help:"Show or update the run draft"`
	Nutrition NutritionCmd `cmd:"nutrition" help:"Show or update the nutrition draft"`
	Body      BodyCmd      `cmd:"body" help:"Show or update the body check-in draft"`
	Sync      SyncCmd      `cmd:"sync" help:"Push drafts to the coach sheet"`
	Finish    FinishCmd    `cmd:"finish" help:"Finish the current day and advance the cursor"`
	Suggest   SuggestCmd   `cmd:"suggest" help:"Show next-weight suggestions for today"`
	History   HistoryCmd   `cmd:"history" help:"Show synced history rows"`
	Serve     ServeCmd     `cmd:"serve" help:"Serve the TUI over SSH"`
	Settings  SettingsCmd  `cmd:"settings" help:"Show settings file location and options"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	// Precedence: CLI flags > env vars > settings.json > defaults
	if c.settings != nil {
		if c.MaxLogFiles == 1000 {
			if _, hasEnv := os.LookupEnv("FERRO_MAX_LOG_FILES"); !hasEnv {
				if c.settings.MaxLogFiles != nil {
					c.MaxLogFiles = *c.settings.MaxLogFiles
				}
			}
		}
		if !c.Debug {
			if _, hasEnv := os.LookupEnv("FERRO_DEBUG"); !hasEnv {
				if c.settings.Debug != nil && *c.settings.Debug {
					c.Debug = true
				}
			}
		}
	}

	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}

	// Export AFTER initialization so child processes share the same file.
	if c.Debug || c.DebugFile != "" {
		os.Setenv("FERRO_DEBUG", "1")
		if logFilePath != "" {
			os.Setenv("FERRO_DEBUG_FILE", logFilePath)
		}
	}
	if c.MaxLogFiles != 1000 {
		os.Setenv("FERRO_MAX_LOG_FILES", fmt.Sprintf("%d", c.MaxLogFiles))
	}

	settings := c.settings
	if settings == nil {
		settings = &config.Settings{}
	}

	// Create container AFTER logging is initialized so the GORM logger has
	// a real slog handler to write to.
	container, err := NewContainer(settings)
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	return nil
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}

// TuiCmd starts the TUI application
type TuiCmd struct{}

// Run executes the TUI
func (t *TuiCmd) Run(cli *CLI) error {
	logging.Logger.Info("Starting ferro TUI")

	targets := cli.Container.Settings.NutritionOrDefault()
	model := ui.NewModel(
		cli.Container.Drafts,
		cli.Container.Workout,
		cli.Container.Sync,
		cli.Container.Progress,
		targets,
	)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logging.Logger.Error("TUI program error", "error", err)
		return fmt.Errorf("error running program: %w", err)
	}

	logging.Logger.Info("TUI program exited normally")
	return nil
}
