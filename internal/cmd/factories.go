package cmd

import (
	"github.com/renato0307/ferro/internal/adapters/sheets"
	"github.com/renato0307/ferro/internal/adapters/storage"
	"github.com/renato0307/ferro/internal/config"
	"github.com/renato0307/ferro/internal/ports"
	"github.com/renato0307/ferro/internal/services"
)

// Container holds all dependencies for the application
type Container struct {
	Drafts   *services.DraftService
	History  ports.HistoryReader
	Progress *services.ProgressService
	Settings *config.Settings
	Sync     *services.SyncService
	Workout  *services.WorkoutService

	// Internal - for cleanup only
	store ports.Store
}

// NewContainer creates a new Container with all dependencies wired
func NewContainer(settings *config.Settings) (*Container, error) {
	store, err := storage.NewSQLiteStore(config.GetDBPath())
	if err != nil {
		return nil, err
	}

	sink := sheets.NewClient(settings.SheetURLOrDefault())

	drafts := services.NewDraftService(store)
	workout := services.NewWorkoutService(store, drafts)
	syncService := services.NewSyncService(store, sink, drafts, workout, settings.AthleteOrDefault())
	progress := services.NewProgressService(store)

	return &Container{
		Drafts:   drafts,
		History:  store,
		Progress: progress,
		Settings: settings,
		Sync:     syncService,
		Workout:  workout,
		store:    store,
	}, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.store != nil {
		return c.store.Close()
	}
	return nil
}
