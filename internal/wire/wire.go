// Package wire provides dependency injection for the wells application.
// It creates singleton services with lazy initialization.
package wire

import (
	"io"
	"log"
	"os"
	"sync"

	cliadapter "github.com/example/wells/internal/adapters/cli"
	"github.com/example/wells/internal/adapters/sqlite"
	"github.com/example/wells/internal/app"
	"github.com/example/wells/internal/config"
	"github.com/example/wells/internal/db"
	"github.com/example/wells/internal/ports/primary"
)

var (
	wellService    primary.WellService
	stagingService primary.StagingService
	once           sync.Once
)

// WellService returns the singleton WellService instance.
func WellService() primary.WellService {
	once.Do(initServices)
	return wellService
}

// StagingService returns the singleton StagingService instance.
func StagingService() primary.StagingService {
	once.Do(initServices)
	return stagingService
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	cwd, err := os.Getwd()
	if err != nil {
		log.Fatalf("failed to resolve working directory: %v", err)
	}

	cfg, err := config.LoadConfig(cwd)
	if err != nil {
		// No workspace config yet. Fall back to the default layout so that
		// read commands work before `wells init` has been run.
		cfg = config.Default(cwd)
	}

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	// Create repository adapters (secondary ports)
	wellRepo := sqlite.NewWellRepository(database, cfg.Table)
	stagingRepo := sqlite.NewStagingRepository(database)

	// Create services (primary ports implementation)
	wellService = app.NewWellService(wellRepo)
	stagingService = app.NewStagingService(wellRepo, stagingRepo)
}

// WellAdapter returns a new WellAdapter writing to stdout.
// Each call creates a new adapter (adapters are stateless translators).
func WellAdapter() *cliadapter.WellAdapter {
	return WellAdapterWithOutput(os.Stdout)
}

// WellAdapterWithOutput returns a new WellAdapter writing to the given output.
// This variant allows testing or alternate output destinations.
func WellAdapterWithOutput(out io.Writer) *cliadapter.WellAdapter {
	once.Do(initServices)
	return cliadapter.NewWellAdapter(wellService, out)
}

// StagingAdapter returns a new StagingAdapter writing to stdout.
// Each call creates a new adapter (adapters are stateless translators).
func StagingAdapter() *cliadapter.StagingAdapter {
	return StagingAdapterWithOutput(os.Stdout)
}

// StagingAdapterWithOutput returns a new StagingAdapter writing to the given output.
// This variant allows testing or alternate output destinations.
func StagingAdapterWithOutput(out io.Writer) *cliadapter.StagingAdapter {
	once.Do(initServices)
	return cliadapter.NewStagingAdapter(stagingService, out)
}
