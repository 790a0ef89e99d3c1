// Command lexonarrative generates and validates legal fee narratives.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/immanueldhliso-sys/lexohub-narrative/internal/adapters/driven/config/file"
	"github.com/immanueldhliso-sys/lexohub-narrative/internal/adapters/driven/metrics"
	"github.com/immanueldhliso-sys/lexohub-narrative/internal/adapters/driven/storage/memory"
	"github.com/immanueldhliso-sys/lexohub-narrative/internal/adapters/driven/storage/sqlite"
	"github.com/immanueldhliso-sys/lexohub-narrative/internal/adapters/driving/cli"
	"github.com/immanueldhliso-sys/lexohub-narrative/internal/core/ports/driven"
	"github.com/immanueldhliso-sys/lexohub-narrative/internal/core/services"
	"github.com/immanueldhliso-sys/lexohub-narrative/internal/logger"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cli.SetVersion(version)
	cli.SetBootstrap(bootstrap)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := cli.Execute(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

// bootstrap builds the services from the config directory.
func bootstrap(opts cli.Options) (*cli.Services, error) {
	dir := opts.ConfigDir
	if dir == "" {
		d, err := file.DefaultDir()
		if err != nil {
			return nil, err
		}
		dir = d
	}

	configStore, err := file.NewConfigStore(dir)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	settings := services.NewSettingsService(configStore)

	vocabStore, err := file.NewVocabularyStore(dir)
	if err != nil {
		return nil, err
	}
	templateStore, err := file.NewTemplateStore(filepath.Join(dir, "templates"))
	if err != nil {
		return nil, err
	}

	loader := services.NewEngineLoader(vocabStore, templateStore, settings)
	eng, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("loading vocabulary: %w", err)
	}
	logger.Debug("%s", logger.Fields("config", dir, "vocabulary", vocabStore.Source()))

	records, closeRecords, err := openRecordStore(dir, settings.StorageBackend(), opts.Memory)
	if err != nil {
		return nil, err
	}

	recorder := metrics.NewRecorder(true)
	narrative := services.NewNarrativeService(eng,
		services.WithRecordStore(records),
		services.WithMetrics(recorder),
	)

	watcher := file.NewWatcher(
		reloader(configStore, loader, narrative),
		[]string{dir, templateStore.Dir()},
	)

	perSecond, burst := settings.MCPRateLimit()
	return &cli.Services{
		Narrative:      narrative,
		Settings:       settings,
		MetricsHandler: recorder.Handler(),
		RateLimit:      float64(perSecond),
		Burst:          burst,
		Watch:          watcher.Watch,
		Close:          closeRecords,
	}, nil
}

// openRecordStore returns the audit record store for the configured backend.
// The memory flag wins over configuration.
func openRecordStore(dir, backend string, useMemory bool) (driven.NarrativeRecordStore, func() error, error) {
	if useMemory || backend == services.StorageMemory {
		logger.Debug("audit records kept in memory")
		return memory.NewRecordStore(), func() error { return nil }, nil
	}

	store, err := sqlite.NewStore(filepath.Join(dir, "data"))
	if err != nil {
		return nil, nil, fmt.Errorf("opening record store: %w", err)
	}
	logger.Debug("%s", logger.Fields("records", store.Path()))
	return store.RecordStore(), store.Close, nil
}

// reloader re-reads configuration and swaps in a fresh engine when files in
// the config directory change. The loader picks up rewriter settings from the
// reloaded configuration. A broken vocabulary keeps the previous engine.
func reloader(config *file.ConfigStore, loader *services.EngineLoader, narrative *services.NarrativeService) func([]string) {
	return func(paths []string) {
		logger.Info("reloading after change to %s", strings.Join(paths, ", "))

		if err := config.Load(); err != nil {
			logger.Warn("reload config: %v", err)
		}

		eng, err := loader.Reload()
		if err != nil {
			logger.Warn("reload vocabulary: %v (keeping version %s)", err, narrative.VocabularyVersion())
			return
		}
		narrative.SetEngine(eng)
		logger.Info("vocabulary %s loaded", eng.VocabularyVersion())
	}
}
