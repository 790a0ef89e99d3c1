// Package cli implements the lexonarrative command line.
//
// Commands are package-level cobra commands registered in init. The
// services they run against are built lazily by a Bootstrap function set
// from main, so flags such as --config-dir and --memory are parsed first.
package cli

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/immanueldhliso-sys/lexohub-narrative/internal/core/ports/driving"
	"github.com/immanueldhliso-sys/lexohub-narrative/internal/logger"
)

// version is set at build time via SetVersion.
var version = "dev"

var (
	verbose   bool
	configDir string
	useMemory bool
)

// skipServices marks commands that run without the narrative services.
const skipServices = "skip-services"

// Options carries the global flags to the Bootstrap function.
type Options struct {
	// ConfigDir is the configuration directory; empty means the default.
	ConfigDir string

	// Memory selects the in-memory record store.
	Memory bool
}

// Services holds the collaborators commands run against.
type Services struct {
	Narrative driving.NarrativeService
	Settings  driving.SettingsService

	// MetricsHandler is served on /metrics by "mcp serve --port".
	MetricsHandler http.Handler

	// RateLimit and Burst bound MCP HTTP requests. Zero disables limiting.
	RateLimit float64
	Burst     int

	// Watch reloads configuration until ctx is cancelled. Optional.
	Watch func(ctx context.Context) error

	// Close releases stores. Optional.
	Close func() error
}

// Bootstrap builds the services from the global flags.
type Bootstrap func(opts Options) (*Services, error)

var (
	bootstrap Bootstrap
	current   *Services
)

var rootCmd = &cobra.Command{
	Use:   "lexonarrative",
	Short: "Generate and validate fee narratives",
	Long: `lexonarrative turns billable time entries into professional fee narratives
and checks narratives against fee-justification and professionalism rules.

Narratives are reproducible: every result reports the seed it was generated
with, and the same seed, entries and vocabulary give the same text.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		logger.SetVerbose(verbose)
		if cmd.Annotations[skipServices] == "true" {
			return nil
		}
		return ensureServices()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "show pipeline stages on stderr")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.lexonarrative)")
	rootCmd.PersistentFlags().BoolVar(&useMemory, "memory", false, "keep audit records in memory instead of sqlite")
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// SetBootstrap sets the function used to build services on first use.
func SetBootstrap(b Bootstrap) {
	bootstrap = b
}

// SetServices installs ready-made services, bypassing Bootstrap.
func SetServices(s *Services) {
	current = s
}

// Execute runs the root command and releases services afterwards.
// Command output goes to stdout so it can be piped.
func Execute(ctx context.Context) error {
	defer closeServices()
	rootCmd.SetOut(os.Stdout)
	return rootCmd.ExecuteContext(ctx)
}

func ensureServices() error {
	if current != nil || bootstrap == nil {
		return nil
	}
	s, err := bootstrap(Options{ConfigDir: configDir, Memory: useMemory})
	if err != nil {
		return fmt.Errorf("starting services: %w", err)
	}
	current = s
	return nil
}

func closeServices() {
	if current == nil || current.Close == nil {
		return
	}
	if err := current.Close(); err != nil {
		logger.Warn("closing services: %v", err)
	}
}

// narrativeService returns the configured narrative service or nil.
func narrativeService() driving.NarrativeService {
	if current == nil {
		return nil
	}
	return current.Narrative
}

// settingsService returns the configured settings service or nil.
func settingsService() driving.SettingsService {
	if current == nil {
		return nil
	}
	return current.Settings
}

// startWatch runs current.Watch in the background. The returned func stops
// it and waits for it to return.
func startWatch(ctx context.Context) func() {
	if current == nil || current.Watch == nil {
		return func() {}
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := current.Watch(ctx); err != nil {
			// Reload is optional; the command keeps running without it.
			logger.Warn("config watch stopped: %v", err)
		}
	}()

	return func() {
		cancel()
		<-done
	}
}
